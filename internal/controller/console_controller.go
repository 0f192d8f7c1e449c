// internal/controller/console_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// ConsoleController exposes the console's view models as JSON, for scripts
// and monitoring that would otherwise scrape the pages.
type ConsoleController struct {
	Dashboard *service.DashboardService
	Campaigns *service.CampaignService
	Logger    *zap.Logger
}

// Routes mounts the endpoints on r, typically under /console/api.
func (c *ConsoleController) Routes(r chi.Router) {
	r.Get("/dashboard", c.GetDashboard)
	r.Get("/campaigns/{id}", c.GetCampaignDetails)
}

func (c *ConsoleController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Dashboard.Load(r.Context())
	if err != nil {
		c.fail(w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, summary)
}

func (c *ConsoleController) GetCampaignDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	detail, err := c.Campaigns.Detail(r.Context(), id)
	if appErrors.IsNotFound(err) {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	if err != nil {
		c.fail(w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, detail)
}

func (c *ConsoleController) fail(w http.ResponseWriter, err error, status int) {
	if c.Logger != nil {
		c.Logger.Error("console api request failed", zap.Error(err))
	}
	http.Error(w, http.StatusText(status), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
