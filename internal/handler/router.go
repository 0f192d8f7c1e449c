// internal/handler/router.go
package handler

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/i18n"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// Deps are the services the console pages are built from. Activity may be
// nil, in which case the activity page shows an empty trail.
type Deps struct {
	Dashboard *service.DashboardService
	Campaigns *service.CampaignService
	Templates *service.TemplateService
	Assets    *service.AssetService
	CVE       *service.CVEService
	Activity  *service.ActivityService

	Logger *zap.Logger
	Lang   i18n.Lang
}

// NewRouter wires every console page.
func NewRouter(d Deps) (chi.Router, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	renderer, err := NewRenderer(d.Logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(Language(d.Lang))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/healthz", Healthz)

	dashboard := &DashboardHandler{Service: d.Dashboard, Render: renderer}
	campaigns := &CampaignHandler{Service: d.Campaigns, Render: renderer}
	templates := &TemplateHandler{Service: d.Templates, Render: renderer}
	assets := &AssetHandler{Service: d.Assets, Render: renderer}
	cve := &CVEHandler{Service: d.CVE, Render: renderer}
	activity := &ActivityHandler{Service: d.Activity, Render: renderer, Logger: d.Logger}
	stubs := &StubHandler{Render: renderer}

	r.Get("/", dashboard.Show)

	r.Get("/campaigns", campaigns.List)
	r.Post("/campaigns", campaigns.Create)
	r.Post("/campaigns/{id}/close", campaigns.Close)
	// superseded combined phishing page
	r.Get("/phishing", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/campaigns", http.StatusMovedPermanently)
	})

	r.Get("/email-templates", templates.List)
	r.Post("/email-templates", templates.Save)
	r.Post("/email-templates/{id}", templates.Save)
	r.Post("/email-templates/{id}/delete", templates.Delete)

	r.Get("/assets", assets.List)
	r.Post("/assets", assets.Save)
	r.Post("/assets/{id}", assets.Save)
	r.Post("/assets/{id}/delete", assets.Delete)

	r.Get("/cve", cve.List)
	r.Post("/cve/scan/{assetID}", cve.Scan)
	r.Post("/cve/scan-all", cve.ScanAll)

	r.Get("/users", stubs.Page("/users", "users"))
	r.Get("/landing-pages", stubs.Page("/landing-pages", "landing"))
	r.Get("/sending-profiles", stubs.Page("/sending-profiles", "sending"))

	r.Get("/activity", activity.List)

	return r, nil
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
