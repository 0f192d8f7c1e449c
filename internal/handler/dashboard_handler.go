// internal/handler/dashboard_handler.go
package handler

import (
	"net/http"

	"github.com/unclebandit/anything-security-console/internal/service"
)

type DashboardHandler struct {
	Service *service.DashboardService
	Render  *Renderer
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Load(r.Context())
	v := newView(r, "/", "dashboard.title", summary)
	if err != nil {
		v.Flash = errorFlash("load_fail")
	}
	h.Render.Render(w, http.StatusOK, "dashboard", v)
}
