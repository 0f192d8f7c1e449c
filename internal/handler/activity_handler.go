// internal/handler/activity_handler.go
package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

type ActivityHandler struct {
	Service *service.ActivityService
	Render  *Renderer
	Logger  *zap.Logger
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	events := []model.AuditEvent{}
	v := newView(r, "/activity", "activity.title", nil)
	if h.Service != nil {
		recent, err := h.Service.Recent(r.Context())
		if err != nil {
			h.Logger.Warn("failed to load activity", zap.Error(err))
			v.Flash = errorFlash("load_fail")
		} else {
			events = recent
		}
	}
	v.Data = events
	h.Render.Render(w, http.StatusOK, "activity", v)
}
