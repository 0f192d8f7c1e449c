// internal/handler/cve_handler.go
package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// CVEHandler serves CVE monitoring. ?asset=ID filters alerts and ?refresh=N
// reloads the page once after N seconds, dropping the parameter.
type CVEHandler struct {
	Service *service.CVEService
	Render  *Renderer
}

func (h *CVEHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := positiveInt(q.Get("asset"))
	page := h.Service.Page(r.Context(), filter)

	v := newView(r, "/cve", "cve.title", page)
	if page.Partial && v.Flash == nil {
		v.Flash = errorFlash("load_fail")
	}
	if refresh := positiveInt(q.Get("refresh")); refresh > 0 {
		v.Refresh = refresh
		v.RefreshURL = cveURL(filter)
	}
	h.Render.Render(w, http.StatusOK, "cve", v)
}

func (h *CVEHandler) Scan(w http.ResponseWriter, r *http.Request) {
	assetID := positiveInt(chi.URLParam(r, "assetID"))
	if assetID == 0 {
		http.Error(w, "invalid asset id", http.StatusBadRequest)
		return
	}
	filter := r.PostFormValue("asset")

	res, err := h.Service.ScanAsset(r.Context(), assetID)
	switch {
	case errors.Is(err, appErrors.ErrIncompleteAsset):
		redirect(w, r, "/cve", "asset", filter, "err", "scan.incomplete")
	case err != nil:
		redirect(w, r, "/cve", "asset", filter, "err", "scan.fail")
	default:
		redirect(w, r, "/cve", "asset", filter, "msg", "scan.started", "refresh", itoa(seconds(res.RefreshAfter)))
	}
}

func (h *CVEHandler) ScanAll(w http.ResponseWriter, r *http.Request) {
	filter := r.PostFormValue("asset")
	res, err := h.Service.ScanAll(r.Context())
	if err != nil {
		redirect(w, r, "/cve", "asset", filter, "err", "scan.fail")
		return
	}
	redirect(w, r, "/cve", "asset", filter, "msg", "scan.all_started", "refresh", itoa(seconds(res.RefreshAfter)))
}

func cveURL(filter int) string {
	if filter > 0 {
		return "/cve?asset=" + itoa(filter)
	}
	return "/cve"
}

// seconds rounds d up to whole seconds, at least one.
func seconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
