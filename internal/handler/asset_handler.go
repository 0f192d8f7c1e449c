// internal/handler/asset_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

type AssetHandler struct {
	Service *service.AssetService
	Render  *Renderer
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.Service.Page(r.Context(), positiveInt(q.Get("edit")), q.Get("new") == "true")
	v := newView(r, "/assets", "assets.title", page)
	if err != nil {
		v.Data = &service.AssetsPage{}
		v.Flash = errorFlash("load_fail")
	}
	h.Render.Render(w, http.StatusOK, "assets", v)
}

func (h *AssetHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := positiveInt(chi.URLParam(r, "id"))
	in := model.AssetInput{
		Name:        r.PostFormValue("name"),
		AssetType:   model.AssetType(r.PostFormValue("asset_type")),
		Vendor:      r.PostFormValue("vendor"),
		Product:     r.PostFormValue("product"),
		Version:     r.PostFormValue("version"),
		Description: r.PostFormValue("description"),
		Location:    r.PostFormValue("location"),
		Owner:       r.PostFormValue("owner"),
		IsActive:    r.PostFormValue("is_active") != "",
	}

	_, err := h.Service.Save(r.Context(), id, in)
	if err == nil {
		redirect(w, r, "/assets", "msg", "asset.saved")
		return
	}

	page, listErr := h.Service.Page(r.Context(), 0, false)
	if listErr != nil {
		page = &service.AssetsPage{}
	}
	page.ShowForm = true
	page.EditID = id
	page.Form = in

	v := newView(r, "/assets", "assets.title", page)
	status := http.StatusBadGateway
	if vErr, ok := appErrors.AsValidation(err); ok {
		v.Flash = errorFlash("validation", vErr.Fields...)
		status = http.StatusUnprocessableEntity
	} else {
		v.Flash = errorFlash("asset.save_fail")
	}
	h.Render.Render(w, status, "assets", v)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := positiveInt(chi.URLParam(r, "id"))
	if id == 0 {
		http.Error(w, "invalid asset id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		redirect(w, r, "/assets", "err", "asset.delete_fail")
		return
	}
	redirect(w, r, "/assets", "msg", "asset.deleted")
}
