// internal/handler/template_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// TemplateHandler serves the email template pages. ?edit=ID opens the form
// prefilled, ?new=true opens it blank.
type TemplateHandler struct {
	Service *service.TemplateService
	Render  *Renderer
}

type templatesData struct {
	*service.TemplatesPage
	Placeholders []string
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.Service.Page(r.Context(), positiveInt(q.Get("edit")), q.Get("new") == "true")
	v := newView(r, "/email-templates", "templates.title", nil)
	if err != nil {
		page = &service.TemplatesPage{}
		v.Flash = errorFlash("load_fail")
	}
	v.Data = templatesData{TemplatesPage: page, Placeholders: service.Placeholders}
	h.Render.Render(w, http.StatusOK, "templates", v)
}

func (h *TemplateHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := positiveInt(chi.URLParam(r, "id"))
	in := model.TemplateInput{
		Name:        r.PostFormValue("name"),
		Subject:     r.PostFormValue("subject"),
		Body:        r.PostFormValue("body"),
		SenderEmail: r.PostFormValue("sender_email"),
		SenderName:  r.PostFormValue("sender_name"),
		IsActive:    r.PostFormValue("is_active") != "",
	}

	_, err := h.Service.Save(r.Context(), id, in)
	if err == nil {
		redirect(w, r, "/email-templates", "msg", "template.saved")
		return
	}

	page, listErr := h.Service.Page(r.Context(), 0, false)
	if listErr != nil {
		page = &service.TemplatesPage{}
	}
	page.ShowForm = true
	page.EditID = id
	page.Form = in
	page.Used = service.DetectPlaceholders(in.Body)

	v := newView(r, "/email-templates", "templates.title", templatesData{TemplatesPage: page, Placeholders: service.Placeholders})
	status := http.StatusBadGateway
	if vErr, ok := appErrors.AsValidation(err); ok {
		v.Flash = errorFlash("validation", vErr.Fields...)
		status = http.StatusUnprocessableEntity
	} else {
		v.Flash = errorFlash("template.save_fail")
	}
	h.Render.Render(w, status, "templates", v)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := positiveInt(chi.URLParam(r, "id"))
	if id == 0 {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		redirect(w, r, "/email-templates", "err", "template.delete_fail")
		return
	}
	redirect(w, r, "/email-templates", "msg", "template.deleted")
}
