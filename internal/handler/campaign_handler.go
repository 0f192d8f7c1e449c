// internal/handler/campaign_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// CampaignHandler serves the campaign list, creation form and detail panel.
// ?campaign=ID selects a campaign and ?new=true opens the form.
type CampaignHandler struct {
	Service *service.CampaignService
	Render  *Renderer
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.Service.Page(r.Context(), positiveInt(q.Get("campaign")), q.Get("new") == "true")
	if err != nil {
		v := newView(r, "/campaigns", "campaigns.title", &service.CampaignsPage{})
		v.Flash = errorFlash("load_fail")
		h.Render.Render(w, http.StatusOK, "campaigns", v)
		return
	}
	h.Render.Render(w, http.StatusOK, "campaigns", newView(r, "/campaigns", "campaigns.title", page))
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := service.CampaignForm{
		Name:       r.PostFormValue("name"),
		TemplateID: positiveInt(r.PostFormValue("template_id")),
		Recipients: r.PostFormValue("recipient_emails"),
		TargetURL:  r.PostFormValue("target_url"),
	}

	_, err := h.Service.Create(r.Context(), form)
	if err == nil {
		redirect(w, r, "/campaigns", "msg", "campaign.created")
		return
	}

	// keep the form open with what the user typed
	page, listErr := h.Service.Page(r.Context(), 0, true)
	if listErr != nil {
		page = &service.CampaignsPage{ShowForm: true}
	}
	page.Form = form

	v := newView(r, "/campaigns", "campaigns.title", page)
	status := http.StatusBadGateway
	if vErr, ok := appErrors.AsValidation(err); ok {
		v.Flash = errorFlash("validation", vErr.Fields...)
		status = http.StatusUnprocessableEntity
	} else {
		v.Flash = errorFlash("campaign.create_fail")
	}
	h.Render.Render(w, status, "campaigns", v)
}

func (h *CampaignHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := positiveInt(chi.URLParam(r, "id"))
	if id == 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	selected := positiveInt(r.PostFormValue("selected"))

	selected, err := h.Service.Close(r.Context(), id, selected)
	if err != nil {
		redirect(w, r, "/campaigns", "campaign", itoa(selected), "err", "campaign.close_fail")
		return
	}
	redirect(w, r, "/campaigns", "campaign", itoa(selected), "msg", "campaign.closed")
}
