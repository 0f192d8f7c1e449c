// internal/handler/stub_handler.go
package handler

import "net/http"

// StubHandler renders the placeholder pages for features that are not built
// yet. Each is a title, a subtitle and a "coming soon" card.
type StubHandler struct {
	Render *Renderer
}

type stubData struct {
	Prefix string
}

func (h *StubHandler) Page(active, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.Render.Render(w, http.StatusOK, "stub", newView(r, active, prefix+".title", stubData{Prefix: prefix}))
	}
}
