// internal/handler/render.go
package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{
	"dashboard",
	"campaigns",
	"templates",
	"assets",
	"cve",
	"stub",
	"activity",
}

var funcs = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"score": func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.1f", *v)
	},
}

// Renderer executes the page templates. Each page is parsed together with
// the layout, which calls the page's "content" block.
type Renderer struct {
	pages  map[string]*template.Template
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}, logger: logger}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so a template error still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, v *view) {
	t, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown page", zap.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", v); err != nil {
		r.logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
