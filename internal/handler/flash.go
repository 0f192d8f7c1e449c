// internal/handler/flash.go
package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/unclebandit/anything-security-console/internal/i18n"
)

type flash struct {
	Error bool
	Key   string
	// Fields names the form fields that failed validation.
	Fields []string
}

func (f *flash) Class() string {
	if f.Error {
		return "alert alert-error"
	}
	return "alert alert-success"
}

// flashFrom reads ?msg= or ?err=. Keys outside the catalog are ignored.
func flashFrom(r *http.Request) *flash {
	q := r.URL.Query()
	if key := q.Get("err"); key != "" && i18n.Has("flash."+key) {
		return &flash{Error: true, Key: "flash." + key}
	}
	if key := q.Get("msg"); key != "" && i18n.Has("flash."+key) {
		return &flash{Key: "flash." + key}
	}
	return nil
}

func errorFlash(key string, fields ...string) *flash {
	return &flash{Error: true, Key: "flash." + key, Fields: fields}
}

// redirect sends the browser to path with the given query pairs, skipping
// empty values.
func redirect(w http.ResponseWriter, r *http.Request, path string, pairs ...string) {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// positiveInt parses s, treating anything that is not a positive integer as 0.
func positiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
