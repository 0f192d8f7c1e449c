// internal/handler/middleware.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/i18n"
)

type ctxKey int

const langKey ctxKey = iota

// Language picks the page language from ?lang=, then Accept-Language, then
// fallback.
func Language(fallback i18n.Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.Match(r.Header.Get("Accept-Language"), fallback)
			if q := r.URL.Query().Get("lang"); q != "" {
				lang = i18n.Parse(q, lang)
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), langKey, lang)))
		})
	}
}

func langFrom(ctx context.Context) i18n.Lang {
	if lang, ok := ctx.Value(langKey).(i18n.Lang); ok {
		return lang
	}
	return i18n.Korean
}

// RequestLogger logs one line per request through zap.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
