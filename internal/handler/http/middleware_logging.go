package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access-log line per request through the request
// scoped logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if route := rctx.RoutePattern(); route != "" {
				event = event.Str("route", route)
			}
		}

		event.Send()
	})
}
