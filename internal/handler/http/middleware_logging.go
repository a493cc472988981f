package http

import (
	"net/http"
	"time"

	"github.com/mvolkhin/notelock/internal/logger"
)

// withLogging emits one structured line per request with method, URI, status,
// duration, and response size. It reads the trace-stamped logger that
// withTraceID left in the request context.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
