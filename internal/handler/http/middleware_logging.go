package http

import (
	"net/http"
	"time"

	"github.com/domy-v-italii/portal/internal/logger"
)

// withLogging emits one access-log line per request once the handler
// chain has written its response.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		started := time.Now()
		captured := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(captured, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.RequestURI).
			Int("status", captured.status).
			Int("bytes", captured.size).
			Dur("took", time.Since(started)).
			Msg("request served")
	})
}
