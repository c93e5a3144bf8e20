package app

import (
	"net/http"

	"github.com/google/uuid"
)

// withRequestId tags every request with an id, echoes it back in the
// X-Request-Id header and logs the request line under it.
func (a *App) withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestId)

		a.log.Debug("request",
			"request_id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}
