package middleware

import (
	"net/http"

	"neuraledge/internal/platform/logger"
	pnet "neuraledge/internal/platform/net"
)

// RequestLogger bridges the chi request id into the logger context so
// logger.C(ctx) children carry request_id. Mount after RequestID
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := pnet.RequestID(r.Context()); id != "" {
			r = r.WithContext(logger.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
