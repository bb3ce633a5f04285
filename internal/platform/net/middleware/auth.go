package middleware

import (
	"net/http"

	pnet "neuraledge/internal/platform/net"
)

// AuthPort authenticates a request and yields a caller id
type AuthPort interface {
	// Parse returns a caller id from the request or an error
	Parse(r *http.Request) (callerID string, err error)
}

// Auth protects a subtree behind the given port. A nil port is a no-op
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			caller, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
