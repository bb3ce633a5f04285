package httpkit

import (
	"net/http"
	"strings"

	perrs "neuraledge/internal/platform/errors"
	pnet "neuraledge/internal/platform/net"
)

// Caller returns the authenticated caller id from the request context
func Caller(r *http.Request) (string, error) {
	id := pnet.CallerID(r.Context())
	if id == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return id, nil
}

// MustCaller returns the authenticated caller id or panics
// only use on routes protected by the auth middleware
func MustCaller(r *http.Request) string {
	id, err := Caller(r)
	if err != nil {
		panic(err)
	}
	return id
}

// BearerToken returns the raw bearer token from the Authorization header
func BearerToken(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
