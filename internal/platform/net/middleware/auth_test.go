package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "neuraledge/internal/platform/errors"
	pnet "neuraledge/internal/platform/net"
)

type fakePort struct {
	caller string
	err    error
}

func (f fakePort) Parse(r *http.Request) (string, error) { return f.caller, f.err }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuthNilPortPassesThrough(t *testing.T) {
	called := false
	h := Auth(nil, writeJSON)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatal("next not called")
	}
}

func TestAuthRejects(t *testing.T) {
	h := Auth(fakePort{err: perr.Unauthorizedf("missing bearer token")}, writeJSON)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not be called")
		}),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestAuthSetsCaller(t *testing.T) {
	var got string
	h := Auth(fakePort{caller: "admin"}, writeJSON)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = pnet.CallerID(r.Context())
		}),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if got != "admin" {
		t.Fatalf("want caller admin, got %q", got)
	}
}
