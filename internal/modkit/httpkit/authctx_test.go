package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perrs "neuraledge/internal/platform/errors"
	pnet "neuraledge/internal/platform/net"
)

func TestCaller(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := Caller(r); !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}

	r = r.WithContext(pnet.WithCaller(r.Context(), "admin"))
	id, err := Caller(r)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if id != "admin" {
		t.Fatalf("want admin, got %q", id)
	}
	if got := MustCaller(r); got != "admin" {
		t.Fatalf("want admin, got %q", got)
	}
}

func TestMustCallerPanicsUnauthenticated(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without a caller on the context")
		}
	}()
	_ = MustCaller(httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		wantOK bool
	}{
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"blank token", "Bearer   ", "", false},
		{"good token", "Bearer sekrit", "sekrit", true},
		{"lowercase scheme", "bearer sekrit", "sekrit", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := BearerToken(reqWithAuthz(tc.header))
			if tc.wantOK {
				if err != nil {
					t.Fatalf("unexpected: %v", err)
				}
				if tok != tc.token {
					t.Fatalf("want %q, got %q", tc.token, tok)
				}
				return
			}
			if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
				t.Fatalf("want unauthorized, got %v", err)
			}
		})
	}
}
