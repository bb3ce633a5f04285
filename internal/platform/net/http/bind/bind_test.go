package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "neuraledge/internal/platform/errors"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=2,max=10"`
	Email string `json:"email" validate:"required,email"`
	Slug  string `json:"slug,omitempty" validate:"omitempty,slug"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSONValid(t *testing.T) {
	r := post(`{"name":"Ada","email":"ada@example.com"}`)
	got, err := ParseJSON[sample](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ada" || got.Email != "ada@example.com" {
		t.Fatalf("bad decode: %+v", got)
	}
}

func TestParseJSONEmptyBodyPost(t *testing.T) {
	r := post("")
	_, err := ParseJSON[sample](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSONEmptyBodyGetTolerated(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	_, err := ParseJSON[sample](r)
	if err != nil {
		t.Fatalf("GET with empty body should pass: %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := post(`{"name":"Ada","email":"ada@example.com","extra":1}`)
	_, err := ParseJSON[sample](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for unknown field, got %v", err)
	}
}

func TestParseJSONValidationUsesJSONTag(t *testing.T) {
	r := post(`{"name":"A","email":"ada@example.com"}`)
	_, err := ParseJSON[sample](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("want *perr.Error, got %T", err)
	}
	if e.Field() != "name" {
		t.Fatalf("want field name, got %q", e.Field())
	}
	if !strings.Contains(e.Error(), "at least 2") {
		t.Fatalf("want short min message, got %q", e.Error())
	}
}

func TestParseJSONInvalidEmail(t *testing.T) {
	r := post(`{"name":"Ada","email":"nope"}`)
	_, err := ParseJSON[sample](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSlugTag(t *testing.T) {
	cases := []struct {
		slug string
		ok   bool
	}{
		{"hello-world", true},
		{"a1-b2", true},
		{"Hello", false},
		{"has space", false},
		{"under_score", false},
	}
	for _, tc := range cases {
		r := post(`{"name":"Ada","email":"ada@example.com","slug":"` + tc.slug + `"}`)
		_, err := ParseJSON[sample](r)
		if tc.ok && err != nil {
			t.Errorf("slug %q: unexpected error %v", tc.slug, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("slug %q: expected validation error", tc.slug)
		}
	}
}

func TestTrailingData(t *testing.T) {
	r := post(`{"name":"Ada","email":"ada@example.com"}{"x":1}`)
	_, err := ParseJSON[sample](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for trailing data, got %v", err)
	}
}
