package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestHTTPStatusCode_Mapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("code %d: expected %d got %d", c.code, c.want, got)
		}
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "insert failed")

	if !stderrs.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found with errors.Is")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("expected db code got %d", CodeOf(err))
	}
	if Root(err) != cause {
		t.Fatalf("expected root cause, got %v", Root(err))
	}
}

func TestWireFrom_ForeignError(t *testing.T) {
	w := WireFrom(fmt.Errorf("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("unexpected wire %+v", w)
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := Validationf("too short")
	withField := WithField(base, "name")

	e1, _ := As(base)
	e2, _ := As(withField)
	if e1.Field() != "" {
		t.Fatal("original must not be mutated")
	}
	if e2.Field() != "name" {
		t.Fatalf("expected field name got %q", e2.Field())
	}
}

func TestRateLimitedf_RetryAfterOnWire(t *testing.T) {
	err := RateLimitedf(90*time.Second, "one submission per window")

	if HTTPStatus(err) != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", HTTPStatus(err))
	}
	w := WireFrom(err)
	if w.RetryAfter != 90 {
		t.Fatalf("expected retry_after 90 got %d", w.RetryAfter)
	}
}

func TestRateLimited_SubSecondRoundsUp(t *testing.T) {
	err := RateLimitedf(300*time.Millisecond, "slow down")
	if w := WireFrom(err); w.RetryAfter != 1 {
		t.Fatalf("expected retry_after 1 got %d", w.RetryAfter)
	}
}

func TestWrapIf_NilPassthrough(t *testing.T) {
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatal("expected nil for nil input")
	}
}
