package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"neuraledge/internal/modkit/httpkit"
	perr "neuraledge/internal/platform/errors"
	phttp "neuraledge/internal/platform/net/http"
	"neuraledge/internal/platform/ratelimit"
	"neuraledge/internal/services/api/contact/domain"

	"github.com/go-chi/chi/v5"
)

// fakeSvc throttles like the real service but keeps submissions in memory
type fakeSvc struct {
	limiter *ratelimit.Memory
	subs    []domain.Submission
}

func (f *fakeSvc) Submit(ctx context.Context, in domain.SubmissionInput) (domain.Submission, error) {
	dec, err := f.limiter.CheckAndRecord(ctx, strings.ToLower(in.Email))
	if err != nil {
		return domain.Submission{}, err
	}
	if !dec.Allowed {
		return domain.Submission{}, perr.RateLimitedf(dec.RetryAfter, "too many submissions")
	}
	sub := domain.Submission{ID: "sub-1", Email: in.Email, Status: "new"}
	f.subs = append(f.subs, sub)
	return sub, nil
}

func (f *fakeSvc) Recent(_ context.Context, limit int) ([]domain.Submission, error) {
	return f.subs, nil
}

func newAuth() *httpkit.Port {
	return httpkit.NewPortFunc(func(token string) (string, error) {
		if token != "sekrit" {
			return "", perr.Unauthorizedf("invalid bearer token")
		}
		return "admin", nil
	})
}

func validBody() string {
	return `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"service_interest": "automation-setup",
		"message": "We spend 30 hours a week on manual reconciliation."
	}`
}

func TestSubmitReturns201(t *testing.T) {
	f := &fakeSvc{limiter: ratelimit.NewMemory(5 * time.Minute)}
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), f, newAuth())

	req := httptest.NewRequest("POST", "/", strings.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != 201 {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if len(f.subs) != 1 {
		t.Fatalf("want 1 stored submission, got %d", len(f.subs))
	}
}

func TestSubmitRateLimitedSetsRetryAfter(t *testing.T) {
	f := &fakeSvc{limiter: ratelimit.NewMemory(5 * time.Minute)}
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), f, newAuth())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/", strings.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if i == 0 {
			if rec.Code != 201 {
				t.Fatalf("first: status = %d", rec.Code)
			}
			continue
		}
		if rec.Code != 429 {
			t.Fatalf("second: status = %d, want 429, body %s", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("Retry-After") == "" {
			t.Fatal("Retry-After header missing")
		}
		var env httpkit.Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.RetryAfter <= 0 {
			t.Fatalf("retry_after = %d", env.RetryAfter)
		}
	}
}

func TestSubmitValidationFailureDoesNotBurnWindow(t *testing.T) {
	f := &fakeSvc{limiter: ratelimit.NewMemory(5 * time.Minute)}
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), f, newAuth())

	// message far too short: rejected at bind, service never sees it
	bad := `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"service_interest": "automation-setup",
		"message": "short"
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(bad))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
	if f.limiter.Len() != 0 {
		t.Fatalf("limiter saw %d keys, want 0", f.limiter.Len())
	}

	// the same email must still be accepted afterwards
	req = httptest.NewRequest("POST", "/", strings.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != 201 {
		t.Fatalf("valid resubmit: status = %d", rec.Code)
	}
}

func TestRecentRequiresBearer(t *testing.T) {
	f := &fakeSvc{limiter: ratelimit.NewMemory(5 * time.Minute)}
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), f, newAuth())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != 401 {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("admin: status = %d, body %s", rec.Code, rec.Body.String())
	}
}
