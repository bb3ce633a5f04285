package service

import (
	"context"
	"testing"
	"time"

	"neuraledge/internal/modkit/repokit"
	perr "neuraledge/internal/platform/errors"
	"neuraledge/internal/platform/ratelimit"
	"neuraledge/internal/services/api/contact/domain"
	"neuraledge/internal/services/api/contact/repo"
)

type fakeRepo struct {
	inserted []repo.RowSubmission
	insErr   error
}

func (f *fakeRepo) Insert(_ context.Context, row repo.RowSubmission) (repo.RowSubmission, error) {
	if f.insErr != nil {
		return repo.RowSubmission{}, f.insErr
	}
	row.CreatedAt = time.Now()
	f.inserted = append(f.inserted, row)
	return row, nil
}

func (f *fakeRepo) Recent(_ context.Context, limit int) ([]repo.RowSubmission, error) {
	if limit > len(f.inserted) {
		limit = len(f.inserted)
	}
	return f.inserted[:limit], nil
}

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

// nopTx satisfies TxRunner for services that never open transactions in tests
type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (nopTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(nopTx{}) }

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:            "Ada Lovelace",
		Email:           "Ada@Example.COM",
		ServiceInterest: "automation-setup",
		Message:         "We spend 30 hours a week on manual reconciliation.",
	}
}

func newSvc(r repo.Repo) *Svc {
	return New(nopTx{}, fakeBinder{r: r}, ratelimit.NewMemory(5*time.Minute))
}

func TestSubmitPersistsWithStatusNew(t *testing.T) {
	fr := &fakeRepo{}
	s := newSvc(fr)

	sub, err := s.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if sub.Status != "new" {
		t.Fatalf("status = %q, want new", sub.Status)
	}
	if sub.ID == "" {
		t.Fatal("id must be assigned")
	}
	if sub.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", sub.Email)
	}
	if len(fr.inserted) != 1 {
		t.Fatalf("want 1 insert, got %d", len(fr.inserted))
	}
}

func TestSubmitRateLimited(t *testing.T) {
	fr := &fakeRepo{}
	s := newSvc(fr)

	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := s.Submit(context.Background(), validInput())
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("want rate limited, got %v", err)
	}
	if len(fr.inserted) != 1 {
		t.Fatalf("denied submit must not persist, got %d inserts", len(fr.inserted))
	}
	e, ok := perr.As(err)
	if !ok || e.RetryAfter() <= 0 {
		t.Fatalf("want positive retry after, got %v", err)
	}
}

func TestSubmitCaseInsensitiveEmailKey(t *testing.T) {
	s := newSvc(&fakeRepo{})
	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	in := validInput()
	in.Email = "ADA@example.com"
	if _, err := s.Submit(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("case variant must hit the same window, got %v", err)
	}
}

func TestSubmitDifferentEmailsIndependent(t *testing.T) {
	s := newSvc(&fakeRepo{})
	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	in := validInput()
	in.Email = "grace@example.com"
	if _, err := s.Submit(context.Background(), in); err != nil {
		t.Fatalf("different email must pass: %v", err)
	}
}

func TestSubmitPersistFailureIsGenericInternal(t *testing.T) {
	fr := &fakeRepo{insErr: perr.DBf("connection reset")}
	s := newSvc(fr)

	_, err := s.Submit(context.Background(), validInput())
	if !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("want internal, got %v", err)
	}
	// the db cause must not leak into the reported message
	if got := err.Error(); got != "could not save submission" {
		t.Fatalf("leaked cause: %q", got)
	}
}

func TestRecent(t *testing.T) {
	fr := &fakeRepo{}
	s := newSvc(fr)
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		in := validInput()
		in.Email = email
		if _, err := s.Submit(context.Background(), in); err != nil {
			t.Fatalf("submit %s: %v", email, err)
		}
	}
	got, err := s.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
}
