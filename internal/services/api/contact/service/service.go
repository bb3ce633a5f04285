// Package service contains the contact submission workflow
package service

import (
	"context"
	"strings"

	"neuraledge/internal/modkit/repokit"
	perr "neuraledge/internal/platform/errors"
	"neuraledge/internal/platform/logger"
	"neuraledge/internal/platform/ratelimit"
	"neuraledge/internal/services/api/contact/domain"
	"neuraledge/internal/services/api/contact/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for contact
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	limiter ratelimit.Limiter
}

// New creates a new contact service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], limiter ratelimit.Limiter) *Svc {
	if db == nil {
		panic("contact.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("contact.Service requires a non nil Repo binder")
	}
	if limiter == nil {
		panic("contact.Service requires a non nil Limiter")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, limiter: limiter}
}

// Submit throttles by email and persists the submission with status new.
// The limiter only sees requests that already passed validation, so a
// rejected payload never burns the sender's window
func (s *Svc) Submit(ctx context.Context, in domain.SubmissionInput) (domain.Submission, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	dec, err := s.limiter.CheckAndRecord(ctx, email)
	if err != nil {
		return domain.Submission{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "contact limiter")
	}
	if !dec.Allowed {
		return domain.Submission{}, perr.RateLimitedf(dec.RetryAfter,
			"too many submissions for this email, please try again later")
	}

	row, err := s.Repo.Insert(ctx, repo.RowSubmission{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Email:           email,
		Company:         strings.TrimSpace(in.Company),
		ServiceInterest: in.ServiceInterest,
		Message:         strings.TrimSpace(in.Message),
		Status:          "new",
	})
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("contact submission persist failed")
		return domain.Submission{}, perr.Internalf("could not save submission")
	}

	return toDomain(row), nil
}

// Recent returns the newest submissions for the sales dashboard
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.Submission, error) {
	rows, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return out, nil
}

func toDomain(r repo.RowSubmission) domain.Submission {
	return domain.Submission{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Company:         r.Company,
		ServiceInterest: r.ServiceInterest,
		Message:         r.Message,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
}
