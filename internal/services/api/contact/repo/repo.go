// Package repo provides postgres access for contact submissions
package repo

import (
	"context"
	"time"

	"neuraledge/internal/modkit/repokit"
	perr "neuraledge/internal/platform/errors"
	pstrings "neuraledge/internal/platform/strings"
)

// Repo defines the repository contract for contact submissions
type Repo interface {
	Insert(ctx context.Context, row RowSubmission) (RowSubmission, error)
	Recent(ctx context.Context, limit int) ([]RowSubmission, error)
}

// RowSubmission represents a contact submission row
type RowSubmission struct {
	ID              string
	Name            string
	Email           string
	Company         string
	ServiceInterest string
	Message         string
	Status          string
	CreatedAt       time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowSubmission) (RowSubmission, error) {
	const sql = `
insert into contact_submissions (id, name, email, company, service_interest, message, status)
values ($1, $2, $3, $4, $5, $6, $7)
returning created_at
`
	err := r.q.QueryRow(ctx, sql,
		row.ID,
		row.Name,
		row.Email,
		pstrings.SQLNull(row.Company),
		row.ServiceInterest,
		row.Message,
		row.Status,
	).Scan(&row.CreatedAt)
	if err != nil {
		return RowSubmission{}, perr.FromPostgres(err, "insert contact submission")
	}
	return row, nil
}

func (r *queries) Recent(ctx context.Context, limit int) ([]RowSubmission, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	const sql = `
select id::text, name, email, coalesce(company, ''), service_interest, message, status, created_at
from contact_submissions
order by created_at desc
limit $1
`
	out, err := repokit.Many(ctx, r.q, scanSubmission, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list contact submissions")
	}
	return out, nil
}

func scanSubmission(row repokit.Row) (RowSubmission, error) {
	var rr RowSubmission
	err := row.Scan(
		&rr.ID,
		&rr.Name,
		&rr.Email,
		&rr.Company,
		&rr.ServiceInterest,
		&rr.Message,
		&rr.Status,
		&rr.CreatedAt,
	)
	return rr, err
}
