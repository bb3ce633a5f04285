// Package repo provides postgres access for blog posts
package repo

import (
	"context"
	"errors"
	"time"

	"neuraledge/internal/modkit/repokit"
	perr "neuraledge/internal/platform/errors"
)

// Repo defines the repository contract for blog posts
type Repo interface {
	Insert(ctx context.Context, row RowPost) (RowPost, error)
	Update(ctx context.Context, patch RowPatch) (RowPost, error)
	List(ctx context.Context, f ListFilter) ([]RowPost, int, error)
	BySlug(ctx context.Context, slug string) (RowPost, error)
}

// RowPost represents a blog post row
type RowPost struct {
	ID              string
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	Author          string
	AuthorBio       string
	Image           string
	SEOTitle        string
	SEODescription  string
	Tags            []string
	IsPublished     bool
	PublishedAt     *time.Time
	ReadTimeMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RowPatch is a partial update; nil fields keep the stored value
type RowPatch struct {
	ID              string
	Title           *string
	Slug            *string
	Excerpt         *string
	Content         *string
	Author          *string
	AuthorBio       *string
	Image           *string
	SEOTitle        *string
	SEODescription  *string
	Tags            []string
	IsPublished     *bool
	PublishedAt     *time.Time
	ReadTimeMinutes *int
}

// ListFilter narrows the public listing
type ListFilter struct {
	Tag       string
	Search    string
	Published *bool
	Limit     int
	Offset    int
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

const postColumns = `
id::text, title, slug, excerpt, content, author,
coalesce(author_bio, ''), coalesce(image, ''),
seo_title, seo_description, tags, is_published, published_at,
read_time_minutes, created_at, updated_at`

func (r *queries) Insert(ctx context.Context, row RowPost) (RowPost, error) {
	const sql = `
insert into blog_posts
  (id, title, slug, excerpt, content, author, author_bio, image,
   seo_title, seo_description, tags, is_published, published_at, read_time_minutes)
values ($1, $2, $3, $4, $5, $6, nullif($7, ''), nullif($8, ''), $9, $10, $11, $12, $13, $14)
returning created_at, updated_at
`
	err := r.q.QueryRow(ctx, sql,
		row.ID,
		row.Title,
		row.Slug,
		row.Excerpt,
		row.Content,
		row.Author,
		row.AuthorBio,
		row.Image,
		row.SEOTitle,
		row.SEODescription,
		row.Tags,
		row.IsPublished,
		row.PublishedAt,
		row.ReadTimeMinutes,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return RowPost{}, perr.FromPostgresWithField(err, "insert blog post")
	}
	return row, nil
}

// Update applies a partial update. Flipping is_published true without an
// explicit published_at stamps the current time, matching the create flow
func (r *queries) Update(ctx context.Context, patch RowPatch) (RowPost, error) {
	const sql = `
update blog_posts set
  title             = coalesce($2, title),
  slug              = coalesce($3, slug),
  excerpt           = coalesce($4, excerpt),
  content           = coalesce($5, content),
  author            = coalesce($6, author),
  author_bio        = coalesce($7, author_bio),
  image             = coalesce($8, image),
  seo_title         = coalesce($9, seo_title),
  seo_description   = coalesce($10, seo_description),
  tags              = coalesce($11, tags),
  is_published      = coalesce($12, is_published),
  published_at      = coalesce($13, case
                        when coalesce($12, is_published) and published_at is null then now()
                        else published_at
                      end),
  read_time_minutes = coalesce($14, read_time_minutes),
  updated_at        = now()
where id = $1
returning ` + postColumns + `
`
	row, err := repokit.One(ctx, r.q, scanPost, sql,
		patch.ID,
		patch.Title,
		patch.Slug,
		patch.Excerpt,
		patch.Content,
		patch.Author,
		patch.AuthorBio,
		patch.Image,
		patch.SEOTitle,
		patch.SEODescription,
		patch.Tags,
		patch.IsPublished,
		patch.PublishedAt,
		patch.ReadTimeMinutes,
	)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return RowPost{}, perr.NotFoundf("post %s not found", patch.ID)
		}
		return RowPost{}, perr.FromPostgresWithField(err, "update blog post")
	}
	return row, nil
}

func (r *queries) List(ctx context.Context, f ListFilter) ([]RowPost, int, error) {
	const where = `
where ($1::boolean is null or is_published = $1)
  and ($2::text = '' or tags @> array[$2]::text[])
  and ($3::text = '' or title ilike '%' || $3 || '%' or excerpt ilike '%' || $3 || '%')
`
	total, err := repokit.Scalar[int](ctx, r.q,
		`select count(*) from blog_posts `+where,
		f.Published, f.Tag, f.Search)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count blog posts")
	}

	const sql = `
select ` + postColumns + `
from blog_posts
` + where + `
order by coalesce(published_at, created_at) desc
limit $4 offset $5
`
	rows, err := repokit.Many(ctx, r.q, scanPost, sql,
		f.Published, f.Tag, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list blog posts")
	}
	return rows, total, nil
}

func (r *queries) BySlug(ctx context.Context, slug string) (RowPost, error) {
	const sql = `
select ` + postColumns + `
from blog_posts
where slug = $1
`
	row, err := repokit.One(ctx, r.q, scanPost, sql, slug)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return RowPost{}, perr.NotFoundf("post %q not found", slug)
		}
		return RowPost{}, perr.FromPostgres(err, "get blog post")
	}
	return row, nil
}

func scanPost(row repokit.Row) (RowPost, error) {
	var rr RowPost
	err := row.Scan(
		&rr.ID,
		&rr.Title,
		&rr.Slug,
		&rr.Excerpt,
		&rr.Content,
		&rr.Author,
		&rr.AuthorBio,
		&rr.Image,
		&rr.SEOTitle,
		&rr.SEODescription,
		&rr.Tags,
		&rr.IsPublished,
		&rr.PublishedAt,
		&rr.ReadTimeMinutes,
		&rr.CreatedAt,
		&rr.UpdatedAt,
	)
	return rr, err
}
