// Package service contains the blog post workflow and derived field computation
package service

import (
	"context"
	"strings"
	"time"

	"neuraledge/internal/core/content"
	"neuraledge/internal/modkit/repokit"
	perr "neuraledge/internal/platform/errors"
	ptime "neuraledge/internal/platform/time"
	"neuraledge/internal/services/api/blog/domain"
	"neuraledge/internal/services/api/blog/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for blog
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new blog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("blog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("blog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// Create derives slug, read time, SEO fields and publish timestamp,
// then persists. A duplicate slug surfaces as a conflict, not a generic failure
func (s *Svc) Create(ctx context.Context, in domain.CreatePostInput) (domain.BlogPost, error) {
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = content.Slugify(in.Title)
	}
	if slug == "" {
		return domain.BlogPost{}, perr.WithField(
			perr.Validationf("title yields an empty slug, supply one explicitly"), "slug")
	}

	tags := normalizeTags(in.Tags)
	if len(tags) == 0 {
		return domain.BlogPost{}, perr.WithField(
			perr.Validationf("tags must contain at least one non blank entry"), "tags")
	}

	publishedAt := in.PublishedAt
	if in.IsPublished && publishedAt == nil {
		publishedAt = ptime.Ptr(s.now().UTC())
	}

	row, err := s.Repo.Insert(ctx, repo.RowPost{
		Title:           strings.TrimSpace(in.Title),
		Slug:            slug,
		Excerpt:         strings.TrimSpace(in.Excerpt),
		Content:         in.Content,
		Author:          strings.TrimSpace(in.Author),
		AuthorBio:       strings.TrimSpace(in.AuthorBio),
		Image:           strings.TrimSpace(in.Image),
		SEOTitle:        content.SEOTitle(in.Title, in.SEOTitle),
		SEODescription:  content.SEODescription(in.Excerpt, in.SEODescription),
		Tags:            tags,
		IsPublished:     in.IsPublished,
		PublishedAt:     publishedAt,
		ReadTimeMinutes: content.ReadTime(in.Content),
		ID:              uuid.NewString(),
	})
	if err != nil {
		return domain.BlogPost{}, err
	}
	return toDomain(row), nil
}

// Update applies a partial update. Read time is recomputed only when
// the content actually changed in this request
func (s *Svc) Update(ctx context.Context, in domain.UpdatePostInput) (domain.BlogPost, error) {
	tags := normalizeTags(in.Tags)
	if in.Tags != nil && len(tags) == 0 {
		return domain.BlogPost{}, perr.WithField(
			perr.Validationf("tags must contain at least one non blank entry"), "tags")
	}

	patch := repo.RowPatch{
		ID:             in.ID,
		Title:          in.Title,
		Slug:           in.Slug,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		Author:         in.Author,
		AuthorBio:      in.AuthorBio,
		Image:          in.Image,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		Tags:           tags,
		IsPublished:    in.IsPublished,
		PublishedAt:    in.PublishedAt,
	}
	if in.Content != nil {
		rt := content.ReadTime(*in.Content)
		patch.ReadTimeMinutes = &rt
	}
	if in.SEOTitle == nil && in.Title != nil {
		t := content.SEOTitle(*in.Title, "")
		patch.SEOTitle = &t
	}
	if in.SEODescription == nil && in.Excerpt != nil {
		d := content.SEODescription(*in.Excerpt, "")
		patch.SEODescription = &d
	}

	row, err := s.Repo.Update(ctx, patch)
	if err != nil {
		return domain.BlogPost{}, err
	}
	return toDomain(row), nil
}

// List returns a page of posts plus the unpaged total
func (s *Svc) List(ctx context.Context, q domain.ListQuery) ([]domain.BlogPost, int, error) {
	q.Normalize()
	rows, total, err := s.Repo.List(ctx, repo.ListFilter{
		Tag:       strings.TrimSpace(q.Tag),
		Search:    strings.TrimSpace(q.Search),
		Published: q.Published,
		Limit:     q.Limit,
		Offset:    (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.BlogPost, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return out, total, nil
}

// BySlug returns a single published post. Unpublished posts are hidden
// from the public path and report not found
func (s *Svc) BySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	row, err := s.Repo.BySlug(ctx, slug)
	if err != nil {
		return domain.BlogPost{}, err
	}
	if !row.IsPublished {
		return domain.BlogPost{}, perr.NotFoundf("post %q not found", slug)
	}
	return toDomain(row), nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}

func toDomain(r repo.RowPost) domain.BlogPost {
	return domain.BlogPost{
		ID:              r.ID,
		Title:           r.Title,
		Slug:            r.Slug,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		Author:          r.Author,
		AuthorBio:       r.AuthorBio,
		Image:           r.Image,
		SEOTitle:        r.SEOTitle,
		SEODescription:  r.SEODescription,
		Tags:            r.Tags,
		IsPublished:     r.IsPublished,
		PublishedAt:     r.PublishedAt,
		ReadTimeMinutes: r.ReadTimeMinutes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
