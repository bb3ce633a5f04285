// Package http provides http transport for blog
package http

import (
	stdhttp "net/http"
	"strconv"

	"neuraledge/internal/modkit/httpkit"
	perr "neuraledge/internal/platform/errors"
	"neuraledge/internal/platform/logger"
	"neuraledge/internal/platform/net/middleware"
	"neuraledge/internal/services/api/blog/domain"
	svc "neuraledge/internal/services/api/blog/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts blog endpoints on the given router.
// Reads are public, writes sit behind the bearer auth port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	r.Get("/", httpkit.Handle(h.list))
	r.Get("/{slug}", httpkit.Call(h.bySlug))
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		pr.Post("/", httpkit.JSON(h.create))
		httpkit.PutJSON(pr, "/", h.update)
	})
}

type handlers struct{ svc svc.Service }

// @Summary List blog posts
// @Tags Blog
// @Produce json
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size, max 50" default(10)
// @Param tag query string false "filter by tag containment"
// @Param search query string false "substring match over title and excerpt"
// @Param published query bool false "filter by publish state"
// @Success 200 {object} httpkit.Envelope{data=[]domain.BlogPost} "ok"
// @Router /blogs [get]
func (h *handlers) list(r *stdhttp.Request) httpkit.Response {
	q := parseListQuery(r)
	items, total, err := h.svc.List(r.Context(), q)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.List(items, total, q.Page, q.Limit)
}

// @Summary Get a post by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "post slug"
// @Success 200 {object} domain.BlogPost "ok"
// @Failure 404 {object} httpkit.Envelope "not found or unpublished"
// @Router /blogs/{slug} [get]
func (h *handlers) bySlug(r *stdhttp.Request) (any, error) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		return nil, perr.WithField(perr.Validationf("slug is required"), "slug")
	}
	return h.svc.BySlug(r.Context(), slug)
}

// @Summary Create a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreatePostInput true "Post"
// @Success 201 {object} domain.BlogPost "created"
// @Failure 409 {object} httpkit.Envelope "duplicate slug"
// @Router /blogs [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreatePostInput) (any, error) {
	post, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	logger.C(r.Context()).Info().
		Str("caller", httpkit.MustCaller(r)).
		Str("slug", post.Slug).
		Msg("blog post created")
	return httpkit.Created(post), nil
}

// @Summary Update a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.UpdatePostInput true "Partial update, id required"
// @Success 200 {object} domain.BlogPost "updated"
// @Failure 404 {object} httpkit.Envelope "unknown id"
// @Router /blogs [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdatePostInput) (any, error) {
	post, err := h.svc.Update(r.Context(), in)
	if err != nil {
		return nil, err
	}
	logger.C(r.Context()).Info().
		Str("caller", httpkit.MustCaller(r)).
		Str("slug", post.Slug).
		Msg("blog post updated")
	return post, nil
}

func parseListQuery(r *stdhttp.Request) domain.ListQuery {
	qs := r.URL.Query()
	q := domain.ListQuery{
		Tag:    qs.Get("tag"),
		Search: qs.Get("search"),
	}
	if v := qs.Get("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := qs.Get("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}
	if v := qs.Get("published"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.Published = &b
		}
	}
	q.Normalize()
	return q
}
