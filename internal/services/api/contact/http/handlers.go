// Package http provides http transport for contact
package http

import (
	stdhttp "net/http"
	"strconv"

	"neuraledge/internal/modkit/httpkit"
	"neuraledge/internal/platform/logger"
	"neuraledge/internal/platform/net/middleware"
	"neuraledge/internal/services/api/contact/domain"
	svc "neuraledge/internal/services/api/contact/service"
)

// Register mounts contact endpoints on the given router
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	r.Post("/", httpkit.JSON(h.submit))
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		pr.Get("/", httpkit.Call(h.recent))
	})
}

type handlers struct{ svc svc.Service }

// @Summary Submit a contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body domain.SubmissionInput true "Submission"
// @Success 201 {object} domain.Submission "created"
// @Failure 429 {object} httpkit.Envelope "rate limited"
// @Router /contact [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmissionInput) (any, error) {
	sub, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(sub), nil
}

// @Summary List recent submissions
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max rows" default(25)
// @Success 200 {array} domain.Submission "ok"
// @Router /contact [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 25
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	logger.C(r.Context()).Info().
		Str("caller", httpkit.MustCaller(r)).
		Int("limit", limit).
		Msg("submissions reviewed")
	return h.svc.Recent(r.Context(), limit)
}
