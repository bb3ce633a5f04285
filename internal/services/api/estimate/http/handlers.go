// Package http provides http transport for estimates
package http

import (
	stdhttp "net/http"

	"neuraledge/internal/core/estimate"
	"neuraledge/internal/modkit/httpkit"
	svc "neuraledge/internal/services/api/estimate/service"
)

// Register mounts estimate endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/roi", h.roi)
	httpkit.PostJSON(r, "/qualifier", h.qualifier)
}

type handlers struct{ svc svc.Service }

// @Summary Project automation ROI for a business profile
// @Tags Estimate
// @Accept json
// @Produce json
// @Param payload body estimate.BusinessProfile true "Profile"
// @Success 200 {object} estimate.ROIEstimate "ok"
// @Failure 422 {object} httpkit.Envelope "out of range input"
// @Router /estimate/roi [post]
func (h *handlers) roi(r *stdhttp.Request, p estimate.BusinessProfile) (any, error) {
	return h.svc.ROI(r.Context(), p)
}

// @Summary Estimate engagement cost and timeline bands
// @Tags Estimate
// @Accept json
// @Produce json
// @Param payload body estimate.QualifierProfile true "Profile"
// @Success 200 {object} estimate.QualifierEstimate "ok"
// @Router /estimate/qualifier [post]
func (h *handlers) qualifier(r *stdhttp.Request, p estimate.QualifierProfile) (any, error) {
	return h.svc.Qualifier(r.Context(), p)
}
