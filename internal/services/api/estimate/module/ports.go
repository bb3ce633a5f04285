package module

import (
	"context"

	"neuraledge/internal/core/estimate"
	estsvc "neuraledge/internal/services/api/estimate/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptEstimatePort adapts the estimate service to the domain port interface
type adaptEstimatePort struct{ svc estsvc.Service }

// ROI implements the domain ServicePort interface
func (a adaptEstimatePort) ROI(ctx context.Context, p estimate.BusinessProfile) (estimate.ROIEstimate, error) {
	return a.svc.ROI(ctx, p)
}

// Qualifier implements the domain ServicePort interface
func (a adaptEstimatePort) Qualifier(ctx context.Context, p estimate.QualifierProfile) (estimate.QualifierEstimate, error) {
	return a.svc.Qualifier(ctx, p)
}
