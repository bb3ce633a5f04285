// Package domain holds the estimate service contracts
package domain

import (
	"context"

	"neuraledge/internal/core/estimate"
)

// ServicePort defines the service contract for estimates
type ServicePort interface {
	ROI(ctx context.Context, p estimate.BusinessProfile) (estimate.ROIEstimate, error)
	Qualifier(ctx context.Context, p estimate.QualifierProfile) (estimate.QualifierEstimate, error)
}
