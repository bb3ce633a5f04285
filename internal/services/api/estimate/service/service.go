// Package service runs the estimation engine behind the API and records
// analytics events for each computation
package service

import (
	"context"
	"time"

	"neuraledge/internal/core/estimate"
	"neuraledge/internal/platform/logger"
	"neuraledge/internal/services/api/estimate/domain"
	"neuraledge/internal/services/api/estimate/repo"
)

// Service defines the service contract for estimates
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	assumptions estimate.Assumptions
	sink        repo.Sink

	now func() time.Time
}

// New creates a new estimate service
func New(a estimate.Assumptions, sink repo.Sink) *Svc {
	if sink == nil {
		sink = repo.Nop{}
	}
	return &Svc{assumptions: a, sink: sink, now: time.Now}
}

// ROI computes the projection. The analytics write is best effort:
// a sink failure is logged and the caller still gets the estimate
func (s *Svc) ROI(ctx context.Context, p estimate.BusinessProfile) (estimate.ROIEstimate, error) {
	est := estimate.ROI(p, s.assumptions)

	s.record(ctx, repo.Event{
		Kind:             "roi",
		Employees:        p.Employees,
		AvgSalary:        p.AvgSalary,
		HoursPerWeek:     p.HoursPerWeek,
		ErrorRatePercent: p.ErrorRatePercent,
		MonthlySavings:   est.MonthlySavings,
		YearlyROIPercent: est.YearlyROIPercent,
		At:               s.now().UTC(),
	})
	return est, nil
}

// Qualifier looks up the engagement bands for the profile
func (s *Svc) Qualifier(ctx context.Context, p estimate.QualifierProfile) (estimate.QualifierEstimate, error) {
	est := estimate.Qualifier(p)

	s.record(ctx, repo.Event{
		Kind:        "qualifier",
		CompanySize: p.CompanySize,
		Timeline:    p.Timeline,
		Budget:      p.Budget,
		CostBand:    est.EstimatedCost,
		At:          s.now().UTC(),
	})
	return est, nil
}

func (s *Svc) record(ctx context.Context, ev repo.Event) {
	if err := s.sink.Record(ctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("kind", ev.Kind).Msg("estimate analytics write failed")
	}
}
