package service

import (
	"context"
	"testing"

	"neuraledge/internal/core/estimate"
	perr "neuraledge/internal/platform/errors"
	"neuraledge/internal/services/api/estimate/repo"
)

type captureSink struct {
	events []repo.Event
	err    error
}

func (c *captureSink) Record(_ context.Context, ev repo.Event) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, ev)
	return nil
}

func profile() estimate.BusinessProfile {
	return estimate.BusinessProfile{
		Employees:        50,
		AvgSalary:        60000,
		HoursPerWeek:     10,
		ErrorRatePercent: 15,
	}
}

func TestROIRecordsAnalyticsEvent(t *testing.T) {
	sink := &captureSink{}
	s := New(estimate.DefaultAssumptions(), sink)

	est, err := s.ROI(context.Background(), profile())
	if err != nil {
		t.Fatalf("roi: %v", err)
	}
	if est.MonthlySavings != 45625 {
		t.Fatalf("monthly = %v", est.MonthlySavings)
	}
	if len(sink.events) != 1 {
		t.Fatalf("want 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Kind != "roi" || ev.Employees != 50 || ev.MonthlySavings != 45625 {
		t.Fatalf("event = %+v", ev)
	}
}

func TestROISinkFailureDoesNotFailRequest(t *testing.T) {
	sink := &captureSink{err: perr.Unavailablef("clickhouse down")}
	s := New(estimate.DefaultAssumptions(), sink)

	est, err := s.ROI(context.Background(), profile())
	if err != nil {
		t.Fatalf("sink failure must not surface: %v", err)
	}
	if est.YearlyROIPercent != 995 {
		t.Fatalf("roi percent = %v", est.YearlyROIPercent)
	}
}

func TestQualifierRecordsBands(t *testing.T) {
	sink := &captureSink{}
	s := New(estimate.DefaultAssumptions(), sink)

	est, err := s.Qualifier(context.Background(), estimate.QualifierProfile{
		Industry:    "finance",
		CompanySize: "medium",
		Challenge:   "manual reconciliation",
		Timeline:    "urgent",
		Budget:      "15k-50k",
	})
	if err != nil {
		t.Fatalf("qualifier: %v", err)
	}
	if est.EstimatedCost != "$30K-$60K" || est.EstimatedTimeline != "4-6 weeks" {
		t.Fatalf("bands = %+v", est)
	}
	if len(sink.events) != 1 || sink.events[0].CostBand != "$30K-$60K" {
		t.Fatalf("events = %+v", sink.events)
	}
}

func TestNilSinkDefaultsToNop(t *testing.T) {
	s := New(estimate.DefaultAssumptions(), nil)
	if _, err := s.ROI(context.Background(), profile()); err != nil {
		t.Fatalf("roi with nop sink: %v", err)
	}
}
