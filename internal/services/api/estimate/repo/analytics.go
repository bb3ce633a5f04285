// Package repo provides the clickhouse analytics sink for estimate events
package repo

import (
	"context"
	"time"

	"neuraledge/internal/platform/store"
)

// Event is a single estimate computation, recorded for sales analytics.
// Inputs and headline outputs only, no contact details
type Event struct {
	Kind             string // "roi" or "qualifier"
	Employees        int
	AvgSalary        float64
	HoursPerWeek     float64
	ErrorRatePercent float64
	CompanySize      string
	Timeline         string
	Budget           string
	MonthlySavings   float64
	YearlyROIPercent float64
	CostBand         string
	At               time.Time
}

// Sink records estimate events
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

// CH writes events to the estimate_events clickhouse table
type CH struct{ ch store.Clickhouse }

// NewCH creates a clickhouse backed sink
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

var eventCols = []string{
	"kind",
	"employees",
	"avg_salary",
	"hours_per_week",
	"error_rate_percent",
	"company_size",
	"timeline",
	"budget",
	"monthly_savings",
	"yearly_roi_percent",
	"cost_band",
	"at",
}

// Record implements the Sink interface
func (s *CH) Record(ctx context.Context, ev Event) error {
	return s.ch.Insert(ctx, "estimate_events", eventCols, [][]any{{
		ev.Kind,
		int32(ev.Employees),
		ev.AvgSalary,
		ev.HoursPerWeek,
		ev.ErrorRatePercent,
		ev.CompanySize,
		ev.Timeline,
		ev.Budget,
		ev.MonthlySavings,
		ev.YearlyROIPercent,
		ev.CostBand,
		ev.At,
	}})
}

// Nop is the sink used when clickhouse is not configured
type Nop struct{}

// Record implements the Sink interface
func (Nop) Record(context.Context, Event) error { return nil }
