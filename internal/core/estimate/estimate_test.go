package estimate

import (
	"math"
	"testing"
)

func TestROIReferenceProfile(t *testing.T) {
	p := BusinessProfile{
		Employees:        50,
		AvgSalary:        60000,
		HoursPerWeek:     10,
		ErrorRatePercent: 15,
	}
	got := ROI(p, DefaultAssumptions())

	// hourlyRate 28.846, weekly saved 7, annual 18200h, labor 525000,
	// error reduction 22500, total 547500
	if got.WeeklyHoursSaved != 7 {
		t.Errorf("weekly hours saved = %v, want 7", got.WeeklyHoursSaved)
	}
	if got.AnnualHoursSaved != 18200 {
		t.Errorf("annual hours saved = %v, want 18200", got.AnnualHoursSaved)
	}
	if got.AnnualLaborSavings != 525000 {
		t.Errorf("labor savings = %v, want 525000", got.AnnualLaborSavings)
	}
	if got.ErrorCostReduction != 22500 {
		t.Errorf("error cost reduction = %v, want 22500", got.ErrorCostReduction)
	}
	if got.TotalAnnualSavings != 547500 {
		t.Errorf("total annual savings = %v, want 547500", got.TotalAnnualSavings)
	}
	if got.MonthlySavings != 45625 {
		t.Errorf("monthly savings = %v, want 45625", got.MonthlySavings)
	}
	if got.YearlyROIPercent != 995 {
		t.Errorf("roi percent = %v, want 995", got.YearlyROIPercent)
	}
	if got.PaybackMonths == nil || *got.PaybackMonths != 1.1 {
		t.Errorf("payback = %v, want 1.1", got.PaybackMonths)
	}
	if got.ProductivityGainPercent != 70 {
		t.Errorf("productivity gain = %v, want 70", got.ProductivityGainPercent)
	}
	if got.ErrorReductionPercent != 13 {
		t.Errorf("error reduction = %v, want 13", got.ErrorReductionPercent)
	}
}

func TestROIZeroHoursGuards(t *testing.T) {
	p := BusinessProfile{
		Employees:        10,
		AvgSalary:        50000,
		HoursPerWeek:     0,
		ErrorRatePercent: 0,
	}
	got := ROI(p, DefaultAssumptions())

	if got.ProductivityGainPercent != 0 {
		t.Errorf("productivity gain = %v, want 0", got.ProductivityGainPercent)
	}
	// no hours and no errors means zero savings, payback undefined
	if got.MonthlySavings != 0 {
		t.Errorf("monthly savings = %v, want 0", got.MonthlySavings)
	}
	if got.PaybackMonths != nil {
		t.Errorf("payback = %v, want nil", *got.PaybackMonths)
	}
	if got.YearlyROIPercent != -100 {
		t.Errorf("roi percent = %v, want -100", got.YearlyROIPercent)
	}
}

func TestROIIdempotent(t *testing.T) {
	p := BusinessProfile{Employees: 7, AvgSalary: 42000, HoursPerWeek: 12.5, ErrorRatePercent: 3.3}
	a := DefaultAssumptions()
	first := ROI(p, a)
	for i := 0; i < 5; i++ {
		got := ROI(p, a)
		gp, fp := got, first
		gp.PaybackMonths, fp.PaybackMonths = nil, nil
		if gp != fp {
			t.Fatalf("not idempotent: %+v vs %+v", got, first)
		}
		if (got.PaybackMonths == nil) != (first.PaybackMonths == nil) {
			t.Fatalf("payback nil mismatch")
		}
		if got.PaybackMonths != nil && *got.PaybackMonths != *first.PaybackMonths {
			t.Fatalf("payback differs: %v vs %v", *got.PaybackMonths, *first.PaybackMonths)
		}
	}
}

func TestROIWholeUnitRounding(t *testing.T) {
	p := BusinessProfile{Employees: 3, AvgSalary: 31111, HoursPerWeek: 7.3, ErrorRatePercent: 2.7}
	got := ROI(p, DefaultAssumptions())

	for name, v := range map[string]float64{
		"weekly":       got.WeeklyHoursSaved,
		"annual":       got.AnnualHoursSaved,
		"labor":        got.AnnualLaborSavings,
		"error":        got.ErrorCostReduction,
		"total":        got.TotalAnnualSavings,
		"monthly":      got.MonthlySavings,
		"roi":          got.YearlyROIPercent,
		"productivity": got.ProductivityGainPercent,
		"errreduction": got.ErrorReductionPercent,
	} {
		if v != math.Trunc(v) {
			t.Errorf("%s = %v, want whole number", name, v)
		}
	}
	if got.PaybackMonths != nil {
		v := *got.PaybackMonths
		if math.Round(v*10)/10 != v {
			t.Errorf("payback = %v, want one decimal", v)
		}
	}
}

func TestROICustomAssumptions(t *testing.T) {
	a := DefaultAssumptions()
	a.ImplementationCost = 10000
	p := BusinessProfile{Employees: 50, AvgSalary: 60000, HoursPerWeek: 10, ErrorRatePercent: 15}
	got := ROI(p, a)
	// (547500 - 10000) / 10000 * 100 = 5375
	if got.YearlyROIPercent != 5375 {
		t.Errorf("roi percent = %v, want 5375", got.YearlyROIPercent)
	}
}

func TestQualifierBands(t *testing.T) {
	cases := []struct {
		size, timeline string
		cost, duration string
	}{
		{"small", "urgent", "$15K-$30K", "4-6 weeks"},
		{"medium", "normal", "$30K-$60K", "6-10 weeks"},
		{"large", "flexible", "$60K-$150K", "10-16 weeks"},
		{"enterprise", "urgent", "$150K+", "4-6 weeks"},
	}
	for _, tc := range cases {
		got := Qualifier(QualifierProfile{
			Industry:    "finance",
			CompanySize: tc.size,
			Challenge:   "manual reporting",
			Timeline:    tc.timeline,
			Budget:      "15k-50k",
		})
		if got.EstimatedCost != tc.cost {
			t.Errorf("%s: cost = %q, want %q", tc.size, got.EstimatedCost, tc.cost)
		}
		if got.EstimatedTimeline != tc.duration {
			t.Errorf("%s: timeline = %q, want %q", tc.timeline, got.EstimatedTimeline, tc.duration)
		}
		if got.ExpectedROI == "" {
			t.Error("expected roi must be the fixed display constant")
		}
	}
}

func TestQualifierUnmatchedKeysDefault(t *testing.T) {
	got := Qualifier(QualifierProfile{CompanySize: "galactic", Timeline: "yesterday"})
	if got.EstimatedCost != "$30K-$60K" {
		t.Errorf("cost = %q, want medium band", got.EstimatedCost)
	}
	if got.EstimatedTimeline != "6-10 weeks" {
		t.Errorf("timeline = %q, want normal band", got.EstimatedTimeline)
	}
}
