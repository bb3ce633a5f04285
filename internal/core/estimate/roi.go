package estimate

import "math"

// BusinessProfile is the input to the ROI projection
type BusinessProfile struct {
	Employees        int     `json:"employees" validate:"required,min=1,max=500"`
	AvgSalary        float64 `json:"avg_salary" validate:"required,min=30000,max=150000"`
	HoursPerWeek     float64 `json:"hours_per_week" validate:"min=0,max=40"`
	ErrorRatePercent float64 `json:"error_rate_percent" validate:"min=0,max=50"`
}

// ROIEstimate is the projection output. Currency fields are whole dollars,
// percentages whole points, payback months one decimal.
// PaybackMonths is nil when monthly savings are zero
type ROIEstimate struct {
	WeeklyHoursSaved        float64  `json:"weekly_hours_saved"`
	AnnualHoursSaved        float64  `json:"annual_hours_saved"`
	AnnualLaborSavings      float64  `json:"annual_labor_savings"`
	ErrorCostReduction      float64  `json:"error_cost_reduction"`
	TotalAnnualSavings      float64  `json:"total_annual_savings"`
	MonthlySavings          float64  `json:"monthly_savings"`
	YearlyROIPercent        float64  `json:"yearly_roi_percent"`
	PaybackMonths           *float64 `json:"payback_months"`
	ProductivityGainPercent float64  `json:"productivity_gain_percent"`
	ErrorReductionPercent   float64  `json:"error_reduction_percent"`
}

// ROI projects savings for p under the given assumptions.
// Pure and idempotent, recomputed on every call
func ROI(p BusinessProfile, a Assumptions) ROIEstimate {
	hourlyRate := p.AvgSalary / a.WorkYearHours
	weeklyHoursSaved := p.HoursPerWeek * a.Efficiency
	annualHoursSaved := weeklyHoursSaved * 52 * float64(p.Employees)
	annualLaborSavings := annualHoursSaved * hourlyRate
	errorCostReduction := p.AvgSalary * float64(p.Employees) * a.ErrorCostShare * p.ErrorRatePercent / 100
	totalAnnualSavings := annualLaborSavings + errorCostReduction
	monthlySavings := totalAnnualSavings / 12
	yearlyROIPercent := (totalAnnualSavings - a.ImplementationCost) / a.ImplementationCost * 100

	var payback *float64
	if monthlySavings != 0 {
		v := round1(a.ImplementationCost / monthlySavings)
		payback = &v
	}

	productivityGain := 0.0
	if p.HoursPerWeek != 0 {
		productivityGain = weeklyHoursSaved / p.HoursPerWeek * 100
	}

	return ROIEstimate{
		WeeklyHoursSaved:        math.Round(weeklyHoursSaved),
		AnnualHoursSaved:        math.Round(annualHoursSaved),
		AnnualLaborSavings:      math.Round(annualLaborSavings),
		ErrorCostReduction:      math.Round(errorCostReduction),
		TotalAnnualSavings:      math.Round(totalAnnualSavings),
		MonthlySavings:          math.Round(monthlySavings),
		YearlyROIPercent:        math.Round(yearlyROIPercent),
		PaybackMonths:           payback,
		ProductivityGainPercent: math.Round(productivityGain),
		ErrorReductionPercent:   math.Round(p.ErrorRatePercent * a.ErrorReductionRate),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
