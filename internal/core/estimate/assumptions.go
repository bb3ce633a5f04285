// Package estimate implements the deterministic ROI and qualifier math.
// Pure functions only, no transport or storage concerns
package estimate

// Assumptions are the fixed model inputs behind the ROI projection.
// Defaults reflect the published consulting model and can be overridden
// from configuration at module construction
type Assumptions struct {
	// Efficiency is the share of targeted hours automation actually removes
	Efficiency float64
	// ErrorCostShare is the fraction of payroll lost per error-rate point
	ErrorCostShare float64
	// ImplementationCost is the assumed one-time engagement cost in dollars
	ImplementationCost float64
	// WorkYearHours is the salaried hours in a work year
	WorkYearHours float64
	// ErrorReductionRate is the share of the error rate automation removes
	ErrorReductionRate float64
}

// DefaultAssumptions returns the published model constants
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Efficiency:         0.70,
		ErrorCostShare:     0.05,
		ImplementationCost: 50000,
		WorkYearHours:      2080,
		ErrorReductionRate: 0.85,
	}
}
