package estimate

// QualifierProfile is the input to the project qualifier
type QualifierProfile struct {
	Industry    string `json:"industry" validate:"required,oneof=finance healthcare retail manufacturing other"`
	CompanySize string `json:"company_size" validate:"required,oneof=small medium large enterprise"`
	Challenge   string `json:"challenge" validate:"required,min=2,max=500"`
	Timeline    string `json:"timeline" validate:"required,oneof=urgent normal flexible"`
	Budget      string `json:"budget" validate:"required,oneof=under-15k 15k-50k 50k-150k 150k-500k over-500k"`
}

// QualifierEstimate is a display-band answer for sales conversations
type QualifierEstimate struct {
	EstimatedCost     string `json:"estimated_cost"`
	EstimatedTimeline string `json:"estimated_timeline"`
	ExpectedROI       string `json:"expected_roi"`
}

// Static band tables. These are intentionally lookups, not a computed model;
// the bands track the published engagement tiers
var costBands = map[string]string{
	"small":      "$15K-$30K",
	"medium":     "$30K-$60K",
	"large":      "$60K-$150K",
	"enterprise": "$150K+",
}

var timelineBands = map[string]string{
	"urgent":   "4-6 weeks",
	"normal":   "6-10 weeks",
	"flexible": "10-16 weeks",
}

// expectedROI is a fixed display constant
const expectedROI = "3-5x within 12 months"

// Qualifier maps p onto the band tables, falling back to the medium cost
// band and the normal timeline band for unmatched keys
func Qualifier(p QualifierProfile) QualifierEstimate {
	cost, ok := costBands[p.CompanySize]
	if !ok {
		cost = costBands["medium"]
	}
	tl, ok := timelineBands[p.Timeline]
	if !ok {
		tl = timelineBands["normal"]
	}
	return QualifierEstimate{
		EstimatedCost:     cost,
		EstimatedTimeline: tl,
		ExpectedROI:       expectedROI,
	}
}
