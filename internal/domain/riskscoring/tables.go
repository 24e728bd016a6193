package riskscoring

import "strings"

const defaultKey = "DEFAULT"

// Relative medical cost by state. Unlisted and missing states use DEFAULT.
var geographicCostFactors = map[string]float64{
	"CA": 1.25, "NY": 1.30, "FL": 1.10, "TX": 1.05, "IL": 1.15,
	"PA": 1.12, "OH": 1.00, "GA": 1.02, "NC": 1.00, "MI": 1.08,
	"NJ": 1.22, "VA": 1.05, "WA": 1.18, "AZ": 1.03, "MA": 1.28,
	defaultKey: 1.05,
}

// Relative claims cost by two-digit SIC major group.
var industryFactors = map[string]float64{
	"15":       1.15, // construction
	"20":       1.05, // food manufacturing
	"28":       1.00, // chemicals
	"35":       1.08, // industrial machinery
	"48":       1.02, // communications
	"60":       0.95, // banking
	"73":       0.92, // business services
	"80":       1.10, // health services
	defaultKey: 1.00,
}

// GeographicFactor returns the cost factor for a two-letter state code.
func GeographicFactor(state string) float64 {
	if f, ok := geographicCostFactors[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return f
	}
	return geographicCostFactors[defaultKey]
}

// IndustryFactor returns the cost factor for the SIC code's first two digits.
func IndustryFactor(sicCode string) float64 {
	prefix := strings.TrimSpace(sicCode)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	if f, ok := industryFactors[prefix]; ok {
		return f
	}
	return industryFactors[defaultKey]
}
