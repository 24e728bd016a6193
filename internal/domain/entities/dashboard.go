package entities

type PremiumTrendPoint struct {
	Month   string  `json:"month"`
	Premium float64 `json:"premium"`
}

// DashboardMetrics is the portfolio roll-up for one tenant.
type DashboardMetrics struct {
	TotalGroups         int                 `json:"total_groups"`
	TotalActiveQuotes   int                 `json:"total_active_quotes"`
	TotalActivePolicies int                 `json:"total_active_policies"`
	TotalPremiumInForce float64             `json:"total_premium_in_force"`
	TotalExpectedClaims float64             `json:"total_expected_claims"`
	AverageRiskScore    float64             `json:"average_risk_score"`
	AveragePEPMRate     float64             `json:"average_pepm_rate"`
	QuotesByStatus      map[string]int      `json:"quotes_by_status"`
	PoliciesByStatus    map[string]int      `json:"policies_by_status"`
	CoverageBreakdown   map[string]int      `json:"coverage_breakdown"`
	RiskDistribution    map[string]int      `json:"risk_distribution"`
	PremiumTrend        []PremiumTrendPoint `json:"premium_trend"`
}
