package entities

// RiskFactors holds the six sub-factor scores, each in [0,1].
type RiskFactors struct {
	Demographic      float64 `json:"demographic_score"`
	HistoricalClaims float64 `json:"historical_claims_score"`
	ChronicCondition float64 `json:"chronic_condition_score"`
	LargeClaimant    float64 `json:"large_claimant_score"`
	Geographic       float64 `json:"geographic_score"`
	Industry         float64 `json:"industry_score"`
}

type NamedFactor struct {
	Key   string
	Label string
	Score float64
}

// Named lists the factors in their fixed composite order.
func (f RiskFactors) Named() []NamedFactor {
	return []NamedFactor{
		{Key: "demographic_score", Label: "Demographic", Score: f.Demographic},
		{Key: "historical_claims_score", Label: "Historical Claims", Score: f.HistoricalClaims},
		{Key: "chronic_condition_score", Label: "Chronic Condition", Score: f.ChronicCondition},
		{Key: "large_claimant_score", Label: "Large Claimant", Score: f.LargeClaimant},
		{Key: "geographic_score", Label: "Geographic", Score: f.Geographic},
		{Key: "industry_score", Label: "Industry", Score: f.Industry},
	}
}

// RiskAssessment is the computed risk profile of a group. It is never
// persisted on its own; quotes and reviews snapshot parts of it.
type RiskAssessment struct {
	OverallScore                         float64     `json:"overall_risk_score"`
	Tier                                 RiskTier    `json:"risk_tier"`
	ExpectedClaimsCost                   float64     `json:"expected_claims_cost"`
	LargeClaimantCount                   int         `json:"large_claimant_count"`
	Factors                              RiskFactors `json:"specific_factors"`
	RecommendedSpecificAttachment        float64     `json:"recommended_specific_attachment"`
	RecommendedAggregateAttachmentFactor float64     `json:"recommended_aggregate_attachment_factor"`
	ExpectedLossRatio                    float64     `json:"expected_loss_ratio"`
}
