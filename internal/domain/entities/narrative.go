package entities

type NarrativeSource string

const (
	NarrativeSourceAI    NarrativeSource = "ai"
	NarrativeSourceRules NarrativeSource = "rules"
)

// NarrativeRequest is the flattened risk picture handed to a narrative
// generator.
type NarrativeRequest struct {
	RiskScore                  float64              `json:"risk_score"`
	RiskTier                   RiskTier             `json:"risk_tier"`
	Decision                   UnderwritingDecision `json:"decision"`
	RiskFactors                RiskFactors          `json:"risk_factors"`
	LargeClaimantCount         int                  `json:"large_claimant_count"`
	ExpectedLossRatio          float64              `json:"expected_loss_ratio"`
	RecommendedAttachmentPoint float64              `json:"recommended_attachment_point"`
	PremiumAdjustmentFactor    float64              `json:"premium_adjustment_factor"`
	QuoteNumber                string               `json:"quote_number,omitempty"`
	CoverageType               CoverageType         `json:"coverage_type,omitempty"`
	GroupName                  string               `json:"group_name,omitempty"`
}

type Narrative struct {
	Summary        string          `json:"summary"`
	KeyDrivers     []string        `json:"key_drivers"`
	Recommendation string          `json:"recommendation"`
	GeneratedBy    NarrativeSource `json:"generated_by"`
}
