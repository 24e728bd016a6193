package entities

import "time"

// Review is the latest underwriting decision record of a quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id (one review per quote; resubmission overwrites it)
//   - GSI (tenant_id-index): tenant_id, created_at
type Review struct {
	ID                         string               `json:"id"`
	TenantID                   string               `json:"tenant_id"`
	QuoteID                    string               `json:"quote_id"`
	Decision                   UnderwritingDecision `json:"decision"`
	RiskTier                   RiskTier             `json:"risk_tier"`
	RiskScore                  float64              `json:"risk_score"`
	RiskFactors                RiskFactors          `json:"risk_factors"`
	LargeClaimantCount         int                  `json:"large_claimant_count"`
	ExpectedLossRatio          float64              `json:"expected_loss_ratio"`
	RecommendedAttachmentPoint float64              `json:"recommended_attachment_point"`
	PremiumAdjustmentFactor    float64              `json:"premium_adjustment_factor"`
	Notes                      string               `json:"notes,omitempty"`
	ReviewedBy                 string               `json:"reviewed_by,omitempty"`
	ReviewedAt                 *time.Time           `json:"reviewed_at,omitempty"`
	Conditions                 []string             `json:"conditions"`
	Exclusions                 []string             `json:"exclusions"`
	CreatedAt                  time.Time            `json:"created_at"`
	UpdatedAt                  time.Time            `json:"updated_at"`
}
