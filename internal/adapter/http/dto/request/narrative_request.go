package request

import (
	"strings"

	"stoploss_quoting/internal/domain/entities"
)

type RiskFactorsRequest struct {
	Demographic      float64 `json:"demographic_score"`
	HistoricalClaims float64 `json:"historical_claims_score"`
	ChronicCondition float64 `json:"chronic_condition_score"`
	LargeClaimant    float64 `json:"large_claimant_score"`
	Geographic       float64 `json:"geographic_score"`
	Industry         float64 `json:"industry_score"`
}

type NarrativeRequest struct {
	RiskScore                  float64            `json:"risk_score"`
	RiskTier                   string             `json:"risk_tier" binding:"required"`
	Decision                   string             `json:"decision" binding:"required"`
	RiskFactors                RiskFactorsRequest `json:"risk_factors"`
	LargeClaimantCount         int                `json:"large_claimant_count"`
	ExpectedLossRatio          float64            `json:"expected_loss_ratio"`
	RecommendedAttachmentPoint float64            `json:"recommended_attachment_point"`
	PremiumAdjustmentFactor    float64            `json:"premium_adjustment_factor"`
	QuoteNumber                string             `json:"quote_number"`
	CoverageType               string             `json:"coverage_type"`
	GroupName                  string             `json:"group_name"`
}

func (r NarrativeRequest) ToEntity() entities.NarrativeRequest {
	return entities.NarrativeRequest{
		RiskScore:                  r.RiskScore,
		RiskTier:                   entities.RiskTier(strings.ToLower(strings.TrimSpace(r.RiskTier))),
		Decision:                   entities.UnderwritingDecision(strings.ToLower(strings.TrimSpace(r.Decision))),
		RiskFactors:                entities.RiskFactors(r.RiskFactors),
		LargeClaimantCount:         r.LargeClaimantCount,
		ExpectedLossRatio:          r.ExpectedLossRatio,
		RecommendedAttachmentPoint: r.RecommendedAttachmentPoint,
		PremiumAdjustmentFactor:    r.PremiumAdjustmentFactor,
		QuoteNumber:                strings.TrimSpace(r.QuoteNumber),
		CoverageType:               entities.CoverageType(strings.TrimSpace(r.CoverageType)),
		GroupName:                  strings.TrimSpace(r.GroupName),
	}
}
