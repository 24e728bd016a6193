package response

import (
	"time"

	"stoploss_quoting/internal/domain/entities"
)

type ReviewResponse struct {
	ID                         string               `json:"id"`
	QuoteID                    string               `json:"quote_id"`
	Decision                   string               `json:"decision"`
	RiskTier                   string               `json:"risk_tier"`
	RiskScore                  float64              `json:"risk_score"`
	RiskFactors                entities.RiskFactors `json:"risk_factors"`
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

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:                         r.ID,
		QuoteID:                    r.QuoteID,
		Decision:                   string(r.Decision),
		RiskTier:                   string(r.RiskTier),
		RiskScore:                  r.RiskScore,
		RiskFactors:                r.RiskFactors,
		LargeClaimantCount:         r.LargeClaimantCount,
		ExpectedLossRatio:          r.ExpectedLossRatio,
		RecommendedAttachmentPoint: r.RecommendedAttachmentPoint,
		PremiumAdjustmentFactor:    r.PremiumAdjustmentFactor,
		Notes:                      r.Notes,
		ReviewedBy:                 r.ReviewedBy,
		ReviewedAt:                 r.ReviewedAt,
		Conditions:                 emptyIfNil(r.Conditions),
		Exclusions:                 emptyIfNil(r.Exclusions),
		CreatedAt:                  r.CreatedAt,
		UpdatedAt:                  r.UpdatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}
