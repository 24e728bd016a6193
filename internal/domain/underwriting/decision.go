// Package underwriting holds the automatic decision thresholds applied when
// a quote is submitted for review.
package underwriting

import (
	"time"

	"stoploss_quoting/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	autoApproveBelow  = 0.30
	referAbove        = 0.75
	adjustmentPivot   = 0.55
	adjustmentPerUnit = 0.5
)

// AutoDecision only ever returns approve or refer. Decline and
// request_info are reachable through manual review alone.
func AutoDecision(score float64) entities.UnderwritingDecision {
	switch {
	case score < autoApproveBelow:
		return entities.DecisionApprove
	case score > referAbove:
		return entities.DecisionRefer
	default:
		return entities.DecisionApprove
	}
}

// PremiumAdjustmentFactor loads premium linearly above the pivot score.
func PremiumAdjustmentFactor(score float64) float64 {
	if score > adjustmentPivot {
		return 1 + (score-adjustmentPivot)*adjustmentPerUnit
	}
	return 1.0
}

// QuoteStatusFor maps a decision onto the quote lifecycle.
func QuoteStatusFor(decision entities.UnderwritingDecision) entities.QuoteStatus {
	switch decision {
	case entities.DecisionApprove:
		return entities.QuoteStatusApproved
	case entities.DecisionDecline:
		return entities.QuoteStatusDeclined
	default:
		return entities.QuoteStatusPendingReview
	}
}

// NewReview builds the automatic review for a fresh assessment.
func NewReview(quote entities.Quote, risk entities.RiskAssessment, now time.Time) entities.Review {
	return entities.Review{
		ID:                         uuid.NewString(),
		TenantID:                   quote.TenantID,
		QuoteID:                    quote.ID,
		Decision:                   AutoDecision(risk.OverallScore),
		RiskTier:                   risk.Tier,
		RiskScore:                  risk.OverallScore,
		RiskFactors:                risk.Factors,
		LargeClaimantCount:         risk.LargeClaimantCount,
		ExpectedLossRatio:          risk.ExpectedLossRatio,
		RecommendedAttachmentPoint: risk.RecommendedSpecificAttachment,
		PremiumAdjustmentFactor:    PremiumAdjustmentFactor(risk.OverallScore),
		Conditions:                 []string{},
		Exclusions:                 []string{},
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

// ManualReview carries an underwriter's override. Empty fields keep the
// values already on the review.
type ManualReview struct {
	Decision   entities.UnderwritingDecision
	Notes      string
	ReviewedBy string
	Conditions []string
	Exclusions []string
}

// Apply updates the review in place and returns it.
func (m ManualReview) Apply(review entities.Review, now time.Time) entities.Review {
	review.Decision = m.Decision
	if m.Notes != "" {
		review.Notes = m.Notes
	}
	if m.ReviewedBy != "" {
		review.ReviewedBy = m.ReviewedBy
	}
	if m.Conditions != nil {
		review.Conditions = m.Conditions
	}
	if m.Exclusions != nil {
		review.Exclusions = m.Exclusions
	}
	reviewedAt := now
	review.ReviewedAt = &reviewedAt
	review.UpdatedAt = now
	return review
}
