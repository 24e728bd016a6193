package request

import (
	"strings"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase"
)

type ManualReviewRequest struct {
	QuoteID    string   `json:"quote_id" binding:"required"`
	Decision   string   `json:"decision" binding:"required"`
	Notes      string   `json:"notes"`
	ReviewedBy string   `json:"reviewed_by"`
	Conditions []string `json:"conditions"`
	Exclusions []string `json:"exclusions"`
}

func (r ManualReviewRequest) ToInput() usecase.ManualReviewInput {
	return usecase.ManualReviewInput{
		QuoteID:    strings.TrimSpace(r.QuoteID),
		Decision:   entities.UnderwritingDecision(strings.ToLower(strings.TrimSpace(r.Decision))),
		Notes:      r.Notes,
		ReviewedBy: r.ReviewedBy,
		Conditions: r.Conditions,
		Exclusions: r.Exclusions,
	}
}
