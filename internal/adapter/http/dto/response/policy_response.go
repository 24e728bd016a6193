package response

import (
	"time"

	"stoploss_quoting/internal/domain/entities"
)

type PolicyResponse struct {
	ID                        string         `json:"id"`
	PolicyNumber              string         `json:"policy_number"`
	GroupID                   string         `json:"group_id"`
	QuoteID                   string         `json:"quote_id"`
	CoverageType              string         `json:"coverage_type"`
	Status                    string         `json:"status"`
	EffectiveDate             string         `json:"effective_date"`
	TerminationDate           string         `json:"termination_date"`
	SpecificAttachmentPoint   float64        `json:"specific_attachment_point"`
	SpecificMaxLiability      *float64       `json:"specific_max_liability,omitempty"`
	AggregateAttachmentPoint  float64        `json:"aggregate_attachment_point"`
	AggregateAttachmentFactor float64        `json:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64       `json:"aggregate_max_liability,omitempty"`
	TotalAnnualPremium        float64        `json:"total_annual_premium"`
	PEPMRate                  float64        `json:"pepm_rate"`
	Terms                     map[string]any `json:"terms"`
	BoundBy                   string         `json:"bound_by,omitempty"`
	BoundAt                   time.Time      `json:"bound_at"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	terms := p.Terms
	if terms == nil {
		terms = map[string]any{}
	}
	return PolicyResponse{
		ID:                        p.ID,
		PolicyNumber:              p.PolicyNumber,
		GroupID:                   p.GroupID,
		QuoteID:                   p.QuoteID,
		CoverageType:              string(p.CoverageType),
		Status:                    string(p.Status),
		EffectiveDate:             formatDate(p.EffectiveDate),
		TerminationDate:           formatDate(p.TerminationDate),
		SpecificAttachmentPoint:   p.SpecificAttachmentPoint,
		SpecificMaxLiability:      p.SpecificMaxLiability,
		AggregateAttachmentPoint:  p.AggregateAttachmentPoint,
		AggregateAttachmentFactor: p.AggregateAttachmentFactor,
		AggregateMaxLiability:     p.AggregateMaxLiability,
		TotalAnnualPremium:        p.TotalAnnualPremium,
		PEPMRate:                  p.PEPMRate,
		Terms:                     terms,
		BoundBy:                   p.BoundBy,
		BoundAt:                   p.BoundAt,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

func FromPolicies(policies []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p))
	}
	return out
}
