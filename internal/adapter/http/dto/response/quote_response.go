package response

import (
	"time"

	"stoploss_quoting/internal/domain/entities"
)

type QuoteResponse struct {
	ID                        string               `json:"id"`
	QuoteNumber               string               `json:"quote_number"`
	GroupID                   string               `json:"group_id"`
	CoverageType              string               `json:"coverage_type"`
	Status                    string               `json:"status"`
	SpecificAttachmentPoint   float64              `json:"specific_attachment_point"`
	SpecificMaxLiability      *float64             `json:"specific_max_liability,omitempty"`
	SpecificPremiumRate       float64              `json:"specific_premium_rate"`
	SpecificAnnualPremium     float64              `json:"specific_annual_premium"`
	AggregateAttachmentPoint  float64              `json:"aggregate_attachment_point"`
	AggregateAttachmentFactor float64              `json:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64             `json:"aggregate_max_liability,omitempty"`
	AggregatePremiumRate      float64              `json:"aggregate_premium_rate"`
	AggregateAnnualPremium    float64              `json:"aggregate_annual_premium"`
	TotalAnnualPremium        float64              `json:"total_annual_premium"`
	PEPMRate                  float64              `json:"pepm_rate"`
	RiskScore                 float64              `json:"risk_score"`
	RiskFactors               entities.RiskFactors `json:"risk_factors"`
	ExpectedClaims            float64              `json:"expected_claims"`
	EffectiveDate             string               `json:"effective_date"`
	ExpirationDate            string               `json:"expiration_date"`
	ContractPeriodMonths      int                  `json:"contract_period_months"`
	UnderwriterNotes          string               `json:"underwriter_notes,omitempty"`
	QuoteValidUntil           string               `json:"quote_valid_until"`
	CreatedAt                 time.Time            `json:"created_at"`
	UpdatedAt                 time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                        q.ID,
		QuoteNumber:               q.QuoteNumber,
		GroupID:                   q.GroupID,
		CoverageType:              string(q.CoverageType),
		Status:                    string(q.Status),
		SpecificAttachmentPoint:   q.SpecificAttachmentPoint,
		SpecificMaxLiability:      q.SpecificMaxLiability,
		SpecificPremiumRate:       q.SpecificPremiumRate,
		SpecificAnnualPremium:     q.SpecificAnnualPremium,
		AggregateAttachmentPoint:  q.AggregateAttachmentPoint,
		AggregateAttachmentFactor: q.AggregateAttachmentFactor,
		AggregateMaxLiability:     q.AggregateMaxLiability,
		AggregatePremiumRate:      q.AggregatePremiumRate,
		AggregateAnnualPremium:    q.AggregateAnnualPremium,
		TotalAnnualPremium:        q.TotalAnnualPremium,
		PEPMRate:                  q.PEPMRate,
		RiskScore:                 q.RiskScore,
		RiskFactors:               q.RiskFactors,
		ExpectedClaims:            q.ExpectedClaims,
		EffectiveDate:             formatDate(q.EffectiveDate),
		ExpirationDate:            formatDate(q.ExpirationDate),
		ContractPeriodMonths:      q.ContractPeriodMonths,
		UnderwriterNotes:          q.UnderwriterNotes,
		QuoteValidUntil:           formatDate(q.QuoteValidUntil),
		CreatedAt:                 q.CreatedAt,
		UpdatedAt:                 q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
