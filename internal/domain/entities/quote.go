package entities

import "time"

// Quote is a priced stop-loss proposal for a group.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id, created_at
//
// Monetary representation:
//   - rates are rounded to 6 decimals, currency and PEPM to 2, RiskScore to 4.
//   - max liabilities are nil when the branch was not priced.
type Quote struct {
	ID                        string       `json:"id"`
	TenantID                  string       `json:"tenant_id"`
	QuoteNumber               string       `json:"quote_number"`
	GroupID                   string       `json:"group_id"`
	CoverageType              CoverageType `json:"coverage_type"`
	Status                    QuoteStatus  `json:"status"`
	SpecificAttachmentPoint   float64      `json:"specific_attachment_point"`
	SpecificMaxLiability      *float64     `json:"specific_max_liability,omitempty"`
	SpecificPremiumRate       float64      `json:"specific_premium_rate"`
	SpecificAnnualPremium     float64      `json:"specific_annual_premium"`
	AggregateAttachmentPoint  float64      `json:"aggregate_attachment_point"`
	AggregateAttachmentFactor float64      `json:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64     `json:"aggregate_max_liability,omitempty"`
	AggregatePremiumRate      float64      `json:"aggregate_premium_rate"`
	AggregateAnnualPremium    float64      `json:"aggregate_annual_premium"`
	TotalAnnualPremium        float64      `json:"total_annual_premium"`
	PEPMRate                  float64      `json:"pepm_rate"`
	RiskScore                 float64      `json:"risk_score"`
	RiskFactors               RiskFactors  `json:"risk_factors"`
	ExpectedClaims            float64      `json:"expected_claims"`
	EffectiveDate             time.Time    `json:"effective_date"`
	ExpirationDate            time.Time    `json:"expiration_date"`
	ContractPeriodMonths      int          `json:"contract_period_months"`
	UnderwriterNotes          string       `json:"underwriter_notes,omitempty"`
	QuoteValidUntil           time.Time    `json:"quote_valid_until"`
	CreatedAt                 time.Time    `json:"created_at"`
	UpdatedAt                 time.Time    `json:"updated_at"`
}

// ValidityLapsed reports whether the quote's validity deadline is before now.
func (q Quote) ValidityLapsed(now time.Time) bool {
	return !q.QuoteValidUntil.IsZero() && q.QuoteValidUntil.Before(now)
}
