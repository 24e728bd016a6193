package entities

import "time"

// Policy is a bound contract created from an approved quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id (at most one policy per quote)
//   - GSI (id-index): id
//   - GSI (tenant_id-index): tenant_id, created_at
type Policy struct {
	ID                        string         `json:"id"`
	TenantID                  string         `json:"tenant_id"`
	PolicyNumber              string         `json:"policy_number"`
	GroupID                   string         `json:"group_id"`
	QuoteID                   string         `json:"quote_id"`
	CoverageType              CoverageType   `json:"coverage_type"`
	Status                    PolicyStatus   `json:"status"`
	EffectiveDate             time.Time      `json:"effective_date"`
	TerminationDate           time.Time      `json:"termination_date"`
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
