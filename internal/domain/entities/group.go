package entities

import "time"

// HistoricalClaimsData is the group-level claims aggregate used when no
// member carries its own claims history.
type HistoricalClaimsData struct {
	TotalClaims  float64 `json:"total_claims"`
	MemberMonths float64 `json:"member_months"`
}

// Group is a client organization (employer, ACO, health plan...).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id, created_at
type Group struct {
	ID               string                `json:"id"`
	TenantID         string                `json:"tenant_id"`
	Name             string                `json:"name"`
	GroupType        GroupType             `json:"group_type"`
	ContractType     ContractType          `json:"contract_type"`
	TaxID            string                `json:"tax_id,omitempty"`
	State            string                `json:"state,omitempty"`
	Region           string                `json:"region,omitempty"`
	SICCode          string                `json:"sic_code,omitempty"`
	MemberCount      int                   `json:"member_count"`
	EffectiveDate    *time.Time            `json:"effective_date,omitempty"`
	RenewalDate      *time.Time            `json:"renewal_date,omitempty"`
	HistoricalClaims *HistoricalClaimsData `json:"historical_claims_data,omitempty"`
	PriorCoverage    map[string]any        `json:"prior_coverage,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
