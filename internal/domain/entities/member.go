package entities

import (
	"strings"
	"time"
)

// Member is a covered life under exactly one Group.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (group_id-index): group_id, created_at
type Member struct {
	ID                     string     `json:"id"`
	TenantID               string     `json:"tenant_id"`
	GroupID                string     `json:"group_id"`
	ExternalID             string     `json:"member_id_external"`
	DateOfBirth            time.Time  `json:"date_of_birth"`
	Gender                 string     `json:"gender"`
	ZipCode                string     `json:"zip_code,omitempty"`
	RelationshipCode       string     `json:"relationship_code,omitempty"`
	RiskScore              *float64   `json:"risk_score,omitempty"`
	ChronicConditions      []string   `json:"chronic_conditions"`
	HistoricalClaimsAmount *float64   `json:"historical_claims_amount,omitempty"`
	LargeClaimant          bool       `json:"large_claimant_flag"`
	DiagnosisCodes         []string   `json:"diagnosis_codes"`
	EnrollmentDate         *time.Time `json:"enrollment_date,omitempty"`
	TerminationDate        *time.Time `json:"termination_date,omitempty"`
	PlanType               string     `json:"plan_type,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// ClaimsAmount returns the historical claims amount, 0 when unknown.
func (m Member) ClaimsAmount() float64 {
	if m.HistoricalClaimsAmount == nil {
		return 0
	}
	return *m.HistoricalClaimsAmount
}

func (m Member) IsFemale() bool {
	return strings.EqualFold(strings.TrimSpace(m.Gender), "F")
}
