package response

import (
	"time"

	"stoploss_quoting/internal/domain/entities"
)

type MemberResponse struct {
	ID                     string    `json:"id"`
	GroupID                string    `json:"group_id"`
	ExternalID             string    `json:"member_id_external"`
	DateOfBirth            string    `json:"date_of_birth"`
	Gender                 string    `json:"gender"`
	ZipCode                string    `json:"zip_code,omitempty"`
	RelationshipCode       string    `json:"relationship_code,omitempty"`
	RiskScore              *float64  `json:"risk_score,omitempty"`
	ChronicConditions      []string  `json:"chronic_conditions"`
	HistoricalClaimsAmount *float64  `json:"historical_claims_amount,omitempty"`
	LargeClaimant          bool      `json:"large_claimant_flag"`
	DiagnosisCodes         []string  `json:"diagnosis_codes"`
	EnrollmentDate         *string   `json:"enrollment_date,omitempty"`
	TerminationDate        *string   `json:"termination_date,omitempty"`
	PlanType               string    `json:"plan_type,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func FromMember(m entities.Member) MemberResponse {
	return MemberResponse{
		ID:                     m.ID,
		GroupID:                m.GroupID,
		ExternalID:             m.ExternalID,
		DateOfBirth:            formatDate(m.DateOfBirth),
		Gender:                 m.Gender,
		ZipCode:                m.ZipCode,
		RelationshipCode:       m.RelationshipCode,
		RiskScore:              m.RiskScore,
		ChronicConditions:      emptyIfNil(m.ChronicConditions),
		HistoricalClaimsAmount: m.HistoricalClaimsAmount,
		LargeClaimant:          m.LargeClaimant,
		DiagnosisCodes:         emptyIfNil(m.DiagnosisCodes),
		EnrollmentDate:         formatDatePtr(m.EnrollmentDate),
		TerminationDate:        formatDatePtr(m.TerminationDate),
		PlanType:               m.PlanType,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func FromMembers(members []entities.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromMember(m))
	}
	return out
}

type BulkUploadResponse struct {
	GroupID string `json:"group_id"`
	Created int    `json:"created"`
}
