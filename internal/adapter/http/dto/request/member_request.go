package request

import (
	"strings"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase"
)

type CreateMemberRequest struct {
	GroupID                string   `json:"group_id"`
	ExternalID             string   `json:"member_id_external" binding:"required"`
	DateOfBirth            string   `json:"date_of_birth" binding:"required"`
	Gender                 string   `json:"gender" binding:"required"`
	ZipCode                string   `json:"zip_code"`
	RelationshipCode       string   `json:"relationship_code"`
	RiskScore              *float64 `json:"risk_score"`
	ChronicConditions      []string `json:"chronic_conditions"`
	HistoricalClaimsAmount *float64 `json:"historical_claims_amount"`
	LargeClaimant          bool     `json:"large_claimant_flag"`
	DiagnosisCodes         []string `json:"diagnosis_codes"`
	EnrollmentDate         *string  `json:"enrollment_date"`
	TerminationDate        *string  `json:"termination_date"`
	PlanType               string   `json:"plan_type"`
}

func (r CreateMemberRequest) ToEntity() (entities.Member, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return entities.Member{}, err
	}
	enrollment, err := parseDatePtr(r.EnrollmentDate)
	if err != nil {
		return entities.Member{}, err
	}
	termination, err := parseDatePtr(r.TerminationDate)
	if err != nil {
		return entities.Member{}, err
	}

	return entities.Member{
		GroupID:                strings.TrimSpace(r.GroupID),
		ExternalID:             r.ExternalID,
		DateOfBirth:            dob,
		Gender:                 r.Gender,
		ZipCode:                r.ZipCode,
		RelationshipCode:       r.RelationshipCode,
		RiskScore:              r.RiskScore,
		ChronicConditions:      r.ChronicConditions,
		HistoricalClaimsAmount: r.HistoricalClaimsAmount,
		LargeClaimant:          r.LargeClaimant,
		DiagnosisCodes:         r.DiagnosisCodes,
		EnrollmentDate:         enrollment,
		TerminationDate:        termination,
		PlanType:               r.PlanType,
	}, nil
}

// BulkMemberRequest uploads members into one group. A member without a
// group_id inherits the batch's.
type BulkMemberRequest struct {
	GroupID string                `json:"group_id" binding:"required"`
	Members []CreateMemberRequest `json:"members" binding:"required"`
}

func (r BulkMemberRequest) ToEntities() (string, []entities.Member, error) {
	groupID := strings.TrimSpace(r.GroupID)
	out := make([]entities.Member, 0, len(r.Members))
	for _, mr := range r.Members {
		m, err := mr.ToEntity()
		if err != nil {
			return "", nil, err
		}
		if m.GroupID == "" {
			m.GroupID = groupID
		}
		out = append(out, m)
	}
	return groupID, out, nil
}

type UpdateMemberRequest struct {
	ExternalID             *string  `json:"member_id_external"`
	DateOfBirth            *string  `json:"date_of_birth"`
	Gender                 *string  `json:"gender"`
	ZipCode                *string  `json:"zip_code"`
	RelationshipCode       *string  `json:"relationship_code"`
	RiskScore              *float64 `json:"risk_score"`
	ChronicConditions      []string `json:"chronic_conditions"`
	HistoricalClaimsAmount *float64 `json:"historical_claims_amount"`
	LargeClaimant          *bool    `json:"large_claimant_flag"`
	DiagnosisCodes         []string `json:"diagnosis_codes"`
	EnrollmentDate         *string  `json:"enrollment_date"`
	TerminationDate        *string  `json:"termination_date"`
	PlanType               *string  `json:"plan_type"`
}

func (r UpdateMemberRequest) ToPatch() (usecase.MemberUpdate, error) {
	dob, err := parseDatePtr(r.DateOfBirth)
	if err != nil {
		return usecase.MemberUpdate{}, err
	}
	enrollment, err := parseDatePtr(r.EnrollmentDate)
	if err != nil {
		return usecase.MemberUpdate{}, err
	}
	termination, err := parseDatePtr(r.TerminationDate)
	if err != nil {
		return usecase.MemberUpdate{}, err
	}

	return usecase.MemberUpdate{
		ExternalID:             r.ExternalID,
		DateOfBirth:            dob,
		Gender:                 r.Gender,
		ZipCode:                r.ZipCode,
		RelationshipCode:       r.RelationshipCode,
		RiskScore:              r.RiskScore,
		ChronicConditions:      r.ChronicConditions,
		HistoricalClaimsAmount: r.HistoricalClaimsAmount,
		LargeClaimant:          r.LargeClaimant,
		DiagnosisCodes:         r.DiagnosisCodes,
		EnrollmentDate:         enrollment,
		TerminationDate:        termination,
		PlanType:               r.PlanType,
	}, nil
}
