package request

import (
	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase"
)

type HistoricalClaimsRequest struct {
	TotalClaims  float64 `json:"total_claims"`
	MemberMonths float64 `json:"member_months"`
}

func (r *HistoricalClaimsRequest) toEntity() *entities.HistoricalClaimsData {
	if r == nil {
		return nil
	}
	return &entities.HistoricalClaimsData{TotalClaims: r.TotalClaims, MemberMonths: r.MemberMonths}
}

type CreateGroupRequest struct {
	Name             string                   `json:"name" binding:"required"`
	GroupType        string                   `json:"group_type" binding:"required"`
	ContractType     string                   `json:"contract_type" binding:"required"`
	TaxID            string                   `json:"tax_id"`
	State            string                   `json:"state"`
	Region           string                   `json:"region"`
	SICCode          string                   `json:"sic_code"`
	MemberCount      int                      `json:"member_count"`
	EffectiveDate    *string                  `json:"effective_date"`
	RenewalDate      *string                  `json:"renewal_date"`
	HistoricalClaims *HistoricalClaimsRequest `json:"historical_claims_data"`
	PriorCoverage    map[string]any           `json:"prior_coverage"`
}

func (r CreateGroupRequest) ToEntity() (entities.Group, error) {
	effective, err := parseDatePtr(r.EffectiveDate)
	if err != nil {
		return entities.Group{}, err
	}
	renewal, err := parseDatePtr(r.RenewalDate)
	if err != nil {
		return entities.Group{}, err
	}

	return entities.Group{
		Name:             r.Name,
		GroupType:        entities.GroupType(r.GroupType),
		ContractType:     entities.ContractType(r.ContractType),
		TaxID:            r.TaxID,
		State:            r.State,
		Region:           r.Region,
		SICCode:          r.SICCode,
		MemberCount:      r.MemberCount,
		EffectiveDate:    effective,
		RenewalDate:      renewal,
		HistoricalClaims: r.HistoricalClaims.toEntity(),
		PriorCoverage:    r.PriorCoverage,
	}, nil
}

// UpdateGroupRequest is a partial update: omitted fields keep their value.
type UpdateGroupRequest struct {
	Name             *string                  `json:"name"`
	GroupType        *string                  `json:"group_type"`
	ContractType     *string                  `json:"contract_type"`
	TaxID            *string                  `json:"tax_id"`
	State            *string                  `json:"state"`
	Region           *string                  `json:"region"`
	SICCode          *string                  `json:"sic_code"`
	MemberCount      *int                     `json:"member_count"`
	EffectiveDate    *string                  `json:"effective_date"`
	RenewalDate      *string                  `json:"renewal_date"`
	HistoricalClaims *HistoricalClaimsRequest `json:"historical_claims_data"`
	PriorCoverage    map[string]any           `json:"prior_coverage"`
}

func (r UpdateGroupRequest) ToPatch() (usecase.GroupUpdate, error) {
	effective, err := parseDatePtr(r.EffectiveDate)
	if err != nil {
		return usecase.GroupUpdate{}, err
	}
	renewal, err := parseDatePtr(r.RenewalDate)
	if err != nil {
		return usecase.GroupUpdate{}, err
	}

	patch := usecase.GroupUpdate{
		Name:             r.Name,
		TaxID:            r.TaxID,
		State:            r.State,
		Region:           r.Region,
		SICCode:          r.SICCode,
		MemberCount:      r.MemberCount,
		EffectiveDate:    effective,
		RenewalDate:      renewal,
		HistoricalClaims: r.HistoricalClaims.toEntity(),
		PriorCoverage:    r.PriorCoverage,
	}
	if r.GroupType != nil {
		gt := entities.GroupType(*r.GroupType)
		patch.GroupType = &gt
	}
	if r.ContractType != nil {
		ct := entities.ContractType(*r.ContractType)
		patch.ContractType = &ct
	}
	return patch, nil
}
