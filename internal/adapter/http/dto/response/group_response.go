package response

import (
	"time"

	"stoploss_quoting/internal/domain/entities"
)

type GroupResponse struct {
	ID               string                         `json:"id"`
	TenantID         string                         `json:"tenant_id"`
	Name             string                         `json:"name"`
	GroupType        string                         `json:"group_type"`
	ContractType     string                         `json:"contract_type"`
	TaxID            string                         `json:"tax_id,omitempty"`
	State            string                         `json:"state,omitempty"`
	Region           string                         `json:"region,omitempty"`
	SICCode          string                         `json:"sic_code,omitempty"`
	MemberCount      int                            `json:"member_count"`
	EffectiveDate    *string                        `json:"effective_date,omitempty"`
	RenewalDate      *string                        `json:"renewal_date,omitempty"`
	HistoricalClaims *entities.HistoricalClaimsData `json:"historical_claims_data,omitempty"`
	PriorCoverage    map[string]any                 `json:"prior_coverage,omitempty"`
	CreatedAt        time.Time                      `json:"created_at"`
	UpdatedAt        time.Time                      `json:"updated_at"`
}

func FromGroup(g entities.Group) GroupResponse {
	return GroupResponse{
		ID:               g.ID,
		TenantID:         g.TenantID,
		Name:             g.Name,
		GroupType:        string(g.GroupType),
		ContractType:     string(g.ContractType),
		TaxID:            g.TaxID,
		State:            g.State,
		Region:           g.Region,
		SICCode:          g.SICCode,
		MemberCount:      g.MemberCount,
		EffectiveDate:    formatDatePtr(g.EffectiveDate),
		RenewalDate:      formatDatePtr(g.RenewalDate),
		HistoricalClaims: g.HistoricalClaims,
		PriorCoverage:    g.PriorCoverage,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

func FromGroups(groups []entities.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, FromGroup(g))
	}
	return out
}
