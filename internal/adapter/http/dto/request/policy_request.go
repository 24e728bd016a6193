package request

import (
	"strings"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase"
)

type BindPolicyRequest struct {
	QuoteID string         `json:"quote_id" binding:"required"`
	BoundBy string         `json:"bound_by"`
	Terms   map[string]any `json:"terms"`
}

func (r BindPolicyRequest) ToInput() usecase.BindInput {
	return usecase.BindInput{
		QuoteID: strings.TrimSpace(r.QuoteID),
		BoundBy: strings.TrimSpace(r.BoundBy),
		Terms:   r.Terms,
	}
}

type UpdatePolicyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdatePolicyStatusRequest) ResolveStatus() entities.PolicyStatus {
	return entities.PolicyStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
