package request

import (
	"strings"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/rating"
)

type GenerateQuoteRequest struct {
	GroupID                   string   `json:"group_id" binding:"required"`
	CoverageType              string   `json:"coverage_type" binding:"required"`
	EffectiveDate             string   `json:"effective_date" binding:"required"`
	ExpirationDate            *string  `json:"expiration_date"`
	SpecificAttachmentPoint   *float64 `json:"specific_attachment_point"`
	SpecificMaxLiability      *float64 `json:"specific_max_liability"`
	AggregateAttachmentFactor *float64 `json:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64 `json:"aggregate_max_liability"`
	ContractPeriodMonths      int      `json:"contract_period_months"`
}

func (r GenerateQuoteRequest) ResolveGroupID() string {
	return strings.TrimSpace(r.GroupID)
}

func (r GenerateQuoteRequest) ToParams() (rating.Params, error) {
	effective, err := parseDate(r.EffectiveDate)
	if err != nil {
		return rating.Params{}, err
	}
	expiration, err := parseDatePtr(r.ExpirationDate)
	if err != nil {
		return rating.Params{}, err
	}

	return rating.Params{
		CoverageType:              entities.CoverageType(strings.ToLower(strings.TrimSpace(r.CoverageType))),
		EffectiveDate:             effective,
		ExpirationDate:            expiration,
		SpecificAttachmentPoint:   r.SpecificAttachmentPoint,
		SpecificMaxLiability:      r.SpecificMaxLiability,
		AggregateAttachmentFactor: r.AggregateAttachmentFactor,
		AggregateMaxLiability:     r.AggregateMaxLiability,
		ContractPeriodMonths:      r.ContractPeriodMonths,
	}, nil
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r UpdateQuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
