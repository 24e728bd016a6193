package rating

import (
	"fmt"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/errs"
)

var (
	ErrNothingToRate           = fmt.Errorf("%w: group has no members and no declared member count", errs.ErrValidation)
	ErrInvalidCoverageType     = fmt.Errorf("%w: coverage type must be specific, aggregate or both", errs.ErrValidation)
	ErrMissingEffectiveDate    = fmt.Errorf("%w: effective date is required", errs.ErrValidation)
	ErrInvalidExpirationDate   = fmt.Errorf("%w: expiration date must be after the effective date", errs.ErrValidation)
	ErrInvalidAttachmentPoint  = fmt.Errorf("%w: specific attachment point must be positive", errs.ErrValidation)
	ErrInvalidAttachmentFactor = fmt.Errorf("%w: aggregate attachment factor must be positive", errs.ErrValidation)
	ErrInvalidMaxLiability     = fmt.Errorf("%w: max liability cannot be negative", errs.ErrValidation)
	ErrInvalidContractPeriod   = fmt.Errorf("%w: contract period cannot be negative", errs.ErrValidation)
)

const defaultContractPeriodMonths = 12

// Params are the caller-chosen quote terms. Nil pointers and zero values
// fall back to the risk assessment's recommendations.
type Params struct {
	CoverageType              entities.CoverageType
	EffectiveDate             time.Time
	ExpirationDate            *time.Time
	SpecificAttachmentPoint   *float64
	SpecificMaxLiability      *float64
	AggregateAttachmentFactor *float64
	AggregateMaxLiability     *float64
	ContractPeriodMonths      int
}

func (p Params) Validate() error {
	if !p.CoverageType.Valid() {
		return ErrInvalidCoverageType
	}
	if p.EffectiveDate.IsZero() {
		return ErrMissingEffectiveDate
	}
	if p.ExpirationDate != nil && !p.ExpirationDate.After(p.EffectiveDate) {
		return ErrInvalidExpirationDate
	}
	if p.SpecificAttachmentPoint != nil && *p.SpecificAttachmentPoint <= 0 {
		return ErrInvalidAttachmentPoint
	}
	if p.AggregateAttachmentFactor != nil && *p.AggregateAttachmentFactor <= 0 {
		return ErrInvalidAttachmentFactor
	}
	if (p.SpecificMaxLiability != nil && *p.SpecificMaxLiability < 0) ||
		(p.AggregateMaxLiability != nil && *p.AggregateMaxLiability < 0) {
		return ErrInvalidMaxLiability
	}
	if p.ContractPeriodMonths < 0 {
		return ErrInvalidContractPeriod
	}
	return nil
}

func (p Params) contractMonths() int {
	if p.ContractPeriodMonths == 0 {
		return defaultContractPeriodMonths
	}
	return p.ContractPeriodMonths
}

// expiration uses 30-day months, not calendar months.
func (p Params) expiration() time.Time {
	if p.ExpirationDate != nil {
		return *p.ExpirationDate
	}
	return p.EffectiveDate.Add(time.Duration(p.contractMonths()) * 30 * 24 * time.Hour)
}

// explicit reports whether an optional amount was given; zero means unset.
func explicit(v *float64) bool {
	return v != nil && *v != 0
}
