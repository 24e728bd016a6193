// Package rating prices specific and aggregate stop-loss coverage from a
// group's risk assessment.
package rating

import (
	"math"
	"strconv"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/pkg/rounding"

	"github.com/google/uuid"
)

const (
	specificBaseRate  = 0.035
	aggregateBaseRate = 0.012

	referenceAttachment = 250000.0
	referenceCorridor   = 1.25
	credibilityMembers  = 500.0

	quoteValidityDays = 30
)

// Assessor produces the risk assessment a quote is priced from.
type Assessor interface {
	Assess(group entities.Group, members []entities.Member) entities.RiskAssessment
}

type Rater struct {
	assessor    Assessor
	now         func() time.Time
	quoteNumber func(time.Time) string
}

type Option func(*Rater)

func WithClock(now func() time.Time) Option {
	return func(r *Rater) {
		r.now = now
	}
}

func WithQuoteNumbers(gen func(time.Time) string) Option {
	return func(r *Rater) {
		r.quoteNumber = gen
	}
}

func NewRater(assessor Assessor, opts ...Option) *Rater {
	r := &Rater{
		assessor:    assessor,
		now:         time.Now,
		quoteNumber: QuoteNumber,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateQuote prices a draft quote. The result has no ID or tenant; the
// caller assigns those when persisting.
func (r *Rater) GenerateQuote(group entities.Group, members []entities.Member, params Params) (entities.Quote, error) {
	if err := params.Validate(); err != nil {
		return entities.Quote{}, err
	}
	if len(members) == 0 && group.MemberCount <= 0 {
		return entities.Quote{}, ErrNothingToRate
	}

	// 1. Score the group.
	risk := r.assessor.Assess(group, members)
	score := risk.OverallScore

	// 2. Resolve size and structure.
	memberCount := len(members)
	if memberCount == 0 {
		memberCount = group.MemberCount
	}
	n := float64(memberCount)

	attachmentPoint := risk.RecommendedSpecificAttachment
	if explicit(params.SpecificAttachmentPoint) {
		attachmentPoint = *params.SpecificAttachmentPoint
	}
	aggregateFactor := risk.RecommendedAggregateAttachmentFactor
	if explicit(params.AggregateAttachmentFactor) {
		aggregateFactor = *params.AggregateAttachmentFactor
	}

	var (
		specificRate, specificPremium                   float64
		aggregatePoint, aggregateRate, aggregatePremium float64
		specificMaxLiability, aggregateMaxLiability     *float64
	)

	// 3. Specific branch.
	if params.CoverageType.IncludesSpecific() {
		specificRate = SpecificRate(score, attachmentPoint, memberCount)
		specificPremium = specificRate * n * 12
		limit := attachmentPoint * n * 0.1
		if explicit(params.SpecificMaxLiability) {
			limit = *params.SpecificMaxLiability
		}
		specificMaxLiability = ptr(rounding.Currency(limit))
	} else if explicit(params.SpecificMaxLiability) {
		specificMaxLiability = ptr(*params.SpecificMaxLiability)
	}

	// 4. Aggregate branch.
	if params.CoverageType.IncludesAggregate() {
		aggregatePoint = risk.ExpectedClaimsCost * aggregateFactor
		aggregateRate = AggregateRate(score, aggregateFactor, memberCount)
		aggregatePremium = aggregateRate * n * 12
		limit := aggregatePoint * 0.5
		if explicit(params.AggregateMaxLiability) {
			limit = *params.AggregateMaxLiability
		}
		aggregateMaxLiability = ptr(rounding.Currency(limit))
	} else if explicit(params.AggregateMaxLiability) {
		aggregateMaxLiability = ptr(*params.AggregateMaxLiability)
	}

	// 5. Totals.
	total := specificPremium + aggregatePremium
	var pepm float64
	if memberCount > 0 {
		pepm = total / (n * 12)
	}

	now := r.now().UTC()
	return entities.Quote{
		QuoteNumber:               r.quoteNumber(now),
		GroupID:                   group.ID,
		CoverageType:              params.CoverageType,
		Status:                    entities.QuoteStatusDraft,
		SpecificAttachmentPoint:   rounding.Currency(attachmentPoint),
		SpecificMaxLiability:      specificMaxLiability,
		SpecificPremiumRate:       rounding.Rate(specificRate),
		SpecificAnnualPremium:     rounding.Currency(specificPremium),
		AggregateAttachmentPoint:  rounding.Currency(aggregatePoint),
		AggregateAttachmentFactor: aggregateFactor,
		AggregateMaxLiability:     aggregateMaxLiability,
		AggregatePremiumRate:      rounding.Rate(aggregateRate),
		AggregateAnnualPremium:    rounding.Currency(aggregatePremium),
		TotalAnnualPremium:        rounding.Currency(total),
		PEPMRate:                  rounding.Currency(pepm),
		RiskScore:                 rounding.Score(score),
		RiskFactors:               risk.Factors,
		ExpectedClaims:            risk.ExpectedClaimsCost,
		EffectiveDate:             params.EffectiveDate.UTC(),
		ExpirationDate:            params.expiration().UTC(),
		ContractPeriodMonths:      params.contractMonths(),
		QuoteValidUntil:           now.AddDate(0, 0, quoteValidityDays),
	}, nil
}

// SpecificRate is the monthly per-member specific stop-loss rate.
func SpecificRate(score, attachmentPoint float64, memberCount int) float64 {
	riskMultiplier := 0.5 + float64(score*1.5)
	attachmentFactor := referenceAttachment / attachmentPoint
	credibility := float64(math.Min(float64(memberCount)/credibilityMembers, 1.0)*0.3) + 0.7
	return specificBaseRate * riskMultiplier * attachmentFactor * credibility
}

// AggregateRate is the monthly per-member aggregate stop-loss rate.
func AggregateRate(score, aggregateFactor float64, memberCount int) float64 {
	riskMultiplier := 0.5 + float64(score*1.5)
	corridor := referenceCorridor / aggregateFactor

	sizeFactor := 1.0
	switch {
	case memberCount < 200:
		sizeFactor = 1.3
	case memberCount > 1000:
		sizeFactor = 0.85
	}
	return aggregateBaseRate * riskMultiplier * corridor * sizeFactor
}

// QuoteNumber formats SLQ-<base36 millis>-<4 random hex chars>.
func QuoteNumber(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return "SLQ-" + stamp + "-" + suffix
}

func ptr(v float64) *float64 {
	return &v
}
