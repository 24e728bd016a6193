// Package riskscoring turns a group's demographic, claims-history and
// industry attributes into a composite risk assessment.
//
// The engine is pure: given the same group, members and clock it returns
// bit-identical results and never performs I/O.
package riskscoring

import (
	"math"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/pkg/rounding"
)

const (
	basePMPM            = 450.0
	pmpmCeiling         = 1500.0
	highCostThreshold   = 100000.0
	baseLossRatio       = 0.65
	maxLossRatio        = 0.95
	daysPerYear         = 365.25
	maxConditionsScaled = 5.0
)

// Sub-factor defaults used when there is nothing to measure.
const (
	defaultDemographicScore   = 0.5
	defaultHistoricalScore    = 0.5
	defaultChronicScore       = 0.3
	defaultLargeClaimantScore = 0.2
	defaultIndustryScore      = 0.5
)

const (
	weightDemographic      = 0.15
	weightHistoricalClaims = 0.30
	weightChronicCondition = 0.20
	weightLargeClaimant    = 0.20
	weightGeographic       = 0.08
	weightIndustry         = 0.07
)

// Weights returns the composite weights keyed like the factors they scale.
func Weights() entities.RiskFactors {
	return entities.RiskFactors{
		Demographic:      weightDemographic,
		HistoricalClaims: weightHistoricalClaims,
		ChronicCondition: weightChronicCondition,
		LargeClaimant:    weightLargeClaimant,
		Geographic:       weightGeographic,
		Industry:         weightIndustry,
	}
}

type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock fixes the reference time used for member ages.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assess scores a group. members may be empty.
func (e *Engine) Assess(group entities.Group, members []entities.Member) entities.RiskAssessment {
	f := entities.RiskFactors{
		Demographic:      e.demographicScore(members),
		HistoricalClaims: historicalClaimsScore(group, members),
		ChronicCondition: chronicConditionScore(members),
		LargeClaimant:    largeClaimantScore(members),
		Geographic:       geographicScore(group),
		Industry:         industryScore(group),
	}
	overall := Composite(f)

	memberCount := len(members)
	if memberCount == 0 {
		memberCount = group.MemberCount
	}
	if memberCount <= 0 {
		memberCount = 1
	}

	largeClaimants := 0
	for _, m := range members {
		if m.LargeClaimant {
			largeClaimants++
		}
	}

	return entities.RiskAssessment{
		OverallScore:       rounding.Score(overall),
		Tier:               TierFor(overall),
		ExpectedClaimsCost: ExpectedClaims(overall, memberCount),
		LargeClaimantCount: largeClaimants,
		Factors: entities.RiskFactors{
			Demographic:      rounding.Score(f.Demographic),
			HistoricalClaims: rounding.Score(f.HistoricalClaims),
			ChronicCondition: rounding.Score(f.ChronicCondition),
			LargeClaimant:    rounding.Score(f.LargeClaimant),
			Geographic:       rounding.Score(f.Geographic),
			Industry:         rounding.Score(f.Industry),
		},
		RecommendedSpecificAttachment:        rounding.Currency(RecommendedSpecificAttachment(overall, memberCount)),
		RecommendedAggregateAttachmentFactor: RecommendedAggregateFactor(overall),
		ExpectedLossRatio:                    ExpectedLossRatio(overall),
	}
}

// Composite is the fixed weighted sum of the six sub-factors.
// The float64 conversions keep each product rounded on its own so the sum
// is identical on every architecture (no fused multiply-add).
func Composite(f entities.RiskFactors) float64 {
	w := Weights()
	return float64(f.Demographic*w.Demographic) +
		float64(f.HistoricalClaims*w.HistoricalClaims) +
		float64(f.ChronicCondition*w.ChronicCondition) +
		float64(f.LargeClaimant*w.LargeClaimant) +
		float64(f.Geographic*w.Geographic) +
		float64(f.Industry*w.Industry)
}

// TierFor buckets a score on half-open intervals.
func TierFor(score float64) entities.RiskTier {
	switch {
	case score < 0.30:
		return entities.RiskTierLow
	case score < 0.55:
		return entities.RiskTierModerate
	case score < 0.75:
		return entities.RiskTierHigh
	default:
		return entities.RiskTierVeryHigh
	}
}

// ExpectedClaims is the risk-adjusted annual claims cost, rounded to cents.
func ExpectedClaims(score float64, memberCount int) float64 {
	pmpm := basePMPM * float64(0.5+float64(score*1.5))
	return rounding.Currency(pmpm * float64(memberCount) * 12)
}

func RecommendedSpecificAttachment(score float64, memberCount int) float64 {
	var base float64
	switch {
	case memberCount < 100:
		base = 150000
	case memberCount < 500:
		base = 200000
	default:
		base = 250000
	}

	switch TierFor(score) {
	case entities.RiskTierLow:
		return base * 1.0
	case entities.RiskTierModerate:
		return base * 0.9
	case entities.RiskTierHigh:
		return base * 0.8
	default:
		return base * 0.7
	}
}

func RecommendedAggregateFactor(score float64) float64 {
	switch TierFor(score) {
	case entities.RiskTierLow:
		return 1.25
	case entities.RiskTierModerate:
		return 1.20
	case entities.RiskTierHigh:
		return 1.15
	default:
		return 1.10
	}
}

func ExpectedLossRatio(score float64) float64 {
	return math.Min(maxLossRatio, baseLossRatio+float64(score*0.25))
}

func (e *Engine) demographicScore(members []entities.Member) float64 {
	if len(members) == 0 {
		return defaultDemographicScore
	}

	now := e.now()
	year := float64(daysPerYear * float64(24*time.Hour))
	var totalAge float64
	females := 0
	for _, m := range members {
		totalAge += float64(now.Sub(m.DateOfBirth)) / year
		if m.IsFemale() {
			females++
		}
	}
	avgAge := totalAge / float64(len(members))

	var ageFactor float64
	switch {
	case avgAge < 30:
		ageFactor = 0.3
	case avgAge < 40:
		ageFactor = 0.5
	case avgAge < 50:
		ageFactor = 0.7
	case avgAge < 60:
		ageFactor = 0.85
	default:
		ageFactor = 0.95
	}

	femaleRatio := float64(females) / float64(len(members))
	genderFactor := 0.9 + float64(femaleRatio*0.2)
	return math.Min(1, ageFactor*genderFactor)
}

// historicalClaimsScore prefers member-level claims. Members without a
// (non-zero) amount still count in the per-member average.
func historicalClaimsScore(group entities.Group, members []entities.Member) float64 {
	var total float64
	withClaims := 0
	for _, m := range members {
		if amount := m.ClaimsAmount(); amount != 0 {
			total += amount
			withClaims++
		}
	}

	if withClaims == 0 {
		h := group.HistoricalClaims
		if h != nil && h.TotalClaims != 0 && h.MemberMonths != 0 {
			pmpm := h.TotalClaims / h.MemberMonths
			return math.Min(1, pmpm/pmpmCeiling)
		}
		return defaultHistoricalScore
	}

	avgPerMember := total / float64(len(members))
	annualizedPMPM := avgPerMember / 12
	return math.Min(1, annualizedPMPM/pmpmCeiling)
}

func chronicConditionScore(members []entities.Member) float64 {
	if len(members) == 0 {
		return defaultChronicScore
	}

	affected, conditions := 0, 0
	for _, m := range members {
		if n := len(m.ChronicConditions); n > 0 {
			affected++
			conditions += n
		}
	}

	prevalence := float64(affected) / float64(len(members))
	var avgPerAffected float64
	if affected > 0 {
		avgPerAffected = float64(conditions) / float64(affected)
	}
	comorbidity := math.Min(1, avgPerAffected/maxConditionsScaled)

	return math.Min(1, float64(prevalence*0.6)+float64(comorbidity*0.4))
}

func largeClaimantScore(members []entities.Member) float64 {
	if len(members) == 0 {
		return defaultLargeClaimantScore
	}

	flagged, highCost := 0, 0
	for _, m := range members {
		if m.LargeClaimant {
			flagged++
		}
		if m.ClaimsAmount() > highCostThreshold {
			highCost++
		}
	}

	n := float64(len(members))
	flaggedRate := float64(flagged) / n
	highCostRate := float64(highCost) / n
	return math.Min(1, float64(flaggedRate*5)+float64(highCostRate*3))
}

func geographicScore(group entities.Group) float64 {
	return math.Min(1, (GeographicFactor(group.State)-0.8)/0.6)
}

func industryScore(group entities.Group) float64 {
	if len(group.SICCode) == 0 {
		return defaultIndustryScore
	}
	return math.Min(1, (IndustryFactor(group.SICCode)-0.8)/0.4)
}
