package rating

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/errs"
	"stoploss_quoting/internal/domain/riskscoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2026, time.January, 1, 9, 30, 0, 0, time.UTC)

type fixedAssessor struct {
	assessment entities.RiskAssessment
	calls      int
}

func (f *fixedAssessor) Assess(entities.Group, []entities.Member) entities.RiskAssessment {
	f.calls++
	return f.assessment
}

// moderateAssessment is what the engine returns for an overall score of
// 0.5 and 500 members.
func moderateAssessment() entities.RiskAssessment {
	return entities.RiskAssessment{
		OverallScore:                         0.5,
		Tier:                                 entities.RiskTierModerate,
		ExpectedClaimsCost:                   3375000,
		RecommendedSpecificAttachment:        225000,
		RecommendedAggregateAttachmentFactor: 1.20,
		ExpectedLossRatio:                    0.775,
		Factors:                              entities.RiskFactors{Demographic: 0.5, HistoricalClaims: 0.5},
	}
}

func newTestRater(a Assessor) *Rater {
	return NewRater(a,
		WithClock(func() time.Time { return refTime }),
		WithQuoteNumbers(func(time.Time) string { return "SLQ-TEST-0001" }),
	)
}

func f64(v float64) *float64 { return &v }

func groupWith(n int) entities.Group {
	return entities.Group{ID: "g-1", MemberCount: n}
}

func effective() time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func TestSpecificRate(t *testing.T) {
	rate := SpecificRate(0.5, 250000, 500)
	assert.InDelta(t, 0.04375, rate, 1e-12)
	assert.InDelta(t, 262.5, rate*500*12, 1e-9)

	// partial credibility below 500 members
	assert.InDelta(t, 0.0371875, SpecificRate(0.5, 250000, 250), 1e-12)
	// lower attachment point costs more
	assert.Greater(t, SpecificRate(0.5, 125000, 500), SpecificRate(0.5, 250000, 500))
}

func TestAggregateRate(t *testing.T) {
	rate := AggregateRate(0.5, 1.25, 500)
	assert.InDelta(t, 0.015, rate, 1e-12)
	assert.InDelta(t, 90, rate*500*12, 1e-9)

	assert.InDelta(t, 0.0195, AggregateRate(0.5, 1.25, 199), 1e-12)
	assert.InDelta(t, 0.015, AggregateRate(0.5, 1.25, 200), 1e-12)
	assert.InDelta(t, 0.015, AggregateRate(0.5, 1.25, 1000), 1e-12)
	assert.InDelta(t, 0.01275, AggregateRate(0.5, 1.25, 1001), 1e-12)
}

func TestGenerateQuote_BothCoverages(t *testing.T) {
	a := &fixedAssessor{assessment: moderateAssessment()}
	r := newTestRater(a)

	q, err := r.GenerateQuote(groupWith(500), nil, Params{
		CoverageType:              entities.CoverageBoth,
		EffectiveDate:             effective(),
		SpecificAttachmentPoint:   f64(250000),
		AggregateAttachmentFactor: f64(1.25),
	})
	require.NoError(t, err)
	require.Equal(t, 1, a.calls)

	assert.Equal(t, "SLQ-TEST-0001", q.QuoteNumber)
	assert.Equal(t, "g-1", q.GroupID)
	assert.Equal(t, entities.QuoteStatusDraft, q.Status)
	assert.Empty(t, q.ID)

	assert.Equal(t, 250000.0, q.SpecificAttachmentPoint)
	assert.Equal(t, 0.04375, q.SpecificPremiumRate)
	assert.Equal(t, 262.5, q.SpecificAnnualPremium)
	require.NotNil(t, q.SpecificMaxLiability)
	assert.Equal(t, 12500000.0, *q.SpecificMaxLiability)

	assert.Equal(t, 4218750.0, q.AggregateAttachmentPoint)
	assert.Equal(t, 1.25, q.AggregateAttachmentFactor)
	assert.Equal(t, 0.015, q.AggregatePremiumRate)
	assert.Equal(t, 90.0, q.AggregateAnnualPremium)
	require.NotNil(t, q.AggregateMaxLiability)
	assert.Equal(t, 2109375.0, *q.AggregateMaxLiability)

	assert.Equal(t, 352.5, q.TotalAnnualPremium)
	assert.Equal(t, 0.06, q.PEPMRate)
	assert.Equal(t, 0.5, q.RiskScore)
	assert.Equal(t, 3375000.0, q.ExpectedClaims)
	assert.Equal(t, moderateAssessment().Factors, q.RiskFactors)

	assert.Equal(t, 12, q.ContractPeriodMonths)
	assert.Equal(t, time.Date(2027, time.February, 24, 0, 0, 0, 0, time.UTC), q.ExpirationDate)
	assert.Equal(t, time.Date(2026, time.January, 31, 9, 30, 0, 0, time.UTC), q.QuoteValidUntil)
}

func TestGenerateQuote_SpecificOnlyUsesRecommendations(t *testing.T) {
	r := newTestRater(&fixedAssessor{assessment: moderateAssessment()})

	q, err := r.GenerateQuote(groupWith(500), nil, Params{
		CoverageType:         entities.CoverageSpecific,
		EffectiveDate:        effective(),
		SpecificMaxLiability: f64(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 225000.0, q.SpecificAttachmentPoint)
	require.NotNil(t, q.SpecificMaxLiability)
	assert.Equal(t, 11250000.0, *q.SpecificMaxLiability, "zero max liability falls back to the default")

	assert.Zero(t, q.AggregateAttachmentPoint)
	assert.Zero(t, q.AggregatePremiumRate)
	assert.Zero(t, q.AggregateAnnualPremium)
	assert.Nil(t, q.AggregateMaxLiability)
	assert.Equal(t, 1.20, q.AggregateAttachmentFactor, "factor is recorded even when not priced")
	assert.Equal(t, q.SpecificAnnualPremium, q.TotalAnnualPremium)
}

func TestGenerateQuote_PremiumCents(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		members    int
		attachment float64
		want       float64
	}{
		// 24.884999999999998 scales to exactly 2488.5
		{"scaled half rounds up", 0, 150, 250000, 24.89},
		// 297.655 scales to 29765.499999999996
		{"scaled value under half rounds down", 0.003, 590, 105000, 297.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRater(&fixedAssessor{assessment: entities.RiskAssessment{
				OverallScore:                         tt.score,
				RecommendedSpecificAttachment:        tt.attachment,
				RecommendedAggregateAttachmentFactor: 1.20,
			}})

			q, err := r.GenerateQuote(groupWith(tt.members), nil, Params{
				CoverageType:  entities.CoverageSpecific,
				EffectiveDate: effective(),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.SpecificAnnualPremium)
			assert.Equal(t, tt.want, q.TotalAnnualPremium)
		})
	}
}

func TestGenerateQuote_AggregateOnlyWithExplicitTerms(t *testing.T) {
	r := newTestRater(&fixedAssessor{assessment: moderateAssessment()})
	expiry := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)

	q, err := r.GenerateQuote(groupWith(500), nil, Params{
		CoverageType:          entities.CoverageAggregate,
		EffectiveDate:         effective(),
		ExpirationDate:        &expiry,
		AggregateMaxLiability: f64(1000000),
		ContractPeriodMonths:  6,
	})
	require.NoError(t, err)

	assert.Zero(t, q.SpecificAnnualPremium)
	assert.Zero(t, q.SpecificPremiumRate)
	assert.Nil(t, q.SpecificMaxLiability)
	assert.Equal(t, 4050000.0, q.AggregateAttachmentPoint)
	require.NotNil(t, q.AggregateMaxLiability)
	assert.Equal(t, 1000000.0, *q.AggregateMaxLiability)
	assert.Equal(t, expiry, q.ExpirationDate)
	assert.Equal(t, 6, q.ContractPeriodMonths)
}

func TestGenerateQuote_ContractPeriodUsesThirtyDayMonths(t *testing.T) {
	r := newTestRater(&fixedAssessor{assessment: moderateAssessment()})

	q, err := r.GenerateQuote(groupWith(10), nil, Params{
		CoverageType:         entities.CoverageSpecific,
		EffectiveDate:        effective(),
		ContractPeriodMonths: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, effective().Add(90*24*time.Hour), q.ExpirationDate)
}

func TestGenerateQuote_Validation(t *testing.T) {
	base := Params{CoverageType: entities.CoverageBoth, EffectiveDate: effective()}
	before := effective().Add(-time.Hour)

	tests := []struct {
		name   string
		group  entities.Group
		mutate func(*Params)
		want   error
	}{
		{"nothing to rate", groupWith(0), func(*Params) {}, ErrNothingToRate},
		{"unknown coverage", groupWith(10), func(p *Params) { p.CoverageType = "excess" }, ErrInvalidCoverageType},
		{"missing effective date", groupWith(10), func(p *Params) { p.EffectiveDate = time.Time{} }, ErrMissingEffectiveDate},
		{"expiration before effective", groupWith(10), func(p *Params) { p.ExpirationDate = &before }, ErrInvalidExpirationDate},
		{"zero attachment point", groupWith(10), func(p *Params) { p.SpecificAttachmentPoint = f64(0) }, ErrInvalidAttachmentPoint},
		{"negative attachment point", groupWith(10), func(p *Params) { p.SpecificAttachmentPoint = f64(-1) }, ErrInvalidAttachmentPoint},
		{"zero aggregate factor", groupWith(10), func(p *Params) { p.AggregateAttachmentFactor = f64(0) }, ErrInvalidAttachmentFactor},
		{"negative max liability", groupWith(10), func(p *Params) { p.AggregateMaxLiability = f64(-5) }, ErrInvalidMaxLiability},
		{"negative contract period", groupWith(10), func(p *Params) { p.ContractPeriodMonths = -1 }, ErrInvalidContractPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fixedAssessor{assessment: moderateAssessment()}
			p := base
			tt.mutate(&p)

			_, err := newTestRater(a).GenerateQuote(tt.group, nil, p)

			require.ErrorIs(t, err, tt.want)
			assert.True(t, errors.Is(err, errs.ErrValidation))
			assert.Zero(t, a.calls, "nothing is scored when validation fails")
		})
	}
}

func TestGenerateQuote_PremiumsNeverNegative(t *testing.T) {
	engine := riskscoring.NewEngine(riskscoring.WithClock(func() time.Time { return refTime }))
	r := newTestRater(engine)

	coverages := []entities.CoverageType{entities.CoverageSpecific, entities.CoverageAggregate, entities.CoverageBoth}
	for _, size := range []int{1, 99, 150, 499, 750, 1500} {
		for _, state := range []string{"", "OH", "NY", "MA"} {
			for _, cov := range coverages {
				q, err := r.GenerateQuote(entities.Group{MemberCount: size, State: state}, nil, Params{
					CoverageType:  cov,
					EffectiveDate: effective(),
				})
				require.NoError(t, err)
				assert.GreaterOrEqual(t, q.SpecificAnnualPremium, 0.0)
				assert.GreaterOrEqual(t, q.AggregateAnnualPremium, 0.0)
				assert.GreaterOrEqual(t, q.TotalAnnualPremium, 0.0)
				assert.GreaterOrEqual(t, q.PEPMRate, 0.0)
			}
		}
	}
}

func TestQuoteNumber(t *testing.T) {
	n := QuoteNumber(refTime)
	assert.Regexp(t, regexp.MustCompile(`^SLQ-[0-9A-Z]+-[0-9A-F]{4}$`), n)
	assert.Equal(t, "SLQ-MJV8USW0-", n[:13])
}
