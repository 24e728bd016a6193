package usecase

import (
	"context"
	"sort"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/riskscoring"
	"stoploss_quoting/internal/usecase/interfaces"
	"stoploss_quoting/pkg/rounding"

	"golang.org/x/sync/errgroup"
)

// IAnalyticsUseCase aggregates the tenant's portfolio for the dashboard.
type IAnalyticsUseCase interface {
	Dashboard(ctx context.Context, tenantID string) (entities.DashboardMetrics, error)
}

type AnalyticsUseCase struct {
	groupRepo  interfaces.IGroupRepository
	quoteRepo  interfaces.IQuoteRepository
	policyRepo interfaces.IPolicyRepository
	cache      interfaces.IDashboardCache
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase wires the aggregator. cache may be nil.
func NewAnalyticsUseCase(
	groupRepo interfaces.IGroupRepository,
	quoteRepo interfaces.IQuoteRepository,
	policyRepo interfaces.IPolicyRepository,
	cache interfaces.IDashboardCache,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{groupRepo: groupRepo, quoteRepo: quoteRepo, policyRepo: policyRepo, cache: cache}
}

func (u *AnalyticsUseCase) Dashboard(ctx context.Context, tenantID string) (entities.DashboardMetrics, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}

	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, tenantID)
		if err != nil {
			logger("analytics.usecase").Warn().Err(err).Str("tenant_id", tenantID).Msg("dashboard cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	var (
		groups   []entities.Group
		quotes   []entities.Quote
		policies []entities.Policy
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		groups, err = u.groupRepo.ListByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		quotes, err = u.quoteRepo.ListByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		policies, err = u.policyRepo.ListByTenant(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.DashboardMetrics{}, err
	}

	m := Aggregate(groups, quotes, policies)

	if u.cache != nil {
		if err := u.cache.Set(ctx, tenantID, m); err != nil {
			logger("analytics.usecase").Warn().Err(err).Str("tenant_id", tenantID).Msg("dashboard cache write failed")
		}
	}
	return m, nil
}

// Aggregate computes dashboard metrics from already loaded records.
func Aggregate(groups []entities.Group, quotes []entities.Quote, policies []entities.Policy) entities.DashboardMetrics {
	m := entities.DashboardMetrics{
		TotalGroups:       len(groups),
		QuotesByStatus:    map[string]int{},
		PoliciesByStatus:  map[string]int{},
		CoverageBreakdown: map[string]int{},
		RiskDistribution: map[string]int{
			string(entities.RiskTierLow):      0,
			string(entities.RiskTierModerate): 0,
			string(entities.RiskTierHigh):     0,
			string(entities.RiskTierVeryHigh): 0,
		},
		PremiumTrend: []entities.PremiumTrendPoint{},
	}

	var riskSum, expectedClaims float64
	var scored int
	for _, q := range quotes {
		m.QuotesByStatus[string(q.Status)]++
		switch q.Status {
		case entities.QuoteStatusExpired, entities.QuoteStatusDeclined, entities.QuoteStatusBound:
		default:
			m.TotalActiveQuotes++
		}
		expectedClaims += q.ExpectedClaims
		if q.RiskScore != 0 {
			riskSum += q.RiskScore
			scored++
			m.RiskDistribution[string(riskscoring.TierFor(q.RiskScore))]++
		}
	}

	var premium, pepmSum float64
	var pepmCount int
	trend := map[string]float64{}
	for _, p := range policies {
		m.PoliciesByStatus[string(p.Status)]++
		m.CoverageBreakdown[string(p.CoverageType)]++
		if p.Status != entities.PolicyStatusActive {
			continue
		}
		m.TotalActivePolicies++
		premium += p.TotalAnnualPremium
		if p.PEPMRate > 0 {
			pepmSum += p.PEPMRate
			pepmCount++
		}
		trend[p.BoundAt.UTC().Format("2006-01")] += p.TotalAnnualPremium
	}

	m.TotalPremiumInForce = rounding.Currency(premium)
	m.TotalExpectedClaims = rounding.Currency(expectedClaims)
	if scored > 0 {
		m.AverageRiskScore = rounding.Score(riskSum / float64(scored))
	}
	if pepmCount > 0 {
		m.AveragePEPMRate = rounding.Currency(pepmSum / float64(pepmCount))
	}

	months := make([]string, 0, len(trend))
	for month := range trend {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		m.PremiumTrend = append(m.PremiumTrend, entities.PremiumTrendPoint{Month: month, Premium: rounding.Currency(trend[month])})
	}
	return m
}
