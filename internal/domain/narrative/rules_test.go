package narrative

import (
	"context"
	"testing"

	"stoploss_quoting/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowRiskRequest() entities.NarrativeRequest {
	return entities.NarrativeRequest{
		RiskScore: 0.2,
		RiskTier:  entities.RiskTierLow,
		Decision:  entities.DecisionApprove,
		RiskFactors: entities.RiskFactors{
			Demographic:      0.27,
			HistoricalClaims: 0.0667,
			Geographic:       0.3333,
			Industry:         0.3,
		},
		ExpectedLossRatio:          0.7,
		RecommendedAttachmentPoint: 200000,
		PremiumAdjustmentFactor:    1,
		QuoteNumber:                "SLQ-1",
		GroupName:                  "Acme Manufacturing",
	}
}

func TestRulesGenerator_LowRisk(t *testing.T) {
	g := NewRulesGenerator()

	n, err := g.Generate(context.Background(), lowRiskRequest())
	require.NoError(t, err)

	assert.Equal(t, entities.NarrativeSourceRules, n.GeneratedBy)
	assert.Equal(t,
		"This group for Acme Manufacturing (SLQ-1) presents a favorable risk profile with an overall score of 20.0%, placing it in the low risk tier. "+
			"The primary risk drivers are geographic and industry, with an expected loss ratio of 70.0%.",
		n.Summary)
	assert.Equal(t, []string{
		"Geographic: 33% (moderate)",
		"Industry: 30% (moderate)",
		"Demographic: 27% (favorable)",
		"Historical Claims: 7% (favorable)",
	}, n.KeyDrivers)
	assert.Equal(t,
		"Recommend binding at standard rates. The low risk profile supports the current attachment point of $200,000.",
		n.Recommendation)
}

func TestRulesGenerator_ReferVeryHighRisk(t *testing.T) {
	g := NewRulesGenerator()
	req := entities.NarrativeRequest{
		RiskScore:                  0.8,
		RiskTier:                   entities.RiskTierVeryHigh,
		Decision:                   entities.DecisionRefer,
		RiskFactors:                entities.RiskFactors{Demographic: 1, HistoricalClaims: 1, ChronicCondition: 0.9, LargeClaimant: 1, Geographic: 0.8333, Industry: 0.875},
		LargeClaimantCount:         9,
		ExpectedLossRatio:          0.85,
		RecommendedAttachmentPoint: 140000,
		PremiumAdjustmentFactor:    1.125,
	}

	n := g.Build(req)

	assert.Equal(t,
		"This group presents significant risk concerns with a score of 80.0%, placing it in the very high category. "+
			"The primary risk drivers are demographic and historical claims, with an expected loss ratio of 85.0%.",
		n.Summary)
	require.Len(t, n.KeyDrivers, 5)
	assert.Equal(t, "Large Claimant: 100% (high)", n.KeyDrivers[2])
	assert.Equal(t, "9 large claimant(s) identified - significant concentration risk", n.KeyDrivers[4])
	assert.Equal(t,
		"Referred for senior underwriter review. Consider increasing the specific attachment point to $140,000 and applying additional premium loading given the very high risk classification.",
		n.Recommendation)
}

func TestRulesGenerator_SummaryBands(t *testing.T) {
	g := NewRulesGenerator()
	tests := []struct {
		score  float64
		tier   entities.RiskTier
		prefix string
	}{
		{0.40, entities.RiskTierModerate, "The underwriting review indicates a moderate risk profile with a composite score of 40.0%, classified as moderate risk."},
		{0.60, entities.RiskTierHigh, "This submission carries an elevated risk profile at 60.0%, falling within the high tier and warranting careful evaluation."},
	}
	for _, tt := range tests {
		req := lowRiskRequest()
		req.GroupName, req.QuoteNumber = "", ""
		req.RiskScore, req.RiskTier = tt.score, tt.tier

		assert.Contains(t, g.Build(req).Summary, tt.prefix)
	}
}

func TestRulesGenerator_Recommendations(t *testing.T) {
	g := NewRulesGenerator()
	tests := []struct {
		name     string
		decision entities.UnderwritingDecision
		score    float64
		want     string
	}{
		{"approve moderate", entities.DecisionApprove, 0.4, "Approved with a 100% premium adjustment. Monitor claims development closely during the first policy year."},
		{"decline", entities.DecisionDecline, 0.9, "Declined due to unfavorable risk characteristics. The expected loss ratio of 70.0% exceeds acceptable thresholds for the requested coverage structure."},
		{"request info", entities.DecisionRequestInfo, 0.4, "Additional information requested before a final determination can be made. The current low risk profile requires further documentation to complete the assessment."},
		{"approve above moderate band", entities.DecisionApprove, 0.6, "Additional information requested before a final determination can be made. The current low risk profile requires further documentation to complete the assessment."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := lowRiskRequest()
			req.Decision, req.RiskScore = tt.decision, tt.score
			assert.Equal(t, tt.want, g.Build(req).Recommendation)
		})
	}
}

func TestKeyDrivers_LargeClaimantIntensity(t *testing.T) {
	tests := map[int]string{
		1: "1 large claimant(s) identified - manageable concentration risk",
		5: "5 large claimant(s) identified - notable concentration risk",
		9: "9 large claimant(s) identified - significant concentration risk",
	}
	for count, want := range tests {
		req := lowRiskRequest()
		req.LargeClaimantCount = count
		drivers := keyDrivers(req, rankFactors(req.RiskFactors))
		assert.Equal(t, want, drivers[len(drivers)-1])
	}

	req := lowRiskRequest()
	assert.Len(t, keyDrivers(req, rankFactors(req.RiskFactors)), 4)
}

func TestCurrency(t *testing.T) {
	g := NewRulesGenerator()
	assert.Equal(t, "$1,250,000", g.currency(1250000))
	assert.Equal(t, "$1,234.50", g.currency(1234.5))
}

func TestDeterministic(t *testing.T) {
	g := NewRulesGenerator()
	assert.Equal(t, g.Build(lowRiskRequest()), g.Build(lowRiskRequest()))
}
