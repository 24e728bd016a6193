// Package narrative renders underwriting prose from a risk picture without
// any external calls.
package narrative

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"stoploss_quoting/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxFactorDrivers = 4

// RulesGenerator is deterministic: the same request always yields the same
// narrative.
type RulesGenerator struct {
	printer *message.Printer
}

func NewRulesGenerator() *RulesGenerator {
	return &RulesGenerator{printer: message.NewPrinter(language.English)}
}

func (g *RulesGenerator) Generate(_ context.Context, req entities.NarrativeRequest) (entities.Narrative, error) {
	return g.Build(req), nil
}

// Build is Generate without the context plumbing.
func (g *RulesGenerator) Build(req entities.NarrativeRequest) entities.Narrative {
	factors := rankFactors(req.RiskFactors)
	return entities.Narrative{
		Summary:        g.summary(req, factors),
		KeyDrivers:     keyDrivers(req, factors),
		Recommendation: g.recommendation(req),
		GeneratedBy:    entities.NarrativeSourceRules,
	}
}

// rankFactors sorts highest score first; ties keep composite order.
func rankFactors(f entities.RiskFactors) []entities.NamedFactor {
	named := f.Named()
	sort.SliceStable(named, func(i, j int) bool {
		return named[i].Score > named[j].Score
	})
	return named
}

func (g *RulesGenerator) summary(req entities.NarrativeRequest, factors []entities.NamedFactor) string {
	riskPct := percent(req.RiskScore, 1)
	tier := req.RiskTier.Label()

	var ref string
	if req.GroupName != "" {
		ref += "for " + req.GroupName + " "
	}
	if req.QuoteNumber != "" {
		ref += "(" + req.QuoteNumber + ") "
	}

	var opener string
	switch {
	case req.RiskScore < 0.3:
		opener = fmt.Sprintf("This group %spresents a favorable risk profile with an overall score of %s%%, placing it in the %s risk tier.", ref, riskPct, tier)
	case req.RiskScore < 0.55:
		opener = fmt.Sprintf("The underwriting review %sindicates a moderate risk profile with a composite score of %s%%, classified as %s risk.", ref, riskPct, tier)
	case req.RiskScore < 0.75:
		opener = fmt.Sprintf("This submission %scarries an elevated risk profile at %s%%, falling within the %s tier and warranting careful evaluation.", ref, riskPct, tier)
	default:
		opener = fmt.Sprintf("This group %spresents significant risk concerns with a score of %s%%, placing it in the %s category.", ref, riskPct, tier)
	}

	top := make([]string, 0, 2)
	for _, f := range factors[:2] {
		top = append(top, strings.ToLower(f.Label))
	}
	drivers := fmt.Sprintf("The primary risk drivers are %s, with an expected loss ratio of %s%%.",
		strings.Join(top, " and "), percent(req.ExpectedLossRatio, 1))

	return opener + " " + drivers
}

func keyDrivers(req entities.NarrativeRequest, factors []entities.NamedFactor) []string {
	drivers := make([]string, 0, maxFactorDrivers+1)
	for _, f := range factors[:maxFactorDrivers] {
		drivers = append(drivers, fmt.Sprintf("%s: %s%% (%s)", f.Label, percent(f.Score, 0), severity(f.Score)))
	}

	if n := req.LargeClaimantCount; n > 0 {
		intensity := "manageable"
		switch {
		case n > 8:
			intensity = "significant"
		case n > 4:
			intensity = "notable"
		}
		drivers = append(drivers, fmt.Sprintf("%d large claimant(s) identified - %s concentration risk", n, intensity))
	}
	return drivers
}

func severity(score float64) string {
	switch {
	case score < 0.3:
		return "favorable"
	case score < 0.5:
		return "moderate"
	case score < 0.7:
		return "elevated"
	default:
		return "high"
	}
}

func (g *RulesGenerator) recommendation(req entities.NarrativeRequest) string {
	tier := req.RiskTier.Label()
	switch {
	case req.Decision == entities.DecisionApprove && req.RiskScore < 0.3:
		return fmt.Sprintf("Recommend binding at standard rates. The %s risk profile supports the current attachment point of %s.",
			tier, g.currency(req.RecommendedAttachmentPoint))
	case req.Decision == entities.DecisionApprove && req.RiskScore < 0.55:
		return fmt.Sprintf("Approved with a %s%% premium adjustment. Monitor claims development closely during the first policy year.",
			percent(req.PremiumAdjustmentFactor, 0))
	case req.Decision == entities.DecisionRefer:
		return fmt.Sprintf("Referred for senior underwriter review. Consider increasing the specific attachment point to %s and applying additional premium loading given the %s risk classification.",
			g.currency(req.RecommendedAttachmentPoint), tier)
	case req.Decision == entities.DecisionDecline:
		return fmt.Sprintf("Declined due to unfavorable risk characteristics. The expected loss ratio of %s%% exceeds acceptable thresholds for the requested coverage structure.",
			percent(req.ExpectedLossRatio, 1))
	default:
		return fmt.Sprintf("Additional information requested before a final determination can be made. The current %s risk profile requires further documentation to complete the assessment.", tier)
	}
}

// currency groups thousands: 180000 -> $180,000, 1234.5 -> $1,234.50.
func (g *RulesGenerator) currency(v float64) string {
	if v == math.Trunc(v) {
		return g.printer.Sprintf("$%d", int64(v))
	}
	return g.printer.Sprintf("$%.2f", v)
}

func percent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v*100)
}
