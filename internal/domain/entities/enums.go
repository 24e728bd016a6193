package entities

// CoverageType selects which stop-loss branches a quote prices.
type CoverageType string

const (
	CoverageSpecific  CoverageType = "specific"
	CoverageAggregate CoverageType = "aggregate"
	CoverageBoth      CoverageType = "both"
)

func (c CoverageType) Valid() bool {
	switch c {
	case CoverageSpecific, CoverageAggregate, CoverageBoth:
		return true
	}
	return false
}

func (c CoverageType) IncludesSpecific() bool {
	return c == CoverageSpecific || c == CoverageBoth
}

func (c CoverageType) IncludesAggregate() bool {
	return c == CoverageAggregate || c == CoverageBoth
}

// QuoteStatus is the underwriting lifecycle of a quote.
//
//	draft --submit--> approved | pending_review
//	pending_review --manual review--> approved | declined | pending_review
//	approved --bind--> bound
//
// bound, declined and expired are terminal.
type QuoteStatus string

const (
	QuoteStatusDraft         QuoteStatus = "draft"
	QuoteStatusPendingReview QuoteStatus = "pending_review"
	QuoteStatusApproved      QuoteStatus = "approved"
	QuoteStatusDeclined      QuoteStatus = "declined"
	QuoteStatusExpired       QuoteStatus = "expired"
	QuoteStatusBound         QuoteStatus = "bound"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusPendingReview, QuoteStatusApproved,
		QuoteStatusDeclined, QuoteStatusExpired, QuoteStatusBound:
		return true
	}
	return false
}

func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusBound || s == QuoteStatusDeclined || s == QuoteStatusExpired
}

type PolicyStatus string

const (
	PolicyStatusPending   PolicyStatus = "pending"
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyStatusPending, PolicyStatusActive, PolicyStatusExpired, PolicyStatusCancelled:
		return true
	}
	return false
}

type UnderwritingDecision string

const (
	DecisionApprove     UnderwritingDecision = "approve"
	DecisionDecline     UnderwritingDecision = "decline"
	DecisionRefer       UnderwritingDecision = "refer"
	DecisionRequestInfo UnderwritingDecision = "request_info"
)

func (d UnderwritingDecision) Valid() bool {
	switch d {
	case DecisionApprove, DecisionDecline, DecisionRefer, DecisionRequestInfo:
		return true
	}
	return false
}

// RiskTier is the coarse bucket derived from an overall risk score.
type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierModerate RiskTier = "moderate"
	RiskTierHigh     RiskTier = "high"
	RiskTierVeryHigh RiskTier = "very_high"
)

// Rank orders tiers from LOW (0) to VERY_HIGH (3). Unknown tiers rank -1.
func (t RiskTier) Rank() int {
	switch t {
	case RiskTierLow:
		return 0
	case RiskTierModerate:
		return 1
	case RiskTierHigh:
		return 2
	case RiskTierVeryHigh:
		return 3
	}
	return -1
}

// Label is the tier with underscores replaced, for prose.
func (t RiskTier) Label() string {
	if t == RiskTierVeryHigh {
		return "very high"
	}
	return string(t)
}

type GroupType string

const (
	GroupTypeACO           GroupType = "aco"
	GroupTypeHealthPlan    GroupType = "health_plan"
	GroupTypeTPA           GroupType = "tpa"
	GroupTypeEmployer      GroupType = "employer"
	GroupTypeProviderGroup GroupType = "provider_group"
)

func (g GroupType) Valid() bool {
	switch g {
	case GroupTypeACO, GroupTypeHealthPlan, GroupTypeTPA, GroupTypeEmployer, GroupTypeProviderGroup:
		return true
	}
	return false
}

type ContractType string

const (
	ContractFullRisk         ContractType = "full_risk"
	ContractSharedSavings    ContractType = "shared_savings"
	ContractSharedRisk       ContractType = "shared_risk"
	ContractGlobalCapitation ContractType = "global_capitation"
)

func (c ContractType) Valid() bool {
	switch c {
	case ContractFullRisk, ContractSharedSavings, ContractSharedRisk, ContractGlobalCapitation:
		return true
	}
	return false
}
