package usecase

import (
	"context"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"
)

// INarrativeUseCase produces underwriting narratives.
type INarrativeUseCase interface {
	Generate(ctx context.Context, req entities.NarrativeRequest) (entities.Narrative, error)
	GenerateForQuote(ctx context.Context, tenantID, quoteID string) (entities.Narrative, error)
}

type NarrativeUseCase struct {
	rules      interfaces.INarrativeGenerator
	llm        interfaces.INarrativeGenerator
	timeout    time.Duration
	quoteRepo  interfaces.IQuoteRepository
	reviewRepo interfaces.IReviewRepository
	groupRepo  interfaces.IGroupRepository
	metrics    interfaces.IMetricsRecorder
}

var _ INarrativeUseCase = (*NarrativeUseCase)(nil)

// NewNarrativeUseCase wires the generators. llm may be nil, in which case
// every narrative comes from the rules generator.
func NewNarrativeUseCase(
	rules interfaces.INarrativeGenerator,
	llm interfaces.INarrativeGenerator,
	timeout time.Duration,
	quoteRepo interfaces.IQuoteRepository,
	reviewRepo interfaces.IReviewRepository,
	groupRepo interfaces.IGroupRepository,
	metrics interfaces.IMetricsRecorder,
) *NarrativeUseCase {
	return &NarrativeUseCase{
		rules:      rules,
		llm:        llm,
		timeout:    timeout,
		quoteRepo:  quoteRepo,
		reviewRepo: reviewRepo,
		groupRepo:  groupRepo,
		metrics:    metrics,
	}
}

func (u *NarrativeUseCase) Generate(ctx context.Context, req entities.NarrativeRequest) (entities.Narrative, error) {
	if req.RiskScore < 0 || req.RiskScore > 1 || req.RiskTier.Rank() < 0 || !req.Decision.Valid() {
		return entities.Narrative{}, ErrInvalidNarrativeRequest
	}

	if u.llm != nil {
		llmCtx, cancel := context.WithTimeout(ctx, u.timeout)
		n, err := u.llm.Generate(llmCtx, req)
		cancel()
		if err == nil {
			u.metrics.NarrativeGenerated(n.GeneratedBy)
			return n, nil
		}
		logger("narrative.usecase").Warn().Err(err).
			Str("quote_number", req.QuoteNumber).
			Msg("llm narrative failed, falling back to rules")
	}

	n, err := u.rules.Generate(ctx, req)
	if err != nil {
		return entities.Narrative{}, err
	}
	u.metrics.NarrativeGenerated(n.GeneratedBy)
	return n, nil
}

// GenerateForQuote narrates the latest review of a quote.
func (u *NarrativeUseCase) GenerateForQuote(ctx context.Context, tenantID, quoteID string) (entities.Narrative, error) {
	q, err := loadQuote(ctx, u.quoteRepo, tenantID, quoteID)
	if err != nil {
		return entities.Narrative{}, err
	}

	review, err := u.reviewRepo.GetByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Narrative{}, err
	}
	if review.ID == "" || review.TenantID != q.TenantID {
		return entities.Narrative{}, ErrReviewNotFound
	}

	var groupName string
	group, err := u.groupRepo.GetByID(ctx, q.GroupID)
	if err != nil {
		return entities.Narrative{}, err
	}
	if group.TenantID == q.TenantID {
		groupName = group.Name
	}

	return u.Generate(ctx, entities.NarrativeRequest{
		RiskScore:                  review.RiskScore,
		RiskTier:                   review.RiskTier,
		Decision:                   review.Decision,
		RiskFactors:                review.RiskFactors,
		LargeClaimantCount:         review.LargeClaimantCount,
		ExpectedLossRatio:          review.ExpectedLossRatio,
		RecommendedAttachmentPoint: review.RecommendedAttachmentPoint,
		PremiumAdjustmentFactor:    review.PremiumAdjustmentFactor,
		QuoteNumber:                q.QuoteNumber,
		CoverageType:               q.CoverageType,
		GroupName:                  groupName,
	})
}
