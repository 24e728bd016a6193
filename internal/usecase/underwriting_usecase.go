package usecase

import (
	"context"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/underwriting"
	"stoploss_quoting/internal/usecase/interfaces"
)

const (
	decisionSourceAuto   = "auto"
	decisionSourceManual = "manual"
)

// ManualReviewInput is an underwriter's decision on a previously submitted quote.
type ManualReviewInput struct {
	QuoteID    string
	Decision   entities.UnderwritingDecision
	Notes      string
	ReviewedBy string
	Conditions []string
	Exclusions []string
}

// IUnderwritingUseCase runs automatic and manual underwriting.
type IUnderwritingUseCase interface {
	SubmitForReview(ctx context.Context, tenantID, quoteID string) (entities.Review, error)
	ManualReview(ctx context.Context, tenantID string, in ManualReviewInput) (entities.Review, error)
	GetByQuoteID(ctx context.Context, tenantID, quoteID string) (entities.Review, error)
	List(ctx context.Context, tenantID string) ([]entities.Review, error)
}

type UnderwritingUseCase struct {
	repo       interfaces.IReviewRepository
	quoteRepo  interfaces.IQuoteRepository
	groupRepo  interfaces.IGroupRepository
	memberRepo interfaces.IMemberRepository
	assessor   interfaces.IRiskAssessor
	metrics    interfaces.IMetricsRecorder
}

var _ IUnderwritingUseCase = (*UnderwritingUseCase)(nil)

func NewUnderwritingUseCase(
	repo interfaces.IReviewRepository,
	quoteRepo interfaces.IQuoteRepository,
	groupRepo interfaces.IGroupRepository,
	memberRepo interfaces.IMemberRepository,
	assessor interfaces.IRiskAssessor,
	metrics interfaces.IMetricsRecorder,
) *UnderwritingUseCase {
	return &UnderwritingUseCase{
		repo:       repo,
		quoteRepo:  quoteRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		assessor:   assessor,
		metrics:    metrics,
	}
}

// SubmitForReview re-scores the quote's group from current data, stores the
// automatic review and moves the quote to approved or pending_review.
func (u *UnderwritingUseCase) SubmitForReview(ctx context.Context, tenantID, quoteID string) (entities.Review, error) {
	q, err := loadQuote(ctx, u.quoteRepo, tenantID, quoteID)
	if err != nil {
		return entities.Review{}, err
	}
	if q.Status.Terminal() {
		return entities.Review{}, ErrQuoteNotReviewable
	}

	group, err := u.groupRepo.GetByID(ctx, q.GroupID)
	if err != nil {
		return entities.Review{}, err
	}
	if group.ID == "" || group.TenantID != q.TenantID {
		return entities.Review{}, ErrGroupNotFound
	}
	members, err := u.memberRepo.ListByGroupID(ctx, q.GroupID)
	if err != nil {
		return entities.Review{}, err
	}

	// 1. Score and decide.
	risk := u.assessor.Assess(group, members)
	review := underwriting.NewReview(q, risk, time.Now().UTC())

	// 2. Persist the review, replacing any earlier one.
	saved, err := u.repo.Save(ctx, review)
	if err != nil {
		return entities.Review{}, err
	}

	// 3. Move the quote along.
	if _, err := updateQuoteStatus(ctx, u.quoteRepo, q.ID, underwriting.QuoteStatusFor(saved.Decision), ""); err != nil {
		return entities.Review{}, err
	}

	u.metrics.UnderwritingDecision(saved.Decision, decisionSourceAuto)
	logger("underwriting.usecase").Info().
		Str("tenant_id", q.TenantID).Str("quote_id", q.ID).
		Str("decision", string(saved.Decision)).Str("risk_tier", string(saved.RiskTier)).
		Float64("risk_score", saved.RiskScore).
		Msg("quote submitted for review")
	return saved, nil
}

func (u *UnderwritingUseCase) ManualReview(ctx context.Context, tenantID string, in ManualReviewInput) (entities.Review, error) {
	if !in.Decision.Valid() {
		return entities.Review{}, ErrInvalidDecision
	}

	q, err := loadQuote(ctx, u.quoteRepo, tenantID, in.QuoteID)
	if err != nil {
		return entities.Review{}, err
	}
	if q.Status == entities.QuoteStatusBound {
		return entities.Review{}, ErrQuoteBound
	}

	existing, err := u.repo.GetByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Review{}, err
	}
	if existing.ID == "" || existing.TenantID != q.TenantID {
		return entities.Review{}, ErrReviewNotFound
	}

	notes := strings.TrimSpace(in.Notes)
	updated := underwriting.ManualReview{
		Decision:   in.Decision,
		Notes:      notes,
		ReviewedBy: strings.TrimSpace(in.ReviewedBy),
		Conditions: in.Conditions,
		Exclusions: in.Exclusions,
	}.Apply(existing, time.Now().UTC())

	saved, err := u.repo.Save(ctx, updated)
	if err != nil {
		return entities.Review{}, err
	}
	if _, err := updateQuoteStatus(ctx, u.quoteRepo, q.ID, underwriting.QuoteStatusFor(saved.Decision), notes); err != nil {
		return entities.Review{}, err
	}

	u.metrics.UnderwritingDecision(saved.Decision, decisionSourceManual)
	logger("underwriting.usecase").Info().
		Str("tenant_id", q.TenantID).Str("quote_id", q.ID).
		Str("decision", string(saved.Decision)).Str("reviewed_by", saved.ReviewedBy).
		Msg("manual review recorded")
	return saved, nil
}

func (u *UnderwritingUseCase) GetByQuoteID(ctx context.Context, tenantID, quoteID string) (entities.Review, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Review{}, err
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Review{}, ErrInvalidQuoteID
	}

	r, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" || r.TenantID != tenantID {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

func (u *UnderwritingUseCase) List(ctx context.Context, tenantID string) ([]entities.Review, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByTenant(ctx, tenantID)
}
