package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/rating"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IQuoteUseCase prices and tracks stop-loss quotes.
type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, tenantID, groupID string, params rating.Params) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	List(ctx context.Context, tenantID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus, notes string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	groupRepo  interfaces.IGroupRepository
	memberRepo interfaces.IMemberRepository
	rater      *rating.Rater
	metrics    interfaces.IMetricsRecorder
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	groupRepo interfaces.IGroupRepository,
	memberRepo interfaces.IMemberRepository,
	assessor interfaces.IRiskAssessor,
	metrics interfaces.IMetricsRecorder,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:       repo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		rater:      rating.NewRater(assessor),
		metrics:    metrics,
	}
}

func (u *QuoteUseCase) GenerateQuote(ctx context.Context, tenantID, groupID string, params rating.Params) (entities.Quote, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Quote{}, err
	}
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return entities.Quote{}, ErrInvalidGroupID
	}
	if err := params.Validate(); err != nil {
		return entities.Quote{}, err
	}

	group, err := u.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return entities.Quote{}, err
	}
	if group.ID == "" || group.TenantID != tenantID {
		return entities.Quote{}, ErrGroupNotFound
	}
	members, err := u.memberRepo.ListByGroupID(ctx, groupID)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := u.rater.GenerateQuote(group, members, params)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.TenantID = tenantID
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.metrics.QuoteGenerated(created.CoverageType, created.RiskScore)
	logger("quote.usecase").Info().
		Str("tenant_id", tenantID).Str("group_id", groupID).Str("quote_id", created.ID).
		Str("quote_number", created.QuoteNumber).Float64("risk_score", created.RiskScore).
		Float64("total_annual_premium", created.TotalAnnualPremium).
		Msg("quote generated")
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	return loadQuote(ctx, u.repo, tenantID, id)
}

func (u *QuoteUseCase) List(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByTenant(ctx, tenantID)
}

// UpdateStatus is the manual status override. It cannot bind a quote nor
// change a bound one.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus, notes string) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if status == entities.QuoteStatusBound {
		return entities.Quote{}, ErrManualBind
	}

	q, err := loadQuote(ctx, u.repo, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusBound {
		return entities.Quote{}, ErrQuoteBound
	}

	return updateQuoteStatus(ctx, u.repo, q.ID, status, strings.TrimSpace(notes))
}

// loadQuote resolves a quote visible to the tenant.
func loadQuote(ctx context.Context, repo interfaces.IQuoteRepository, tenantID, id string) (entities.Quote, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Quote{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.TenantID != tenantID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func updateQuoteStatus(ctx context.Context, repo interfaces.IQuoteRepository, id string, status entities.QuoteStatus, notes string) (entities.Quote, error) {
	updated, err := repo.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		if errors.Is(err, interfaces.ErrImmutable) {
			return entities.Quote{}, ErrQuoteBound
		}
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}
