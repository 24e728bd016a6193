package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// BindInput asks for an approved quote to become a policy.
type BindInput struct {
	QuoteID string
	BoundBy string
	Terms   map[string]any
}

// IPolicyUseCase binds approved quotes and manages the resulting policies.
type IPolicyUseCase interface {
	BindQuote(ctx context.Context, tenantID string, in BindInput) (entities.Policy, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Policy, error)
	List(ctx context.Context, tenantID string) ([]entities.Policy, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.PolicyStatus) (entities.Policy, error)
}

type PolicyUseCase struct {
	repo      interfaces.IPolicyRepository
	quoteRepo interfaces.IQuoteRepository
	metrics   interfaces.IMetricsRecorder
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, quoteRepo interfaces.IQuoteRepository, metrics interfaces.IMetricsRecorder) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, quoteRepo: quoteRepo, metrics: metrics}
}

func (u *PolicyUseCase) BindQuote(ctx context.Context, tenantID string, in BindInput) (entities.Policy, error) {
	q, err := loadQuote(ctx, u.quoteRepo, tenantID, in.QuoteID)
	if err != nil {
		return entities.Policy{}, err
	}

	if q.Status != entities.QuoteStatusApproved {
		return entities.Policy{}, ErrQuoteNotApproved
	}

	// A policy on a still-approved quote means an earlier bind stopped
	// before the quote status update.
	existing, err := u.repo.GetByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Policy{}, err
	}
	if existing.ID != "" {
		logger("policy.usecase").Warn().
			Str("quote_id", q.ID).Str("policy_id", existing.ID).
			Msg("resuming interrupted bind")
		return u.finishBind(ctx, q, existing)
	}

	now := time.Now().UTC()
	if q.ValidityLapsed(now) {
		return entities.Policy{}, ErrQuoteLapsed
	}

	terms := in.Terms
	if terms == nil {
		terms = map[string]any{}
	}
	p := entities.Policy{
		ID:                        uuid.NewString(),
		TenantID:                  q.TenantID,
		PolicyNumber:              PolicyNumber(now),
		GroupID:                   q.GroupID,
		QuoteID:                   q.ID,
		CoverageType:              q.CoverageType,
		Status:                    entities.PolicyStatusActive,
		EffectiveDate:             q.EffectiveDate,
		TerminationDate:           q.ExpirationDate,
		SpecificAttachmentPoint:   q.SpecificAttachmentPoint,
		SpecificMaxLiability:      q.SpecificMaxLiability,
		AggregateAttachmentPoint:  q.AggregateAttachmentPoint,
		AggregateAttachmentFactor: q.AggregateAttachmentFactor,
		AggregateMaxLiability:     q.AggregateMaxLiability,
		TotalAnnualPremium:        q.TotalAnnualPremium,
		PEPMRate:                  q.PEPMRate,
		Terms:                     terms,
		BoundBy:                   strings.TrimSpace(in.BoundBy),
		BoundAt:                   now,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		// a concurrent bind won the conditional write
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Policy{}, ErrPolicyAlreadyExists
		}
		return entities.Policy{}, err
	}

	return u.finishBind(ctx, q, created)
}

func (u *PolicyUseCase) finishBind(ctx context.Context, q entities.Quote, p entities.Policy) (entities.Policy, error) {
	if _, err := updateQuoteStatus(ctx, u.quoteRepo, q.ID, entities.QuoteStatusBound, ""); err != nil {
		logger("policy.usecase").Error().Err(err).
			Str("quote_id", q.ID).Str("policy_id", p.ID).
			Msg("policy created but quote status not updated")
		return entities.Policy{}, err
	}

	u.metrics.PolicyBound()
	logger("policy.usecase").Info().
		Str("tenant_id", q.TenantID).Str("quote_id", q.ID).
		Str("policy_id", p.ID).Str("policy_number", p.PolicyNumber).
		Msg("quote bound")
	return p, nil
}

func (u *PolicyUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Policy, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Policy{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" || p.TenantID != tenantID {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) List(ctx context.Context, tenantID string) ([]entities.Policy, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *PolicyUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.PolicyStatus) (entities.Policy, error) {
	if !status.Valid() {
		return entities.Policy{}, ErrInvalidPolicyStatus
	}
	p, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Policy{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, status)
	if err != nil {
		return entities.Policy{}, err
	}
	if updated.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return updated, nil
}

// PolicyNumber formats SLP-<year>-<6 random hex chars>.
func PolicyNumber(now time.Time) string {
	return "SLP-" + strconv.Itoa(now.Year()) + "-" + strings.ToUpper(uuid.NewString()[:6])
}
