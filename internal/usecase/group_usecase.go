package usecase

import (
	"context"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// GroupUpdate is a partial update. Nil fields are left untouched.
type GroupUpdate struct {
	Name             *string
	GroupType        *entities.GroupType
	ContractType     *entities.ContractType
	TaxID            *string
	State            *string
	Region           *string
	SICCode          *string
	MemberCount      *int
	EffectiveDate    *time.Time
	RenewalDate      *time.Time
	HistoricalClaims *entities.HistoricalClaimsData
	PriorCoverage    map[string]any
}

// IGroupUseCase administers client groups for one tenant.
type IGroupUseCase interface {
	Create(ctx context.Context, tenantID string, g entities.Group) (entities.Group, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Group, error)
	List(ctx context.Context, tenantID string) ([]entities.Group, error)
	Update(ctx context.Context, tenantID, id string, patch GroupUpdate) (entities.Group, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type GroupUseCase struct {
	repo interfaces.IGroupRepository
}

var _ IGroupUseCase = (*GroupUseCase)(nil)

func NewGroupUseCase(repo interfaces.IGroupRepository) *GroupUseCase {
	return &GroupUseCase{repo: repo}
}

func (u *GroupUseCase) Create(ctx context.Context, tenantID string, g entities.Group) (entities.Group, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Group{}, err
	}

	g = normalizeGroup(g)
	if err := validateGroup(g); err != nil {
		return entities.Group{}, err
	}

	now := time.Now().UTC()
	g.ID = uuid.NewString()
	g.TenantID = tenantID
	g.CreatedAt = now
	g.UpdatedAt = now

	created, err := u.repo.Create(ctx, g)
	if err != nil {
		return entities.Group{}, err
	}
	logger("group.usecase").Info().Str("tenant_id", tenantID).Str("group_id", created.ID).Msg("group created")
	return created, nil
}

func (u *GroupUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Group, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Group{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Group{}, ErrInvalidGroupID
	}

	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Group{}, err
	}
	if g.ID == "" || g.TenantID != tenantID {
		return entities.Group{}, ErrGroupNotFound
	}
	return g, nil
}

func (u *GroupUseCase) List(ctx context.Context, tenantID string) ([]entities.Group, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *GroupUseCase) Update(ctx context.Context, tenantID, id string, patch GroupUpdate) (entities.Group, error) {
	g, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Group{}, err
	}

	patch.apply(&g)
	g = normalizeGroup(g)
	if err := validateGroup(g); err != nil {
		return entities.Group{}, err
	}
	g.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, g)
	if err != nil {
		return entities.Group{}, err
	}
	if updated.ID == "" {
		return entities.Group{}, ErrGroupNotFound
	}
	return updated, nil
}

func (u *GroupUseCase) Delete(ctx context.Context, tenantID, id string) error {
	g, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	deleted, err := u.repo.Delete(ctx, g.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGroupNotFound
	}
	logger("group.usecase").Info().Str("tenant_id", g.TenantID).Str("group_id", g.ID).Msg("group deleted")
	return nil
}

func (p GroupUpdate) apply(g *entities.Group) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.GroupType != nil {
		g.GroupType = *p.GroupType
	}
	if p.ContractType != nil {
		g.ContractType = *p.ContractType
	}
	if p.TaxID != nil {
		g.TaxID = *p.TaxID
	}
	if p.State != nil {
		g.State = *p.State
	}
	if p.Region != nil {
		g.Region = *p.Region
	}
	if p.SICCode != nil {
		g.SICCode = *p.SICCode
	}
	if p.MemberCount != nil {
		g.MemberCount = *p.MemberCount
	}
	if p.EffectiveDate != nil {
		g.EffectiveDate = p.EffectiveDate
	}
	if p.RenewalDate != nil {
		g.RenewalDate = p.RenewalDate
	}
	if p.HistoricalClaims != nil {
		g.HistoricalClaims = p.HistoricalClaims
	}
	if p.PriorCoverage != nil {
		g.PriorCoverage = p.PriorCoverage
	}
}

func normalizeGroup(g entities.Group) entities.Group {
	g.Name = strings.TrimSpace(g.Name)
	g.State = strings.ToUpper(strings.TrimSpace(g.State))
	g.SICCode = strings.TrimSpace(g.SICCode)
	return g
}

func validateGroup(g entities.Group) error {
	switch {
	case g.Name == "":
		return ErrInvalidGroupName
	case !g.GroupType.Valid():
		return ErrInvalidGroupType
	case !g.ContractType.Valid():
		return ErrInvalidContractType
	case g.MemberCount < 0:
		return ErrInvalidMemberCount
	case g.State != "" && !isStateCode(g.State):
		return ErrInvalidState
	}
	if h := g.HistoricalClaims; h != nil && (h.TotalClaims < 0 || h.MemberMonths < 0) {
		return ErrInvalidClaimsData
	}
	return nil
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
