package usecase

import (
	"context"
	"strings"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// bulkChunkSize bounds how many members are handed to the repository per call.
const bulkChunkSize = 500

// MemberUpdate is a partial update. Nil fields are left untouched.
type MemberUpdate struct {
	ExternalID             *string
	DateOfBirth            *time.Time
	Gender                 *string
	ZipCode                *string
	RelationshipCode       *string
	RiskScore              *float64
	ChronicConditions      []string
	HistoricalClaimsAmount *float64
	LargeClaimant          *bool
	DiagnosisCodes         []string
	EnrollmentDate         *time.Time
	TerminationDate        *time.Time
	PlanType               *string
}

// IMemberUseCase administers the covered lives of a group.
type IMemberUseCase interface {
	Create(ctx context.Context, tenantID string, member entities.Member) (entities.Member, error)
	BulkUpload(ctx context.Context, tenantID, groupID string, members []entities.Member) (int, error)
	ListByGroup(ctx context.Context, tenantID, groupID string) ([]entities.Member, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Member, error)
	Update(ctx context.Context, tenantID, id string, patch MemberUpdate) (entities.Member, error)
}

type MemberUseCase struct {
	repo      interfaces.IMemberRepository
	groupRepo interfaces.IGroupRepository
}

var _ IMemberUseCase = (*MemberUseCase)(nil)

func NewMemberUseCase(repo interfaces.IMemberRepository, groupRepo interfaces.IGroupRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo, groupRepo: groupRepo}
}

func (u *MemberUseCase) Create(ctx context.Context, tenantID string, m entities.Member) (entities.Member, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Member{}, err
	}
	m.GroupID = strings.TrimSpace(m.GroupID)
	if m.GroupID == "" {
		return entities.Member{}, ErrInvalidGroupID
	}
	m = normalizeMember(m)
	if err := validateMember(m); err != nil {
		return entities.Member{}, err
	}
	if err := u.ensureGroup(ctx, tenantID, m.GroupID); err != nil {
		return entities.Member{}, err
	}

	return u.repo.Create(ctx, stampNewMember(m, tenantID, time.Now().UTC()))
}

// BulkUpload stores members for one group and returns how many were created.
// Every member is validated before anything is written.
func (u *MemberUseCase) BulkUpload(ctx context.Context, tenantID, groupID string, members []entities.Member) (int, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return 0, err
	}
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return 0, ErrInvalidGroupID
	}
	if len(members) == 0 {
		return 0, ErrEmptyMemberBatch
	}

	now := time.Now().UTC()
	prepared := make([]entities.Member, 0, len(members))
	for _, m := range members {
		if gid := strings.TrimSpace(m.GroupID); gid != "" && gid != groupID {
			return 0, ErrMemberBatchGroupMixed
		}
		m.GroupID = groupID
		m = normalizeMember(m)
		if err := validateMember(m); err != nil {
			return 0, err
		}
		prepared = append(prepared, stampNewMember(m, tenantID, now))
	}

	if err := u.ensureGroup(ctx, tenantID, groupID); err != nil {
		return 0, err
	}

	created := 0
	for start := 0; start < len(prepared); start += bulkChunkSize {
		end := min(start+bulkChunkSize, len(prepared))
		if err := u.repo.BatchCreate(ctx, prepared[start:end]); err != nil {
			logger("member.usecase").Error().Err(err).
				Str("tenant_id", tenantID).Str("group_id", groupID).
				Int("created", created).Msg("bulk upload interrupted")
			return created, err
		}
		created = end
	}

	logger("member.usecase").Info().Str("tenant_id", tenantID).Str("group_id", groupID).Int("created", created).Msg("members uploaded")
	return created, nil
}

func (u *MemberUseCase) ListByGroup(ctx context.Context, tenantID, groupID string) ([]entities.Member, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return nil, err
	}
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, ErrInvalidGroupID
	}

	members, err := u.repo.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	out := members[:0]
	for _, m := range members {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (u *MemberUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Member, error) {
	tenantID, err := requireTenant(tenantID)
	if err != nil {
		return entities.Member{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Member{}, ErrInvalidMemberID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Member{}, err
	}
	if m.ID == "" || m.TenantID != tenantID {
		return entities.Member{}, ErrMemberNotFound
	}
	return m, nil
}

func (u *MemberUseCase) Update(ctx context.Context, tenantID, id string, patch MemberUpdate) (entities.Member, error) {
	m, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Member{}, err
	}

	patch.apply(&m)
	m = normalizeMember(m)
	if err := validateMember(m); err != nil {
		return entities.Member{}, err
	}
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Member{}, err
	}
	if updated.ID == "" {
		return entities.Member{}, ErrMemberNotFound
	}
	return updated, nil
}

func (u *MemberUseCase) ensureGroup(ctx context.Context, tenantID, groupID string) error {
	g, err := u.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g.ID == "" || g.TenantID != tenantID {
		return ErrGroupNotFound
	}
	return nil
}

func (p MemberUpdate) apply(m *entities.Member) {
	if p.ExternalID != nil {
		m.ExternalID = *p.ExternalID
	}
	if p.DateOfBirth != nil {
		m.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		m.Gender = *p.Gender
	}
	if p.ZipCode != nil {
		m.ZipCode = *p.ZipCode
	}
	if p.RelationshipCode != nil {
		m.RelationshipCode = *p.RelationshipCode
	}
	if p.RiskScore != nil {
		m.RiskScore = p.RiskScore
	}
	if p.ChronicConditions != nil {
		m.ChronicConditions = p.ChronicConditions
	}
	if p.HistoricalClaimsAmount != nil {
		m.HistoricalClaimsAmount = p.HistoricalClaimsAmount
	}
	if p.LargeClaimant != nil {
		m.LargeClaimant = *p.LargeClaimant
	}
	if p.DiagnosisCodes != nil {
		m.DiagnosisCodes = p.DiagnosisCodes
	}
	if p.EnrollmentDate != nil {
		m.EnrollmentDate = p.EnrollmentDate
	}
	if p.TerminationDate != nil {
		m.TerminationDate = p.TerminationDate
	}
	if p.PlanType != nil {
		m.PlanType = *p.PlanType
	}
}

func normalizeMember(m entities.Member) entities.Member {
	m.ExternalID = strings.TrimSpace(m.ExternalID)
	m.Gender = strings.ToUpper(strings.TrimSpace(m.Gender))
	if m.ChronicConditions == nil {
		m.ChronicConditions = []string{}
	}
	if m.DiagnosisCodes == nil {
		m.DiagnosisCodes = []string{}
	}
	return m
}

func validateMember(m entities.Member) error {
	switch {
	case m.ExternalID == "":
		return ErrInvalidExternalID
	case m.DateOfBirth.IsZero():
		return ErrInvalidDateOfBirth
	case m.Gender == "":
		return ErrInvalidGender
	case m.HistoricalClaimsAmount != nil && *m.HistoricalClaimsAmount < 0:
		return ErrInvalidClaimsAmount
	}
	return nil
}

func stampNewMember(m entities.Member, tenantID string, now time.Time) entities.Member {
	m.ID = uuid.NewString()
	m.TenantID = tenantID
	m.CreatedAt = now
	m.UpdatedAt = now
	return m
}
