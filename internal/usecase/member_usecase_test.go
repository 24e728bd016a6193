package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
	mock_interfaces "stoploss_quoting/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validMember() entities.Member {
	return entities.Member{
		GroupID:     "g-1",
		ExternalID:  " EMP-001 ",
		DateOfBirth: time.Date(1985, time.May, 4, 0, 0, 0, 0, time.UTC),
		Gender:      "f",
	}
}

func TestMemberUseCase_Create(t *testing.T) {
	t.Run("missing group id", func(t *testing.T) {
		uc := NewMemberUseCase(nil, nil)
		m := validMember()
		m.GroupID = ""
		_, err := uc.Create(context.Background(), "t-1", m)
		if !errors.Is(err, ErrInvalidGroupID) {
			t.Fatalf("expected ErrInvalidGroupID, got %v", err)
		}
	})

	invalid := []struct {
		name   string
		mutate func(*entities.Member)
		want   error
	}{
		{"external id", func(m *entities.Member) { m.ExternalID = "" }, ErrInvalidExternalID},
		{"date of birth", func(m *entities.Member) { m.DateOfBirth = time.Time{} }, ErrInvalidDateOfBirth},
		{"gender", func(m *entities.Member) { m.Gender = " " }, ErrInvalidGender},
		{"claims", func(m *entities.Member) { v := -10.0; m.HistoricalClaimsAmount = &v }, ErrInvalidClaimsAmount},
	}
	for _, tc := range invalid {
		t.Run("invalid "+tc.name, func(t *testing.T) {
			uc := NewMemberUseCase(nil, nil)
			m := validMember()
			tc.mutate(&m)
			_, err := uc.Create(context.Background(), "t-1", m)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("group of another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		groups := mock_interfaces.NewMockIGroupRepository(ctrl)
		uc := NewMemberUseCase(repo, groups)
		groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{ID: "g-1", TenantID: "t-2"}, nil)

		_, err := uc.Create(context.Background(), "t-1", validMember())
		if !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("expected ErrGroupNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		groups := mock_interfaces.NewMockIGroupRepository(ctrl)
		uc := NewMemberUseCase(repo, groups)
		groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{ID: "g-1", TenantID: "t-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Member) (entities.Member, error) {
				if m.ID == "" || m.TenantID != "t-1" || m.ExternalID != "EMP-001" || m.Gender != "F" {
					t.Fatalf("unexpected member: %+v", m)
				}
				if m.ChronicConditions == nil || m.DiagnosisCodes == nil {
					t.Fatalf("expected empty lists, got nil")
				}
				return m, nil
			},
		)

		if _, err := uc.Create(context.Background(), "t-1", validMember()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMemberUseCase_BulkUpload(t *testing.T) {
	batch := func(n int) []entities.Member {
		out := make([]entities.Member, n)
		for i := range out {
			m := validMember()
			m.GroupID = ""
			m.ExternalID = fmt.Sprintf("EMP-%04d", i)
			out[i] = m
		}
		return out
	}

	t.Run("empty batch", func(t *testing.T) {
		uc := NewMemberUseCase(nil, nil)
		_, err := uc.BulkUpload(context.Background(), "t-1", "g-1", nil)
		if !errors.Is(err, ErrEmptyMemberBatch) {
			t.Fatalf("expected ErrEmptyMemberBatch, got %v", err)
		}
	})

	t.Run("one invalid member rejects the batch", func(t *testing.T) {
		uc := NewMemberUseCase(nil, nil)
		members := batch(3)
		members[2].Gender = ""
		_, err := uc.BulkUpload(context.Background(), "t-1", "g-1", members)
		if !errors.Is(err, ErrInvalidGender) {
			t.Fatalf("expected ErrInvalidGender, got %v", err)
		}
	})

	t.Run("members of another group", func(t *testing.T) {
		uc := NewMemberUseCase(nil, nil)
		members := batch(2)
		members[1].GroupID = "g-2"
		_, err := uc.BulkUpload(context.Background(), "t-1", "g-1", members)
		if !errors.Is(err, ErrMemberBatchGroupMixed) {
			t.Fatalf("expected ErrMemberBatchGroupMixed, got %v", err)
		}
	})

	t.Run("chunks of five hundred", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		groups := mock_interfaces.NewMockIGroupRepository(ctrl)
		uc := NewMemberUseCase(repo, groups)

		groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{ID: "g-1", TenantID: "t-1"}, nil)
		var sizes []int
		repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, ms []entities.Member) error {
				for _, m := range ms {
					if m.GroupID != "g-1" || m.TenantID != "t-1" || m.ID == "" {
						t.Fatalf("unexpected member: %+v", m)
					}
				}
				sizes = append(sizes, len(ms))
				return nil
			},
		)

		n, err := uc.BulkUpload(context.Background(), "t-1", "g-1", batch(1201))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1201 {
			t.Fatalf("expected 1201 created, got %d", n)
		}
		if len(sizes) != 3 || sizes[0] != 500 || sizes[1] != 500 || sizes[2] != 201 {
			t.Fatalf("unexpected chunk sizes: %v", sizes)
		}
	})

	t.Run("reports progress on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		groups := mock_interfaces.NewMockIGroupRepository(ctrl)
		uc := NewMemberUseCase(repo, groups)

		groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{ID: "g-1", TenantID: "t-1"}, nil)
		gomock.InOrder(
			repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Return(errors.New("db")),
		)

		n, err := uc.BulkUpload(context.Background(), "t-1", "g-1", batch(600))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if n != 500 {
			t.Fatalf("expected 500 created before failure, got %d", n)
		}
	})
}

func TestMemberUseCase_ListByGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMemberRepository(ctrl)
	uc := NewMemberUseCase(repo, nil)

	repo.EXPECT().ListByGroupID(gomock.Any(), "g-1").Return([]entities.Member{
		{ID: "m-1", TenantID: "t-1"},
		{ID: "m-2", TenantID: "t-2"},
		{ID: "m-3", TenantID: "t-1"},
	}, nil)

	res, err := uc.ListByGroup(context.Background(), "t-1", "g-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "m-1" || res[1].ID != "m-3" {
		t.Fatalf("unexpected members: %+v", res)
	}
}

func TestMemberUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		uc := NewMemberUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Member{}, nil)

		_, err := uc.Update(context.Background(), "t-1", "m-1", MemberUpdate{})
		if !errors.Is(err, ErrMemberNotFound) {
			t.Fatalf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("flags a large claimant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMemberRepository(ctrl)
		uc := NewMemberUseCase(repo, nil)

		stored := validMember()
		stored.ID, stored.TenantID = "m-1", "t-1"
		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Member) (entities.Member, error) {
				if !m.LargeClaimant || m.ClaimsAmount() != 250000 {
					t.Fatalf("unexpected member: %+v", m)
				}
				return m, nil
			},
		)

		flag, claims := true, 250000.0
		if _, err := uc.Update(context.Background(), "t-1", "m-1", MemberUpdate{LargeClaimant: &flag, HistoricalClaimsAmount: &claims}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
