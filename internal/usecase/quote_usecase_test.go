package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/errs"
	"stoploss_quoting/internal/domain/rating"
	"stoploss_quoting/internal/usecase/interfaces"
	mock_interfaces "stoploss_quoting/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	groups   *mock_interfaces.MockIGroupRepository
	members  *mock_interfaces.MockIMemberRepository
	assessor *mock_interfaces.MockIRiskAssessor
	metrics  *mock_interfaces.MockIMetricsRecorder
}

func newQuoteUseCaseWithMocks(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		groups:   mock_interfaces.NewMockIGroupRepository(ctrl),
		members:  mock_interfaces.NewMockIMemberRepository(ctrl),
		assessor: mock_interfaces.NewMockIRiskAssessor(ctrl),
		metrics:  mock_interfaces.NewMockIMetricsRecorder(ctrl),
	}
	return NewQuoteUseCase(m.quotes, m.groups, m.members, m.assessor, m.metrics), m
}

func moderateRisk() entities.RiskAssessment {
	return entities.RiskAssessment{
		OverallScore:                         0.5,
		Tier:                                 entities.RiskTierModerate,
		ExpectedClaimsCost:                   3375000,
		RecommendedSpecificAttachment:        225000,
		RecommendedAggregateAttachmentFactor: 1.20,
		ExpectedLossRatio:                    0.775,
	}
}

func quoteParams() rating.Params {
	return rating.Params{
		CoverageType:  entities.CoverageBoth,
		EffectiveDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestQuoteUseCase_GenerateQuote(t *testing.T) {
	t.Run("invalid params are rejected before loading anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseWithMocks(ctrl)

		p := quoteParams()
		p.CoverageType = "excess"
		_, err := uc.GenerateQuote(context.Background(), "t-1", "g-1", p)
		if !errors.Is(err, rating.ErrInvalidCoverageType) {
			t.Fatalf("expected ErrInvalidCoverageType, got %v", err)
		}
	})

	t.Run("group not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)
		m.groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{}, nil)

		_, err := uc.GenerateQuote(context.Background(), "t-1", "g-1", quoteParams())
		if !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("expected ErrGroupNotFound, got %v", err)
		}
	})

	t.Run("group without members or declared size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)
		m.groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(entities.Group{ID: "g-1", TenantID: "t-1"}, nil)
		m.members.EXPECT().ListByGroupID(gomock.Any(), "g-1").Return(nil, nil)

		_, err := uc.GenerateQuote(context.Background(), "t-1", "g-1", quoteParams())
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		group := entities.Group{ID: "g-1", TenantID: "t-1", MemberCount: 500}
		m.groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(group, nil)
		m.members.EXPECT().ListByGroupID(gomock.Any(), "g-1").Return(nil, nil)
		m.assessor.EXPECT().Assess(group, gomock.Nil()).Return(moderateRisk())
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.TenantID != "t-1" || q.GroupID != "g-1" || q.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.TotalAnnualPremium != 385.42 {
					t.Fatalf("expected total premium 385.42, got %v", q.TotalAnnualPremium)
				}
				return q, nil
			},
		)
		m.metrics.EXPECT().QuoteGenerated(entities.CoverageBoth, 0.5)

		res, err := uc.GenerateQuote(context.Background(), "t-1", "g-1", quoteParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteNumber == "" {
			t.Fatalf("expected quote number")
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "t-1", "q-1", "archived", "")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("cannot bind manually", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "t-1", "q-1", entities.QuoteStatusBound, "")
		if !errors.Is(err, ErrManualBind) || !errors.Is(err, errs.ErrStateConflict) {
			t.Fatalf("expected ErrManualBind, got %v", err)
		}
	})

	t.Run("bound quote is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TenantID: "t-1", Status: entities.QuoteStatusBound}, nil)

		_, err := uc.UpdateStatus(context.Background(), "t-1", "q-1", entities.QuoteStatusExpired, "")
		if !errors.Is(err, ErrQuoteBound) {
			t.Fatalf("expected ErrQuoteBound, got %v", err)
		}
	})

	t.Run("bound concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TenantID: "t-1", Status: entities.QuoteStatusApproved}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusExpired, "").Return(entities.Quote{}, interfaces.ErrImmutable)

		_, err := uc.UpdateStatus(context.Background(), "t-1", "q-1", entities.QuoteStatusExpired, "")
		if !errors.Is(err, ErrQuoteBound) {
			t.Fatalf("expected ErrQuoteBound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TenantID: "t-1", Status: entities.QuoteStatusDraft}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusExpired, "lapsed").
			Return(entities.Quote{ID: "q-1", TenantID: "t-1", Status: entities.QuoteStatusExpired}, nil)

		res, err := uc.UpdateStatus(context.Background(), "t-1", "q-1", entities.QuoteStatusExpired, " lapsed ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusExpired {
			t.Fatalf("expected expired, got %s", res.Status)
		}
	})
}
