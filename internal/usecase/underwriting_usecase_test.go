package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/riskscoring"
	mock_interfaces "stoploss_quoting/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type underwritingMocks struct {
	reviews  *mock_interfaces.MockIReviewRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	groups   *mock_interfaces.MockIGroupRepository
	members  *mock_interfaces.MockIMemberRepository
	assessor *mock_interfaces.MockIRiskAssessor
	metrics  *mock_interfaces.MockIMetricsRecorder
}

func newUnderwritingUseCaseWithMocks(ctrl *gomock.Controller) (*UnderwritingUseCase, underwritingMocks) {
	m := underwritingMocks{
		reviews:  mock_interfaces.NewMockIReviewRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		groups:   mock_interfaces.NewMockIGroupRepository(ctrl),
		members:  mock_interfaces.NewMockIMemberRepository(ctrl),
		assessor: mock_interfaces.NewMockIRiskAssessor(ctrl),
		metrics:  mock_interfaces.NewMockIMetricsRecorder(ctrl),
	}
	return NewUnderwritingUseCase(m.reviews, m.quotes, m.groups, m.members, m.assessor, m.metrics), m
}

func draftQuote() entities.Quote {
	return entities.Quote{ID: "q-1", TenantID: "t-1", GroupID: "g-1", Status: entities.QuoteStatusDraft}
}

func TestUnderwritingUseCase_SubmitForReview(t *testing.T) {
	for _, status := range []entities.QuoteStatus{entities.QuoteStatusBound, entities.QuoteStatusDeclined, entities.QuoteStatusExpired} {
		t.Run("terminal "+string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newUnderwritingUseCaseWithMocks(ctrl)
			q := draftQuote()
			q.Status = status
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

			_, err := uc.SubmitForReview(context.Background(), "t-1", "q-1")
			if !errors.Is(err, ErrQuoteNotReviewable) {
				t.Fatalf("expected ErrQuoteNotReviewable, got %v", err)
			}
		})
	}

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUnderwritingUseCaseWithMocks(ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.SubmitForReview(context.Background(), "t-1", "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	cases := []struct {
		name       string
		score      float64
		tier       entities.RiskTier
		decision   entities.UnderwritingDecision
		status     entities.QuoteStatus
		adjustment float64
	}{
		{"low risk approves", 0.2, entities.RiskTierLow, entities.DecisionApprove, entities.QuoteStatusApproved, 1.0},
		{"high risk still approves", 0.7, entities.RiskTierHigh, entities.DecisionApprove, entities.QuoteStatusApproved, 1.075},
		{"very high risk refers", 0.8, entities.RiskTierVeryHigh, entities.DecisionRefer, entities.QuoteStatusPendingReview, 1.125},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newUnderwritingUseCaseWithMocks(ctrl)

			group := entities.Group{ID: "g-1", TenantID: "t-1", MemberCount: 100}
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
			m.groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(group, nil)
			m.members.EXPECT().ListByGroupID(gomock.Any(), "g-1").Return([]entities.Member{}, nil)
			m.assessor.EXPECT().Assess(group, gomock.Any()).Return(entities.RiskAssessment{
				OverallScore:                  tc.score,
				Tier:                          tc.tier,
				RecommendedSpecificAttachment: 175000,
			})
			m.reviews.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.Review) (entities.Review, error) {
					if r.ID == "" || r.QuoteID != "q-1" || r.TenantID != "t-1" {
						t.Fatalf("unexpected review: %+v", r)
					}
					if r.Decision != tc.decision || r.PremiumAdjustmentFactor != tc.adjustment {
						t.Fatalf("unexpected decision %s / adjustment %v", r.Decision, r.PremiumAdjustmentFactor)
					}
					return r, nil
				},
			)
			m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status, "").Return(entities.Quote{ID: "q-1", Status: tc.status}, nil)
			m.metrics.EXPECT().UnderwritingDecision(tc.decision, "auto")

			res, err := uc.SubmitForReview(context.Background(), "t-1", "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.RecommendedAttachmentPoint != 175000 {
				t.Fatalf("expected recommended attachment 175000, got %v", res.RecommendedAttachmentPoint)
			}
		})
	}
}

func TestUnderwritingUseCase_SubmitForReviewTwiceIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	groups := mock_interfaces.NewMockIGroupRepository(ctrl)
	members := mock_interfaces.NewMockIMemberRepository(ctrl)
	metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
	engine := riskscoring.NewEngine(riskscoring.WithClock(func() time.Time {
		return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
	uc := NewUnderwritingUseCase(reviews, quotes, groups, members, engine, metrics)

	group := entities.Group{ID: "g-1", TenantID: "t-1", MemberCount: 3, State: "NY", SICCode: "2011"}
	roster := []entities.Member{
		{ID: "m-1", GroupID: "g-1", DateOfBirth: time.Date(1958, time.May, 1, 0, 0, 0, 0, time.UTC), Gender: "M", LargeClaimant: true},
		{ID: "m-2", GroupID: "g-1", DateOfBirth: time.Date(1990, time.July, 9, 0, 0, 0, 0, time.UTC), Gender: "F"},
		{ID: "m-3", GroupID: "g-1", DateOfBirth: time.Date(1975, time.March, 3, 0, 0, 0, 0, time.UTC), Gender: "M"},
	}

	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).Times(2)
	groups.EXPECT().GetByID(gomock.Any(), "g-1").Return(group, nil).Times(2)
	members.EXPECT().ListByGroupID(gomock.Any(), "g-1").Return(roster, nil).Times(2)

	var saved []entities.Review
	reviews.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Review) (entities.Review, error) {
			saved = append(saved, r)
			return r, nil
		},
	).Times(2)
	quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, id string, status entities.QuoteStatus, _ string) (entities.Quote, error) {
			return entities.Quote{ID: id, Status: status}, nil
		}).Times(2)
	metrics.EXPECT().UnderwritingDecision(gomock.Any(), "auto").Times(2)

	first, err := uc.SubmitForReview(context.Background(), "t-1", "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.SubmitForReview(context.Background(), "t-1", "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(saved) != 2 {
		t.Fatalf("expected two saved reviews, got %d", len(saved))
	}
	if first.Decision != second.Decision {
		t.Fatalf("decision changed between submissions: %s vs %s", first.Decision, second.Decision)
	}
	if first.PremiumAdjustmentFactor != second.PremiumAdjustmentFactor {
		t.Fatalf("adjustment changed between submissions: %v vs %v", first.PremiumAdjustmentFactor, second.PremiumAdjustmentFactor)
	}
	if saved[0].RiskScore != saved[1].RiskScore || saved[0].RiskFactors != saved[1].RiskFactors {
		t.Fatalf("risk picture changed between submissions: %+v vs %+v", saved[0], saved[1])
	}
}

func TestUnderwritingUseCase_ManualReview(t *testing.T) {
	t.Run("invalid decision", func(t *testing.T) {
		uc := NewUnderwritingUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.ManualReview(context.Background(), "t-1", ManualReviewInput{QuoteID: "q-1", Decision: "maybe"})
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("no prior review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUnderwritingUseCaseWithMocks(ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		m.reviews.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Review{}, nil)

		_, err := uc.ManualReview(context.Background(), "t-1", ManualReviewInput{QuoteID: "q-1", Decision: entities.DecisionApprove})
		if !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})

	t.Run("bound quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUnderwritingUseCaseWithMocks(ctrl)
		q := draftQuote()
		q.Status = entities.QuoteStatusBound
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.ManualReview(context.Background(), "t-1", ManualReviewInput{QuoteID: "q-1", Decision: entities.DecisionDecline})
		if !errors.Is(err, ErrQuoteBound) {
			t.Fatalf("expected ErrQuoteBound, got %v", err)
		}
	})

	t.Run("decline with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newUnderwritingUseCaseWithMocks(ctrl)

		q := draftQuote()
		q.Status = entities.QuoteStatusPendingReview
		existing := entities.Review{
			ID: "r-1", TenantID: "t-1", QuoteID: "q-1",
			Decision: entities.DecisionRefer, ReviewedBy: "system",
			Conditions: []string{"quarterly reporting"}, Exclusions: []string{},
		}
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.reviews.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(existing, nil)
		m.reviews.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ID != "r-1" || r.Decision != entities.DecisionDecline || r.Notes != "adverse claims trend" {
					t.Fatalf("unexpected review: %+v", r)
				}
				if r.ReviewedBy != "system" || len(r.Conditions) != 1 || r.ReviewedAt == nil {
					t.Fatalf("expected stored values kept and reviewed_at set: %+v", r)
				}
				return r, nil
			},
		)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusDeclined, "adverse claims trend").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDeclined}, nil)
		m.metrics.EXPECT().UnderwritingDecision(entities.DecisionDecline, "manual")

		_, err := uc.ManualReview(context.Background(), "t-1", ManualReviewInput{
			QuoteID:  "q-1",
			Decision: entities.DecisionDecline,
			Notes:    " adverse claims trend ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUnderwritingUseCase_GetByQuoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newUnderwritingUseCaseWithMocks(ctrl)
	m.reviews.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Review{ID: "r-1", TenantID: "t-2"}, nil)

	_, err := uc.GetByQuoteID(context.Background(), "t-1", "q-1")
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
