package repository

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type reviewItem struct {
	QuoteID                    string          `dynamodbav:"quote_id"`
	ID                         string          `dynamodbav:"id"`
	TenantID                   string          `dynamodbav:"tenant_id"`
	Decision                   string          `dynamodbav:"decision"`
	RiskTier                   string          `dynamodbav:"risk_tier"`
	RiskScore                  float64         `dynamodbav:"risk_score"`
	RiskFactors                riskFactorsItem `dynamodbav:"risk_factors"`
	LargeClaimantCount         int             `dynamodbav:"large_claimant_count"`
	ExpectedLossRatio          float64         `dynamodbav:"expected_loss_ratio"`
	RecommendedAttachmentPoint float64         `dynamodbav:"recommended_attachment_point"`
	PremiumAdjustmentFactor    float64         `dynamodbav:"premium_adjustment_factor"`
	Notes                      string          `dynamodbav:"notes,omitempty"`
	ReviewedBy                 string          `dynamodbav:"reviewed_by,omitempty"`
	ReviewedAt                 string          `dynamodbav:"reviewed_at,omitempty"`
	Conditions                 []string        `dynamodbav:"conditions"`
	Exclusions                 []string        `dynamodbav:"exclusions"`
	CreatedAt                  string          `dynamodbav:"created_at"`
	UpdatedAt                  string          `dynamodbav:"updated_at"`
}

// ReviewDynamoRepository keeps the latest underwriting review of each quote.
//
// Table requirements:
//   - PK: quote_id (string)
//   - GSI tenant_id-index: tenant_id (HASH), created_at (RANGE)
type ReviewDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb dynamoAPI, tableName string) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save is an unconditional put: a resubmission replaces the previous review.
func (r *ReviewDynamoRepository) Save(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rv))
	if err != nil {
		return entities.Review{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Review, error) {
	var it reviewItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("quote_id", quoteID), &it)
	if err != nil || !found {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Review, error) {
	var items []reviewItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, tenantIndex, "tenant_id", tenantID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Review, 0, len(items))
	for _, it := range items {
		out = append(out, fromReviewItem(it))
	}
	return out, nil
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		QuoteID:                    r.QuoteID,
		ID:                         r.ID,
		TenantID:                   r.TenantID,
		Decision:                   string(r.Decision),
		RiskTier:                   string(r.RiskTier),
		RiskScore:                  r.RiskScore,
		RiskFactors:                toRiskFactorsItem(r.RiskFactors),
		LargeClaimantCount:         r.LargeClaimantCount,
		ExpectedLossRatio:          r.ExpectedLossRatio,
		RecommendedAttachmentPoint: r.RecommendedAttachmentPoint,
		PremiumAdjustmentFactor:    r.PremiumAdjustmentFactor,
		Notes:                      r.Notes,
		ReviewedBy:                 r.ReviewedBy,
		ReviewedAt:                 formatTimePtr(r.ReviewedAt),
		Conditions:                 nonNil(r.Conditions),
		Exclusions:                 nonNil(r.Exclusions),
		CreatedAt:                  formatTime(r.CreatedAt),
		UpdatedAt:                  formatTime(r.UpdatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:                         it.ID,
		TenantID:                   it.TenantID,
		QuoteID:                    it.QuoteID,
		Decision:                   entities.UnderwritingDecision(it.Decision),
		RiskTier:                   entities.RiskTier(it.RiskTier),
		RiskScore:                  it.RiskScore,
		RiskFactors:                fromRiskFactorsItem(it.RiskFactors),
		LargeClaimantCount:         it.LargeClaimantCount,
		ExpectedLossRatio:          it.ExpectedLossRatio,
		RecommendedAttachmentPoint: it.RecommendedAttachmentPoint,
		PremiumAdjustmentFactor:    it.PremiumAdjustmentFactor,
		Notes:                      it.Notes,
		ReviewedBy:                 it.ReviewedBy,
		ReviewedAt:                 parseTimePtr(it.ReviewedAt),
		Conditions:                 nonNil(it.Conditions),
		Exclusions:                 nonNil(it.Exclusions),
		CreatedAt:                  parseTime(it.CreatedAt),
		UpdatedAt:                  parseTime(it.UpdatedAt),
	}
}
