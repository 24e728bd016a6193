package repository

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type riskFactorsItem struct {
	Demographic      float64 `dynamodbav:"demographic_score"`
	HistoricalClaims float64 `dynamodbav:"historical_claims_score"`
	ChronicCondition float64 `dynamodbav:"chronic_condition_score"`
	LargeClaimant    float64 `dynamodbav:"large_claimant_score"`
	Geographic       float64 `dynamodbav:"geographic_score"`
	Industry         float64 `dynamodbav:"industry_score"`
}

func toRiskFactorsItem(f entities.RiskFactors) riskFactorsItem {
	return riskFactorsItem(f)
}

func fromRiskFactorsItem(it riskFactorsItem) entities.RiskFactors {
	return entities.RiskFactors(it)
}

type quoteItem struct {
	ID                        string          `dynamodbav:"id"`
	TenantID                  string          `dynamodbav:"tenant_id"`
	QuoteNumber               string          `dynamodbav:"quote_number"`
	GroupID                   string          `dynamodbav:"group_id"`
	CoverageType              string          `dynamodbav:"coverage_type"`
	Status                    string          `dynamodbav:"status"`
	SpecificAttachmentPoint   float64         `dynamodbav:"specific_attachment_point"`
	SpecificMaxLiability      *float64        `dynamodbav:"specific_max_liability,omitempty"`
	SpecificPremiumRate       float64         `dynamodbav:"specific_premium_rate"`
	SpecificAnnualPremium     float64         `dynamodbav:"specific_annual_premium"`
	AggregateAttachmentPoint  float64         `dynamodbav:"aggregate_attachment_point"`
	AggregateAttachmentFactor float64         `dynamodbav:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64        `dynamodbav:"aggregate_max_liability,omitempty"`
	AggregatePremiumRate      float64         `dynamodbav:"aggregate_premium_rate"`
	AggregateAnnualPremium    float64         `dynamodbav:"aggregate_annual_premium"`
	TotalAnnualPremium        float64         `dynamodbav:"total_annual_premium"`
	PEPMRate                  float64         `dynamodbav:"pepm_rate"`
	RiskScore                 float64         `dynamodbav:"risk_score"`
	RiskFactors               riskFactorsItem `dynamodbav:"risk_factors"`
	ExpectedClaims            float64         `dynamodbav:"expected_claims"`
	EffectiveDate             string          `dynamodbav:"effective_date"`
	ExpirationDate            string          `dynamodbav:"expiration_date"`
	ContractPeriodMonths      int             `dynamodbav:"contract_period_months"`
	UnderwriterNotes          string          `dynamodbav:"underwriter_notes,omitempty"`
	QuoteValidUntil           string          `dynamodbav:"quote_valid_until"`
	CreatedAt                 string          `dynamodbav:"created_at"`
	UpdatedAt                 string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (HASH), created_at (RANGE)
//
// Bound quotes are immutable: status updates are conditional on the stored
// status not being bound.
type QuoteDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Quote{}, interfaces.ErrAlreadyExists
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	var items []quoteItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, tenantIndex, "tenant_id", tenantID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

// UpdateStatus sets the status and, when notes is non-empty, the underwriter
// notes. It returns a zero Quote when the id is unknown and ErrImmutable when
// the stored quote is bound.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, notes string) (entities.Quote, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		":bound":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusBound)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if notes != "" {
		expr += ", #notes = :notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: notes}
		names["#notes"] = "underwriter_notes"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 stringKey("id", id),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status <> :bound"),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := isConditionFailed(err); ok {
			// The old item is only returned when it exists, so it was bound.
			if len(cfe.Item) > 0 {
				return entities.Quote{}, interfaces.ErrImmutable
			}
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                        q.ID,
		TenantID:                  q.TenantID,
		QuoteNumber:               q.QuoteNumber,
		GroupID:                   q.GroupID,
		CoverageType:              string(q.CoverageType),
		Status:                    string(q.Status),
		SpecificAttachmentPoint:   q.SpecificAttachmentPoint,
		SpecificMaxLiability:      q.SpecificMaxLiability,
		SpecificPremiumRate:       q.SpecificPremiumRate,
		SpecificAnnualPremium:     q.SpecificAnnualPremium,
		AggregateAttachmentPoint:  q.AggregateAttachmentPoint,
		AggregateAttachmentFactor: q.AggregateAttachmentFactor,
		AggregateMaxLiability:     q.AggregateMaxLiability,
		AggregatePremiumRate:      q.AggregatePremiumRate,
		AggregateAnnualPremium:    q.AggregateAnnualPremium,
		TotalAnnualPremium:        q.TotalAnnualPremium,
		PEPMRate:                  q.PEPMRate,
		RiskScore:                 q.RiskScore,
		RiskFactors:               toRiskFactorsItem(q.RiskFactors),
		ExpectedClaims:            q.ExpectedClaims,
		EffectiveDate:             formatTime(q.EffectiveDate),
		ExpirationDate:            formatTime(q.ExpirationDate),
		ContractPeriodMonths:      q.ContractPeriodMonths,
		UnderwriterNotes:          q.UnderwriterNotes,
		QuoteValidUntil:           formatTime(q.QuoteValidUntil),
		CreatedAt:                 formatTime(q.CreatedAt),
		UpdatedAt:                 formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:                        it.ID,
		TenantID:                  it.TenantID,
		QuoteNumber:               it.QuoteNumber,
		GroupID:                   it.GroupID,
		CoverageType:              entities.CoverageType(it.CoverageType),
		Status:                    entities.QuoteStatus(it.Status),
		SpecificAttachmentPoint:   it.SpecificAttachmentPoint,
		SpecificMaxLiability:      it.SpecificMaxLiability,
		SpecificPremiumRate:       it.SpecificPremiumRate,
		SpecificAnnualPremium:     it.SpecificAnnualPremium,
		AggregateAttachmentPoint:  it.AggregateAttachmentPoint,
		AggregateAttachmentFactor: it.AggregateAttachmentFactor,
		AggregateMaxLiability:     it.AggregateMaxLiability,
		AggregatePremiumRate:      it.AggregatePremiumRate,
		AggregateAnnualPremium:    it.AggregateAnnualPremium,
		TotalAnnualPremium:        it.TotalAnnualPremium,
		PEPMRate:                  it.PEPMRate,
		RiskScore:                 it.RiskScore,
		RiskFactors:               fromRiskFactorsItem(it.RiskFactors),
		ExpectedClaims:            it.ExpectedClaims,
		EffectiveDate:             parseTime(it.EffectiveDate),
		ExpirationDate:            parseTime(it.ExpirationDate),
		ContractPeriodMonths:      it.ContractPeriodMonths,
		UnderwriterNotes:          it.UnderwriterNotes,
		QuoteValidUntil:           parseTime(it.QuoteValidUntil),
		CreatedAt:                 parseTime(it.CreatedAt),
		UpdatedAt:                 parseTime(it.UpdatedAt),
	}
}
