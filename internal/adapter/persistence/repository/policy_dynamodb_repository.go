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

const policyIDIndex = "id-index"

type policyItem struct {
	QuoteID                   string         `dynamodbav:"quote_id"`
	ID                        string         `dynamodbav:"id"`
	TenantID                  string         `dynamodbav:"tenant_id"`
	PolicyNumber              string         `dynamodbav:"policy_number"`
	GroupID                   string         `dynamodbav:"group_id"`
	CoverageType              string         `dynamodbav:"coverage_type"`
	Status                    string         `dynamodbav:"status"`
	EffectiveDate             string         `dynamodbav:"effective_date"`
	TerminationDate           string         `dynamodbav:"termination_date"`
	SpecificAttachmentPoint   float64        `dynamodbav:"specific_attachment_point"`
	SpecificMaxLiability      *float64       `dynamodbav:"specific_max_liability,omitempty"`
	AggregateAttachmentPoint  float64        `dynamodbav:"aggregate_attachment_point"`
	AggregateAttachmentFactor float64        `dynamodbav:"aggregate_attachment_factor"`
	AggregateMaxLiability     *float64       `dynamodbav:"aggregate_max_liability,omitempty"`
	TotalAnnualPremium        float64        `dynamodbav:"total_annual_premium"`
	PEPMRate                  float64        `dynamodbav:"pepm_rate"`
	Terms                     map[string]any `dynamodbav:"terms"`
	BoundBy                   string         `dynamodbav:"bound_by,omitempty"`
	BoundAt                   string         `dynamodbav:"bound_at"`
	CreatedAt                 string         `dynamodbav:"created_at"`
	UpdatedAt                 string         `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - GSI id-index: id (HASH)
//   - GSI tenant_id-index: tenant_id (HASH), created_at (RANGE)
//
// We use the quote id as PK so the conditional put guarantees at most one
// policy per quote, even under concurrent binds.
type PolicyDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb dynamoAPI, tableName string) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	})
	if err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Policy{}, interfaces.ErrAlreadyExists
		}
		return entities.Policy{}, err
	}
	return p, nil
}

// GetByID resolves the policy through the id-index GSI.
func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	var items []policyItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, policyIDIndex, "id", id, &items); err != nil {
		return entities.Policy{}, err
	}
	if len(items) == 0 {
		return entities.Policy{}, nil
	}
	return fromPolicyItem(items[0]), nil
}

func (r *PolicyDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Policy, error) {
	var it policyItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("quote_id", quoteID), &it)
	if err != nil || !found {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Policy, error) {
	var items []policyItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, tenantIndex, "tenant_id", tenantID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Policy, 0, len(items))
	for _, it := range items {
		out = append(out, fromPolicyItem(it))
	}
	return out, nil
}

func (r *PolicyDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PolicyStatus) (entities.Policy, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return entities.Policy{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("quote_id", current.QuoteID),
		ConditionExpression: aws.String("attribute_exists(#quote_id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#quote_id": "quote_id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Policy{}, nil
		}
		return entities.Policy{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func toPolicyItem(p entities.Policy) policyItem {
	terms := p.Terms
	if terms == nil {
		terms = map[string]any{}
	}
	return policyItem{
		QuoteID:                   p.QuoteID,
		ID:                        p.ID,
		TenantID:                  p.TenantID,
		PolicyNumber:              p.PolicyNumber,
		GroupID:                   p.GroupID,
		CoverageType:              string(p.CoverageType),
		Status:                    string(p.Status),
		EffectiveDate:             formatTime(p.EffectiveDate),
		TerminationDate:           formatTime(p.TerminationDate),
		SpecificAttachmentPoint:   p.SpecificAttachmentPoint,
		SpecificMaxLiability:      p.SpecificMaxLiability,
		AggregateAttachmentPoint:  p.AggregateAttachmentPoint,
		AggregateAttachmentFactor: p.AggregateAttachmentFactor,
		AggregateMaxLiability:     p.AggregateMaxLiability,
		TotalAnnualPremium:        p.TotalAnnualPremium,
		PEPMRate:                  p.PEPMRate,
		Terms:                     terms,
		BoundBy:                   p.BoundBy,
		BoundAt:                   formatTime(p.BoundAt),
		CreatedAt:                 formatTime(p.CreatedAt),
		UpdatedAt:                 formatTime(p.UpdatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	terms := it.Terms
	if terms == nil {
		terms = map[string]any{}
	}
	return entities.Policy{
		ID:                        it.ID,
		TenantID:                  it.TenantID,
		PolicyNumber:              it.PolicyNumber,
		GroupID:                   it.GroupID,
		QuoteID:                   it.QuoteID,
		CoverageType:              entities.CoverageType(it.CoverageType),
		Status:                    entities.PolicyStatus(it.Status),
		EffectiveDate:             parseTime(it.EffectiveDate),
		TerminationDate:           parseTime(it.TerminationDate),
		SpecificAttachmentPoint:   it.SpecificAttachmentPoint,
		SpecificMaxLiability:      it.SpecificMaxLiability,
		AggregateAttachmentPoint:  it.AggregateAttachmentPoint,
		AggregateAttachmentFactor: it.AggregateAttachmentFactor,
		AggregateMaxLiability:     it.AggregateMaxLiability,
		TotalAnnualPremium:        it.TotalAnnualPremium,
		PEPMRate:                  it.PEPMRate,
		Terms:                     terms,
		BoundBy:                   it.BoundBy,
		BoundAt:                   parseTime(it.BoundAt),
		CreatedAt:                 parseTime(it.CreatedAt),
		UpdatedAt:                 parseTime(it.UpdatedAt),
	}
}
