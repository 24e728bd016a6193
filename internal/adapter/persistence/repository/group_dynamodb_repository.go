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

type historicalClaimsItem struct {
	TotalClaims  float64 `dynamodbav:"total_claims"`
	MemberMonths float64 `dynamodbav:"member_months"`
}

type groupItem struct {
	ID               string                `dynamodbav:"id"`
	TenantID         string                `dynamodbav:"tenant_id"`
	Name             string                `dynamodbav:"name"`
	GroupType        string                `dynamodbav:"group_type"`
	ContractType     string                `dynamodbav:"contract_type"`
	TaxID            string                `dynamodbav:"tax_id,omitempty"`
	State            string                `dynamodbav:"state,omitempty"`
	Region           string                `dynamodbav:"region,omitempty"`
	SICCode          string                `dynamodbav:"sic_code,omitempty"`
	MemberCount      int                   `dynamodbav:"member_count"`
	EffectiveDate    string                `dynamodbav:"effective_date,omitempty"`
	RenewalDate      string                `dynamodbav:"renewal_date,omitempty"`
	HistoricalClaims *historicalClaimsItem `dynamodbav:"historical_claims_data,omitempty"`
	PriorCoverage    map[string]any        `dynamodbav:"prior_coverage,omitempty"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// GroupDynamoRepository persists Group entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (HASH), created_at (RANGE)
type GroupDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IGroupRepository = (*GroupDynamoRepository)(nil)

func NewGroupDynamoRepository(ddb dynamoAPI, tableName string) *GroupDynamoRepository {
	return &GroupDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GroupDynamoRepository) Create(ctx context.Context, g entities.Group) (entities.Group, error) {
	if err := r.put(ctx, g, "attribute_not_exists(#id)"); err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Group{}, interfaces.ErrAlreadyExists
		}
		return entities.Group{}, err
	}
	return g, nil
}

func (r *GroupDynamoRepository) GetByID(ctx context.Context, id string) (entities.Group, error) {
	var it groupItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Group{}, err
	}
	return fromGroupItem(it), nil
}

func (r *GroupDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Group, error) {
	var items []groupItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, tenantIndex, "tenant_id", tenantID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Group, 0, len(items))
	for _, it := range items {
		out = append(out, fromGroupItem(it))
	}
	return out, nil
}

// Update replaces the stored group. A missing group yields a zero value.
func (r *GroupDynamoRepository) Update(ctx context.Context, g entities.Group) (entities.Group, error) {
	if err := r.put(ctx, g, "attribute_exists(#id)"); err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Group{}, nil
		}
		return entities.Group{}, err
	}
	return g, nil
}

func (r *GroupDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stringKey("id", id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *GroupDynamoRepository) put(ctx context.Context, g entities.Group, condition string) error {
	av, err := attributevalue.MarshalMap(toGroupItem(g))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toGroupItem(g entities.Group) groupItem {
	it := groupItem{
		ID:            g.ID,
		TenantID:      g.TenantID,
		Name:          g.Name,
		GroupType:     string(g.GroupType),
		ContractType:  string(g.ContractType),
		TaxID:         g.TaxID,
		State:         g.State,
		Region:        g.Region,
		SICCode:       g.SICCode,
		MemberCount:   g.MemberCount,
		EffectiveDate: formatTimePtr(g.EffectiveDate),
		RenewalDate:   formatTimePtr(g.RenewalDate),
		PriorCoverage: g.PriorCoverage,
		CreatedAt:     formatTime(g.CreatedAt),
		UpdatedAt:     formatTime(g.UpdatedAt),
	}
	if g.HistoricalClaims != nil {
		it.HistoricalClaims = &historicalClaimsItem{
			TotalClaims:  g.HistoricalClaims.TotalClaims,
			MemberMonths: g.HistoricalClaims.MemberMonths,
		}
	}
	return it
}

func fromGroupItem(it groupItem) entities.Group {
	g := entities.Group{
		ID:            it.ID,
		TenantID:      it.TenantID,
		Name:          it.Name,
		GroupType:     entities.GroupType(it.GroupType),
		ContractType:  entities.ContractType(it.ContractType),
		TaxID:         it.TaxID,
		State:         it.State,
		Region:        it.Region,
		SICCode:       it.SICCode,
		MemberCount:   it.MemberCount,
		EffectiveDate: parseTimePtr(it.EffectiveDate),
		RenewalDate:   parseTimePtr(it.RenewalDate),
		PriorCoverage: it.PriorCoverage,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.HistoricalClaims != nil {
		g.HistoricalClaims = &entities.HistoricalClaimsData{
			TotalClaims:  it.HistoricalClaims.TotalClaims,
			MemberMonths: it.HistoricalClaims.MemberMonths,
		}
	}
	return g
}
