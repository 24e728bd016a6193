package repository

import (
	"context"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroup() entities.Group {
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	effective := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return entities.Group{
		ID:               "g-1",
		TenantID:         "tenant-a",
		Name:             "Acme Manufacturing",
		GroupType:        entities.GroupTypeEmployer,
		ContractType:     entities.ContractFullRisk,
		State:            "CA",
		SICCode:          "35",
		MemberCount:      120,
		EffectiveDate:    &effective,
		HistoricalClaims: &entities.HistoricalClaimsData{TotalClaims: 540000, MemberMonths: 1440},
		PriorCoverage:    map[string]any{"carrier": "Prior Re"},
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func TestGroupRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewGroupDynamoRepository(ddb, "groups")
	ctx := context.Background()

	g := sampleGroup()
	_, err := repo.Create(ctx, g)
	require.NoError(t, err)

	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "groups", aws.ToString(ddb.puts[0].TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.puts[0].ConditionExpression))

	got, err := repo.GetByID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, g, got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestGroupRepository_CreateConflict(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = conditionFailed(nil)

	_, err := NewGroupDynamoRepository(ddb, "groups").Create(context.Background(), sampleGroup())
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
}

func TestGroupRepository_UpdateMissing(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = conditionFailed(nil)

	got, err := NewGroupDynamoRepository(ddb, "groups").Update(context.Background(), sampleGroup())
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.puts[0].ConditionExpression))
}

func TestGroupRepository_Delete(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewGroupDynamoRepository(ddb, "groups")

	deleted, err := repo.Delete(context.Background(), "g-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	ddb.deleteOut = &dynamodb.DeleteItemOutput{Attributes: mustMarshal(toGroupItem(sampleGroup()))}
	deleted, err = repo.Delete(context.Background(), "g-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, types.ReturnValueAllOld, ddb.deletes[1].ReturnValues)
}

func TestGroupRepository_ListByTenantPaginates(t *testing.T) {
	ddb := newFakeDynamo()
	first, second := sampleGroup(), sampleGroup()
	second.ID = "g-2"
	ddb.pages = []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{mustMarshal(toGroupItem(first))},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "g-1"}},
		},
		{Items: []map[string]types.AttributeValue{mustMarshal(toGroupItem(second))}},
	}

	groups, err := NewGroupDynamoRepository(ddb, "groups").ListByTenant(context.Background(), "tenant-a")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "g-2", groups[1].ID)

	require.Len(t, ddb.queries, 2)
	q := ddb.queries[0]
	assert.Equal(t, tenantIndex, aws.ToString(q.IndexName))
	assert.Equal(t, "tenant_id", q.ExpressionAttributeNames["#pk"])
	assert.False(t, aws.ToBool(q.ScanIndexForward))
	assert.Nil(t, q.ExclusiveStartKey)
	assert.NotNil(t, ddb.queries[1].ExclusiveStartKey)
}
