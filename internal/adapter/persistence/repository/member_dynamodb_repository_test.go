package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMembers(n int) []entities.Member {
	claims := 12500.0
	out := make([]entities.Member, n)
	for i := range out {
		out[i] = entities.Member{
			ID:                     fmt.Sprintf("m-%d", i),
			TenantID:               "tenant-a",
			GroupID:                "g-1",
			ExternalID:             fmt.Sprintf("EXT-%d", i),
			DateOfBirth:            time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC),
			Gender:                 "F",
			HistoricalClaimsAmount: &claims,
			ChronicConditions:      []string{"diabetes"},
			DiagnosisCodes:         []string{},
			CreatedAt:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func TestMemberRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewMemberDynamoRepository(ddb, "members")
	m := sampleMembers(1)[0]

	_, err := repo.Create(context.Background(), m)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMemberRepository_BatchCreateChunks(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewMemberDynamoRepository(ddb, "members")

	require.NoError(t, repo.BatchCreate(context.Background(), sampleMembers(60)))

	require.Len(t, ddb.batches, 3)
	sizes := []int{
		len(ddb.batches[0].RequestItems["members"]),
		len(ddb.batches[1].RequestItems["members"]),
		len(ddb.batches[2].RequestItems["members"]),
	}
	assert.Equal(t, []int{25, 25, 10}, sizes)
}

func TestMemberRepository_BatchCreateRetriesUnprocessed(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewMemberDynamoRepository(ddb, "members")
	repo.backoff = 0

	leftover := map[string][]types.WriteRequest{
		"members": {{PutRequest: &types.PutRequest{Item: mustMarshal(toMemberItem(sampleMembers(1)[0]))}}},
	}
	ddb.batchOuts = []*dynamodb.BatchWriteItemOutput{{UnprocessedItems: leftover}, {}}

	require.NoError(t, repo.BatchCreate(context.Background(), sampleMembers(3)))
	require.Len(t, ddb.batches, 2)
	assert.Len(t, ddb.batches[1].RequestItems["members"], 1)
}

func TestMemberRepository_BatchCreateGivesUp(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewMemberDynamoRepository(ddb, "members")
	repo.backoff = 0

	leftover := map[string][]types.WriteRequest{
		"members": {{PutRequest: &types.PutRequest{Item: mustMarshal(toMemberItem(sampleMembers(1)[0]))}}},
	}
	for i := 0; i <= batchWriteRetries; i++ {
		ddb.batchOuts = append(ddb.batchOuts, &dynamodb.BatchWriteItemOutput{UnprocessedItems: leftover})
	}

	err := repo.BatchCreate(context.Background(), sampleMembers(2))
	require.Error(t, err)
	assert.Len(t, ddb.batches, batchWriteRetries+1)
}

func TestMemberRepository_ListByGroupID(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pages = []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		mustMarshal(toMemberItem(sampleMembers(1)[0])),
	}}}

	members, err := NewMemberDynamoRepository(ddb, "members").ListByGroupID(context.Background(), "g-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 12500.0, members[0].ClaimsAmount())
	assert.Equal(t, groupIndex, *ddb.queries[0].IndexName)
}
