package repository

import (
	"context"
	"fmt"
	"time"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	groupIndex = "group_id-index"

	// DynamoDB rejects BatchWriteItem calls with more than 25 requests.
	batchWriteLimit   = 25
	batchWriteRetries = 5
)

type memberItem struct {
	ID                     string   `dynamodbav:"id"`
	TenantID               string   `dynamodbav:"tenant_id"`
	GroupID                string   `dynamodbav:"group_id"`
	ExternalID             string   `dynamodbav:"member_id_external"`
	DateOfBirth            string   `dynamodbav:"date_of_birth"`
	Gender                 string   `dynamodbav:"gender"`
	ZipCode                string   `dynamodbav:"zip_code,omitempty"`
	RelationshipCode       string   `dynamodbav:"relationship_code,omitempty"`
	RiskScore              *float64 `dynamodbav:"risk_score,omitempty"`
	ChronicConditions      []string `dynamodbav:"chronic_conditions"`
	HistoricalClaimsAmount *float64 `dynamodbav:"historical_claims_amount,omitempty"`
	LargeClaimant          bool     `dynamodbav:"large_claimant_flag"`
	DiagnosisCodes         []string `dynamodbav:"diagnosis_codes"`
	EnrollmentDate         string   `dynamodbav:"enrollment_date,omitempty"`
	TerminationDate        string   `dynamodbav:"termination_date,omitempty"`
	PlanType               string   `dynamodbav:"plan_type,omitempty"`
	CreatedAt              string   `dynamodbav:"created_at"`
	UpdatedAt              string   `dynamodbav:"updated_at"`
}

// MemberDynamoRepository persists Member entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI group_id-index: group_id (HASH), created_at (RANGE)
type MemberDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	backoff   time.Duration
}

var _ interfaces.IMemberRepository = (*MemberDynamoRepository)(nil)

func NewMemberDynamoRepository(ddb dynamoAPI, tableName string) *MemberDynamoRepository {
	return &MemberDynamoRepository{ddb: ddb, tableName: tableName, backoff: 50 * time.Millisecond}
}

func (r *MemberDynamoRepository) Create(ctx context.Context, m entities.Member) (entities.Member, error) {
	if err := r.put(ctx, m, "attribute_not_exists(#id)"); err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Member{}, interfaces.ErrAlreadyExists
		}
		return entities.Member{}, err
	}
	return m, nil
}

// BatchCreate writes members 25 at a time, resubmitting unprocessed items
// with exponential backoff.
func (r *MemberDynamoRepository) BatchCreate(ctx context.Context, members []entities.Member) error {
	for start := 0; start < len(members); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(members))

		requests := make([]types.WriteRequest, 0, end-start)
		for _, m := range members[start:end] {
			av, err := attributevalue.MarshalMap(toMemberItem(m))
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		if err := r.writeBatch(ctx, requests); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemberDynamoRepository) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: requests}
	wait := r.backoff

	for attempt := 0; ; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		if attempt == batchWriteRetries {
			return fmt.Errorf("batch write: %d members left unprocessed", len(out.UnprocessedItems[r.tableName]))
		}

		pending = out.UnprocessedItems
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func (r *MemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	var it memberItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Member{}, err
	}
	return fromMemberItem(it), nil
}

func (r *MemberDynamoRepository) ListByGroupID(ctx context.Context, groupID string) ([]entities.Member, error) {
	var items []memberItem
	if err := queryByPartition(ctx, r.ddb, r.tableName, groupIndex, "group_id", groupID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Member, 0, len(items))
	for _, it := range items {
		out = append(out, fromMemberItem(it))
	}
	return out, nil
}

// Update replaces the stored member. A missing member yields a zero value.
func (r *MemberDynamoRepository) Update(ctx context.Context, m entities.Member) (entities.Member, error) {
	if err := r.put(ctx, m, "attribute_exists(#id)"); err != nil {
		if _, ok := isConditionFailed(err); ok {
			return entities.Member{}, nil
		}
		return entities.Member{}, err
	}
	return m, nil
}

func (r *MemberDynamoRepository) put(ctx context.Context, m entities.Member, condition string) error {
	av, err := attributevalue.MarshalMap(toMemberItem(m))
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

func toMemberItem(m entities.Member) memberItem {
	return memberItem{
		ID:                     m.ID,
		TenantID:               m.TenantID,
		GroupID:                m.GroupID,
		ExternalID:             m.ExternalID,
		DateOfBirth:            formatTime(m.DateOfBirth),
		Gender:                 m.Gender,
		ZipCode:                m.ZipCode,
		RelationshipCode:       m.RelationshipCode,
		RiskScore:              m.RiskScore,
		ChronicConditions:      nonNil(m.ChronicConditions),
		HistoricalClaimsAmount: m.HistoricalClaimsAmount,
		LargeClaimant:          m.LargeClaimant,
		DiagnosisCodes:         nonNil(m.DiagnosisCodes),
		EnrollmentDate:         formatTimePtr(m.EnrollmentDate),
		TerminationDate:        formatTimePtr(m.TerminationDate),
		PlanType:               m.PlanType,
		CreatedAt:              formatTime(m.CreatedAt),
		UpdatedAt:              formatTime(m.UpdatedAt),
	}
}

func fromMemberItem(it memberItem) entities.Member {
	return entities.Member{
		ID:                     it.ID,
		TenantID:               it.TenantID,
		GroupID:                it.GroupID,
		ExternalID:             it.ExternalID,
		DateOfBirth:            parseTime(it.DateOfBirth),
		Gender:                 it.Gender,
		ZipCode:                it.ZipCode,
		RelationshipCode:       it.RelationshipCode,
		RiskScore:              it.RiskScore,
		ChronicConditions:      nonNil(it.ChronicConditions),
		HistoricalClaimsAmount: it.HistoricalClaimsAmount,
		LargeClaimant:          it.LargeClaimant,
		DiagnosisCodes:         nonNil(it.DiagnosisCodes),
		EnrollmentDate:         parseTimePtr(it.EnrollmentDate),
		TerminationDate:        parseTimePtr(it.TerminationDate),
		PlanType:               it.PlanType,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}
