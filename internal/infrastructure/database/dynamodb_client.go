package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

type Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint is optional, e.g. http://dynamodb:8000 for DynamoDB Local.
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client from the given settings.
func ConnectDynamoDB(ctx context.Context, s Settings) (*dynamodb.Client, error) {
	cfg, err := newAWSConfig(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func newAWSConfig(ctx context.Context, s Settings) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(creds),
	)
}

type TableNames struct {
	Groups   string
	Members  string
	Quotes   string
	Reviews  string
	Policies string
}

// tableAPI is the subset of *dynamodb.Client needed to bootstrap tables.
type tableAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates every table and its indexes. Tables that already
// exist are left untouched.
func EnsureTables(ctx context.Context, ddb tableAPI, names TableNames) error {
	for _, in := range TableDefinitions(names) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info().Str("component", "database").Str("table", aws.ToString(in.TableName)).Msg("table created")
		case errors.As(err, &inUse):
			log.Debug().Str("component", "database").Str("table", aws.ToString(in.TableName)).Msg("table already exists")
		default:
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
	}
	return nil
}

// TableDefinitions describes the five tables, all on on-demand billing.
func TableDefinitions(n TableNames) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		table(n.Groups, "id", tenantIndex()),
		table(n.Members, "id", createdAtIndex("group_id-index", "group_id")),
		table(n.Quotes, "id", tenantIndex()),
		table(n.Reviews, "quote_id", tenantIndex()),
		table(n.Policies, "quote_id", hashIndex("id-index", "id"), tenantIndex()),
	}
}

func table(name, pk string, indexes ...types.GlobalSecondaryIndex) *dynamodb.CreateTableInput {
	attrs := map[string]bool{pk: true}
	defs := []types.AttributeDefinition{{AttributeName: aws.String(pk), AttributeType: types.ScalarAttributeTypeS}}
	for _, idx := range indexes {
		for _, k := range idx.KeySchema {
			if !attrs[aws.ToString(k.AttributeName)] {
				attrs[aws.ToString(k.AttributeName)] = true
				defs = append(defs, types.AttributeDefinition{AttributeName: k.AttributeName, AttributeType: types.ScalarAttributeTypeS})
			}
		}
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   defs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(pk), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: indexes,
	}
}

func tenantIndex() types.GlobalSecondaryIndex {
	return createdAtIndex("tenant_id-index", "tenant_id")
}

func createdAtIndex(name, hash string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func hashIndex(name, hash string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
