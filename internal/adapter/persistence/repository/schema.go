package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAPI is the subset of *dynamodb.Client EnsureTables calls.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// TableSchemas describes every table the collections use. All tables are
// keyed by a string "id"; the secondary indexes are the ones the codecs query:
//
//	complaints: order_id-index (order_id)
//	incidents:  order_id-index (order_id), complaint_id-index (complaint_id, sparse)
func TableSchemas(t Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableSchema(t.Orders),
		tableSchema(t.Links),
		tableSchema(t.Complaints, gsi{orderIDIndex, "order_id"}),
		tableSchema(t.Incidents, gsi{orderIDIndex, "order_id"}, gsi{complaintIDIndex, "complaint_id"}),
	}
}

type gsi struct {
	name string
	attr string
}

func tableSchema(name string, indexes ...gsi) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
	}
	for _, idx := range indexes {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(idx.attr), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(idx.attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return in
}

// EnsureTables creates the tables that do not exist yet. Existing tables are
// not inspected or altered.
func EnsureTables(ctx context.Context, api TableAPI, t Tables) error {
	for _, in := range TableSchemas(t) {
		name := aws.ToString(in.TableName)
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}
		if _, err := api.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		zap.L().Info("[dynamodb][schema] table created", zap.String("table", name), zap.Int("indexes", len(in.GlobalSecondaryIndexes)))
	}
	return nil
}
