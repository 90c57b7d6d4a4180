package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type tableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ tableAPI = (*dynamodb.Client)(nil)

// EnsureTables creates the orders table (with its customer index) and the
// reports table when they do not exist yet. Existing tables are left untouched.
// A positive maxWait blocks until newly created tables are ACTIVE.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, ordersTable, reportsTable string, maxWait time.Duration) ([]string, error) {
	return ensureTables(ctx, ddb, ordersTable, reportsTable, maxWait)
}

func ensureTables(ctx context.Context, api tableAPI, ordersTable, reportsTable string, maxWait time.Duration) ([]string, error) {
	var created []string
	for _, def := range []*dynamodb.CreateTableInput{
		tableWithIndex(ordersTable, customerIDIndex, "customer_id"),
		keyedByID(reportsTable),
	} {
		name := aws.ToString(def.TableName)
		ok, err := tableExists(ctx, api, name)
		if err != nil {
			return created, err
		}
		if ok {
			zap.L().Info("[dynamodb][tables] table already exists", zap.String("table", name))
			continue
		}

		if _, err := api.CreateTable(ctx, def); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		zap.L().Info("[dynamodb][tables] table created", zap.String("table", name))
		created = append(created, name)
	}

	if maxWait > 0 {
		waiter := dynamodb.NewTableExistsWaiter(api)
		for _, name := range created {
			if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, maxWait); err != nil {
				return created, fmt.Errorf("wait for table %s: %w", name, err)
			}
		}
	}
	return created, nil
}

func tableExists(ctx context.Context, api tableAPI, name string) (bool, error) {
	_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return true, nil
	}
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, fmt.Errorf("describe table %s: %w", name, err)
}

// keyedByID describes an on-demand table keyed by a string id.
func keyedByID(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
}

// tableWithIndex adds one string GSI to a keyedByID table.
func tableWithIndex(name, indexName, indexKey string) *dynamodb.CreateTableInput {
	in := keyedByID(name)
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String(indexKey), AttributeType: types.ScalarAttributeTypeS,
	})
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
		{
			IndexName: aws.String(indexName),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(indexKey), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		},
	}
	return in
}
