package database

import (
	"context"
	"fmt"

	appconfig "repairflow/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client for the orders and reports tables.
//
// When DynamoDBEndpoint is set (e.g. http://dynamodb:8000) the client targets it
// instead of the regional endpoint.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	var optFns []func(*dynamodb.Options)
	if cfg.DynamoDBEndpoint != "" {
		zap.L().Info("[dynamodb][client] using custom endpoint", zap.String("endpoint", cfg.DynamoDBEndpoint))
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, optFns...), nil
}

// NewAWSConfig loads the SDK configuration with static credentials.
// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}
