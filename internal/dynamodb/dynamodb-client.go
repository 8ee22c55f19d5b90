// Package dynamodb reads and writes items in batches, converting between
// native Go values and attribute values.
package dynamodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	// MaxGetBatch and MaxPutBatch are the per-request item limits of the service.
	MaxGetBatch = 100
	MaxPutBatch = 25
	// MaxAttempts bounds how often unprocessed items are resubmitted.
	MaxAttempts = 5
)

type Item = map[string]any

type AwsDynamoDBAdapter struct {
	Client DynamoDBAPI
	Cfg    aws.Config
	Log    *zap.SugaredLogger
}

func NewDynamoDBClient(cfg aws.Config, log *zap.SugaredLogger) *AwsDynamoDBAdapter {
	return &AwsDynamoDBAdapter{
		Client: dynamodb.NewFromConfig(cfg),
		Cfg:    cfg,
		Log:    logger.OrNop(log),
	}
}

// UnprocessedError reports items the service still refused after MaxAttempts.
type UnprocessedError struct {
	Table string
	Count int
}

func (e *UnprocessedError) Error() string {
	return fmt.Sprintf("%d items in table %s were not processed", e.Count, e.Table)
}

// BatchGet fetches the items with the given keys. attributes limits the
// returned columns when non-empty. Items come back in service order.
func (c *AwsDynamoDBAdapter) BatchGet(ctx context.Context, table string, keys []Item, attributes []string) ([]Item, error) {
	var items []Item
	for start := 0; start < len(keys); start += MaxGetBatch {
		chunk := keys[start:min(start+MaxGetBatch, len(keys))]

		request := types.KeysAndAttributes{}
		for _, key := range chunk {
			av, err := attributevalue.MarshalMap(key)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal key for table %s: %w", table, err)
			}
			request.Keys = append(request.Keys, av)
		}
		if len(attributes) > 0 {
			request.ProjectionExpression, request.ExpressionAttributeNames = projection(attributes)
		}

		pending := map[string]types.KeysAndAttributes{table: request}
		for attempt := 1; len(pending[table].Keys) > 0; attempt++ {
			if attempt > MaxAttempts {
				return items, &UnprocessedError{Table: table, Count: len(pending[table].Keys)}
			}
			out, err := c.Client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return items, awsclient.HandleAWSError(err, "batch get from "+table)
			}

			var records []Item
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[table], &records); err != nil {
				return items, fmt.Errorf("failed to unmarshal items from table %s: %w", table, err)
			}
			items = append(items, records...)

			pending = out.UnprocessedKeys
			if n := len(pending[table].Keys); n > 0 {
				logger.OrNop(c.Log).Debugf("Retrying %d unprocessed keys in %s", n, table)
			}
		}
	}
	return items, nil
}

// BatchPut writes items, replacing any with the same key.
func (c *AwsDynamoDBAdapter) BatchPut(ctx context.Context, table string, items []Item) error {
	for start := 0; start < len(items); start += MaxPutBatch {
		chunk := items[start:min(start+MaxPutBatch, len(items))]

		requests := make([]types.WriteRequest, 0, len(chunk))
		for _, item := range chunk {
			av, err := attributevalue.MarshalMap(item)
			if err != nil {
				return fmt.Errorf("failed to marshal item for table %s: %w", table, err)
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{table: requests}
		for attempt := 1; len(pending[table]) > 0; attempt++ {
			if attempt > MaxAttempts {
				return &UnprocessedError{Table: table, Count: len(pending[table])}
			}
			out, err := c.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return awsclient.HandleAWSError(err, "batch put to "+table)
			}
			pending = out.UnprocessedItems
			if n := len(pending[table]); n > 0 {
				logger.OrNop(c.Log).Debugf("Retrying %d unprocessed writes in %s", n, table)
			}
		}
	}
	return nil
}

// projection names every attribute through a placeholder so reserved words
// like "name" or "date" are accepted.
func projection(attributes []string) (*string, map[string]string) {
	names := make(map[string]string, len(attributes))
	placeholders := make([]string, 0, len(attributes))
	for i, attr := range attributes {
		ph := fmt.Sprintf("#a%d", i)
		names[ph] = attr
		placeholders = append(placeholders, ph)
	}
	return aws.String(strings.Join(placeholders, ", ")), names
}
