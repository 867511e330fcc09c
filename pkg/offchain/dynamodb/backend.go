// Package dynamodb implements the remote off-chain backend on a single
// DynamoDB table keyed by (collection, key).
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mygive/platform-core/pkg/offchain"
)

// DynamoDBAPI defines the DynamoDB operations the backend uses, so the
// client can be mocked in tests.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
}

// document is the table schema. Collection is the partition key and Key
// the sort key; the payload travels as a raw JSON blob.
type document struct {
	Collection string    `dynamodbav:"collection"`
	Key        string    `dynamodbav:"key"`
	Value      []byte    `dynamodbav:"value"`
	UpdatedAt  time.Time `dynamodbav:"updated_at"`
}

// Backend implements offchain.Backend against one DynamoDB table.
type Backend struct {
	Client    DynamoDBAPI
	TableName string
}

// New creates a Backend for the given table.
func New(client DynamoDBAPI, tableName string) *Backend {
	return &Backend{Client: client, TableName: tableName}
}

// Make sure we conform to the interface
var _ offchain.Backend = (*Backend)(nil)

func documentKey(collection, key string) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(map[string]string{
		"collection": collection,
		"key":        key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document key: %w", err)
	}
	return av, nil
}

// Get retrieves the document stored under (collection, key).
func (b *Backend) Get(ctx context.Context, collection, key string) ([]byte, error) {
	av, err := documentKey(collection, key)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.GetItemInput{
		TableName: &b.TableName,
		Key:       av,
	}

	result, err := b.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get document from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, offchain.ErrNotFound
	}

	var doc document
	if err := attributevalue.UnmarshalMap(result.Item, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return doc.Value, nil
}

// Put stores the document under (collection, key), overwriting any
// previous value.
func (b *Backend) Put(ctx context.Context, collection, key string, value []byte) error {
	doc := document{
		Collection: collection,
		Key:        key,
		Value:      value,
		UpdatedAt:  time.Now().UTC(),
	}

	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: &b.TableName,
		Item:      item,
	}

	if _, err := b.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put document to DynamoDB: %w", err)
	}

	return nil
}

// List retrieves the documents for the given keys in one batch read.
// Missing keys are absent from the result.
func (b *Backend) List(ctx context.Context, collection string, keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	// BatchGetItem caps each request at 100 keys.
	const batchSize = 100
	for start := 0; start < len(keys); start += batchSize {
		end := start + batchSize
		if end > len(keys) {
			end = len(keys)
		}

		requestKeys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, key := range keys[start:end] {
			av, err := documentKey(collection, key)
			if err != nil {
				return nil, err
			}
			requestKeys = append(requestKeys, av)
		}

		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				b.TableName: {Keys: requestKeys},
			},
		}

		output, err := b.Client.BatchGetItem(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to batch get documents from DynamoDB: %w", err)
		}

		for _, item := range output.Responses[b.TableName] {
			var doc document
			if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal document: %w", err)
			}
			result[doc.Key] = doc.Value
		}
	}

	return result, nil
}
