package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mygive/platform-core/pkg/offchain"
	"github.com/mygive/platform-core/pkg/offchain/dynamodb/mocks"
)

func TestGet(t *testing.T) {
	doc := document{
		Collection: offchain.CollectionProfiles,
		Key:        "0xabc",
		Value:      []byte(`{"name":"a"}`),
		UpdatedAt:  time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		docAV, _ := attributevalue.MarshalMap(doc)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: docAV}, nil)

		value, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xabc")

		assert.NoError(t, err)
		assert.Equal(t, doc.Value, value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xabc")

		assert.ErrorIs(t, err, offchain.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("get item failed"))

		_, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xabc")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get document from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestPut(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.TableName == "offchain"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		err := backend.Put(context.Background(), offchain.CollectionProfiles, "0xabc", []byte(`{"name":"a"}`))

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("put item failed"))

		err := backend.Put(context.Background(), offchain.CollectionProfiles, "0xabc", []byte(`{}`))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to put document to DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestList(t *testing.T) {
	t.Run("Partial Hit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		docAV, _ := attributevalue.MarshalMap(document{
			Collection: offchain.CollectionProfiles,
			Key:        "0xaaa",
			Value:      []byte(`a`),
		})
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(&dynamodb.BatchGetItemOutput{
			Responses: map[string][]map[string]types.AttributeValue{
				"offchain": {docAV},
			},
		}, nil)

		values, err := backend.List(context.Background(), offchain.CollectionProfiles, []string{"0xaaa", "0xbbb"})

		assert.NoError(t, err)
		assert.Len(t, values, 1)
		assert.Equal(t, []byte(`a`), values["0xaaa"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty Keys", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		backend := New(mockClient, "offchain")

		values, err := backend.List(context.Background(), offchain.CollectionProfiles, nil)

		assert.NoError(t, err)
		assert.Empty(t, values)
		mockClient.AssertNotCalled(t, "BatchGetItem")
	})
}
