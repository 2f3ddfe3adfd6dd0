package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	pathAttr = "path"
	docAttr  = "doc"
)

// DynamoDocumentStore is a DynamoDB-backed DocumentStore. Each logical path
// is one item in a single table; the whole document lives under one
// attribute, so every Set replaces the document atomically from the client's
// perspective.
type DynamoDocumentStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoDocumentStore(client *dynamodb.Client, table string) *DynamoDocumentStore {
	return &DynamoDocumentStore{client: client, table: table}
}

func (d *DynamoDocumentStore) Get(ctx context.Context, path string, out interface{}) error {
	key, err := attributevalue.MarshalMap(map[string]string{pathAttr: path})
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}
	res, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &d.table,
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("dynamodb GetItem failed for %s: %w", path, err)
	}
	if len(res.Item) == 0 {
		return nil
	}
	doc, ok := res.Item[docAttr]
	if !ok {
		return nil
	}
	if err := attributevalue.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("unmarshal document %s: %w", path, err)
	}
	return nil
}

func (d *DynamoDocumentStore) Set(ctx context.Context, path string, value interface{}) error {
	doc, err := attributevalue.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", path, err)
	}
	item := map[string]types.AttributeValue{
		pathAttr: &types.AttributeValueMemberS{Value: path},
		docAttr:  doc,
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &d.table,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed for %s: %w", path, err)
	}
	return nil
}
