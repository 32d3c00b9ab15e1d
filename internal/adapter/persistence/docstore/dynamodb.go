package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultDocumentsTableName = "documents"

var ErrDocumentNotFound = errors.New("document not found")

// DynamoStore implements Store on a single DynamoDB table.
//
// Table requirements:
//   - PK: collection (string), the tenant-scoped collection path
//   - SK: id (string), the document id
//
// Document fields live in a nested "fields" map attribute, so partial updates
// touch individual map entries and never rewrite the whole document.
// DynamoDB cannot order a Query by arbitrary attributes, so List sorts
// client-side; collections stay small because the application always loads
// full snapshots.
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client) *DynamoStore {
	return &DynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (s *DynamoStore) List(ctx context.Context, path string, orderBy ...Order) ([]Document, error) {
	var docs []Document

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#collection = :collection"),
		ExpressionAttributeNames: map[string]string{
			"#collection": "collection",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":collection": &types.AttributeValueMemberS{Value: path},
		},
	}

	paginator := dynamodb.NewQueryPaginator(s.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			doc, err := fromItem(item)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}

	SortDocuments(docs, orderBy...)
	return docs, nil
}

func (s *DynamoStore) Create(ctx context.Context, path string, fields map[string]interface{}) (string, error) {
	id := uuid.NewString()

	av, err := attributevalue.MarshalMap(fields)
	if err != nil {
		return "", err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: path},
			"id":         &types.AttributeValueMemberS{Value: id},
			"fields":     &types.AttributeValueMemberM{Value: av},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *DynamoStore) Update(ctx context.Context, path, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	expr := "SET"
	names := map[string]string{
		"#id":     "id",
		"#fields": "fields",
	}
	values := make(map[string]types.AttributeValue, len(fields))

	i := 0
	for key, val := range fields {
		av, err := attributevalue.Marshal(val)
		if err != nil {
			return err
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		if i > 0 {
			expr += ","
		}
		expr += fmt.Sprintf(" #fields.%s = %s", nameKey, valueKey)
		names[nameKey] = key
		values[valueKey] = av
		i++
	}

	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: path},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, path, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: path},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func fromItem(item map[string]types.AttributeValue) (Document, error) {
	doc := Document{Fields: map[string]interface{}{}}

	idAttr, ok := item["id"].(*types.AttributeValueMemberS)
	if !ok {
		return Document{}, errors.New("document item missing string id")
	}
	doc.ID = idAttr.Value

	if fieldsAttr, ok := item["fields"].(*types.AttributeValueMemberM); ok {
		if err := attributevalue.UnmarshalMap(fieldsAttr.Value, &doc.Fields); err != nil {
			return Document{}, err
		}
	}
	return doc, nil
}

// SortDocuments orders docs by the given criteria, applied in sequence.
// Timestamps are stored as RFC3339Nano strings, so lexicographic comparison
// preserves chronology; numbers unmarshal as float64.
func SortDocuments(docs []Document, orderBy ...Order) {
	if len(orderBy) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, ord := range orderBy {
			c := compareFieldValues(docs[i].Fields[ord.Field], docs[j].Fields[ord.Field])
			if c == 0 {
				continue
			}
			if ord.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareFieldValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case float64:
		if bv, ok := toFloat(b); ok {
			fv, _ := toFloat(av)
			switch {
			case fv < bv:
				return -1
			case fv > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case !av && bv:
				return -1
			case av && !bv:
				return 1
			}
			return 0
		}
	}
	return 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
