package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-key, in-process stand-in for DynamoDB. It understands
// the attribute_exists/attribute_not_exists conditions, an equality filter on
// status and paginated scans.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	scans    int
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[aws.ToString(name)]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[aws.ToString(name)] = t
	}
	return t
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFails(cond *string, exists bool) bool {
	c := aws.ToString(cond)
	switch {
	case strings.Contains(c, "attribute_not_exists"):
		return exists
	case strings.Contains(c, "attribute_exists"):
		return !exists
	}
	return false
}

func (f *fakeDynamo) PutItem(_ context.Context, p *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(p.TableName)
	id := keyOf(p.Item)
	_, exists := t[id]
	if conditionFails(p.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	t[id] = p.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, p *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(p.TableName)[keyOf(p.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, p *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(p.TableName)
	id := keyOf(p.Key)
	_, exists := t[id]
	if conditionFails(p.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	delete(t, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, p *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(p.TableName)

	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if p.ExclusiveStartKey != nil {
		after := keyOf(p.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	end := start + f.pageSize
	if end > len(ids) {
		end = len(ids)
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		item := t[id]
		if p.FilterExpression != nil {
			want, _ := p.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
			got, _ := item["status"].(*types.AttributeValueMemberS)
			if want == nil || got == nil || want.Value != got.Value {
				continue
			}
		}
		out.Items = append(out.Items, item)
	}
	if end < len(ids) {
		out.LastEvaluatedKey = idKey(ids[end-1])
	}
	return out, nil
}

var errThrottled = errors.New("ProvisionedThroughputExceededException")
