package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo understands the handful of expressions the repositories send.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string][]map[string]types.AttributeValue
	pageSize int
	err      error

	// failPutAt makes the n-th PutItem call (1-based) fail with putErr.
	failPutAt int
	putErr    error
	puts      int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}, pageSize: 2}
}

func itemID(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) find(table, id string) (int, map[string]types.AttributeValue) {
	for i, it := range f.tables[table] {
		if itemID(it) == id {
			return i, it
		}
	}
	return -1, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	_, it := f.find(aws.ToString(in.TableName), itemID(in.Key))
	return &dynamodb.GetItemOutput{Item: it}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.puts++
	if f.failPutAt > 0 && f.puts == f.failPutAt {
		return nil, f.putErr
	}
	table := aws.ToString(in.TableName)
	i, _ := f.find(table, itemID(in.Item))
	if i >= 0 && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	if i >= 0 {
		f.tables[table][i] = in.Item
	} else {
		f.tables[table] = append(f.tables[table], in.Item)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	id := itemID(in.Key)
	i, it := f.find(table, id)
	if i < 0 {
		it = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
		f.tables[table] = append(f.tables[table], it)
	}

	expr := aws.ToString(in.UpdateExpression)
	switch {
	case strings.HasPrefix(expr, "ADD #counter"):
		name := in.ExpressionAttributeNames["#counter"]
		var n int64
		if cur, ok := it[name].(*types.AttributeValueMemberN); ok {
			n, _ = strconv.ParseInt(cur.Value, 10, 64)
		}
		n++
		it[name] = &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
		return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{name: it[name]}}, nil
	case strings.HasPrefix(expr, "SET #flag"):
		name := in.ExpressionAttributeNames["#flag"]
		if _, exists := it[name]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
		it[name] = in.ExpressionAttributeValues[":true"]
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	want := in.ExpressionAttributeValues[":oid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, it := range f.tables[aws.ToString(in.TableName)] {
		if s, ok := it["order_id"].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	all := f.tables[aws.ToString(in.TableName)]
	start := 0
	if len(in.ExclusiveStartKey) > 0 {
		for i, it := range all {
			if itemID(it) == itemID(in.ExclusiveStartKey) {
				start = i + 1
				break
			}
		}
	}
	end := start + f.pageSize
	if end >= len(all) {
		return &dynamodb.ScanOutput{Items: all[start:]}, nil
	}
	page := all[start:end]
	return &dynamodb.ScanOutput{
		Items:            page,
		LastEvaluatedKey: map[string]types.AttributeValue{"id": page[len(page)-1]["id"]},
	}, nil
}
