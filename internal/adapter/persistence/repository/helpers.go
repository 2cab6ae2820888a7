package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// batchWriteLimit is DynamoDB's per-call cap for BatchWriteItem.
const batchWriteLimit = 25

const maxUnprocessedRetries = 5

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type attrMap = map[string]types.AttributeValue

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// fieldDecoder parses the string attributes of a stored item and keeps the
// first failure so a corrupt row is reported instead of read as zero.
type fieldDecoder struct {
	err error
}

func (d *fieldDecoder) fail(field, s string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("decode %s %q: %w", field, s, err)
	}
}

func (d *fieldDecoder) time(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(field, s, err)
	}
	return t
}

func (d *fieldDecoder) optTime(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.time(field, s)
	return &t
}

func (d *fieldDecoder) decimal(field, s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(field, s, err)
		return decimal.Zero
	}
	return v
}

func stringKey(name, value string) attrMap {
	return attrMap{name: &types.AttributeValueMemberS{Value: value}}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a TransactWriteItems call was
// cancelled by a failed condition.
func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func getByKey(ctx context.Context, ddb DynamoAPI, table string, key attrMap) (attrMap, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

// putNew inserts av unless an item with the same id already exists.
func putNew(ctx context.Context, ddb DynamoAPI, table string, av attrMap) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return entities.ErrVersionConflict
	}
	return err
}

// putVersioned overwrites av only when the stored version is version-1.
func putVersioned(ctx context.Context, ddb DynamoAPI, table string, av attrMap, version int64) error {
	_, err := ddb.PutItem(ctx, versionedPut(table, av, version))
	if isConditionalCheckFailed(err) {
		return entities.ErrVersionConflict
	}
	return err
}

func versionedPut(table string, av attrMap, version int64) *dynamodb.PutItemInput {
	return &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("#version = :prev"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: attrMap{
			":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(version-1, 10)},
		},
	}
}

func deleteByKey(ctx context.Context, ddb DynamoAPI, table string, key attrMap) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	return err
}

func scanAll(ctx context.Context, ddb DynamoAPI, table string) ([]attrMap, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	var out []attrMap
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

// queryEquals returns every item whose attr equals value, through index when
// one is given.
func queryEquals(ctx context.Context, ddb DynamoAPI, table, index, attr, value string) ([]attrMap, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: attrMap{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index != "" {
		in.IndexName = aws.String(index)
	} else {
		in.ConsistentRead = aws.Bool(true)
	}

	p := dynamodb.NewQueryPaginator(ddb, in)
	var out []attrMap
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

// replaceAll deletes the keys of every existing item and writes items, in
// BatchWriteItem chunks. It is not atomic; backup import validates before it
// gets here.
func replaceAll(ctx context.Context, ddb DynamoAPI, table string, keyAttrs []string, existing, items []attrMap) error {
	var reqs []types.WriteRequest
	for _, old := range existing {
		key := attrMap{}
		for _, k := range keyAttrs {
			key[k] = old[k]
		}
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: key}})
	}
	if err := batchWrite(ctx, ddb, table, reqs); err != nil {
		return err
	}

	reqs = reqs[:0]
	for _, av := range items {
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWrite(ctx, ddb, table, reqs)
}

func batchWrite(ctx context.Context, ddb DynamoAPI, table string, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(reqs) {
			end = len(reqs)
		}
		pending := map[string][]types.WriteRequest{table: reqs[start:end]}
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return errors.New("dynamodb batch write: unprocessed items left after retries")
			}
			if attempt > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(attempt*50) * time.Millisecond):
				}
			}
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
