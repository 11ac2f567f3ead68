package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	_ interfaces.IEntityStore[entities.Order]        = (*Collection[entities.Order])(nil)
	_ interfaces.IEntityStore[entities.ConsumerLink] = (*Collection[entities.ConsumerLink])(nil)
	_ interfaces.IEntityStore[entities.Complaint]    = (*Collection[entities.Complaint])(nil)
	_ interfaces.IEntityStore[entities.Incident]     = (*Collection[entities.Incident])(nil)
)

// Collection persists one entity kind in its own table (PK: id). Every write
// is a full-item PutItem guarded by a condition on the stored version.
type Collection[T entities.Record[T]] struct {
	ddb   DynamoAPI
	table string
	codec codec[T]
	now   func() time.Time
}

func newCollection[T entities.Record[T]](ddb DynamoAPI, table string, c codec[T], now func() time.Time) *Collection[T] {
	return &Collection[T]{ddb: ddb, table: table, codec: c, now: now}
}

func (r *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if rec.GetID() == "" {
		return zero, errs.Invalid("id", "required")
	}
	stored := rec.Clone().Stamp(1, r.now())
	av, err := r.codec.encode(stored)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if _, ok := asConditionFailed(err); ok {
			return zero, fmt.Errorf("%s %s already exists: %w", r.codec.kind, rec.GetID(), errs.ErrConcurrentModification)
		}
		return zero, err
	}
	return stored, nil
}

func (r *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, errs.NotFound(r.codec.kind, id)
	}
	return r.codec.decode(out.Item)
}

// Update stores rec if the table still holds rec.GetVersion().
func (r *Collection[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	put, stored, err := r.versionedPut(rec)
	if err != nil {
		return zero, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           put.TableName,
		Item:                                put.Item,
		ConditionExpression:                 put.ConditionExpression,
		ExpressionAttributeNames:            put.ExpressionAttributeNames,
		ExpressionAttributeValues:           put.ExpressionAttributeValues,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := asConditionFailed(err); ok {
			return zero, r.conditionError(rec, cfe.Item)
		}
		return zero, err
	}
	return stored, nil
}

// versionedPut builds the conditional put shared by Update and transactions.
func (r *Collection[T]) versionedPut(rec T) (*types.Put, T, error) {
	var zero T
	stored := rec.Clone().Stamp(rec.GetVersion()+1, r.now())
	av, err := r.codec.encode(stored)
	if err != nil {
		return nil, zero, err
	}
	return &types.Put{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.GetVersion(), 10)},
		},
	}, stored, nil
}

// conditionError tells a missing record from a stale version using the old
// item DynamoDB returned with the failure.
func (r *Collection[T]) conditionError(rec T, old map[string]types.AttributeValue) error {
	if len(old) == 0 {
		return errs.NotFound(r.codec.kind, rec.GetID())
	}
	cur, err := r.codec.decode(old)
	if err != nil {
		return fmt.Errorf("%s %s changed concurrently: %w", r.codec.kind, rec.GetID(), errs.ErrConcurrentModification)
	}
	return errs.Conflict(r.codec.kind, rec.GetID(), rec.GetVersion(), cur.GetVersion())
}

// List queries a GSI when the filter names an indexed key and scans
// otherwise. Remaining criteria are applied in memory. Order is whatever
// DynamoDB returns.
func (r *Collection[T]) List(ctx context.Context, filter entities.Filter) ([]T, error) {
	var pages [][]map[string]types.AttributeValue

	if index, attr, value, ok := r.codec.index(filter); ok {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.table),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
			TableName: aws.String(r.table),
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	items := make([]T, 0)
	for _, page := range pages {
		for _, raw := range page {
			rec, err := r.codec.decode(raw)
			if err != nil {
				return nil, err
			}
			if rec.Matches(filter) {
				items = append(items, rec)
			}
		}
	}
	return items, nil
}
