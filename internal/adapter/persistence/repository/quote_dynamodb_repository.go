package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID                string   `dynamodbav:"id"`
	CustomerName      string   `dynamodbav:"customer_name"`
	Phone             string   `dynamodbav:"phone,omitempty"`
	Address           string   `dynamodbav:"address,omitempty"`
	Type              string   `dynamodbav:"type"`
	HeightCM          float64  `dynamodbav:"height"`
	WidthCM           float64  `dynamodbav:"width"`
	FrameWidthCM      *float64 `dynamodbav:"frame_width,omitempty"`
	NeedsInstallation bool     `dynamodbav:"needs_installation"`
	LockIncluded      bool     `dynamodbav:"lock_included"`
	HingeIncluded     bool     `dynamodbav:"hinge_included"`
	TotalPrice        string   `dynamodbav:"total_price"`
	Status            string   `dynamodbav:"status"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
	CreatedBy         string   `dynamodbav:"created_by,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Create is conditional on the id being new: a form's request token is the id,
// so a double submit loses the condition and is reported as a zero-value quote
// instead of writing a duplicate.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.scan(ctx, nil, nil)
}

func (r *QuoteDynamoRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	return r.scan(ctx,
		aws.String("#status = :status"),
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	)
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// scan pages through the whole table; the dataset is a small shop's quotes,
// not something that warrants a GSI per listing.
func (r *QuoteDynamoRepository) scan(ctx context.Context, filter *string, values map[string]types.AttributeValue) ([]entities.Quote, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          filter,
		ExpressionAttributeValues: values,
	}
	if filter != nil {
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
	}

	quotes := []entities.Quote{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                q.ID,
		CustomerName:      q.CustomerName,
		Phone:             q.Phone,
		Address:           q.Address,
		Type:              string(q.Type),
		HeightCM:          q.HeightCM,
		WidthCM:           q.WidthCM,
		FrameWidthCM:      q.FrameWidthCM,
		NeedsInstallation: q.NeedsInstallation,
		LockIncluded:      q.LockIncluded,
		HingeIncluded:     q.HingeIncluded,
		TotalPrice:        floatToString(q.TotalPrice),
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:         q.CreatedBy,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Quote{
		ID:                it.ID,
		CustomerName:      it.CustomerName,
		Phone:             it.Phone,
		Address:           it.Address,
		Type:              entities.ProductType(it.Type),
		HeightCM:          it.HeightCM,
		WidthCM:           it.WidthCM,
		FrameWidthCM:      it.FrameWidthCM,
		NeedsInstallation: it.NeedsInstallation,
		LockIncluded:      it.LockIncluded,
		HingeIncluded:     it.HingeIncluded,
		TotalPrice:        total,
		Status:            entities.QuoteStatus(it.Status),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		CreatedBy:         it.CreatedBy,
	}
}
