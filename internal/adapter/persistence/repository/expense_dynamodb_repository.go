package repository

import (
	"context"
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

const defaultExpensesTableName = "despesas"

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"descricao"`
	Amount      string `dynamodbav:"valor"`
	Date        string `dynamodbav:"data"`
	CreatedAt   string `dynamodbav:"created_at"`
	CreatedBy   string `dynamodbav:"created_by,omitempty"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESPESAS_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := toExpenseItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	expenses := []entities.Expense{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it expenseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			expenses = append(expenses, fromExpenseItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:          e.ID,
		Description: e.Description,
		Amount:      floatToString(e.Amount),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:   e.CreatedBy,
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Expense{
		ID:          it.ID,
		Description: it.Description,
		Amount:      amount,
		Date:        it.Date,
		CreatedAt:   createdAt,
		CreatedBy:   it.CreatedBy,
	}
}
