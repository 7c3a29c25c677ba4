package interfaces

import (
	"context"

	"esquadrias_xpto/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense (despesas).

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	Delete(ctx context.Context, id string) error
}
