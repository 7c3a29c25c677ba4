package interfaces

import (
	"context"

	"esquadrias_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdatePaid(ctx context.Context, id string, paid bool) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
