package interfaces

import (
	"context"

	"esquadrias_xpto/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer (clientes).

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
