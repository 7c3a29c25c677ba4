package interfaces

import (
	"context"

	"esquadrias_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Missing records come back as zero-value entities with a nil error; callers
// check for an empty ID. Create is conditional on the id not existing, so a
// client-supplied request token makes creation idempotent.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
