package interfaces

import (
	"context"

	"esquadrias_xpto/internal/domain/entities"
)

// IProfileRepository resolves staff profiles for the session middleware.

type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}
