package ports

import (
	"context"

	"github.com/userhub/identity-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user records. Create
// must be atomic with respect to concurrent creators: exactly one insert for
// a given normalized email succeeds, the rest fail with
// domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users ordered by creation time descending, ties
	// broken by id descending.
	List(ctx context.Context) ([]*domain.User, error)
}
