package ports

import (
	"context"

	"github.com/userhub/identity-system/internal/core/domain"
)

// UserService exposes directory-style read operations over users plus the
// admin-only create. Role checks happen in the API layer; new users always
// get the "user" role regardless of who creates them.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in NewUserInput) (*domain.User, error)
}
