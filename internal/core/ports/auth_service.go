package ports

import (
	"context"

	"github.com/userhub/identity-system/internal/core/domain"
)

// NewUserInput carries the fields accepted when creating an account, either
// through self-registration or the admin create endpoint.
type NewUserInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

// AuthResult is returned by every flow that ends in an authenticated
// session: a token pair plus the owning user.
type AuthResult struct {
	Tokens domain.TokenPair
	User   *domain.User
}

// AuthService orchestrates the register, login and refresh flows.
type AuthService interface {
	Register(ctx context.Context, in NewUserInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Revoke(ctx context.Context, refreshToken string) error
}
