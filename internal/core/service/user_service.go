package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/core/domain"
	"github.com/userhub/identity-system/internal/core/ports"
)

// UserService implements directory reads over users and the admin create.
// The admin role check lives in the API layer; created users always get the
// "user" role.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

// List returns all users, most recently created first.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Get returns the user with the given id. A syntactically invalid id is a
// client error distinct from a well-formed id with no match.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return s.users.FindByID(ctx, id)
}

// Create runs the same validation and creation pipeline as registration but
// returns only the user, never tokens.
func (s *UserService) Create(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	if err := validateNewUser(in); err != nil {
		return nil, err
	}
	user, err := createUser(ctx, s.users, s.hasher, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Msg("user created by admin")
	return user, nil
}
