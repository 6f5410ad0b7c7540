package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/core/domain"
	"github.com/userhub/identity-system/internal/core/ports"
)

// AuthService orchestrates register, login and refresh. Email uniqueness is
// enforced atomically by the repository insert; this service never
// pre-checks and inserts in two steps.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		log:    log,
	}
}

// validateNewUser applies the registration validation pipeline in order:
// field presence, email shape, password policy.
func validateNewUser(in ports.NewUserInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	return domain.ValidatePassword(in.Password)
}

// Register creates a user with role "user", mints a token pair and returns
// both. Duplicate normalized emails fail with domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in ports.NewUserInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(in.Email)

	if err := validateNewUser(in); err != nil {
		s.record(email, domain.AuditActionRegister, domain.AuditOutcomeFailure)
		return nil, err
	}

	user, err := s.createUser(ctx, in)
	if err != nil {
		s.record(email, domain.AuditActionRegister, domain.AuditOutcomeFailure)
		return nil, err
	}

	pair, err := s.tokens.Issue(ctx, user)
	if err != nil {
		s.record(email, domain.AuditActionRegister, domain.AuditOutcomeFailure)
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	s.record(user.ID, domain.AuditActionRegister, domain.AuditOutcomeSuccess)
	return &ports.AuthResult{Tokens: *pair, User: user}, nil
}

// Login authenticates by normalized email and case-sensitive password.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	normalized := domain.NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.record(normalized, domain.AuditActionLogin, domain.AuditOutcomeFailure)
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(user.ID, domain.AuditActionLogin, domain.AuditOutcomeFailure)
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(user.ID, domain.AuditActionLogin, domain.AuditOutcomeSuccess)
	return &ports.AuthResult{Tokens: *pair, User: user}, nil
}

// Refresh exchanges a valid, unconsumed refresh token for a brand-new pair.
// The consumed token can never be replayed; the empty string is rejected as
// an invalid token, not missing input (the transport layer handles absent
// fields).
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	userID, err := s.tokens.ValidateAndRotateRefresh(ctx, refreshToken)
	if err != nil {
		s.record("", domain.AuditActionRefresh, domain.AuditOutcomeFailure)
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(userID, domain.AuditActionRefresh, domain.AuditOutcomeFailure)
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	pair, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(user.ID, domain.AuditActionRefresh, domain.AuditOutcomeSuccess)
	return &ports.AuthResult{Tokens: *pair, User: user}, nil
}

// Revoke invalidates a refresh token without issuing a replacement.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrInvalidToken
	}
	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		s.record("", domain.AuditActionLogout, domain.AuditOutcomeFailure)
		return err
	}
	s.record("", domain.AuditActionLogout, domain.AuditOutcomeSuccess)
	return nil
}

// createUser hashes the password and inserts the user record. Shared with
// UserService.Create so both paths apply identical creation semantics.
func (s *AuthService) createUser(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	return createUser(ctx, s.users, s.hasher, in)
}

func createUser(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, in ports.NewUserInput) (*domain.User, error) {
	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Age:          in.Age,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return users.Create(ctx, user)
}

func (s *AuthService) record(subject, action, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Subject: subject,
		Action:  action,
		Outcome: outcome,
		At:      time.Now().UTC(),
	})
}
