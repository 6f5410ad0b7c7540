package ports

import (
	"context"
	"time"

	"github.com/userhub/identity-system/internal/core/domain"
)

// TokenService issues and validates signed access/refresh token pairs and
// owns the refresh-token lifecycle (Issued → Consumed | Expired).
type TokenService interface {
	// Issue mints a fresh access+refresh pair for the user and records the
	// refresh token so it can be consumed exactly once.
	Issue(ctx context.Context, user *domain.User) (*domain.TokenPair, error)
	// ValidateAccess checks signature, expiry and structure. All failure
	// modes collapse to domain.ErrInvalidToken.
	ValidateAccess(token string) (*domain.Identity, error)
	// ValidateAndRotateRefresh validates the refresh token and atomically
	// consumes it, returning the owning user id. Concurrent calls with the
	// same token yield exactly one success.
	ValidateAndRotateRefresh(ctx context.Context, token string) (string, error)
	// Revoke consumes a refresh token without issuing a replacement.
	Revoke(ctx context.Context, token string) error
}

// RefreshTokenStore persists the single-use consumption record of refresh
// tokens, keyed by token id (jti).
type RefreshTokenStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	// Consume removes the record and returns the stored user id. A second
	// Consume for the same tokenID fails with domain.ErrInvalidToken, even
	// under concurrency.
	Consume(ctx context.Context, tokenID string) (string, error)
}
