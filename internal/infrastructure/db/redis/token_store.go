package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/identity-system/internal/core/domain"
)

const refreshKeyPrefix = "refresh:"

// TokenStore keeps one Redis key per outstanding refresh token, keyed by
// jti and expiring with the token itself. Consume uses GETDEL so the
// read-and-delete is a single atomic command: two concurrent consumers of
// the same jti cannot both succeed.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records a freshly issued refresh token.
func (s *TokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume removes the record and returns the owning user id. An expired or
// already consumed token has no key and fails with domain.ErrInvalidToken.
func (s *TokenStore) Consume(ctx context.Context, tokenID string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(tokenID)).Result()
	if err == redis.Nil {
		return "", domain.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("consume refresh token: %w", err)
	}
	return userID, nil
}

func (s *TokenStore) key(tokenID string) string {
	return refreshKeyPrefix + tokenID
}
