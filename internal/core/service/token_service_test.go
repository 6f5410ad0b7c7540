package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/core/domain"
)

// memoryTokenStore is an in-memory ports.RefreshTokenStore with the same
// exactly-once consumption guarantee as the Redis implementation.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]string)}
}

func (s *memoryTokenStore) Save(_ context.Context, tokenID, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenID] = userID
	return nil
}

func (s *memoryTokenStore) Consume(_ context.Context, tokenID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[tokenID]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	delete(s.tokens, tokenID)
	return userID, nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:    "6f1e1d9a-0b1c-4e6f-8a2b-3c4d5e6f7a8b",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	}
}

func newTestTokenService(store *memoryTokenStore) *TokenService {
	return NewTokenService("test-secret", store, time.Minute, time.Hour, zerolog.Nop())
}

func TestTokenService_IssueAndValidateAccess(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())
	user := testUser()

	pair, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty token pair, got %+v", pair)
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("access and refresh tokens must differ")
	}

	identity, err := svc.ValidateAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccess returned error: %v", err)
	}
	if identity.UserID != user.ID || identity.Email != user.Email || identity.Role != user.Role {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenService_IssueTwice_PairsDiffer(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())
	user := testUser()

	first, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	second, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}

	if first.AccessToken == second.AccessToken {
		t.Fatalf("access tokens from consecutive issues must differ")
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatalf("refresh tokens from consecutive issues must differ")
	}
}

func TestTokenService_ValidateAccess_Rejects(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())
	user := testUser()

	pair, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Token signed with a different secret.
	other := NewTokenService("other-secret", newMemoryTokenStore(), time.Minute, time.Hour, zerolog.Nop())
	foreign, err := other.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("Issue with other secret: %v", err)
	}

	// Tampered payload: extend the middle segment so it no longer matches
	// the signature.
	parts := strings.Split(pair.AccessToken, ".")
	tampered := parts[0] + "." + parts[1] + "AAAA." + parts[2]

	for name, token := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"foreign secret": foreign.AccessToken,
		"tampered":       tampered,
	} {
		if _, err := svc.ValidateAccess(token); err != domain.ErrInvalidToken {
			t.Errorf("%s: ValidateAccess = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestTokenService_ValidateAccess_Expired(t *testing.T) {
	store := newMemoryTokenStore()
	svc := NewTokenService("test-secret", store, -time.Minute, time.Hour, zerolog.Nop())

	pair, err := svc.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.ValidateAccess(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired access token, got %v", err)
	}
}

func TestTokenService_RotateRefresh_SingleUse(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())
	user := testUser()

	pair, err := svc.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := svc.ValidateAndRotateRefresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("first rotation failed: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("rotation returned user %q, want %q", userID, user.ID)
	}

	// Replay of the consumed token must fail.
	if _, err := svc.ValidateAndRotateRefresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("replay: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_RotateRefresh_ConcurrentSingleWinner(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())

	pair, err := svc.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ValidateAndRotateRefresh(context.Background(), pair.RefreshToken)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else if err != domain.ErrInvalidToken {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 successful rotation, got %d", successes)
	}
}

func TestTokenService_RotateRefresh_RejectsUnknownJTI(t *testing.T) {
	store := newMemoryTokenStore()
	svc := newTestTokenService(store)

	pair, err := svc.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// An access token is signed with the same secret but its jti was never
	// stored, so it cannot be exchanged.
	if _, err := svc.ValidateAndRotateRefresh(context.Background(), pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("access token as refresh: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_Revoke(t *testing.T) {
	svc := newTestTokenService(newMemoryTokenStore())

	pair, err := svc.Issue(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := svc.Revoke(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	// A revoked token is terminal: neither rotation nor a second revoke works.
	if _, err := svc.ValidateAndRotateRefresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("rotation after revoke: got %v, want ErrInvalidToken", err)
	}
	if err := svc.Revoke(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("second revoke: got %v, want ErrInvalidToken", err)
	}
}
