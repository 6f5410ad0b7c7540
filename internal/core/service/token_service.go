package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/core/domain"
	"github.com/userhub/identity-system/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims is the JWT payload for both access and refresh tokens. Subject
// holds the user id; ID (jti) is a fresh UUID per token so two tokens minted
// for the same user in the same second still differ byte-wise. Refresh jtis
// are additionally recorded in the RefreshTokenStore for single-use
// consumption.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 token pairs and enforces the refresh-token state
// machine: Issued → Consumed (rotation or revocation) or Issued → Expired.
type TokenService struct {
	secret     []byte
	store      ports.RefreshTokenStore
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewTokenService(secret string, store ports.RefreshTokenStore, accessTTL, refreshTTL time.Duration, log zerolog.Logger) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		secret:     []byte(secret),
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

// Issue mints an access+refresh pair and records the refresh jti so the
// token can be exchanged exactly once.
func (s *TokenService) Issue(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, _, err := s.sign(user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, refreshID, err := s.sign(user, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, refreshID, user.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidateAccess parses and verifies an access token. Bad signature, expiry
// and malformed structure all collapse to domain.ErrInvalidToken; the real
// reason is kept in the debug log.
func (s *TokenService) ValidateAccess(token string) (*domain.Identity, error) {
	claims, err := s.parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("access token rejected")
		return nil, domain.ErrInvalidToken
	}
	return &domain.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// ValidateAndRotateRefresh verifies the refresh token and consumes its jti
// in one atomic step. The store guarantees exactly one success per jti, so
// concurrent refresh attempts with the same token race to a single winner.
func (s *TokenService) ValidateAndRotateRefresh(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("refresh token rejected")
		return "", domain.ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		s.log.Debug().Msg("refresh token missing jti or subject")
		return "", domain.ErrInvalidToken
	}

	userID, err := s.store.Consume(ctx, claims.ID)
	if err != nil {
		s.log.Debug().Err(err).Str("jti", claims.ID).Msg("refresh token already consumed or unknown")
		return "", domain.ErrInvalidToken
	}
	if userID != claims.Subject {
		s.log.Warn().Str("jti", claims.ID).Msg("refresh token subject mismatch")
		return "", domain.ErrInvalidToken
	}

	return userID, nil
}

// Revoke consumes a refresh token without issuing a replacement. Revoking a
// token that is invalid or already consumed fails with
// domain.ErrInvalidToken.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil || claims.ID == "" {
		return domain.ErrInvalidToken
	}
	if _, err := s.store.Consume(ctx, claims.ID); err != nil {
		return domain.ErrInvalidToken
	}
	return nil
}

func (s *TokenService) sign(user *domain.User, ttl time.Duration) (signed, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return signed, jti, err
}

func (s *TokenService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
