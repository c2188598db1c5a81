// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"budie/config"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/service"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// tokenClaims are the claims embedded in both token kinds.
type tokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. Access and refresh tokens are signed with distinct
// secrets so one kind can never verify as the other.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssueTokenPair creates a new access/refresh token pair for a given user.
func (s *jwtService) IssueTokenPair(userID uuid.UUID) (*service.TokenPair, error) {
	accessToken, err := s.generateToken(userID, service.TokenKindAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.generateToken(userID, service.TokenKindRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Verify checks a token string against the secret for the expected kind.
func (s *jwtService) Verify(tokenString string, kind service.TokenKind) (uuid.UUID, error) {
	secret := s.accessSecret
	if kind == service.TokenKindRefresh {
		secret = s.refreshSecret
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return uuid.Nil, domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("token past its expiry")
		default:
			return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("token signature verification failed")
		}
	}

	// A structurally valid token signed with the right secret but carrying
	// the wrong kind claim is invalid, not malformed.
	if claims.Type != string(kind) {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("token kind mismatch")
	}

	if claims.UserID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("user ID missing from token")
	}

	return claims.UserID, nil
}

// Refresh verifies the given refresh token and mints a fresh pair for the
// recovered user. The old refresh token stays valid until its own expiry.
func (s *jwtService) Refresh(refreshToken string) (*service.TokenPair, error) {
	userID, err := s.Verify(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return s.IssueTokenPair(userID)
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, kind service.TokenKind, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: userID,
		Type:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
