package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two credentials the service issues.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential authorizing requests.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived credential used only to mint new pairs.
	TokenKindRefresh TokenKind = "refresh"
)

// TokenPair bundles the two tokens returned by issuance and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService defines the interface for issuing and verifying JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueTokenPair creates a new access/refresh token pair for a user.
	IssueTokenPair(userID uuid.UUID) (*TokenPair, error)

	// Verify checks signature, expiry and kind, returning the embedded user
	// ID. It fails with ErrTokenExpired, ErrTokenInvalid (bad signature or
	// kind mismatch) or ErrTokenMalformed (unparseable).
	Verify(token string, kind TokenKind) (uuid.UUID, error)

	// Refresh verifies the given token as refresh kind and issues a fresh
	// pair for the recovered user. Previously issued refresh tokens remain
	// valid until their own expiry; there is no rotation or revocation.
	Refresh(refreshToken string) (*TokenPair, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
