package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "budie/internal/delivery/context"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/service"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token on the Authorization header and
// stores the authenticated user ID on the context. Errors flow to the
// central error handler so the envelope stays uniform.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		userID, err := m.tokenSvc.Verify(tokenString, service.TokenKindAccess)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user when a valid token is present but
// never rejects: on any verification failure the request proceeds
// anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return next(c)
		}

		userID, err := m.tokenSvc.Verify(tokenString, service.TokenKindAccess)
		if err != nil {
			return next(c)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domainerrors.ErrNoToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", domainerrors.ErrTokenMalformed.WrapMessage("authorization header is not a bearer token")
	}

	return tokenString, nil
}
