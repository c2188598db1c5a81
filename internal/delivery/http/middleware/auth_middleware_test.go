package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "budie/internal/delivery/context"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/service"
	mockService "budie/internal/mocks/service"
)

func newEchoContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().Verify("valid-token", service.TokenKindAccess).Return(userID, nil)

	c, _ := newEchoContext("Bearer valid-token")
	var resolved uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		id, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		resolved = id

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newEchoContext("")
	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newEchoContext("Basic dXNlcjpwYXNz")
	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestAuthMiddleware_Authenticate_VerificationErrorsPassThrough(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().Verify("stale", service.TokenKindAccess).Return(uuid.Nil, domainerrors.ErrTokenExpired)

	c, _ := newEchoContext("Bearer stale")
	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.NotErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_OptionalAuthenticate_AnonymousOnFailure(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().Verify("bad", service.TokenKindAccess).Return(uuid.Nil, domainerrors.ErrTokenInvalid)

	c, _ := newEchoContext("Bearer bad")
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		_, ok := deliverycontext.GetUserID(c)
		assert.False(t, ok)

		return okHandler(c)
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_OptionalAuthenticate_AnonymousWithoutToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newEchoContext("")
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		_, ok := deliverycontext.GetUserID(c)
		assert.False(t, ok)

		return okHandler(c)
	})(c)

	assert.NoError(t, err)
}
