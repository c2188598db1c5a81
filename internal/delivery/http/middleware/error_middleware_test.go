package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budie/config"
	domainerrors "budie/internal/domain/errors"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	} `json:"error"`
	Metadata struct {
		Timestamp string `json:"timestamp"`
		Path      string `json:"path"`
		Method    string `json:"method"`
	} `json:"metadata"`
}

func newErrorMiddlewareForTest(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func handleError(t *testing.T, m *ErrorMiddleware, err error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	m := newErrorMiddlewareForTest(false)

	rec, body := handleError(t, m, domainerrors.ErrTaskNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TASK_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "/api/tasks/123", body.Metadata.Path)
	assert.Equal(t, http.MethodGet, body.Metadata.Method)
	assert.NotEmpty(t, body.Metadata.Timestamp)
}

func TestErrorMiddleware_WrappedAppErrorUnwraps(t *testing.T) {
	m := newErrorMiddlewareForTest(false)

	wrapped := errors.Wrap(domainerrors.ErrTokenExpired, "verify")
	rec, body := handleError(t, m, wrapped)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TOKEN_EXPIRED", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddlewareForTest(false)

	rec, body := handleError(t, m, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorHidesDetails(t *testing.T) {
	m := newErrorMiddlewareForTest(false)

	rec, body := handleError(t, m, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "pq:")
}

func TestErrorMiddleware_UnknownErrorExposedInDebug(t *testing.T) {
	m := newErrorMiddlewareForTest(true)

	_, body := handleError(t, m, errors.New("pq: connection reset"))

	require.NotNil(t, body.Error)
	assert.Equal(t, "pq: connection reset", body.Error.Message)
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newErrorMiddlewareForTest(false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.NoContent(http.StatusOK))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
