package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budie/config"
	httpmiddleware "budie/internal/delivery/http/middleware"
	"budie/internal/domain/service"
	"budie/internal/infra/auth"
)

type gatewayFixture struct {
	cfg      *config.Config
	srv      *httptest.Server
	hub      *Hub
	tokenSvc service.TokenService
	userID   uuid.UUID
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "gateway-access-secret"
	cfg.SecretKey.Refresh = "gateway-refresh-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hub := NewHub(logger)
	handler := NewHandler(HandlerParams{
		Hub:          hub,
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger, cfg).HandleHTTPError
	e.GET("/ws", handler.Serve)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return &gatewayFixture{
		cfg:      cfg,
		srv:      srv,
		hub:      hub,
		tokenSvc: tokenSvc,
		userID:   uuid.New(),
	}
}

func (f *gatewayFixture) wsURL() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws"
}

func (f *gatewayFixture) accessToken(t *testing.T) string {
	t.Helper()

	pair, err := f.tokenSvc.IssueTokenPair(f.userID)
	require.NoError(t, err)

	return pair.AccessToken
}

// handshakeErrorCode decodes the error envelope of a rejected handshake.
func handshakeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()

	require.NotNil(t, resp)
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestHandler_Serve_RejectsMissingToken(t *testing.T) {
	f := newGatewayFixture(t)

	conn, resp, err := websocket.DefaultDialer.Dial(f.wsURL(), nil)

	require.Error(t, err)
	require.Nil(t, conn)
	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NO_TOKEN", handshakeErrorCode(t, resp))
	assert.Equal(t, 0, f.hub.roomSize(f.userID))
}

func TestHandler_Serve_RejectsRefreshToken(t *testing.T) {
	f := newGatewayFixture(t)

	pair, err := f.tokenSvc.IssueTokenPair(f.userID)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(f.wsURL()+"?token="+pair.RefreshToken, nil)

	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", handshakeErrorCode(t, resp))
	assert.Equal(t, 0, f.hub.roomSize(f.userID))
}

func TestHandler_Serve_RejectsExpiredToken(t *testing.T) {
	f := newGatewayFixture(t)

	shortCfg := &config.Config{}
	shortCfg.SecretKey = f.cfg.SecretKey
	shortCfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Nanosecond,
		RefreshTokenTTL: time.Hour,
	}
	shortSvc, err := auth.NewJWTService(shortCfg)
	require.NoError(t, err)

	pair, err := shortSvc.IssueTokenPair(f.userID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+pair.AccessToken)
	conn, resp, err := websocket.DefaultDialer.Dial(f.wsURL(), header)

	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_EXPIRED", handshakeErrorCode(t, resp))
	assert.Equal(t, 0, f.hub.roomSize(f.userID))
}

func TestHandler_Serve_AcceptsBearerHeaderAndDeliversEvents(t *testing.T) {
	f := newGatewayFixture(t)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+f.accessToken(t))
	conn, resp, err := websocket.DefaultDialer.Dial(f.wsURL(), header)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool {
		return f.hub.roomSize(f.userID) == 1
	}, time.Second, 10*time.Millisecond)

	err = f.hub.Broadcast(context.Background(), f.userID, service.TaskEvent{
		Event: service.TaskEventCreated,
		Data:  map[string]any{"task": map[string]any{"title": "over the wire"}},
	})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Event string `json:"event"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "task:created", event.Event)
}

func TestHandler_Serve_AcceptsQueryParamToken(t *testing.T) {
	f := newGatewayFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(f.wsURL()+"?token="+f.accessToken(t), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return f.hub.roomSize(f.userID) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHandler_Serve_DeregistersOnClose(t *testing.T) {
	f := newGatewayFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(f.wsURL()+"?token="+f.accessToken(t), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.hub.roomSize(f.userID) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return f.hub.roomSize(f.userID) == 0
	}, time.Second, 10*time.Millisecond)
}
