package ws

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"budie/config"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/service"
)

// Handler upgrades authenticated HTTP requests to WebSocket connections
// and joins them to the caller's room.
type Handler struct {
	hub      *Hub
	tokenSvc service.TokenService
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Hub          *Hub
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	clientOrigin := params.Config.HTTP.ClientOrigin

	return &Handler{
		hub:      params.Hub,
		tokenSvc: params.TokenService,
		logger:   params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if clientOrigin == "" {
					return true
				}

				return r.Header.Get("Origin") == clientOrigin
			},
		},
	}
}

// Serve authenticates the handshake and upgrades the connection. The
// token is verified before the upgrade so failures still produce the
// regular 401 envelope. Browsers cannot set headers on WebSocket
// handshakes, so a token query parameter is accepted as fallback.
func (h *Handler) Serve(c echo.Context) error {
	tokenString := extractHandshakeToken(c)
	if tokenString == "" {
		return domainerrors.ErrNoToken
	}

	userID, err := h.tokenSvc.Verify(tokenString, service.TokenKindAccess)
	if err != nil {
		return errors.WithStack(err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written its own handshake failure response.
		h.logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	client := newClient(h.hub, userID, conn)
	h.hub.join(client)

	go client.writePump()
	go client.readPump()

	return nil
}

func extractHandshakeToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
			return token
		}
	}

	return c.QueryParam("token")
}
