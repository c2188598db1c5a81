package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "budie/internal/delivery/context"
	"budie/internal/delivery/http/response"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/usecase"
)

// UserHandler holds dependencies for profile and integration handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user})
}

// UpsertIntegration connects or refreshes an external provider.
func (h *UserHandler) UpsertIntegration(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var input usecase.UpsertIntegrationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid integration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	integration, err := h.uc.UpsertIntegration(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"integration": integration})
}

// ListIntegrations returns the caller's connected providers.
func (h *UserHandler) ListIntegrations(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	integrations, err := h.uc.ListIntegrations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"integrations": integrations})
}

// DeleteIntegration disconnects a provider.
func (h *UserHandler) DeleteIntegration(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	provider := c.Param("provider")
	if err := h.uc.DeleteIntegration(c.Request().Context(), userID, provider); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"provider": provider})
}
