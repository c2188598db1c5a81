package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "budie/internal/delivery/context"
	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/domain/service"
	"budie/internal/usecase"
)

// userService implements the UserUsecase interface. OAuth token material
// passes through the field cipher on the way in and never leaves the
// service in plaintext.
type userService struct {
	userRepo        repository.UserRepository
	integrationRepo repository.IntegrationRepository
	cipher          service.FieldCipher
	logger          *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	IntegrationRepo repository.IntegrationRepository
	Cipher          service.FieldCipher
	Logger          *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:        params.UserRepo,
		integrationRepo: params.IntegrationRepo,
		cipher:          params.Cipher,
		logger:          params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile applies a partial update to the caller's profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserDTO, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Timezone != nil {
		user.Timezone = *input.Timezone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return usecase.NewUserDTO(user), nil
}

// UpsertIntegration encrypts the provider tokens and stores them, replacing
// any existing integration for the same provider.
func (srv *userService) UpsertIntegration(ctx context.Context, userID uuid.UUID, input *usecase.UpsertIntegrationInput) (*usecase.IntegrationDTO, error) {
	accessCipher, err := srv.cipher.Encrypt(input.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt access token")
	}

	var refreshCipher string
	if input.RefreshToken != "" {
		refreshCipher, err = srv.cipher.Encrypt(input.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encrypt refresh token")
		}
	}

	integration := &entity.Integration{
		UserID:       userID,
		Provider:     entity.IntegrationProvider(input.Provider),
		AccessToken:  accessCipher,
		RefreshToken: refreshCipher,
		ExpiresAt:    input.ExpiresAt,
	}

	if err := srv.integrationRepo.Upsert(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to store integration")
	}

	srv.log(ctx).Info("Integration connected",
		slog.Any("userID", userID),
		slog.String("provider", input.Provider),
	)

	return usecase.NewIntegrationDTO(integration), nil
}

// ListIntegrations returns the caller's integrations with token material
// redacted.
func (srv *userService) ListIntegrations(ctx context.Context, userID uuid.UUID) ([]*usecase.IntegrationDTO, error) {
	integrations, err := srv.integrationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	dtos := make([]*usecase.IntegrationDTO, 0, len(integrations))
	for _, integration := range integrations {
		dtos = append(dtos, usecase.NewIntegrationDTO(integration))
	}

	return dtos, nil
}

// DeleteIntegration disconnects a provider.
func (srv *userService) DeleteIntegration(ctx context.Context, userID uuid.UUID, provider string) error {
	p := entity.IntegrationProvider(provider)
	if !p.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown integration provider")
	}

	if err := srv.integrationRepo.Delete(ctx, userID, p); err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return domainerrors.ErrIntegrationNotFound
		}

		return errors.Wrap(err, "failed to delete integration")
	}

	srv.log(ctx).Info("Integration disconnected",
		slog.Any("userID", userID),
		slog.String("provider", provider),
	)

	return nil
}
