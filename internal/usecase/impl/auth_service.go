// Package impl contains the implementation of the application's business logic.
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

const defaultTimezone = "UTC"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs the user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	user := &entity.User{
		Email:    input.Email,
		Name:     input.Name,
		Timezone: timezone,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindCredentialsByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		return userRepo.Create(ctx, user, hashedPassword)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	pair, err := srv.tokenService.IssueTokenPair(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         usecase.NewUserDTO(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    srv.accessExpirySeconds(),
	}, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email
// and wrong password both surface the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	creds, err := srv.userRepo.FindCredentialsByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credentials")
	}

	if !srv.hasher.Check(input.Password, creds.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("userID", creds.User.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.tokenService.IssueTokenPair(creds.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", creds.User.ID))

	return &usecase.AuthOutput{
		User:         usecase.NewUserDTO(creds.User),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    srv.accessExpirySeconds(),
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. No revocation
// state is kept, so the presented token stays usable until it expires.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenOutput, error) {
	pair, err := srv.tokenService.Refresh(input.RefreshToken)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.TokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    srv.accessExpirySeconds(),
	}, nil
}

func (srv *authService) accessExpirySeconds() int64 {
	return int64(srv.tokenService.AccessTokenDuration().Seconds())
}

// Logout acknowledges the sign-out. Tokens are stateless, so there is
// nothing to invalidate server-side.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logout", slog.Any("userID", userID))

	return nil
}

// Me returns the authenticated user's profile.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.UserDTO, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return usecase.NewUserDTO(user), nil
}
