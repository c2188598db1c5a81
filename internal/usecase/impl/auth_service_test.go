package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/domain/service"
	mockRepo "budie/internal/mocks/repository"
	mockService "budie/internal/mocks/service"
	"budie/internal/usecase"
)

func newAuthServiceForTest(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo *mockRepo.MockUserRepository,
	hasher *mockService.MockPasswordHasher,
	tokenSvc *mockService.MockTokenService,
) usecase.AuthUsecase {
	t.Helper()

	return NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().Hash("password123").Return("$2a$10$hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().
				FindCredentialsByEmail(ctx, "alice@example.com").
				Return(nil, repository.ErrUserNotFound)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User"), "$2a$10$hashed").
				Run(func(ctx context.Context, user *entity.User, passwordHash string) {
					user.ID = userID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	tokenSvc.EXPECT().IssueTokenPair(userID).Return(&service.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil)
	tokenSvc.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "UTC", output.User.Timezone)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()

	hasher.EXPECT().Hash("password123").Return("$2a$10$hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().
				FindCredentialsByEmail(ctx, "taken@example.com").
				Return(&repository.Credentials{User: &entity.User{ID: uuid.New()}}, nil)

			return fn(mockFactory)
		})

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Bob",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}

	userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "alice@example.com").
		Return(&repository.Credentials{User: user, PasswordHash: "$2a$10$hashed"}, nil)
	hasher.EXPECT().Check("password123", "$2a$10$hashed").Return(true)
	tokenSvc.EXPECT().IssueTokenPair(user.ID).Return(&service.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil)
	tokenSvc.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, "access", output.AccessToken)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()

	userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, unknownErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "alice@example.com").
		Return(&repository.Credentials{User: user, PasswordHash: "$2a$10$hashed"}, nil)
	hasher.EXPECT().Check("wrong", "$2a$10$hashed").Return(false)

	_, wrongErr := svc.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, wrongErr)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	// Both failure modes surface the identical error value.
	assert.Equal(t, unknownErr, wrongErr)
}

func TestAuthService_Refresh_DelegatesToTokenService(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()

	tokenSvc.EXPECT().Refresh("old-refresh").Return(&service.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)
	tokenSvc.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
}

func TestAuthService_Refresh_PropagatesTokenError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()

	tokenSvc.EXPECT().Refresh("stale").Return(nil, domainerrors.ErrTokenExpired)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthService_Logout_IsStateless(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	// No repository or token calls are expected; logout touches nothing.
	err := svc.Logout(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestAuthService_Me(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	svc := newAuthServiceForTest(t, txManager, userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice", Timezone: "Asia/Taipei"}

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	dto, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, dto.Email)
	assert.Equal(t, "Asia/Taipei", dto.Timezone)

	userRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
