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
	mockRepo "budie/internal/mocks/repository"
	mockService "budie/internal/mocks/service"
	"budie/internal/usecase"
)

func newUserServiceForTest(
	t *testing.T,
	userRepo *mockRepo.MockUserRepository,
	integrationRepo *mockRepo.MockIntegrationRepository,
	cipher *mockService.MockFieldCipher,
) usecase.UserUsecase {
	t.Helper()

	return NewUserService(UserServiceParams{
		UserRepo:        userRepo,
		IntegrationRepo: integrationRepo,
		Cipher:          cipher,
		Logger:          newDiscardLogger(),
	})
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	cipher := mockService.NewMockFieldCipher(t)
	svc := newUserServiceForTest(t, userRepo, integrationRepo, cipher)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Alice", Timezone: "UTC"}

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "Alice", updated.Name)
			assert.Equal(t, "Asia/Taipei", updated.Timezone)
		}).
		Return(nil)

	timezone := "Asia/Taipei"
	dto, err := svc.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Timezone: &timezone})

	require.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", dto.Timezone)
}

func TestUserService_UpsertIntegration_EncryptsTokens(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	cipher := mockService.NewMockFieldCipher(t)
	svc := newUserServiceForTest(t, userRepo, integrationRepo, cipher)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	cipher.EXPECT().Encrypt("plain-access").Return("sealed-access", nil)
	cipher.EXPECT().Encrypt("plain-refresh").Return("sealed-refresh", nil)

	integrationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Integration")).
		Run(func(ctx context.Context, integration *entity.Integration) {
			// Only ciphertext reaches the repository.
			assert.Equal(t, "sealed-access", integration.AccessToken)
			assert.Equal(t, "sealed-refresh", integration.RefreshToken)
			assert.Equal(t, entity.IntegrationProviderGoogle, integration.Provider)
			integration.ID = uuid.New()
		}).
		Return(nil)

	dto, err := svc.UpsertIntegration(ctx, userID, &usecase.UpsertIntegrationInput{
		Provider:     "google",
		AccessToken:  "plain-access",
		RefreshToken: "plain-refresh",
		ExpiresAt:    &expiresAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "google", dto.Provider)
	assert.True(t, dto.Connected)
}

func TestUserService_ListIntegrations_RedactsTokens(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	cipher := mockService.NewMockFieldCipher(t)
	svc := newUserServiceForTest(t, userRepo, integrationRepo, cipher)

	ctx := context.Background()
	userID := uuid.New()

	integrationRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.Integration{
		{
			ID:          uuid.New(),
			UserID:      userID,
			Provider:    entity.IntegrationProviderGoogle,
			AccessToken: "sealed-blob",
		},
	}, nil)

	dtos, err := svc.ListIntegrations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "google", dtos[0].Provider)
	assert.True(t, dtos[0].Connected)
}

func TestUserService_DeleteIntegration(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	cipher := mockService.NewMockFieldCipher(t)
	svc := newUserServiceForTest(t, userRepo, integrationRepo, cipher)

	ctx := context.Background()
	userID := uuid.New()

	integrationRepo.EXPECT().
		Delete(ctx, userID, entity.IntegrationProviderGoogle).
		Return(nil)

	require.NoError(t, svc.DeleteIntegration(ctx, userID, "google"))

	err := svc.DeleteIntegration(ctx, userID, "dropbox")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	integrationRepo.EXPECT().
		Delete(ctx, userID, entity.IntegrationProviderMicrosoft).
		Return(repository.ErrIntegrationNotFound)

	err = svc.DeleteIntegration(ctx, userID, "microsoft")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotFound)
}
