package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/infra/persistence/model"
)

// integrationRepository implements the domain IntegrationRepository using GORM.
// Token columns carry ciphertext; this layer never sees plaintext secrets.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{db: db}
}

// Upsert creates or replaces the integration for (userID, provider).
func (repo *integrationRepository) Upsert(ctx context.Context, integration *entity.Integration) error {
	integrationM := fromIntegrationDomain(integration)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token_cipher", "refresh_token_cipher", "expires_at", "updated_at",
		}),
	}).Create(integrationM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert integration")
	}

	integration.ID = integrationM.ID
	integration.CreatedAt = integrationM.CreatedAt
	integration.UpdatedAt = integrationM.UpdatedAt

	return nil
}

// FindByUserID lists all integrations belonging to a user.
func (repo *integrationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Integration, error) {
	var models []*model.IntegrationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	integrations := make([]*entity.Integration, 0, len(models))
	for _, integrationM := range models {
		integrations = append(integrations, toIntegrationDomain(integrationM))
	}

	return integrations, nil
}

// Delete removes the integration for (userID, provider).
func (repo *integrationRepository) Delete(ctx context.Context, userID uuid.UUID, provider entity.IntegrationProvider) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, string(provider)).
		Delete(&model.IntegrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete integration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toIntegrationDomain(data *model.IntegrationModel) *entity.Integration {
	if data == nil {
		return nil
	}

	return &entity.Integration{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     entity.IntegrationProvider(data.Provider),
		AccessToken:  data.AccessTokenCipher,
		RefreshToken: data.RefreshTokenCipher,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromIntegrationDomain(data *entity.Integration) *model.IntegrationModel {
	if data == nil {
		return nil
	}

	return &model.IntegrationModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Provider:           string(data.Provider),
		AccessTokenCipher:  data.AccessToken,
		RefreshTokenCipher: data.RefreshToken,
		ExpiresAt:          data.ExpiresAt,
	}
}
