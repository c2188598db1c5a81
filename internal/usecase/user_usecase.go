package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"budie/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update.
type UpdateProfileInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Timezone *string `json:"timezone" validate:"omitempty,max=64"`
}

// UpsertIntegrationInput stores OAuth tokens for an external provider.
// Token material is encrypted before it reaches storage.
type UpsertIntegrationInput struct {
	Provider     string     `json:"provider" validate:"required,oneof=google microsoft"`
	AccessToken  string     `json:"accessToken" validate:"required"`
	RefreshToken string     `json:"refreshToken" validate:"omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

// --- Output DTOs ---

// IntegrationDTO is the outward-facing integration representation. Token
// material is redacted to connection status only.
type IntegrationDTO struct {
	ID        uuid.UUID  `json:"id"`
	Provider  string     `json:"provider"`
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewIntegrationDTO maps a domain integration to its redacted outward
// representation.
func NewIntegrationDTO(integration *entity.Integration) *IntegrationDTO {
	if integration == nil {
		return nil
	}

	return &IntegrationDTO{
		ID:        integration.ID,
		Provider:  string(integration.Provider),
		Connected: integration.AccessToken != "",
		ExpiresAt: integration.ExpiresAt,
		CreatedAt: integration.CreatedAt,
		UpdatedAt: integration.UpdatedAt,
	}
}

// UserUsecase defines the interface for profile and integration
// operations on the authenticated user.
type UserUsecase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserDTO, error)
	UpsertIntegration(ctx context.Context, userID uuid.UUID, input *UpsertIntegrationInput) (*IntegrationDTO, error)
	ListIntegrations(ctx context.Context, userID uuid.UUID) ([]*IntegrationDTO, error)
	DeleteIntegration(ctx context.Context, userID uuid.UUID, provider string) error
}
