// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"budie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrIntegrationNotFound is returned when a provider integration is not found.
var ErrIntegrationNotFound = errors.New("integration not found")

// Credentials pairs a user with their password hash. The hash never leaves
// the repository boundary except through this type.
type Credentials struct {
	User         *entity.User
	PasswordHash string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindCredentialsByEmail retrieves a user together with their password
	// hash for credential checks during login.
	FindCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)

	// Create persists a new user with the given password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// IntegrationRepository persists external provider integrations. Token
// fields are stored as handed over; encryption happens explicitly on the
// write path before these methods are called.
type IntegrationRepository interface {
	// Upsert creates or replaces the integration for (userID, provider).
	Upsert(ctx context.Context, integration *entity.Integration) error

	// FindByUserID lists all integrations belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Integration, error)

	// Delete removes the integration for (userID, provider).
	Delete(ctx context.Context, userID uuid.UUID, provider entity.IntegrationProvider) error
}
