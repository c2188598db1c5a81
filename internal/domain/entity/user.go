// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It carries identity and profile data but
// never the password hash, which lives only in the persistence layer.
type User struct {
	ID            uuid.UUID // The unique identifier for the user.
	Email         string    // The user's login identifier.
	Name          string    // The user's display name.
	Timezone      string    // IANA timezone name used for scheduling views.
	EmailVerified bool      // Whether the email address has been confirmed.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// Integration represents a connected external provider account
// (e.g. a calendar). Token material is encrypted before it reaches the
// repository; the entity holds plaintext only while in memory on the
// write/read path.
type Integration struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     IntegrationProvider
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IntegrationProvider identifies a supported external provider.
type IntegrationProvider string

const (
	IntegrationProviderGoogle    IntegrationProvider = "google"
	IntegrationProviderMicrosoft IntegrationProvider = "microsoft"
)

// IsValid reports whether the provider is one of the supported values.
func (p IntegrationProvider) IsValid() bool {
	switch p {
	case IntegrationProviderGoogle, IntegrationProviderMicrosoft:
		return true
	}

	return false
}
