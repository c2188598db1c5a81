// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to domain entities at the repository
// boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. PasswordHash lives here
// and never crosses into the domain User entity.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	Name          string    `gorm:"not null"`
	Timezone      string    `gorm:"not null;default:UTC"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}

// IntegrationModel is the GORM model for connected provider accounts.
// Token columns hold ciphertext produced by the field cipher.
type IntegrationModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_integrations_user_provider"`
	Provider           string    `gorm:"not null;uniqueIndex:idx_integrations_user_provider"`
	AccessTokenCipher  string    `gorm:"not null"`
	RefreshTokenCipher string
	ExpiresAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the default table name.
func (IntegrationModel) TableName() string {
	return "integrations"
}
