package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "budie/internal/domain/errors"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

func TestCustomValidator_Valid(t *testing.T) {
	cv := New()

	err := cv.Validate(&registerPayload{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	cv := New()

	err := cv.Validate(&registerPayload{
		Email:    "not-an-email",
		Password: "short",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	violations, ok := appErr.Data().([]Violation)
	require.True(t, ok)

	fields := make(map[string]string, len(violations))
	for _, v := range violations {
		fields[v.Field] = v.Reason
	}

	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 8 characters", fields["password"])
	assert.Equal(t, "is required", fields["name"])
}
