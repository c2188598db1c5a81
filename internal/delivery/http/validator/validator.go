// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "budie/internal/domain/errors"
)

// Violation describes a single failed field constraint.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CustomValidator wraps a validator instance so Echo can run struct
// validation through c.Validate.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator configured to report JSON field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the json tag name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and converts failures into the
// application's validation error with field-level details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation failed")
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:  fe.Field(),
			Reason: describe(fe),
		})
	}

	return domainerrors.ErrValidationFailed.WithData(violations)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed the '" + fe.Tag() + "' constraint"
	}
}
