package exceptions

import (
	"errors"
	"formbuilder-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	err := BuildNewCustomError(errors.New("dial tcp: connection refused"), constvars.StatusInternalServerError, "client message", "dev message")

	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "client message", err.ClientMessage)
	assert.Contains(t, err.DevMessage, "dev message")
	assert.Contains(t, err.DevMessage, "connection refused")
	assert.NotEmpty(t, err.Location.File)
}

func TestErrMissingRequiredHeader(t *testing.T) {
	err := ErrMissingRequiredHeader(constvars.HeaderFormName)

	assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.ClientMessage, constvars.HeaderFormName)
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Question string `validate:"required"`
	}

	validate := validator.New()
	err := validate.Struct(payload{})
	assert.Error(t, err)

	message := FormatFirstValidationError(err)
	assert.Equal(t, "question is required", message)
}

func TestFormatFirstValidationError_NonValidationError(t *testing.T) {
	message := FormatFirstValidationError(errors.New("plain error"))
	assert.Equal(t, constvars.ErrDevInvalidInput, message)
}
