package utils

import (
	"errors"
	"formbuilder-service/internal/pkg/constvars"
	"formbuilder-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildSuccessResponse(rr, constvars.StatusCreated, map[string]interface{}{
		"question": "Color?",
		"options":  []string{"Red", "Blue"},
	})

	assert.Equal(t, constvars.StatusCreated, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
	assert.JSONEq(t, `{"question":"Color?","options":["Red","Blue"]}`, rr.Body.String())
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("custom error keeps its status code and client message", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrMissingRequiredHeader(constvars.HeaderFormName))

		assert.Equal(t, constvars.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.HeaderFormName)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("unknown error maps to 500 with a generic message", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rr, errors.New("some internal detail"))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "some internal detail")
		assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})
}
