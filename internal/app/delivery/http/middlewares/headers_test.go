package middlewares

import (
	"formbuilder-service/internal/app/config"
	"formbuilder-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequireFormNameHeader(t *testing.T) {
	m := newTestMiddlewares()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		formName, ok := r.Context().Value(ContextFormNameKey).(string)
		assert.True(t, ok, "form name should be set in context")
		assert.Equal(t, "Survey1", formName)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions", nil)
		req.Header.Set(constvars.HeaderFormName, "Survey1")

		rr := httptest.NewRecorder()
		m.RequireFormNameHeader(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is a 400 with an error body", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions", nil)

		rr := httptest.NewRecorder()
		m.RequireFormNameHeader(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), constvars.HeaderFormName)
	})

	t.Run("empty header is rejected like a missing one", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions", nil)
		req.Header.Set(constvars.HeaderFormName, "")

		rr := httptest.NewRecorder()
		m.RequireFormNameHeader(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRequireUserIDHeader(t *testing.T) {
	m := newTestMiddlewares()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(ContextUserIDKey).(string)
		assert.True(t, ok, "user id should be set in context")
		assert.Equal(t, "user-42", userID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/response", nil)
		req.Header.Set(constvars.HeaderUserID, "user-42")

		rr := httptest.NewRecorder()
		m.RequireUserIDHeader(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is a 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/response", nil)

		rr := httptest.NewRecorder()
		m.RequireUserIDHeader(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRequestID(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(ContextRequestIDKey).(string)
		})

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		m.RequestID(handler).ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps a client-provided id", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		m.RequestID(handler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/questions", nil)
	rr := httptest.NewRecorder()
	m.ErrorHandler(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
}
