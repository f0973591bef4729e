package middlewares

import (
	"context"
	"formbuilder-service/internal/pkg/constvars"
	"formbuilder-service/internal/pkg/exceptions"
	"formbuilder-service/internal/pkg/utils"
	"net/http"
)

// RequireFormNameHeader rejects requests without a form-name header. The
// header is the only thing tying a question or response to its form, so an
// absent value must never fall through as an empty-string filter.
func (m *Middlewares) RequireFormNameHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		formName := r.Header.Get(constvars.HeaderFormName)
		if formName == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingRequiredHeader(constvars.HeaderFormName))
			return
		}

		ctx := context.WithValue(r.Context(), ContextFormNameKey, formName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserIDHeader rejects requests without a user-id header.
func (m *Middlewares) RequireUserIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(constvars.HeaderUserID)
		if userID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingRequiredHeader(constvars.HeaderUserID))
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
