package middlewares

import (
	"formbuilder-service/internal/app/config"

	"go.uber.org/zap"
)

type contextKey string

// Context keys populated by the middleware chain and read by controllers.
const (
	ContextFormNameKey  contextKey = "formName"
	ContextUserIDKey    contextKey = "userId"
	ContextRequestIDKey contextKey = "requestId"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}
