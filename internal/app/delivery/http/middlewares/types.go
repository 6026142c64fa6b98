package middlewares

import (
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig

	// CallbackLimiter guards the unauthenticated gateway callback endpoint.
	CallbackLimiter *ratelimiter.ResourceLimiter
}
