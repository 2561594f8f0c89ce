package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// contextKey is a private type for context values set by middleware.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context, falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetPrincipalFromContext retrieves the authenticated principal from the Gin
// request context. It returns nil and false when the request carried no valid
// session.
func GetPrincipalFromContext(c *gin.Context) (*domain.Principal, bool) {
	principal, ok := c.Request.Context().Value(principalCtxKey).(*domain.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}
