package services

import (
	"context"
	"log/slog"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole translates the pure authorization gate into the error taxonomy:
// a missing principal is unauthenticated, a role outside the allowed set is
// forbidden.
func (s *BaseService) RequireRole(ctx context.Context, principal *domain.Principal, allowed ...domain.Role) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}
	if !domain.Authorize(principal, allowed...) {
		s.LogDebug(ctx, "Principal lacks required role",
			slog.String("user_id", principal.UserID),
			slog.String("role", string(principal.Role)))
		return apperrors.ErrForbidden
	}
	return nil
}
