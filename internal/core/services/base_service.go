package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/shop_pos_app/internal/middleware"
)

// EventTracker receives analytics events. utils.PosthogClientWrapper satisfies it.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Events EventTracker
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Track sends an analytics event when a tracker is configured.
func (s *BaseService) Track(userID, event string, properties map[string]any) {
	if s.Events == nil {
		return
	}
	s.Events.Enqueue(userID, event, properties)
}
