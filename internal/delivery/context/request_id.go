// Package context carries request-scoped values between echo handlers, use
// cases and outgoing API calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey names a value stored in echo.Context or context.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is shared by the API, the dashboard and the dashboard's API client.
	HeaderXRequestID = "X-Request-Id"

	logKeyRequestID = "request_id"
	logKeyUserID    = "user_id"
)

// GetRequestID returns the id assigned by the request id middleware. Handlers
// mounted without it still get a fresh id for the response envelope.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithRequestScope stores requestID and a child of base tagged with it.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, base.With(slog.String(logKeyRequestID, requestID)))
}

// WithOwner tags the request logger with the authenticated user, so every use
// case log line of the request names the owner of the records it touches.
// Without a request logger ctx is returned unchanged.
func WithOwner(ctx context.Context, owner uuid.UUID) context.Context {
	logger := GetLogger(ctx)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(slog.String(logKeyUserID, owner.String())))
}

// GetLogger returns nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
