package middleware

import (
	"log/slog"
	"strings"
	"time"

	"labgas/config"
	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on.
// Requests under a skipped prefix are never logged.
type LoggerMiddleware struct {
	logger   *slog.Logger
	debug    bool
	skipped  []string
	userIDFn func(echo.Context) string
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, skipped ...string) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		debug:   cfg.Env.Debug,
		skipped: skipped,
	}
}

// WithUserID sets how the authenticated user is read back for the log line.
func (m *LoggerMiddleware) WithUserID(fn func(echo.Context) string) *LoggerMiddleware {
	m.userIDFn = fn

	return m
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || m.skip(c.Request().URL.Path) {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) skip(path string) bool {
	for _, prefix := range m.skipped {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()

	status := metrics.StatusOf(c, err)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if m.userIDFn != nil {
		if userID := m.userIDFn(c); userID != "" {
			fields = append(fields, slog.String("user_id", userID))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
