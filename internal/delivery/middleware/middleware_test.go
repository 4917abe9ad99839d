package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"labgas/config"
	deliverycontext "labgas/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\nwith newline")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return nil
	})

	require.NoError(t, handler(c))
	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, got, 36)
	assert.Equal(t, got, deliverycontext.GetRequestID(c))
}

func TestLoggerMiddleware_LogsWhenDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cilindros?x=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewLoggerMiddleware(logger, cfg, "/metrics").WithUserID(func(echo.Context) string { return "u-1" })
	handler := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	require.NoError(t, handler(c))
	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, `"user_id":"u-1"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestLoggerMiddleware_SkipsPrefixAndNonDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true

	e := echo.New()
	noop := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), httptest.NewRecorder())
	require.NoError(t, NewLoggerMiddleware(logger, debugCfg, "/metrics").Handle(noop)(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/stats", nil), httptest.NewRecorder())
	require.NoError(t, NewLoggerMiddleware(logger, &config.Config{}).Handle(noop)(c))

	assert.Empty(t, buf.String())
}
