package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"labgas/config"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"
	mockservice "labgas/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware(&config.Config{}))
	e.GET("/api/cilindros/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, path := range []string{"/api/cilindros/1", "/api/cilindros/2", "/metrics"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/cilindros/:id", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestMiddleware_CountsHTTPErrors(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware(&config.Config{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestMiddleware_UsesAppErrorStatus(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware(&config.Config{}))
	e.GET("/api/cilindros/:id", func(c echo.Context) error {
		return domainerrors.ErrCylinderNotFound
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cilindros/9", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/cilindros/:id", "404")))
}

func TestHandler_ExposesRecordEvents(t *testing.T) {
	m := New()
	m.ObserveRecordEvent("cylinder", "created", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `labgas_records_events_total{action="created",entity="cylinder",outcome="published"} 1`))
}

func TestInstrumentPublisher(t *testing.T) {
	m := New()
	next := mockservice.NewMockEventPublisher(t)
	publisher := InstrumentPublisher(next, m)
	ctx := context.Background()

	next.EXPECT().PublishRecordEvent(ctx, mock.Anything).Return(nil).Once()
	next.EXPECT().PublishRecordEvent(ctx, mock.Anything).Return(assert.AnError).Once()
	next.EXPECT().Close().Return(nil)

	event := &service.RecordEvent{Entity: "sample", Action: "deleted", RecordID: 3}
	require.NoError(t, publisher.PublishRecordEvent(ctx, event))
	require.ErrorIs(t, publisher.PublishRecordEvent(ctx, event), assert.AnError)
	require.NoError(t, publisher.Close())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordEvents.WithLabelValues("sample", "deleted", "published")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordEvents.WithLabelValues("sample", "deleted", "failed")))
}

func TestPathAndEnabled(t *testing.T) {
	assert.Equal(t, "/metrics", Path(nil))
	assert.Equal(t, "/internal/metrics", Path(&config.Config{Metrics: &config.MetricsConfig{Path: "/internal/metrics"}}))
	assert.False(t, Enabled(&config.Config{}))
	assert.True(t, Enabled(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}))
}
