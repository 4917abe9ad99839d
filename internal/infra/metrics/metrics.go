// Package metrics exposes Prometheus collectors for the HTTP API and record events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"labgas/config"
	"labgas/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "labgas"

// Metrics holds the application collectors and the registry serving them.
type Metrics struct {
	Registry *prometheus.Registry

	inFlight     prometheus.Gauge
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	recordEvents *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		recordEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "events_total",
			Help:      "Record change events by entity, action and publish outcome.",
		}, []string{"entity", "action", "outcome"}),
	}

	m.Registry.MustRegister(
		m.inFlight,
		m.requests,
		m.duration,
		m.recordEvents,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records request count and latency labelled by the matched
// route template, so /api/cilindros/1 and /api/cilindros/2 share a series.
func (m *Metrics) Middleware(cfg *config.Config) echo.MiddlewareFunc {
	skipPath := Path(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == skipPath {
				return next(c)
			}

			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			err := next(c)

			status := StatusOf(c, err)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// StatusOf returns the status err will be answered with once the error
// handler runs, or the written status when err is nil.
func StatusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// ObserveRecordEvent counts one record change event.
func (m *Metrics) ObserveRecordEvent(entity, action string, published bool) {
	outcome := "published"
	if !published {
		outcome = "failed"
	}

	m.recordEvents.WithLabelValues(entity, action, outcome).Inc()
}

// Enabled reports whether the metrics endpoint should be served.
func Enabled(cfg *config.Config) bool {
	return cfg != nil && cfg.Metrics != nil && cfg.Metrics.Enabled
}

// Path returns the configured metrics endpoint path.
func Path(cfg *config.Config) string {
	if cfg == nil || cfg.Metrics == nil || cfg.Metrics.Path == "" {
		return "/metrics"
	}

	return cfg.Metrics.Path
}
