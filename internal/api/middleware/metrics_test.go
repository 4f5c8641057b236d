package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/mws-toolkit/internal/api/middleware"
	"github.com/donaldgifford/mws-toolkit/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response by route template",
			method: http.MethodGet,
			route:  "/api/v1/orders/:id",
			target: "/api/v1/orders/902-3159896-1390916",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records status from returned error",
			method: http.MethodGet,
			route:  "/api/v1/orders",
			target: "/api/v1/orders",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusTeapot, "short and stout")
			},
			wantStatus: http.StatusTeapot,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/sync/orders",
			target: "/api/v1/sync/orders",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_ProbesSkipRequestMetrics(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		wantUp  float64
		probeID string
	}{
		{
			name:    "healthz ok",
			path:    "/healthz",
			status:  http.StatusOK,
			wantUp:  1,
			probeID: "healthz",
		},
		{
			name:    "readyz failing",
			path:    "/readyz",
			status:  http.StatusServiceUnavailable,
			wantUp:  0,
			probeID: "readyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			require.Equal(t, tt.status, rec.Code)

			assert.InDelta(t, tt.wantUp,
				testutil.ToFloat64(metrics.ProbeUp.WithLabelValues(tt.probeID)), 0)
			assert.InDelta(t, 0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.path, strconv.Itoa(tt.status),
			)), 0)
		})
	}
}

