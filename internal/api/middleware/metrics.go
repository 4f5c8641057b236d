// Package middleware provides Echo middleware for the mws-sync API.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/mws-toolkit/internal/metrics"
)

// probePaths are excluded from request metrics. Each maps to the probe
// label of the up/down gauge it updates; an empty label updates nothing.
var probePaths = map[string]string{
	"/metrics": "",
	"/healthz": "healthz",
	"/readyz":  "readyz",
}

// unmatchedPath labels requests that matched no route, keeping scanners
// from creating a series per URL.
const unmatchedPath = "unmatched"

// Metrics returns Echo middleware that records request duration and status,
// labelled by route template rather than raw URL.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if probe, ok := probePaths[path]; ok {
				err := next(c)
				updateProbe(probe, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo's error handler write the status before it is read.
				c.Error(err)
				err = nil
			}

			if path == "" || strings.HasSuffix(path, "/*") {
				path = unmatchedPath
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func updateProbe(probe string, status int) {
	if probe == "" {
		return
	}
	if status >= 200 && status < 300 {
		metrics.ProbeUp.WithLabelValues(probe).Set(1)
	} else {
		metrics.ProbeUp.WithLabelValues(probe).Set(0)
	}
}
