package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
//
// Successful probe requests are logged once per path and then suppressed;
// failing probes are always logged at WARN. Other requests log at INFO,
// WARN for 4xx, and ERROR for 5xx.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seenProbe sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
				err = nil
			}

			path := c.Request().URL.Path
			status := c.Response().Status
			level := levelFor(status)

			if _, probe := probePaths[path]; probe {
				if status < 400 {
					if _, seen := seenProbe.LoadOrStore(path, struct{}{}); seen {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			}

			log.Log(context.WithoutCancel(c.Request().Context()), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
