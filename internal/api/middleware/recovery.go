package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const stackSize = 4096

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request ID, and returns a 500 to the client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				buf := make([]byte, stackSize)
				n := runtime.Stack(buf, false)

				attrs := []any{
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(buf[:n]),
				}
				if id, ok := c.Get(requestIDKey).(string); ok {
					attrs = append(attrs, "request_id", id)
				}
				log.Error("panic recovered", attrs...)

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
