package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestIDHeader is set on every response so clients can quote the id
// when reporting failures.
const requestIDHeader = "X-Request-Id"

// RequestID assigns a UUID to each request unless the caller already
// supplied one, and echoes it back in the response headers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(requestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(requestIDHeader, rid)
			return next(c)
		}
	}
}

// RequestIDFrom reads the request id assigned by RequestID, or an
// empty string when the middleware did not run.
func RequestIDFrom(c echo.Context) string {
	if v, ok := c.Get("request_id").(string); ok {
		return v
	}
	return ""
}
