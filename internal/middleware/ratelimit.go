package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/craftedbyaditya/practice-questions-backend/internal/config"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
)

// RateLimit returns a fixed-window request limiter backed by Redis.
// The window counter is keyed by caller identity and route so one
// noisy caller cannot starve the rest. When the limiter is disabled or
// Redis is unavailable the middleware degrades to a pass-through; the
// store behind this service is remote, so failing open costs less than
// failing the whole request path on a Redis hiccup.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			key := fmt.Sprintf("%s:%s:%s %s", cfg.Prefix, id.UserID, c.Request().Method, c.Path())

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				slog.Warn("ratelimit: redis unavailable, passing through", "err", err)
				return next(c)
			}
			if n == 1 {
				// First hit opens the window.
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				ttl, _ := rdb.TTL(ctx, key).Result()
				if ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				}
				return response.Error(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			}
			return next(c)
		}
	}
}
