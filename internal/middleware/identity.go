package middleware // middleware provides shared request processing for handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/auth"
)

// identityKey is the echo context key under which the resolved caller
// identity is stored.
const identityKey = "identity"

// AttachIdentity returns a middleware that resolves the caller
// identity through the configured provider and stores it in the
// request context. It runs before every role gate; resolution itself
// never rejects a request: anonymous callers pass through and are
// stopped later by RequireRoles where routes demand roles.
func AttachIdentity(p auth.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(identityKey, p.FromRequest(c.Request()))
			return next(c)
		}
	}
}

// IdentityFrom reads the resolved identity back out of the context.
// When no identity middleware ran, the anonymous identity is returned.
func IdentityFrom(c echo.Context) auth.Identity {
	if v, ok := c.Get(identityKey).(auth.Identity); ok {
		return v
	}
	return auth.Identity{UserID: auth.AnonymousUser}
}
