package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
)

// RequireRoles returns a middleware enforcing that the caller holds at
// least one of the allowed roles. The check is a pure set-intersection
// test against the identity resolved by AttachIdentity; it never
// consults the database. Policy:
//   - empty allowed set: allow unconditionally
//   - caller has no roles: 401, authorization missing
//   - no intersection: 403, insufficient role
func RequireRoles(allowed ...string) echo.MiddlewareFunc {
	// Build a set for constant-time lookups.
	set := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		set[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(set) == 0 {
				return next(c)
			}
			id := IdentityFrom(c)
			if len(id.Roles) == 0 {
				return response.Error(c, http.StatusUnauthorized, "no roles present on request", nil)
			}
			for _, r := range id.Roles {
				if set[r] {
					return next(c)
				}
			}
			return response.Error(c, http.StatusForbidden, "insufficient role for this operation", nil)
		}
	}
}
