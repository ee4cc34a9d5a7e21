// Package auth resolves the caller's identity and roles for each
// request. Authentication proper is delegated to an upstream gateway;
// this service trusts what the gateway forwards. The IdentityProvider
// interface keeps that trust isolated so a real token-verification
// mechanism can be substituted without touching any controller.
package auth

import (
	"net/http"
	"strings"
)

// AnonymousUser is the sentinel identifier used when no caller
// identity is present on the request.
const AnonymousUser = "anonymous"

// Role names recognised across the service. Roles are normalised to
// lower case when parsed.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleOrg     = "org"
	RoleStudent = "student"
	RoleUser    = "user"
)

// Identity is the resolved caller: an identifier and a normalised role
// set. A zero Identity means an anonymous caller with no roles.
type Identity struct {
	UserID string
	Roles  []string
}

// HasAny reports whether the identity holds at least one of the given
// roles. An empty argument list reports false.
func (id Identity) HasAny(roles ...string) bool {
	for _, want := range roles {
		for _, have := range id.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsElevated reports whether the identity is exempt from ownership
// checks. Only admin is elevated everywhere; resource-specific role
// sets are enforced at the route level.
func (id Identity) IsElevated() bool {
	return id.HasAny(RoleAdmin)
}

// CanManage applies the shared ownership rule: the owner of a row may
// mutate it, and so may an elevated caller.
func (id Identity) CanManage(ownerID string) bool {
	return id.UserID == ownerID || id.IsElevated()
}

// IdentityProvider extracts the caller identity from a request. The
// default HeaderProvider trusts gateway headers; JWTProvider verifies
// a bearer token instead.
type IdentityProvider interface {
	FromRequest(r *http.Request) Identity
}

// NormalizeRoles lower-cases, trims and deduplicates a role list.
// Empty entries are dropped; a nil result means no roles.
func NormalizeRoles(raw []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range raw {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
