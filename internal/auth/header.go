package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Default header names carrying the pre-resolved identity and roles.
const (
	HeaderUserID = "X-User-Id"
	HeaderRoles  = "X-User-Roles"
)

// HeaderProvider reads the caller identity from trusted request
// headers. The role header accepts either a JSON array or a
// comma-separated list; both decode into the same normalised set. A
// missing identity header yields the anonymous sentinel, and a missing
// role header yields an empty role set; callers are never granted an
// implicit default role.
type HeaderProvider struct{}

// FromRequest resolves the identity carried by the request headers.
func (HeaderProvider) FromRequest(r *http.Request) Identity {
	uid := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if uid == "" {
		uid = AnonymousUser
	}
	return Identity{
		UserID: uid,
		Roles:  ParseRoleHeader(r.Header.Get(HeaderRoles)),
	}
}

// ParseRoleHeader decodes the role header value. Values starting with
// `[` are treated as a JSON string array; anything else is split on
// commas. Unparseable JSON yields no roles rather than a guess.
func ParseRoleHeader(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var roles []string
		if err := json.Unmarshal([]byte(raw), &roles); err != nil {
			return nil
		}
		return NormalizeRoles(roles)
	}
	return NormalizeRoles(strings.Split(raw, ","))
}
