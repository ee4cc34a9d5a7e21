package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider verifies an HS256 bearer token and reads the identity
// from its claims. It is the drop-in replacement for HeaderProvider
// when the service runs without a trusted gateway in front of it
// (IDENTITY_MODE=jwt). The subject or user_id claim carries the
// identifier and the roles claim carries the role list.
type JWTProvider struct {
	Secret string
}

// FromRequest parses and verifies the Authorization bearer token. Any
// failure (missing header, bad signature, wrong algorithm) resolves
// to the anonymous identity with no roles, which downstream gates then
// reject on protected routes.
func (p JWTProvider) FromRequest(r *http.Request) Identity {
	anon := Identity{UserID: AnonymousUser}
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return anon
	}
	raw := strings.TrimPrefix(h, "Bearer ")

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !tok.Valid {
		return anon
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return anon
	}

	id := anon
	if v, ok := claims["sub"].(string); ok && v != "" {
		id.UserID = v
	} else if v, ok := claims["user_id"].(string); ok && v != "" {
		id.UserID = v
	}
	if vs, ok := claims["roles"].([]interface{}); ok {
		var roles []string
		for _, v := range vs {
			if s, ok := v.(string); ok {
				roles = append(roles, s)
			}
		}
		id.Roles = NormalizeRoles(roles)
	}
	return id
}
