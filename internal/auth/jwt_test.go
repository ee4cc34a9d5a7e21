package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestJWTProviderResolvesSubjectAndRoles(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":   "U1",
		"roles": []any{"Teacher", "org"},
	}, testSecret)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+raw)

	id := JWTProvider{Secret: testSecret}.FromRequest(r)
	assert.Equal(t, "U1", id.UserID)
	assert.Equal(t, []string{"teacher", "org"}, id.Roles)
}

func TestJWTProviderFallsBackToUserIDClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"user_id": "U9"}, testSecret)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+raw)

	id := JWTProvider{Secret: testSecret}.FromRequest(r)
	assert.Equal(t, "U9", id.UserID)
	assert.Empty(t, id.Roles)
}

func TestJWTProviderRejectsBadSignature(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "U1"}, "other-secret")

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+raw)

	id := JWTProvider{Secret: testSecret}.FromRequest(r)
	assert.Equal(t, AnonymousUser, id.UserID)
	assert.Empty(t, id.Roles)
}

func TestJWTProviderMissingHeaderIsAnonymous(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	id := JWTProvider{Secret: testSecret}.FromRequest(r)
	assert.Equal(t, AnonymousUser, id.UserID)
}
