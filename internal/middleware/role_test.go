package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedbyaditya/practice-questions-backend/internal/auth"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
)

// runGate drives a request through AttachIdentity and RequireRoles
// into a trivial handler and returns the recorder.
func runGate(t *testing.T, allowed []string, uid, roles string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if uid != "" {
		req.Header.Set(auth.HeaderUserID, uid)
	}
	if roles != "" {
		req.Header.Set(auth.HeaderRoles, roles)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ok := func(c echo.Context) error {
		return response.Success(c, http.StatusOK, "ok", nil)
	}
	h := AttachIdentity(auth.HeaderProvider{})(RequireRoles(allowed...)(ok))
	require.NoError(t, h(c))
	return rec
}

func TestRequireRolesEmptyAllowedAdmitsEveryone(t *testing.T) {
	rec := runGate(t, nil, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesNoRolesIsUnauthorized(t *testing.T) {
	rec := runGate(t, []string{auth.RoleTeacher}, "U1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, response.StatusFailure, env.Status)
	assert.Equal(t, "no roles present on request", env.Message)
}

func TestRequireRolesMismatchIsForbidden(t *testing.T) {
	rec := runGate(t, []string{auth.RoleTeacher, auth.RoleOrg}, "U1", "student")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesIntersectionPasses(t *testing.T) {
	rec := runGate(t, []string{auth.RoleTeacher, auth.RoleOrg}, "U1", `["student","org"]`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityFromWithoutMiddlewareIsAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	id := IdentityFrom(c)
	assert.Equal(t, auth.AnonymousUser, id.UserID)
	assert.Empty(t, id.Roles)
}
