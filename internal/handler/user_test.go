package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
)

func TestProfileSelfAndElevated(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1")
	ev.seedUser("U2")

	rec, body := ev.call(t, ev.users.Profile, http.MethodGet, "/users/profile", "", "U1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []model.User
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "U1", rows[0].UserID)

	// A plain user cannot read another profile; an admin can.
	rec, _ = ev.call(t, ev.users.Profile, http.MethodGet, "/users/profile?userId=U2", "", "U1", "student")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = ev.call(t, ev.users.Profile, http.MethodGet, "/users/profile?userId=U2", "", "U3", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileUnknownUser(t *testing.T) {
	ev := newEnv(t)
	rec, _ := ev.call(t, ev.users.Profile, http.MethodGet, "/users/profile", "", "ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1")

	rec, body := ev.call(t, ev.users.UpdateProfile, http.MethodPut, "/users/updateProfile",
		`{"phone":"+911234567890"}`, "U1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.User
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "+911234567890", rows[0].Phone)
	assert.Equal(t, "user U1", rows[0].Name, "absent fields stay untouched")

	rec, _ = ev.call(t, ev.users.UpdateProfile, http.MethodPut, "/users/updateProfile",
		`{}`, "U1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllUsersListsEveryRow(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1")
	ev.seedUser("U2")

	rec, body := ev.call(t, ev.users.AllUsers, http.MethodGet, "/users/allUsers", "", "A1", "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var pages []struct {
		Items []model.User `json:"items"`
		Count int          `json:"count"`
	}
	body.dataInto(t, &pages)
	require.Len(t, pages, 1)
	assert.Equal(t, 2, pages[0].Count)
}
