package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/repository"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
	audit "github.com/craftedbyaditya/practice-questions-backend/internal/service"
)

// UserHandler bundles dependencies for profile endpoints.
type UserHandler struct {
	Users *repository.UserRepo
	Audit *audit.Publisher
}

// NewUserHandler constructs a UserHandler and panics if the user
// repository is missing.
func NewUserHandler(users *repository.UserRepo, a *audit.Publisher) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Audit: a}
}

// Profile handles GET /users/profile?userId=. Without a userId the
// requester's own profile is returned; reading someone else's profile
// requires an elevated role.
func (h *UserHandler) Profile(c echo.Context) error {
	id := ident(c)
	target := strings.TrimSpace(c.QueryParam("userId"))
	if target == "" {
		target = id.UserID
	}
	if target != id.UserID && !id.IsElevated() {
		return response.Error(c, http.StatusForbidden, "cannot view another user's profile", nil)
	}

	u, err := h.Users.GetByID(c.Request().Context(), target)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "user not found", nil)
		}
		return storeFail(c, "users.get", err)
	}
	return response.Success(c, http.StatusOK, "profile fetched", u)
}

// AllUsers handles GET /users/allUsers. The route is gated to admins.
func (h *UserHandler) AllUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return storeFail(c, "users.list", err)
	}
	return response.Success(c, http.StatusOK, "users fetched", list(users))
}

type updateProfileReq struct {
	UserID string  `json:"user_id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
}

// UpdateProfile handles PUT /users/updateProfile. Only the fields
// present in the body are written. Updating another user's profile
// requires an elevated role.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id := ident(c)
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	target := strings.TrimSpace(req.UserID)
	if target == "" {
		target = id.UserID
	}
	if target != id.UserID && !id.IsElevated() {
		return response.Error(c, http.StatusForbidden, "cannot update another user's profile", nil)
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if len(patch) == 0 {
		return response.Error(c, http.StatusBadRequest, "no fields to update", nil)
	}

	ctx := c.Request().Context()
	updated, err := h.Users.Update(ctx, target, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "user not found", nil)
		}
		return storeFail(c, "users.update", err)
	}
	_ = h.Audit.Record(ctx, "users", target, "updated", id.UserID)
	return response.Success(c, http.StatusOK, "profile updated", updated)
}
