package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/repository"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
	audit "github.com/craftedbyaditya/practice-questions-backend/internal/service"
)

// AuthHandler bundles dependencies for the authenticate endpoint.
type AuthHandler struct {
	Users *repository.UserRepo
	Audit *audit.Publisher
}

// NewAuthHandler constructs an AuthHandler and panics if the user
// repository is missing. The audit publisher may be nil.
func NewAuthHandler(users *repository.UserRepo, a *audit.Publisher) *AuthHandler {
	if users == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users, Audit: a}
}

type authenticateReq struct {
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Role        json.RawMessage `json:"role"`
	IsAnonymous *bool           `json:"is_anonymous"`
}

// Authenticate handles POST /auth/authenticate. Despite the name this
// is an idempotent upsert keyed on user_id, not a credential check:
// the row is updated in place when it exists and inserted otherwise.
// Calling twice with the same user_id but a different name therefore
// changes the stored row instead of creating a second one.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return response.Error(c, http.StatusBadRequest, "user_id is required", nil)
	}

	// role, when present, must be a list of strings.
	var roles []string
	if len(req.Role) > 0 && string(req.Role) != "null" {
		if err := json.Unmarshal(req.Role, &roles); err != nil {
			return response.Error(c, http.StatusBadRequest, "role must be a list of strings", err)
		}
	}

	ctx := c.Request().Context()
	existing, err := h.Users.GetByID(ctx, req.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return storeFail(c, "users.get", err)
	}

	if existing != nil {
		// Update in place, touching only the fields present.
		patch := map[string]any{}
		if req.Name != "" {
			patch["name"] = req.Name
		}
		if req.Email != "" {
			patch["email"] = req.Email
		}
		if req.Phone != "" {
			patch["phone"] = req.Phone
		}
		if roles != nil {
			patch["role"] = roles
		}
		if req.IsAnonymous != nil {
			patch["is_anonymous"] = *req.IsAnonymous
		}
		if len(patch) == 0 {
			return response.Success(c, http.StatusOK, "user authenticated", existing)
		}
		updated, err := h.Users.Update(ctx, req.UserID, patch)
		if err != nil {
			return storeFail(c, "users.update", err)
		}
		_ = h.Audit.Record(ctx, "users", req.UserID, "updated", req.UserID)
		return response.Success(c, http.StatusOK, "user updated", updated)
	}

	u := &model.User{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Roles:  roles,
	}
	if req.IsAnonymous != nil {
		u.IsAnonymous = *req.IsAnonymous
	}
	created, err := h.Users.Insert(ctx, u)
	if err != nil {
		return storeFail(c, "users.insert", err)
	}
	_ = h.Audit.Record(ctx, "users", req.UserID, "created", req.UserID)
	return response.Success(c, http.StatusCreated, "user created", created)
}
