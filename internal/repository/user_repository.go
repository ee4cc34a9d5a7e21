package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

const usersTable = "users"

// UserRepo provides access to the remote `users` table. Users have no
// soft-delete pair; the authenticate flow composes an idempotent upsert
// from GetByID plus Insert or Update.
type UserRepo struct {
	store *store.Client
}

// NewUserRepo constructs a UserRepo backed by the given store client.
func NewUserRepo(s *store.Client) *UserRepo {
	return &UserRepo{store: s}
}

// GetByID returns the user row with the given identifier, or
// ErrNotFound when no such user exists.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var out []model.User
	if err := r.store.Fetch(ctx, usersTable, store.Filters{"user_id": userID}, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// List returns every user row. Gated to admins at the route level.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	if err := r.store.Fetch(ctx, usersTable, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert creates a new user row and returns it as stored.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) (*model.User, error) {
	var out []model.User
	if err := r.store.Insert(ctx, usersTable, u, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// Update applies a partial patch to the user row keyed by user_id and
// returns the updated row, or ErrNotFound when the user is absent.
func (r *UserRepo) Update(ctx context.Context, userID string, patch map[string]any) (*model.User, error) {
	var out []model.User
	if err := r.store.Update(ctx, usersTable, patch, store.Filters{"user_id": userID}, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}
