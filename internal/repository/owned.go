package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

// activeOnly are the filters shared by every read path that must hide
// soft-deleted rows.
func activeOnly() store.Filters {
	return store.Filters{"is_active": "true", "is_deleted": "false"}
}

// OwnedRepo implements the lifecycle shared by all owned soft-deletable
// resources (exams, subjects, topics). Every such row has an owner
// user_id and the is_active/is_deleted flag pair; the two flags are
// maintained as inverses, and the Active→Deleted transition is one-way.
// Embedding repos add their scoped listers on top.
type OwnedRepo[T any] struct {
	store *store.Client
	table string
}

// NewOwnedRepo builds a repo for one remote table. The row type T must
// carry json tags matching the remote columns.
func NewOwnedRepo[T any](s *store.Client, table string) OwnedRepo[T] {
	return OwnedRepo[T]{store: s, table: table}
}

// Table reports the remote table this repo operates on.
func (r *OwnedRepo[T]) Table() string { return r.table }

// Create inserts a new row and returns it as stored, including the
// generated identifier and timestamps.
func (r *OwnedRepo[T]) Create(ctx context.Context, row *T) (*T, error) {
	var out []T
	if err := r.store.Insert(ctx, r.table, row, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// ListActive returns all active rows matching the extra filters. The
// soft-delete exclusion is always applied; extra narrows by parent or
// owner columns. The result is never nil.
func (r *OwnedRepo[T]) ListActive(ctx context.Context, extra store.Filters) ([]T, error) {
	f := activeOnly()
	for col, val := range extra {
		f[col] = val
	}
	out := []T{}
	if err := r.store.Fetch(ctx, r.table, f, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActiveByID returns the active row with the given identifier, or
// ErrNotFound when it is absent or soft deleted.
func (r *OwnedRepo[T]) GetActiveByID(ctx context.Context, id string) (*T, error) {
	f := activeOnly()
	f["id"] = id
	var out []T
	if err := r.store.Fetch(ctx, r.table, f, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// Update applies a partial patch to the active row with the given
// identifier and returns the updated row. Only the columns present in
// patch change. ErrNotFound when the row is absent or soft deleted.
func (r *OwnedRepo[T]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	f := activeOnly()
	f["id"] = id
	var out []T
	if err := r.store.Update(ctx, r.table, patch, f, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// SoftDelete flips the row into the terminal Deleted state. It only
// matches rows that are still active, so a second delete of the same
// identifier reports ErrNotFound.
func (r *OwnedRepo[T]) SoftDelete(ctx context.Context, id string) error {
	f := activeOnly()
	f["id"] = id
	var out []T
	patch := map[string]any{"is_deleted": true, "is_active": false}
	if err := r.store.Update(ctx, r.table, patch, f, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		return ErrNotFound
	}
	return nil
}
