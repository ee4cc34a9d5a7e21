package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

const translationsTable = "translations"

// TranslationRepo provides access to the remote `translations` table.
// Translations carry a publication flag and a soft-delete flag but no
// owner; keys must stay unique across live rows. The uniqueness check
// runs before insert (check-then-insert), so concurrent duplicate
// creation is an accepted weakness rather than a guaranteed invariant.
type TranslationRepo struct {
	store *store.Client
}

// NewTranslationRepo constructs a TranslationRepo backed by the given
// store client.
func NewTranslationRepo(s *store.Client) *TranslationRepo {
	return &TranslationRepo{store: s}
}

// ListLive returns every translation row that has not been soft
// deleted.
func (r *TranslationRepo) ListLive(ctx context.Context) ([]model.Translation, error) {
	out := []model.Translation{}
	if err := r.store.Fetch(ctx, translationsTable, store.Filters{"is_deleted": "false"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLiveByID returns the live row with the given identifier, or
// ErrNotFound when it is absent or deleted.
func (r *TranslationRepo) GetLiveByID(ctx context.Context, id string) (*model.Translation, error) {
	var out []model.Translation
	f := store.Filters{"id": id, "is_deleted": "false"}
	if err := r.store.Fetch(ctx, translationsTable, f, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// KeyExists reports whether a live row already uses the given key.
func (r *TranslationRepo) KeyExists(ctx context.Context, key string) (bool, error) {
	var out []model.Translation
	f := store.Filters{"key": key, "is_deleted": "false"}
	if err := r.store.Fetch(ctx, translationsTable, f, &out); err != nil {
		return false, err
	}
	return len(out) > 0, nil
}

// Insert creates new translation rows and returns them as stored. It
// accepts a batch so bulk creation is a single store call.
func (r *TranslationRepo) Insert(ctx context.Context, rows []model.Translation) ([]model.Translation, error) {
	out := []model.Translation{}
	if err := r.store.Insert(ctx, translationsTable, rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial patch to the live row with the given
// identifier and returns the updated row.
func (r *TranslationRepo) Update(ctx context.Context, id string, patch map[string]any) (*model.Translation, error) {
	var out []model.Translation
	f := store.Filters{"id": id, "is_deleted": "false"}
	if err := r.store.Update(ctx, translationsTable, patch, f, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// SoftDelete marks the live row with the given identifier as deleted.
// A second delete of the same identifier reports ErrNotFound because
// the filter only matches live rows.
func (r *TranslationRepo) SoftDelete(ctx context.Context, id string) error {
	var out []model.Translation
	f := store.Filters{"id": id, "is_deleted": "false"}
	if err := r.store.Update(ctx, translationsTable, map[string]any{"is_deleted": true}, f, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		return ErrNotFound
	}
	return nil
}
