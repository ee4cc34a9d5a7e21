package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

const enrollmentsTable = "enrollments"

// EnrollmentRepo provides access to the remote `enrollments` table.
// One row exists per user; enroll and unenroll always read the full
// exam id collection, rewrite it and write it back. Two concurrent
// writers can interleave those steps (last writer wins at the store).
type EnrollmentRepo struct {
	store *store.Client
}

// NewEnrollmentRepo constructs an EnrollmentRepo backed by the given
// store client.
func NewEnrollmentRepo(s *store.Client) *EnrollmentRepo {
	return &EnrollmentRepo{store: s}
}

// GetByUser returns the enrollment row for one user, or ErrNotFound
// when the user has never enrolled.
func (r *EnrollmentRepo) GetByUser(ctx context.Context, userID string) (*model.Enrollment, error) {
	var out []model.Enrollment
	if err := r.store.Fetch(ctx, enrollmentsTable, store.Filters{"user_id": userID}, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// ListAll returns every enrollment row.
func (r *EnrollmentRepo) ListAll(ctx context.Context) ([]model.Enrollment, error) {
	out := []model.Enrollment{}
	if err := r.store.Fetch(ctx, enrollmentsTable, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert creates the first enrollment row for a user.
func (r *EnrollmentRepo) Insert(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	var out []model.Enrollment
	if err := r.store.Insert(ctx, enrollmentsTable, e, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// SetExamIDs replaces the stored exam id collection for one user.
func (r *EnrollmentRepo) SetExamIDs(ctx context.Context, userID string, examIDs []string) (*model.Enrollment, error) {
	var out []model.Enrollment
	patch := map[string]any{"exam_ids": examIDs}
	if err := r.store.Update(ctx, enrollmentsTable, patch, store.Filters{"user_id": userID}, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}
