package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

// ExamRepo provides access to the remote `exams` table. The shared
// owned-resource lifecycle comes from OwnedRepo; only the owner-scoped
// lister is exam specific.
type ExamRepo struct {
	OwnedRepo[model.Exam]
}

// NewExamRepo constructs an ExamRepo backed by the given store client.
func NewExamRepo(s *store.Client) *ExamRepo {
	return &ExamRepo{NewOwnedRepo[model.Exam](s, "exams")}
}

// ListActiveByOwner returns the active exams created by one user.
func (r *ExamRepo) ListActiveByOwner(ctx context.Context, userID string) ([]model.Exam, error) {
	return r.ListActive(ctx, store.Filters{"user_id": userID})
}
