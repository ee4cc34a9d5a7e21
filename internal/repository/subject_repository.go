package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

// SubjectRepo provides access to the remote `subjects` table. Subjects
// are additionally scoped by their parent exam.
type SubjectRepo struct {
	OwnedRepo[model.Subject]
}

// NewSubjectRepo constructs a SubjectRepo backed by the given store client.
func NewSubjectRepo(s *store.Client) *SubjectRepo {
	return &SubjectRepo{NewOwnedRepo[model.Subject](s, "subjects")}
}

// ListActiveByExam returns the active subjects under one exam.
func (r *SubjectRepo) ListActiveByExam(ctx context.Context, examID string) ([]model.Subject, error) {
	return r.ListActive(ctx, store.Filters{"exam_id": examID})
}
