package repository

import (
	"context"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

// TopicRepo provides access to the remote `topics` table. Topics are
// scoped by their parent subject, and topic names must stay unique
// within a subject.
type TopicRepo struct {
	OwnedRepo[model.Topic]
}

// NewTopicRepo constructs a TopicRepo backed by the given store client.
func NewTopicRepo(s *store.Client) *TopicRepo {
	return &TopicRepo{NewOwnedRepo[model.Topic](s, "topics")}
}

// ListActiveBySubject returns the active topics under one subject.
func (r *TopicRepo) ListActiveBySubject(ctx context.Context, subjectID string) ([]model.Topic, error) {
	return r.ListActive(ctx, store.Filters{"subject_id": subjectID})
}

// NameExists reports whether an active topic with the given name
// already lives under the subject. Creation checks this before
// inserting; a concurrent duplicate insert can still slip through,
// which is an accepted weakness of the check-then-insert flow.
func (r *TopicRepo) NameExists(ctx context.Context, subjectID, name string) (bool, error) {
	rows, err := r.ListActive(ctx, store.Filters{"subject_id": subjectID, "name": name})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
