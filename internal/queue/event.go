// Package queue defines message payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// AuditEvent is published after every successful mutation (create,
// update, soft delete, enroll, unenroll). It carries enough context
// for downstream consumers to log or trigger analytics without
// querying the remote store.
type AuditEvent struct {
	ID         string `json:"id"`          // unique event id
	Entity     string `json:"entity"`      // table name, e.g. "exams"
	EntityID   string `json:"entity_id"`   // identifier of the affected row
	Action     string `json:"action"`      // created | updated | deleted | enrolled | unenrolled
	ActorID    string `json:"actor_id"`    // identifier of the requesting user
	OccurredAt string `json:"occurred_at"` // RFC-3339 UTC timestamp
}
