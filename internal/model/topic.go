package model

// Topic represents a row in the remote `topics` table. A topic belongs
// to a parent subject. Topic names are unique within their subject;
// the uniqueness check happens before insert, so two concurrent
// creations of the same name can still race (accepted weakness).
//
// Fields:
//  ID          – unique identifier generated by the remote store.
//  Name        – topic name (required, unique within the subject).
//  Description – optional free-text description.
//  UserID      – identifier of the owning user.
//  SubjectID   – identifier of the parent subject.
//  IsActive    – true while the topic is live.
//  IsDeleted   – true once the topic has been soft deleted.
//  CreatedAt   – timestamp of row creation.
//  UpdatedAt   – timestamp of last update.
type Topic struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id"`
	SubjectID   string `json:"subject_id"`
	IsActive    bool   `json:"is_active"`
	IsDeleted   bool   `json:"is_deleted"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
