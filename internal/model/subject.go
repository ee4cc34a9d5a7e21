package model

// Subject represents a row in the remote `subjects` table. A subject
// belongs to a parent exam and follows the same ownership and
// soft-delete policy as Exam.
//
// Fields:
//  ID          – unique identifier generated by the remote store.
//  Name        – subject name (required on creation).
//  Description – optional free-text description.
//  UserID      – identifier of the owning user.
//  ExamID      – identifier of the parent exam.
//  IsActive    – true while the subject is live.
//  IsDeleted   – true once the subject has been soft deleted.
//  CreatedAt   – timestamp of row creation.
//  UpdatedAt   – timestamp of last update.
type Subject struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id"`
	ExamID      string `json:"exam_id"`
	IsActive    bool   `json:"is_active"`
	IsDeleted   bool   `json:"is_deleted"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// SubjectWithTopics pairs a subject with its active topics for nested
// exam reads.
type SubjectWithTopics struct {
	Subject
	Topics []Topic `json:"topics"`
}
