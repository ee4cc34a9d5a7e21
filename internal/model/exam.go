package model

// Exam represents a row in the remote `exams` table. An exam is owned
// by the user who created it and carries the shared soft-delete flag
// pair: an active exam has is_active=true and is_deleted=false, a
// deleted exam has both flags inverted. Deletion never removes the row.
//
// Fields:
//  ID          – unique identifier generated by the remote store.
//  Name        – exam name (required on creation).
//  Description – optional free-text description.
//  UserID      – identifier of the owning user.
//  IsActive    – true while the exam is live.
//  IsDeleted   – true once the exam has been soft deleted.
//  CreatedAt   – timestamp of row creation.
//  UpdatedAt   – timestamp of last update.
type Exam struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id"`
	IsActive    bool   `json:"is_active"`
	IsDeleted   bool   `json:"is_deleted"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ExamWithSubjects is the nested read shape returned by the
// exam-with-subjects-and-topics endpoint. It is assembled from
// sequential fetches, not a join on the remote store.
type ExamWithSubjects struct {
	Exam
	Subjects []SubjectWithTopics `json:"subjects"`
}
