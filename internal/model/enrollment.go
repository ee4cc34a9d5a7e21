package model

// Enrollment represents a row in the remote `enrollments` table.
// Exactly one row exists per user; enroll and unenroll rewrite the
// whole exam id collection (read-then-write, last writer wins at the
// remote store). Enrollments are never hard deleted.
//
// Fields:
//  ID        – unique identifier generated by the remote store.
//  UserID    – identifier of the enrolled user (unique).
//  ExamIDs   – identifiers of the exams the user is enrolled in.
//  CreatedAt – timestamp of row creation.
//  UpdatedAt – timestamp of last update.
type Enrollment struct {
	ID        string   `json:"id,omitempty"`
	UserID    string   `json:"user_id"`
	ExamIDs   []string `json:"exam_ids"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// EnrollmentDetail joins an enrollment with the user row and the exam
// rows it references. Used by the view-all endpoint; assembled via
// per-id fetches against the remote store.
type EnrollmentDetail struct {
	Enrollment
	User  *User  `json:"user,omitempty"`
	Exams []Exam `json:"exams"`
}
