package model

// User represents an application user row as stored in the remote
// `users` table. Users are created or updated idempotently by the
// authenticate endpoint; there are no credentials because identity
// arrives pre-resolved from the upstream gateway. The json tags match
// the remote column names so rows decode directly from the table
// endpoint.
//
// Fields:
//  UserID      – unique identifier of the user (primary key).
//  Name        – display name.
//  Email       – contact email address.
//  Phone       – contact phone number.
//  Roles       – list of role strings (e.g. student, teacher, org, admin).
//  IsApproved  – whether the account has been approved.
//  IsAnonymous – whether the user is an anonymous placeholder.
//  CreatedAt   – timestamp of row creation (set by the remote store).
//  UpdatedAt   – timestamp of last update.
type User struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Roles       []string `json:"role,omitempty"`
	IsApproved  bool     `json:"is_approved,omitempty"`
	IsAnonymous bool     `json:"is_anonymous,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}
