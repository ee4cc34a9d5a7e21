package model

// Translation represents a row in the remote `translations` table.
// Each row maps a unique CMS key to per-language texts. Keys must be
// unique; creation checks existing rows before inserting. Rows are
// soft deleted via is_deleted only (no is_active pair here).
//
// Fields:
//  ID          – unique identifier generated by the remote store.
//  Key         – unique CMS key (required).
//  En          – English text.
//  Hi          – Hindi text.
//  Base        – fallback text used when a language field is empty.
//  IsPublished – whether the key is visible to clients.
//  IsDeleted   – true once the key has been soft deleted.
//  CreatedBy   – identifier of the user who created the row.
//  UpdatedBy   – identifier of the user who last updated the row.
//  CreatedAt   – timestamp of row creation.
//  UpdatedAt   – timestamp of last update.
type Translation struct {
	ID          string `json:"id,omitempty"`
	Key         string `json:"key"`
	En          string `json:"en,omitempty"`
	Hi          string `json:"hi,omitempty"`
	Base        string `json:"base,omitempty"`
	IsPublished bool   `json:"is_published"`
	IsDeleted   bool   `json:"is_deleted"`
	CreatedBy   string `json:"created_by,omitempty"`
	UpdatedBy   string `json:"updated_by,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
