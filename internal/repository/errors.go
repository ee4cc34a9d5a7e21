// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers such
// as handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to mutate a resource owned by someone else, while
// ErrConflict signals a uniqueness violation such as creating a
// translation key that already exists.
package repository

import "errors"

// ErrNotFound is returned when a row does not exist or has already
// been soft deleted. Handlers should translate this into an HTTP 404
// response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own and they hold no elevated role. Handlers
// should translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert cannot proceed because of a
// uniqueness constraint, such as a duplicate translation key or a
// topic name already used within the same subject. Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
