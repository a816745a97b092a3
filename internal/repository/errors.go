package repository

import "errors"

// ErrNotFound is returned when a requested document does not exist or the
// given id is not a valid object id.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique index rejects a write
// (duplicate username, email, or subscriber address).
var ErrDuplicate = errors.New("duplicate key")
