package domain

import "errors"

// ErrNotFound marks lookups for records that do not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict marks writes that lost to a concurrent update, such as a
// workflow transition against a stale status.
var ErrConflict = errors.New("conflict")
