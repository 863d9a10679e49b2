// Package store defines the errors shared by every repository backend, so
// handlers can map them to HTTP statuses without knowing which backend is
// active.
package store

import "errors"

// ErrNotFound is returned when no row matches the requested id or key.
var ErrNotFound = errors.New("record not found")
