package repositories

import "errors"

// ErrNotFound is returned by lookups that match no record. Callers treat it
// as an absent value, not a failure.
var ErrNotFound = errors.New("record not found")
