package repository

import "errors"

// ErrStoreUnavailable means the underlying store could not be opened
// or queried at all. This is the one non-domain failure the adapter
// can surface; everything else ("not found") is a normal value.
var ErrStoreUnavailable = errors.New("stats store unavailable")
