package hosts

import "errors"

// Engine error taxonomy. Every failure wraps one of these so callers can
// pick exit codes and messages with errors.Is. No error is ever retried,
// and no failure path leaves the target file half-written.
var (
	// ErrNotFound: the hosts file does not exist or could not be read.
	ErrNotFound = errors.New("hosts file not found")
	// ErrPermissionDenied: insufficient rights to read or replace the
	// file. The usual case on the system hosts file without elevation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrWriteFailed: the temporary file could not be written or the
	// atomic replace failed. The original file is left untouched.
	ErrWriteFailed = errors.New("write failed")
)
