package service

import "fmt"

// AuthenticationError means no identity was present at submission time.
// The dashboard responds by prompting a re-login.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// UploadError aggregates per-file upload failures. It is non-fatal: the
// submission proceeds with the files that made it, and the aggregate is
// surfaced as a warning rather than swallowed.
type UploadError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%d of %d images failed to upload", e.Failed, e.Total)
}

// PersistenceError means the final document write failed; the store's writes
// are atomic per document so no partial record is visible.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
