package envfile

import "fmt"

// SyncError records the operation, path and failure class of a failed pass.
// It unwraps to both Kind (one of the internal/errors sentinels) and Err.
type SyncError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *SyncError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newSyncError(op, path string, kind, err error) *SyncError {
	return &SyncError{Op: op, Path: path, Kind: kind, Err: err}
}
