package errs

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict covers unique violations.
	ErrConflict = errors.New("conflict")
	// ErrInvalid covers values the column types cannot hold.
	ErrInvalid = errors.New("invalid record")
)
