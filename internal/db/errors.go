package db

import "errors"

// Sentinel errors for catalog source operations.
var (
	ErrKeyNotFound     = errors.New("db: key not found")
	ErrCatalogNotFound = errors.New("db: catalog not seeded")
)

// Op constants map to the underlying command names for error context.
const (
	OpGet  = "GET"
	OpSet  = "SET"
	OpPing = "PING"
	OpRead = "READ"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
