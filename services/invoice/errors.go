package invoice

import (
	"fmt"
	"strings"
)

// ValidationError signals that required fields are missing or unusable.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidIDError signals a malformed invoice identifier, detected before any
// store access.
type InvalidIDError struct {
	ID string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid invoice id %q", e.ID)
}

// NotFoundError signals that no invoice matched. Update and delete also
// report ownership mismatches this way, so callers can't probe for other
// users' invoice ids.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return "invoice not found: " + e.ID
}

// UnauthorizedError signals that the invoice exists but belongs to a
// different owner. Only the read path distinguishes this from not-found.
type UnauthorizedError struct {
	ID string
}

func (e UnauthorizedError) Error() string {
	return "not authorized to access invoice: " + e.ID
}

// PersistenceError wraps an underlying store failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
