package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the canonical record (or content document) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug means a create/update would violate slug uniqueness
	// within a kind. Creates are rejected rather than auto-suffixed so slugs
	// stay human-predictable.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrStoreUnavailable is a transient failure of one of the backing stores.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotAuthorized is returned by token verification on write paths.
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError rejects malformed input before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// PartialFailure reports a multi-step write that completed on one store but
// not the other. It is surfaced, never retried automatically: retrying a
// destructive operation across two independently-failing stores risks
// double-deletion side effects, so the caller decides.
type PartialFailure struct {
	Step string
	Err  error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("partial failure at %s: %v", e.Step, e.Err)
}

func (e *PartialFailure) Unwrap() error { return e.Err }
