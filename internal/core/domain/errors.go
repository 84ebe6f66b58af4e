package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrAuthRequired indicates the content API requires a token but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPublishInFlight indicates a publish is already running.
	// A second submission while one is in flight would risk duplicate
	// records server-side, so it is refused outright.
	ErrPublishInFlight = errors.New("publish in flight")

	// ErrPublishCancelled indicates the user declined the confirmation prompt.
	// The batch is left untouched.
	ErrPublishCancelled = errors.New("publish cancelled")
)

// ValidationError reports locally-detectable precondition failures on a
// ChapterBatch. It is always raised before any network call is made, so a
// caller seeing it knows nothing was written.
type ValidationError struct {
	// Issues holds one human-readable message per failed precondition.
	Issues []string
}

// Error returns all issues joined into one message.
func (e *ValidationError) Error() string {
	return "invalid batch: " + strings.Join(e.Issues, "; ")
}

// PartialPublishError reports a create-flow submission that failed after
// some, but not all, parts were saved. Succeeded is exact: parts are
// submitted strictly in order, one at a time.
type PartialPublishError struct {
	// Succeeded is the number of parts saved before the failure.
	Succeeded int

	// Total is the number of parts in the batch.
	Total int

	// Err is the underlying transport or server error.
	Err error
}

// Error describes how far the submission got.
func (e *PartialPublishError) Error() string {
	return fmt.Sprintf("published %d of %d parts: %v", e.Succeeded, e.Total, e.Err)
}

// Unwrap returns the underlying error.
func (e *PartialPublishError) Unwrap() error {
	return e.Err
}
