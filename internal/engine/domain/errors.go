package domain

import "errors"

// Error taxonomy. Every engine operation either succeeds or fails with
// exactly one of these kinds, wrapped with context via fmt.Errorf("%w: ...").
// Callers classify with errors.Is; the HTTP layer maps kinds to statuses.
var (
	// ErrValidation is returned for malformed input: a rating outside 1..5,
	// a non-positive offer price, a provider registering without documents.
	ErrValidation = errors.New("validation error")

	// ErrPermission is returned when the session's role or verification
	// status does not allow the attempted action.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidState is returned when the operation is not legal from the
	// job or offer's current lifecycle state.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for duplicate submissions: a second pending
	// offer from the same provider on the same job, a second review in the
	// same direction, a registration reusing an email.
	ErrConflict = errors.New("conflict")
)
