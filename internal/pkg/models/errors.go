package models

import "errors"

// Sentinel errors shared across service layers. Use cases wrap these with
// fmt.Errorf("%w: ...") and handlers map them to HTTP status codes with
// errors.Is at the boundary.
var (
	// ErrValidation indicates malformed or missing input supplied by the caller.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced ride, application, or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state-machine precondition was violated, e.g.
	// a second driver accepting an already-accepted ride.
	ErrConflict = errors.New("conflict")

	// ErrInvalidTransition indicates an attempt to mutate a record that has
	// already reached a terminal state.
	ErrInvalidTransition = errors.New("invalid transition")
)
