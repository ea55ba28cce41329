package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrInvalid  = errors.New("invalid_input")
	// ErrDuplicateClient indicates an exact (name, salary) collision on create.
	ErrDuplicateClient = errors.New("duplicate_client")
	// ErrInsufficientFunds indicates a withdrawal or transfer would drive a
	// balance below zero.
	ErrInsufficientFunds = errors.New("insufficient_funds")
)
