package services

import "errors"

// Sentinel errors the controllers translate into HTTP status codes.
var (
	// ErrNotFound: a referenced user, food item or goals row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation: rejected input, nothing was written to the store.
	ErrValidation = errors.New("validation failed")
	// ErrEmailTaken: unique email constraint on registration.
	ErrEmailTaken = errors.New("email already registered")
)
