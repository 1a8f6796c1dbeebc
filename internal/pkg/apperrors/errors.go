package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Activity errors
var (
	ErrActivityNotFound = errors.New("activity not found")
)

// Participant errors
var (
	// ErrAlreadyRegistered is returned when a student signs up for an
	// activity they are already registered for.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered is returned when a student unregisters from an
	// activity they never signed up for.
	ErrNotRegistered = errors.New("student is not signed up for this activity")
)
