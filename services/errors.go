package services

import "errors"

var (
	// ErrNotFound is returned when a referenced quiz or question does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
)
