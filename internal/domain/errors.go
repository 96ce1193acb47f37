package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is missing or hidden by the active-record filter
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when the same user already has an active review for the product
	ErrConflict = errors.New("conflict occurred")

	// ErrForbidden is returned when the actor does not own or administer the resource
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
