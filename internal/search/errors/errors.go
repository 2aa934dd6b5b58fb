package errors

import "errors"

var (
	ErrNotFound = errors.New("contract not found")

	ErrInvalidID = errors.New("invalid ID format")

	ErrInvalidDateRange = errors.New("to date must not be before from date")
)
