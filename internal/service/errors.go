package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks request validation failures.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when the upstream catalogue has no such instructor.
var ErrNotFound = errors.New("instructor not found")

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
