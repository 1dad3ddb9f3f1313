package usecase

import (
	"errors"
	"fmt"

	"movie-booking/pkg/utils"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrMovieNotFound     = fmt.Errorf("movie %w", ErrNotFound)
	ErrBookingNotFound   = fmt.Errorf("booking %w", ErrNotFound)
	ErrInsufficientSeats = errors.New("not enough seats available")
)

// ValidationError carries field-level messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
