package pagination

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageSize is returned when the page size is zero or negative.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrIndexOutOfRange is returned when GoTo targets a page that does not exist.
	ErrIndexOutOfRange = errors.New("page index out of range")

	// ErrEmptyInput is returned when direct navigation is attempted without pages.
	ErrEmptyInput = errors.New("no pages to navigate")
)

// RangeError describes a rejected page index.
type RangeError struct {
	Index     int
	PageCount int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange, e.Index, e.PageCount)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
