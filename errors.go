package natorder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an argument or a configuration is invalid.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when the column does not address a field of a row.
	ErrOutOfRange = errors.New("out of range")
)

// ValidationError is a validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", err.Field, err.Message)
}

// Unwrap returns ErrInvalidArgument.
func (err *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// ColumnRangeError is returned when a row has no field at the column.
type ColumnRangeError struct {
	Row    int
	Column int
	Width  int
}

func (err *ColumnRangeError) Error() string {
	return fmt.Sprintf("column %d is out of range at row %d (width %d)", err.Column, err.Row, err.Width)
}

// Unwrap returns ErrOutOfRange.
func (err *ColumnRangeError) Unwrap() error {
	return ErrOutOfRange
}
