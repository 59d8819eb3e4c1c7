package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBuilder     = errors.New("invalid bike builder")
	ErrInvalidBike        = errors.New("invalid bike")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrBikeNotFound       = errors.New("bike not found")
	ErrCatalogNotFound    = errors.New("catalog not found")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrBikeUnavailable    = errors.New("bike unavailable")
	ErrBikeNotRented      = errors.New("bike not rented")
	ErrInvalidBikeType    = errors.New("invalid bike type")
	ErrDuplicateBike      = errors.New("duplicate bike id")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInputValidation    = errors.New("input validation failed")
)

// RentalError is the umbrella error returned by orchestration steps.
// Msg keeps the message of the failure it wraps; Err may be nil for
// faults that have no sentinel (recovered panics).
type RentalError struct {
	Op  string
	Msg string
	Err error
}

func (e *RentalError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *RentalError) Unwrap() error {
	return e.Err
}

// NewRentalError wraps err, preserving its message.
func NewRentalError(op string, err error) *RentalError {
	return &RentalError{Op: op, Msg: err.Error(), Err: err}
}

// IsRentalError reports whether err is or wraps a *RentalError.
func IsRentalError(err error) bool {
	var re *RentalError
	return errors.As(err, &re)
}

// wrapf annotates a sentinel with a detail message while keeping it matchable by errors.Is.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
