package poly

import "errors"

var (
	// ErrNilInput is returned when a coefficient slice, an operand or a
	// PRNG is nil.
	ErrNilInput = errors.New("nil input")

	// ErrInvalidArgument is returned when an argument is present but cannot
	// be used, such as an empty coefficient slice.
	ErrInvalidArgument = errors.New("invalid argument")
)
