package series

import "errors"

var (
	// ErrInvalidIndex is returned when a coefficient is requested at a negative index.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidExponent is returned by Pow for a negative exponent.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrTypeMismatch is returned when an operand is neither a number nor a *Series.
	ErrTypeMismatch = errors.New("type mismatch")
)
