package colour

import "errors"

var (
	// ErrInput reports an image that cannot be read, decoded, or has no pixels.
	ErrInput = errors.New("invalid input image")

	// ErrInvalidArgument reports an unknown harmony rule or preset scheme name,
	// a malformed colour, or an empty seed palette.
	ErrInvalidArgument = errors.New("invalid argument")
)
