package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller-supplied argument is rejected
// before any request is sent.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidatePositiveID ensures an id-like value is a positive integer.
func ValidatePositiveID(id int, field string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidArgument, field, id)
	}
	return nil
}
