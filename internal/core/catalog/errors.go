package catalog

import (
	"errors"
	"fmt"
)

// Validation errors returned by catalog commands.
var (
	ErrInvalidPrice     = errors.New("product price must be greater than or equal to 0")
	ErrInvalidBrandName = errors.New("brand name must not be blank")
)

// InvalidStateError reports data that a correctly guarded store can never
// produce, such as a negative price or a product pointing at a missing brand.
// Callers treat it as a programming error, not a business outcome.
type InvalidStateError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s %d: %s", e.Entity, e.ID, e.Reason)
}

// IsInvalidState reports whether err wraps an *InvalidStateError.
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}
