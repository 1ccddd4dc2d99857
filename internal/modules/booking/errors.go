package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("booking not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation error")
	ErrInvalidDates       = errors.New("check-out date must be after check-in date")
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingUnavailable = errors.New("this listing is not available")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrNotPending         = errors.New("only pending bookings can be confirmed")
)

// CapacityExceededError carries the listing capacity so the client error can
// name the limit.
type CapacityExceededError struct {
	MaxGuests int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("maximum %d guests allowed", e.MaxGuests)
}
