package review

import "errors"

var (
	ErrNotFound        = errors.New("review not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
	ErrListingNotFound = errors.New("listing not found")
	ErrConflict        = errors.New("listing already reviewed by this user")
)
