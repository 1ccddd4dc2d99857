package listing

import "errors"

var (
	ErrNotFound        = errors.New("listing not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
	ErrAlreadyReviewed = errors.New("listing already reviewed by this user")
)
