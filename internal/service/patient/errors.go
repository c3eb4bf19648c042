package patient

import "errors"

var (
	ErrNotFound     = errors.New("patient not found")
	ErrMissingName  = errors.New("full name is required")
	ErrInvalidPhone = errors.New("invalid phone number")
)
