package schedule

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date")
)
