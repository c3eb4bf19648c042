package booking

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("not allowed for this appointment")

	// Validation
	ErrInvalidSlot   = errors.New("unknown time slot")
	ErrMissingReason = errors.New("reason is required")
	ErrPastDate      = errors.New("date is in the past")

	// Conflict guard
	ErrSlotTaken = errors.New("time slot already booked")

	// Lifecycle / edit-request state
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrNotEditable       = errors.New("appointment is no longer editable")
	ErrEditPending       = errors.New("an edit request is already pending")
	ErrNoPendingEdit     = errors.New("no pending edit request")

	// Timing
	ErrWindowClosed = errors.New("within 24 hours of the appointment")
)
