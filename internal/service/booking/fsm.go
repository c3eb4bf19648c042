package booking

import (
	"time"

	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
)

// editWindow is how long before the appointment a patient may still
// cancel or propose an edit.
const editWindow = 24 * time.Hour

// Status transition table. scheduled is the only non-terminal state;
// completed, cancelled and no_show accept no further transitions.
var transitions = map[entappt.Status]map[entappt.Status]bool{
	entappt.StatusScheduled: {
		entappt.StatusCompleted: true,
		entappt.StatusCancelled: true,
		entappt.StatusNoShow:    true,
	},
	entappt.StatusCompleted: {},
	entappt.StatusCancelled: {},
	entappt.StatusNoShow:    {},
}

// canTransition reports whether from → to is a legal lifecycle move.
// Same-state writes are allowed (partial updates re-sending the current
// status must not fail).
func canTransition(from, to entappt.Status) bool {
	if from == to {
		return true
	}
	return transitions[from][to]
}

// windowOpen reports whether a patient action on an appointment starting
// at apptAt is still inside the allowed window. Exactly 24 hours
// remaining is allowed.
func windowOpen(now, apptAt time.Time) bool {
	return apptAt.Sub(now) >= editWindow
}

// derivePaymentStatus applies the booking default: cash settles at the
// clinic, anything else is collected up front.
func derivePaymentStatus(method entappt.PaymentMethod) entappt.PaymentStatus {
	if method == entappt.PaymentMethodCash {
		return entappt.PaymentStatusPending
	}
	return entappt.PaymentStatusPaid
}
