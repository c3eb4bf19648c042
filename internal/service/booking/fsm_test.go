package booking

import (
	"testing"
	"time"

	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"scheduled to completed", entappt.StatusScheduled, entappt.StatusCompleted, true},
		{"scheduled to cancelled", entappt.StatusScheduled, entappt.StatusCancelled, true},
		{"scheduled to no_show", entappt.StatusScheduled, entappt.StatusNoShow, true},
		{"same state re-save", entappt.StatusScheduled, entappt.StatusScheduled, true},
		{"completed is terminal", entappt.StatusCompleted, entappt.StatusScheduled, false},
		{"completed to cancelled", entappt.StatusCompleted, entappt.StatusCancelled, false},
		{"cancelled is terminal", entappt.StatusCancelled, entappt.StatusScheduled, false},
		{"cancelled to completed", entappt.StatusCancelled, entappt.StatusCompleted, false},
		{"no_show is terminal", entappt.StatusNoShow, entappt.StatusScheduled, false},
		{"no_show re-save", entappt.StatusNoShow, entappt.StatusNoShow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestWindowOpen(t *testing.T) {
	now := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		apptAt time.Time
		want   bool
	}{
		{"48 hours ahead", now.Add(48 * time.Hour), true},
		{"exactly 24 hours ahead is allowed", now.Add(24 * time.Hour), true},
		{"one second inside the window", now.Add(24*time.Hour - time.Second), false},
		{"2 hours ahead", now.Add(2 * time.Hour), false},
		{"already started", now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowOpen(now, tt.apptAt); got != tt.want {
				t.Errorf("windowOpen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	if got := derivePaymentStatus(entappt.PaymentMethodCash); got != entappt.PaymentStatusPending {
		t.Errorf("cash: got %s, want pending", got)
	}
	for _, m := range []entappt.PaymentMethod{
		entappt.PaymentMethodCreditCard,
		entappt.PaymentMethodInsurance,
		entappt.PaymentMethodBankTransfer,
	} {
		if got := derivePaymentStatus(m); got != entappt.PaymentStatusPaid {
			t.Errorf("%s: got %s, want paid", m, got)
		}
	}
}
