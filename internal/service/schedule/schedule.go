package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/nobatclinic/nobat_backend/internal/repo"
	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// AvailableSlots returns the catalog slots still free on date,
	// in chronological order. A fully booked day yields an empty slice.
	AvailableSlots(ctx context.Context, date time.Time) ([]string, error)

	// BookedSlots returns the slot labels held by active (non-cancelled)
	// appointments on date.
	BookedSlots(ctx context.Context, date time.Time) ([]string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &scheduleService{db: db}
}

func (s *scheduleService) BookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DateEQ(NormalizeDate(date)),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Order(entappt.ByTimeSlot()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}

	booked := make([]string, 0, len(appts))
	for _, a := range appts {
		booked = append(booked, a.TimeSlot)
	}
	return booked, nil
}

func (s *scheduleService) AvailableSlots(ctx context.Context, date time.Time) ([]string, error) {
	booked, err := s.BookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	return Subtract(booked), nil
}
