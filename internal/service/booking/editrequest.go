package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nobatclinic/nobat_backend/internal/repo"
	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
)

// SubmitEditRequest stages a patient's proposal to move an appointment.
// Slot availability for the proposed slot is NOT checked here; slots can
// fill or free up before an admin acts, so the check runs at approval.
func (s *bookingService) SubmitEditRequest(ctx context.Context, apptID uuid.UUID, actor Actor, req EditRequest) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	// Only the owning patient may propose an edit.
	if appt.PatientID != actor.ID {
		return nil, ErrForbidden
	}

	if appt.Status != entappt.StatusScheduled {
		return nil, ErrNotEditable
	}
	if appt.EditStatus != nil && *appt.EditStatus == entappt.EditStatusPending {
		return nil, ErrEditPending
	}

	if !schedule.IsValidSlot(req.NewTime) {
		return nil, ErrInvalidSlot
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrMissingReason
	}

	now := time.Now()
	newDate := schedule.NormalizeDate(req.NewDate)
	if newDate.Before(schedule.NormalizeDate(now)) {
		return nil, ErrPastDate
	}

	apptAt := schedule.SlotStart(appt.Date, appt.TimeSlot)
	if !windowOpen(now, apptAt) {
		return nil, ErrWindowClosed
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetEditDate(newDate).
		SetEditTimeSlot(req.NewTime).
		SetEditReason(req.Reason).
		SetEditRequestedAt(now).
		SetEditStatus(entappt.EditStatusPending).
		ClearEditRejectReason().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit edit request: %w", err)
	}

	s.publish("edit_requested", updated.ID)
	return updated, nil
}

// ApproveEditRequest commits a pending proposal. The conflict guard runs
// again here; the slot may have been taken since submission.
func (s *bookingService) ApproveEditRequest(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if appt.EditStatus == nil || *appt.EditStatus != entappt.EditStatusPending {
		return nil, ErrNoPendingEdit
	}
	if appt.EditDate == nil || appt.EditTimeSlot == nil {
		return nil, ErrNoPendingEdit
	}

	newDate := *appt.EditDate
	newSlot := *appt.EditTimeSlot
	if err := s.assertSlotFree(ctx, newDate, newSlot, &appt.ID); err != nil {
		return nil, err
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetDate(newDate).
		SetTimeSlot(newSlot).
		SetEditStatus(entappt.EditStatusApproved).
		ClearEditDate().
		ClearEditTimeSlot().
		ClearEditReason().
		ClearEditRequestedAt().
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("approve edit request: %w", err)
	}

	s.publish("edit_approved", updated.ID)
	return updated, nil
}

// RejectEditRequest closes a pending proposal without moving the
// appointment. The staged proposal is kept so the patient can still see
// what was asked for and why it was declined.
func (s *bookingService) RejectEditRequest(ctx context.Context, apptID uuid.UUID, reason string) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if appt.EditStatus == nil || *appt.EditStatus != entappt.EditStatusPending {
		return nil, ErrNoPendingEdit
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetEditStatus(entappt.EditStatusRejected)
	if strings.TrimSpace(reason) != "" {
		upd = upd.SetEditRejectReason(reason)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject edit request: %w", err)
	}

	s.publish("edit_rejected", updated.ID)
	return updated, nil
}
