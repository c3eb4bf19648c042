package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/nobatclinic/nobat_backend/internal/repo"
	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	entpatient "github.com/nobatclinic/nobat_backend/internal/repo/patient"
	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
)

// ---------------------------------------------------------------------------
// Actor
// ---------------------------------------------------------------------------

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

// Actor identifies who is performing an operation. The API layer fills
// it from the verified token; the service trusts it.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) isAdmin() bool { return a.Role == RoleAdmin }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID     uuid.UUID
	Date          time.Time
	TimeSlot      string
	Reason        string
	VisitType     *string
	PaymentMethod *string
	Notes         *string
}

// UpdateRequest carries admin partial updates. Nil fields keep their
// stored values.
type UpdateRequest struct {
	Date          *time.Time
	TimeSlot      *string
	Reason        *string
	Notes         *string
	VisitType     *string
	PaymentMethod *string
	PaymentStatus *string
	Status        *string
	MedicalReport *string
	Prescription  *string
}

type EditRequest struct {
	NewDate time.Time
	NewTime string
	Reason  string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error)
	Get(ctx context.Context, apptID uuid.UUID, actor Actor) (*repo.Appointment, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error)
	ListAll(ctx context.Context) ([]*repo.Appointment, error)
	UpdateAsAdmin(ctx context.Context, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, apptID uuid.UUID, actor Actor, reason *string) (*repo.Appointment, error)

	SubmitEditRequest(ctx context.Context, apptID uuid.UUID, actor Actor, req EditRequest) (*repo.Appointment, error)
	ApproveEditRequest(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	RejectEditRequest(ctx context.Context, apptID uuid.UUID, reason string) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &bookingService{db: db, nc: nc}
}

func (s *bookingService) Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error) {
	if !schedule.IsValidSlot(req.TimeSlot) {
		return nil, ErrInvalidSlot
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrMissingReason
	}

	patient, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	date := schedule.NormalizeDate(req.Date)
	if err := s.assertSlotFree(ctx, date, req.TimeSlot, nil); err != nil {
		return nil, err
	}

	visitType := entappt.VisitTypeNew
	if req.VisitType != nil {
		visitType = entappt.VisitType(*req.VisitType)
		if err := entappt.VisitTypeValidator(visitType); err != nil {
			return nil, fmt.Errorf("validate visit type: %w", err)
		}
	}
	method := entappt.PaymentMethodCash
	if req.PaymentMethod != nil {
		method = entappt.PaymentMethod(*req.PaymentMethod)
		if err := entappt.PaymentMethodValidator(method); err != nil {
			return nil, fmt.Errorf("validate payment method: %w", err)
		}
	}

	c := s.db.Appointment.Create().
		SetPatientID(req.PatientID).
		SetDate(date).
		SetTimeSlot(req.TimeSlot).
		SetReason(req.Reason).
		SetVisitType(visitType).
		SetPaymentMethod(method).
		SetPaymentStatus(derivePaymentStatus(method))

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		// The partial unique index is the second line of defense
		// behind assertSlotFree.
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// First booking graduates the patient out of "new".
	if patient.IsNew {
		if err := s.db.Patient.UpdateOne(patient).SetIsNew(false).Exec(ctx); err != nil {
			slog.Warn("clear is_new flag failed", "patient_id", patient.ID, "err", err)
		}
	}

	s.publish("created", appt.ID)
	return appt, nil
}

func (s *bookingService) Get(ctx context.Context, apptID uuid.UUID, actor Actor) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if !actor.isAdmin() && appt.PatientID != actor.ID {
		return nil, ErrForbidden
	}
	return appt, nil
}

func (s *bookingService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID)).
		Order(entappt.ByDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	return appts, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Order(entappt.ByDate(), entappt.ByTimeSlot()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *bookingService) UpdateAsAdmin(ctx context.Context, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	// Re-run the conflict guard when the slot moves, excluding self so
	// an unchanged slot can be re-saved.
	newDate := appt.Date
	if req.Date != nil {
		newDate = schedule.NormalizeDate(*req.Date)
	}
	newSlot := appt.TimeSlot
	if req.TimeSlot != nil {
		if !schedule.IsValidSlot(*req.TimeSlot) {
			return nil, ErrInvalidSlot
		}
		newSlot = *req.TimeSlot
	}
	if !newDate.Equal(appt.Date) || newSlot != appt.TimeSlot {
		if err := s.assertSlotFree(ctx, newDate, newSlot, &appt.ID); err != nil {
			return nil, err
		}
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetDate(newDate).
		SetTimeSlot(newSlot)

	if req.Reason != nil {
		upd = upd.SetReason(*req.Reason)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}
	if req.MedicalReport != nil {
		upd = upd.SetMedicalReport(*req.MedicalReport)
	}
	if req.Prescription != nil {
		upd = upd.SetPrescription(*req.Prescription)
	}
	if req.VisitType != nil {
		vt := entappt.VisitType(*req.VisitType)
		if err := entappt.VisitTypeValidator(vt); err != nil {
			return nil, fmt.Errorf("validate visit type: %w", err)
		}
		upd = upd.SetVisitType(vt)
	}
	if req.PaymentMethod != nil {
		pm := entappt.PaymentMethod(*req.PaymentMethod)
		if err := entappt.PaymentMethodValidator(pm); err != nil {
			return nil, fmt.Errorf("validate payment method: %w", err)
		}
		upd = upd.SetPaymentMethod(pm)
	}
	if req.PaymentStatus != nil {
		ps := entappt.PaymentStatus(*req.PaymentStatus)
		if err := entappt.PaymentStatusValidator(ps); err != nil {
			return nil, fmt.Errorf("validate payment status: %w", err)
		}
		upd = upd.SetPaymentStatus(ps)
	}
	if req.Status != nil {
		st := entappt.Status(*req.Status)
		if err := entappt.StatusValidator(st); err != nil {
			return nil, fmt.Errorf("validate status: %w", err)
		}
		if !canTransition(appt.Status, st) {
			return nil, ErrInvalidTransition
		}
		upd = upd.SetStatus(st)
		if st == entappt.StatusCancelled && appt.Status != entappt.StatusCancelled {
			upd = upd.SetCancelledAt(time.Now())
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.publish("updated", updated.ID)
	return updated, nil
}

func (s *bookingService) Cancel(ctx context.Context, apptID uuid.UUID, actor Actor, reason *string) (*repo.Appointment, error) {
	appt, err := s.getByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if !actor.isAdmin() && appt.PatientID != actor.ID {
		return nil, ErrForbidden
	}

	// Cancelling twice is a no-op, not an error.
	if appt.Status == entappt.StatusCancelled {
		return appt, nil
	}
	if !canTransition(appt.Status, entappt.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	// Patients are bound to the 24h window; admins are not.
	if !actor.isAdmin() {
		apptAt := schedule.SlotStart(appt.Date, appt.TimeSlot)
		if !windowOpen(time.Now(), apptAt) {
			return nil, ErrWindowClosed
		}
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now())
	if reason != nil {
		upd = upd.SetCancellationReason(*reason)
	}

	cancelled, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish("cancelled", cancelled.ID)
	return cancelled, nil
}

// ---------------------------------------------------------------------------
// Conflict guard
// ---------------------------------------------------------------------------

// assertSlotFree fails with ErrSlotTaken when an active (non-cancelled)
// appointment already holds (date, slot). exclude lets an appointment be
// re-saved onto its own slot.
func (s *bookingService) assertSlotFree(ctx context.Context, date time.Time, slot string, exclude *uuid.UUID) error {
	q := s.db.Appointment.Query().
		Where(
			entappt.DateEQ(schedule.NormalizeDate(date)),
			entappt.TimeSlotEQ(slot),
			entappt.StatusNEQ(entappt.StatusCancelled),
		)
	if exclude != nil {
		q = q.Where(entappt.IDNEQ(*exclude))
	}

	taken, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return ErrSlotTaken
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *bookingService) getByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// publish fires a best-effort appointment event. A nil connection (NATS
// unconfigured) degrades to a debug log; failures never reach callers.
func (s *bookingService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		slog.Debug("nats disabled, skipping event", "event", event, "appointment_id", apptID)
		return
	}
	subject := fmt.Sprintf("nobat.appointment.%s.%s", event, apptID)
	if err := s.nc.Publish(subject, []byte(apptID.String())); err != nil {
		slog.Warn("publish appointment event failed", "subject", subject, "err", err)
	}
}
