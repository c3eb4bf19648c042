package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nobatclinic/nobat_backend/internal/service/booking"
	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
)

type AppointmentHandler struct {
	svc booking.Service
}

func NewAppointmentHandler(svc booking.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrMissingReason),
		errors.Is(err, booking.ErrPastDate),
		errors.Is(err, schedule.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotEditable),
		errors.Is(err, booking.ErrEditPending),
		errors.Is(err, booking.ErrNoPendingEdit),
		errors.Is(err, booking.ErrWindowClosed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
//
// Admins see the whole book, patients only their own appointments.
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	actor, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	if actor.Role == booking.RoleAdmin {
		appts, err := h.svc.ListAll(c.Context())
		if err != nil {
			return mapBookingError(c, err)
		}
		return ok(c, appts)
	}

	appts, err := h.svc.ListForPatient(c.Context(), actor.ID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	actor, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Get(c.Context(), apptID, actor)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	actor, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID     string  `json:"patient_id"`
		Date          string  `json:"date"`
		TimeSlot      string  `json:"time_slot"`
		Reason        string  `json:"reason"`
		VisitType     *string `json:"visit_type"`
		PaymentMethod *string `json:"payment_method"`
		Notes         *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	date, err := schedule.ParseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	// Patients always book for themselves, admins may book on behalf
	// of any patient.
	patientID := actor.ID
	if actor.Role == booking.RoleAdmin && body.PatientID != "" {
		patientID, err = uuid.Parse(body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
	}

	appt, err := h.svc.Create(c.Context(), booking.CreateRequest{
		PatientID:     patientID,
		Date:          date,
		TimeSlot:      body.TimeSlot,
		Reason:        body.Reason,
		VisitType:     body.VisitType,
		PaymentMethod: body.PaymentMethod,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date          *string `json:"date"`
		TimeSlot      *string `json:"time_slot"`
		Reason        *string `json:"reason"`
		Notes         *string `json:"notes"`
		VisitType     *string `json:"visit_type"`
		PaymentMethod *string `json:"payment_method"`
		PaymentStatus *string `json:"payment_status"`
		Status        *string `json:"status"`
		MedicalReport *string `json:"medical_report"`
		Prescription  *string `json:"prescription"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := booking.UpdateRequest{
		TimeSlot:      body.TimeSlot,
		Reason:        body.Reason,
		Notes:         body.Notes,
		VisitType:     body.VisitType,
		PaymentMethod: body.PaymentMethod,
		PaymentStatus: body.PaymentStatus,
		Status:        body.Status,
		MedicalReport: body.MedicalReport,
		Prescription:  body.Prescription,
	}
	if body.Date != nil {
		date, err := schedule.ParseDate(*body.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		req.Date = &date
	}

	appt, err := h.svc.UpdateAsAdmin(c.Context(), apptID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	actor, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	appt, err := h.svc.Cancel(c.Context(), apptID, actor, body.Reason)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/edit-request
func (h *AppointmentHandler) SubmitEditRequest(c fiber.Ctx) error {
	actor, valid := actorFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NewDate string `json:"new_date"`
		NewTime string `json:"new_time"`
		Reason  string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	newDate, err := schedule.ParseDate(body.NewDate)
	if err != nil {
		return badRequest(c, "invalid new_date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.SubmitEditRequest(c.Context(), apptID, actor, booking.EditRequest{
		NewDate: newDate,
		NewTime: body.NewTime,
		Reason:  body.Reason,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/edit-request/approve
func (h *AppointmentHandler) ApproveEditRequest(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.ApproveEditRequest(c.Context(), apptID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/edit-request/reject
func (h *AppointmentHandler) RejectEditRequest(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.RejectEditRequest(c.Context(), apptID, body.Reason)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, appt)
}
