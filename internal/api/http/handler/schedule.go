package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
)

type ScheduleHandler struct {
	svc schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /schedule/slots
//
// The full slot catalog, independent of any date.
func (h *ScheduleHandler) Catalog(c fiber.Ctx) error {
	return ok(c, schedule.Slots())
}

// GET /schedule/available/:date
func (h *ScheduleHandler) Available(c fiber.Ctx) error {
	date, err := schedule.ParseDate(c.Params("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := h.svc.AvailableSlots(c.Context(), date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

// GET /schedule/booked/:date
func (h *ScheduleHandler) Booked(c fiber.Ctx) error {
	date, err := schedule.ParseDate(c.Params("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := h.svc.BookedSlots(c.Context(), date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}
