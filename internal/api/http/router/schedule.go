package router

import (
	"github.com/nobatclinic/nobat_backend/internal/api/http/handler"
	"github.com/nobatclinic/nobat_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sched := api.Group("/schedule", authRequired)

	sched.Get("/slots", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.Catalog)
	sched.Get("/available/:date", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.Available)
	sched.Get("/booked/:date", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.Booked)
}
