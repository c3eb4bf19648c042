package router

import (
	"github.com/nobatclinic/nobat_backend/internal/api/http/handler"
	"github.com/nobatclinic/nobat_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Get)
	a.Patch("/", requirePerm(authorize.ResourceAppointment, authorize.ActionManage), ah.Update)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)

	// Edit-request workflow: patients file, admins decide.
	a.Post("/edit-request", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.SubmitEditRequest)
	a.Patch("/edit-request/approve", requirePerm(authorize.ResourceAppointment, authorize.ActionApprove), ah.ApproveEditRequest)
	a.Patch("/edit-request/reject", requirePerm(authorize.ResourceAppointment, authorize.ActionApprove), ah.RejectEditRequest)
}
