package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nobatclinic/nobat_backend/internal/service/booking"
	pasetotoken "github.com/nobatclinic/nobat_backend/pkg/paseto"
)

// actorFromLocals builds the booking actor from the verified token claims
// stored by the auth middleware. Superadmins act with admin powers inside
// the booking core.
func actorFromLocals(c fiber.Ctx) (booking.Actor, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return booking.Actor{}, false
	}

	role := booking.RolePatient
	switch claims.Role {
	case "admin", "superadmin":
		role = booking.RoleAdmin
	}

	return booking.Actor{ID: claims.UserID, Role: role}, true
}
