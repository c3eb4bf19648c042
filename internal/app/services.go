package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/nobatclinic/nobat_backend/config"
	"github.com/nobatclinic/nobat_backend/internal/repo"
	"github.com/nobatclinic/nobat_backend/internal/service/booking"
	"github.com/nobatclinic/nobat_backend/internal/service/notification"
	"github.com/nobatclinic/nobat_backend/internal/service/patient"
	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
	pasetotoken "github.com/nobatclinic/nobat_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideBookingService,
		ProvideScheduleService,
		ProvidePatientService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideBookingService(db *repo.Client, nc *nats.Conn) booking.Service {
	return booking.New(db, nc)
}

func ProvideScheduleService(db *repo.Client) schedule.Service {
	return schedule.New(db)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) patient.Service {
	return patient.New(db, cfg)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
