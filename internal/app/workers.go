package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/nobatclinic/nobat_backend/internal/repo"
	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	entpatient "github.com/nobatclinic/nobat_backend/internal/repo/patient"
	"github.com/nobatclinic/nobat_backend/internal/service/notification"
	emailpkg "github.com/nobatclinic/nobat_backend/pkg/email"
	svcsms "github.com/nobatclinic/nobat_backend/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	SMS      *svcsms.Client
	Email    *emailpkg.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startSMSWorker(p.NC, p.DB, p.SMS)
			startEmailWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// loadAppointment resolves the appointment id carried in an event payload
// together with its patient.
func loadAppointment(ctx context.Context, db *repo.Client, msg *nats.Msg) (*repo.Appointment, *repo.Patient, bool) {
	apptIDStr := strings.TrimSpace(string(msg.Data))
	apptID, err := uuid.Parse(apptIDStr)
	if err != nil {
		return nil, nil, false
	}

	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		slog.Warn("workers: appointment not found", "id", apptIDStr, "err", err)
		return nil, nil, false
	}

	patient, err := db.Patient.Query().
		Where(entpatient.ID(appt.PatientID)).
		Only(ctx)
	if err != nil {
		slog.Warn("workers: patient not found", "id", appt.PatientID, "err", err)
		return nil, nil, false
	}

	return appt, patient, true
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// In-app notification titles per appointment event.
var notifTitles = map[string]string{
	"created":        "نوبت جدید ثبت شد",
	"updated":        "نوبت بروزرسانی شد",
	"cancelled":      "نوبت لغو شد",
	"edit_requested": "درخواست ویرایش نوبت ثبت شد",
	"edit_approved":  "درخواست ویرایش نوبت تایید شد",
	"edit_rejected":  "درخواست ویرایش نوبت رد شد",
}

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	for event, title := range notifTitles {
		event, title := event, title

		_, err := nc.Subscribe("nobat.appointment."+event+".*", func(msg *nats.Msg) {
			ctx := context.Background()

			appt, _, loaded := loadAppointment(ctx, db, msg)
			if !loaded {
				return
			}

			_, err := notifSvc.Create(ctx, notification.CreateRequest{
				PatientID: appt.PatientID,
				Type:      "appointment_" + event,
				Title:     title,
				Data: map[string]any{
					"appointment_id": appt.ID.String(),
					"date":           appt.Date.Format("2006-01-02"),
					"time_slot":      appt.TimeSlot,
				},
			})
			if err != nil {
				slog.Warn("notification_worker: create notification failed", "event", event, "err", err)
			}
		})
		if err != nil {
			slog.Error("notification_worker: subscribe failed", "event", event, "err", err)
		}
	}

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// sms_worker
// ---------------------------------------------------------------------------

func startSMSWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client) {
	if !smsCli.IsEnabled() {
		slog.Info("sms_worker: disabled by config")
		return
	}

	_, err := nc.Subscribe("nobat.appointment.created.*", func(msg *nats.Msg) {
		ctx := context.Background()

		appt, patient, loaded := loadAppointment(ctx, db, msg)
		if !loaded {
			return
		}

		if err := smsCli.SendAppointmentConfirmed(ctx, patient.Phone, appt.Date.Format("2006-01-02"), appt.TimeSlot); err != nil {
			slog.Warn("sms_worker: confirm send failed", "appointment_id", appt.ID, "err", err)
		}
	})
	if err != nil {
		slog.Error("sms_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = nc.Subscribe("nobat.appointment.cancelled.*", func(msg *nats.Msg) {
		ctx := context.Background()

		appt, patient, loaded := loadAppointment(ctx, db, msg)
		if !loaded {
			return
		}

		if err := smsCli.SendAppointmentCancelled(ctx, patient.Phone, appt.Date.Format("2006-01-02"), appt.TimeSlot); err != nil {
			slog.Warn("sms_worker: cancel send failed", "appointment_id", appt.ID, "err", err)
		}
	})
	if err != nil {
		slog.Error("sms_worker: subscribe appointment.cancelled failed", "err", err)
	}

	for event, decision := range map[string]string{
		"edit_approved": "approved",
		"edit_rejected": "rejected",
	} {
		event, decision := event, decision

		_, err = nc.Subscribe("nobat.appointment."+event+".*", func(msg *nats.Msg) {
			ctx := context.Background()

			appt, patient, loaded := loadAppointment(ctx, db, msg)
			if !loaded {
				return
			}

			if err := smsCli.SendEditDecision(ctx, patient.Phone, decision); err != nil {
				slog.Warn("sms_worker: edit decision send failed", "appointment_id", appt.ID, "err", err)
			}
		})
		if err != nil {
			slog.Error("sms_worker: subscribe failed", "event", event, "err", err)
		}
	}

	slog.Info("sms_worker: started")
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, emailCli *emailpkg.Client) {
	send := func(ctx context.Context, m emailpkg.Message) {
		if err := emailCli.Send(ctx, m); err != nil {
			var disabled emailpkg.ErrDisabled
			if errors.As(err, &disabled) {
				return
			}
			slog.Warn("email_worker: send failed", "err", err)
		}
	}

	emailData := func(appt *repo.Appointment, patient *repo.Patient) (emailpkg.AppointmentEmailData, bool) {
		if patient.Email == "" {
			return emailpkg.AppointmentEmailData{}, false
		}
		return emailpkg.AppointmentEmailData{
			PatientName: patient.FullName,
			Email:       patient.Email,
			Date:        appt.Date,
			TimeSlot:    appt.TimeSlot,
		}, true
	}

	_, err := nc.Subscribe("nobat.appointment.created.*", func(msg *nats.Msg) {
		ctx := context.Background()

		appt, patient, loaded := loadAppointment(ctx, db, msg)
		if !loaded {
			return
		}

		data, hasEmail := emailData(appt, patient)
		if !hasEmail {
			return
		}
		send(ctx, emailpkg.BuildAppointmentConfirmedEmail(data))
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = nc.Subscribe("nobat.appointment.cancelled.*", func(msg *nats.Msg) {
		ctx := context.Background()

		appt, patient, loaded := loadAppointment(ctx, db, msg)
		if !loaded {
			return
		}

		data, hasEmail := emailData(appt, patient)
		if !hasEmail {
			return
		}
		data.Reason = appt.CancellationReason
		send(ctx, emailpkg.BuildAppointmentCancelledEmail(data))
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.cancelled failed", "err", err)
	}

	for event, approved := range map[string]bool{
		"edit_approved": true,
		"edit_rejected": false,
	} {
		event, approved := event, approved

		_, err = nc.Subscribe("nobat.appointment."+event+".*", func(msg *nats.Msg) {
			ctx := context.Background()

			appt, patient, loaded := loadAppointment(ctx, db, msg)
			if !loaded {
				return
			}

			data, hasEmail := emailData(appt, patient)
			if !hasEmail {
				return
			}
			send(ctx, emailpkg.BuildEditDecisionEmail(data, approved, appt.EditRejectReason))
		})
		if err != nil {
			slog.Error("email_worker: subscribe failed", "event", event, "err", err)
		}
	}

	slog.Info("email_worker: started")
}
