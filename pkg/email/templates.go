package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName string
	Email       string
	Date        time.Time
	TimeSlot    string
	Reason      string
	ClinicName  string
}

func (d AppointmentEmailData) clinicName() string {
	if d.ClinicName == "" {
		return "Nobat Clinic"
	}
	return d.ClinicName
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

func (d AppointmentEmailData) dateLabel() string {
	return d.Date.Format("Monday, 2 January 2006")
}

// BuildAppointmentConfirmedEmail creates a booking confirmation email message.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	name := data.patientName()

	subject := fmt.Sprintf("Your appointment at %s is confirmed", clinic)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment at %s has been booked.

Date: %s
Time: %s

If you need to change or cancel, please do so at least 24 hours before
your visit.

Thanks,
%s`,
		name, clinic, data.dateLabel(), data.TimeSlot, clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment at %s has been booked.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 18px; font-weight: bold;">%s</span><br>
        <span style="font-size: 24px; font-weight: bold; color: #2563eb;">%s</span>
    </p>
    <p style="color: #6b7280; font-size: 14px;">If you need to change or cancel, please do so at least 24 hours before your visit.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
		name, clinic, data.dateLabel(), data.TimeSlot, clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail creates a cancellation notice email message.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	name := data.patientName()

	subject := fmt.Sprintf("Your appointment at %s was cancelled", clinic)

	reasonLine := ""
	if data.Reason != "" {
		reasonLine = fmt.Sprintf("\nReason: %s\n", data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment at %s on %s at %s has been cancelled.
%s
You can book a new appointment at any time.

Thanks,
%s`,
		name, clinic, data.dateLabel(), data.TimeSlot, reasonLine, clinic)

	reasonHTML := ""
	if data.Reason != "" {
		reasonHTML = fmt.Sprintf(`<p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">Reason: %s</p>`, data.Reason)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Hi %s,</h2>
    <p>Your appointment at %s on <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
    %s
    <p>You can book a new appointment at any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
		name, clinic, data.dateLabel(), data.TimeSlot, reasonHTML, clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildEditDecisionEmail creates an email message announcing the outcome of a
// reschedule request. approved selects between the two variants. For the
// approved variant Date and TimeSlot carry the new schedule, otherwise the
// unchanged one.
func BuildEditDecisionEmail(data AppointmentEmailData, approved bool, rejectReason string) Message {
	clinic := data.clinicName()
	name := data.patientName()

	if approved {
		subject := fmt.Sprintf("Your reschedule request at %s was approved", clinic)

		textBody := fmt.Sprintf(`Hi %s,

Your reschedule request has been approved. Your appointment at %s is now:

Date: %s
Time: %s

Thanks,
%s`,
			name, clinic, data.dateLabel(), data.TimeSlot, clinic)

		htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your reschedule request has been approved. Your appointment at %s is now:</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 18px; font-weight: bold;">%s</span><br>
        <span style="font-size: 24px; font-weight: bold; color: #16a34a;">%s</span>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
			name, clinic, data.dateLabel(), data.TimeSlot, clinic)

		return Message{
			To:       []string{data.Email},
			Subject:  subject,
			TextBody: textBody,
			HTMLBody: htmlBody,
		}
	}

	subject := fmt.Sprintf("Your reschedule request at %s was declined", clinic)

	reasonLine := ""
	if rejectReason != "" {
		reasonLine = fmt.Sprintf("\nReason: %s\n", rejectReason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your reschedule request could not be approved. Your appointment at %s
stays on %s at %s.
%s
Thanks,
%s`,
		name, clinic, data.dateLabel(), data.TimeSlot, reasonLine, clinic)

	reasonHTML := ""
	if rejectReason != "" {
		reasonHTML = fmt.Sprintf(`<p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">Reason: %s</p>`, rejectReason)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Hi %s,</h2>
    <p>Your reschedule request could not be approved. Your appointment at %s stays on <strong>%s</strong> at <strong>%s</strong>.</p>
    %s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
		name, clinic, data.dateLabel(), data.TimeSlot, reasonHTML, clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
