// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTimeSlot holds the string denoting the time_slot field in the database.
	FieldTimeSlot = "time_slot"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldVisitType holds the string denoting the visit_type field in the database.
	FieldVisitType = "visit_type"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMedicalReport holds the string denoting the medical_report field in the database.
	FieldMedicalReport = "medical_report"
	// FieldPrescription holds the string denoting the prescription field in the database.
	FieldPrescription = "prescription"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldEditDate holds the string denoting the edit_date field in the database.
	FieldEditDate = "edit_date"
	// FieldEditTimeSlot holds the string denoting the edit_time_slot field in the database.
	FieldEditTimeSlot = "edit_time_slot"
	// FieldEditReason holds the string denoting the edit_reason field in the database.
	FieldEditReason = "edit_reason"
	// FieldEditRequestedAt holds the string denoting the edit_requested_at field in the database.
	FieldEditRequestedAt = "edit_requested_at"
	// FieldEditStatus holds the string denoting the edit_status field in the database.
	FieldEditStatus = "edit_status"
	// FieldEditRejectReason holds the string denoting the edit_reject_reason field in the database.
	FieldEditRejectReason = "edit_reject_reason"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "appointments"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldDate,
	FieldTimeSlot,
	FieldReason,
	FieldNotes,
	FieldVisitType,
	FieldPaymentMethod,
	FieldPaymentStatus,
	FieldStatus,
	FieldMedicalReport,
	FieldPrescription,
	FieldCancellationReason,
	FieldCancelledAt,
	FieldEditDate,
	FieldEditTimeSlot,
	FieldEditReason,
	FieldEditRequestedAt,
	FieldEditStatus,
	FieldEditRejectReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TimeSlotValidator is a validator for the "time_slot" field. It is called by the builders before save.
	TimeSlotValidator func(string) error
	// EditTimeSlotValidator is a validator for the "edit_time_slot" field. It is called by the builders before save.
	EditTimeSlotValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// VisitType defines the type for the "visit_type" enum field.
type VisitType string

// VisitTypeNew is the default value of the VisitType enum.
const DefaultVisitType = VisitTypeNew

// VisitType values.
const (
	VisitTypeNew          VisitType = "new"
	VisitTypeFollowup     VisitType = "followup"
	VisitTypeConsultation VisitType = "consultation"
)

func (vt VisitType) String() string {
	return string(vt)
}

// VisitTypeValidator is a validator for the "visit_type" field enum values. It is called by the builders before save.
func VisitTypeValidator(vt VisitType) error {
	switch vt {
	case VisitTypeNew, VisitTypeFollowup, VisitTypeConsultation:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for visit_type field: %q", vt)
	}
}

// PaymentMethod defines the type for the "payment_method" enum field.
type PaymentMethod string

// PaymentMethodCash is the default value of the PaymentMethod enum.
const DefaultPaymentMethod = PaymentMethodCash

// PaymentMethod values.
const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodInsurance    PaymentMethod = "insurance"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (pm PaymentMethod) String() string {
	return string(pm)
}

// PaymentMethodValidator is a validator for the "payment_method" field enum values. It is called by the builders before save.
func PaymentMethodValidator(pm PaymentMethod) error {
	switch pm {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodInsurance, PaymentMethodBankTransfer:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for payment_method field: %q", pm)
	}
}

// PaymentStatus defines the type for the "payment_status" enum field.
type PaymentStatus string

// PaymentStatusPending is the default value of the PaymentStatus enum.
const DefaultPaymentStatus = PaymentStatusPending

// PaymentStatus values.
const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

// PaymentStatusValidator is a validator for the "payment_status" field enum values. It is called by the builders before save.
func PaymentStatusValidator(ps PaymentStatus) error {
	switch ps {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusPartiallyPaid:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for payment_status field: %q", ps)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// EditStatus defines the type for the "edit_status" enum field.
type EditStatus string

// EditStatus values.
const (
	EditStatusPending  EditStatus = "pending"
	EditStatusApproved EditStatus = "approved"
	EditStatusRejected EditStatus = "rejected"
)

func (es EditStatus) String() string {
	return string(es)
}

// EditStatusValidator is a validator for the "edit_status" field enum values. It is called by the builders before save.
func EditStatusValidator(es EditStatus) error {
	switch es {
	case EditStatusPending, EditStatusApproved, EditStatusRejected:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for edit_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTimeSlot orders the results by the time_slot field.
func ByTimeSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSlot, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByVisitType orders the results by the visit_type field.
func ByVisitType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitType, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMedicalReport orders the results by the medical_report field.
func ByMedicalReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicalReport, opts...).ToFunc()
}

// ByPrescription orders the results by the prescription field.
func ByPrescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrescription, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByEditDate orders the results by the edit_date field.
func ByEditDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditDate, opts...).ToFunc()
}

// ByEditTimeSlot orders the results by the edit_time_slot field.
func ByEditTimeSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditTimeSlot, opts...).ToFunc()
}

// ByEditReason orders the results by the edit_reason field.
func ByEditReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditReason, opts...).ToFunc()
}

// ByEditRequestedAt orders the results by the edit_requested_at field.
func ByEditRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditRequestedAt, opts...).ToFunc()
}

// ByEditStatus orders the results by the edit_status field.
func ByEditStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditStatus, opts...).ToFunc()
}

// ByEditRejectReason orders the results by the edit_reject_reason field.
func ByEditRejectReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditRejectReason, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
