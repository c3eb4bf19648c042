// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nobatclinic/nobat_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDate, v))
}

// TimeSlot applies equality check predicate on the "time_slot" field. It's identical to TimeSlotEQ.
func TimeSlot(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTimeSlot, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReason, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// MedicalReport applies equality check predicate on the "medical_report" field. It's identical to MedicalReportEQ.
func MedicalReport(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMedicalReport, v))
}

// Prescription applies equality check predicate on the "prescription" field. It's identical to PrescriptionEQ.
func Prescription(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPrescription, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// EditDate applies equality check predicate on the "edit_date" field. It's identical to EditDateEQ.
func EditDate(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditDate, v))
}

// EditTimeSlot applies equality check predicate on the "edit_time_slot" field. It's identical to EditTimeSlotEQ.
func EditTimeSlot(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditTimeSlot, v))
}

// EditReason applies equality check predicate on the "edit_reason" field. It's identical to EditReasonEQ.
func EditReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditReason, v))
}

// EditRequestedAt applies equality check predicate on the "edit_requested_at" field. It's identical to EditRequestedAtEQ.
func EditRequestedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditRequestedAt, v))
}

// EditRejectReason applies equality check predicate on the "edit_reject_reason" field. It's identical to EditRejectReasonEQ.
func EditRejectReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditRejectReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDate, v))
}

// TimeSlotEQ applies the EQ predicate on the "time_slot" field.
func TimeSlotEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTimeSlot, v))
}

// TimeSlotNEQ applies the NEQ predicate on the "time_slot" field.
func TimeSlotNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldTimeSlot, v))
}

// TimeSlotIn applies the In predicate on the "time_slot" field.
func TimeSlotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldTimeSlot, vs...))
}

// TimeSlotNotIn applies the NotIn predicate on the "time_slot" field.
func TimeSlotNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldTimeSlot, vs...))
}

// TimeSlotGT applies the GT predicate on the "time_slot" field.
func TimeSlotGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldTimeSlot, v))
}

// TimeSlotGTE applies the GTE predicate on the "time_slot" field.
func TimeSlotGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldTimeSlot, v))
}

// TimeSlotLT applies the LT predicate on the "time_slot" field.
func TimeSlotLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldTimeSlot, v))
}

// TimeSlotLTE applies the LTE predicate on the "time_slot" field.
func TimeSlotLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldTimeSlot, v))
}

// TimeSlotContains applies the Contains predicate on the "time_slot" field.
func TimeSlotContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldTimeSlot, v))
}

// TimeSlotHasPrefix applies the HasPrefix predicate on the "time_slot" field.
func TimeSlotHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldTimeSlot, v))
}

// TimeSlotHasSuffix applies the HasSuffix predicate on the "time_slot" field.
func TimeSlotHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldTimeSlot, v))
}

// TimeSlotEqualFold applies the EqualFold predicate on the "time_slot" field.
func TimeSlotEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldTimeSlot, v))
}

// TimeSlotContainsFold applies the ContainsFold predicate on the "time_slot" field.
func TimeSlotContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldTimeSlot, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldReason, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldNotes, v))
}

// VisitTypeEQ applies the EQ predicate on the "visit_type" field.
func VisitTypeEQ(v VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldVisitType, v))
}

// VisitTypeNEQ applies the NEQ predicate on the "visit_type" field.
func VisitTypeNEQ(v VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldVisitType, v))
}

// VisitTypeIn applies the In predicate on the "visit_type" field.
func VisitTypeIn(vs ...VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldVisitType, vs...))
}

// VisitTypeNotIn applies the NotIn predicate on the "visit_type" field.
func VisitTypeNotIn(vs ...VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldVisitType, vs...))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v PaymentMethod) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v PaymentMethod) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...PaymentMethod) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...PaymentMethod) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// MedicalReportEQ applies the EQ predicate on the "medical_report" field.
func MedicalReportEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMedicalReport, v))
}

// MedicalReportNEQ applies the NEQ predicate on the "medical_report" field.
func MedicalReportNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMedicalReport, v))
}

// MedicalReportIn applies the In predicate on the "medical_report" field.
func MedicalReportIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMedicalReport, vs...))
}

// MedicalReportNotIn applies the NotIn predicate on the "medical_report" field.
func MedicalReportNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMedicalReport, vs...))
}

// MedicalReportGT applies the GT predicate on the "medical_report" field.
func MedicalReportGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMedicalReport, v))
}

// MedicalReportGTE applies the GTE predicate on the "medical_report" field.
func MedicalReportGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMedicalReport, v))
}

// MedicalReportLT applies the LT predicate on the "medical_report" field.
func MedicalReportLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMedicalReport, v))
}

// MedicalReportLTE applies the LTE predicate on the "medical_report" field.
func MedicalReportLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMedicalReport, v))
}

// MedicalReportContains applies the Contains predicate on the "medical_report" field.
func MedicalReportContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldMedicalReport, v))
}

// MedicalReportHasPrefix applies the HasPrefix predicate on the "medical_report" field.
func MedicalReportHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldMedicalReport, v))
}

// MedicalReportHasSuffix applies the HasSuffix predicate on the "medical_report" field.
func MedicalReportHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldMedicalReport, v))
}

// MedicalReportIsNil applies the IsNil predicate on the "medical_report" field.
func MedicalReportIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldMedicalReport))
}

// MedicalReportNotNil applies the NotNil predicate on the "medical_report" field.
func MedicalReportNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldMedicalReport))
}

// MedicalReportEqualFold applies the EqualFold predicate on the "medical_report" field.
func MedicalReportEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldMedicalReport, v))
}

// MedicalReportContainsFold applies the ContainsFold predicate on the "medical_report" field.
func MedicalReportContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldMedicalReport, v))
}

// PrescriptionEQ applies the EQ predicate on the "prescription" field.
func PrescriptionEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPrescription, v))
}

// PrescriptionNEQ applies the NEQ predicate on the "prescription" field.
func PrescriptionNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPrescription, v))
}

// PrescriptionIn applies the In predicate on the "prescription" field.
func PrescriptionIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPrescription, vs...))
}

// PrescriptionNotIn applies the NotIn predicate on the "prescription" field.
func PrescriptionNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPrescription, vs...))
}

// PrescriptionGT applies the GT predicate on the "prescription" field.
func PrescriptionGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPrescription, v))
}

// PrescriptionGTE applies the GTE predicate on the "prescription" field.
func PrescriptionGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPrescription, v))
}

// PrescriptionLT applies the LT predicate on the "prescription" field.
func PrescriptionLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPrescription, v))
}

// PrescriptionLTE applies the LTE predicate on the "prescription" field.
func PrescriptionLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPrescription, v))
}

// PrescriptionContains applies the Contains predicate on the "prescription" field.
func PrescriptionContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPrescription, v))
}

// PrescriptionHasPrefix applies the HasPrefix predicate on the "prescription" field.
func PrescriptionHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPrescription, v))
}

// PrescriptionHasSuffix applies the HasSuffix predicate on the "prescription" field.
func PrescriptionHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPrescription, v))
}

// PrescriptionIsNil applies the IsNil predicate on the "prescription" field.
func PrescriptionIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPrescription))
}

// PrescriptionNotNil applies the NotNil predicate on the "prescription" field.
func PrescriptionNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPrescription))
}

// PrescriptionEqualFold applies the EqualFold predicate on the "prescription" field.
func PrescriptionEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPrescription, v))
}

// PrescriptionContainsFold applies the ContainsFold predicate on the "prescription" field.
func PrescriptionContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPrescription, v))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// EditDateEQ applies the EQ predicate on the "edit_date" field.
func EditDateEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditDate, v))
}

// EditDateNEQ applies the NEQ predicate on the "edit_date" field.
func EditDateNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditDate, v))
}

// EditDateIn applies the In predicate on the "edit_date" field.
func EditDateIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditDate, vs...))
}

// EditDateNotIn applies the NotIn predicate on the "edit_date" field.
func EditDateNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditDate, vs...))
}

// EditDateGT applies the GT predicate on the "edit_date" field.
func EditDateGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEditDate, v))
}

// EditDateGTE applies the GTE predicate on the "edit_date" field.
func EditDateGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEditDate, v))
}

// EditDateLT applies the LT predicate on the "edit_date" field.
func EditDateLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEditDate, v))
}

// EditDateLTE applies the LTE predicate on the "edit_date" field.
func EditDateLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEditDate, v))
}

// EditDateIsNil applies the IsNil predicate on the "edit_date" field.
func EditDateIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditDate))
}

// EditDateNotNil applies the NotNil predicate on the "edit_date" field.
func EditDateNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditDate))
}

// EditTimeSlotEQ applies the EQ predicate on the "edit_time_slot" field.
func EditTimeSlotEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditTimeSlot, v))
}

// EditTimeSlotNEQ applies the NEQ predicate on the "edit_time_slot" field.
func EditTimeSlotNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditTimeSlot, v))
}

// EditTimeSlotIn applies the In predicate on the "edit_time_slot" field.
func EditTimeSlotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditTimeSlot, vs...))
}

// EditTimeSlotNotIn applies the NotIn predicate on the "edit_time_slot" field.
func EditTimeSlotNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditTimeSlot, vs...))
}

// EditTimeSlotGT applies the GT predicate on the "edit_time_slot" field.
func EditTimeSlotGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEditTimeSlot, v))
}

// EditTimeSlotGTE applies the GTE predicate on the "edit_time_slot" field.
func EditTimeSlotGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEditTimeSlot, v))
}

// EditTimeSlotLT applies the LT predicate on the "edit_time_slot" field.
func EditTimeSlotLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEditTimeSlot, v))
}

// EditTimeSlotLTE applies the LTE predicate on the "edit_time_slot" field.
func EditTimeSlotLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEditTimeSlot, v))
}

// EditTimeSlotContains applies the Contains predicate on the "edit_time_slot" field.
func EditTimeSlotContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldEditTimeSlot, v))
}

// EditTimeSlotHasPrefix applies the HasPrefix predicate on the "edit_time_slot" field.
func EditTimeSlotHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldEditTimeSlot, v))
}

// EditTimeSlotHasSuffix applies the HasSuffix predicate on the "edit_time_slot" field.
func EditTimeSlotHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldEditTimeSlot, v))
}

// EditTimeSlotIsNil applies the IsNil predicate on the "edit_time_slot" field.
func EditTimeSlotIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditTimeSlot))
}

// EditTimeSlotNotNil applies the NotNil predicate on the "edit_time_slot" field.
func EditTimeSlotNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditTimeSlot))
}

// EditTimeSlotEqualFold applies the EqualFold predicate on the "edit_time_slot" field.
func EditTimeSlotEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldEditTimeSlot, v))
}

// EditTimeSlotContainsFold applies the ContainsFold predicate on the "edit_time_slot" field.
func EditTimeSlotContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldEditTimeSlot, v))
}

// EditReasonEQ applies the EQ predicate on the "edit_reason" field.
func EditReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditReason, v))
}

// EditReasonNEQ applies the NEQ predicate on the "edit_reason" field.
func EditReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditReason, v))
}

// EditReasonIn applies the In predicate on the "edit_reason" field.
func EditReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditReason, vs...))
}

// EditReasonNotIn applies the NotIn predicate on the "edit_reason" field.
func EditReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditReason, vs...))
}

// EditReasonGT applies the GT predicate on the "edit_reason" field.
func EditReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEditReason, v))
}

// EditReasonGTE applies the GTE predicate on the "edit_reason" field.
func EditReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEditReason, v))
}

// EditReasonLT applies the LT predicate on the "edit_reason" field.
func EditReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEditReason, v))
}

// EditReasonLTE applies the LTE predicate on the "edit_reason" field.
func EditReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEditReason, v))
}

// EditReasonContains applies the Contains predicate on the "edit_reason" field.
func EditReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldEditReason, v))
}

// EditReasonHasPrefix applies the HasPrefix predicate on the "edit_reason" field.
func EditReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldEditReason, v))
}

// EditReasonHasSuffix applies the HasSuffix predicate on the "edit_reason" field.
func EditReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldEditReason, v))
}

// EditReasonIsNil applies the IsNil predicate on the "edit_reason" field.
func EditReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditReason))
}

// EditReasonNotNil applies the NotNil predicate on the "edit_reason" field.
func EditReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditReason))
}

// EditReasonEqualFold applies the EqualFold predicate on the "edit_reason" field.
func EditReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldEditReason, v))
}

// EditReasonContainsFold applies the ContainsFold predicate on the "edit_reason" field.
func EditReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldEditReason, v))
}

// EditRequestedAtEQ applies the EQ predicate on the "edit_requested_at" field.
func EditRequestedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditRequestedAt, v))
}

// EditRequestedAtNEQ applies the NEQ predicate on the "edit_requested_at" field.
func EditRequestedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditRequestedAt, v))
}

// EditRequestedAtIn applies the In predicate on the "edit_requested_at" field.
func EditRequestedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditRequestedAt, vs...))
}

// EditRequestedAtNotIn applies the NotIn predicate on the "edit_requested_at" field.
func EditRequestedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditRequestedAt, vs...))
}

// EditRequestedAtGT applies the GT predicate on the "edit_requested_at" field.
func EditRequestedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEditRequestedAt, v))
}

// EditRequestedAtGTE applies the GTE predicate on the "edit_requested_at" field.
func EditRequestedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEditRequestedAt, v))
}

// EditRequestedAtLT applies the LT predicate on the "edit_requested_at" field.
func EditRequestedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEditRequestedAt, v))
}

// EditRequestedAtLTE applies the LTE predicate on the "edit_requested_at" field.
func EditRequestedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEditRequestedAt, v))
}

// EditRequestedAtIsNil applies the IsNil predicate on the "edit_requested_at" field.
func EditRequestedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditRequestedAt))
}

// EditRequestedAtNotNil applies the NotNil predicate on the "edit_requested_at" field.
func EditRequestedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditRequestedAt))
}

// EditStatusEQ applies the EQ predicate on the "edit_status" field.
func EditStatusEQ(v EditStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditStatus, v))
}

// EditStatusNEQ applies the NEQ predicate on the "edit_status" field.
func EditStatusNEQ(v EditStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditStatus, v))
}

// EditStatusIn applies the In predicate on the "edit_status" field.
func EditStatusIn(vs ...EditStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditStatus, vs...))
}

// EditStatusNotIn applies the NotIn predicate on the "edit_status" field.
func EditStatusNotIn(vs ...EditStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditStatus, vs...))
}

// EditStatusIsNil applies the IsNil predicate on the "edit_status" field.
func EditStatusIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditStatus))
}

// EditStatusNotNil applies the NotNil predicate on the "edit_status" field.
func EditStatusNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditStatus))
}

// EditRejectReasonEQ applies the EQ predicate on the "edit_reject_reason" field.
func EditRejectReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEditRejectReason, v))
}

// EditRejectReasonNEQ applies the NEQ predicate on the "edit_reject_reason" field.
func EditRejectReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEditRejectReason, v))
}

// EditRejectReasonIn applies the In predicate on the "edit_reject_reason" field.
func EditRejectReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEditRejectReason, vs...))
}

// EditRejectReasonNotIn applies the NotIn predicate on the "edit_reject_reason" field.
func EditRejectReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEditRejectReason, vs...))
}

// EditRejectReasonGT applies the GT predicate on the "edit_reject_reason" field.
func EditRejectReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEditRejectReason, v))
}

// EditRejectReasonGTE applies the GTE predicate on the "edit_reject_reason" field.
func EditRejectReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEditRejectReason, v))
}

// EditRejectReasonLT applies the LT predicate on the "edit_reject_reason" field.
func EditRejectReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEditRejectReason, v))
}

// EditRejectReasonLTE applies the LTE predicate on the "edit_reject_reason" field.
func EditRejectReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEditRejectReason, v))
}

// EditRejectReasonContains applies the Contains predicate on the "edit_reject_reason" field.
func EditRejectReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldEditRejectReason, v))
}

// EditRejectReasonHasPrefix applies the HasPrefix predicate on the "edit_reject_reason" field.
func EditRejectReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldEditRejectReason, v))
}

// EditRejectReasonHasSuffix applies the HasSuffix predicate on the "edit_reject_reason" field.
func EditRejectReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldEditRejectReason, v))
}

// EditRejectReasonIsNil applies the IsNil predicate on the "edit_reject_reason" field.
func EditRejectReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEditRejectReason))
}

// EditRejectReasonNotNil applies the NotNil predicate on the "edit_reject_reason" field.
func EditRejectReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEditRejectReason))
}

// EditRejectReasonEqualFold applies the EqualFold predicate on the "edit_reject_reason" field.
func EditRejectReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldEditRejectReason, v))
}

// EditRejectReasonContainsFold applies the ContainsFold predicate on the "edit_reject_reason" field.
func EditRejectReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldEditRejectReason, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
