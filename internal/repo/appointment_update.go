// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	"github.com/nobatclinic/nobat_backend/internal/repo/patient"
	"github.com/nobatclinic/nobat_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *AppointmentUpdate) SetTimeSlot(v string) *AppointmentUpdate {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTimeSlot(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *AppointmentUpdate) SetVisitType(v appointment.VisitType) *AppointmentUpdate {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableVisitType(v *appointment.VisitType) *AppointmentUpdate {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *AppointmentUpdate) SetPaymentMethod(v appointment.PaymentMethod) *AppointmentUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePaymentMethod(v *appointment.PaymentMethod) *AppointmentUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *AppointmentUpdate) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMedicalReport sets the "medical_report" field.
func (_u *AppointmentUpdate) SetMedicalReport(v string) *AppointmentUpdate {
	_u.mutation.SetMedicalReport(v)
	return _u
}

// SetNillableMedicalReport sets the "medical_report" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMedicalReport(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetMedicalReport(*v)
	}
	return _u
}

// ClearMedicalReport clears the value of the "medical_report" field.
func (_u *AppointmentUpdate) ClearMedicalReport() *AppointmentUpdate {
	_u.mutation.ClearMedicalReport()
	return _u
}

// SetPrescription sets the "prescription" field.
func (_u *AppointmentUpdate) SetPrescription(v string) *AppointmentUpdate {
	_u.mutation.SetPrescription(v)
	return _u
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePrescription(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPrescription(*v)
	}
	return _u
}

// ClearPrescription clears the value of the "prescription" field.
func (_u *AppointmentUpdate) ClearPrescription() *AppointmentUpdate {
	_u.mutation.ClearPrescription()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetEditDate sets the "edit_date" field.
func (_u *AppointmentUpdate) SetEditDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetEditDate(v)
	return _u
}

// SetNillableEditDate sets the "edit_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetEditDate(*v)
	}
	return _u
}

// ClearEditDate clears the value of the "edit_date" field.
func (_u *AppointmentUpdate) ClearEditDate() *AppointmentUpdate {
	_u.mutation.ClearEditDate()
	return _u
}

// SetEditTimeSlot sets the "edit_time_slot" field.
func (_u *AppointmentUpdate) SetEditTimeSlot(v string) *AppointmentUpdate {
	_u.mutation.SetEditTimeSlot(v)
	return _u
}

// SetNillableEditTimeSlot sets the "edit_time_slot" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditTimeSlot(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetEditTimeSlot(*v)
	}
	return _u
}

// ClearEditTimeSlot clears the value of the "edit_time_slot" field.
func (_u *AppointmentUpdate) ClearEditTimeSlot() *AppointmentUpdate {
	_u.mutation.ClearEditTimeSlot()
	return _u
}

// SetEditReason sets the "edit_reason" field.
func (_u *AppointmentUpdate) SetEditReason(v string) *AppointmentUpdate {
	_u.mutation.SetEditReason(v)
	return _u
}

// SetNillableEditReason sets the "edit_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetEditReason(*v)
	}
	return _u
}

// ClearEditReason clears the value of the "edit_reason" field.
func (_u *AppointmentUpdate) ClearEditReason() *AppointmentUpdate {
	_u.mutation.ClearEditReason()
	return _u
}

// SetEditRequestedAt sets the "edit_requested_at" field.
func (_u *AppointmentUpdate) SetEditRequestedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetEditRequestedAt(v)
	return _u
}

// SetNillableEditRequestedAt sets the "edit_requested_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditRequestedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetEditRequestedAt(*v)
	}
	return _u
}

// ClearEditRequestedAt clears the value of the "edit_requested_at" field.
func (_u *AppointmentUpdate) ClearEditRequestedAt() *AppointmentUpdate {
	_u.mutation.ClearEditRequestedAt()
	return _u
}

// SetEditStatus sets the "edit_status" field.
func (_u *AppointmentUpdate) SetEditStatus(v appointment.EditStatus) *AppointmentUpdate {
	_u.mutation.SetEditStatus(v)
	return _u
}

// SetNillableEditStatus sets the "edit_status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditStatus(v *appointment.EditStatus) *AppointmentUpdate {
	if v != nil {
		_u.SetEditStatus(*v)
	}
	return _u
}

// ClearEditStatus clears the value of the "edit_status" field.
func (_u *AppointmentUpdate) ClearEditStatus() *AppointmentUpdate {
	_u.mutation.ClearEditStatus()
	return _u
}

// SetEditRejectReason sets the "edit_reject_reason" field.
func (_u *AppointmentUpdate) SetEditRejectReason(v string) *AppointmentUpdate {
	_u.mutation.SetEditRejectReason(v)
	return _u
}

// SetNillableEditRejectReason sets the "edit_reject_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEditRejectReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetEditRejectReason(*v)
	}
	return _u
}

// ClearEditRejectReason clears the value of the "edit_reject_reason" field.
func (_u *AppointmentUpdate) ClearEditRejectReason() *AppointmentUpdate {
	_u.mutation.ClearEditRejectReason()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) SetPatient(v *Patient) *AppointmentUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) ClearPatient() *AppointmentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.TimeSlot(); ok {
		if err := appointment.TimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.time_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := appointment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EditTimeSlot(); ok {
		if err := appointment.EditTimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "edit_time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_time_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EditStatus(); ok {
		if err := appointment.EditStatusValidator(v); err != nil {
			return &ValidationError{Name: "edit_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(appointment.FieldTimeSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(appointment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MedicalReport(); ok {
		_spec.SetField(appointment.FieldMedicalReport, field.TypeString, value)
	}
	if _u.mutation.MedicalReportCleared() {
		_spec.ClearField(appointment.FieldMedicalReport, field.TypeString)
	}
	if value, ok := _u.mutation.Prescription(); ok {
		_spec.SetField(appointment.FieldPrescription, field.TypeString, value)
	}
	if _u.mutation.PrescriptionCleared() {
		_spec.ClearField(appointment.FieldPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditDate(); ok {
		_spec.SetField(appointment.FieldEditDate, field.TypeTime, value)
	}
	if _u.mutation.EditDateCleared() {
		_spec.ClearField(appointment.FieldEditDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EditTimeSlot(); ok {
		_spec.SetField(appointment.FieldEditTimeSlot, field.TypeString, value)
	}
	if _u.mutation.EditTimeSlotCleared() {
		_spec.ClearField(appointment.FieldEditTimeSlot, field.TypeString)
	}
	if value, ok := _u.mutation.EditReason(); ok {
		_spec.SetField(appointment.FieldEditReason, field.TypeString, value)
	}
	if _u.mutation.EditReasonCleared() {
		_spec.ClearField(appointment.FieldEditReason, field.TypeString)
	}
	if value, ok := _u.mutation.EditRequestedAt(); ok {
		_spec.SetField(appointment.FieldEditRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.EditRequestedAtCleared() {
		_spec.ClearField(appointment.FieldEditRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditStatus(); ok {
		_spec.SetField(appointment.FieldEditStatus, field.TypeEnum, value)
	}
	if _u.mutation.EditStatusCleared() {
		_spec.ClearField(appointment.FieldEditStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.EditRejectReason(); ok {
		_spec.SetField(appointment.FieldEditRejectReason, field.TypeString, value)
	}
	if _u.mutation.EditRejectReasonCleared() {
		_spec.ClearField(appointment.FieldEditRejectReason, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *AppointmentUpdateOne) SetTimeSlot(v string) *AppointmentUpdateOne {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTimeSlot(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *AppointmentUpdateOne) SetVisitType(v appointment.VisitType) *AppointmentUpdateOne {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableVisitType(v *appointment.VisitType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *AppointmentUpdateOne) SetPaymentMethod(v appointment.PaymentMethod) *AppointmentUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePaymentMethod(v *appointment.PaymentMethod) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *AppointmentUpdateOne) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMedicalReport sets the "medical_report" field.
func (_u *AppointmentUpdateOne) SetMedicalReport(v string) *AppointmentUpdateOne {
	_u.mutation.SetMedicalReport(v)
	return _u
}

// SetNillableMedicalReport sets the "medical_report" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMedicalReport(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMedicalReport(*v)
	}
	return _u
}

// ClearMedicalReport clears the value of the "medical_report" field.
func (_u *AppointmentUpdateOne) ClearMedicalReport() *AppointmentUpdateOne {
	_u.mutation.ClearMedicalReport()
	return _u
}

// SetPrescription sets the "prescription" field.
func (_u *AppointmentUpdateOne) SetPrescription(v string) *AppointmentUpdateOne {
	_u.mutation.SetPrescription(v)
	return _u
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePrescription(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPrescription(*v)
	}
	return _u
}

// ClearPrescription clears the value of the "prescription" field.
func (_u *AppointmentUpdateOne) ClearPrescription() *AppointmentUpdateOne {
	_u.mutation.ClearPrescription()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetEditDate sets the "edit_date" field.
func (_u *AppointmentUpdateOne) SetEditDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetEditDate(v)
	return _u
}

// SetNillableEditDate sets the "edit_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditDate(*v)
	}
	return _u
}

// ClearEditDate clears the value of the "edit_date" field.
func (_u *AppointmentUpdateOne) ClearEditDate() *AppointmentUpdateOne {
	_u.mutation.ClearEditDate()
	return _u
}

// SetEditTimeSlot sets the "edit_time_slot" field.
func (_u *AppointmentUpdateOne) SetEditTimeSlot(v string) *AppointmentUpdateOne {
	_u.mutation.SetEditTimeSlot(v)
	return _u
}

// SetNillableEditTimeSlot sets the "edit_time_slot" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditTimeSlot(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditTimeSlot(*v)
	}
	return _u
}

// ClearEditTimeSlot clears the value of the "edit_time_slot" field.
func (_u *AppointmentUpdateOne) ClearEditTimeSlot() *AppointmentUpdateOne {
	_u.mutation.ClearEditTimeSlot()
	return _u
}

// SetEditReason sets the "edit_reason" field.
func (_u *AppointmentUpdateOne) SetEditReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetEditReason(v)
	return _u
}

// SetNillableEditReason sets the "edit_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditReason(*v)
	}
	return _u
}

// ClearEditReason clears the value of the "edit_reason" field.
func (_u *AppointmentUpdateOne) ClearEditReason() *AppointmentUpdateOne {
	_u.mutation.ClearEditReason()
	return _u
}

// SetEditRequestedAt sets the "edit_requested_at" field.
func (_u *AppointmentUpdateOne) SetEditRequestedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetEditRequestedAt(v)
	return _u
}

// SetNillableEditRequestedAt sets the "edit_requested_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditRequestedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditRequestedAt(*v)
	}
	return _u
}

// ClearEditRequestedAt clears the value of the "edit_requested_at" field.
func (_u *AppointmentUpdateOne) ClearEditRequestedAt() *AppointmentUpdateOne {
	_u.mutation.ClearEditRequestedAt()
	return _u
}

// SetEditStatus sets the "edit_status" field.
func (_u *AppointmentUpdateOne) SetEditStatus(v appointment.EditStatus) *AppointmentUpdateOne {
	_u.mutation.SetEditStatus(v)
	return _u
}

// SetNillableEditStatus sets the "edit_status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditStatus(v *appointment.EditStatus) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditStatus(*v)
	}
	return _u
}

// ClearEditStatus clears the value of the "edit_status" field.
func (_u *AppointmentUpdateOne) ClearEditStatus() *AppointmentUpdateOne {
	_u.mutation.ClearEditStatus()
	return _u
}

// SetEditRejectReason sets the "edit_reject_reason" field.
func (_u *AppointmentUpdateOne) SetEditRejectReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetEditRejectReason(v)
	return _u
}

// SetNillableEditRejectReason sets the "edit_reject_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEditRejectReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEditRejectReason(*v)
	}
	return _u
}

// ClearEditRejectReason clears the value of the "edit_reject_reason" field.
func (_u *AppointmentUpdateOne) ClearEditRejectReason() *AppointmentUpdateOne {
	_u.mutation.ClearEditRejectReason()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) SetPatient(v *Patient) *AppointmentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) ClearPatient() *AppointmentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.TimeSlot(); ok {
		if err := appointment.TimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.time_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := appointment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EditTimeSlot(); ok {
		if err := appointment.EditTimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "edit_time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_time_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EditStatus(); ok {
		if err := appointment.EditStatusValidator(v); err != nil {
			return &ValidationError{Name: "edit_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(appointment.FieldTimeSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(appointment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MedicalReport(); ok {
		_spec.SetField(appointment.FieldMedicalReport, field.TypeString, value)
	}
	if _u.mutation.MedicalReportCleared() {
		_spec.ClearField(appointment.FieldMedicalReport, field.TypeString)
	}
	if value, ok := _u.mutation.Prescription(); ok {
		_spec.SetField(appointment.FieldPrescription, field.TypeString, value)
	}
	if _u.mutation.PrescriptionCleared() {
		_spec.ClearField(appointment.FieldPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditDate(); ok {
		_spec.SetField(appointment.FieldEditDate, field.TypeTime, value)
	}
	if _u.mutation.EditDateCleared() {
		_spec.ClearField(appointment.FieldEditDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EditTimeSlot(); ok {
		_spec.SetField(appointment.FieldEditTimeSlot, field.TypeString, value)
	}
	if _u.mutation.EditTimeSlotCleared() {
		_spec.ClearField(appointment.FieldEditTimeSlot, field.TypeString)
	}
	if value, ok := _u.mutation.EditReason(); ok {
		_spec.SetField(appointment.FieldEditReason, field.TypeString, value)
	}
	if _u.mutation.EditReasonCleared() {
		_spec.ClearField(appointment.FieldEditReason, field.TypeString)
	}
	if value, ok := _u.mutation.EditRequestedAt(); ok {
		_spec.SetField(appointment.FieldEditRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.EditRequestedAtCleared() {
		_spec.ClearField(appointment.FieldEditRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditStatus(); ok {
		_spec.SetField(appointment.FieldEditStatus, field.TypeEnum, value)
	}
	if _u.mutation.EditStatusCleared() {
		_spec.ClearField(appointment.FieldEditStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.EditRejectReason(); ok {
		_spec.SetField(appointment.FieldEditRejectReason, field.TypeString, value)
	}
	if _u.mutation.EditRejectReasonCleared() {
		_spec.ClearField(appointment.FieldEditRejectReason, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
