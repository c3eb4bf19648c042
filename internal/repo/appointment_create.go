// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	"github.com/nobatclinic/nobat_backend/internal/repo/patient"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentCreate) SetPatientID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *AppointmentCreate) SetDate(v time.Time) *AppointmentCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTimeSlot sets the "time_slot" field.
func (_c *AppointmentCreate) SetTimeSlot(v string) *AppointmentCreate {
	_c.mutation.SetTimeSlot(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AppointmentCreate) SetReason(v string) *AppointmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AppointmentCreate) SetNotes(v string) *AppointmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNotes(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetVisitType sets the "visit_type" field.
func (_c *AppointmentCreate) SetVisitType(v appointment.VisitType) *AppointmentCreate {
	_c.mutation.SetVisitType(v)
	return _c
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableVisitType(v *appointment.VisitType) *AppointmentCreate {
	if v != nil {
		_c.SetVisitType(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *AppointmentCreate) SetPaymentMethod(v appointment.PaymentMethod) *AppointmentCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePaymentMethod(v *appointment.PaymentMethod) *AppointmentCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *AppointmentCreate) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMedicalReport sets the "medical_report" field.
func (_c *AppointmentCreate) SetMedicalReport(v string) *AppointmentCreate {
	_c.mutation.SetMedicalReport(v)
	return _c
}

// SetNillableMedicalReport sets the "medical_report" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableMedicalReport(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetMedicalReport(*v)
	}
	return _c
}

// SetPrescription sets the "prescription" field.
func (_c *AppointmentCreate) SetPrescription(v string) *AppointmentCreate {
	_c.mutation.SetPrescription(v)
	return _c
}

// SetNillablePrescription sets the "prescription" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePrescription(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetPrescription(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *AppointmentCreate) SetCancellationReason(v string) *AppointmentCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancellationReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetEditDate sets the "edit_date" field.
func (_c *AppointmentCreate) SetEditDate(v time.Time) *AppointmentCreate {
	_c.mutation.SetEditDate(v)
	return _c
}

// SetNillableEditDate sets the "edit_date" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditDate(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetEditDate(*v)
	}
	return _c
}

// SetEditTimeSlot sets the "edit_time_slot" field.
func (_c *AppointmentCreate) SetEditTimeSlot(v string) *AppointmentCreate {
	_c.mutation.SetEditTimeSlot(v)
	return _c
}

// SetNillableEditTimeSlot sets the "edit_time_slot" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditTimeSlot(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetEditTimeSlot(*v)
	}
	return _c
}

// SetEditReason sets the "edit_reason" field.
func (_c *AppointmentCreate) SetEditReason(v string) *AppointmentCreate {
	_c.mutation.SetEditReason(v)
	return _c
}

// SetNillableEditReason sets the "edit_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetEditReason(*v)
	}
	return _c
}

// SetEditRequestedAt sets the "edit_requested_at" field.
func (_c *AppointmentCreate) SetEditRequestedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetEditRequestedAt(v)
	return _c
}

// SetNillableEditRequestedAt sets the "edit_requested_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditRequestedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetEditRequestedAt(*v)
	}
	return _c
}

// SetEditStatus sets the "edit_status" field.
func (_c *AppointmentCreate) SetEditStatus(v appointment.EditStatus) *AppointmentCreate {
	_c.mutation.SetEditStatus(v)
	return _c
}

// SetNillableEditStatus sets the "edit_status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditStatus(v *appointment.EditStatus) *AppointmentCreate {
	if v != nil {
		_c.SetEditStatus(*v)
	}
	return _c
}

// SetEditRejectReason sets the "edit_reject_reason" field.
func (_c *AppointmentCreate) SetEditRejectReason(v string) *AppointmentCreate {
	_c.mutation.SetEditRejectReason(v)
	return _c
}

// SetNillableEditRejectReason sets the "edit_reject_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEditRejectReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetEditRejectReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *AppointmentCreate) SetPatient(v *Patient) *AppointmentCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		v := appointment.DefaultVisitType
		_c.mutation.SetVisitType(v)
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		v := appointment.DefaultPaymentMethod
		_c.mutation.SetPaymentMethod(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := appointment.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Appointment.patient_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Appointment.date"`)}
	}
	if _, ok := _c.mutation.TimeSlot(); !ok {
		return &ValidationError{Name: "time_slot", err: errors.New(`repo: missing required field "Appointment.time_slot"`)}
	}
	if v, ok := _c.mutation.TimeSlot(); ok {
		if err := appointment.TimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.time_slot": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "Appointment.reason"`)}
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		return &ValidationError{Name: "visit_type", err: errors.New(`repo: missing required field "Appointment.visit_type"`)}
	}
	if v, ok := _c.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`repo: missing required field "Appointment.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := appointment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`repo: missing required field "Appointment.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EditTimeSlot(); ok {
		if err := appointment.EditTimeSlotValidator(v); err != nil {
			return &ValidationError{Name: "edit_time_slot", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_time_slot": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EditStatus(); ok {
		if err := appointment.EditStatusValidator(v); err != nil {
			return &ValidationError{Name: "edit_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.edit_status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Appointment.patient"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.TimeSlot(); ok {
		_spec.SetField(appointment.FieldTimeSlot, field.TypeString, value)
		_node.TimeSlot = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
		_node.VisitType = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(appointment.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MedicalReport(); ok {
		_spec.SetField(appointment.FieldMedicalReport, field.TypeString, value)
		_node.MedicalReport = &value
	}
	if value, ok := _c.mutation.Prescription(); ok {
		_spec.SetField(appointment.FieldPrescription, field.TypeString, value)
		_node.Prescription = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.EditDate(); ok {
		_spec.SetField(appointment.FieldEditDate, field.TypeTime, value)
		_node.EditDate = &value
	}
	if value, ok := _c.mutation.EditTimeSlot(); ok {
		_spec.SetField(appointment.FieldEditTimeSlot, field.TypeString, value)
		_node.EditTimeSlot = &value
	}
	if value, ok := _c.mutation.EditReason(); ok {
		_spec.SetField(appointment.FieldEditReason, field.TypeString, value)
		_node.EditReason = &value
	}
	if value, ok := _c.mutation.EditRequestedAt(); ok {
		_spec.SetField(appointment.FieldEditRequestedAt, field.TypeTime, value)
		_node.EditRequestedAt = &value
	}
	if value, ok := _c.mutation.EditStatus(); ok {
		_spec.SetField(appointment.FieldEditStatus, field.TypeEnum, value)
		_node.EditStatus = &value
	}
	if value, ok := _c.mutation.EditRejectReason(); ok {
		_spec.SetField(appointment.FieldEditRejectReason, field.TypeString, value)
		_node.EditRejectReason = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
