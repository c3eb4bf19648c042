package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit for one patient on one half-hour slot.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("date").
			Comment("Visit day, normalized to midnight UTC"),

		field.String("time_slot").
			MaxLen(5).
			Comment(`Half-hour label from the slot catalog, e.g. "09:30"`),

		field.Text("reason").
			Comment("Why the patient is coming in; required at booking"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("visit_type").
			Values("new", "followup", "consultation").
			Default("new"),

		field.Enum("payment_method").
			Values("cash", "credit_card", "insurance", "bank_transfer").
			Default("cash"),

		field.Enum("payment_status").
			Values("pending", "paid", "refunded", "partially_paid").
			Default("pending"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Text("medical_report").
			Optional().
			Nillable(),

		field.Text("prescription").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		// Staged edit request. The proposal lives next to the live
		// date/time_slot until an admin approves or rejects it.
		field.Time("edit_date").
			Optional().
			Nillable(),

		field.String("edit_time_slot").
			Optional().
			Nillable().
			MaxLen(5),

		field.Text("edit_reason").
			Optional().
			Nillable(),

		field.Time("edit_requested_at").
			Optional().
			Nillable(),

		field.Enum("edit_status").
			Values("pending", "approved", "rejected").
			Optional().
			Nillable(),

		field.Text("edit_reject_reason").
			Optional(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// One active booking per slot. Cancelled rows free the slot,
		// so the uniqueness is partial.
		index.Fields("date", "time_slot").
			Annotations(entsql.IndexWhere("status <> 'cancelled'")).
			Unique(),
		index.Fields("patient_id", "status"),
		index.Fields("date", "status"),
	}
}
