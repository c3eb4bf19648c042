package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is the clinic's patient record. Account identity (login,
// password) lives in the external auth service; we only keep contact
// and visit bookkeeping here.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			MaxLen(255),

		field.String("phone").
			MaxLen(20),

		field.String("email").
			Optional().
			MaxLen(255),

		field.Bool("is_new").
			Default(true).
			Comment("Cleared on the patient's first booking"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
		edge.To("notifications", Notification.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone"),
	}
}
