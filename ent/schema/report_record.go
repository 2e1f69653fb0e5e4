package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportRecord is a generated student report persisted for downstream
// rendering. The report body is stored as JSON so the engine's output
// shape can evolve without migrations.
type ReportRecord struct {
	ent.Schema
}

func (ReportRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at save time"),
		field.String("user_id").
			NotEmpty(),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized analytics.StudentReport"),
	}
}

func (ReportRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("generated_at"),
	}
}
