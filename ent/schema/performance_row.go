package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PerformanceRow is the upstream per-student performance aggregate.
// Exactly one row per student id; re-ingesting replaces the table.
type PerformanceRow struct {
	ent.Schema
}

func (PerformanceRow) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.String("segment").
			Default(""),
		field.Float("total_pct"),
		field.Float("success_rate"),
		field.Float("consistency_index").
			Default(0),
		field.Float("struggle_index").
			Default(0),
		field.Float("effort_index").
			Default(0),
		field.Float("active_days_ratio").
			Default(0),
		field.Float("meetings_attended_pct").
			Default(0),
	}
}
