package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CurveSummary is the upstream activity-curve summary for one student.
// Exactly one row per student id; re-ingesting replaces the table.
type CurveSummary struct {
	ent.Schema
}

func (CurveSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.String("easing_label").
			NotEmpty().
			Comment("linear, ease, ease-in, ease-out, ease-in-out or no-activity"),
		field.Float("frontload_index").
			Default(0),
		field.Float("consistency").
			Default(0),
		field.Float("burstiness").
			Default(0),
		field.Float("t25").
			Default(0),
		field.Float("t50").
			Default(0),
		field.Float("t75").
			Default(0),
	}
}
