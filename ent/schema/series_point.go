package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SeriesPoint is one day of a student's activity time series.
type SeriesPoint struct {
	ent.Schema
}

func (SeriesPoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("date_iso").
			NotEmpty().
			Comment("YYYY-MM-DD; lexicographic order is chronological order"),
		field.Float("activity_total"),
	}
}

func (SeriesPoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date_iso").
			Unique(),
	}
}
