package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent is one raw attempt from the submission log, stored in
// ingest order (see IngestMixin).
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{IngestMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Student id as it appears in the source export"),
		field.String("step_id").
			Comment("May be empty; the engine discards such rows itself"),
		field.String("status").
			Comment("Raw status string; only \"correct\" counts as success"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("step_id"),
	}
}
