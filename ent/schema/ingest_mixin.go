package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// IngestMixin provides the base fields shared by ingested records: a global
// monotonically increasing sequence and the ingest timestamp. The engine's
// first-attempt semantics depend on input order, so the sequence is what
// makes re-reading the submission log reproduce the original order.
type IngestMixin struct {
	mixin.Schema
}

func (IngestMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global ingest sequence"),
		field.Time("ingested_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of ingestion"),
	}
}

func (IngestMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
	}
}
