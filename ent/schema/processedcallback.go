package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedCallback holds the schema definition for the ProcessedCallback
// entity. One row per handled prediction id; the insert is the idempotency
// point for completion events, so it survives restarts and works across
// replicas.
type ProcessedCallback struct {
	ent.Schema
}

// Fields of the ProcessedCallback.
func (ProcessedCallback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prediction_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Optional().
			Comment("Filled in once the owner is located"),
		field.String("outcome").
			Comment("Provider-reported terminal status"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProcessedCallback.
func (ProcessedCallback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("received_at"),
	}
}
