package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a compaction point in the event log: the learner's whole
// state rolled up as JSON, stamped with the sequence it covers.
// Startup loads the newest snapshot and replays only the events after
// its sequence.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
