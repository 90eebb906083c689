package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records a stage completion within an activity run.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping events in a single activity run"),
		field.String("activity_id").
			NotEmpty().
			Comment("Activity the stage belongs to: circuit, motor, traffic, robot"),
		field.String("stage_id").
			NotEmpty(),
		field.String("stage_name").
			Default(""),
		field.Int("stars").
			Default(0).
			Comment("Stars awarded for this completion (0 on re-completion)"),
		field.Bool("activity_complete").
			Default(false).
			Comment("True when this completion finished the terminal stage"),
		field.String("evidence").
			Default("").
			Comment("How the learner confirmed the stage, e.g. confirm-button"),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("activity_id"),
		index.Fields("stage_id"),
	}
}
