package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records sign-in and sign-out of the local learner profile.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("signin or signout"),
		field.String("learner_name").
			Default("").
			Comment("Display name of the learner (on signin only)"),
		field.String("role").
			Default("").
			Comment("Role claim at the time of the event"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
