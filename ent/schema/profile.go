package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile holds the persisted session state: the auth token and the
// current user record. A single row exists at most; sign-out deletes it
// so token and user record can never be observed half-cleared.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("auth_token").
			NotEmpty().
			Comment("Opaque credential issued at sign-in"),
		field.String("user_record").
			Comment("JSON user record containing at least a role field"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
