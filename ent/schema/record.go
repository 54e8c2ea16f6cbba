package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is a single entry in the key-value persistence layer.
// The progress tracker stores the student state, the profile, and the
// completed-content ledger each under a well-known key.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Well-known record key (studentData, studentProfile, ...)"),
		field.JSON("data", json.RawMessage{}).
			Comment("Serialized record value"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("When the record was last written"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
