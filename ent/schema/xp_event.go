package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records a single experience-point award. The event log is
// append-only; the canonical totals live in the studentData record and
// events exist for history display and audit.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("award_id").
			Unique().
			Immutable().
			Comment("UUID assigned at award time"),
		field.Int("amount").
			Immutable().
			Comment("XP awarded"),
		field.String("reason").
			Default("").
			Immutable().
			Comment("Free-form reason shown in history"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the award"),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
