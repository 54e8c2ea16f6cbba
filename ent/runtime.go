// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arjunk/stemly/ent/record"
	"github.com/arjunk/stemly/ent/schema"
	"github.com/arjunk/stemly/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescUpdatedAt is the schema descriptor for updated_at field.
	recordDescUpdatedAt := recordFields[2].Descriptor()
	// record.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	record.DefaultUpdatedAt = recordDescUpdatedAt.Default.(func() time.Time)
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[2].Descriptor()
	// xpevent.DefaultReason holds the default value on creation for the reason field.
	xpevent.DefaultReason = xpeventDescReason.Default.(string)
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventFields[3].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
}
