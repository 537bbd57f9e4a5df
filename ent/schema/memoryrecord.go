package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryRecord holds the per-fingerprint memory of prior outcomes: known
// fixes, past errors, and the learning pattern (typical files touched) used
// to warm-start future runs.
type MemoryRecord struct {
	ent.Schema
}

// Fields of the MemoryRecord.
func (MemoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("fingerprint").
			Unique().
			Immutable().
			Comment("16-hex incident fingerprint"),
		field.String("error_type").
			Default("unknown"),
		field.JSON("known_fixes", []map[string]interface{}{}).
			Optional(),
		field.JSON("past_errors", []map[string]interface{}{}).
			Optional(),
		field.JSON("typical_files_read", []string{}).
			Optional(),
		field.JSON("typical_files_modified", []string{}).
			Optional(),
		field.Int("confidence_score").
			Default(0).
			Comment("0..100"),
		field.Int("times_seen").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MemoryRecord.
func (MemoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("error_type"),
	}
}
