package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeChunk holds one vector-indexed document of the knowledge corpus:
// a past fix, a code pattern, or documentation. The embedding is stored
// alongside the content and ranked by cosine similarity at query time.
type KnowledgeChunk struct {
	ent.Schema
}

// Fields of the KnowledgeChunk.
func (KnowledgeChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Enum("source").
			Values("past_fix", "code_pattern", "documentation").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("embedding", []float64{}).
			Immutable(),
		field.String("content_hash").
			Unique().
			Immutable().
			Comment("SHA-256 of source+content; makes indexing idempotent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the KnowledgeChunk.
func (KnowledgeChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
