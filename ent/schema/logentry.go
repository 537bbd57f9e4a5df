package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LogEntry holds the schema definition for an ingested application log.
// Log entries are immutable after ingest; the core only reads them.
type LogEntry struct {
	ent.Schema
}

// Fields of the LogEntry.
func (LogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("service_name").
			Immutable(),
		field.Enum("severity").
			Values("trace", "debug", "info", "warn", "error", "critical", "unknown").
			Default("unknown").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Origin of the log (app, signoz, email, ...)"),
		field.String("user_id").
			Immutable(),
		field.String("integration_id").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Free-form tree: traceId, spanId, duration, stackTrace, codePaths, ..."),
		field.Bool("is_email").
			Default(false).
			Immutable().
			Comment("Logs ingested from the email integration; purged first by cleanup"),
	}
}

// Indexes of the LogEntry.
func (LogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "service_name", "source"),
		index.Fields("service_name"),
		index.Fields("timestamp"),
	}
}
