package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the central incident aggregate:
// a durable grouping of critical logs judged to represent one logical problem
// within a short time window for one service.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("severity").
			Values("low", "medium", "high", "critical").
			Default("medium").
			Comment("Escalates only upward across merges"),
		field.Enum("status").
			Values("open", "investigating", "healing", "resolved", "failed").
			Default("open"),
		field.String("service_name"),
		field.String("source"),
		field.String("user_id"),
		field.String("integration_id").
			Optional(),
		field.String("repo_name").
			Optional().
			Comment("owner/repo resolved from integration config"),
		field.JSON("log_ids", []string{}).
			Comment("Ordered unique set of constituent log ids"),
		field.JSON("trigger_event", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of the log that opened the incident"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Merge of constituent log metadata; new values win on collision"),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now).
			Comment("Monotonic non-decreasing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Text("root_cause").
			Optional(),
		field.Text("action_taken").
			Optional(),
		field.Text("code_fix_explanation").
			Optional(),
		field.String("pr_url").
			Optional(),
		field.Int("pr_number").
			Optional(),
		field.JSON("pr_files_changed", []string{}).
			Optional(),
		field.JSON("pr_original_contents", map[string]string{}).
			Optional().
			Comment("Pre-change file contents kept for rollback review"),
	}
}

// Indexes of the Incident. The merge lookup scans OPEN incidents for one
// (user, service, source) tuple inside the dedup window.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "service_name", "source", "status"),
		index.Fields("status", "last_seen_at"),
		index.Fields("service_name"),
	}
}
