package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentEvent persists one non-COMPRESSION entry of a run's event stream for
// debugging and learning. These rows are subject to retention cleanup.
type AgentEvent struct {
	ent.Schema
}

// Fields of the AgentEvent.
func (AgentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.String("type").
			Immutable(),
		field.String("agent_name").
			Optional().
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentEvent.
func (AgentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "timestamp"),
		index.Fields("timestamp"),
	}
}

// AgentPlan persists one plan version (initial plan or replan) for a run.
type AgentPlan struct {
	ent.Schema
}

// Fields of the AgentPlan.
func (AgentPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("0 = initial plan, increments per replan"),
		field.JSON("steps", []map[string]interface{}{}).
			Immutable(),
		field.String("replan_reason").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentPlan.
func (AgentPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "version"),
	}
}

// AgentWorkspace persists the final workspace snapshot of a run: file
// contents produced by the agent, notes, and progress.
type AgentWorkspace struct {
	ent.Schema
}

// Fields of the AgentWorkspace.
func (AgentWorkspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workspace_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Unique().
			Immutable(),
		field.JSON("files", map[string]string{}).
			Optional(),
		field.JSON("notes", []map[string]interface{}{}).
			Optional(),
		field.JSON("plan_progress", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
