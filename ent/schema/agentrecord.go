package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the status row for one participating agent (analyzer,
// planner, editor). Status transitions are a small state machine: available →
// working on task start, working → available on terminal outcome, idle only
// via the inactivity timer, disabled until re-enabled externally.
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("role").
			Optional(),
		field.JSON("keywords", []string{}).
			Optional().
			Comment("Nicknames and role keywords used by chat mention matching"),
		field.Enum("status").
			Values("available", "working", "idle", "disabled").
			Default("available"),
		field.String("current_task").
			Optional().
			Nillable(),
		field.JSON("completed_tasks", []map[string]interface{}{}).
			Optional().
			Comment("Bounded history, newest last, max 50 entries"),
		field.Time("last_active_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
