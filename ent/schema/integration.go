package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Integration holds the schema definition for a user's connected provider
// (GitHub, SigNoz, Linear, Slack, email). The reducer reads integration
// config to resolve repo names and writes liveness state on every log.
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("provider").
			Values("github", "signoz", "linear", "slack", "email"),
		field.Enum("status").
			Values("active", "inactive", "error").
			Default("inactive"),
		field.Time("last_log_time").
			Optional().
			Nillable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Provider config: service_mappings, repo_name, repository, project_id, tokens"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider"),
		index.Fields("user_id", "status"),
	}
}
