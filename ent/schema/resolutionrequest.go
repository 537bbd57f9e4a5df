package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResolutionRequest holds the schema definition for the per-incident
// resolution ledger row. At most one row exists per incident; the state
// machine is QUEUED → IN_FLIGHT → {COMPLETED, FAILED} with QUEUED → FAILED
// allowed. The QUEUED → IN_FLIGHT claim is an atomic compare-and-set.
type ResolutionRequest struct {
	ent.Schema
}

// Fields of the ResolutionRequest.
func (ResolutionRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("incident_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("queued", "in_flight", "completed", "failed").
			Default("queued"),
		field.String("requested_by_user_id"),
		field.String("requested_by_trigger"),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable().
			MaxLen(2000),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the ResolutionRequest.
func (ResolutionRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("state", "claimed_at"),
	}
}
