// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/agentplan"
)

// AgentPlan is the model entity for the AgentPlan schema.
type AgentPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// 0 = initial plan, increments per replan
	Version int `json:"version,omitempty"`
	// Steps holds the value of the "steps" field.
	Steps []map[string]interface{} `json:"steps,omitempty"`
	// ReplanReason holds the value of the "replan_reason" field.
	ReplanReason string `json:"replan_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentplan.FieldSteps:
			values[i] = new([]byte)
		case agentplan.FieldVersion:
			values[i] = new(sql.NullInt64)
		case agentplan.FieldID, agentplan.FieldIncidentID, agentplan.FieldReplanReason:
			values[i] = new(sql.NullString)
		case agentplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentPlan fields.
func (_m *AgentPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentplan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentplan.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case agentplan.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case agentplan.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case agentplan.FieldReplanReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field replan_reason", values[i])
			} else if value.Valid {
				_m.ReplanReason = value.String
			}
		case agentplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentPlan.
// This includes values selected through modifiers, order, etc.
func (_m *AgentPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentPlan.
// Note that you need to call AgentPlan.Unwrap() before calling this method if this AgentPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentPlan) Update() *AgentPlanUpdateOne {
	return NewAgentPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentPlan) Unwrap() *AgentPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentPlan) String() string {
	var builder strings.Builder
	builder.WriteString("AgentPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("replan_reason=")
	builder.WriteString(_m.ReplanReason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentPlans is a parsable slice of AgentPlan.
type AgentPlans []*AgentPlan
