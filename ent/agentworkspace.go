// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
)

// AgentWorkspace is the model entity for the AgentWorkspace schema.
type AgentWorkspace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// Files holds the value of the "files" field.
	Files map[string]string `json:"files,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes []map[string]interface{} `json:"notes,omitempty"`
	// PlanProgress holds the value of the "plan_progress" field.
	PlanProgress map[string]interface{} `json:"plan_progress,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentWorkspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentworkspace.FieldFiles, agentworkspace.FieldNotes, agentworkspace.FieldPlanProgress:
			values[i] = new([]byte)
		case agentworkspace.FieldID, agentworkspace.FieldIncidentID:
			values[i] = new(sql.NullString)
		case agentworkspace.FieldCreatedAt, agentworkspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentWorkspace fields.
func (_m *AgentWorkspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentworkspace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentworkspace.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case agentworkspace.FieldFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Files); err != nil {
					return fmt.Errorf("unmarshal field files: %w", err)
				}
			}
		case agentworkspace.FieldNotes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Notes); err != nil {
					return fmt.Errorf("unmarshal field notes: %w", err)
				}
			}
		case agentworkspace.FieldPlanProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanProgress); err != nil {
					return fmt.Errorf("unmarshal field plan_progress: %w", err)
				}
			}
		case agentworkspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentworkspace.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentWorkspace.
// This includes values selected through modifiers, order, etc.
func (_m *AgentWorkspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentWorkspace.
// Note that you need to call AgentWorkspace.Unwrap() before calling this method if this AgentWorkspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentWorkspace) Update() *AgentWorkspaceUpdateOne {
	return NewAgentWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentWorkspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentWorkspace) Unwrap() *AgentWorkspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentWorkspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentWorkspace) String() string {
	var builder strings.Builder
	builder.WriteString("AgentWorkspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("files=")
	builder.WriteString(fmt.Sprintf("%v", _m.Files))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notes))
	builder.WriteString(", ")
	builder.WriteString("plan_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanProgress))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentWorkspaces is a parsable slice of AgentWorkspace.
type AgentWorkspaces []*AgentWorkspace
