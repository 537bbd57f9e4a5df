// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/agentrecord"
)

// AgentRecord is the model entity for the AgentRecord schema.
type AgentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Nicknames and role keywords used by chat mention matching
	Keywords []string `json:"keywords,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrecord.Status `json:"status,omitempty"`
	// CurrentTask holds the value of the "current_task" field.
	CurrentTask *string `json:"current_task,omitempty"`
	// Bounded history, newest last, max 50 entries
	CompletedTasks []map[string]interface{} `json:"completed_tasks,omitempty"`
	// LastActiveAt holds the value of the "last_active_at" field.
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldKeywords, agentrecord.FieldCompletedTasks:
			values[i] = new([]byte)
		case agentrecord.FieldID, agentrecord.FieldName, agentrecord.FieldRole, agentrecord.FieldStatus, agentrecord.FieldCurrentTask:
			values[i] = new(sql.NullString)
		case agentrecord.FieldLastActiveAt, agentrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRecord fields.
func (_m *AgentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentrecord.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agentrecord.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case agentrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrecord.Status(value.String)
			}
		case agentrecord.FieldCurrentTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_task", values[i])
			} else if value.Valid {
				_m.CurrentTask = new(string)
				*_m.CurrentTask = value.String
			}
		case agentrecord.FieldCompletedTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedTasks); err != nil {
					return fmt.Errorf("unmarshal field completed_tasks: %w", err)
				}
			}
		case agentrecord.FieldLastActiveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_at", values[i])
			} else if value.Valid {
				_m.LastActiveAt = new(time.Time)
				*_m.LastActiveAt = value.Time
			}
		case agentrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentRecord.
// Note that you need to call AgentRecord.Unwrap() before calling this method if this AgentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRecord) Update() *AgentRecordUpdateOne {
	return NewAgentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRecord) Unwrap() *AgentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentTask; v != nil {
		builder.WriteString("current_task=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("completed_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTasks))
	builder.WriteString(", ")
	if v := _m.LastActiveAt; v != nil {
		builder.WriteString("last_active_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRecords is a parsable slice of AgentRecord.
type AgentRecords []*AgentRecord
