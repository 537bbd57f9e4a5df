// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/incident"
)

// Incident is the model entity for the Incident schema.
type Incident struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Escalates only upward across merges
	Severity incident.Severity `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status incident.Status `json:"status,omitempty"`
	// ServiceName holds the value of the "service_name" field.
	ServiceName string `json:"service_name,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// IntegrationID holds the value of the "integration_id" field.
	IntegrationID string `json:"integration_id,omitempty"`
	// owner/repo resolved from integration config
	RepoName string `json:"repo_name,omitempty"`
	// Ordered unique set of constituent log ids
	LogIds []string `json:"log_ids,omitempty"`
	// Snapshot of the log that opened the incident
	TriggerEvent map[string]interface{} `json:"trigger_event,omitempty"`
	// Merge of constituent log metadata; new values win on collision
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// Monotonic non-decreasing
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// RootCause holds the value of the "root_cause" field.
	RootCause string `json:"root_cause,omitempty"`
	// ActionTaken holds the value of the "action_taken" field.
	ActionTaken string `json:"action_taken,omitempty"`
	// CodeFixExplanation holds the value of the "code_fix_explanation" field.
	CodeFixExplanation string `json:"code_fix_explanation,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL string `json:"pr_url,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber int `json:"pr_number,omitempty"`
	// PrFilesChanged holds the value of the "pr_files_changed" field.
	PrFilesChanged []string `json:"pr_files_changed,omitempty"`
	// Pre-change file contents kept for rollback review
	PrOriginalContents map[string]string `json:"pr_original_contents,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Incident) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incident.FieldLogIds, incident.FieldTriggerEvent, incident.FieldMetadata, incident.FieldPrFilesChanged, incident.FieldPrOriginalContents:
			values[i] = new([]byte)
		case incident.FieldPrNumber:
			values[i] = new(sql.NullInt64)
		case incident.FieldID, incident.FieldTitle, incident.FieldDescription, incident.FieldSeverity, incident.FieldStatus, incident.FieldServiceName, incident.FieldSource, incident.FieldUserID, incident.FieldIntegrationID, incident.FieldRepoName, incident.FieldRootCause, incident.FieldActionTaken, incident.FieldCodeFixExplanation, incident.FieldPrURL:
			values[i] = new(sql.NullString)
		case incident.FieldFirstSeenAt, incident.FieldLastSeenAt, incident.FieldCreatedAt, incident.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Incident fields.
func (_m *Incident) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incident.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incident.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case incident.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case incident.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = incident.Severity(value.String)
			}
		case incident.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = incident.Status(value.String)
			}
		case incident.FieldServiceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_name", values[i])
			} else if value.Valid {
				_m.ServiceName = value.String
			}
		case incident.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case incident.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case incident.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = value.String
			}
		case incident.FieldRepoName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_name", values[i])
			} else if value.Valid {
				_m.RepoName = value.String
			}
		case incident.FieldLogIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field log_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LogIds); err != nil {
					return fmt.Errorf("unmarshal field log_ids: %w", err)
				}
			}
		case incident.FieldTriggerEvent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerEvent); err != nil {
					return fmt.Errorf("unmarshal field trigger_event: %w", err)
				}
			}
		case incident.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case incident.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case incident.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case incident.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case incident.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case incident.FieldRootCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_cause", values[i])
			} else if value.Valid {
				_m.RootCause = value.String
			}
		case incident.FieldActionTaken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_taken", values[i])
			} else if value.Valid {
				_m.ActionTaken = value.String
			}
		case incident.FieldCodeFixExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_fix_explanation", values[i])
			} else if value.Valid {
				_m.CodeFixExplanation = value.String
			}
		case incident.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = value.String
			}
		case incident.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = int(value.Int64)
			}
		case incident.FieldPrFilesChanged:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pr_files_changed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PrFilesChanged); err != nil {
					return fmt.Errorf("unmarshal field pr_files_changed: %w", err)
				}
			}
		case incident.FieldPrOriginalContents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pr_original_contents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PrOriginalContents); err != nil {
					return fmt.Errorf("unmarshal field pr_original_contents: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Incident.
// This includes values selected through modifiers, order, etc.
func (_m *Incident) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Incident.
// Note that you need to call Incident.Unwrap() before calling this method if this Incident
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Incident) Update() *IncidentUpdateOne {
	return NewIncidentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Incident entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Incident) Unwrap() *Incident {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Incident is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Incident) String() string {
	var builder strings.Builder
	builder.WriteString("Incident(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("service_name=")
	builder.WriteString(_m.ServiceName)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("integration_id=")
	builder.WriteString(_m.IntegrationID)
	builder.WriteString(", ")
	builder.WriteString("repo_name=")
	builder.WriteString(_m.RepoName)
	builder.WriteString(", ")
	builder.WriteString("log_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogIds))
	builder.WriteString(", ")
	builder.WriteString("trigger_event=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerEvent))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("root_cause=")
	builder.WriteString(_m.RootCause)
	builder.WriteString(", ")
	builder.WriteString("action_taken=")
	builder.WriteString(_m.ActionTaken)
	builder.WriteString(", ")
	builder.WriteString("code_fix_explanation=")
	builder.WriteString(_m.CodeFixExplanation)
	builder.WriteString(", ")
	builder.WriteString("pr_url=")
	builder.WriteString(_m.PrURL)
	builder.WriteString(", ")
	builder.WriteString("pr_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrNumber))
	builder.WriteString(", ")
	builder.WriteString("pr_files_changed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrFilesChanged))
	builder.WriteString(", ")
	builder.WriteString("pr_original_contents=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrOriginalContents))
	builder.WriteByte(')')
	return builder.String()
}

// Incidents is a parsable slice of Incident.
type Incidents []*Incident
