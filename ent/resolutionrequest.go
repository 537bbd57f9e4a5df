// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// ResolutionRequest is the model entity for the ResolutionRequest schema.
type ResolutionRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// State holds the value of the "state" field.
	State resolutionrequest.State `json:"state,omitempty"`
	// RequestedByUserID holds the value of the "requested_by_user_id" field.
	RequestedByUserID string `json:"requested_by_user_id,omitempty"`
	// RequestedByTrigger holds the value of the "requested_by_trigger" field.
	RequestedByTrigger string `json:"requested_by_trigger,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResolutionRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resolutionrequest.FieldID, resolutionrequest.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case resolutionrequest.FieldIncidentID, resolutionrequest.FieldState, resolutionrequest.FieldRequestedByUserID, resolutionrequest.FieldRequestedByTrigger, resolutionrequest.FieldLastError:
			values[i] = new(sql.NullString)
		case resolutionrequest.FieldClaimedAt, resolutionrequest.FieldCompletedAt, resolutionrequest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResolutionRequest fields.
func (_m *ResolutionRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resolutionrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resolutionrequest.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case resolutionrequest.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = resolutionrequest.State(value.String)
			}
		case resolutionrequest.FieldRequestedByUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by_user_id", values[i])
			} else if value.Valid {
				_m.RequestedByUserID = value.String
			}
		case resolutionrequest.FieldRequestedByTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by_trigger", values[i])
			} else if value.Valid {
				_m.RequestedByTrigger = value.String
			}
		case resolutionrequest.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case resolutionrequest.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case resolutionrequest.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case resolutionrequest.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case resolutionrequest.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ResolutionRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ResolutionRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResolutionRequest.
// Note that you need to call ResolutionRequest.Unwrap() before calling this method if this ResolutionRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResolutionRequest) Update() *ResolutionRequestUpdateOne {
	return NewResolutionRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResolutionRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResolutionRequest) Unwrap() *ResolutionRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResolutionRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResolutionRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ResolutionRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("requested_by_user_id=")
	builder.WriteString(_m.RequestedByUserID)
	builder.WriteString(", ")
	builder.WriteString("requested_by_trigger=")
	builder.WriteString(_m.RequestedByTrigger)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResolutionRequests is a parsable slice of ResolutionRequest.
type ResolutionRequests []*ResolutionRequest
