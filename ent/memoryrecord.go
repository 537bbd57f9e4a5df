// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
)

// MemoryRecord is the model entity for the MemoryRecord schema.
type MemoryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 16-hex incident fingerprint
	Fingerprint string `json:"fingerprint,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// KnownFixes holds the value of the "known_fixes" field.
	KnownFixes []map[string]interface{} `json:"known_fixes,omitempty"`
	// PastErrors holds the value of the "past_errors" field.
	PastErrors []map[string]interface{} `json:"past_errors,omitempty"`
	// TypicalFilesRead holds the value of the "typical_files_read" field.
	TypicalFilesRead []string `json:"typical_files_read,omitempty"`
	// TypicalFilesModified holds the value of the "typical_files_modified" field.
	TypicalFilesModified []string `json:"typical_files_modified,omitempty"`
	// 0..100
	ConfidenceScore int `json:"confidence_score,omitempty"`
	// TimesSeen holds the value of the "times_seen" field.
	TimesSeen int `json:"times_seen,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldKnownFixes, memoryrecord.FieldPastErrors, memoryrecord.FieldTypicalFilesRead, memoryrecord.FieldTypicalFilesModified:
			values[i] = new([]byte)
		case memoryrecord.FieldID, memoryrecord.FieldConfidenceScore, memoryrecord.FieldTimesSeen:
			values[i] = new(sql.NullInt64)
		case memoryrecord.FieldFingerprint, memoryrecord.FieldErrorType:
			values[i] = new(sql.NullString)
		case memoryrecord.FieldCreatedAt, memoryrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryRecord fields.
func (_m *MemoryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case memoryrecord.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case memoryrecord.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case memoryrecord.FieldKnownFixes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field known_fixes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KnownFixes); err != nil {
					return fmt.Errorf("unmarshal field known_fixes: %w", err)
				}
			}
		case memoryrecord.FieldPastErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field past_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PastErrors); err != nil {
					return fmt.Errorf("unmarshal field past_errors: %w", err)
				}
			}
		case memoryrecord.FieldTypicalFilesRead:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field typical_files_read", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TypicalFilesRead); err != nil {
					return fmt.Errorf("unmarshal field typical_files_read: %w", err)
				}
			}
		case memoryrecord.FieldTypicalFilesModified:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field typical_files_modified", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TypicalFilesModified); err != nil {
					return fmt.Errorf("unmarshal field typical_files_modified: %w", err)
				}
			}
		case memoryrecord.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = int(value.Int64)
			}
		case memoryrecord.FieldTimesSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_seen", values[i])
			} else if value.Valid {
				_m.TimesSeen = int(value.Int64)
			}
		case memoryrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case memoryrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MemoryRecord.
// Note that you need to call MemoryRecord.Unwrap() before calling this method if this MemoryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryRecord) Update() *MemoryRecordUpdateOne {
	return NewMemoryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryRecord) Unwrap() *MemoryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("known_fixes=")
	builder.WriteString(fmt.Sprintf("%v", _m.KnownFixes))
	builder.WriteString(", ")
	builder.WriteString("past_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.PastErrors))
	builder.WriteString(", ")
	builder.WriteString("typical_files_read=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypicalFilesRead))
	builder.WriteString(", ")
	builder.WriteString("typical_files_modified=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypicalFilesModified))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("times_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesSeen))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryRecords is a parsable slice of MemoryRecord.
type MemoryRecords []*MemoryRecord
