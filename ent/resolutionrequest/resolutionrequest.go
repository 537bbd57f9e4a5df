// Code generated by ent, DO NOT EDIT.

package resolutionrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resolutionrequest type in the database.
	Label = "resolution_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRequestedByUserID holds the string denoting the requested_by_user_id field in the database.
	FieldRequestedByUserID = "requested_by_user_id"
	// FieldRequestedByTrigger holds the string denoting the requested_by_trigger field in the database.
	FieldRequestedByTrigger = "requested_by_trigger"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the resolutionrequest in the database.
	Table = "resolution_requests"
)

// Columns holds all SQL columns for resolutionrequest fields.
var Columns = []string{
	FieldID,
	FieldIncidentID,
	FieldState,
	FieldRequestedByUserID,
	FieldRequestedByTrigger,
	FieldAttempts,
	FieldLastError,
	FieldClaimedAt,
	FieldCompletedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// LastErrorValidator is a validator for the "last_error" field. It is called by the builders before save.
	LastErrorValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateQueued is the default value of the State enum.
const DefaultState = StateQueued

// State values.
const (
	StateQueued    State = "queued"
	StateInFlight  State = "in_flight"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateQueued, StateInFlight, StateCompleted, StateFailed:
		return nil
	default:
		return fmt.Errorf("resolutionrequest: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResolutionRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRequestedByUserID orders the results by the requested_by_user_id field.
func ByRequestedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedByUserID, opts...).ToFunc()
}

// ByRequestedByTrigger orders the results by the requested_by_trigger field.
func ByRequestedByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedByTrigger, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
