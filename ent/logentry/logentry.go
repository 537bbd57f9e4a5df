// Code generated by ent, DO NOT EDIT.

package logentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the logentry type in the database.
	Label = "log_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldServiceName holds the string denoting the service_name field in the database.
	FieldServiceName = "service_name"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldIntegrationID holds the string denoting the integration_id field in the database.
	FieldIntegrationID = "integration_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIsEmail holds the string denoting the is_email field in the database.
	FieldIsEmail = "is_email"
	// Table holds the table name of the logentry in the database.
	Table = "log_entries"
)

// Columns holds all SQL columns for logentry fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldServiceName,
	FieldSeverity,
	FieldMessage,
	FieldSource,
	FieldUserID,
	FieldIntegrationID,
	FieldMetadata,
	FieldIsEmail,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultIsEmail holds the default value on creation for the "is_email" field.
	DefaultIsEmail bool
)

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityUnknown is the default value of the Severity enum.
const DefaultSeverity = SeverityUnknown

// Severity values.
const (
	SeverityTrace    Severity = "trace"
	SeverityDebug    Severity = "debug"
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
	SeverityUnknown  Severity = "unknown"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityTrace, SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityCritical, SeverityUnknown:
		return nil
	default:
		return fmt.Errorf("logentry: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the LogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByServiceName orders the results by the service_name field.
func ByServiceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceName, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByIntegrationID orders the results by the integration_id field.
func ByIntegrationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationID, opts...).ToFunc()
}

// ByIsEmail orders the results by the is_email field.
func ByIsEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEmail, opts...).ToFunc()
}
