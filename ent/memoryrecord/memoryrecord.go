// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryrecord type in the database.
	Label = "memory_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldKnownFixes holds the string denoting the known_fixes field in the database.
	FieldKnownFixes = "known_fixes"
	// FieldPastErrors holds the string denoting the past_errors field in the database.
	FieldPastErrors = "past_errors"
	// FieldTypicalFilesRead holds the string denoting the typical_files_read field in the database.
	FieldTypicalFilesRead = "typical_files_read"
	// FieldTypicalFilesModified holds the string denoting the typical_files_modified field in the database.
	FieldTypicalFilesModified = "typical_files_modified"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldTimesSeen holds the string denoting the times_seen field in the database.
	FieldTimesSeen = "times_seen"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the memoryrecord in the database.
	Table = "memory_records"
)

// Columns holds all SQL columns for memoryrecord fields.
var Columns = []string{
	FieldID,
	FieldFingerprint,
	FieldErrorType,
	FieldKnownFixes,
	FieldPastErrors,
	FieldTypicalFilesRead,
	FieldTypicalFilesModified,
	FieldConfidenceScore,
	FieldTimesSeen,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultErrorType holds the default value on creation for the "error_type" field.
	DefaultErrorType string
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore int
	// DefaultTimesSeen holds the default value on creation for the "times_seen" field.
	DefaultTimesSeen int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MemoryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByTimesSeen orders the results by the times_seen field.
func ByTimesSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesSeen, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
