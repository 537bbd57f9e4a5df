// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldID, id))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldFingerprint, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldErrorType, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// TimesSeen applies equality check predicate on the "times_seen" field. It's identical to TimesSeenEQ.
func TimesSeen(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldTimesSeen, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldFingerprint, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldErrorType, v))
}

// KnownFixesIsNil applies the IsNil predicate on the "known_fixes" field.
func KnownFixesIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldKnownFixes))
}

// KnownFixesNotNil applies the NotNil predicate on the "known_fixes" field.
func KnownFixesNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldKnownFixes))
}

// PastErrorsIsNil applies the IsNil predicate on the "past_errors" field.
func PastErrorsIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldPastErrors))
}

// PastErrorsNotNil applies the NotNil predicate on the "past_errors" field.
func PastErrorsNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldPastErrors))
}

// TypicalFilesReadIsNil applies the IsNil predicate on the "typical_files_read" field.
func TypicalFilesReadIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldTypicalFilesRead))
}

// TypicalFilesReadNotNil applies the NotNil predicate on the "typical_files_read" field.
func TypicalFilesReadNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldTypicalFilesRead))
}

// TypicalFilesModifiedIsNil applies the IsNil predicate on the "typical_files_modified" field.
func TypicalFilesModifiedIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldTypicalFilesModified))
}

// TypicalFilesModifiedNotNil applies the NotNil predicate on the "typical_files_modified" field.
func TypicalFilesModifiedNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldTypicalFilesModified))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldConfidenceScore, v))
}

// TimesSeenEQ applies the EQ predicate on the "times_seen" field.
func TimesSeenEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesSeenNEQ applies the NEQ predicate on the "times_seen" field.
func TimesSeenNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldTimesSeen, v))
}

// TimesSeenIn applies the In predicate on the "times_seen" field.
func TimesSeenIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldTimesSeen, vs...))
}

// TimesSeenNotIn applies the NotIn predicate on the "times_seen" field.
func TimesSeenNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldTimesSeen, vs...))
}

// TimesSeenGT applies the GT predicate on the "times_seen" field.
func TimesSeenGT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldTimesSeen, v))
}

// TimesSeenGTE applies the GTE predicate on the "times_seen" field.
func TimesSeenGTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldTimesSeen, v))
}

// TimesSeenLT applies the LT predicate on the "times_seen" field.
func TimesSeenLT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldTimesSeen, v))
}

// TimesSeenLTE applies the LTE predicate on the "times_seen" field.
func TimesSeenLTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldTimesSeen, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.NotPredicates(p))
}
