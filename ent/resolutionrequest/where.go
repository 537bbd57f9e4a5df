// Code generated by ent, DO NOT EDIT.

package resolutionrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldIncidentID, v))
}

// RequestedByUserID applies equality check predicate on the "requested_by_user_id" field. It's identical to RequestedByUserIDEQ.
func RequestedByUserID(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldRequestedByUserID, v))
}

// RequestedByTrigger applies equality check predicate on the "requested_by_trigger" field. It's identical to RequestedByTriggerEQ.
func RequestedByTrigger(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldRequestedByTrigger, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldLastError, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldClaimedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContainsFold(FieldIncidentID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldState, vs...))
}

// RequestedByUserIDEQ applies the EQ predicate on the "requested_by_user_id" field.
func RequestedByUserIDEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldRequestedByUserID, v))
}

// RequestedByUserIDNEQ applies the NEQ predicate on the "requested_by_user_id" field.
func RequestedByUserIDNEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldRequestedByUserID, v))
}

// RequestedByUserIDIn applies the In predicate on the "requested_by_user_id" field.
func RequestedByUserIDIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldRequestedByUserID, vs...))
}

// RequestedByUserIDNotIn applies the NotIn predicate on the "requested_by_user_id" field.
func RequestedByUserIDNotIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldRequestedByUserID, vs...))
}

// RequestedByUserIDGT applies the GT predicate on the "requested_by_user_id" field.
func RequestedByUserIDGT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldRequestedByUserID, v))
}

// RequestedByUserIDGTE applies the GTE predicate on the "requested_by_user_id" field.
func RequestedByUserIDGTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldRequestedByUserID, v))
}

// RequestedByUserIDLT applies the LT predicate on the "requested_by_user_id" field.
func RequestedByUserIDLT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldRequestedByUserID, v))
}

// RequestedByUserIDLTE applies the LTE predicate on the "requested_by_user_id" field.
func RequestedByUserIDLTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldRequestedByUserID, v))
}

// RequestedByUserIDContains applies the Contains predicate on the "requested_by_user_id" field.
func RequestedByUserIDContains(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContains(FieldRequestedByUserID, v))
}

// RequestedByUserIDHasPrefix applies the HasPrefix predicate on the "requested_by_user_id" field.
func RequestedByUserIDHasPrefix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasPrefix(FieldRequestedByUserID, v))
}

// RequestedByUserIDHasSuffix applies the HasSuffix predicate on the "requested_by_user_id" field.
func RequestedByUserIDHasSuffix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasSuffix(FieldRequestedByUserID, v))
}

// RequestedByUserIDEqualFold applies the EqualFold predicate on the "requested_by_user_id" field.
func RequestedByUserIDEqualFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEqualFold(FieldRequestedByUserID, v))
}

// RequestedByUserIDContainsFold applies the ContainsFold predicate on the "requested_by_user_id" field.
func RequestedByUserIDContainsFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContainsFold(FieldRequestedByUserID, v))
}

// RequestedByTriggerEQ applies the EQ predicate on the "requested_by_trigger" field.
func RequestedByTriggerEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldRequestedByTrigger, v))
}

// RequestedByTriggerNEQ applies the NEQ predicate on the "requested_by_trigger" field.
func RequestedByTriggerNEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldRequestedByTrigger, v))
}

// RequestedByTriggerIn applies the In predicate on the "requested_by_trigger" field.
func RequestedByTriggerIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldRequestedByTrigger, vs...))
}

// RequestedByTriggerNotIn applies the NotIn predicate on the "requested_by_trigger" field.
func RequestedByTriggerNotIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldRequestedByTrigger, vs...))
}

// RequestedByTriggerGT applies the GT predicate on the "requested_by_trigger" field.
func RequestedByTriggerGT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldRequestedByTrigger, v))
}

// RequestedByTriggerGTE applies the GTE predicate on the "requested_by_trigger" field.
func RequestedByTriggerGTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldRequestedByTrigger, v))
}

// RequestedByTriggerLT applies the LT predicate on the "requested_by_trigger" field.
func RequestedByTriggerLT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldRequestedByTrigger, v))
}

// RequestedByTriggerLTE applies the LTE predicate on the "requested_by_trigger" field.
func RequestedByTriggerLTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldRequestedByTrigger, v))
}

// RequestedByTriggerContains applies the Contains predicate on the "requested_by_trigger" field.
func RequestedByTriggerContains(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContains(FieldRequestedByTrigger, v))
}

// RequestedByTriggerHasPrefix applies the HasPrefix predicate on the "requested_by_trigger" field.
func RequestedByTriggerHasPrefix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasPrefix(FieldRequestedByTrigger, v))
}

// RequestedByTriggerHasSuffix applies the HasSuffix predicate on the "requested_by_trigger" field.
func RequestedByTriggerHasSuffix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasSuffix(FieldRequestedByTrigger, v))
}

// RequestedByTriggerEqualFold applies the EqualFold predicate on the "requested_by_trigger" field.
func RequestedByTriggerEqualFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEqualFold(FieldRequestedByTrigger, v))
}

// RequestedByTriggerContainsFold applies the ContainsFold predicate on the "requested_by_trigger" field.
func RequestedByTriggerContainsFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContainsFold(FieldRequestedByTrigger, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldContainsFold(FieldLastError, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotNull(FieldClaimedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResolutionRequest) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResolutionRequest) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResolutionRequest) predicate.ResolutionRequest {
	return predicate.ResolutionRequest(sql.NotPredicates(p))
}
