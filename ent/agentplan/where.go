// Code generated by ent, DO NOT EDIT.

package agentplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldIncidentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldVersion, v))
}

// ReplanReason applies equality check predicate on the "replan_reason" field. It's identical to ReplanReasonEQ.
func ReplanReason(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldReplanReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldContainsFold(FieldIncidentID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLTE(FieldVersion, v))
}

// ReplanReasonEQ applies the EQ predicate on the "replan_reason" field.
func ReplanReasonEQ(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldReplanReason, v))
}

// ReplanReasonNEQ applies the NEQ predicate on the "replan_reason" field.
func ReplanReasonNEQ(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNEQ(FieldReplanReason, v))
}

// ReplanReasonIn applies the In predicate on the "replan_reason" field.
func ReplanReasonIn(vs ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIn(FieldReplanReason, vs...))
}

// ReplanReasonNotIn applies the NotIn predicate on the "replan_reason" field.
func ReplanReasonNotIn(vs ...string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotIn(FieldReplanReason, vs...))
}

// ReplanReasonGT applies the GT predicate on the "replan_reason" field.
func ReplanReasonGT(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGT(FieldReplanReason, v))
}

// ReplanReasonGTE applies the GTE predicate on the "replan_reason" field.
func ReplanReasonGTE(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGTE(FieldReplanReason, v))
}

// ReplanReasonLT applies the LT predicate on the "replan_reason" field.
func ReplanReasonLT(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLT(FieldReplanReason, v))
}

// ReplanReasonLTE applies the LTE predicate on the "replan_reason" field.
func ReplanReasonLTE(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLTE(FieldReplanReason, v))
}

// ReplanReasonContains applies the Contains predicate on the "replan_reason" field.
func ReplanReasonContains(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldContains(FieldReplanReason, v))
}

// ReplanReasonHasPrefix applies the HasPrefix predicate on the "replan_reason" field.
func ReplanReasonHasPrefix(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldHasPrefix(FieldReplanReason, v))
}

// ReplanReasonHasSuffix applies the HasSuffix predicate on the "replan_reason" field.
func ReplanReasonHasSuffix(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldHasSuffix(FieldReplanReason, v))
}

// ReplanReasonIsNil applies the IsNil predicate on the "replan_reason" field.
func ReplanReasonIsNil() predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIsNull(FieldReplanReason))
}

// ReplanReasonNotNil applies the NotNil predicate on the "replan_reason" field.
func ReplanReasonNotNil() predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotNull(FieldReplanReason))
}

// ReplanReasonEqualFold applies the EqualFold predicate on the "replan_reason" field.
func ReplanReasonEqualFold(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEqualFold(FieldReplanReason, v))
}

// ReplanReasonContainsFold applies the ContainsFold predicate on the "replan_reason" field.
func ReplanReasonContainsFold(v string) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldContainsFold(FieldReplanReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentPlan {
	return predicate.AgentPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentPlan) predicate.AgentPlan {
	return predicate.AgentPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentPlan) predicate.AgentPlan {
	return predicate.AgentPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentPlan) predicate.AgentPlan {
	return predicate.AgentPlan(sql.NotPredicates(p))
}
