// Code generated by ent, DO NOT EDIT.

package agentworkspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldIncidentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldContainsFold(FieldIncidentID, v))
}

// FilesIsNil applies the IsNil predicate on the "files" field.
func FilesIsNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIsNull(FieldFiles))
}

// FilesNotNil applies the NotNil predicate on the "files" field.
func FilesNotNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotNull(FieldFiles))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotNull(FieldNotes))
}

// PlanProgressIsNil applies the IsNil predicate on the "plan_progress" field.
func PlanProgressIsNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIsNull(FieldPlanProgress))
}

// PlanProgressNotNil applies the NotNil predicate on the "plan_progress" field.
func PlanProgressNotNil() predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotNull(FieldPlanProgress))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentWorkspace) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentWorkspace) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentWorkspace) predicate.AgentWorkspace {
	return predicate.AgentWorkspace(sql.NotPredicates(p))
}
