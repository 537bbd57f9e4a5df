// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldRole, v))
}

// CurrentTask applies equality check predicate on the "current_task" field. It's identical to CurrentTaskEQ.
func CurrentTask(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCurrentTask, v))
}

// LastActiveAt applies equality check predicate on the "last_active_at" field. It's identical to LastActiveAtEQ.
func LastActiveAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastActiveAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldRole, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldKeywords))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentTaskEQ applies the EQ predicate on the "current_task" field.
func CurrentTaskEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCurrentTask, v))
}

// CurrentTaskNEQ applies the NEQ predicate on the "current_task" field.
func CurrentTaskNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldCurrentTask, v))
}

// CurrentTaskIn applies the In predicate on the "current_task" field.
func CurrentTaskIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldCurrentTask, vs...))
}

// CurrentTaskNotIn applies the NotIn predicate on the "current_task" field.
func CurrentTaskNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldCurrentTask, vs...))
}

// CurrentTaskGT applies the GT predicate on the "current_task" field.
func CurrentTaskGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldCurrentTask, v))
}

// CurrentTaskGTE applies the GTE predicate on the "current_task" field.
func CurrentTaskGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldCurrentTask, v))
}

// CurrentTaskLT applies the LT predicate on the "current_task" field.
func CurrentTaskLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldCurrentTask, v))
}

// CurrentTaskLTE applies the LTE predicate on the "current_task" field.
func CurrentTaskLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldCurrentTask, v))
}

// CurrentTaskContains applies the Contains predicate on the "current_task" field.
func CurrentTaskContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldCurrentTask, v))
}

// CurrentTaskHasPrefix applies the HasPrefix predicate on the "current_task" field.
func CurrentTaskHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldCurrentTask, v))
}

// CurrentTaskHasSuffix applies the HasSuffix predicate on the "current_task" field.
func CurrentTaskHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldCurrentTask, v))
}

// CurrentTaskIsNil applies the IsNil predicate on the "current_task" field.
func CurrentTaskIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldCurrentTask))
}

// CurrentTaskNotNil applies the NotNil predicate on the "current_task" field.
func CurrentTaskNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldCurrentTask))
}

// CurrentTaskEqualFold applies the EqualFold predicate on the "current_task" field.
func CurrentTaskEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldCurrentTask, v))
}

// CurrentTaskContainsFold applies the ContainsFold predicate on the "current_task" field.
func CurrentTaskContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldCurrentTask, v))
}

// CompletedTasksIsNil applies the IsNil predicate on the "completed_tasks" field.
func CompletedTasksIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldCompletedTasks))
}

// CompletedTasksNotNil applies the NotNil predicate on the "completed_tasks" field.
func CompletedTasksNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldCompletedTasks))
}

// LastActiveAtEQ applies the EQ predicate on the "last_active_at" field.
func LastActiveAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastActiveAt, v))
}

// LastActiveAtNEQ applies the NEQ predicate on the "last_active_at" field.
func LastActiveAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldLastActiveAt, v))
}

// LastActiveAtIn applies the In predicate on the "last_active_at" field.
func LastActiveAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldLastActiveAt, vs...))
}

// LastActiveAtNotIn applies the NotIn predicate on the "last_active_at" field.
func LastActiveAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldLastActiveAt, vs...))
}

// LastActiveAtGT applies the GT predicate on the "last_active_at" field.
func LastActiveAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldLastActiveAt, v))
}

// LastActiveAtGTE applies the GTE predicate on the "last_active_at" field.
func LastActiveAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldLastActiveAt, v))
}

// LastActiveAtLT applies the LT predicate on the "last_active_at" field.
func LastActiveAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldLastActiveAt, v))
}

// LastActiveAtLTE applies the LTE predicate on the "last_active_at" field.
func LastActiveAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldLastActiveAt, v))
}

// LastActiveAtIsNil applies the IsNil predicate on the "last_active_at" field.
func LastActiveAtIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldLastActiveAt))
}

// LastActiveAtNotNil applies the NotNil predicate on the "last_active_at" field.
func LastActiveAtNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldLastActiveAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.NotPredicates(p))
}
