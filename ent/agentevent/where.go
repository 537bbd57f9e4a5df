// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldIncidentID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldType, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldAgentName, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldIncidentID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldType, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldAgentName, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldData))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.NotPredicates(p))
}
