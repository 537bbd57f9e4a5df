// Code generated by ent, DO NOT EDIT.

package incident

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldDescription, v))
}

// ServiceName applies equality check predicate on the "service_name" field. It's identical to ServiceNameEQ.
func ServiceName(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldServiceName, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSource, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldIntegrationID, v))
}

// RepoName applies equality check predicate on the "repo_name" field. It's identical to RepoNameEQ.
func RepoName(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRepoName, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldLastSeenAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldResolvedAt, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRootCause, v))
}

// ActionTaken applies equality check predicate on the "action_taken" field. It's identical to ActionTakenEQ.
func ActionTaken(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldActionTaken, v))
}

// CodeFixExplanation applies equality check predicate on the "code_fix_explanation" field. It's identical to CodeFixExplanationEQ.
func CodeFixExplanation(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCodeFixExplanation, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrURL, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldDescription, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStatus, vs...))
}

// ServiceNameEQ applies the EQ predicate on the "service_name" field.
func ServiceNameEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldServiceName, v))
}

// ServiceNameNEQ applies the NEQ predicate on the "service_name" field.
func ServiceNameNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldServiceName, v))
}

// ServiceNameIn applies the In predicate on the "service_name" field.
func ServiceNameIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldServiceName, vs...))
}

// ServiceNameNotIn applies the NotIn predicate on the "service_name" field.
func ServiceNameNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldServiceName, vs...))
}

// ServiceNameGT applies the GT predicate on the "service_name" field.
func ServiceNameGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldServiceName, v))
}

// ServiceNameGTE applies the GTE predicate on the "service_name" field.
func ServiceNameGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldServiceName, v))
}

// ServiceNameLT applies the LT predicate on the "service_name" field.
func ServiceNameLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldServiceName, v))
}

// ServiceNameLTE applies the LTE predicate on the "service_name" field.
func ServiceNameLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldServiceName, v))
}

// ServiceNameContains applies the Contains predicate on the "service_name" field.
func ServiceNameContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldServiceName, v))
}

// ServiceNameHasPrefix applies the HasPrefix predicate on the "service_name" field.
func ServiceNameHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldServiceName, v))
}

// ServiceNameHasSuffix applies the HasSuffix predicate on the "service_name" field.
func ServiceNameHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldServiceName, v))
}

// ServiceNameEqualFold applies the EqualFold predicate on the "service_name" field.
func ServiceNameEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldServiceName, v))
}

// ServiceNameContainsFold applies the ContainsFold predicate on the "service_name" field.
func ServiceNameContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldServiceName, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSource, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldUserID, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDIsNil applies the IsNil predicate on the "integration_id" field.
func IntegrationIDIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldIntegrationID))
}

// IntegrationIDNotNil applies the NotNil predicate on the "integration_id" field.
func IntegrationIDNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldIntegrationID))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldIntegrationID, v))
}

// RepoNameEQ applies the EQ predicate on the "repo_name" field.
func RepoNameEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRepoName, v))
}

// RepoNameNEQ applies the NEQ predicate on the "repo_name" field.
func RepoNameNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldRepoName, v))
}

// RepoNameIn applies the In predicate on the "repo_name" field.
func RepoNameIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldRepoName, vs...))
}

// RepoNameNotIn applies the NotIn predicate on the "repo_name" field.
func RepoNameNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldRepoName, vs...))
}

// RepoNameGT applies the GT predicate on the "repo_name" field.
func RepoNameGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldRepoName, v))
}

// RepoNameGTE applies the GTE predicate on the "repo_name" field.
func RepoNameGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldRepoName, v))
}

// RepoNameLT applies the LT predicate on the "repo_name" field.
func RepoNameLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldRepoName, v))
}

// RepoNameLTE applies the LTE predicate on the "repo_name" field.
func RepoNameLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldRepoName, v))
}

// RepoNameContains applies the Contains predicate on the "repo_name" field.
func RepoNameContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldRepoName, v))
}

// RepoNameHasPrefix applies the HasPrefix predicate on the "repo_name" field.
func RepoNameHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldRepoName, v))
}

// RepoNameHasSuffix applies the HasSuffix predicate on the "repo_name" field.
func RepoNameHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldRepoName, v))
}

// RepoNameIsNil applies the IsNil predicate on the "repo_name" field.
func RepoNameIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldRepoName))
}

// RepoNameNotNil applies the NotNil predicate on the "repo_name" field.
func RepoNameNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldRepoName))
}

// RepoNameEqualFold applies the EqualFold predicate on the "repo_name" field.
func RepoNameEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldRepoName, v))
}

// RepoNameContainsFold applies the ContainsFold predicate on the "repo_name" field.
func RepoNameContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldRepoName, v))
}

// TriggerEventIsNil applies the IsNil predicate on the "trigger_event" field.
func TriggerEventIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldTriggerEvent))
}

// TriggerEventNotNil applies the NotNil predicate on the "trigger_event" field.
func TriggerEventNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldTriggerEvent))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldMetadata))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldLastSeenAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldResolvedAt))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseIsNil applies the IsNil predicate on the "root_cause" field.
func RootCauseIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldRootCause))
}

// RootCauseNotNil applies the NotNil predicate on the "root_cause" field.
func RootCauseNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldRootCause))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldRootCause, v))
}

// ActionTakenEQ applies the EQ predicate on the "action_taken" field.
func ActionTakenEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldActionTaken, v))
}

// ActionTakenNEQ applies the NEQ predicate on the "action_taken" field.
func ActionTakenNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldActionTaken, v))
}

// ActionTakenIn applies the In predicate on the "action_taken" field.
func ActionTakenIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldActionTaken, vs...))
}

// ActionTakenNotIn applies the NotIn predicate on the "action_taken" field.
func ActionTakenNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldActionTaken, vs...))
}

// ActionTakenGT applies the GT predicate on the "action_taken" field.
func ActionTakenGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldActionTaken, v))
}

// ActionTakenGTE applies the GTE predicate on the "action_taken" field.
func ActionTakenGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldActionTaken, v))
}

// ActionTakenLT applies the LT predicate on the "action_taken" field.
func ActionTakenLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldActionTaken, v))
}

// ActionTakenLTE applies the LTE predicate on the "action_taken" field.
func ActionTakenLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldActionTaken, v))
}

// ActionTakenContains applies the Contains predicate on the "action_taken" field.
func ActionTakenContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldActionTaken, v))
}

// ActionTakenHasPrefix applies the HasPrefix predicate on the "action_taken" field.
func ActionTakenHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldActionTaken, v))
}

// ActionTakenHasSuffix applies the HasSuffix predicate on the "action_taken" field.
func ActionTakenHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldActionTaken, v))
}

// ActionTakenIsNil applies the IsNil predicate on the "action_taken" field.
func ActionTakenIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldActionTaken))
}

// ActionTakenNotNil applies the NotNil predicate on the "action_taken" field.
func ActionTakenNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldActionTaken))
}

// ActionTakenEqualFold applies the EqualFold predicate on the "action_taken" field.
func ActionTakenEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldActionTaken, v))
}

// ActionTakenContainsFold applies the ContainsFold predicate on the "action_taken" field.
func ActionTakenContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldActionTaken, v))
}

// CodeFixExplanationEQ applies the EQ predicate on the "code_fix_explanation" field.
func CodeFixExplanationEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCodeFixExplanation, v))
}

// CodeFixExplanationNEQ applies the NEQ predicate on the "code_fix_explanation" field.
func CodeFixExplanationNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCodeFixExplanation, v))
}

// CodeFixExplanationIn applies the In predicate on the "code_fix_explanation" field.
func CodeFixExplanationIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCodeFixExplanation, vs...))
}

// CodeFixExplanationNotIn applies the NotIn predicate on the "code_fix_explanation" field.
func CodeFixExplanationNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCodeFixExplanation, vs...))
}

// CodeFixExplanationGT applies the GT predicate on the "code_fix_explanation" field.
func CodeFixExplanationGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCodeFixExplanation, v))
}

// CodeFixExplanationGTE applies the GTE predicate on the "code_fix_explanation" field.
func CodeFixExplanationGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCodeFixExplanation, v))
}

// CodeFixExplanationLT applies the LT predicate on the "code_fix_explanation" field.
func CodeFixExplanationLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCodeFixExplanation, v))
}

// CodeFixExplanationLTE applies the LTE predicate on the "code_fix_explanation" field.
func CodeFixExplanationLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCodeFixExplanation, v))
}

// CodeFixExplanationContains applies the Contains predicate on the "code_fix_explanation" field.
func CodeFixExplanationContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldCodeFixExplanation, v))
}

// CodeFixExplanationHasPrefix applies the HasPrefix predicate on the "code_fix_explanation" field.
func CodeFixExplanationHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldCodeFixExplanation, v))
}

// CodeFixExplanationHasSuffix applies the HasSuffix predicate on the "code_fix_explanation" field.
func CodeFixExplanationHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldCodeFixExplanation, v))
}

// CodeFixExplanationIsNil applies the IsNil predicate on the "code_fix_explanation" field.
func CodeFixExplanationIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldCodeFixExplanation))
}

// CodeFixExplanationNotNil applies the NotNil predicate on the "code_fix_explanation" field.
func CodeFixExplanationNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldCodeFixExplanation))
}

// CodeFixExplanationEqualFold applies the EqualFold predicate on the "code_fix_explanation" field.
func CodeFixExplanationEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldCodeFixExplanation, v))
}

// CodeFixExplanationContainsFold applies the ContainsFold predicate on the "code_fix_explanation" field.
func CodeFixExplanationContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldCodeFixExplanation, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldPrURL, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPrNumber))
}

// PrFilesChangedIsNil applies the IsNil predicate on the "pr_files_changed" field.
func PrFilesChangedIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPrFilesChanged))
}

// PrFilesChangedNotNil applies the NotNil predicate on the "pr_files_changed" field.
func PrFilesChangedNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPrFilesChanged))
}

// PrOriginalContentsIsNil applies the IsNil predicate on the "pr_original_contents" field.
func PrOriginalContentsIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPrOriginalContents))
}

// PrOriginalContentsNotNil applies the NotNil predicate on the "pr_original_contents" field.
func PrOriginalContentsNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPrOriginalContents))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.NotPredicates(p))
}
