// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdate) SetDescription(v string) *IncidentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDescription(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdate) ClearDescription() *IncidentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v incident.Severity) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *incident.Severity) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v incident.Status) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *incident.Status) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServiceName sets the "service_name" field.
func (_u *IncidentUpdate) SetServiceName(v string) *IncidentUpdate {
	_u.mutation.SetServiceName(v)
	return _u
}

// SetNillableServiceName sets the "service_name" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableServiceName(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetServiceName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *IncidentUpdate) SetSource(v string) *IncidentUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSource(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *IncidentUpdate) SetUserID(v string) *IncidentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableUserID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IncidentUpdate) SetIntegrationID(v string) *IncidentUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableIntegrationID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (_u *IncidentUpdate) ClearIntegrationID() *IncidentUpdate {
	_u.mutation.ClearIntegrationID()
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *IncidentUpdate) SetRepoName(v string) *IncidentUpdate {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRepoName(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// ClearRepoName clears the value of the "repo_name" field.
func (_u *IncidentUpdate) ClearRepoName() *IncidentUpdate {
	_u.mutation.ClearRepoName()
	return _u
}

// SetLogIds sets the "log_ids" field.
func (_u *IncidentUpdate) SetLogIds(v []string) *IncidentUpdate {
	_u.mutation.SetLogIds(v)
	return _u
}

// AppendLogIds appends value to the "log_ids" field.
func (_u *IncidentUpdate) AppendLogIds(v []string) *IncidentUpdate {
	_u.mutation.AppendLogIds(v)
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *IncidentUpdate) SetTriggerEvent(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *IncidentUpdate) ClearTriggerEvent() *IncidentUpdate {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IncidentUpdate) SetMetadata(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IncidentUpdate) ClearMetadata() *IncidentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *IncidentUpdate) SetLastSeenAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableLastSeenAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdate) SetResolvedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableResolvedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdate) ClearResolvedAt() *IncidentUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *IncidentUpdate) SetRootCause(v string) *IncidentUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRootCause(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *IncidentUpdate) ClearRootCause() *IncidentUpdate {
	_u.mutation.ClearRootCause()
	return _u
}

// SetActionTaken sets the "action_taken" field.
func (_u *IncidentUpdate) SetActionTaken(v string) *IncidentUpdate {
	_u.mutation.SetActionTaken(v)
	return _u
}

// SetNillableActionTaken sets the "action_taken" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableActionTaken(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetActionTaken(*v)
	}
	return _u
}

// ClearActionTaken clears the value of the "action_taken" field.
func (_u *IncidentUpdate) ClearActionTaken() *IncidentUpdate {
	_u.mutation.ClearActionTaken()
	return _u
}

// SetCodeFixExplanation sets the "code_fix_explanation" field.
func (_u *IncidentUpdate) SetCodeFixExplanation(v string) *IncidentUpdate {
	_u.mutation.SetCodeFixExplanation(v)
	return _u
}

// SetNillableCodeFixExplanation sets the "code_fix_explanation" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCodeFixExplanation(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetCodeFixExplanation(*v)
	}
	return _u
}

// ClearCodeFixExplanation clears the value of the "code_fix_explanation" field.
func (_u *IncidentUpdate) ClearCodeFixExplanation() *IncidentUpdate {
	_u.mutation.ClearCodeFixExplanation()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *IncidentUpdate) SetPrURL(v string) *IncidentUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePrURL(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *IncidentUpdate) ClearPrURL() *IncidentUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *IncidentUpdate) SetPrNumber(v int) *IncidentUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePrNumber(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *IncidentUpdate) AddPrNumber(v int) *IncidentUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *IncidentUpdate) ClearPrNumber() *IncidentUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrFilesChanged sets the "pr_files_changed" field.
func (_u *IncidentUpdate) SetPrFilesChanged(v []string) *IncidentUpdate {
	_u.mutation.SetPrFilesChanged(v)
	return _u
}

// AppendPrFilesChanged appends value to the "pr_files_changed" field.
func (_u *IncidentUpdate) AppendPrFilesChanged(v []string) *IncidentUpdate {
	_u.mutation.AppendPrFilesChanged(v)
	return _u
}

// ClearPrFilesChanged clears the value of the "pr_files_changed" field.
func (_u *IncidentUpdate) ClearPrFilesChanged() *IncidentUpdate {
	_u.mutation.ClearPrFilesChanged()
	return _u
}

// SetPrOriginalContents sets the "pr_original_contents" field.
func (_u *IncidentUpdate) SetPrOriginalContents(v map[string]string) *IncidentUpdate {
	_u.mutation.SetPrOriginalContents(v)
	return _u
}

// ClearPrOriginalContents clears the value of the "pr_original_contents" field.
func (_u *IncidentUpdate) ClearPrOriginalContents() *IncidentUpdate {
	_u.mutation.ClearPrOriginalContents()
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServiceName(); ok {
		_spec.SetField(incident.FieldServiceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(incident.FieldIntegrationID, field.TypeString, value)
	}
	if _u.mutation.IntegrationIDCleared() {
		_spec.ClearField(incident.FieldIntegrationID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(incident.FieldRepoName, field.TypeString, value)
	}
	if _u.mutation.RepoNameCleared() {
		_spec.ClearField(incident.FieldRepoName, field.TypeString)
	}
	if value, ok := _u.mutation.LogIds(); ok {
		_spec.SetField(incident.FieldLogIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldLogIds, value)
		})
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(incident.FieldTriggerEvent, field.TypeJSON, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(incident.FieldTriggerEvent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(incident.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(incident.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(incident.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(incident.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.ActionTaken(); ok {
		_spec.SetField(incident.FieldActionTaken, field.TypeString, value)
	}
	if _u.mutation.ActionTakenCleared() {
		_spec.ClearField(incident.FieldActionTaken, field.TypeString)
	}
	if value, ok := _u.mutation.CodeFixExplanation(); ok {
		_spec.SetField(incident.FieldCodeFixExplanation, field.TypeString, value)
	}
	if _u.mutation.CodeFixExplanationCleared() {
		_spec.ClearField(incident.FieldCodeFixExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(incident.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(incident.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(incident.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(incident.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(incident.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrFilesChanged(); ok {
		_spec.SetField(incident.FieldPrFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldPrFilesChanged, value)
		})
	}
	if _u.mutation.PrFilesChangedCleared() {
		_spec.ClearField(incident.FieldPrFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrOriginalContents(); ok {
		_spec.SetField(incident.FieldPrOriginalContents, field.TypeJSON, value)
	}
	if _u.mutation.PrOriginalContentsCleared() {
		_spec.ClearField(incident.FieldPrOriginalContents, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdateOne) SetDescription(v string) *IncidentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDescription(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdateOne) ClearDescription() *IncidentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v incident.Severity) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *incident.Severity) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v incident.Status) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *incident.Status) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServiceName sets the "service_name" field.
func (_u *IncidentUpdateOne) SetServiceName(v string) *IncidentUpdateOne {
	_u.mutation.SetServiceName(v)
	return _u
}

// SetNillableServiceName sets the "service_name" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableServiceName(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetServiceName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *IncidentUpdateOne) SetSource(v string) *IncidentUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSource(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *IncidentUpdateOne) SetUserID(v string) *IncidentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableUserID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *IncidentUpdateOne) SetIntegrationID(v string) *IncidentUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableIntegrationID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (_u *IncidentUpdateOne) ClearIntegrationID() *IncidentUpdateOne {
	_u.mutation.ClearIntegrationID()
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *IncidentUpdateOne) SetRepoName(v string) *IncidentUpdateOne {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRepoName(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// ClearRepoName clears the value of the "repo_name" field.
func (_u *IncidentUpdateOne) ClearRepoName() *IncidentUpdateOne {
	_u.mutation.ClearRepoName()
	return _u
}

// SetLogIds sets the "log_ids" field.
func (_u *IncidentUpdateOne) SetLogIds(v []string) *IncidentUpdateOne {
	_u.mutation.SetLogIds(v)
	return _u
}

// AppendLogIds appends value to the "log_ids" field.
func (_u *IncidentUpdateOne) AppendLogIds(v []string) *IncidentUpdateOne {
	_u.mutation.AppendLogIds(v)
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *IncidentUpdateOne) SetTriggerEvent(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *IncidentUpdateOne) ClearTriggerEvent() *IncidentUpdateOne {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IncidentUpdateOne) SetMetadata(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IncidentUpdateOne) ClearMetadata() *IncidentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *IncidentUpdateOne) SetLastSeenAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableLastSeenAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdateOne) SetResolvedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableResolvedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdateOne) ClearResolvedAt() *IncidentUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *IncidentUpdateOne) SetRootCause(v string) *IncidentUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRootCause(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *IncidentUpdateOne) ClearRootCause() *IncidentUpdateOne {
	_u.mutation.ClearRootCause()
	return _u
}

// SetActionTaken sets the "action_taken" field.
func (_u *IncidentUpdateOne) SetActionTaken(v string) *IncidentUpdateOne {
	_u.mutation.SetActionTaken(v)
	return _u
}

// SetNillableActionTaken sets the "action_taken" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableActionTaken(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetActionTaken(*v)
	}
	return _u
}

// ClearActionTaken clears the value of the "action_taken" field.
func (_u *IncidentUpdateOne) ClearActionTaken() *IncidentUpdateOne {
	_u.mutation.ClearActionTaken()
	return _u
}

// SetCodeFixExplanation sets the "code_fix_explanation" field.
func (_u *IncidentUpdateOne) SetCodeFixExplanation(v string) *IncidentUpdateOne {
	_u.mutation.SetCodeFixExplanation(v)
	return _u
}

// SetNillableCodeFixExplanation sets the "code_fix_explanation" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCodeFixExplanation(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetCodeFixExplanation(*v)
	}
	return _u
}

// ClearCodeFixExplanation clears the value of the "code_fix_explanation" field.
func (_u *IncidentUpdateOne) ClearCodeFixExplanation() *IncidentUpdateOne {
	_u.mutation.ClearCodeFixExplanation()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *IncidentUpdateOne) SetPrURL(v string) *IncidentUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePrURL(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *IncidentUpdateOne) ClearPrURL() *IncidentUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *IncidentUpdateOne) SetPrNumber(v int) *IncidentUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePrNumber(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *IncidentUpdateOne) AddPrNumber(v int) *IncidentUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *IncidentUpdateOne) ClearPrNumber() *IncidentUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrFilesChanged sets the "pr_files_changed" field.
func (_u *IncidentUpdateOne) SetPrFilesChanged(v []string) *IncidentUpdateOne {
	_u.mutation.SetPrFilesChanged(v)
	return _u
}

// AppendPrFilesChanged appends value to the "pr_files_changed" field.
func (_u *IncidentUpdateOne) AppendPrFilesChanged(v []string) *IncidentUpdateOne {
	_u.mutation.AppendPrFilesChanged(v)
	return _u
}

// ClearPrFilesChanged clears the value of the "pr_files_changed" field.
func (_u *IncidentUpdateOne) ClearPrFilesChanged() *IncidentUpdateOne {
	_u.mutation.ClearPrFilesChanged()
	return _u
}

// SetPrOriginalContents sets the "pr_original_contents" field.
func (_u *IncidentUpdateOne) SetPrOriginalContents(v map[string]string) *IncidentUpdateOne {
	_u.mutation.SetPrOriginalContents(v)
	return _u
}

// ClearPrOriginalContents clears the value of the "pr_original_contents" field.
func (_u *IncidentUpdateOne) ClearPrOriginalContents() *IncidentUpdateOne {
	_u.mutation.ClearPrOriginalContents()
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServiceName(); ok {
		_spec.SetField(incident.FieldServiceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(incident.FieldIntegrationID, field.TypeString, value)
	}
	if _u.mutation.IntegrationIDCleared() {
		_spec.ClearField(incident.FieldIntegrationID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(incident.FieldRepoName, field.TypeString, value)
	}
	if _u.mutation.RepoNameCleared() {
		_spec.ClearField(incident.FieldRepoName, field.TypeString)
	}
	if value, ok := _u.mutation.LogIds(); ok {
		_spec.SetField(incident.FieldLogIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLogIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldLogIds, value)
		})
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(incident.FieldTriggerEvent, field.TypeJSON, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(incident.FieldTriggerEvent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(incident.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(incident.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(incident.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(incident.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.ActionTaken(); ok {
		_spec.SetField(incident.FieldActionTaken, field.TypeString, value)
	}
	if _u.mutation.ActionTakenCleared() {
		_spec.ClearField(incident.FieldActionTaken, field.TypeString)
	}
	if value, ok := _u.mutation.CodeFixExplanation(); ok {
		_spec.SetField(incident.FieldCodeFixExplanation, field.TypeString, value)
	}
	if _u.mutation.CodeFixExplanationCleared() {
		_spec.ClearField(incident.FieldCodeFixExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(incident.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(incident.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(incident.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(incident.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(incident.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrFilesChanged(); ok {
		_spec.SetField(incident.FieldPrFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldPrFilesChanged, value)
		})
	}
	if _u.mutation.PrFilesChangedCleared() {
		_spec.ClearField(incident.FieldPrFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrOriginalContents(); ok {
		_spec.SetField(incident.FieldPrOriginalContents, field.TypeJSON, value)
	}
	if _u.mutation.PrOriginalContentsCleared() {
		_spec.ClearField(incident.FieldPrOriginalContents, field.TypeJSON)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
