// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/incident"
)

// IncidentCreate is the builder for creating a Incident entity.
type IncidentCreate struct {
	config
	mutation *IncidentMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *IncidentCreate) SetTitle(v string) *IncidentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IncidentCreate) SetDescription(v string) *IncidentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableDescription(v *string) *IncidentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IncidentCreate) SetSeverity(v incident.Severity) *IncidentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSeverity(v *incident.Severity) *IncidentCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IncidentCreate) SetStatus(v incident.Status) *IncidentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableStatus(v *incident.Status) *IncidentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetServiceName sets the "service_name" field.
func (_c *IncidentCreate) SetServiceName(v string) *IncidentCreate {
	_c.mutation.SetServiceName(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *IncidentCreate) SetSource(v string) *IncidentCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *IncidentCreate) SetUserID(v string) *IncidentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *IncidentCreate) SetIntegrationID(v string) *IncidentCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableIntegrationID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetIntegrationID(*v)
	}
	return _c
}

// SetRepoName sets the "repo_name" field.
func (_c *IncidentCreate) SetRepoName(v string) *IncidentCreate {
	_c.mutation.SetRepoName(v)
	return _c
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableRepoName(v *string) *IncidentCreate {
	if v != nil {
		_c.SetRepoName(*v)
	}
	return _c
}

// SetLogIds sets the "log_ids" field.
func (_c *IncidentCreate) SetLogIds(v []string) *IncidentCreate {
	_c.mutation.SetLogIds(v)
	return _c
}

// SetTriggerEvent sets the "trigger_event" field.
func (_c *IncidentCreate) SetTriggerEvent(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetTriggerEvent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *IncidentCreate) SetMetadata(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *IncidentCreate) SetFirstSeenAt(v time.Time) *IncidentCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableFirstSeenAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *IncidentCreate) SetLastSeenAt(v time.Time) *IncidentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableLastSeenAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentCreate) SetCreatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCreatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *IncidentCreate) SetResolvedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableResolvedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *IncidentCreate) SetRootCause(v string) *IncidentCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableRootCause(v *string) *IncidentCreate {
	if v != nil {
		_c.SetRootCause(*v)
	}
	return _c
}

// SetActionTaken sets the "action_taken" field.
func (_c *IncidentCreate) SetActionTaken(v string) *IncidentCreate {
	_c.mutation.SetActionTaken(v)
	return _c
}

// SetNillableActionTaken sets the "action_taken" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableActionTaken(v *string) *IncidentCreate {
	if v != nil {
		_c.SetActionTaken(*v)
	}
	return _c
}

// SetCodeFixExplanation sets the "code_fix_explanation" field.
func (_c *IncidentCreate) SetCodeFixExplanation(v string) *IncidentCreate {
	_c.mutation.SetCodeFixExplanation(v)
	return _c
}

// SetNillableCodeFixExplanation sets the "code_fix_explanation" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCodeFixExplanation(v *string) *IncidentCreate {
	if v != nil {
		_c.SetCodeFixExplanation(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *IncidentCreate) SetPrURL(v string) *IncidentCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *IncidentCreate) SetNillablePrURL(v *string) *IncidentCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *IncidentCreate) SetPrNumber(v int) *IncidentCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *IncidentCreate) SetNillablePrNumber(v *int) *IncidentCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetPrFilesChanged sets the "pr_files_changed" field.
func (_c *IncidentCreate) SetPrFilesChanged(v []string) *IncidentCreate {
	_c.mutation.SetPrFilesChanged(v)
	return _c
}

// SetPrOriginalContents sets the "pr_original_contents" field.
func (_c *IncidentCreate) SetPrOriginalContents(v map[string]string) *IncidentCreate {
	_c.mutation.SetPrOriginalContents(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCreate) SetID(v string) *IncidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IncidentMutation object of the builder.
func (_c *IncidentCreate) Mutation() *IncidentMutation {
	return _c.mutation
}

// Save creates the Incident in the database.
func (_c *IncidentCreate) Save(ctx context.Context) (*Incident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCreate) SaveX(ctx context.Context) *Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := incident.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := incident.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := incident.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := incident.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incident.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Incident.title"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Incident.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Incident.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServiceName(); !ok {
		return &ValidationError{Name: "service_name", err: errors.New(`ent: missing required field "Incident.service_name"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Incident.source"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Incident.user_id"`)}
	}
	if _, ok := _c.mutation.LogIds(); !ok {
		return &ValidationError{Name: "log_ids", err: errors.New(`ent: missing required field "Incident.log_ids"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Incident.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Incident.last_seen_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Incident.created_at"`)}
	}
	return nil
}

func (_c *IncidentCreate) sqlSave(ctx context.Context) (*Incident, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Incident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCreate) createSpec() (*Incident, *sqlgraph.CreateSpec) {
	var (
		_node = &Incident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incident.Table, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ServiceName(); ok {
		_spec.SetField(incident.FieldServiceName, field.TypeString, value)
		_node.ServiceName = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(incident.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.RepoName(); ok {
		_spec.SetField(incident.FieldRepoName, field.TypeString, value)
		_node.RepoName = value
	}
	if value, ok := _c.mutation.LogIds(); ok {
		_spec.SetField(incident.FieldLogIds, field.TypeJSON, value)
		_node.LogIds = value
	}
	if value, ok := _c.mutation.TriggerEvent(); ok {
		_spec.SetField(incident.FieldTriggerEvent, field.TypeJSON, value)
		_node.TriggerEvent = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(incident.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(incident.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(incident.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
		_node.RootCause = value
	}
	if value, ok := _c.mutation.ActionTaken(); ok {
		_spec.SetField(incident.FieldActionTaken, field.TypeString, value)
		_node.ActionTaken = value
	}
	if value, ok := _c.mutation.CodeFixExplanation(); ok {
		_spec.SetField(incident.FieldCodeFixExplanation, field.TypeString, value)
		_node.CodeFixExplanation = value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(incident.FieldPrURL, field.TypeString, value)
		_node.PrURL = value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(incident.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = value
	}
	if value, ok := _c.mutation.PrFilesChanged(); ok {
		_spec.SetField(incident.FieldPrFilesChanged, field.TypeJSON, value)
		_node.PrFilesChanged = value
	}
	if value, ok := _c.mutation.PrOriginalContents(); ok {
		_spec.SetField(incident.FieldPrOriginalContents, field.TypeJSON, value)
		_node.PrOriginalContents = value
	}
	return _node, _spec
}

// IncidentCreateBulk is the builder for creating many Incident entities in bulk.
type IncidentCreateBulk struct {
	config
	err      error
	builders []*IncidentCreate
}

// Save creates the Incident entities in the database.
func (_c *IncidentCreateBulk) Save(ctx context.Context) ([]*Incident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Incident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IncidentCreateBulk) SaveX(ctx context.Context) []*Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
