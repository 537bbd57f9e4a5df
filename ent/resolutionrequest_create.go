// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// ResolutionRequestCreate is the builder for creating a ResolutionRequest entity.
type ResolutionRequestCreate struct {
	config
	mutation *ResolutionRequestMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *ResolutionRequestCreate) SetIncidentID(v string) *ResolutionRequestCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ResolutionRequestCreate) SetState(v resolutionrequest.State) *ResolutionRequestCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableState(v *resolutionrequest.State) *ResolutionRequestCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRequestedByUserID sets the "requested_by_user_id" field.
func (_c *ResolutionRequestCreate) SetRequestedByUserID(v string) *ResolutionRequestCreate {
	_c.mutation.SetRequestedByUserID(v)
	return _c
}

// SetRequestedByTrigger sets the "requested_by_trigger" field.
func (_c *ResolutionRequestCreate) SetRequestedByTrigger(v string) *ResolutionRequestCreate {
	_c.mutation.SetRequestedByTrigger(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ResolutionRequestCreate) SetAttempts(v int) *ResolutionRequestCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableAttempts(v *int) *ResolutionRequestCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ResolutionRequestCreate) SetLastError(v string) *ResolutionRequestCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableLastError(v *string) *ResolutionRequestCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ResolutionRequestCreate) SetClaimedAt(v time.Time) *ResolutionRequestCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableClaimedAt(v *time.Time) *ResolutionRequestCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResolutionRequestCreate) SetCompletedAt(v time.Time) *ResolutionRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableCompletedAt(v *time.Time) *ResolutionRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResolutionRequestCreate) SetCreatedAt(v time.Time) *ResolutionRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResolutionRequestCreate) SetNillableCreatedAt(v *time.Time) *ResolutionRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ResolutionRequestMutation object of the builder.
func (_c *ResolutionRequestCreate) Mutation() *ResolutionRequestMutation {
	return _c.mutation
}

// Save creates the ResolutionRequest in the database.
func (_c *ResolutionRequestCreate) Save(ctx context.Context) (*ResolutionRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResolutionRequestCreate) SaveX(ctx context.Context) *ResolutionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResolutionRequestCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := resolutionrequest.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := resolutionrequest.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resolutionrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResolutionRequestCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "ResolutionRequest.incident_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ResolutionRequest.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := resolutionrequest.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedByUserID(); !ok {
		return &ValidationError{Name: "requested_by_user_id", err: errors.New(`ent: missing required field "ResolutionRequest.requested_by_user_id"`)}
	}
	if _, ok := _c.mutation.RequestedByTrigger(); !ok {
		return &ValidationError{Name: "requested_by_trigger", err: errors.New(`ent: missing required field "ResolutionRequest.requested_by_trigger"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ResolutionRequest.attempts"`)}
	}
	if v, ok := _c.mutation.LastError(); ok {
		if err := resolutionrequest.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.last_error": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResolutionRequest.created_at"`)}
	}
	return nil
}

func (_c *ResolutionRequestCreate) sqlSave(ctx context.Context) (*ResolutionRequest, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResolutionRequestCreate) createSpec() (*ResolutionRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ResolutionRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resolutionrequest.Table, sqlgraph.NewFieldSpec(resolutionrequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(resolutionrequest.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(resolutionrequest.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.RequestedByUserID(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByUserID, field.TypeString, value)
		_node.RequestedByUserID = value
	}
	if value, ok := _c.mutation.RequestedByTrigger(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByTrigger, field.TypeString, value)
		_node.RequestedByTrigger = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(resolutionrequest.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(resolutionrequest.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(resolutionrequest.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ResolutionRequestCreateBulk is the builder for creating many ResolutionRequest entities in bulk.
type ResolutionRequestCreateBulk struct {
	config
	err      error
	builders []*ResolutionRequestCreate
}

// Save creates the ResolutionRequest entities in the database.
func (_c *ResolutionRequestCreateBulk) Save(ctx context.Context) ([]*ResolutionRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResolutionRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResolutionRequestMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ResolutionRequestCreateBulk) SaveX(ctx context.Context) []*ResolutionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
