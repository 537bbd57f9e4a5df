// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/agentplan"
)

// AgentPlanCreate is the builder for creating a AgentPlan entity.
type AgentPlanCreate struct {
	config
	mutation *AgentPlanMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *AgentPlanCreate) SetIncidentID(v string) *AgentPlanCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentPlanCreate) SetVersion(v int) *AgentPlanCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *AgentPlanCreate) SetSteps(v []map[string]interface{}) *AgentPlanCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetReplanReason sets the "replan_reason" field.
func (_c *AgentPlanCreate) SetReplanReason(v string) *AgentPlanCreate {
	_c.mutation.SetReplanReason(v)
	return _c
}

// SetNillableReplanReason sets the "replan_reason" field if the given value is not nil.
func (_c *AgentPlanCreate) SetNillableReplanReason(v *string) *AgentPlanCreate {
	if v != nil {
		_c.SetReplanReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentPlanCreate) SetCreatedAt(v time.Time) *AgentPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentPlanCreate) SetNillableCreatedAt(v *time.Time) *AgentPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentPlanCreate) SetID(v string) *AgentPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentPlanMutation object of the builder.
func (_c *AgentPlanCreate) Mutation() *AgentPlanMutation {
	return _c.mutation
}

// Save creates the AgentPlan in the database.
func (_c *AgentPlanCreate) Save(ctx context.Context) (*AgentPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPlanCreate) SaveX(ctx context.Context) *AgentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPlanCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "AgentPlan.incident_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentPlan.version"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "AgentPlan.steps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentPlan.created_at"`)}
	}
	return nil
}

func (_c *AgentPlanCreate) sqlSave(ctx context.Context) (*AgentPlan, error) {
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
			return nil, fmt.Errorf("unexpected AgentPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPlanCreate) createSpec() (*AgentPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentplan.Table, sqlgraph.NewFieldSpec(agentplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(agentplan.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentplan.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(agentplan.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.ReplanReason(); ok {
		_spec.SetField(agentplan.FieldReplanReason, field.TypeString, value)
		_node.ReplanReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentPlanCreateBulk is the builder for creating many AgentPlan entities in bulk.
type AgentPlanCreateBulk struct {
	config
	err      error
	builders []*AgentPlanCreate
}

// Save creates the AgentPlan entities in the database.
func (_c *AgentPlanCreateBulk) Save(ctx context.Context) ([]*AgentPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPlanMutation)
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
func (_c *AgentPlanCreateBulk) SaveX(ctx context.Context) []*AgentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
