// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/agentevent"
)

// AgentEventCreate is the builder for creating a AgentEvent entity.
type AgentEventCreate struct {
	config
	mutation *AgentEventMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *AgentEventCreate) SetIncidentID(v string) *AgentEventCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *AgentEventCreate) SetType(v string) *AgentEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentEventCreate) SetAgentName(v string) *AgentEventCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableAgentName(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *AgentEventCreate) SetData(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AgentEventCreate) SetTimestamp(v time.Time) *AgentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableTimestamp(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentEventCreate) SetID(v string) *AgentEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentEventMutation object of the builder.
func (_c *AgentEventCreate) Mutation() *AgentEventMutation {
	return _c.mutation
}

// Save creates the AgentEvent in the database.
func (_c *AgentEventCreate) Save(ctx context.Context) (*AgentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentEventCreate) SaveX(ctx context.Context) *AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := agentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentEventCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "AgentEvent.incident_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "AgentEvent.type"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AgentEvent.timestamp"`)}
	}
	return nil
}

func (_c *AgentEventCreate) sqlSave(ctx context.Context) (*AgentEvent, error) {
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
			return nil, fmt.Errorf("unexpected AgentEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentEventCreate) createSpec() (*AgentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentevent.Table, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(agentevent.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(agentevent.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentevent.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(agentevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(agentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// AgentEventCreateBulk is the builder for creating many AgentEvent entities in bulk.
type AgentEventCreateBulk struct {
	config
	err      error
	builders []*AgentEventCreate
}

// Save creates the AgentEvent entities in the database.
func (_c *AgentEventCreateBulk) Save(ctx context.Context) ([]*AgentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentEventMutation)
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
func (_c *AgentEventCreateBulk) SaveX(ctx context.Context) []*AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
