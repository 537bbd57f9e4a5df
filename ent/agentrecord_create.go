// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/agentrecord"
)

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentRecordCreate) SetName(v string) *AgentRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentRecordCreate) SetRole(v string) *AgentRecordCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableRole(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *AgentRecordCreate) SetKeywords(v []string) *AgentRecordCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRecordCreate) SetStatus(v agentrecord.Status) *AgentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableStatus(v *agentrecord.Status) *AgentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentTask sets the "current_task" field.
func (_c *AgentRecordCreate) SetCurrentTask(v string) *AgentRecordCreate {
	_c.mutation.SetCurrentTask(v)
	return _c
}

// SetNillableCurrentTask sets the "current_task" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCurrentTask(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetCurrentTask(*v)
	}
	return _c
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_c *AgentRecordCreate) SetCompletedTasks(v []map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetCompletedTasks(v)
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *AgentRecordCreate) SetLastActiveAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableLastActiveAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRecordCreate) SetCreatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCreatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRecordCreate) SetID(v string) *AgentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentRecord.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRecord.created_at"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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
			return nil, fmt.Errorf("unexpected AgentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(agentrecord.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentTask(); ok {
		_spec.SetField(agentrecord.FieldCurrentTask, field.TypeString, value)
		_node.CurrentTask = &value
	}
	if value, ok := _c.mutation.CompletedTasks(); ok {
		_spec.SetField(agentrecord.FieldCompletedTasks, field.TypeJSON, value)
		_node.CompletedTasks = value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(agentrecord.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
