// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
)

// AgentWorkspaceCreate is the builder for creating a AgentWorkspace entity.
type AgentWorkspaceCreate struct {
	config
	mutation *AgentWorkspaceMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *AgentWorkspaceCreate) SetIncidentID(v string) *AgentWorkspaceCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetFiles sets the "files" field.
func (_c *AgentWorkspaceCreate) SetFiles(v map[string]string) *AgentWorkspaceCreate {
	_c.mutation.SetFiles(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AgentWorkspaceCreate) SetNotes(v []map[string]interface{}) *AgentWorkspaceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetPlanProgress sets the "plan_progress" field.
func (_c *AgentWorkspaceCreate) SetPlanProgress(v map[string]interface{}) *AgentWorkspaceCreate {
	_c.mutation.SetPlanProgress(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentWorkspaceCreate) SetCreatedAt(v time.Time) *AgentWorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentWorkspaceCreate) SetNillableCreatedAt(v *time.Time) *AgentWorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentWorkspaceCreate) SetUpdatedAt(v time.Time) *AgentWorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentWorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *AgentWorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentWorkspaceCreate) SetID(v string) *AgentWorkspaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentWorkspaceMutation object of the builder.
func (_c *AgentWorkspaceCreate) Mutation() *AgentWorkspaceMutation {
	return _c.mutation
}

// Save creates the AgentWorkspace in the database.
func (_c *AgentWorkspaceCreate) Save(ctx context.Context) (*AgentWorkspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentWorkspaceCreate) SaveX(ctx context.Context) *AgentWorkspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentWorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentWorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentWorkspaceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentworkspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentworkspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentWorkspaceCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "AgentWorkspace.incident_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentWorkspace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentWorkspace.updated_at"`)}
	}
	return nil
}

func (_c *AgentWorkspaceCreate) sqlSave(ctx context.Context) (*AgentWorkspace, error) {
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
			return nil, fmt.Errorf("unexpected AgentWorkspace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentWorkspaceCreate) createSpec() (*AgentWorkspace, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentWorkspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentworkspace.Table, sqlgraph.NewFieldSpec(agentworkspace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(agentworkspace.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Files(); ok {
		_spec.SetField(agentworkspace.FieldFiles, field.TypeJSON, value)
		_node.Files = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(agentworkspace.FieldNotes, field.TypeJSON, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.PlanProgress(); ok {
		_spec.SetField(agentworkspace.FieldPlanProgress, field.TypeJSON, value)
		_node.PlanProgress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentworkspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentworkspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentWorkspaceCreateBulk is the builder for creating many AgentWorkspace entities in bulk.
type AgentWorkspaceCreateBulk struct {
	config
	err      error
	builders []*AgentWorkspaceCreate
}

// Save creates the AgentWorkspace entities in the database.
func (_c *AgentWorkspaceCreateBulk) Save(ctx context.Context) ([]*AgentWorkspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentWorkspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentWorkspaceMutation)
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
func (_c *AgentWorkspaceCreateBulk) SaveX(ctx context.Context) []*AgentWorkspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentWorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentWorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
