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
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// AgentWorkspaceUpdate is the builder for updating AgentWorkspace entities.
type AgentWorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentWorkspaceMutation
}

// Where appends a list predicates to the AgentWorkspaceUpdate builder.
func (_u *AgentWorkspaceUpdate) Where(ps ...predicate.AgentWorkspace) *AgentWorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFiles sets the "files" field.
func (_u *AgentWorkspaceUpdate) SetFiles(v map[string]string) *AgentWorkspaceUpdate {
	_u.mutation.SetFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *AgentWorkspaceUpdate) ClearFiles() *AgentWorkspaceUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AgentWorkspaceUpdate) SetNotes(v []map[string]interface{}) *AgentWorkspaceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *AgentWorkspaceUpdate) AppendNotes(v []map[string]interface{}) *AgentWorkspaceUpdate {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AgentWorkspaceUpdate) ClearNotes() *AgentWorkspaceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPlanProgress sets the "plan_progress" field.
func (_u *AgentWorkspaceUpdate) SetPlanProgress(v map[string]interface{}) *AgentWorkspaceUpdate {
	_u.mutation.SetPlanProgress(v)
	return _u
}

// ClearPlanProgress clears the value of the "plan_progress" field.
func (_u *AgentWorkspaceUpdate) ClearPlanProgress() *AgentWorkspaceUpdate {
	_u.mutation.ClearPlanProgress()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentWorkspaceUpdate) SetUpdatedAt(v time.Time) *AgentWorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentWorkspaceMutation object of the builder.
func (_u *AgentWorkspaceUpdate) Mutation() *AgentWorkspaceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentWorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentWorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentWorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentWorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentWorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentworkspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentWorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentworkspace.Table, agentworkspace.Columns, sqlgraph.NewFieldSpec(agentworkspace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(agentworkspace.FieldFiles, field.TypeJSON, value)
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(agentworkspace.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(agentworkspace.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentworkspace.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(agentworkspace.FieldNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanProgress(); ok {
		_spec.SetField(agentworkspace.FieldPlanProgress, field.TypeJSON, value)
	}
	if _u.mutation.PlanProgressCleared() {
		_spec.ClearField(agentworkspace.FieldPlanProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentworkspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentworkspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentWorkspaceUpdateOne is the builder for updating a single AgentWorkspace entity.
type AgentWorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentWorkspaceMutation
}

// SetFiles sets the "files" field.
func (_u *AgentWorkspaceUpdateOne) SetFiles(v map[string]string) *AgentWorkspaceUpdateOne {
	_u.mutation.SetFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *AgentWorkspaceUpdateOne) ClearFiles() *AgentWorkspaceUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AgentWorkspaceUpdateOne) SetNotes(v []map[string]interface{}) *AgentWorkspaceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *AgentWorkspaceUpdateOne) AppendNotes(v []map[string]interface{}) *AgentWorkspaceUpdateOne {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AgentWorkspaceUpdateOne) ClearNotes() *AgentWorkspaceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPlanProgress sets the "plan_progress" field.
func (_u *AgentWorkspaceUpdateOne) SetPlanProgress(v map[string]interface{}) *AgentWorkspaceUpdateOne {
	_u.mutation.SetPlanProgress(v)
	return _u
}

// ClearPlanProgress clears the value of the "plan_progress" field.
func (_u *AgentWorkspaceUpdateOne) ClearPlanProgress() *AgentWorkspaceUpdateOne {
	_u.mutation.ClearPlanProgress()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentWorkspaceUpdateOne) SetUpdatedAt(v time.Time) *AgentWorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentWorkspaceMutation object of the builder.
func (_u *AgentWorkspaceUpdateOne) Mutation() *AgentWorkspaceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentWorkspaceUpdate builder.
func (_u *AgentWorkspaceUpdateOne) Where(ps ...predicate.AgentWorkspace) *AgentWorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentWorkspaceUpdateOne) Select(field string, fields ...string) *AgentWorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentWorkspace entity.
func (_u *AgentWorkspaceUpdateOne) Save(ctx context.Context) (*AgentWorkspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentWorkspaceUpdateOne) SaveX(ctx context.Context) *AgentWorkspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentWorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentWorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentWorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentworkspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentWorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *AgentWorkspace, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentworkspace.Table, agentworkspace.Columns, sqlgraph.NewFieldSpec(agentworkspace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentWorkspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentworkspace.FieldID)
		for _, f := range fields {
			if !agentworkspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentworkspace.FieldID {
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
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(agentworkspace.FieldFiles, field.TypeJSON, value)
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(agentworkspace.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(agentworkspace.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentworkspace.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(agentworkspace.FieldNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanProgress(); ok {
		_spec.SetField(agentworkspace.FieldPlanProgress, field.TypeJSON, value)
	}
	if _u.mutation.PlanProgressCleared() {
		_spec.ClearField(agentworkspace.FieldPlanProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentworkspace.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentWorkspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentworkspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
