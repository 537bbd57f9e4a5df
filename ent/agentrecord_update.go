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
	"github.com/sourabhkumawat/healops/ent/agentrecord"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentRecordUpdate) SetName(v string) *AgentRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableName(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentRecordUpdate) SetRole(v string) *AgentRecordUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableRole(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentRecordUpdate) ClearRole() *AgentRecordUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *AgentRecordUpdate) SetKeywords(v []string) *AgentRecordUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *AgentRecordUpdate) AppendKeywords(v []string) *AgentRecordUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *AgentRecordUpdate) ClearKeywords() *AgentRecordUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdate) SetStatus(v agentrecord.Status) *AgentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTask sets the "current_task" field.
func (_u *AgentRecordUpdate) SetCurrentTask(v string) *AgentRecordUpdate {
	_u.mutation.SetCurrentTask(v)
	return _u
}

// SetNillableCurrentTask sets the "current_task" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableCurrentTask(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetCurrentTask(*v)
	}
	return _u
}

// ClearCurrentTask clears the value of the "current_task" field.
func (_u *AgentRecordUpdate) ClearCurrentTask() *AgentRecordUpdate {
	_u.mutation.ClearCurrentTask()
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *AgentRecordUpdate) SetCompletedTasks(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// AppendCompletedTasks appends value to the "completed_tasks" field.
func (_u *AgentRecordUpdate) AppendCompletedTasks(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.AppendCompletedTasks(v)
	return _u
}

// ClearCompletedTasks clears the value of the "completed_tasks" field.
func (_u *AgentRecordUpdate) ClearCompletedTasks() *AgentRecordUpdate {
	_u.mutation.ClearCompletedTasks()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *AgentRecordUpdate) SetLastActiveAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableLastActiveAt(v *time.Time) *AgentRecordUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *AgentRecordUpdate) ClearLastActiveAt() *AgentRecordUpdate {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agentrecord.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(agentrecord.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(agentrecord.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTask(); ok {
		_spec.SetField(agentrecord.FieldCurrentTask, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskCleared() {
		_spec.ClearField(agentrecord.FieldCurrentTask, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(agentrecord.FieldCompletedTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldCompletedTasks, value)
		})
	}
	if _u.mutation.CompletedTasksCleared() {
		_spec.ClearField(agentrecord.FieldCompletedTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(agentrecord.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(agentrecord.FieldLastActiveAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetName sets the "name" field.
func (_u *AgentRecordUpdateOne) SetName(v string) *AgentRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableName(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentRecordUpdateOne) SetRole(v string) *AgentRecordUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableRole(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentRecordUpdateOne) ClearRole() *AgentRecordUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *AgentRecordUpdateOne) SetKeywords(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *AgentRecordUpdateOne) AppendKeywords(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *AgentRecordUpdateOne) ClearKeywords() *AgentRecordUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdateOne) SetStatus(v agentrecord.Status) *AgentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTask sets the "current_task" field.
func (_u *AgentRecordUpdateOne) SetCurrentTask(v string) *AgentRecordUpdateOne {
	_u.mutation.SetCurrentTask(v)
	return _u
}

// SetNillableCurrentTask sets the "current_task" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableCurrentTask(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetCurrentTask(*v)
	}
	return _u
}

// ClearCurrentTask clears the value of the "current_task" field.
func (_u *AgentRecordUpdateOne) ClearCurrentTask() *AgentRecordUpdateOne {
	_u.mutation.ClearCurrentTask()
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *AgentRecordUpdateOne) SetCompletedTasks(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// AppendCompletedTasks appends value to the "completed_tasks" field.
func (_u *AgentRecordUpdateOne) AppendCompletedTasks(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.AppendCompletedTasks(v)
	return _u
}

// ClearCompletedTasks clears the value of the "completed_tasks" field.
func (_u *AgentRecordUpdateOne) ClearCompletedTasks() *AgentRecordUpdateOne {
	_u.mutation.ClearCompletedTasks()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *AgentRecordUpdateOne) SetLastActiveAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableLastActiveAt(v *time.Time) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *AgentRecordUpdateOne) ClearLastActiveAt() *AgentRecordUpdateOne {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agentrecord.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(agentrecord.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(agentrecord.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTask(); ok {
		_spec.SetField(agentrecord.FieldCurrentTask, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskCleared() {
		_spec.ClearField(agentrecord.FieldCurrentTask, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(agentrecord.FieldCompletedTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldCompletedTasks, value)
		})
	}
	if _u.mutation.CompletedTasksCleared() {
		_spec.ClearField(agentrecord.FieldCompletedTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(agentrecord.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(agentrecord.FieldLastActiveAt, field.TypeTime)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
