// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/predicate"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// ResolutionRequestUpdate is the builder for updating ResolutionRequest entities.
type ResolutionRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ResolutionRequestMutation
}

// Where appends a list predicates to the ResolutionRequestUpdate builder.
func (_u *ResolutionRequestUpdate) Where(ps ...predicate.ResolutionRequest) *ResolutionRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *ResolutionRequestUpdate) SetState(v resolutionrequest.State) *ResolutionRequestUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableState(v *resolutionrequest.State) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRequestedByUserID sets the "requested_by_user_id" field.
func (_u *ResolutionRequestUpdate) SetRequestedByUserID(v string) *ResolutionRequestUpdate {
	_u.mutation.SetRequestedByUserID(v)
	return _u
}

// SetNillableRequestedByUserID sets the "requested_by_user_id" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableRequestedByUserID(v *string) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetRequestedByUserID(*v)
	}
	return _u
}

// SetRequestedByTrigger sets the "requested_by_trigger" field.
func (_u *ResolutionRequestUpdate) SetRequestedByTrigger(v string) *ResolutionRequestUpdate {
	_u.mutation.SetRequestedByTrigger(v)
	return _u
}

// SetNillableRequestedByTrigger sets the "requested_by_trigger" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableRequestedByTrigger(v *string) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetRequestedByTrigger(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResolutionRequestUpdate) SetAttempts(v int) *ResolutionRequestUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableAttempts(v *int) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResolutionRequestUpdate) AddAttempts(v int) *ResolutionRequestUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ResolutionRequestUpdate) SetLastError(v string) *ResolutionRequestUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableLastError(v *string) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ResolutionRequestUpdate) ClearLastError() *ResolutionRequestUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ResolutionRequestUpdate) SetClaimedAt(v time.Time) *ResolutionRequestUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableClaimedAt(v *time.Time) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ResolutionRequestUpdate) ClearClaimedAt() *ResolutionRequestUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResolutionRequestUpdate) SetCompletedAt(v time.Time) *ResolutionRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableCompletedAt(v *time.Time) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResolutionRequestUpdate) ClearCompletedAt() *ResolutionRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ResolutionRequestUpdate) SetCreatedAt(v time.Time) *ResolutionRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdate) SetNillableCreatedAt(v *time.Time) *ResolutionRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ResolutionRequestMutation object of the builder.
func (_u *ResolutionRequestUpdate) Mutation() *ResolutionRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResolutionRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResolutionRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResolutionRequestUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := resolutionrequest.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastError(); ok {
		if err := resolutionrequest.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.last_error": %w`, err)}
		}
	}
	return nil
}

func (_u *ResolutionRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resolutionrequest.Table, resolutionrequest.Columns, sqlgraph.NewFieldSpec(resolutionrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(resolutionrequest.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedByUserID(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedByTrigger(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resolutionrequest.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resolutionrequest.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(resolutionrequest.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(resolutionrequest.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(resolutionrequest.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(resolutionrequest.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(resolutionrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResolutionRequestUpdateOne is the builder for updating a single ResolutionRequest entity.
type ResolutionRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResolutionRequestMutation
}

// SetState sets the "state" field.
func (_u *ResolutionRequestUpdateOne) SetState(v resolutionrequest.State) *ResolutionRequestUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableState(v *resolutionrequest.State) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRequestedByUserID sets the "requested_by_user_id" field.
func (_u *ResolutionRequestUpdateOne) SetRequestedByUserID(v string) *ResolutionRequestUpdateOne {
	_u.mutation.SetRequestedByUserID(v)
	return _u
}

// SetNillableRequestedByUserID sets the "requested_by_user_id" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableRequestedByUserID(v *string) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetRequestedByUserID(*v)
	}
	return _u
}

// SetRequestedByTrigger sets the "requested_by_trigger" field.
func (_u *ResolutionRequestUpdateOne) SetRequestedByTrigger(v string) *ResolutionRequestUpdateOne {
	_u.mutation.SetRequestedByTrigger(v)
	return _u
}

// SetNillableRequestedByTrigger sets the "requested_by_trigger" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableRequestedByTrigger(v *string) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetRequestedByTrigger(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResolutionRequestUpdateOne) SetAttempts(v int) *ResolutionRequestUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableAttempts(v *int) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResolutionRequestUpdateOne) AddAttempts(v int) *ResolutionRequestUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ResolutionRequestUpdateOne) SetLastError(v string) *ResolutionRequestUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableLastError(v *string) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ResolutionRequestUpdateOne) ClearLastError() *ResolutionRequestUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ResolutionRequestUpdateOne) SetClaimedAt(v time.Time) *ResolutionRequestUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableClaimedAt(v *time.Time) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ResolutionRequestUpdateOne) ClearClaimedAt() *ResolutionRequestUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResolutionRequestUpdateOne) SetCompletedAt(v time.Time) *ResolutionRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResolutionRequestUpdateOne) ClearCompletedAt() *ResolutionRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ResolutionRequestUpdateOne) SetCreatedAt(v time.Time) *ResolutionRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ResolutionRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *ResolutionRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ResolutionRequestMutation object of the builder.
func (_u *ResolutionRequestUpdateOne) Mutation() *ResolutionRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResolutionRequestUpdate builder.
func (_u *ResolutionRequestUpdateOne) Where(ps ...predicate.ResolutionRequest) *ResolutionRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResolutionRequestUpdateOne) Select(field string, fields ...string) *ResolutionRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResolutionRequest entity.
func (_u *ResolutionRequestUpdateOne) Save(ctx context.Context) (*ResolutionRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionRequestUpdateOne) SaveX(ctx context.Context) *ResolutionRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResolutionRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResolutionRequestUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := resolutionrequest.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastError(); ok {
		if err := resolutionrequest.LastErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_error", err: fmt.Errorf(`ent: validator failed for field "ResolutionRequest.last_error": %w`, err)}
		}
	}
	return nil
}

func (_u *ResolutionRequestUpdateOne) sqlSave(ctx context.Context) (_node *ResolutionRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resolutionrequest.Table, resolutionrequest.Columns, sqlgraph.NewFieldSpec(resolutionrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResolutionRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resolutionrequest.FieldID)
		for _, f := range fields {
			if !resolutionrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resolutionrequest.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(resolutionrequest.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedByUserID(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedByTrigger(); ok {
		_spec.SetField(resolutionrequest.FieldRequestedByTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resolutionrequest.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resolutionrequest.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(resolutionrequest.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(resolutionrequest.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(resolutionrequest.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(resolutionrequest.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(resolutionrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(resolutionrequest.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ResolutionRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
