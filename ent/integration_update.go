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
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// IntegrationUpdate is the builder for updating Integration entities.
type IntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationMutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdate) Where(ps ...predicate.Integration) *IntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdate) SetProvider(v integration.Provider) *IntegrationUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableProvider(v *integration.Provider) *IntegrationUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationUpdate) SetStatus(v integration.Status) *IntegrationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableStatus(v *integration.Status) *IntegrationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastLogTime sets the "last_log_time" field.
func (_u *IntegrationUpdate) SetLastLogTime(v time.Time) *IntegrationUpdate {
	_u.mutation.SetLastLogTime(v)
	return _u
}

// SetNillableLastLogTime sets the "last_log_time" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableLastLogTime(v *time.Time) *IntegrationUpdate {
	if v != nil {
		_u.SetLastLogTime(*v)
	}
	return _u
}

// ClearLastLogTime clears the value of the "last_log_time" field.
func (_u *IntegrationUpdate) ClearLastLogTime() *IntegrationUpdate {
	_u.mutation.ClearLastLogTime()
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntegrationUpdate) SetConfig(v map[string]interface{}) *IntegrationUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntegrationUpdate) ClearConfig() *IntegrationUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdate) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Integration.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastLogTime(); ok {
		_spec.SetField(integration.FieldLastLogTime, field.TypeTime, value)
	}
	if _u.mutation.LastLogTimeCleared() {
		_spec.ClearField(integration.FieldLastLogTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(integration.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(integration.FieldConfig, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationUpdateOne is the builder for updating a single Integration entity.
type IntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationMutation
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdateOne) SetProvider(v integration.Provider) *IntegrationUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableProvider(v *integration.Provider) *IntegrationUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationUpdateOne) SetStatus(v integration.Status) *IntegrationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableStatus(v *integration.Status) *IntegrationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastLogTime sets the "last_log_time" field.
func (_u *IntegrationUpdateOne) SetLastLogTime(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetLastLogTime(v)
	return _u
}

// SetNillableLastLogTime sets the "last_log_time" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableLastLogTime(v *time.Time) *IntegrationUpdateOne {
	if v != nil {
		_u.SetLastLogTime(*v)
	}
	return _u
}

// ClearLastLogTime clears the value of the "last_log_time" field.
func (_u *IntegrationUpdateOne) ClearLastLogTime() *IntegrationUpdateOne {
	_u.mutation.ClearLastLogTime()
	return _u
}

// SetConfig sets the "config" field.
func (_u *IntegrationUpdateOne) SetConfig(v map[string]interface{}) *IntegrationUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *IntegrationUpdateOne) ClearConfig() *IntegrationUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdateOne) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdateOne) Where(ps ...predicate.Integration) *IntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationUpdateOne) Select(field string, fields ...string) *IntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Integration entity.
func (_u *IntegrationUpdateOne) Save(ctx context.Context) (*Integration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdateOne) SaveX(ctx context.Context) *Integration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Integration.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdateOne) sqlSave(ctx context.Context) (_node *Integration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Integration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integration.FieldID)
		for _, f := range fields {
			if !integration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integration.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastLogTime(); ok {
		_spec.SetField(integration.FieldLastLogTime, field.TypeTime, value)
	}
	if _u.mutation.LastLogTimeCleared() {
		_spec.ClearField(integration.FieldLastLogTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(integration.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(integration.FieldConfig, field.TypeJSON)
	}
	_node = &Integration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
