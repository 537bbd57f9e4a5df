// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/logentry"
)

// LogEntryCreate is the builder for creating a LogEntry entity.
type LogEntryCreate struct {
	config
	mutation *LogEntryMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *LogEntryCreate) SetTimestamp(v time.Time) *LogEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableTimestamp(v *time.Time) *LogEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetServiceName sets the "service_name" field.
func (_c *LogEntryCreate) SetServiceName(v string) *LogEntryCreate {
	_c.mutation.SetServiceName(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *LogEntryCreate) SetSeverity(v logentry.Severity) *LogEntryCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableSeverity(v *logentry.Severity) *LogEntryCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *LogEntryCreate) SetMessage(v string) *LogEntryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *LogEntryCreate) SetSource(v string) *LogEntryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LogEntryCreate) SetUserID(v string) *LogEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *LogEntryCreate) SetIntegrationID(v string) *LogEntryCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableIntegrationID(v *string) *LogEntryCreate {
	if v != nil {
		_c.SetIntegrationID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LogEntryCreate) SetMetadata(v map[string]interface{}) *LogEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsEmail sets the "is_email" field.
func (_c *LogEntryCreate) SetIsEmail(v bool) *LogEntryCreate {
	_c.mutation.SetIsEmail(v)
	return _c
}

// SetNillableIsEmail sets the "is_email" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableIsEmail(v *bool) *LogEntryCreate {
	if v != nil {
		_c.SetIsEmail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LogEntryCreate) SetID(v string) *LogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LogEntryMutation object of the builder.
func (_c *LogEntryCreate) Mutation() *LogEntryMutation {
	return _c.mutation
}

// Save creates the LogEntry in the database.
func (_c *LogEntryCreate) Save(ctx context.Context) (*LogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogEntryCreate) SaveX(ctx context.Context) *LogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := logentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := logentry.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.IsEmail(); !ok {
		v := logentry.DefaultIsEmail
		_c.mutation.SetIsEmail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogEntryCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LogEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.ServiceName(); !ok {
		return &ValidationError{Name: "service_name", err: errors.New(`ent: missing required field "LogEntry.service_name"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "LogEntry.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := logentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "LogEntry.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "LogEntry.message"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "LogEntry.source"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LogEntry.user_id"`)}
	}
	if _, ok := _c.mutation.IsEmail(); !ok {
		return &ValidationError{Name: "is_email", err: errors.New(`ent: missing required field "LogEntry.is_email"`)}
	}
	return nil
}

func (_c *LogEntryCreate) sqlSave(ctx context.Context) (*LogEntry, error) {
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
			return nil, fmt.Errorf("unexpected LogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LogEntryCreate) createSpec() (*LogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logentry.Table, sqlgraph.NewFieldSpec(logentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(logentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ServiceName(); ok {
		_spec.SetField(logentry.FieldServiceName, field.TypeString, value)
		_node.ServiceName = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(logentry.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(logentry.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(logentry.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(logentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(logentry.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(logentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsEmail(); ok {
		_spec.SetField(logentry.FieldIsEmail, field.TypeBool, value)
		_node.IsEmail = value
	}
	return _node, _spec
}

// LogEntryCreateBulk is the builder for creating many LogEntry entities in bulk.
type LogEntryCreateBulk struct {
	config
	err      error
	builders []*LogEntryCreate
}

// Save creates the LogEntry entities in the database.
func (_c *LogEntryCreateBulk) Save(ctx context.Context) ([]*LogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogEntryMutation)
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
func (_c *LogEntryCreateBulk) SaveX(ctx context.Context) []*LogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
