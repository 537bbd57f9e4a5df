// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
)

// MemoryRecordCreate is the builder for creating a MemoryRecord entity.
type MemoryRecordCreate struct {
	config
	mutation *MemoryRecordMutation
	hooks    []Hook
}

// SetFingerprint sets the "fingerprint" field.
func (_c *MemoryRecordCreate) SetFingerprint(v string) *MemoryRecordCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *MemoryRecordCreate) SetErrorType(v string) *MemoryRecordCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableErrorType(v *string) *MemoryRecordCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetKnownFixes sets the "known_fixes" field.
func (_c *MemoryRecordCreate) SetKnownFixes(v []map[string]interface{}) *MemoryRecordCreate {
	_c.mutation.SetKnownFixes(v)
	return _c
}

// SetPastErrors sets the "past_errors" field.
func (_c *MemoryRecordCreate) SetPastErrors(v []map[string]interface{}) *MemoryRecordCreate {
	_c.mutation.SetPastErrors(v)
	return _c
}

// SetTypicalFilesRead sets the "typical_files_read" field.
func (_c *MemoryRecordCreate) SetTypicalFilesRead(v []string) *MemoryRecordCreate {
	_c.mutation.SetTypicalFilesRead(v)
	return _c
}

// SetTypicalFilesModified sets the "typical_files_modified" field.
func (_c *MemoryRecordCreate) SetTypicalFilesModified(v []string) *MemoryRecordCreate {
	_c.mutation.SetTypicalFilesModified(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *MemoryRecordCreate) SetConfidenceScore(v int) *MemoryRecordCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableConfidenceScore(v *int) *MemoryRecordCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetTimesSeen sets the "times_seen" field.
func (_c *MemoryRecordCreate) SetTimesSeen(v int) *MemoryRecordCreate {
	_c.mutation.SetTimesSeen(v)
	return _c
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableTimesSeen(v *int) *MemoryRecordCreate {
	if v != nil {
		_c.SetTimesSeen(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryRecordCreate) SetCreatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableCreatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryRecordCreate) SetUpdatedAt(v time.Time) *MemoryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MemoryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_c *MemoryRecordCreate) Mutation() *MemoryRecordMutation {
	return _c.mutation
}

// Save creates the MemoryRecord in the database.
func (_c *MemoryRecordCreate) Save(ctx context.Context) (*MemoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryRecordCreate) SaveX(ctx context.Context) *MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryRecordCreate) defaults() {
	if _, ok := _c.mutation.ErrorType(); !ok {
		v := memoryrecord.DefaultErrorType
		_c.mutation.SetErrorType(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := memoryrecord.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		v := memoryrecord.DefaultTimesSeen
		_c.mutation.SetTimesSeen(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memoryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryRecordCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "MemoryRecord.fingerprint"`)}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "MemoryRecord.error_type"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "MemoryRecord.confidence_score"`)}
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		return &ValidationError{Name: "times_seen", err: errors.New(`ent: missing required field "MemoryRecord.times_seen"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MemoryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MemoryRecordCreate) sqlSave(ctx context.Context) (*MemoryRecord, error) {
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

func (_c *MemoryRecordCreate) createSpec() (*MemoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryrecord.Table, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(memoryrecord.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(memoryrecord.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.KnownFixes(); ok {
		_spec.SetField(memoryrecord.FieldKnownFixes, field.TypeJSON, value)
		_node.KnownFixes = value
	}
	if value, ok := _c.mutation.PastErrors(); ok {
		_spec.SetField(memoryrecord.FieldPastErrors, field.TypeJSON, value)
		_node.PastErrors = value
	}
	if value, ok := _c.mutation.TypicalFilesRead(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesRead, field.TypeJSON, value)
		_node.TypicalFilesRead = value
	}
	if value, ok := _c.mutation.TypicalFilesModified(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesModified, field.TypeJSON, value)
		_node.TypicalFilesModified = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(memoryrecord.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.TimesSeen(); ok {
		_spec.SetField(memoryrecord.FieldTimesSeen, field.TypeInt, value)
		_node.TimesSeen = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MemoryRecordCreateBulk is the builder for creating many MemoryRecord entities in bulk.
type MemoryRecordCreateBulk struct {
	config
	err      error
	builders []*MemoryRecordCreate
}

// Save creates the MemoryRecord entities in the database.
func (_c *MemoryRecordCreateBulk) Save(ctx context.Context) ([]*MemoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryRecordMutation)
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
func (_c *MemoryRecordCreateBulk) SaveX(ctx context.Context) []*MemoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
