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
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
	"github.com/sourabhkumawat/healops/ent/predicate"
)

// MemoryRecordUpdate is the builder for updating MemoryRecord entities.
type MemoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdate) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *MemoryRecordUpdate) SetErrorType(v string) *MemoryRecordUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableErrorType(v *string) *MemoryRecordUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetKnownFixes sets the "known_fixes" field.
func (_u *MemoryRecordUpdate) SetKnownFixes(v []map[string]interface{}) *MemoryRecordUpdate {
	_u.mutation.SetKnownFixes(v)
	return _u
}

// AppendKnownFixes appends value to the "known_fixes" field.
func (_u *MemoryRecordUpdate) AppendKnownFixes(v []map[string]interface{}) *MemoryRecordUpdate {
	_u.mutation.AppendKnownFixes(v)
	return _u
}

// ClearKnownFixes clears the value of the "known_fixes" field.
func (_u *MemoryRecordUpdate) ClearKnownFixes() *MemoryRecordUpdate {
	_u.mutation.ClearKnownFixes()
	return _u
}

// SetPastErrors sets the "past_errors" field.
func (_u *MemoryRecordUpdate) SetPastErrors(v []map[string]interface{}) *MemoryRecordUpdate {
	_u.mutation.SetPastErrors(v)
	return _u
}

// AppendPastErrors appends value to the "past_errors" field.
func (_u *MemoryRecordUpdate) AppendPastErrors(v []map[string]interface{}) *MemoryRecordUpdate {
	_u.mutation.AppendPastErrors(v)
	return _u
}

// ClearPastErrors clears the value of the "past_errors" field.
func (_u *MemoryRecordUpdate) ClearPastErrors() *MemoryRecordUpdate {
	_u.mutation.ClearPastErrors()
	return _u
}

// SetTypicalFilesRead sets the "typical_files_read" field.
func (_u *MemoryRecordUpdate) SetTypicalFilesRead(v []string) *MemoryRecordUpdate {
	_u.mutation.SetTypicalFilesRead(v)
	return _u
}

// AppendTypicalFilesRead appends value to the "typical_files_read" field.
func (_u *MemoryRecordUpdate) AppendTypicalFilesRead(v []string) *MemoryRecordUpdate {
	_u.mutation.AppendTypicalFilesRead(v)
	return _u
}

// ClearTypicalFilesRead clears the value of the "typical_files_read" field.
func (_u *MemoryRecordUpdate) ClearTypicalFilesRead() *MemoryRecordUpdate {
	_u.mutation.ClearTypicalFilesRead()
	return _u
}

// SetTypicalFilesModified sets the "typical_files_modified" field.
func (_u *MemoryRecordUpdate) SetTypicalFilesModified(v []string) *MemoryRecordUpdate {
	_u.mutation.SetTypicalFilesModified(v)
	return _u
}

// AppendTypicalFilesModified appends value to the "typical_files_modified" field.
func (_u *MemoryRecordUpdate) AppendTypicalFilesModified(v []string) *MemoryRecordUpdate {
	_u.mutation.AppendTypicalFilesModified(v)
	return _u
}

// ClearTypicalFilesModified clears the value of the "typical_files_modified" field.
func (_u *MemoryRecordUpdate) ClearTypicalFilesModified() *MemoryRecordUpdate {
	_u.mutation.ClearTypicalFilesModified()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *MemoryRecordUpdate) SetConfidenceScore(v int) *MemoryRecordUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableConfidenceScore(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *MemoryRecordUpdate) AddConfidenceScore(v int) *MemoryRecordUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *MemoryRecordUpdate) SetTimesSeen(v int) *MemoryRecordUpdate {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *MemoryRecordUpdate) SetNillableTimesSeen(v *int) *MemoryRecordUpdate {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *MemoryRecordUpdate) AddTimesSeen(v int) *MemoryRecordUpdate {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryRecordUpdate) SetUpdatedAt(v time.Time) *MemoryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdate) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MemoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(memoryrecord.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnownFixes(); ok {
		_spec.SetField(memoryrecord.FieldKnownFixes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKnownFixes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldKnownFixes, value)
		})
	}
	if _u.mutation.KnownFixesCleared() {
		_spec.ClearField(memoryrecord.FieldKnownFixes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PastErrors(); ok {
		_spec.SetField(memoryrecord.FieldPastErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPastErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldPastErrors, value)
		})
	}
	if _u.mutation.PastErrorsCleared() {
		_spec.ClearField(memoryrecord.FieldPastErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypicalFilesRead(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesRead, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypicalFilesRead(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTypicalFilesRead, value)
		})
	}
	if _u.mutation.TypicalFilesReadCleared() {
		_spec.ClearField(memoryrecord.FieldTypicalFilesRead, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypicalFilesModified(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypicalFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTypicalFilesModified, value)
		})
	}
	if _u.mutation.TypicalFilesModifiedCleared() {
		_spec.ClearField(memoryrecord.FieldTypicalFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(memoryrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(memoryrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(memoryrecord.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(memoryrecord.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryRecordUpdateOne is the builder for updating a single MemoryRecord entity.
type MemoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryRecordMutation
}

// SetErrorType sets the "error_type" field.
func (_u *MemoryRecordUpdateOne) SetErrorType(v string) *MemoryRecordUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableErrorType(v *string) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetKnownFixes sets the "known_fixes" field.
func (_u *MemoryRecordUpdateOne) SetKnownFixes(v []map[string]interface{}) *MemoryRecordUpdateOne {
	_u.mutation.SetKnownFixes(v)
	return _u
}

// AppendKnownFixes appends value to the "known_fixes" field.
func (_u *MemoryRecordUpdateOne) AppendKnownFixes(v []map[string]interface{}) *MemoryRecordUpdateOne {
	_u.mutation.AppendKnownFixes(v)
	return _u
}

// ClearKnownFixes clears the value of the "known_fixes" field.
func (_u *MemoryRecordUpdateOne) ClearKnownFixes() *MemoryRecordUpdateOne {
	_u.mutation.ClearKnownFixes()
	return _u
}

// SetPastErrors sets the "past_errors" field.
func (_u *MemoryRecordUpdateOne) SetPastErrors(v []map[string]interface{}) *MemoryRecordUpdateOne {
	_u.mutation.SetPastErrors(v)
	return _u
}

// AppendPastErrors appends value to the "past_errors" field.
func (_u *MemoryRecordUpdateOne) AppendPastErrors(v []map[string]interface{}) *MemoryRecordUpdateOne {
	_u.mutation.AppendPastErrors(v)
	return _u
}

// ClearPastErrors clears the value of the "past_errors" field.
func (_u *MemoryRecordUpdateOne) ClearPastErrors() *MemoryRecordUpdateOne {
	_u.mutation.ClearPastErrors()
	return _u
}

// SetTypicalFilesRead sets the "typical_files_read" field.
func (_u *MemoryRecordUpdateOne) SetTypicalFilesRead(v []string) *MemoryRecordUpdateOne {
	_u.mutation.SetTypicalFilesRead(v)
	return _u
}

// AppendTypicalFilesRead appends value to the "typical_files_read" field.
func (_u *MemoryRecordUpdateOne) AppendTypicalFilesRead(v []string) *MemoryRecordUpdateOne {
	_u.mutation.AppendTypicalFilesRead(v)
	return _u
}

// ClearTypicalFilesRead clears the value of the "typical_files_read" field.
func (_u *MemoryRecordUpdateOne) ClearTypicalFilesRead() *MemoryRecordUpdateOne {
	_u.mutation.ClearTypicalFilesRead()
	return _u
}

// SetTypicalFilesModified sets the "typical_files_modified" field.
func (_u *MemoryRecordUpdateOne) SetTypicalFilesModified(v []string) *MemoryRecordUpdateOne {
	_u.mutation.SetTypicalFilesModified(v)
	return _u
}

// AppendTypicalFilesModified appends value to the "typical_files_modified" field.
func (_u *MemoryRecordUpdateOne) AppendTypicalFilesModified(v []string) *MemoryRecordUpdateOne {
	_u.mutation.AppendTypicalFilesModified(v)
	return _u
}

// ClearTypicalFilesModified clears the value of the "typical_files_modified" field.
func (_u *MemoryRecordUpdateOne) ClearTypicalFilesModified() *MemoryRecordUpdateOne {
	_u.mutation.ClearTypicalFilesModified()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *MemoryRecordUpdateOne) SetConfidenceScore(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableConfidenceScore(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *MemoryRecordUpdateOne) AddConfidenceScore(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *MemoryRecordUpdateOne) SetTimesSeen(v int) *MemoryRecordUpdateOne {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *MemoryRecordUpdateOne) SetNillableTimesSeen(v *int) *MemoryRecordUpdateOne {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *MemoryRecordUpdateOne) AddTimesSeen(v int) *MemoryRecordUpdateOne {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryRecordUpdateOne) SetUpdatedAt(v time.Time) *MemoryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryRecordMutation object of the builder.
func (_u *MemoryRecordUpdateOne) Mutation() *MemoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryRecordUpdate builder.
func (_u *MemoryRecordUpdateOne) Where(ps ...predicate.MemoryRecord) *MemoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryRecordUpdateOne) Select(field string, fields ...string) *MemoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryRecord entity.
func (_u *MemoryRecordUpdateOne) Save(ctx context.Context) (*MemoryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) SaveX(ctx context.Context) *MemoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memoryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MemoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MemoryRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryrecord.FieldID)
		for _, f := range fields {
			if !memoryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryrecord.FieldID {
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
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(memoryrecord.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnownFixes(); ok {
		_spec.SetField(memoryrecord.FieldKnownFixes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKnownFixes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldKnownFixes, value)
		})
	}
	if _u.mutation.KnownFixesCleared() {
		_spec.ClearField(memoryrecord.FieldKnownFixes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PastErrors(); ok {
		_spec.SetField(memoryrecord.FieldPastErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPastErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldPastErrors, value)
		})
	}
	if _u.mutation.PastErrorsCleared() {
		_spec.ClearField(memoryrecord.FieldPastErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypicalFilesRead(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesRead, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypicalFilesRead(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTypicalFilesRead, value)
		})
	}
	if _u.mutation.TypicalFilesReadCleared() {
		_spec.ClearField(memoryrecord.FieldTypicalFilesRead, field.TypeJSON)
	}
	if value, ok := _u.mutation.TypicalFilesModified(); ok {
		_spec.SetField(memoryrecord.FieldTypicalFilesModified, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypicalFilesModified(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryrecord.FieldTypicalFilesModified, value)
		})
	}
	if _u.mutation.TypicalFilesModifiedCleared() {
		_spec.ClearField(memoryrecord.FieldTypicalFilesModified, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(memoryrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(memoryrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(memoryrecord.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(memoryrecord.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memoryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MemoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
