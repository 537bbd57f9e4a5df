// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/predicate"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// ResolutionRequestDelete is the builder for deleting a ResolutionRequest entity.
type ResolutionRequestDelete struct {
	config
	hooks    []Hook
	mutation *ResolutionRequestMutation
}

// Where appends a list predicates to the ResolutionRequestDelete builder.
func (_d *ResolutionRequestDelete) Where(ps ...predicate.ResolutionRequest) *ResolutionRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ResolutionRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResolutionRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ResolutionRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(resolutionrequest.Table, sqlgraph.NewFieldSpec(resolutionrequest.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ResolutionRequestDeleteOne is the builder for deleting a single ResolutionRequest entity.
type ResolutionRequestDeleteOne struct {
	_d *ResolutionRequestDelete
}

// Where appends a list predicates to the ResolutionRequestDelete builder.
func (_d *ResolutionRequestDeleteOne) Where(ps ...predicate.ResolutionRequest) *ResolutionRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ResolutionRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{resolutionrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResolutionRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
