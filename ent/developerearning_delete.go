// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/developerearning"
	"github.com/agentloom/loom/ent/predicate"
)

// DeveloperEarningDelete is the builder for deleting a DeveloperEarning entity.
type DeveloperEarningDelete struct {
	config
	hooks    []Hook
	mutation *DeveloperEarningMutation
}

// Where appends a list predicates to the DeveloperEarningDelete builder.
func (_d *DeveloperEarningDelete) Where(ps ...predicate.DeveloperEarning) *DeveloperEarningDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeveloperEarningDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeveloperEarningDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeveloperEarningDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(developerearning.Table, sqlgraph.NewFieldSpec(developerearning.FieldID, field.TypeString))
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

// DeveloperEarningDeleteOne is the builder for deleting a single DeveloperEarning entity.
type DeveloperEarningDeleteOne struct {
	_d *DeveloperEarningDelete
}

// Where appends a list predicates to the DeveloperEarningDelete builder.
func (_d *DeveloperEarningDeleteOne) Where(ps ...predicate.DeveloperEarning) *DeveloperEarningDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeveloperEarningDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{developerearning.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeveloperEarningDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
