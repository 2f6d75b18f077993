// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/ent/predicate"
)

// ConsumeRecordDelete is the builder for deleting a ConsumeRecord entity.
type ConsumeRecordDelete struct {
	config
	hooks    []Hook
	mutation *ConsumeRecordMutation
}

// Where appends a list predicates to the ConsumeRecordDelete builder.
func (_d *ConsumeRecordDelete) Where(ps ...predicate.ConsumeRecord) *ConsumeRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsumeRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsumeRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsumeRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consumerecord.Table, sqlgraph.NewFieldSpec(consumerecord.FieldID, field.TypeString))
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

// ConsumeRecordDeleteOne is the builder for deleting a single ConsumeRecord entity.
type ConsumeRecordDeleteOne struct {
	_d *ConsumeRecordDelete
}

// Where appends a list predicates to the ConsumeRecordDelete builder.
func (_d *ConsumeRecordDeleteOne) Where(ps ...predicate.ConsumeRecord) *ConsumeRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsumeRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consumerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsumeRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
