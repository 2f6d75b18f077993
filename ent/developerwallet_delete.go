// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/ent/predicate"
)

// DeveloperWalletDelete is the builder for deleting a DeveloperWallet entity.
type DeveloperWalletDelete struct {
	config
	hooks    []Hook
	mutation *DeveloperWalletMutation
}

// Where appends a list predicates to the DeveloperWalletDelete builder.
func (_d *DeveloperWalletDelete) Where(ps ...predicate.DeveloperWallet) *DeveloperWalletDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeveloperWalletDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeveloperWalletDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeveloperWalletDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(developerwallet.Table, sqlgraph.NewFieldSpec(developerwallet.FieldID, field.TypeString))
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

// DeveloperWalletDeleteOne is the builder for deleting a single DeveloperWallet entity.
type DeveloperWalletDeleteOne struct {
	_d *DeveloperWalletDelete
}

// Where appends a list predicates to the DeveloperWalletDelete builder.
func (_d *DeveloperWalletDeleteOne) Where(ps ...predicate.DeveloperWallet) *DeveloperWalletDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeveloperWalletDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{developerwallet.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeveloperWalletDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
