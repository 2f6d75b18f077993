// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/developerearning"
	"github.com/agentloom/loom/ent/predicate"
)

// DeveloperEarningUpdate is the builder for updating DeveloperEarning entities.
type DeveloperEarningUpdate struct {
	config
	hooks    []Hook
	mutation *DeveloperEarningMutation
}

// Where appends a list predicates to the DeveloperEarningUpdate builder.
func (_u *DeveloperEarningUpdate) Where(ps ...predicate.DeveloperEarning) *DeveloperEarningUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DeveloperEarningMutation object of the builder.
func (_u *DeveloperEarningUpdate) Mutation() *DeveloperEarningMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeveloperEarningUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeveloperEarningUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeveloperEarningUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeveloperEarningUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeveloperEarningUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(developerearning.Table, developerearning.Columns, sqlgraph.NewFieldSpec(developerearning.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developerearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeveloperEarningUpdateOne is the builder for updating a single DeveloperEarning entity.
type DeveloperEarningUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeveloperEarningMutation
}

// Mutation returns the DeveloperEarningMutation object of the builder.
func (_u *DeveloperEarningUpdateOne) Mutation() *DeveloperEarningMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeveloperEarningUpdate builder.
func (_u *DeveloperEarningUpdateOne) Where(ps ...predicate.DeveloperEarning) *DeveloperEarningUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeveloperEarningUpdateOne) Select(field string, fields ...string) *DeveloperEarningUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeveloperEarning entity.
func (_u *DeveloperEarningUpdateOne) Save(ctx context.Context) (*DeveloperEarning, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeveloperEarningUpdateOne) SaveX(ctx context.Context) *DeveloperEarning {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeveloperEarningUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeveloperEarningUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeveloperEarningUpdateOne) sqlSave(ctx context.Context) (_node *DeveloperEarning, err error) {
	_spec := sqlgraph.NewUpdateSpec(developerearning.Table, developerearning.Columns, sqlgraph.NewFieldSpec(developerearning.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeveloperEarning.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, developerearning.FieldID)
		for _, f := range fields {
			if !developerearning.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != developerearning.FieldID {
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
	_node = &DeveloperEarning{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developerearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
