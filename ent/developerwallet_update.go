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
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/ent/predicate"
)

// DeveloperWalletUpdate is the builder for updating DeveloperWallet entities.
type DeveloperWalletUpdate struct {
	config
	hooks    []Hook
	mutation *DeveloperWalletMutation
}

// Where appends a list predicates to the DeveloperWalletUpdate builder.
func (_u *DeveloperWalletUpdate) Where(ps ...predicate.DeveloperWallet) *DeveloperWalletUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAvailableBalance sets the "available_balance" field.
func (_u *DeveloperWalletUpdate) SetAvailableBalance(v int64) *DeveloperWalletUpdate {
	_u.mutation.ResetAvailableBalance()
	_u.mutation.SetAvailableBalance(v)
	return _u
}

// SetNillableAvailableBalance sets the "available_balance" field if the given value is not nil.
func (_u *DeveloperWalletUpdate) SetNillableAvailableBalance(v *int64) *DeveloperWalletUpdate {
	if v != nil {
		_u.SetAvailableBalance(*v)
	}
	return _u
}

// AddAvailableBalance adds value to the "available_balance" field.
func (_u *DeveloperWalletUpdate) AddAvailableBalance(v int64) *DeveloperWalletUpdate {
	_u.mutation.AddAvailableBalance(v)
	return _u
}

// SetTotalEarned sets the "total_earned" field.
func (_u *DeveloperWalletUpdate) SetTotalEarned(v int64) *DeveloperWalletUpdate {
	_u.mutation.ResetTotalEarned()
	_u.mutation.SetTotalEarned(v)
	return _u
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_u *DeveloperWalletUpdate) SetNillableTotalEarned(v *int64) *DeveloperWalletUpdate {
	if v != nil {
		_u.SetTotalEarned(*v)
	}
	return _u
}

// AddTotalEarned adds value to the "total_earned" field.
func (_u *DeveloperWalletUpdate) AddTotalEarned(v int64) *DeveloperWalletUpdate {
	_u.mutation.AddTotalEarned(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeveloperWalletUpdate) SetUpdatedAt(v time.Time) *DeveloperWalletUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeveloperWalletMutation object of the builder.
func (_u *DeveloperWalletUpdate) Mutation() *DeveloperWalletMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeveloperWalletUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeveloperWalletUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeveloperWalletUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeveloperWalletUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeveloperWalletUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := developerwallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DeveloperWalletUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(developerwallet.Table, developerwallet.Columns, sqlgraph.NewFieldSpec(developerwallet.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AvailableBalance(); ok {
		_spec.SetField(developerwallet.FieldAvailableBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvailableBalance(); ok {
		_spec.AddField(developerwallet.FieldAvailableBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalEarned(); ok {
		_spec.SetField(developerwallet.FieldTotalEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEarned(); ok {
		_spec.AddField(developerwallet.FieldTotalEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(developerwallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developerwallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeveloperWalletUpdateOne is the builder for updating a single DeveloperWallet entity.
type DeveloperWalletUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeveloperWalletMutation
}

// SetAvailableBalance sets the "available_balance" field.
func (_u *DeveloperWalletUpdateOne) SetAvailableBalance(v int64) *DeveloperWalletUpdateOne {
	_u.mutation.ResetAvailableBalance()
	_u.mutation.SetAvailableBalance(v)
	return _u
}

// SetNillableAvailableBalance sets the "available_balance" field if the given value is not nil.
func (_u *DeveloperWalletUpdateOne) SetNillableAvailableBalance(v *int64) *DeveloperWalletUpdateOne {
	if v != nil {
		_u.SetAvailableBalance(*v)
	}
	return _u
}

// AddAvailableBalance adds value to the "available_balance" field.
func (_u *DeveloperWalletUpdateOne) AddAvailableBalance(v int64) *DeveloperWalletUpdateOne {
	_u.mutation.AddAvailableBalance(v)
	return _u
}

// SetTotalEarned sets the "total_earned" field.
func (_u *DeveloperWalletUpdateOne) SetTotalEarned(v int64) *DeveloperWalletUpdateOne {
	_u.mutation.ResetTotalEarned()
	_u.mutation.SetTotalEarned(v)
	return _u
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_u *DeveloperWalletUpdateOne) SetNillableTotalEarned(v *int64) *DeveloperWalletUpdateOne {
	if v != nil {
		_u.SetTotalEarned(*v)
	}
	return _u
}

// AddTotalEarned adds value to the "total_earned" field.
func (_u *DeveloperWalletUpdateOne) AddTotalEarned(v int64) *DeveloperWalletUpdateOne {
	_u.mutation.AddTotalEarned(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeveloperWalletUpdateOne) SetUpdatedAt(v time.Time) *DeveloperWalletUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeveloperWalletMutation object of the builder.
func (_u *DeveloperWalletUpdateOne) Mutation() *DeveloperWalletMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeveloperWalletUpdate builder.
func (_u *DeveloperWalletUpdateOne) Where(ps ...predicate.DeveloperWallet) *DeveloperWalletUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeveloperWalletUpdateOne) Select(field string, fields ...string) *DeveloperWalletUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeveloperWallet entity.
func (_u *DeveloperWalletUpdateOne) Save(ctx context.Context) (*DeveloperWallet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeveloperWalletUpdateOne) SaveX(ctx context.Context) *DeveloperWallet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeveloperWalletUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeveloperWalletUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeveloperWalletUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := developerwallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DeveloperWalletUpdateOne) sqlSave(ctx context.Context) (_node *DeveloperWallet, err error) {
	_spec := sqlgraph.NewUpdateSpec(developerwallet.Table, developerwallet.Columns, sqlgraph.NewFieldSpec(developerwallet.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeveloperWallet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, developerwallet.FieldID)
		for _, f := range fields {
			if !developerwallet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != developerwallet.FieldID {
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
	if value, ok := _u.mutation.AvailableBalance(); ok {
		_spec.SetField(developerwallet.FieldAvailableBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvailableBalance(); ok {
		_spec.AddField(developerwallet.FieldAvailableBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalEarned(); ok {
		_spec.SetField(developerwallet.FieldTotalEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEarned(); ok {
		_spec.AddField(developerwallet.FieldTotalEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(developerwallet.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DeveloperWallet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developerwallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
