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
	"github.com/agentloom/loom/ent/predicate"
	"github.com/agentloom/loom/ent/wallet"
)

// WalletUpdate is the builder for updating Wallet entities.
type WalletUpdate struct {
	config
	hooks    []Hook
	mutation *WalletMutation
}

// Where appends a list predicates to the WalletUpdate builder.
func (_u *WalletUpdate) Where(ps ...predicate.Wallet) *WalletUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFree sets the "free" field.
func (_u *WalletUpdate) SetFree(v int64) *WalletUpdate {
	_u.mutation.ResetFree()
	_u.mutation.SetFree(v)
	return _u
}

// SetNillableFree sets the "free" field if the given value is not nil.
func (_u *WalletUpdate) SetNillableFree(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetFree(*v)
	}
	return _u
}

// AddFree adds value to the "free" field.
func (_u *WalletUpdate) AddFree(v int64) *WalletUpdate {
	_u.mutation.AddFree(v)
	return _u
}

// SetPaid sets the "paid" field.
func (_u *WalletUpdate) SetPaid(v int64) *WalletUpdate {
	_u.mutation.ResetPaid()
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *WalletUpdate) SetNillablePaid(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// AddPaid adds value to the "paid" field.
func (_u *WalletUpdate) AddPaid(v int64) *WalletUpdate {
	_u.mutation.AddPaid(v)
	return _u
}

// SetEarned sets the "earned" field.
func (_u *WalletUpdate) SetEarned(v int64) *WalletUpdate {
	_u.mutation.ResetEarned()
	_u.mutation.SetEarned(v)
	return _u
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_u *WalletUpdate) SetNillableEarned(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetEarned(*v)
	}
	return _u
}

// AddEarned adds value to the "earned" field.
func (_u *WalletUpdate) AddEarned(v int64) *WalletUpdate {
	_u.mutation.AddEarned(v)
	return _u
}

// SetVirtualTotal sets the "virtual_total" field.
func (_u *WalletUpdate) SetVirtualTotal(v int64) *WalletUpdate {
	_u.mutation.ResetVirtualTotal()
	_u.mutation.SetVirtualTotal(v)
	return _u
}

// SetNillableVirtualTotal sets the "virtual_total" field if the given value is not nil.
func (_u *WalletUpdate) SetNillableVirtualTotal(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetVirtualTotal(*v)
	}
	return _u
}

// AddVirtualTotal adds value to the "virtual_total" field.
func (_u *WalletUpdate) AddVirtualTotal(v int64) *WalletUpdate {
	_u.mutation.AddVirtualTotal(v)
	return _u
}

// SetTotalCredited sets the "total_credited" field.
func (_u *WalletUpdate) SetTotalCredited(v int64) *WalletUpdate {
	_u.mutation.ResetTotalCredited()
	_u.mutation.SetTotalCredited(v)
	return _u
}

// SetNillableTotalCredited sets the "total_credited" field if the given value is not nil.
func (_u *WalletUpdate) SetNillableTotalCredited(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetTotalCredited(*v)
	}
	return _u
}

// AddTotalCredited adds value to the "total_credited" field.
func (_u *WalletUpdate) AddTotalCredited(v int64) *WalletUpdate {
	_u.mutation.AddTotalCredited(v)
	return _u
}

// SetTotalConsumed sets the "total_consumed" field.
func (_u *WalletUpdate) SetTotalConsumed(v int64) *WalletUpdate {
	_u.mutation.ResetTotalConsumed()
	_u.mutation.SetTotalConsumed(v)
	return _u
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_u *WalletUpdate) SetNillableTotalConsumed(v *int64) *WalletUpdate {
	if v != nil {
		_u.SetTotalConsumed(*v)
	}
	return _u
}

// AddTotalConsumed adds value to the "total_consumed" field.
func (_u *WalletUpdate) AddTotalConsumed(v int64) *WalletUpdate {
	_u.mutation.AddTotalConsumed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WalletUpdate) SetUpdatedAt(v time.Time) *WalletUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WalletMutation object of the builder.
func (_u *WalletUpdate) Mutation() *WalletMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WalletUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WalletUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WalletUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WalletUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WalletUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WalletUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(wallet.Table, wallet.Columns, sqlgraph.NewFieldSpec(wallet.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Free(); ok {
		_spec.SetField(wallet.FieldFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFree(); ok {
		_spec.AddField(wallet.FieldFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(wallet.FieldPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaid(); ok {
		_spec.AddField(wallet.FieldPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Earned(); ok {
		_spec.SetField(wallet.FieldEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEarned(); ok {
		_spec.AddField(wallet.FieldEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VirtualTotal(); ok {
		_spec.SetField(wallet.FieldVirtualTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVirtualTotal(); ok {
		_spec.AddField(wallet.FieldVirtualTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCredited(); ok {
		_spec.SetField(wallet.FieldTotalCredited, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCredited(); ok {
		_spec.AddField(wallet.FieldTotalCredited, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalConsumed(); ok {
		_spec.SetField(wallet.FieldTotalConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalConsumed(); ok {
		_spec.AddField(wallet.FieldTotalConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WalletUpdateOne is the builder for updating a single Wallet entity.
type WalletUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WalletMutation
}

// SetFree sets the "free" field.
func (_u *WalletUpdateOne) SetFree(v int64) *WalletUpdateOne {
	_u.mutation.ResetFree()
	_u.mutation.SetFree(v)
	return _u
}

// SetNillableFree sets the "free" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillableFree(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetFree(*v)
	}
	return _u
}

// AddFree adds value to the "free" field.
func (_u *WalletUpdateOne) AddFree(v int64) *WalletUpdateOne {
	_u.mutation.AddFree(v)
	return _u
}

// SetPaid sets the "paid" field.
func (_u *WalletUpdateOne) SetPaid(v int64) *WalletUpdateOne {
	_u.mutation.ResetPaid()
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillablePaid(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// AddPaid adds value to the "paid" field.
func (_u *WalletUpdateOne) AddPaid(v int64) *WalletUpdateOne {
	_u.mutation.AddPaid(v)
	return _u
}

// SetEarned sets the "earned" field.
func (_u *WalletUpdateOne) SetEarned(v int64) *WalletUpdateOne {
	_u.mutation.ResetEarned()
	_u.mutation.SetEarned(v)
	return _u
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillableEarned(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetEarned(*v)
	}
	return _u
}

// AddEarned adds value to the "earned" field.
func (_u *WalletUpdateOne) AddEarned(v int64) *WalletUpdateOne {
	_u.mutation.AddEarned(v)
	return _u
}

// SetVirtualTotal sets the "virtual_total" field.
func (_u *WalletUpdateOne) SetVirtualTotal(v int64) *WalletUpdateOne {
	_u.mutation.ResetVirtualTotal()
	_u.mutation.SetVirtualTotal(v)
	return _u
}

// SetNillableVirtualTotal sets the "virtual_total" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillableVirtualTotal(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetVirtualTotal(*v)
	}
	return _u
}

// AddVirtualTotal adds value to the "virtual_total" field.
func (_u *WalletUpdateOne) AddVirtualTotal(v int64) *WalletUpdateOne {
	_u.mutation.AddVirtualTotal(v)
	return _u
}

// SetTotalCredited sets the "total_credited" field.
func (_u *WalletUpdateOne) SetTotalCredited(v int64) *WalletUpdateOne {
	_u.mutation.ResetTotalCredited()
	_u.mutation.SetTotalCredited(v)
	return _u
}

// SetNillableTotalCredited sets the "total_credited" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillableTotalCredited(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetTotalCredited(*v)
	}
	return _u
}

// AddTotalCredited adds value to the "total_credited" field.
func (_u *WalletUpdateOne) AddTotalCredited(v int64) *WalletUpdateOne {
	_u.mutation.AddTotalCredited(v)
	return _u
}

// SetTotalConsumed sets the "total_consumed" field.
func (_u *WalletUpdateOne) SetTotalConsumed(v int64) *WalletUpdateOne {
	_u.mutation.ResetTotalConsumed()
	_u.mutation.SetTotalConsumed(v)
	return _u
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_u *WalletUpdateOne) SetNillableTotalConsumed(v *int64) *WalletUpdateOne {
	if v != nil {
		_u.SetTotalConsumed(*v)
	}
	return _u
}

// AddTotalConsumed adds value to the "total_consumed" field.
func (_u *WalletUpdateOne) AddTotalConsumed(v int64) *WalletUpdateOne {
	_u.mutation.AddTotalConsumed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WalletUpdateOne) SetUpdatedAt(v time.Time) *WalletUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WalletMutation object of the builder.
func (_u *WalletUpdateOne) Mutation() *WalletMutation {
	return _u.mutation
}

// Where appends a list predicates to the WalletUpdate builder.
func (_u *WalletUpdateOne) Where(ps ...predicate.Wallet) *WalletUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WalletUpdateOne) Select(field string, fields ...string) *WalletUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Wallet entity.
func (_u *WalletUpdateOne) Save(ctx context.Context) (*Wallet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WalletUpdateOne) SaveX(ctx context.Context) *Wallet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WalletUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WalletUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WalletUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WalletUpdateOne) sqlSave(ctx context.Context) (_node *Wallet, err error) {
	_spec := sqlgraph.NewUpdateSpec(wallet.Table, wallet.Columns, sqlgraph.NewFieldSpec(wallet.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Wallet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallet.FieldID)
		for _, f := range fields {
			if !wallet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wallet.FieldID {
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
	if value, ok := _u.mutation.Free(); ok {
		_spec.SetField(wallet.FieldFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFree(); ok {
		_spec.AddField(wallet.FieldFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(wallet.FieldPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaid(); ok {
		_spec.AddField(wallet.FieldPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Earned(); ok {
		_spec.SetField(wallet.FieldEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEarned(); ok {
		_spec.AddField(wallet.FieldEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VirtualTotal(); ok {
		_spec.SetField(wallet.FieldVirtualTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVirtualTotal(); ok {
		_spec.AddField(wallet.FieldVirtualTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCredited(); ok {
		_spec.SetField(wallet.FieldTotalCredited, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCredited(); ok {
		_spec.AddField(wallet.FieldTotalCredited, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalConsumed(); ok {
		_spec.SetField(wallet.FieldTotalConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalConsumed(); ok {
		_spec.AddField(wallet.FieldTotalConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wallet.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Wallet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
