// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/wallet"
)

// WalletCreate is the builder for creating a Wallet entity.
type WalletCreate struct {
	config
	mutation *WalletMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WalletCreate) SetUserID(v string) *WalletCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFree sets the "free" field.
func (_c *WalletCreate) SetFree(v int64) *WalletCreate {
	_c.mutation.SetFree(v)
	return _c
}

// SetNillableFree sets the "free" field if the given value is not nil.
func (_c *WalletCreate) SetNillableFree(v *int64) *WalletCreate {
	if v != nil {
		_c.SetFree(*v)
	}
	return _c
}

// SetPaid sets the "paid" field.
func (_c *WalletCreate) SetPaid(v int64) *WalletCreate {
	_c.mutation.SetPaid(v)
	return _c
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_c *WalletCreate) SetNillablePaid(v *int64) *WalletCreate {
	if v != nil {
		_c.SetPaid(*v)
	}
	return _c
}

// SetEarned sets the "earned" field.
func (_c *WalletCreate) SetEarned(v int64) *WalletCreate {
	_c.mutation.SetEarned(v)
	return _c
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_c *WalletCreate) SetNillableEarned(v *int64) *WalletCreate {
	if v != nil {
		_c.SetEarned(*v)
	}
	return _c
}

// SetVirtualTotal sets the "virtual_total" field.
func (_c *WalletCreate) SetVirtualTotal(v int64) *WalletCreate {
	_c.mutation.SetVirtualTotal(v)
	return _c
}

// SetNillableVirtualTotal sets the "virtual_total" field if the given value is not nil.
func (_c *WalletCreate) SetNillableVirtualTotal(v *int64) *WalletCreate {
	if v != nil {
		_c.SetVirtualTotal(*v)
	}
	return _c
}

// SetTotalCredited sets the "total_credited" field.
func (_c *WalletCreate) SetTotalCredited(v int64) *WalletCreate {
	_c.mutation.SetTotalCredited(v)
	return _c
}

// SetNillableTotalCredited sets the "total_credited" field if the given value is not nil.
func (_c *WalletCreate) SetNillableTotalCredited(v *int64) *WalletCreate {
	if v != nil {
		_c.SetTotalCredited(*v)
	}
	return _c
}

// SetTotalConsumed sets the "total_consumed" field.
func (_c *WalletCreate) SetTotalConsumed(v int64) *WalletCreate {
	_c.mutation.SetTotalConsumed(v)
	return _c
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_c *WalletCreate) SetNillableTotalConsumed(v *int64) *WalletCreate {
	if v != nil {
		_c.SetTotalConsumed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WalletCreate) SetCreatedAt(v time.Time) *WalletCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WalletCreate) SetNillableCreatedAt(v *time.Time) *WalletCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WalletCreate) SetUpdatedAt(v time.Time) *WalletCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WalletCreate) SetNillableUpdatedAt(v *time.Time) *WalletCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WalletCreate) SetID(v string) *WalletCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WalletMutation object of the builder.
func (_c *WalletCreate) Mutation() *WalletMutation {
	return _c.mutation
}

// Save creates the Wallet in the database.
func (_c *WalletCreate) Save(ctx context.Context) (*Wallet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WalletCreate) SaveX(ctx context.Context) *Wallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WalletCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WalletCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WalletCreate) defaults() {
	if _, ok := _c.mutation.Free(); !ok {
		v := wallet.DefaultFree
		_c.mutation.SetFree(v)
	}
	if _, ok := _c.mutation.Paid(); !ok {
		v := wallet.DefaultPaid
		_c.mutation.SetPaid(v)
	}
	if _, ok := _c.mutation.Earned(); !ok {
		v := wallet.DefaultEarned
		_c.mutation.SetEarned(v)
	}
	if _, ok := _c.mutation.VirtualTotal(); !ok {
		v := wallet.DefaultVirtualTotal
		_c.mutation.SetVirtualTotal(v)
	}
	if _, ok := _c.mutation.TotalCredited(); !ok {
		v := wallet.DefaultTotalCredited
		_c.mutation.SetTotalCredited(v)
	}
	if _, ok := _c.mutation.TotalConsumed(); !ok {
		v := wallet.DefaultTotalConsumed
		_c.mutation.SetTotalConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := wallet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := wallet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WalletCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Wallet.user_id"`)}
	}
	if _, ok := _c.mutation.Free(); !ok {
		return &ValidationError{Name: "free", err: errors.New(`ent: missing required field "Wallet.free"`)}
	}
	if _, ok := _c.mutation.Paid(); !ok {
		return &ValidationError{Name: "paid", err: errors.New(`ent: missing required field "Wallet.paid"`)}
	}
	if _, ok := _c.mutation.Earned(); !ok {
		return &ValidationError{Name: "earned", err: errors.New(`ent: missing required field "Wallet.earned"`)}
	}
	if _, ok := _c.mutation.VirtualTotal(); !ok {
		return &ValidationError{Name: "virtual_total", err: errors.New(`ent: missing required field "Wallet.virtual_total"`)}
	}
	if _, ok := _c.mutation.TotalCredited(); !ok {
		return &ValidationError{Name: "total_credited", err: errors.New(`ent: missing required field "Wallet.total_credited"`)}
	}
	if _, ok := _c.mutation.TotalConsumed(); !ok {
		return &ValidationError{Name: "total_consumed", err: errors.New(`ent: missing required field "Wallet.total_consumed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Wallet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Wallet.updated_at"`)}
	}
	return nil
}

func (_c *WalletCreate) sqlSave(ctx context.Context) (*Wallet, error) {
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
			return nil, fmt.Errorf("unexpected Wallet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WalletCreate) createSpec() (*Wallet, *sqlgraph.CreateSpec) {
	var (
		_node = &Wallet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wallet.Table, sqlgraph.NewFieldSpec(wallet.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(wallet.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Free(); ok {
		_spec.SetField(wallet.FieldFree, field.TypeInt64, value)
		_node.Free = value
	}
	if value, ok := _c.mutation.Paid(); ok {
		_spec.SetField(wallet.FieldPaid, field.TypeInt64, value)
		_node.Paid = value
	}
	if value, ok := _c.mutation.Earned(); ok {
		_spec.SetField(wallet.FieldEarned, field.TypeInt64, value)
		_node.Earned = value
	}
	if value, ok := _c.mutation.VirtualTotal(); ok {
		_spec.SetField(wallet.FieldVirtualTotal, field.TypeInt64, value)
		_node.VirtualTotal = value
	}
	if value, ok := _c.mutation.TotalCredited(); ok {
		_spec.SetField(wallet.FieldTotalCredited, field.TypeInt64, value)
		_node.TotalCredited = value
	}
	if value, ok := _c.mutation.TotalConsumed(); ok {
		_spec.SetField(wallet.FieldTotalConsumed, field.TypeInt64, value)
		_node.TotalConsumed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(wallet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(wallet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WalletCreateBulk is the builder for creating many Wallet entities in bulk.
type WalletCreateBulk struct {
	config
	err      error
	builders []*WalletCreate
}

// Save creates the Wallet entities in the database.
func (_c *WalletCreateBulk) Save(ctx context.Context) ([]*Wallet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Wallet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WalletMutation)
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
func (_c *WalletCreateBulk) SaveX(ctx context.Context) []*Wallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WalletCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WalletCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
