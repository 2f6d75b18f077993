// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/developerwallet"
)

// DeveloperWalletCreate is the builder for creating a DeveloperWallet entity.
type DeveloperWalletCreate struct {
	config
	mutation *DeveloperWalletMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DeveloperWalletCreate) SetUserID(v string) *DeveloperWalletCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAvailableBalance sets the "available_balance" field.
func (_c *DeveloperWalletCreate) SetAvailableBalance(v int64) *DeveloperWalletCreate {
	_c.mutation.SetAvailableBalance(v)
	return _c
}

// SetNillableAvailableBalance sets the "available_balance" field if the given value is not nil.
func (_c *DeveloperWalletCreate) SetNillableAvailableBalance(v *int64) *DeveloperWalletCreate {
	if v != nil {
		_c.SetAvailableBalance(*v)
	}
	return _c
}

// SetTotalEarned sets the "total_earned" field.
func (_c *DeveloperWalletCreate) SetTotalEarned(v int64) *DeveloperWalletCreate {
	_c.mutation.SetTotalEarned(v)
	return _c
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (_c *DeveloperWalletCreate) SetNillableTotalEarned(v *int64) *DeveloperWalletCreate {
	if v != nil {
		_c.SetTotalEarned(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeveloperWalletCreate) SetCreatedAt(v time.Time) *DeveloperWalletCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeveloperWalletCreate) SetNillableCreatedAt(v *time.Time) *DeveloperWalletCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeveloperWalletCreate) SetUpdatedAt(v time.Time) *DeveloperWalletCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeveloperWalletCreate) SetNillableUpdatedAt(v *time.Time) *DeveloperWalletCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeveloperWalletCreate) SetID(v string) *DeveloperWalletCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeveloperWalletMutation object of the builder.
func (_c *DeveloperWalletCreate) Mutation() *DeveloperWalletMutation {
	return _c.mutation
}

// Save creates the DeveloperWallet in the database.
func (_c *DeveloperWalletCreate) Save(ctx context.Context) (*DeveloperWallet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeveloperWalletCreate) SaveX(ctx context.Context) *DeveloperWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeveloperWalletCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeveloperWalletCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeveloperWalletCreate) defaults() {
	if _, ok := _c.mutation.AvailableBalance(); !ok {
		v := developerwallet.DefaultAvailableBalance
		_c.mutation.SetAvailableBalance(v)
	}
	if _, ok := _c.mutation.TotalEarned(); !ok {
		v := developerwallet.DefaultTotalEarned
		_c.mutation.SetTotalEarned(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := developerwallet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := developerwallet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeveloperWalletCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DeveloperWallet.user_id"`)}
	}
	if _, ok := _c.mutation.AvailableBalance(); !ok {
		return &ValidationError{Name: "available_balance", err: errors.New(`ent: missing required field "DeveloperWallet.available_balance"`)}
	}
	if _, ok := _c.mutation.TotalEarned(); !ok {
		return &ValidationError{Name: "total_earned", err: errors.New(`ent: missing required field "DeveloperWallet.total_earned"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeveloperWallet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DeveloperWallet.updated_at"`)}
	}
	return nil
}

func (_c *DeveloperWalletCreate) sqlSave(ctx context.Context) (*DeveloperWallet, error) {
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
			return nil, fmt.Errorf("unexpected DeveloperWallet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeveloperWalletCreate) createSpec() (*DeveloperWallet, *sqlgraph.CreateSpec) {
	var (
		_node = &DeveloperWallet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(developerwallet.Table, sqlgraph.NewFieldSpec(developerwallet.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(developerwallet.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AvailableBalance(); ok {
		_spec.SetField(developerwallet.FieldAvailableBalance, field.TypeInt64, value)
		_node.AvailableBalance = value
	}
	if value, ok := _c.mutation.TotalEarned(); ok {
		_spec.SetField(developerwallet.FieldTotalEarned, field.TypeInt64, value)
		_node.TotalEarned = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(developerwallet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(developerwallet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DeveloperWalletCreateBulk is the builder for creating many DeveloperWallet entities in bulk.
type DeveloperWalletCreateBulk struct {
	config
	err      error
	builders []*DeveloperWalletCreate
}

// Save creates the DeveloperWallet entities in the database.
func (_c *DeveloperWalletCreateBulk) Save(ctx context.Context) ([]*DeveloperWallet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeveloperWallet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeveloperWalletMutation)
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
func (_c *DeveloperWalletCreateBulk) SaveX(ctx context.Context) []*DeveloperWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeveloperWalletCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeveloperWalletCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
