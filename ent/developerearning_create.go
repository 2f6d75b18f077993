// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/developerearning"
)

// DeveloperEarningCreate is the builder for creating a DeveloperEarning entity.
type DeveloperEarningCreate struct {
	config
	mutation *DeveloperEarningMutation
	hooks    []Hook
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (_c *DeveloperEarningCreate) SetDeveloperUserID(v string) *DeveloperEarningCreate {
	_c.mutation.SetDeveloperUserID(v)
	return _c
}

// SetConsumerUserID sets the "consumer_user_id" field.
func (_c *DeveloperEarningCreate) SetConsumerUserID(v string) *DeveloperEarningCreate {
	_c.mutation.SetConsumerUserID(v)
	return _c
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_c *DeveloperEarningCreate) SetMarketplaceID(v string) *DeveloperEarningCreate {
	_c.mutation.SetMarketplaceID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *DeveloperEarningCreate) SetAmount(v int64) *DeveloperEarningCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetTotalConsumed sets the "total_consumed" field.
func (_c *DeveloperEarningCreate) SetTotalConsumed(v int64) *DeveloperEarningCreate {
	_c.mutation.SetTotalConsumed(v)
	return _c
}

// SetForkMode sets the "fork_mode" field.
func (_c *DeveloperEarningCreate) SetForkMode(v developerearning.ForkMode) *DeveloperEarningCreate {
	_c.mutation.SetForkMode(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeveloperEarningCreate) SetCreatedAt(v time.Time) *DeveloperEarningCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeveloperEarningCreate) SetNillableCreatedAt(v *time.Time) *DeveloperEarningCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeveloperEarningCreate) SetID(v string) *DeveloperEarningCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeveloperEarningMutation object of the builder.
func (_c *DeveloperEarningCreate) Mutation() *DeveloperEarningMutation {
	return _c.mutation
}

// Save creates the DeveloperEarning in the database.
func (_c *DeveloperEarningCreate) Save(ctx context.Context) (*DeveloperEarning, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeveloperEarningCreate) SaveX(ctx context.Context) *DeveloperEarning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeveloperEarningCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeveloperEarningCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeveloperEarningCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := developerearning.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeveloperEarningCreate) check() error {
	if _, ok := _c.mutation.DeveloperUserID(); !ok {
		return &ValidationError{Name: "developer_user_id", err: errors.New(`ent: missing required field "DeveloperEarning.developer_user_id"`)}
	}
	if _, ok := _c.mutation.ConsumerUserID(); !ok {
		return &ValidationError{Name: "consumer_user_id", err: errors.New(`ent: missing required field "DeveloperEarning.consumer_user_id"`)}
	}
	if _, ok := _c.mutation.MarketplaceID(); !ok {
		return &ValidationError{Name: "marketplace_id", err: errors.New(`ent: missing required field "DeveloperEarning.marketplace_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "DeveloperEarning.amount"`)}
	}
	if _, ok := _c.mutation.TotalConsumed(); !ok {
		return &ValidationError{Name: "total_consumed", err: errors.New(`ent: missing required field "DeveloperEarning.total_consumed"`)}
	}
	if _, ok := _c.mutation.ForkMode(); !ok {
		return &ValidationError{Name: "fork_mode", err: errors.New(`ent: missing required field "DeveloperEarning.fork_mode"`)}
	}
	if v, ok := _c.mutation.ForkMode(); ok {
		if err := developerearning.ForkModeValidator(v); err != nil {
			return &ValidationError{Name: "fork_mode", err: fmt.Errorf(`ent: validator failed for field "DeveloperEarning.fork_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeveloperEarning.created_at"`)}
	}
	return nil
}

func (_c *DeveloperEarningCreate) sqlSave(ctx context.Context) (*DeveloperEarning, error) {
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
			return nil, fmt.Errorf("unexpected DeveloperEarning.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeveloperEarningCreate) createSpec() (*DeveloperEarning, *sqlgraph.CreateSpec) {
	var (
		_node = &DeveloperEarning{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(developerearning.Table, sqlgraph.NewFieldSpec(developerearning.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DeveloperUserID(); ok {
		_spec.SetField(developerearning.FieldDeveloperUserID, field.TypeString, value)
		_node.DeveloperUserID = value
	}
	if value, ok := _c.mutation.ConsumerUserID(); ok {
		_spec.SetField(developerearning.FieldConsumerUserID, field.TypeString, value)
		_node.ConsumerUserID = value
	}
	if value, ok := _c.mutation.MarketplaceID(); ok {
		_spec.SetField(developerearning.FieldMarketplaceID, field.TypeString, value)
		_node.MarketplaceID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(developerearning.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.TotalConsumed(); ok {
		_spec.SetField(developerearning.FieldTotalConsumed, field.TypeInt64, value)
		_node.TotalConsumed = value
	}
	if value, ok := _c.mutation.ForkMode(); ok {
		_spec.SetField(developerearning.FieldForkMode, field.TypeEnum, value)
		_node.ForkMode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(developerearning.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DeveloperEarningCreateBulk is the builder for creating many DeveloperEarning entities in bulk.
type DeveloperEarningCreateBulk struct {
	config
	err      error
	builders []*DeveloperEarningCreate
}

// Save creates the DeveloperEarning entities in the database.
func (_c *DeveloperEarningCreateBulk) Save(ctx context.Context) ([]*DeveloperEarning, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeveloperEarning, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeveloperEarningMutation)
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
func (_c *DeveloperEarningCreateBulk) SaveX(ctx context.Context) []*DeveloperEarning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeveloperEarningCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeveloperEarningCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
