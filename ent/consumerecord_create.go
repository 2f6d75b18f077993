// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/consumerecord"
)

// ConsumeRecordCreate is the builder for creating a ConsumeRecord entity.
type ConsumeRecordCreate struct {
	config
	mutation *ConsumeRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConsumeRecordCreate) SetUserID(v string) *ConsumeRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConsumeRecordCreate) SetSessionID(v string) *ConsumeRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ConsumeRecordCreate) SetTopicID(v string) *ConsumeRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ConsumeRecordCreate) SetMessageID(v string) *ConsumeRecordCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableMessageID(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetRecordType sets the "record_type" field.
func (_c *ConsumeRecordCreate) SetRecordType(v consumerecord.RecordType) *ConsumeRecordCreate {
	_c.mutation.SetRecordType(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ConsumeRecordCreate) SetAmount(v int64) *ConsumeRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ConsumeRecordCreate) SetCostUsd(v float64) *ConsumeRecordCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableCostUsd(v *float64) *ConsumeRecordCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ConsumeRecordCreate) SetModel(v string) *ConsumeRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableModel(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ConsumeRecordCreate) SetInputTokens(v int) *ConsumeRecordCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableInputTokens(v *int) *ConsumeRecordCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ConsumeRecordCreate) SetOutputTokens(v int) *ConsumeRecordCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableOutputTokens(v *int) *ConsumeRecordCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ConsumeRecordCreate) SetTotalTokens(v int) *ConsumeRecordCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableTotalTokens(v *int) *ConsumeRecordCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *ConsumeRecordCreate) SetTier(v string) *ConsumeRecordCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableTier(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ConsumeRecordCreate) SetToolName(v string) *ConsumeRecordCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableToolName(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetToolCallID sets the "tool_call_id" field.
func (_c *ConsumeRecordCreate) SetToolCallID(v string) *ConsumeRecordCreate {
	_c.mutation.SetToolCallID(v)
	return _c
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableToolCallID(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetToolCallID(*v)
	}
	return _c
}

// SetToolStatus sets the "tool_status" field.
func (_c *ConsumeRecordCreate) SetToolStatus(v string) *ConsumeRecordCreate {
	_c.mutation.SetToolStatus(v)
	return _c
}

// SetNillableToolStatus sets the "tool_status" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableToolStatus(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetToolStatus(*v)
	}
	return _c
}

// SetConsumeState sets the "consume_state" field.
func (_c *ConsumeRecordCreate) SetConsumeState(v consumerecord.ConsumeState) *ConsumeRecordCreate {
	_c.mutation.SetConsumeState(v)
	return _c
}

// SetNillableConsumeState sets the "consume_state" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableConsumeState(v *consumerecord.ConsumeState) *ConsumeRecordCreate {
	if v != nil {
		_c.SetConsumeState(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ConsumeRecordCreate) SetAgentID(v string) *ConsumeRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableAgentID(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_c *ConsumeRecordCreate) SetMarketplaceID(v string) *ConsumeRecordCreate {
	_c.mutation.SetMarketplaceID(v)
	return _c
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableMarketplaceID(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetMarketplaceID(*v)
	}
	return _c
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (_c *ConsumeRecordCreate) SetDeveloperUserID(v string) *ConsumeRecordCreate {
	_c.mutation.SetDeveloperUserID(v)
	return _c
}

// SetNillableDeveloperUserID sets the "developer_user_id" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableDeveloperUserID(v *string) *ConsumeRecordCreate {
	if v != nil {
		_c.SetDeveloperUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsumeRecordCreate) SetCreatedAt(v time.Time) *ConsumeRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableCreatedAt(v *time.Time) *ConsumeRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSettledAt sets the "settled_at" field.
func (_c *ConsumeRecordCreate) SetSettledAt(v time.Time) *ConsumeRecordCreate {
	_c.mutation.SetSettledAt(v)
	return _c
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_c *ConsumeRecordCreate) SetNillableSettledAt(v *time.Time) *ConsumeRecordCreate {
	if v != nil {
		_c.SetSettledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsumeRecordCreate) SetID(v string) *ConsumeRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConsumeRecordMutation object of the builder.
func (_c *ConsumeRecordCreate) Mutation() *ConsumeRecordMutation {
	return _c.mutation
}

// Save creates the ConsumeRecord in the database.
func (_c *ConsumeRecordCreate) Save(ctx context.Context) (*ConsumeRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsumeRecordCreate) SaveX(ctx context.Context) *ConsumeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsumeRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsumeRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsumeRecordCreate) defaults() {
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := consumerecord.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := consumerecord.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := consumerecord.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := consumerecord.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.ConsumeState(); !ok {
		v := consumerecord.DefaultConsumeState
		_c.mutation.SetConsumeState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consumerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsumeRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConsumeRecord.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConsumeRecord.session_id"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ConsumeRecord.topic_id"`)}
	}
	if _, ok := _c.mutation.RecordType(); !ok {
		return &ValidationError{Name: "record_type", err: errors.New(`ent: missing required field "ConsumeRecord.record_type"`)}
	}
	if v, ok := _c.mutation.RecordType(); ok {
		if err := consumerecord.RecordTypeValidator(v); err != nil {
			return &ValidationError{Name: "record_type", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.record_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ConsumeRecord.amount"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "ConsumeRecord.cost_usd"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "ConsumeRecord.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "ConsumeRecord.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ConsumeRecord.total_tokens"`)}
	}
	if _, ok := _c.mutation.ConsumeState(); !ok {
		return &ValidationError{Name: "consume_state", err: errors.New(`ent: missing required field "ConsumeRecord.consume_state"`)}
	}
	if v, ok := _c.mutation.ConsumeState(); ok {
		if err := consumerecord.ConsumeStateValidator(v); err != nil {
			return &ValidationError{Name: "consume_state", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.consume_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConsumeRecord.created_at"`)}
	}
	return nil
}

func (_c *ConsumeRecordCreate) sqlSave(ctx context.Context) (*ConsumeRecord, error) {
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
			return nil, fmt.Errorf("unexpected ConsumeRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConsumeRecordCreate) createSpec() (*ConsumeRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConsumeRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consumerecord.Table, sqlgraph.NewFieldSpec(consumerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(consumerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(consumerecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(consumerecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(consumerecord.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.RecordType(); ok {
		_spec.SetField(consumerecord.FieldRecordType, field.TypeEnum, value)
		_node.RecordType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(consumerecord.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(consumerecord.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(consumerecord.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(consumerecord.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(consumerecord.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(consumerecord.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(consumerecord.FieldTier, field.TypeString, value)
		_node.Tier = &value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(consumerecord.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.ToolCallID(); ok {
		_spec.SetField(consumerecord.FieldToolCallID, field.TypeString, value)
		_node.ToolCallID = &value
	}
	if value, ok := _c.mutation.ToolStatus(); ok {
		_spec.SetField(consumerecord.FieldToolStatus, field.TypeString, value)
		_node.ToolStatus = &value
	}
	if value, ok := _c.mutation.ConsumeState(); ok {
		_spec.SetField(consumerecord.FieldConsumeState, field.TypeEnum, value)
		_node.ConsumeState = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(consumerecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.MarketplaceID(); ok {
		_spec.SetField(consumerecord.FieldMarketplaceID, field.TypeString, value)
		_node.MarketplaceID = &value
	}
	if value, ok := _c.mutation.DeveloperUserID(); ok {
		_spec.SetField(consumerecord.FieldDeveloperUserID, field.TypeString, value)
		_node.DeveloperUserID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consumerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SettledAt(); ok {
		_spec.SetField(consumerecord.FieldSettledAt, field.TypeTime, value)
		_node.SettledAt = &value
	}
	return _node, _spec
}

// ConsumeRecordCreateBulk is the builder for creating many ConsumeRecord entities in bulk.
type ConsumeRecordCreateBulk struct {
	config
	err      error
	builders []*ConsumeRecordCreate
}

// Save creates the ConsumeRecord entities in the database.
func (_c *ConsumeRecordCreateBulk) Save(ctx context.Context) ([]*ConsumeRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConsumeRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsumeRecordMutation)
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
func (_c *ConsumeRecordCreateBulk) SaveX(ctx context.Context) []*ConsumeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsumeRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsumeRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
