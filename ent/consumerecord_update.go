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
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/ent/predicate"
)

// ConsumeRecordUpdate is the builder for updating ConsumeRecord entities.
type ConsumeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConsumeRecordMutation
}

// Where appends a list predicates to the ConsumeRecordUpdate builder.
func (_u *ConsumeRecordUpdate) Where(ps ...predicate.ConsumeRecord) *ConsumeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ConsumeRecordUpdate) SetMessageID(v string) *ConsumeRecordUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableMessageID(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *ConsumeRecordUpdate) ClearMessageID() *ConsumeRecordUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetRecordType sets the "record_type" field.
func (_u *ConsumeRecordUpdate) SetRecordType(v consumerecord.RecordType) *ConsumeRecordUpdate {
	_u.mutation.SetRecordType(v)
	return _u
}

// SetNillableRecordType sets the "record_type" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableRecordType(v *consumerecord.RecordType) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetRecordType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ConsumeRecordUpdate) SetAmount(v int64) *ConsumeRecordUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableAmount(v *int64) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ConsumeRecordUpdate) AddAmount(v int64) *ConsumeRecordUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ConsumeRecordUpdate) SetCostUsd(v float64) *ConsumeRecordUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableCostUsd(v *float64) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ConsumeRecordUpdate) AddCostUsd(v float64) *ConsumeRecordUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ConsumeRecordUpdate) SetModel(v string) *ConsumeRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableModel(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ConsumeRecordUpdate) ClearModel() *ConsumeRecordUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ConsumeRecordUpdate) SetInputTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableInputTokens(v *int) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ConsumeRecordUpdate) AddInputTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ConsumeRecordUpdate) SetOutputTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableOutputTokens(v *int) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ConsumeRecordUpdate) AddOutputTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ConsumeRecordUpdate) SetTotalTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableTotalTokens(v *int) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ConsumeRecordUpdate) AddTotalTokens(v int) *ConsumeRecordUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ConsumeRecordUpdate) SetTier(v string) *ConsumeRecordUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableTier(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ConsumeRecordUpdate) ClearTier() *ConsumeRecordUpdate {
	_u.mutation.ClearTier()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ConsumeRecordUpdate) SetToolName(v string) *ConsumeRecordUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableToolName(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *ConsumeRecordUpdate) ClearToolName() *ConsumeRecordUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *ConsumeRecordUpdate) SetToolCallID(v string) *ConsumeRecordUpdate {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableToolCallID(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *ConsumeRecordUpdate) ClearToolCallID() *ConsumeRecordUpdate {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetToolStatus sets the "tool_status" field.
func (_u *ConsumeRecordUpdate) SetToolStatus(v string) *ConsumeRecordUpdate {
	_u.mutation.SetToolStatus(v)
	return _u
}

// SetNillableToolStatus sets the "tool_status" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableToolStatus(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetToolStatus(*v)
	}
	return _u
}

// ClearToolStatus clears the value of the "tool_status" field.
func (_u *ConsumeRecordUpdate) ClearToolStatus() *ConsumeRecordUpdate {
	_u.mutation.ClearToolStatus()
	return _u
}

// SetConsumeState sets the "consume_state" field.
func (_u *ConsumeRecordUpdate) SetConsumeState(v consumerecord.ConsumeState) *ConsumeRecordUpdate {
	_u.mutation.SetConsumeState(v)
	return _u
}

// SetNillableConsumeState sets the "consume_state" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableConsumeState(v *consumerecord.ConsumeState) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetConsumeState(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ConsumeRecordUpdate) SetAgentID(v string) *ConsumeRecordUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableAgentID(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ConsumeRecordUpdate) ClearAgentID() *ConsumeRecordUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *ConsumeRecordUpdate) SetMarketplaceID(v string) *ConsumeRecordUpdate {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableMarketplaceID(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (_u *ConsumeRecordUpdate) ClearMarketplaceID() *ConsumeRecordUpdate {
	_u.mutation.ClearMarketplaceID()
	return _u
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (_u *ConsumeRecordUpdate) SetDeveloperUserID(v string) *ConsumeRecordUpdate {
	_u.mutation.SetDeveloperUserID(v)
	return _u
}

// SetNillableDeveloperUserID sets the "developer_user_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableDeveloperUserID(v *string) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetDeveloperUserID(*v)
	}
	return _u
}

// ClearDeveloperUserID clears the value of the "developer_user_id" field.
func (_u *ConsumeRecordUpdate) ClearDeveloperUserID() *ConsumeRecordUpdate {
	_u.mutation.ClearDeveloperUserID()
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *ConsumeRecordUpdate) SetSettledAt(v time.Time) *ConsumeRecordUpdate {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *ConsumeRecordUpdate) SetNillableSettledAt(v *time.Time) *ConsumeRecordUpdate {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *ConsumeRecordUpdate) ClearSettledAt() *ConsumeRecordUpdate {
	_u.mutation.ClearSettledAt()
	return _u
}

// Mutation returns the ConsumeRecordMutation object of the builder.
func (_u *ConsumeRecordUpdate) Mutation() *ConsumeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsumeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsumeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsumeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsumeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsumeRecordUpdate) check() error {
	if v, ok := _u.mutation.RecordType(); ok {
		if err := consumerecord.RecordTypeValidator(v); err != nil {
			return &ValidationError{Name: "record_type", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.record_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsumeState(); ok {
		if err := consumerecord.ConsumeStateValidator(v); err != nil {
			return &ValidationError{Name: "consume_state", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.consume_state": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsumeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consumerecord.Table, consumerecord.Columns, sqlgraph.NewFieldSpec(consumerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(consumerecord.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(consumerecord.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RecordType(); ok {
		_spec.SetField(consumerecord.FieldRecordType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(consumerecord.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(consumerecord.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(consumerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(consumerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(consumerecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(consumerecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(consumerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(consumerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(consumerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(consumerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(consumerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(consumerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(consumerecord.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(consumerecord.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(consumerecord.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(consumerecord.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(consumerecord.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(consumerecord.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolStatus(); ok {
		_spec.SetField(consumerecord.FieldToolStatus, field.TypeString, value)
	}
	if _u.mutation.ToolStatusCleared() {
		_spec.ClearField(consumerecord.FieldToolStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ConsumeState(); ok {
		_spec.SetField(consumerecord.FieldConsumeState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(consumerecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(consumerecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.MarketplaceID(); ok {
		_spec.SetField(consumerecord.FieldMarketplaceID, field.TypeString, value)
	}
	if _u.mutation.MarketplaceIDCleared() {
		_spec.ClearField(consumerecord.FieldMarketplaceID, field.TypeString)
	}
	if value, ok := _u.mutation.DeveloperUserID(); ok {
		_spec.SetField(consumerecord.FieldDeveloperUserID, field.TypeString, value)
	}
	if _u.mutation.DeveloperUserIDCleared() {
		_spec.ClearField(consumerecord.FieldDeveloperUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(consumerecord.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(consumerecord.FieldSettledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consumerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsumeRecordUpdateOne is the builder for updating a single ConsumeRecord entity.
type ConsumeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsumeRecordMutation
}

// SetMessageID sets the "message_id" field.
func (_u *ConsumeRecordUpdateOne) SetMessageID(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableMessageID(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *ConsumeRecordUpdateOne) ClearMessageID() *ConsumeRecordUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetRecordType sets the "record_type" field.
func (_u *ConsumeRecordUpdateOne) SetRecordType(v consumerecord.RecordType) *ConsumeRecordUpdateOne {
	_u.mutation.SetRecordType(v)
	return _u
}

// SetNillableRecordType sets the "record_type" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableRecordType(v *consumerecord.RecordType) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetRecordType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ConsumeRecordUpdateOne) SetAmount(v int64) *ConsumeRecordUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableAmount(v *int64) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ConsumeRecordUpdateOne) AddAmount(v int64) *ConsumeRecordUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ConsumeRecordUpdateOne) SetCostUsd(v float64) *ConsumeRecordUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableCostUsd(v *float64) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ConsumeRecordUpdateOne) AddCostUsd(v float64) *ConsumeRecordUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ConsumeRecordUpdateOne) SetModel(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableModel(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ConsumeRecordUpdateOne) ClearModel() *ConsumeRecordUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ConsumeRecordUpdateOne) SetInputTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableInputTokens(v *int) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ConsumeRecordUpdateOne) AddInputTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ConsumeRecordUpdateOne) SetOutputTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableOutputTokens(v *int) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ConsumeRecordUpdateOne) AddOutputTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ConsumeRecordUpdateOne) SetTotalTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableTotalTokens(v *int) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ConsumeRecordUpdateOne) AddTotalTokens(v int) *ConsumeRecordUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ConsumeRecordUpdateOne) SetTier(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableTier(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ConsumeRecordUpdateOne) ClearTier() *ConsumeRecordUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ConsumeRecordUpdateOne) SetToolName(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableToolName(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *ConsumeRecordUpdateOne) ClearToolName() *ConsumeRecordUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *ConsumeRecordUpdateOne) SetToolCallID(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableToolCallID(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (_u *ConsumeRecordUpdateOne) ClearToolCallID() *ConsumeRecordUpdateOne {
	_u.mutation.ClearToolCallID()
	return _u
}

// SetToolStatus sets the "tool_status" field.
func (_u *ConsumeRecordUpdateOne) SetToolStatus(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetToolStatus(v)
	return _u
}

// SetNillableToolStatus sets the "tool_status" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableToolStatus(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetToolStatus(*v)
	}
	return _u
}

// ClearToolStatus clears the value of the "tool_status" field.
func (_u *ConsumeRecordUpdateOne) ClearToolStatus() *ConsumeRecordUpdateOne {
	_u.mutation.ClearToolStatus()
	return _u
}

// SetConsumeState sets the "consume_state" field.
func (_u *ConsumeRecordUpdateOne) SetConsumeState(v consumerecord.ConsumeState) *ConsumeRecordUpdateOne {
	_u.mutation.SetConsumeState(v)
	return _u
}

// SetNillableConsumeState sets the "consume_state" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableConsumeState(v *consumerecord.ConsumeState) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetConsumeState(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ConsumeRecordUpdateOne) SetAgentID(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableAgentID(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ConsumeRecordUpdateOne) ClearAgentID() *ConsumeRecordUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *ConsumeRecordUpdateOne) SetMarketplaceID(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableMarketplaceID(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (_u *ConsumeRecordUpdateOne) ClearMarketplaceID() *ConsumeRecordUpdateOne {
	_u.mutation.ClearMarketplaceID()
	return _u
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (_u *ConsumeRecordUpdateOne) SetDeveloperUserID(v string) *ConsumeRecordUpdateOne {
	_u.mutation.SetDeveloperUserID(v)
	return _u
}

// SetNillableDeveloperUserID sets the "developer_user_id" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableDeveloperUserID(v *string) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetDeveloperUserID(*v)
	}
	return _u
}

// ClearDeveloperUserID clears the value of the "developer_user_id" field.
func (_u *ConsumeRecordUpdateOne) ClearDeveloperUserID() *ConsumeRecordUpdateOne {
	_u.mutation.ClearDeveloperUserID()
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *ConsumeRecordUpdateOne) SetSettledAt(v time.Time) *ConsumeRecordUpdateOne {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *ConsumeRecordUpdateOne) SetNillableSettledAt(v *time.Time) *ConsumeRecordUpdateOne {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *ConsumeRecordUpdateOne) ClearSettledAt() *ConsumeRecordUpdateOne {
	_u.mutation.ClearSettledAt()
	return _u
}

// Mutation returns the ConsumeRecordMutation object of the builder.
func (_u *ConsumeRecordUpdateOne) Mutation() *ConsumeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConsumeRecordUpdate builder.
func (_u *ConsumeRecordUpdateOne) Where(ps ...predicate.ConsumeRecord) *ConsumeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsumeRecordUpdateOne) Select(field string, fields ...string) *ConsumeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConsumeRecord entity.
func (_u *ConsumeRecordUpdateOne) Save(ctx context.Context) (*ConsumeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsumeRecordUpdateOne) SaveX(ctx context.Context) *ConsumeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsumeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsumeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsumeRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordType(); ok {
		if err := consumerecord.RecordTypeValidator(v); err != nil {
			return &ValidationError{Name: "record_type", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.record_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsumeState(); ok {
		if err := consumerecord.ConsumeStateValidator(v); err != nil {
			return &ValidationError{Name: "consume_state", err: fmt.Errorf(`ent: validator failed for field "ConsumeRecord.consume_state": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsumeRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConsumeRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consumerecord.Table, consumerecord.Columns, sqlgraph.NewFieldSpec(consumerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConsumeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consumerecord.FieldID)
		for _, f := range fields {
			if !consumerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consumerecord.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(consumerecord.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(consumerecord.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RecordType(); ok {
		_spec.SetField(consumerecord.FieldRecordType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(consumerecord.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(consumerecord.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(consumerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(consumerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(consumerecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(consumerecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(consumerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(consumerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(consumerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(consumerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(consumerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(consumerecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(consumerecord.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(consumerecord.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(consumerecord.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(consumerecord.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(consumerecord.FieldToolCallID, field.TypeString, value)
	}
	if _u.mutation.ToolCallIDCleared() {
		_spec.ClearField(consumerecord.FieldToolCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolStatus(); ok {
		_spec.SetField(consumerecord.FieldToolStatus, field.TypeString, value)
	}
	if _u.mutation.ToolStatusCleared() {
		_spec.ClearField(consumerecord.FieldToolStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ConsumeState(); ok {
		_spec.SetField(consumerecord.FieldConsumeState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(consumerecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(consumerecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.MarketplaceID(); ok {
		_spec.SetField(consumerecord.FieldMarketplaceID, field.TypeString, value)
	}
	if _u.mutation.MarketplaceIDCleared() {
		_spec.ClearField(consumerecord.FieldMarketplaceID, field.TypeString)
	}
	if value, ok := _u.mutation.DeveloperUserID(); ok {
		_spec.SetField(consumerecord.FieldDeveloperUserID, field.TypeString, value)
	}
	if _u.mutation.DeveloperUserIDCleared() {
		_spec.ClearField(consumerecord.FieldDeveloperUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(consumerecord.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(consumerecord.FieldSettledAt, field.TypeTime)
	}
	_node = &ConsumeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consumerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
