// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdate) SetRole(v chatmessage.Role) *ChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdate) SetContent(v string) *ChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetThinkingContent sets the "thinking_content" field.
func (_u *ChatMessageUpdate) SetThinkingContent(v string) *ChatMessageUpdate {
	_u.mutation.SetThinkingContent(v)
	return _u
}

// SetNillableThinkingContent sets the "thinking_content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableThinkingContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetThinkingContent(*v)
	}
	return _u
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (_u *ChatMessageUpdate) ClearThinkingContent() *ChatMessageUpdate {
	_u.mutation.ClearThinkingContent()
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *ChatMessageUpdate) SetStreamID(v string) *ChatMessageUpdate {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableStreamID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// ClearStreamID clears the value of the "stream_id" field.
func (_u *ChatMessageUpdate) ClearStreamID() *ChatMessageUpdate {
	_u.mutation.ClearStreamID()
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ChatMessageUpdate) SetClientID(v string) *ChatMessageUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableClientID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *ChatMessageUpdate) ClearClientID() *ChatMessageUpdate {
	_u.mutation.ClearClientID()
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *ChatMessageUpdate) SetAgentRunID(v string) *ChatMessageUpdate {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableAgentRunID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *ChatMessageUpdate) ClearAgentRunID() *ChatMessageUpdate {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ChatMessageUpdate) SetErrorCode(v string) *ChatMessageUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableErrorCode(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ChatMessageUpdate) ClearErrorCode() *ChatMessageUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *ChatMessageUpdate) SetErrorCategory(v string) *ChatMessageUpdate {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableErrorCategory(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *ChatMessageUpdate) ClearErrorCategory() *ChatMessageUpdate {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ChatMessageUpdate) SetErrorDetail(v string) *ChatMessageUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableErrorDetail(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ChatMessageUpdate) ClearErrorDetail() *ChatMessageUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUserQuestionData sets the "user_question_data" field.
func (_u *ChatMessageUpdate) SetUserQuestionData(v map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetUserQuestionData(v)
	return _u
}

// ClearUserQuestionData clears the value of the "user_question_data" field.
func (_u *ChatMessageUpdate) ClearUserQuestionData() *ChatMessageUpdate {
	_u.mutation.ClearUserQuestionData()
	return _u
}

// SetFileIds sets the "file_ids" field.
func (_u *ChatMessageUpdate) SetFileIds(v []string) *ChatMessageUpdate {
	_u.mutation.SetFileIds(v)
	return _u
}

// AppendFileIds appends value to the "file_ids" field.
func (_u *ChatMessageUpdate) AppendFileIds(v []string) *ChatMessageUpdate {
	_u.mutation.AppendFileIds(v)
	return _u
}

// ClearFileIds clears the value of the "file_ids" field.
func (_u *ChatMessageUpdate) ClearFileIds() *ChatMessageUpdate {
	_u.mutation.ClearFileIds()
	return _u
}

// SetCitations sets the "citations" field.
func (_u *ChatMessageUpdate) SetCitations(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetCitations(v)
	return _u
}

// AppendCitations appends value to the "citations" field.
func (_u *ChatMessageUpdate) AppendCitations(v []map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.AppendCitations(v)
	return _u
}

// ClearCitations clears the value of the "citations" field.
func (_u *ChatMessageUpdate) ClearCitations() *ChatMessageUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatMessageUpdate) SetUpdatedAt(v time.Time) *ChatMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThinkingContent(); ok {
		_spec.SetField(chatmessage.FieldThinkingContent, field.TypeString, value)
	}
	if _u.mutation.ThinkingContentCleared() {
		_spec.ClearField(chatmessage.FieldThinkingContent, field.TypeString)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(chatmessage.FieldStreamID, field.TypeString, value)
	}
	if _u.mutation.StreamIDCleared() {
		_spec.ClearField(chatmessage.FieldStreamID, field.TypeString)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(chatmessage.FieldClientID, field.TypeString, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(chatmessage.FieldClientID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(chatmessage.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(chatmessage.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(chatmessage.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(chatmessage.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(chatmessage.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(chatmessage.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(chatmessage.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(chatmessage.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UserQuestionData(); ok {
		_spec.SetField(chatmessage.FieldUserQuestionData, field.TypeJSON, value)
	}
	if _u.mutation.UserQuestionDataCleared() {
		_spec.ClearField(chatmessage.FieldUserQuestionData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileIds(); ok {
		_spec.SetField(chatmessage.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldFileIds, value)
		})
	}
	if _u.mutation.FileIdsCleared() {
		_spec.ClearField(chatmessage.FieldFileIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Citations(); ok {
		_spec.SetField(chatmessage.FieldCitations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldCitations, value)
		})
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(chatmessage.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdateOne) SetRole(v chatmessage.Role) *ChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdateOne) SetContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetThinkingContent sets the "thinking_content" field.
func (_u *ChatMessageUpdateOne) SetThinkingContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetThinkingContent(v)
	return _u
}

// SetNillableThinkingContent sets the "thinking_content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableThinkingContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetThinkingContent(*v)
	}
	return _u
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (_u *ChatMessageUpdateOne) ClearThinkingContent() *ChatMessageUpdateOne {
	_u.mutation.ClearThinkingContent()
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *ChatMessageUpdateOne) SetStreamID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableStreamID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// ClearStreamID clears the value of the "stream_id" field.
func (_u *ChatMessageUpdateOne) ClearStreamID() *ChatMessageUpdateOne {
	_u.mutation.ClearStreamID()
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ChatMessageUpdateOne) SetClientID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableClientID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *ChatMessageUpdateOne) ClearClientID() *ChatMessageUpdateOne {
	_u.mutation.ClearClientID()
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *ChatMessageUpdateOne) SetAgentRunID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableAgentRunID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (_u *ChatMessageUpdateOne) ClearAgentRunID() *ChatMessageUpdateOne {
	_u.mutation.ClearAgentRunID()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *ChatMessageUpdateOne) SetErrorCode(v string) *ChatMessageUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableErrorCode(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *ChatMessageUpdateOne) ClearErrorCode() *ChatMessageUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *ChatMessageUpdateOne) SetErrorCategory(v string) *ChatMessageUpdateOne {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableErrorCategory(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *ChatMessageUpdateOne) ClearErrorCategory() *ChatMessageUpdateOne {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ChatMessageUpdateOne) SetErrorDetail(v string) *ChatMessageUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableErrorDetail(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ChatMessageUpdateOne) ClearErrorDetail() *ChatMessageUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUserQuestionData sets the "user_question_data" field.
func (_u *ChatMessageUpdateOne) SetUserQuestionData(v map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetUserQuestionData(v)
	return _u
}

// ClearUserQuestionData clears the value of the "user_question_data" field.
func (_u *ChatMessageUpdateOne) ClearUserQuestionData() *ChatMessageUpdateOne {
	_u.mutation.ClearUserQuestionData()
	return _u
}

// SetFileIds sets the "file_ids" field.
func (_u *ChatMessageUpdateOne) SetFileIds(v []string) *ChatMessageUpdateOne {
	_u.mutation.SetFileIds(v)
	return _u
}

// AppendFileIds appends value to the "file_ids" field.
func (_u *ChatMessageUpdateOne) AppendFileIds(v []string) *ChatMessageUpdateOne {
	_u.mutation.AppendFileIds(v)
	return _u
}

// ClearFileIds clears the value of the "file_ids" field.
func (_u *ChatMessageUpdateOne) ClearFileIds() *ChatMessageUpdateOne {
	_u.mutation.ClearFileIds()
	return _u
}

// SetCitations sets the "citations" field.
func (_u *ChatMessageUpdateOne) SetCitations(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetCitations(v)
	return _u
}

// AppendCitations appends value to the "citations" field.
func (_u *ChatMessageUpdateOne) AppendCitations(v []map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.AppendCitations(v)
	return _u
}

// ClearCitations clears the value of the "citations" field.
func (_u *ChatMessageUpdateOne) ClearCitations() *ChatMessageUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatMessageUpdateOne) SetUpdatedAt(v time.Time) *ChatMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThinkingContent(); ok {
		_spec.SetField(chatmessage.FieldThinkingContent, field.TypeString, value)
	}
	if _u.mutation.ThinkingContentCleared() {
		_spec.ClearField(chatmessage.FieldThinkingContent, field.TypeString)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(chatmessage.FieldStreamID, field.TypeString, value)
	}
	if _u.mutation.StreamIDCleared() {
		_spec.ClearField(chatmessage.FieldStreamID, field.TypeString)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(chatmessage.FieldClientID, field.TypeString, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(chatmessage.FieldClientID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentRunID(); ok {
		_spec.SetField(chatmessage.FieldAgentRunID, field.TypeString, value)
	}
	if _u.mutation.AgentRunIDCleared() {
		_spec.ClearField(chatmessage.FieldAgentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(chatmessage.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(chatmessage.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(chatmessage.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(chatmessage.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(chatmessage.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(chatmessage.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UserQuestionData(); ok {
		_spec.SetField(chatmessage.FieldUserQuestionData, field.TypeJSON, value)
	}
	if _u.mutation.UserQuestionDataCleared() {
		_spec.ClearField(chatmessage.FieldUserQuestionData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileIds(); ok {
		_spec.SetField(chatmessage.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldFileIds, value)
		})
	}
	if _u.mutation.FileIdsCleared() {
		_spec.ClearField(chatmessage.FieldFileIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Citations(); ok {
		_spec.SetField(chatmessage.FieldCitations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatmessage.FieldCitations, value)
		})
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(chatmessage.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
