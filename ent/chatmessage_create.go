// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/chatmessage"
)

// ChatMessageCreate is the builder for creating a ChatMessage entity.
type ChatMessageCreate struct {
	config
	mutation *ChatMessageMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *ChatMessageCreate) SetTopicID(v string) *ChatMessageCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChatMessageCreate) SetSessionID(v string) *ChatMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChatMessageCreate) SetUserID(v string) *ChatMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ChatMessageCreate) SetRole(v chatmessage.Role) *ChatMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChatMessageCreate) SetContent(v string) *ChatMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableContent(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetThinkingContent sets the "thinking_content" field.
func (_c *ChatMessageCreate) SetThinkingContent(v string) *ChatMessageCreate {
	_c.mutation.SetThinkingContent(v)
	return _c
}

// SetNillableThinkingContent sets the "thinking_content" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableThinkingContent(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetThinkingContent(*v)
	}
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *ChatMessageCreate) SetStreamID(v string) *ChatMessageCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableStreamID(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetStreamID(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ChatMessageCreate) SetClientID(v string) *ChatMessageCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableClientID(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetClientID(*v)
	}
	return _c
}

// SetAgentRunID sets the "agent_run_id" field.
func (_c *ChatMessageCreate) SetAgentRunID(v string) *ChatMessageCreate {
	_c.mutation.SetAgentRunID(v)
	return _c
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableAgentRunID(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetAgentRunID(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *ChatMessageCreate) SetErrorCode(v string) *ChatMessageCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableErrorCode(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *ChatMessageCreate) SetErrorCategory(v string) *ChatMessageCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableErrorCategory(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *ChatMessageCreate) SetErrorDetail(v string) *ChatMessageCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableErrorDetail(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetUserQuestionData sets the "user_question_data" field.
func (_c *ChatMessageCreate) SetUserQuestionData(v map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetUserQuestionData(v)
	return _c
}

// SetFileIds sets the "file_ids" field.
func (_c *ChatMessageCreate) SetFileIds(v []string) *ChatMessageCreate {
	_c.mutation.SetFileIds(v)
	return _c
}

// SetCitations sets the "citations" field.
func (_c *ChatMessageCreate) SetCitations(v []map[string]interface{}) *ChatMessageCreate {
	_c.mutation.SetCitations(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatMessageCreate) SetCreatedAt(v time.Time) *ChatMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableCreatedAt(v *time.Time) *ChatMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatMessageCreate) SetUpdatedAt(v time.Time) *ChatMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableUpdatedAt(v *time.Time) *ChatMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatMessageCreate) SetID(v string) *ChatMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_c *ChatMessageCreate) Mutation() *ChatMessageMutation {
	return _c.mutation
}

// Save creates the ChatMessage in the database.
func (_c *ChatMessageCreate) Save(ctx context.Context) (*ChatMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatMessageCreate) SaveX(ctx context.Context) *ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatMessageCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := chatmessage.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatMessageCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ChatMessage.topic_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatMessage.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatMessage.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ChatMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ChatMessage.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatMessage.updated_at"`)}
	}
	return nil
}

func (_c *ChatMessageCreate) sqlSave(ctx context.Context) (*ChatMessage, error) {
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
			return nil, fmt.Errorf("unexpected ChatMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatMessageCreate) createSpec() (*ChatMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatmessage.Table, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(chatmessage.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(chatmessage.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chatmessage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ThinkingContent(); ok {
		_spec.SetField(chatmessage.FieldThinkingContent, field.TypeString, value)
		_node.ThinkingContent = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(chatmessage.FieldStreamID, field.TypeString, value)
		_node.StreamID = &value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(chatmessage.FieldClientID, field.TypeString, value)
		_node.ClientID = &value
	}
	if value, ok := _c.mutation.AgentRunID(); ok {
		_spec.SetField(chatmessage.FieldAgentRunID, field.TypeString, value)
		_node.AgentRunID = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(chatmessage.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(chatmessage.FieldErrorCategory, field.TypeString, value)
		_node.ErrorCategory = &value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(chatmessage.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.UserQuestionData(); ok {
		_spec.SetField(chatmessage.FieldUserQuestionData, field.TypeJSON, value)
		_node.UserQuestionData = value
	}
	if value, ok := _c.mutation.FileIds(); ok {
		_spec.SetField(chatmessage.FieldFileIds, field.TypeJSON, value)
		_node.FileIds = value
	}
	if value, ok := _c.mutation.Citations(); ok {
		_spec.SetField(chatmessage.FieldCitations, field.TypeJSON, value)
		_node.Citations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChatMessageCreateBulk is the builder for creating many ChatMessage entities in bulk.
type ChatMessageCreateBulk struct {
	config
	err      error
	builders []*ChatMessageCreate
}

// Save creates the ChatMessage entities in the database.
func (_c *ChatMessageCreateBulk) Save(ctx context.Context) ([]*ChatMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMessageMutation)
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
func (_c *ChatMessageCreateBulk) SaveX(ctx context.Context) []*ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
