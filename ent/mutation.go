// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/agentrun"
	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/ent/developerearning"
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/ent/ledgerentry"
	"github.com/agentloom/loom/ent/predicate"
	"github.com/agentloom/loom/ent/scheduledtask"
	"github.com/agentloom/loom/ent/session"
	"github.com/agentloom/loom/ent/topic"
	"github.com/agentloom/loom/ent/wallet"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun         = "AgentRun"
	TypeChatMessage      = "ChatMessage"
	TypeConsumeRecord    = "ConsumeRecord"
	TypeDeveloperEarning = "DeveloperEarning"
	TypeDeveloperWallet  = "DeveloperWallet"
	TypeLedgerEntry      = "LedgerEntry"
	TypeScheduledTask    = "ScheduledTask"
	TypeSession          = "Session"
	TypeTopic            = "Topic"
	TypeWallet           = "Wallet"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op             Op
	typ            string
	id             *string
	message_id     *string
	session_id     *string
	topic_id       *string
	user_id        *string
	status         *agentrun.Status
	started_at     *time.Time
	ended_at       *time.Time
	duration_ms    *int64
	addduration_ms *int64
	node_data      *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AgentRun, error)
	predicates     []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *AgentRunMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *AgentRunMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *AgentRunMutation) ResetMessageID() {
	m.message_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *AgentRunMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentRunMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentRunMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *AgentRunMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *AgentRunMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *AgentRunMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AgentRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentRunMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentrun.FieldEndedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AgentRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[agentrun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AgentRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, agentrun.FieldDurationMs)
}

// SetNodeData sets the "node_data" field.
func (m *AgentRunMutation) SetNodeData(value map[string]interface{}) {
	m.node_data = &value
}

// NodeData returns the value of the "node_data" field in the mutation.
func (m *AgentRunMutation) NodeData() (r map[string]interface{}, exists bool) {
	v := m.node_data
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeData returns the old "node_data" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldNodeData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeData: %w", err)
	}
	return oldValue.NodeData, nil
}

// ClearNodeData clears the value of the "node_data" field.
func (m *AgentRunMutation) ClearNodeData() {
	m.node_data = nil
	m.clearedFields[agentrun.FieldNodeData] = struct{}{}
}

// NodeDataCleared returns if the "node_data" field was cleared in this mutation.
func (m *AgentRunMutation) NodeDataCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldNodeData]
	return ok
}

// ResetNodeData resets all changes to the "node_data" field.
func (m *AgentRunMutation) ResetNodeData() {
	m.node_data = nil
	delete(m.clearedFields, agentrun.FieldNodeData)
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.message_id != nil {
		fields = append(fields, agentrun.FieldMessageID)
	}
	if m.session_id != nil {
		fields = append(fields, agentrun.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, agentrun.FieldTopicID)
	}
	if m.user_id != nil {
		fields = append(fields, agentrun.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	if m.node_data != nil {
		fields = append(fields, agentrun.FieldNodeData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldMessageID:
		return m.MessageID()
	case agentrun.FieldSessionID:
		return m.SessionID()
	case agentrun.FieldTopicID:
		return m.TopicID()
	case agentrun.FieldUserID:
		return m.UserID()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldEndedAt:
		return m.EndedAt()
	case agentrun.FieldDurationMs:
		return m.DurationMs()
	case agentrun.FieldNodeData:
		return m.NodeData()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldMessageID:
		return m.OldMessageID(ctx)
	case agentrun.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentrun.FieldTopicID:
		return m.OldTopicID(ctx)
	case agentrun.FieldUserID:
		return m.OldUserID(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentrun.FieldNodeData:
		return m.OldNodeData(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case agentrun.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentrun.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case agentrun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentrun.FieldNodeData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeData(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldEndedAt) {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.FieldCleared(agentrun.FieldDurationMs) {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	if m.FieldCleared(agentrun.FieldNodeData) {
		fields = append(fields, agentrun.FieldNodeData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentrun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case agentrun.FieldNodeData:
		m.ClearNodeData()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldMessageID:
		m.ResetMessageID()
		return nil
	case agentrun.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentrun.FieldTopicID:
		m.ResetTopicID()
		return nil
	case agentrun.FieldUserID:
		m.ResetUserID()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentrun.FieldNodeData:
		m.ResetNodeData()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	topic_id           *string
	session_id         *string
	user_id            *string
	role               *chatmessage.Role
	content            *string
	thinking_content   *string
	stream_id          *string
	client_id          *string
	agent_run_id       *string
	error_code         *string
	error_category     *string
	error_detail       *string
	user_question_data *map[string]interface{}
	file_ids           *[]string
	appendfile_ids     []string
	citations          *[]map[string]interface{}
	appendcitations    []map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ChatMessage, error)
	predicates         []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *ChatMessageMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ChatMessageMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ChatMessageMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatMessageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatMessageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatMessageMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetThinkingContent sets the "thinking_content" field.
func (m *ChatMessageMutation) SetThinkingContent(s string) {
	m.thinking_content = &s
}

// ThinkingContent returns the value of the "thinking_content" field in the mutation.
func (m *ChatMessageMutation) ThinkingContent() (r string, exists bool) {
	v := m.thinking_content
	if v == nil {
		return
	}
	return *v, true
}

// OldThinkingContent returns the old "thinking_content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldThinkingContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinkingContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinkingContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinkingContent: %w", err)
	}
	return oldValue.ThinkingContent, nil
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (m *ChatMessageMutation) ClearThinkingContent() {
	m.thinking_content = nil
	m.clearedFields[chatmessage.FieldThinkingContent] = struct{}{}
}

// ThinkingContentCleared returns if the "thinking_content" field was cleared in this mutation.
func (m *ChatMessageMutation) ThinkingContentCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldThinkingContent]
	return ok
}

// ResetThinkingContent resets all changes to the "thinking_content" field.
func (m *ChatMessageMutation) ResetThinkingContent() {
	m.thinking_content = nil
	delete(m.clearedFields, chatmessage.FieldThinkingContent)
}

// SetStreamID sets the "stream_id" field.
func (m *ChatMessageMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ChatMessageMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldStreamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ClearStreamID clears the value of the "stream_id" field.
func (m *ChatMessageMutation) ClearStreamID() {
	m.stream_id = nil
	m.clearedFields[chatmessage.FieldStreamID] = struct{}{}
}

// StreamIDCleared returns if the "stream_id" field was cleared in this mutation.
func (m *ChatMessageMutation) StreamIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldStreamID]
	return ok
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ChatMessageMutation) ResetStreamID() {
	m.stream_id = nil
	delete(m.clearedFields, chatmessage.FieldStreamID)
}

// SetClientID sets the "client_id" field.
func (m *ChatMessageMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ChatMessageMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldClientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *ChatMessageMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[chatmessage.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *ChatMessageMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ChatMessageMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, chatmessage.FieldClientID)
}

// SetAgentRunID sets the "agent_run_id" field.
func (m *ChatMessageMutation) SetAgentRunID(s string) {
	m.agent_run_id = &s
}

// AgentRunID returns the value of the "agent_run_id" field in the mutation.
func (m *ChatMessageMutation) AgentRunID() (r string, exists bool) {
	v := m.agent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRunID returns the old "agent_run_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAgentRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRunID: %w", err)
	}
	return oldValue.AgentRunID, nil
}

// ClearAgentRunID clears the value of the "agent_run_id" field.
func (m *ChatMessageMutation) ClearAgentRunID() {
	m.agent_run_id = nil
	m.clearedFields[chatmessage.FieldAgentRunID] = struct{}{}
}

// AgentRunIDCleared returns if the "agent_run_id" field was cleared in this mutation.
func (m *ChatMessageMutation) AgentRunIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAgentRunID]
	return ok
}

// ResetAgentRunID resets all changes to the "agent_run_id" field.
func (m *ChatMessageMutation) ResetAgentRunID() {
	m.agent_run_id = nil
	delete(m.clearedFields, chatmessage.FieldAgentRunID)
}

// SetErrorCode sets the "error_code" field.
func (m *ChatMessageMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *ChatMessageMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *ChatMessageMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[chatmessage.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *ChatMessageMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *ChatMessageMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, chatmessage.FieldErrorCode)
}

// SetErrorCategory sets the "error_category" field.
func (m *ChatMessageMutation) SetErrorCategory(s string) {
	m.error_category = &s
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *ChatMessageMutation) ErrorCategory() (r string, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldErrorCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *ChatMessageMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[chatmessage.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *ChatMessageMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *ChatMessageMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, chatmessage.FieldErrorCategory)
}

// SetErrorDetail sets the "error_detail" field.
func (m *ChatMessageMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *ChatMessageMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *ChatMessageMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[chatmessage.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *ChatMessageMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *ChatMessageMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, chatmessage.FieldErrorDetail)
}

// SetUserQuestionData sets the "user_question_data" field.
func (m *ChatMessageMutation) SetUserQuestionData(value map[string]interface{}) {
	m.user_question_data = &value
}

// UserQuestionData returns the value of the "user_question_data" field in the mutation.
func (m *ChatMessageMutation) UserQuestionData() (r map[string]interface{}, exists bool) {
	v := m.user_question_data
	if v == nil {
		return
	}
	return *v, true
}

// OldUserQuestionData returns the old "user_question_data" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUserQuestionData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserQuestionData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserQuestionData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserQuestionData: %w", err)
	}
	return oldValue.UserQuestionData, nil
}

// ClearUserQuestionData clears the value of the "user_question_data" field.
func (m *ChatMessageMutation) ClearUserQuestionData() {
	m.user_question_data = nil
	m.clearedFields[chatmessage.FieldUserQuestionData] = struct{}{}
}

// UserQuestionDataCleared returns if the "user_question_data" field was cleared in this mutation.
func (m *ChatMessageMutation) UserQuestionDataCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldUserQuestionData]
	return ok
}

// ResetUserQuestionData resets all changes to the "user_question_data" field.
func (m *ChatMessageMutation) ResetUserQuestionData() {
	m.user_question_data = nil
	delete(m.clearedFields, chatmessage.FieldUserQuestionData)
}

// SetFileIds sets the "file_ids" field.
func (m *ChatMessageMutation) SetFileIds(s []string) {
	m.file_ids = &s
	m.appendfile_ids = nil
}

// FileIds returns the value of the "file_ids" field in the mutation.
func (m *ChatMessageMutation) FileIds() (r []string, exists bool) {
	v := m.file_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFileIds returns the old "file_ids" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldFileIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileIds: %w", err)
	}
	return oldValue.FileIds, nil
}

// AppendFileIds adds s to the "file_ids" field.
func (m *ChatMessageMutation) AppendFileIds(s []string) {
	m.appendfile_ids = append(m.appendfile_ids, s...)
}

// AppendedFileIds returns the list of values that were appended to the "file_ids" field in this mutation.
func (m *ChatMessageMutation) AppendedFileIds() ([]string, bool) {
	if len(m.appendfile_ids) == 0 {
		return nil, false
	}
	return m.appendfile_ids, true
}

// ClearFileIds clears the value of the "file_ids" field.
func (m *ChatMessageMutation) ClearFileIds() {
	m.file_ids = nil
	m.appendfile_ids = nil
	m.clearedFields[chatmessage.FieldFileIds] = struct{}{}
}

// FileIdsCleared returns if the "file_ids" field was cleared in this mutation.
func (m *ChatMessageMutation) FileIdsCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldFileIds]
	return ok
}

// ResetFileIds resets all changes to the "file_ids" field.
func (m *ChatMessageMutation) ResetFileIds() {
	m.file_ids = nil
	m.appendfile_ids = nil
	delete(m.clearedFields, chatmessage.FieldFileIds)
}

// SetCitations sets the "citations" field.
func (m *ChatMessageMutation) SetCitations(value []map[string]interface{}) {
	m.citations = &value
	m.appendcitations = nil
}

// Citations returns the value of the "citations" field in the mutation.
func (m *ChatMessageMutation) Citations() (r []map[string]interface{}, exists bool) {
	v := m.citations
	if v == nil {
		return
	}
	return *v, true
}

// OldCitations returns the old "citations" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCitations(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitations: %w", err)
	}
	return oldValue.Citations, nil
}

// AppendCitations adds value to the "citations" field.
func (m *ChatMessageMutation) AppendCitations(value []map[string]interface{}) {
	m.appendcitations = append(m.appendcitations, value...)
}

// AppendedCitations returns the list of values that were appended to the "citations" field in this mutation.
func (m *ChatMessageMutation) AppendedCitations() ([]map[string]interface{}, bool) {
	if len(m.appendcitations) == 0 {
		return nil, false
	}
	return m.appendcitations, true
}

// ClearCitations clears the value of the "citations" field.
func (m *ChatMessageMutation) ClearCitations() {
	m.citations = nil
	m.appendcitations = nil
	m.clearedFields[chatmessage.FieldCitations] = struct{}{}
}

// CitationsCleared returns if the "citations" field was cleared in this mutation.
func (m *ChatMessageMutation) CitationsCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldCitations]
	return ok
}

// ResetCitations resets all changes to the "citations" field.
func (m *ChatMessageMutation) ResetCitations() {
	m.citations = nil
	m.appendcitations = nil
	delete(m.clearedFields, chatmessage.FieldCitations)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.topic_id != nil {
		fields = append(fields, chatmessage.FieldTopicID)
	}
	if m.session_id != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, chatmessage.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.thinking_content != nil {
		fields = append(fields, chatmessage.FieldThinkingContent)
	}
	if m.stream_id != nil {
		fields = append(fields, chatmessage.FieldStreamID)
	}
	if m.client_id != nil {
		fields = append(fields, chatmessage.FieldClientID)
	}
	if m.agent_run_id != nil {
		fields = append(fields, chatmessage.FieldAgentRunID)
	}
	if m.error_code != nil {
		fields = append(fields, chatmessage.FieldErrorCode)
	}
	if m.error_category != nil {
		fields = append(fields, chatmessage.FieldErrorCategory)
	}
	if m.error_detail != nil {
		fields = append(fields, chatmessage.FieldErrorDetail)
	}
	if m.user_question_data != nil {
		fields = append(fields, chatmessage.FieldUserQuestionData)
	}
	if m.file_ids != nil {
		fields = append(fields, chatmessage.FieldFileIds)
	}
	if m.citations != nil {
		fields = append(fields, chatmessage.FieldCitations)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatmessage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldTopicID:
		return m.TopicID()
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldUserID:
		return m.UserID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldThinkingContent:
		return m.ThinkingContent()
	case chatmessage.FieldStreamID:
		return m.StreamID()
	case chatmessage.FieldClientID:
		return m.ClientID()
	case chatmessage.FieldAgentRunID:
		return m.AgentRunID()
	case chatmessage.FieldErrorCode:
		return m.ErrorCode()
	case chatmessage.FieldErrorCategory:
		return m.ErrorCategory()
	case chatmessage.FieldErrorDetail:
		return m.ErrorDetail()
	case chatmessage.FieldUserQuestionData:
		return m.UserQuestionData()
	case chatmessage.FieldFileIds:
		return m.FileIds()
	case chatmessage.FieldCitations:
		return m.Citations()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	case chatmessage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldTopicID:
		return m.OldTopicID(ctx)
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldUserID:
		return m.OldUserID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldThinkingContent:
		return m.OldThinkingContent(ctx)
	case chatmessage.FieldStreamID:
		return m.OldStreamID(ctx)
	case chatmessage.FieldClientID:
		return m.OldClientID(ctx)
	case chatmessage.FieldAgentRunID:
		return m.OldAgentRunID(ctx)
	case chatmessage.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case chatmessage.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case chatmessage.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case chatmessage.FieldUserQuestionData:
		return m.OldUserQuestionData(ctx)
	case chatmessage.FieldFileIds:
		return m.OldFileIds(ctx)
	case chatmessage.FieldCitations:
		return m.OldCitations(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatmessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldThinkingContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinkingContent(v)
		return nil
	case chatmessage.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case chatmessage.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case chatmessage.FieldAgentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRunID(v)
		return nil
	case chatmessage.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case chatmessage.FieldErrorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case chatmessage.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case chatmessage.FieldUserQuestionData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserQuestionData(v)
		return nil
	case chatmessage.FieldFileIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileIds(v)
		return nil
	case chatmessage.FieldCitations:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitations(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatmessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldThinkingContent) {
		fields = append(fields, chatmessage.FieldThinkingContent)
	}
	if m.FieldCleared(chatmessage.FieldStreamID) {
		fields = append(fields, chatmessage.FieldStreamID)
	}
	if m.FieldCleared(chatmessage.FieldClientID) {
		fields = append(fields, chatmessage.FieldClientID)
	}
	if m.FieldCleared(chatmessage.FieldAgentRunID) {
		fields = append(fields, chatmessage.FieldAgentRunID)
	}
	if m.FieldCleared(chatmessage.FieldErrorCode) {
		fields = append(fields, chatmessage.FieldErrorCode)
	}
	if m.FieldCleared(chatmessage.FieldErrorCategory) {
		fields = append(fields, chatmessage.FieldErrorCategory)
	}
	if m.FieldCleared(chatmessage.FieldErrorDetail) {
		fields = append(fields, chatmessage.FieldErrorDetail)
	}
	if m.FieldCleared(chatmessage.FieldUserQuestionData) {
		fields = append(fields, chatmessage.FieldUserQuestionData)
	}
	if m.FieldCleared(chatmessage.FieldFileIds) {
		fields = append(fields, chatmessage.FieldFileIds)
	}
	if m.FieldCleared(chatmessage.FieldCitations) {
		fields = append(fields, chatmessage.FieldCitations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldThinkingContent:
		m.ClearThinkingContent()
		return nil
	case chatmessage.FieldStreamID:
		m.ClearStreamID()
		return nil
	case chatmessage.FieldClientID:
		m.ClearClientID()
		return nil
	case chatmessage.FieldAgentRunID:
		m.ClearAgentRunID()
		return nil
	case chatmessage.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case chatmessage.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case chatmessage.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	case chatmessage.FieldUserQuestionData:
		m.ClearUserQuestionData()
		return nil
	case chatmessage.FieldFileIds:
		m.ClearFileIds()
		return nil
	case chatmessage.FieldCitations:
		m.ClearCitations()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldTopicID:
		m.ResetTopicID()
		return nil
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldUserID:
		m.ResetUserID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldThinkingContent:
		m.ResetThinkingContent()
		return nil
	case chatmessage.FieldStreamID:
		m.ResetStreamID()
		return nil
	case chatmessage.FieldClientID:
		m.ResetClientID()
		return nil
	case chatmessage.FieldAgentRunID:
		m.ResetAgentRunID()
		return nil
	case chatmessage.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case chatmessage.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case chatmessage.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case chatmessage.FieldUserQuestionData:
		m.ResetUserQuestionData()
		return nil
	case chatmessage.FieldFileIds:
		m.ResetFileIds()
		return nil
	case chatmessage.FieldCitations:
		m.ResetCitations()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatmessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ConsumeRecordMutation represents an operation that mutates the ConsumeRecord nodes in the graph.
type ConsumeRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	session_id        *string
	topic_id          *string
	message_id        *string
	record_type       *consumerecord.RecordType
	amount            *int64
	addamount         *int64
	cost_usd          *float64
	addcost_usd       *float64
	model             *string
	input_tokens      *int
	addinput_tokens   *int
	output_tokens     *int
	addoutput_tokens  *int
	total_tokens      *int
	addtotal_tokens   *int
	tier              *string
	tool_name         *string
	tool_call_id      *string
	tool_status       *string
	consume_state     *consumerecord.ConsumeState
	agent_id          *string
	marketplace_id    *string
	developer_user_id *string
	created_at        *time.Time
	settled_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ConsumeRecord, error)
	predicates        []predicate.ConsumeRecord
}

var _ ent.Mutation = (*ConsumeRecordMutation)(nil)

// consumerecordOption allows management of the mutation configuration using functional options.
type consumerecordOption func(*ConsumeRecordMutation)

// newConsumeRecordMutation creates new mutation for the ConsumeRecord entity.
func newConsumeRecordMutation(c config, op Op, opts ...consumerecordOption) *ConsumeRecordMutation {
	m := &ConsumeRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeConsumeRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConsumeRecordID sets the ID field of the mutation.
func withConsumeRecordID(id string) consumerecordOption {
	return func(m *ConsumeRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ConsumeRecord
		)
		m.oldValue = func(ctx context.Context) (*ConsumeRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConsumeRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConsumeRecord sets the old ConsumeRecord of the mutation.
func withConsumeRecord(node *ConsumeRecord) consumerecordOption {
	return func(m *ConsumeRecordMutation) {
		m.oldValue = func(context.Context) (*ConsumeRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConsumeRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConsumeRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConsumeRecord entities.
func (m *ConsumeRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConsumeRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConsumeRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConsumeRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ConsumeRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConsumeRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConsumeRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ConsumeRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConsumeRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConsumeRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *ConsumeRecordMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ConsumeRecordMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ConsumeRecordMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *ConsumeRecordMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ConsumeRecordMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *ConsumeRecordMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[consumerecord.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *ConsumeRecordMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ConsumeRecordMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, consumerecord.FieldMessageID)
}

// SetRecordType sets the "record_type" field.
func (m *ConsumeRecordMutation) SetRecordType(ct consumerecord.RecordType) {
	m.record_type = &ct
}

// RecordType returns the value of the "record_type" field in the mutation.
func (m *ConsumeRecordMutation) RecordType() (r consumerecord.RecordType, exists bool) {
	v := m.record_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordType returns the old "record_type" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldRecordType(ctx context.Context) (v consumerecord.RecordType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordType: %w", err)
	}
	return oldValue.RecordType, nil
}

// ResetRecordType resets all changes to the "record_type" field.
func (m *ConsumeRecordMutation) ResetRecordType() {
	m.record_type = nil
}

// SetAmount sets the "amount" field.
func (m *ConsumeRecordMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ConsumeRecordMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *ConsumeRecordMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ConsumeRecordMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ConsumeRecordMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *ConsumeRecordMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *ConsumeRecordMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *ConsumeRecordMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *ConsumeRecordMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *ConsumeRecordMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetModel sets the "model" field.
func (m *ConsumeRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ConsumeRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *ConsumeRecordMutation) ClearModel() {
	m.model = nil
	m.clearedFields[consumerecord.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *ConsumeRecordMutation) ModelCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *ConsumeRecordMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, consumerecord.FieldModel)
}

// SetInputTokens sets the "input_tokens" field.
func (m *ConsumeRecordMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ConsumeRecordMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ConsumeRecordMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ConsumeRecordMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ConsumeRecordMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ConsumeRecordMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ConsumeRecordMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ConsumeRecordMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ConsumeRecordMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ConsumeRecordMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ConsumeRecordMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ConsumeRecordMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ConsumeRecordMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ConsumeRecordMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ConsumeRecordMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTier sets the "tier" field.
func (m *ConsumeRecordMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ConsumeRecordMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldTier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ClearTier clears the value of the "tier" field.
func (m *ConsumeRecordMutation) ClearTier() {
	m.tier = nil
	m.clearedFields[consumerecord.FieldTier] = struct{}{}
}

// TierCleared returns if the "tier" field was cleared in this mutation.
func (m *ConsumeRecordMutation) TierCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldTier]
	return ok
}

// ResetTier resets all changes to the "tier" field.
func (m *ConsumeRecordMutation) ResetTier() {
	m.tier = nil
	delete(m.clearedFields, consumerecord.FieldTier)
}

// SetToolName sets the "tool_name" field.
func (m *ConsumeRecordMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ConsumeRecordMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *ConsumeRecordMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[consumerecord.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *ConsumeRecordMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ConsumeRecordMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, consumerecord.FieldToolName)
}

// SetToolCallID sets the "tool_call_id" field.
func (m *ConsumeRecordMutation) SetToolCallID(s string) {
	m.tool_call_id = &s
}

// ToolCallID returns the value of the "tool_call_id" field in the mutation.
func (m *ConsumeRecordMutation) ToolCallID() (r string, exists bool) {
	v := m.tool_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallID returns the old "tool_call_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldToolCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallID: %w", err)
	}
	return oldValue.ToolCallID, nil
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (m *ConsumeRecordMutation) ClearToolCallID() {
	m.tool_call_id = nil
	m.clearedFields[consumerecord.FieldToolCallID] = struct{}{}
}

// ToolCallIDCleared returns if the "tool_call_id" field was cleared in this mutation.
func (m *ConsumeRecordMutation) ToolCallIDCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldToolCallID]
	return ok
}

// ResetToolCallID resets all changes to the "tool_call_id" field.
func (m *ConsumeRecordMutation) ResetToolCallID() {
	m.tool_call_id = nil
	delete(m.clearedFields, consumerecord.FieldToolCallID)
}

// SetToolStatus sets the "tool_status" field.
func (m *ConsumeRecordMutation) SetToolStatus(s string) {
	m.tool_status = &s
}

// ToolStatus returns the value of the "tool_status" field in the mutation.
func (m *ConsumeRecordMutation) ToolStatus() (r string, exists bool) {
	v := m.tool_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToolStatus returns the old "tool_status" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldToolStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolStatus: %w", err)
	}
	return oldValue.ToolStatus, nil
}

// ClearToolStatus clears the value of the "tool_status" field.
func (m *ConsumeRecordMutation) ClearToolStatus() {
	m.tool_status = nil
	m.clearedFields[consumerecord.FieldToolStatus] = struct{}{}
}

// ToolStatusCleared returns if the "tool_status" field was cleared in this mutation.
func (m *ConsumeRecordMutation) ToolStatusCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldToolStatus]
	return ok
}

// ResetToolStatus resets all changes to the "tool_status" field.
func (m *ConsumeRecordMutation) ResetToolStatus() {
	m.tool_status = nil
	delete(m.clearedFields, consumerecord.FieldToolStatus)
}

// SetConsumeState sets the "consume_state" field.
func (m *ConsumeRecordMutation) SetConsumeState(cs consumerecord.ConsumeState) {
	m.consume_state = &cs
}

// ConsumeState returns the value of the "consume_state" field in the mutation.
func (m *ConsumeRecordMutation) ConsumeState() (r consumerecord.ConsumeState, exists bool) {
	v := m.consume_state
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumeState returns the old "consume_state" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldConsumeState(ctx context.Context) (v consumerecord.ConsumeState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumeState: %w", err)
	}
	return oldValue.ConsumeState, nil
}

// ResetConsumeState resets all changes to the "consume_state" field.
func (m *ConsumeRecordMutation) ResetConsumeState() {
	m.consume_state = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ConsumeRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ConsumeRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ConsumeRecordMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[consumerecord.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ConsumeRecordMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ConsumeRecordMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, consumerecord.FieldAgentID)
}

// SetMarketplaceID sets the "marketplace_id" field.
func (m *ConsumeRecordMutation) SetMarketplaceID(s string) {
	m.marketplace_id = &s
}

// MarketplaceID returns the value of the "marketplace_id" field in the mutation.
func (m *ConsumeRecordMutation) MarketplaceID() (r string, exists bool) {
	v := m.marketplace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceID returns the old "marketplace_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldMarketplaceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceID: %w", err)
	}
	return oldValue.MarketplaceID, nil
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (m *ConsumeRecordMutation) ClearMarketplaceID() {
	m.marketplace_id = nil
	m.clearedFields[consumerecord.FieldMarketplaceID] = struct{}{}
}

// MarketplaceIDCleared returns if the "marketplace_id" field was cleared in this mutation.
func (m *ConsumeRecordMutation) MarketplaceIDCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldMarketplaceID]
	return ok
}

// ResetMarketplaceID resets all changes to the "marketplace_id" field.
func (m *ConsumeRecordMutation) ResetMarketplaceID() {
	m.marketplace_id = nil
	delete(m.clearedFields, consumerecord.FieldMarketplaceID)
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (m *ConsumeRecordMutation) SetDeveloperUserID(s string) {
	m.developer_user_id = &s
}

// DeveloperUserID returns the value of the "developer_user_id" field in the mutation.
func (m *ConsumeRecordMutation) DeveloperUserID() (r string, exists bool) {
	v := m.developer_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeveloperUserID returns the old "developer_user_id" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldDeveloperUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeveloperUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeveloperUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeveloperUserID: %w", err)
	}
	return oldValue.DeveloperUserID, nil
}

// ClearDeveloperUserID clears the value of the "developer_user_id" field.
func (m *ConsumeRecordMutation) ClearDeveloperUserID() {
	m.developer_user_id = nil
	m.clearedFields[consumerecord.FieldDeveloperUserID] = struct{}{}
}

// DeveloperUserIDCleared returns if the "developer_user_id" field was cleared in this mutation.
func (m *ConsumeRecordMutation) DeveloperUserIDCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldDeveloperUserID]
	return ok
}

// ResetDeveloperUserID resets all changes to the "developer_user_id" field.
func (m *ConsumeRecordMutation) ResetDeveloperUserID() {
	m.developer_user_id = nil
	delete(m.clearedFields, consumerecord.FieldDeveloperUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConsumeRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConsumeRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConsumeRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSettledAt sets the "settled_at" field.
func (m *ConsumeRecordMutation) SetSettledAt(t time.Time) {
	m.settled_at = &t
}

// SettledAt returns the value of the "settled_at" field in the mutation.
func (m *ConsumeRecordMutation) SettledAt() (r time.Time, exists bool) {
	v := m.settled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSettledAt returns the old "settled_at" field's value of the ConsumeRecord entity.
// If the ConsumeRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsumeRecordMutation) OldSettledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettledAt: %w", err)
	}
	return oldValue.SettledAt, nil
}

// ClearSettledAt clears the value of the "settled_at" field.
func (m *ConsumeRecordMutation) ClearSettledAt() {
	m.settled_at = nil
	m.clearedFields[consumerecord.FieldSettledAt] = struct{}{}
}

// SettledAtCleared returns if the "settled_at" field was cleared in this mutation.
func (m *ConsumeRecordMutation) SettledAtCleared() bool {
	_, ok := m.clearedFields[consumerecord.FieldSettledAt]
	return ok
}

// ResetSettledAt resets all changes to the "settled_at" field.
func (m *ConsumeRecordMutation) ResetSettledAt() {
	m.settled_at = nil
	delete(m.clearedFields, consumerecord.FieldSettledAt)
}

// Where appends a list predicates to the ConsumeRecordMutation builder.
func (m *ConsumeRecordMutation) Where(ps ...predicate.ConsumeRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConsumeRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConsumeRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConsumeRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConsumeRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConsumeRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConsumeRecord).
func (m *ConsumeRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConsumeRecordMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.user_id != nil {
		fields = append(fields, consumerecord.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, consumerecord.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, consumerecord.FieldTopicID)
	}
	if m.message_id != nil {
		fields = append(fields, consumerecord.FieldMessageID)
	}
	if m.record_type != nil {
		fields = append(fields, consumerecord.FieldRecordType)
	}
	if m.amount != nil {
		fields = append(fields, consumerecord.FieldAmount)
	}
	if m.cost_usd != nil {
		fields = append(fields, consumerecord.FieldCostUsd)
	}
	if m.model != nil {
		fields = append(fields, consumerecord.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, consumerecord.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, consumerecord.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, consumerecord.FieldTotalTokens)
	}
	if m.tier != nil {
		fields = append(fields, consumerecord.FieldTier)
	}
	if m.tool_name != nil {
		fields = append(fields, consumerecord.FieldToolName)
	}
	if m.tool_call_id != nil {
		fields = append(fields, consumerecord.FieldToolCallID)
	}
	if m.tool_status != nil {
		fields = append(fields, consumerecord.FieldToolStatus)
	}
	if m.consume_state != nil {
		fields = append(fields, consumerecord.FieldConsumeState)
	}
	if m.agent_id != nil {
		fields = append(fields, consumerecord.FieldAgentID)
	}
	if m.marketplace_id != nil {
		fields = append(fields, consumerecord.FieldMarketplaceID)
	}
	if m.developer_user_id != nil {
		fields = append(fields, consumerecord.FieldDeveloperUserID)
	}
	if m.created_at != nil {
		fields = append(fields, consumerecord.FieldCreatedAt)
	}
	if m.settled_at != nil {
		fields = append(fields, consumerecord.FieldSettledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConsumeRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case consumerecord.FieldUserID:
		return m.UserID()
	case consumerecord.FieldSessionID:
		return m.SessionID()
	case consumerecord.FieldTopicID:
		return m.TopicID()
	case consumerecord.FieldMessageID:
		return m.MessageID()
	case consumerecord.FieldRecordType:
		return m.RecordType()
	case consumerecord.FieldAmount:
		return m.Amount()
	case consumerecord.FieldCostUsd:
		return m.CostUsd()
	case consumerecord.FieldModel:
		return m.Model()
	case consumerecord.FieldInputTokens:
		return m.InputTokens()
	case consumerecord.FieldOutputTokens:
		return m.OutputTokens()
	case consumerecord.FieldTotalTokens:
		return m.TotalTokens()
	case consumerecord.FieldTier:
		return m.Tier()
	case consumerecord.FieldToolName:
		return m.ToolName()
	case consumerecord.FieldToolCallID:
		return m.ToolCallID()
	case consumerecord.FieldToolStatus:
		return m.ToolStatus()
	case consumerecord.FieldConsumeState:
		return m.ConsumeState()
	case consumerecord.FieldAgentID:
		return m.AgentID()
	case consumerecord.FieldMarketplaceID:
		return m.MarketplaceID()
	case consumerecord.FieldDeveloperUserID:
		return m.DeveloperUserID()
	case consumerecord.FieldCreatedAt:
		return m.CreatedAt()
	case consumerecord.FieldSettledAt:
		return m.SettledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConsumeRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case consumerecord.FieldUserID:
		return m.OldUserID(ctx)
	case consumerecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case consumerecord.FieldTopicID:
		return m.OldTopicID(ctx)
	case consumerecord.FieldMessageID:
		return m.OldMessageID(ctx)
	case consumerecord.FieldRecordType:
		return m.OldRecordType(ctx)
	case consumerecord.FieldAmount:
		return m.OldAmount(ctx)
	case consumerecord.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case consumerecord.FieldModel:
		return m.OldModel(ctx)
	case consumerecord.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case consumerecord.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case consumerecord.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case consumerecord.FieldTier:
		return m.OldTier(ctx)
	case consumerecord.FieldToolName:
		return m.OldToolName(ctx)
	case consumerecord.FieldToolCallID:
		return m.OldToolCallID(ctx)
	case consumerecord.FieldToolStatus:
		return m.OldToolStatus(ctx)
	case consumerecord.FieldConsumeState:
		return m.OldConsumeState(ctx)
	case consumerecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case consumerecord.FieldMarketplaceID:
		return m.OldMarketplaceID(ctx)
	case consumerecord.FieldDeveloperUserID:
		return m.OldDeveloperUserID(ctx)
	case consumerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case consumerecord.FieldSettledAt:
		return m.OldSettledAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConsumeRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsumeRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case consumerecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case consumerecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case consumerecord.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case consumerecord.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case consumerecord.FieldRecordType:
		v, ok := value.(consumerecord.RecordType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordType(v)
		return nil
	case consumerecord.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case consumerecord.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case consumerecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case consumerecord.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case consumerecord.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case consumerecord.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case consumerecord.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case consumerecord.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case consumerecord.FieldToolCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallID(v)
		return nil
	case consumerecord.FieldToolStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolStatus(v)
		return nil
	case consumerecord.FieldConsumeState:
		v, ok := value.(consumerecord.ConsumeState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumeState(v)
		return nil
	case consumerecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case consumerecord.FieldMarketplaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceID(v)
		return nil
	case consumerecord.FieldDeveloperUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeveloperUserID(v)
		return nil
	case consumerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case consumerecord.FieldSettledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettledAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConsumeRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConsumeRecordMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, consumerecord.FieldAmount)
	}
	if m.addcost_usd != nil {
		fields = append(fields, consumerecord.FieldCostUsd)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, consumerecord.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, consumerecord.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, consumerecord.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConsumeRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case consumerecord.FieldAmount:
		return m.AddedAmount()
	case consumerecord.FieldCostUsd:
		return m.AddedCostUsd()
	case consumerecord.FieldInputTokens:
		return m.AddedInputTokens()
	case consumerecord.FieldOutputTokens:
		return m.AddedOutputTokens()
	case consumerecord.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsumeRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case consumerecord.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case consumerecord.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case consumerecord.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case consumerecord.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case consumerecord.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ConsumeRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConsumeRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(consumerecord.FieldMessageID) {
		fields = append(fields, consumerecord.FieldMessageID)
	}
	if m.FieldCleared(consumerecord.FieldModel) {
		fields = append(fields, consumerecord.FieldModel)
	}
	if m.FieldCleared(consumerecord.FieldTier) {
		fields = append(fields, consumerecord.FieldTier)
	}
	if m.FieldCleared(consumerecord.FieldToolName) {
		fields = append(fields, consumerecord.FieldToolName)
	}
	if m.FieldCleared(consumerecord.FieldToolCallID) {
		fields = append(fields, consumerecord.FieldToolCallID)
	}
	if m.FieldCleared(consumerecord.FieldToolStatus) {
		fields = append(fields, consumerecord.FieldToolStatus)
	}
	if m.FieldCleared(consumerecord.FieldAgentID) {
		fields = append(fields, consumerecord.FieldAgentID)
	}
	if m.FieldCleared(consumerecord.FieldMarketplaceID) {
		fields = append(fields, consumerecord.FieldMarketplaceID)
	}
	if m.FieldCleared(consumerecord.FieldDeveloperUserID) {
		fields = append(fields, consumerecord.FieldDeveloperUserID)
	}
	if m.FieldCleared(consumerecord.FieldSettledAt) {
		fields = append(fields, consumerecord.FieldSettledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConsumeRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConsumeRecordMutation) ClearField(name string) error {
	switch name {
	case consumerecord.FieldMessageID:
		m.ClearMessageID()
		return nil
	case consumerecord.FieldModel:
		m.ClearModel()
		return nil
	case consumerecord.FieldTier:
		m.ClearTier()
		return nil
	case consumerecord.FieldToolName:
		m.ClearToolName()
		return nil
	case consumerecord.FieldToolCallID:
		m.ClearToolCallID()
		return nil
	case consumerecord.FieldToolStatus:
		m.ClearToolStatus()
		return nil
	case consumerecord.FieldAgentID:
		m.ClearAgentID()
		return nil
	case consumerecord.FieldMarketplaceID:
		m.ClearMarketplaceID()
		return nil
	case consumerecord.FieldDeveloperUserID:
		m.ClearDeveloperUserID()
		return nil
	case consumerecord.FieldSettledAt:
		m.ClearSettledAt()
		return nil
	}
	return fmt.Errorf("unknown ConsumeRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConsumeRecordMutation) ResetField(name string) error {
	switch name {
	case consumerecord.FieldUserID:
		m.ResetUserID()
		return nil
	case consumerecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case consumerecord.FieldTopicID:
		m.ResetTopicID()
		return nil
	case consumerecord.FieldMessageID:
		m.ResetMessageID()
		return nil
	case consumerecord.FieldRecordType:
		m.ResetRecordType()
		return nil
	case consumerecord.FieldAmount:
		m.ResetAmount()
		return nil
	case consumerecord.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case consumerecord.FieldModel:
		m.ResetModel()
		return nil
	case consumerecord.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case consumerecord.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case consumerecord.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case consumerecord.FieldTier:
		m.ResetTier()
		return nil
	case consumerecord.FieldToolName:
		m.ResetToolName()
		return nil
	case consumerecord.FieldToolCallID:
		m.ResetToolCallID()
		return nil
	case consumerecord.FieldToolStatus:
		m.ResetToolStatus()
		return nil
	case consumerecord.FieldConsumeState:
		m.ResetConsumeState()
		return nil
	case consumerecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case consumerecord.FieldMarketplaceID:
		m.ResetMarketplaceID()
		return nil
	case consumerecord.FieldDeveloperUserID:
		m.ResetDeveloperUserID()
		return nil
	case consumerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case consumerecord.FieldSettledAt:
		m.ResetSettledAt()
		return nil
	}
	return fmt.Errorf("unknown ConsumeRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConsumeRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConsumeRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConsumeRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConsumeRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConsumeRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConsumeRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConsumeRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConsumeRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConsumeRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConsumeRecord edge %s", name)
}

// DeveloperEarningMutation represents an operation that mutates the DeveloperEarning nodes in the graph.
type DeveloperEarningMutation struct {
	config
	op                Op
	typ               string
	id                *string
	developer_user_id *string
	consumer_user_id  *string
	marketplace_id    *string
	amount            *int64
	addamount         *int64
	total_consumed    *int64
	addtotal_consumed *int64
	fork_mode         *developerearning.ForkMode
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DeveloperEarning, error)
	predicates        []predicate.DeveloperEarning
}

var _ ent.Mutation = (*DeveloperEarningMutation)(nil)

// developerearningOption allows management of the mutation configuration using functional options.
type developerearningOption func(*DeveloperEarningMutation)

// newDeveloperEarningMutation creates new mutation for the DeveloperEarning entity.
func newDeveloperEarningMutation(c config, op Op, opts ...developerearningOption) *DeveloperEarningMutation {
	m := &DeveloperEarningMutation{
		config:        c,
		op:            op,
		typ:           TypeDeveloperEarning,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeveloperEarningID sets the ID field of the mutation.
func withDeveloperEarningID(id string) developerearningOption {
	return func(m *DeveloperEarningMutation) {
		var (
			err   error
			once  sync.Once
			value *DeveloperEarning
		)
		m.oldValue = func(ctx context.Context) (*DeveloperEarning, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeveloperEarning.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeveloperEarning sets the old DeveloperEarning of the mutation.
func withDeveloperEarning(node *DeveloperEarning) developerearningOption {
	return func(m *DeveloperEarningMutation) {
		m.oldValue = func(context.Context) (*DeveloperEarning, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeveloperEarningMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeveloperEarningMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeveloperEarning entities.
func (m *DeveloperEarningMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeveloperEarningMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeveloperEarningMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeveloperEarning.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (m *DeveloperEarningMutation) SetDeveloperUserID(s string) {
	m.developer_user_id = &s
}

// DeveloperUserID returns the value of the "developer_user_id" field in the mutation.
func (m *DeveloperEarningMutation) DeveloperUserID() (r string, exists bool) {
	v := m.developer_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeveloperUserID returns the old "developer_user_id" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldDeveloperUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeveloperUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeveloperUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeveloperUserID: %w", err)
	}
	return oldValue.DeveloperUserID, nil
}

// ResetDeveloperUserID resets all changes to the "developer_user_id" field.
func (m *DeveloperEarningMutation) ResetDeveloperUserID() {
	m.developer_user_id = nil
}

// SetConsumerUserID sets the "consumer_user_id" field.
func (m *DeveloperEarningMutation) SetConsumerUserID(s string) {
	m.consumer_user_id = &s
}

// ConsumerUserID returns the value of the "consumer_user_id" field in the mutation.
func (m *DeveloperEarningMutation) ConsumerUserID() (r string, exists bool) {
	v := m.consumer_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumerUserID returns the old "consumer_user_id" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldConsumerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumerUserID: %w", err)
	}
	return oldValue.ConsumerUserID, nil
}

// ResetConsumerUserID resets all changes to the "consumer_user_id" field.
func (m *DeveloperEarningMutation) ResetConsumerUserID() {
	m.consumer_user_id = nil
}

// SetMarketplaceID sets the "marketplace_id" field.
func (m *DeveloperEarningMutation) SetMarketplaceID(s string) {
	m.marketplace_id = &s
}

// MarketplaceID returns the value of the "marketplace_id" field in the mutation.
func (m *DeveloperEarningMutation) MarketplaceID() (r string, exists bool) {
	v := m.marketplace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceID returns the old "marketplace_id" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldMarketplaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceID: %w", err)
	}
	return oldValue.MarketplaceID, nil
}

// ResetMarketplaceID resets all changes to the "marketplace_id" field.
func (m *DeveloperEarningMutation) ResetMarketplaceID() {
	m.marketplace_id = nil
}

// SetAmount sets the "amount" field.
func (m *DeveloperEarningMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *DeveloperEarningMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *DeveloperEarningMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *DeveloperEarningMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *DeveloperEarningMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetTotalConsumed sets the "total_consumed" field.
func (m *DeveloperEarningMutation) SetTotalConsumed(i int64) {
	m.total_consumed = &i
	m.addtotal_consumed = nil
}

// TotalConsumed returns the value of the "total_consumed" field in the mutation.
func (m *DeveloperEarningMutation) TotalConsumed() (r int64, exists bool) {
	v := m.total_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalConsumed returns the old "total_consumed" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldTotalConsumed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalConsumed: %w", err)
	}
	return oldValue.TotalConsumed, nil
}

// AddTotalConsumed adds i to the "total_consumed" field.
func (m *DeveloperEarningMutation) AddTotalConsumed(i int64) {
	if m.addtotal_consumed != nil {
		*m.addtotal_consumed += i
	} else {
		m.addtotal_consumed = &i
	}
}

// AddedTotalConsumed returns the value that was added to the "total_consumed" field in this mutation.
func (m *DeveloperEarningMutation) AddedTotalConsumed() (r int64, exists bool) {
	v := m.addtotal_consumed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalConsumed resets all changes to the "total_consumed" field.
func (m *DeveloperEarningMutation) ResetTotalConsumed() {
	m.total_consumed = nil
	m.addtotal_consumed = nil
}

// SetForkMode sets the "fork_mode" field.
func (m *DeveloperEarningMutation) SetForkMode(dm developerearning.ForkMode) {
	m.fork_mode = &dm
}

// ForkMode returns the value of the "fork_mode" field in the mutation.
func (m *DeveloperEarningMutation) ForkMode() (r developerearning.ForkMode, exists bool) {
	v := m.fork_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldForkMode returns the old "fork_mode" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldForkMode(ctx context.Context) (v developerearning.ForkMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForkMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForkMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForkMode: %w", err)
	}
	return oldValue.ForkMode, nil
}

// ResetForkMode resets all changes to the "fork_mode" field.
func (m *DeveloperEarningMutation) ResetForkMode() {
	m.fork_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeveloperEarningMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeveloperEarningMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeveloperEarning entity.
// If the DeveloperEarning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperEarningMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeveloperEarningMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DeveloperEarningMutation builder.
func (m *DeveloperEarningMutation) Where(ps ...predicate.DeveloperEarning) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeveloperEarningMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeveloperEarningMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeveloperEarning, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeveloperEarningMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeveloperEarningMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeveloperEarning).
func (m *DeveloperEarningMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeveloperEarningMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.developer_user_id != nil {
		fields = append(fields, developerearning.FieldDeveloperUserID)
	}
	if m.consumer_user_id != nil {
		fields = append(fields, developerearning.FieldConsumerUserID)
	}
	if m.marketplace_id != nil {
		fields = append(fields, developerearning.FieldMarketplaceID)
	}
	if m.amount != nil {
		fields = append(fields, developerearning.FieldAmount)
	}
	if m.total_consumed != nil {
		fields = append(fields, developerearning.FieldTotalConsumed)
	}
	if m.fork_mode != nil {
		fields = append(fields, developerearning.FieldForkMode)
	}
	if m.created_at != nil {
		fields = append(fields, developerearning.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeveloperEarningMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case developerearning.FieldDeveloperUserID:
		return m.DeveloperUserID()
	case developerearning.FieldConsumerUserID:
		return m.ConsumerUserID()
	case developerearning.FieldMarketplaceID:
		return m.MarketplaceID()
	case developerearning.FieldAmount:
		return m.Amount()
	case developerearning.FieldTotalConsumed:
		return m.TotalConsumed()
	case developerearning.FieldForkMode:
		return m.ForkMode()
	case developerearning.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeveloperEarningMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case developerearning.FieldDeveloperUserID:
		return m.OldDeveloperUserID(ctx)
	case developerearning.FieldConsumerUserID:
		return m.OldConsumerUserID(ctx)
	case developerearning.FieldMarketplaceID:
		return m.OldMarketplaceID(ctx)
	case developerearning.FieldAmount:
		return m.OldAmount(ctx)
	case developerearning.FieldTotalConsumed:
		return m.OldTotalConsumed(ctx)
	case developerearning.FieldForkMode:
		return m.OldForkMode(ctx)
	case developerearning.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeveloperEarning field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeveloperEarningMutation) SetField(name string, value ent.Value) error {
	switch name {
	case developerearning.FieldDeveloperUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeveloperUserID(v)
		return nil
	case developerearning.FieldConsumerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumerUserID(v)
		return nil
	case developerearning.FieldMarketplaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceID(v)
		return nil
	case developerearning.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case developerearning.FieldTotalConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalConsumed(v)
		return nil
	case developerearning.FieldForkMode:
		v, ok := value.(developerearning.ForkMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForkMode(v)
		return nil
	case developerearning.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeveloperEarning field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeveloperEarningMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, developerearning.FieldAmount)
	}
	if m.addtotal_consumed != nil {
		fields = append(fields, developerearning.FieldTotalConsumed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeveloperEarningMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case developerearning.FieldAmount:
		return m.AddedAmount()
	case developerearning.FieldTotalConsumed:
		return m.AddedTotalConsumed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeveloperEarningMutation) AddField(name string, value ent.Value) error {
	switch name {
	case developerearning.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case developerearning.FieldTotalConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown DeveloperEarning numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeveloperEarningMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeveloperEarningMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeveloperEarningMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeveloperEarning nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeveloperEarningMutation) ResetField(name string) error {
	switch name {
	case developerearning.FieldDeveloperUserID:
		m.ResetDeveloperUserID()
		return nil
	case developerearning.FieldConsumerUserID:
		m.ResetConsumerUserID()
		return nil
	case developerearning.FieldMarketplaceID:
		m.ResetMarketplaceID()
		return nil
	case developerearning.FieldAmount:
		m.ResetAmount()
		return nil
	case developerearning.FieldTotalConsumed:
		m.ResetTotalConsumed()
		return nil
	case developerearning.FieldForkMode:
		m.ResetForkMode()
		return nil
	case developerearning.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeveloperEarning field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeveloperEarningMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeveloperEarningMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeveloperEarningMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeveloperEarningMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeveloperEarningMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeveloperEarningMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeveloperEarningMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeveloperEarning unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeveloperEarningMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeveloperEarning edge %s", name)
}

// DeveloperWalletMutation represents an operation that mutates the DeveloperWallet nodes in the graph.
type DeveloperWalletMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	available_balance    *int64
	addavailable_balance *int64
	total_earned         *int64
	addtotal_earned      *int64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DeveloperWallet, error)
	predicates           []predicate.DeveloperWallet
}

var _ ent.Mutation = (*DeveloperWalletMutation)(nil)

// developerwalletOption allows management of the mutation configuration using functional options.
type developerwalletOption func(*DeveloperWalletMutation)

// newDeveloperWalletMutation creates new mutation for the DeveloperWallet entity.
func newDeveloperWalletMutation(c config, op Op, opts ...developerwalletOption) *DeveloperWalletMutation {
	m := &DeveloperWalletMutation{
		config:        c,
		op:            op,
		typ:           TypeDeveloperWallet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeveloperWalletID sets the ID field of the mutation.
func withDeveloperWalletID(id string) developerwalletOption {
	return func(m *DeveloperWalletMutation) {
		var (
			err   error
			once  sync.Once
			value *DeveloperWallet
		)
		m.oldValue = func(ctx context.Context) (*DeveloperWallet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeveloperWallet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeveloperWallet sets the old DeveloperWallet of the mutation.
func withDeveloperWallet(node *DeveloperWallet) developerwalletOption {
	return func(m *DeveloperWalletMutation) {
		m.oldValue = func(context.Context) (*DeveloperWallet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeveloperWalletMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeveloperWalletMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeveloperWallet entities.
func (m *DeveloperWalletMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeveloperWalletMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeveloperWalletMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeveloperWallet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DeveloperWalletMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DeveloperWalletMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DeveloperWallet entity.
// If the DeveloperWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperWalletMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DeveloperWalletMutation) ResetUserID() {
	m.user_id = nil
}

// SetAvailableBalance sets the "available_balance" field.
func (m *DeveloperWalletMutation) SetAvailableBalance(i int64) {
	m.available_balance = &i
	m.addavailable_balance = nil
}

// AvailableBalance returns the value of the "available_balance" field in the mutation.
func (m *DeveloperWalletMutation) AvailableBalance() (r int64, exists bool) {
	v := m.available_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableBalance returns the old "available_balance" field's value of the DeveloperWallet entity.
// If the DeveloperWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperWalletMutation) OldAvailableBalance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableBalance: %w", err)
	}
	return oldValue.AvailableBalance, nil
}

// AddAvailableBalance adds i to the "available_balance" field.
func (m *DeveloperWalletMutation) AddAvailableBalance(i int64) {
	if m.addavailable_balance != nil {
		*m.addavailable_balance += i
	} else {
		m.addavailable_balance = &i
	}
}

// AddedAvailableBalance returns the value that was added to the "available_balance" field in this mutation.
func (m *DeveloperWalletMutation) AddedAvailableBalance() (r int64, exists bool) {
	v := m.addavailable_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvailableBalance resets all changes to the "available_balance" field.
func (m *DeveloperWalletMutation) ResetAvailableBalance() {
	m.available_balance = nil
	m.addavailable_balance = nil
}

// SetTotalEarned sets the "total_earned" field.
func (m *DeveloperWalletMutation) SetTotalEarned(i int64) {
	m.total_earned = &i
	m.addtotal_earned = nil
}

// TotalEarned returns the value of the "total_earned" field in the mutation.
func (m *DeveloperWalletMutation) TotalEarned() (r int64, exists bool) {
	v := m.total_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEarned returns the old "total_earned" field's value of the DeveloperWallet entity.
// If the DeveloperWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperWalletMutation) OldTotalEarned(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEarned: %w", err)
	}
	return oldValue.TotalEarned, nil
}

// AddTotalEarned adds i to the "total_earned" field.
func (m *DeveloperWalletMutation) AddTotalEarned(i int64) {
	if m.addtotal_earned != nil {
		*m.addtotal_earned += i
	} else {
		m.addtotal_earned = &i
	}
}

// AddedTotalEarned returns the value that was added to the "total_earned" field in this mutation.
func (m *DeveloperWalletMutation) AddedTotalEarned() (r int64, exists bool) {
	v := m.addtotal_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEarned resets all changes to the "total_earned" field.
func (m *DeveloperWalletMutation) ResetTotalEarned() {
	m.total_earned = nil
	m.addtotal_earned = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeveloperWalletMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeveloperWalletMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeveloperWallet entity.
// If the DeveloperWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperWalletMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeveloperWalletMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DeveloperWalletMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DeveloperWalletMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DeveloperWallet entity.
// If the DeveloperWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeveloperWalletMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DeveloperWalletMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DeveloperWalletMutation builder.
func (m *DeveloperWalletMutation) Where(ps ...predicate.DeveloperWallet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeveloperWalletMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeveloperWalletMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeveloperWallet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeveloperWalletMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeveloperWalletMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeveloperWallet).
func (m *DeveloperWalletMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeveloperWalletMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, developerwallet.FieldUserID)
	}
	if m.available_balance != nil {
		fields = append(fields, developerwallet.FieldAvailableBalance)
	}
	if m.total_earned != nil {
		fields = append(fields, developerwallet.FieldTotalEarned)
	}
	if m.created_at != nil {
		fields = append(fields, developerwallet.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, developerwallet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeveloperWalletMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case developerwallet.FieldUserID:
		return m.UserID()
	case developerwallet.FieldAvailableBalance:
		return m.AvailableBalance()
	case developerwallet.FieldTotalEarned:
		return m.TotalEarned()
	case developerwallet.FieldCreatedAt:
		return m.CreatedAt()
	case developerwallet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeveloperWalletMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case developerwallet.FieldUserID:
		return m.OldUserID(ctx)
	case developerwallet.FieldAvailableBalance:
		return m.OldAvailableBalance(ctx)
	case developerwallet.FieldTotalEarned:
		return m.OldTotalEarned(ctx)
	case developerwallet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case developerwallet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeveloperWallet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeveloperWalletMutation) SetField(name string, value ent.Value) error {
	switch name {
	case developerwallet.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case developerwallet.FieldAvailableBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableBalance(v)
		return nil
	case developerwallet.FieldTotalEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEarned(v)
		return nil
	case developerwallet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case developerwallet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeveloperWallet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeveloperWalletMutation) AddedFields() []string {
	var fields []string
	if m.addavailable_balance != nil {
		fields = append(fields, developerwallet.FieldAvailableBalance)
	}
	if m.addtotal_earned != nil {
		fields = append(fields, developerwallet.FieldTotalEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeveloperWalletMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case developerwallet.FieldAvailableBalance:
		return m.AddedAvailableBalance()
	case developerwallet.FieldTotalEarned:
		return m.AddedTotalEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeveloperWalletMutation) AddField(name string, value ent.Value) error {
	switch name {
	case developerwallet.FieldAvailableBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvailableBalance(v)
		return nil
	case developerwallet.FieldTotalEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEarned(v)
		return nil
	}
	return fmt.Errorf("unknown DeveloperWallet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeveloperWalletMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeveloperWalletMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeveloperWalletMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeveloperWallet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeveloperWalletMutation) ResetField(name string) error {
	switch name {
	case developerwallet.FieldUserID:
		m.ResetUserID()
		return nil
	case developerwallet.FieldAvailableBalance:
		m.ResetAvailableBalance()
		return nil
	case developerwallet.FieldTotalEarned:
		m.ResetTotalEarned()
		return nil
	case developerwallet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case developerwallet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeveloperWallet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeveloperWalletMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeveloperWalletMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeveloperWalletMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeveloperWalletMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeveloperWalletMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeveloperWalletMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeveloperWalletMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeveloperWallet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeveloperWalletMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeveloperWallet edge %s", name)
}

// LedgerEntryMutation represents an operation that mutates the LedgerEntry nodes in the graph.
type LedgerEntryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	credit_type            *ledgerentry.CreditType
	direction              *ledgerentry.Direction
	amount                 *int64
	addamount              *int64
	balance_after          *int64
	addbalance_after       *int64
	total_balance_after    *int64
	addtotal_balance_after *int64
	source                 *string
	reference_id           *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*LedgerEntry, error)
	predicates             []predicate.LedgerEntry
}

var _ ent.Mutation = (*LedgerEntryMutation)(nil)

// ledgerentryOption allows management of the mutation configuration using functional options.
type ledgerentryOption func(*LedgerEntryMutation)

// newLedgerEntryMutation creates new mutation for the LedgerEntry entity.
func newLedgerEntryMutation(c config, op Op, opts ...ledgerentryOption) *LedgerEntryMutation {
	m := &LedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLedgerEntryID sets the ID field of the mutation.
func withLedgerEntryID(id string) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*LedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLedgerEntry sets the old LedgerEntry of the mutation.
func withLedgerEntry(node *LedgerEntry) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		m.oldValue = func(context.Context) (*LedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LedgerEntry entities.
func (m *LedgerEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LedgerEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LedgerEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LedgerEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LedgerEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LedgerEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetCreditType sets the "credit_type" field.
func (m *LedgerEntryMutation) SetCreditType(lt ledgerentry.CreditType) {
	m.credit_type = &lt
}

// CreditType returns the value of the "credit_type" field in the mutation.
func (m *LedgerEntryMutation) CreditType() (r ledgerentry.CreditType, exists bool) {
	v := m.credit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditType returns the old "credit_type" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCreditType(ctx context.Context) (v ledgerentry.CreditType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditType: %w", err)
	}
	return oldValue.CreditType, nil
}

// ResetCreditType resets all changes to the "credit_type" field.
func (m *LedgerEntryMutation) ResetCreditType() {
	m.credit_type = nil
}

// SetDirection sets the "direction" field.
func (m *LedgerEntryMutation) SetDirection(l ledgerentry.Direction) {
	m.direction = &l
}

// Direction returns the value of the "direction" field in the mutation.
func (m *LedgerEntryMutation) Direction() (r ledgerentry.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldDirection(ctx context.Context) (v ledgerentry.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *LedgerEntryMutation) ResetDirection() {
	m.direction = nil
}

// SetAmount sets the "amount" field.
func (m *LedgerEntryMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *LedgerEntryMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *LedgerEntryMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *LedgerEntryMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *LedgerEntryMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *LedgerEntryMutation) SetBalanceAfter(i int64) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *LedgerEntryMutation) BalanceAfter() (r int64, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldBalanceAfter(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *LedgerEntryMutation) AddBalanceAfter(i int64) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *LedgerEntryMutation) AddedBalanceAfter() (r int64, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *LedgerEntryMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// SetTotalBalanceAfter sets the "total_balance_after" field.
func (m *LedgerEntryMutation) SetTotalBalanceAfter(i int64) {
	m.total_balance_after = &i
	m.addtotal_balance_after = nil
}

// TotalBalanceAfter returns the value of the "total_balance_after" field in the mutation.
func (m *LedgerEntryMutation) TotalBalanceAfter() (r int64, exists bool) {
	v := m.total_balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBalanceAfter returns the old "total_balance_after" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldTotalBalanceAfter(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBalanceAfter: %w", err)
	}
	return oldValue.TotalBalanceAfter, nil
}

// AddTotalBalanceAfter adds i to the "total_balance_after" field.
func (m *LedgerEntryMutation) AddTotalBalanceAfter(i int64) {
	if m.addtotal_balance_after != nil {
		*m.addtotal_balance_after += i
	} else {
		m.addtotal_balance_after = &i
	}
}

// AddedTotalBalanceAfter returns the value that was added to the "total_balance_after" field in this mutation.
func (m *LedgerEntryMutation) AddedTotalBalanceAfter() (r int64, exists bool) {
	v := m.addtotal_balance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalBalanceAfter resets all changes to the "total_balance_after" field.
func (m *LedgerEntryMutation) ResetTotalBalanceAfter() {
	m.total_balance_after = nil
	m.addtotal_balance_after = nil
}

// SetSource sets the "source" field.
func (m *LedgerEntryMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LedgerEntryMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LedgerEntryMutation) ResetSource() {
	m.source = nil
}

// SetReferenceID sets the "reference_id" field.
func (m *LedgerEntryMutation) SetReferenceID(s string) {
	m.reference_id = &s
}

// ReferenceID returns the value of the "reference_id" field in the mutation.
func (m *LedgerEntryMutation) ReferenceID() (r string, exists bool) {
	v := m.reference_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceID returns the old "reference_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldReferenceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceID: %w", err)
	}
	return oldValue.ReferenceID, nil
}

// ClearReferenceID clears the value of the "reference_id" field.
func (m *LedgerEntryMutation) ClearReferenceID() {
	m.reference_id = nil
	m.clearedFields[ledgerentry.FieldReferenceID] = struct{}{}
}

// ReferenceIDCleared returns if the "reference_id" field was cleared in this mutation.
func (m *LedgerEntryMutation) ReferenceIDCleared() bool {
	_, ok := m.clearedFields[ledgerentry.FieldReferenceID]
	return ok
}

// ResetReferenceID resets all changes to the "reference_id" field.
func (m *LedgerEntryMutation) ResetReferenceID() {
	m.reference_id = nil
	delete(m.clearedFields, ledgerentry.FieldReferenceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *LedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LedgerEntryMutation builder.
func (m *LedgerEntryMutation) Where(ps ...predicate.LedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LedgerEntry).
func (m *LedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, ledgerentry.FieldUserID)
	}
	if m.credit_type != nil {
		fields = append(fields, ledgerentry.FieldCreditType)
	}
	if m.direction != nil {
		fields = append(fields, ledgerentry.FieldDirection)
	}
	if m.amount != nil {
		fields = append(fields, ledgerentry.FieldAmount)
	}
	if m.balance_after != nil {
		fields = append(fields, ledgerentry.FieldBalanceAfter)
	}
	if m.total_balance_after != nil {
		fields = append(fields, ledgerentry.FieldTotalBalanceAfter)
	}
	if m.source != nil {
		fields = append(fields, ledgerentry.FieldSource)
	}
	if m.reference_id != nil {
		fields = append(fields, ledgerentry.FieldReferenceID)
	}
	if m.created_at != nil {
		fields = append(fields, ledgerentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldUserID:
		return m.UserID()
	case ledgerentry.FieldCreditType:
		return m.CreditType()
	case ledgerentry.FieldDirection:
		return m.Direction()
	case ledgerentry.FieldAmount:
		return m.Amount()
	case ledgerentry.FieldBalanceAfter:
		return m.BalanceAfter()
	case ledgerentry.FieldTotalBalanceAfter:
		return m.TotalBalanceAfter()
	case ledgerentry.FieldSource:
		return m.Source()
	case ledgerentry.FieldReferenceID:
		return m.ReferenceID()
	case ledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ledgerentry.FieldUserID:
		return m.OldUserID(ctx)
	case ledgerentry.FieldCreditType:
		return m.OldCreditType(ctx)
	case ledgerentry.FieldDirection:
		return m.OldDirection(ctx)
	case ledgerentry.FieldAmount:
		return m.OldAmount(ctx)
	case ledgerentry.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case ledgerentry.FieldTotalBalanceAfter:
		return m.OldTotalBalanceAfter(ctx)
	case ledgerentry.FieldSource:
		return m.OldSource(ctx)
	case ledgerentry.FieldReferenceID:
		return m.OldReferenceID(ctx)
	case ledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case ledgerentry.FieldCreditType:
		v, ok := value.(ledgerentry.CreditType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditType(v)
		return nil
	case ledgerentry.FieldDirection:
		v, ok := value.(ledgerentry.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case ledgerentry.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case ledgerentry.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case ledgerentry.FieldTotalBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBalanceAfter(v)
		return nil
	case ledgerentry.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case ledgerentry.FieldReferenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceID(v)
		return nil
	case ledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, ledgerentry.FieldAmount)
	}
	if m.addbalance_after != nil {
		fields = append(fields, ledgerentry.FieldBalanceAfter)
	}
	if m.addtotal_balance_after != nil {
		fields = append(fields, ledgerentry.FieldTotalBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldAmount:
		return m.AddedAmount()
	case ledgerentry.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	case ledgerentry.FieldTotalBalanceAfter:
		return m.AddedTotalBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case ledgerentry.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	case ledgerentry.FieldTotalBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LedgerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ledgerentry.FieldReferenceID) {
		fields = append(fields, ledgerentry.FieldReferenceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ClearField(name string) error {
	switch name {
	case ledgerentry.FieldReferenceID:
		m.ClearReferenceID()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ResetField(name string) error {
	switch name {
	case ledgerentry.FieldUserID:
		m.ResetUserID()
		return nil
	case ledgerentry.FieldCreditType:
		m.ResetCreditType()
		return nil
	case ledgerentry.FieldDirection:
		m.ResetDirection()
		return nil
	case ledgerentry.FieldAmount:
		m.ResetAmount()
		return nil
	case ledgerentry.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case ledgerentry.FieldTotalBalanceAfter:
		m.ResetTotalBalanceAfter()
		return nil
	case ledgerentry.FieldSource:
		m.ResetSource()
		return nil
	case ledgerentry.FieldReferenceID:
		m.ResetReferenceID()
		return nil
	case ledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LedgerEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LedgerEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LedgerEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LedgerEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LedgerEntry edge %s", name)
}

// ScheduledTaskMutation represents an operation that mutates the ScheduledTask nodes in the graph.
type ScheduledTaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	agent_id            *string
	session_id          *string
	topic_id            *string
	prompt              *string
	schedule_type       *scheduledtask.ScheduleType
	interval_seconds    *int64
	addinterval_seconds *int64
	next_fire_at        *time.Time
	run_count           *int
	addrun_count        *int
	max_runs            *int
	addmax_runs         *int
	status              *scheduledtask.Status
	external_task_id    *string
	pod_id              *string
	last_run_at         *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ScheduledTask, error)
	predicates          []predicate.ScheduledTask
}

var _ ent.Mutation = (*ScheduledTaskMutation)(nil)

// scheduledtaskOption allows management of the mutation configuration using functional options.
type scheduledtaskOption func(*ScheduledTaskMutation)

// newScheduledTaskMutation creates new mutation for the ScheduledTask entity.
func newScheduledTaskMutation(c config, op Op, opts ...scheduledtaskOption) *ScheduledTaskMutation {
	m := &ScheduledTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledTaskID sets the ID field of the mutation.
func withScheduledTaskID(id string) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledTask
		)
		m.oldValue = func(ctx context.Context) (*ScheduledTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledTask sets the old ScheduledTask of the mutation.
func withScheduledTask(node *ScheduledTask) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		m.oldValue = func(context.Context) (*ScheduledTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledTask entities.
func (m *ScheduledTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ScheduledTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScheduledTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScheduledTaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ScheduledTaskMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ScheduledTaskMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ScheduledTaskMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ScheduledTaskMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScheduledTaskMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ScheduledTaskMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[scheduledtask.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ScheduledTaskMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ScheduledTaskMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, scheduledtask.FieldSessionID)
}

// SetTopicID sets the "topic_id" field.
func (m *ScheduledTaskMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ScheduledTaskMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldTopicID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *ScheduledTaskMutation) ClearTopicID() {
	m.topic_id = nil
	m.clearedFields[scheduledtask.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *ScheduledTaskMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ScheduledTaskMutation) ResetTopicID() {
	m.topic_id = nil
	delete(m.clearedFields, scheduledtask.FieldTopicID)
}

// SetPrompt sets the "prompt" field.
func (m *ScheduledTaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ScheduledTaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ScheduledTaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetScheduleType sets the "schedule_type" field.
func (m *ScheduledTaskMutation) SetScheduleType(st scheduledtask.ScheduleType) {
	m.schedule_type = &st
}

// ScheduleType returns the value of the "schedule_type" field in the mutation.
func (m *ScheduledTaskMutation) ScheduleType() (r scheduledtask.ScheduleType, exists bool) {
	v := m.schedule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleType returns the old "schedule_type" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldScheduleType(ctx context.Context) (v scheduledtask.ScheduleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleType: %w", err)
	}
	return oldValue.ScheduleType, nil
}

// ResetScheduleType resets all changes to the "schedule_type" field.
func (m *ScheduledTaskMutation) ResetScheduleType() {
	m.schedule_type = nil
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (m *ScheduledTaskMutation) SetIntervalSeconds(i int64) {
	m.interval_seconds = &i
	m.addinterval_seconds = nil
}

// IntervalSeconds returns the value of the "interval_seconds" field in the mutation.
func (m *ScheduledTaskMutation) IntervalSeconds() (r int64, exists bool) {
	v := m.interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalSeconds returns the old "interval_seconds" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldIntervalSeconds(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalSeconds: %w", err)
	}
	return oldValue.IntervalSeconds, nil
}

// AddIntervalSeconds adds i to the "interval_seconds" field.
func (m *ScheduledTaskMutation) AddIntervalSeconds(i int64) {
	if m.addinterval_seconds != nil {
		*m.addinterval_seconds += i
	} else {
		m.addinterval_seconds = &i
	}
}

// AddedIntervalSeconds returns the value that was added to the "interval_seconds" field in this mutation.
func (m *ScheduledTaskMutation) AddedIntervalSeconds() (r int64, exists bool) {
	v := m.addinterval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalSeconds resets all changes to the "interval_seconds" field.
func (m *ScheduledTaskMutation) ResetIntervalSeconds() {
	m.interval_seconds = nil
	m.addinterval_seconds = nil
}

// SetNextFireAt sets the "next_fire_at" field.
func (m *ScheduledTaskMutation) SetNextFireAt(t time.Time) {
	m.next_fire_at = &t
}

// NextFireAt returns the value of the "next_fire_at" field in the mutation.
func (m *ScheduledTaskMutation) NextFireAt() (r time.Time, exists bool) {
	v := m.next_fire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextFireAt returns the old "next_fire_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNextFireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextFireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextFireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextFireAt: %w", err)
	}
	return oldValue.NextFireAt, nil
}

// ResetNextFireAt resets all changes to the "next_fire_at" field.
func (m *ScheduledTaskMutation) ResetNextFireAt() {
	m.next_fire_at = nil
}

// SetRunCount sets the "run_count" field.
func (m *ScheduledTaskMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *ScheduledTaskMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *ScheduledTaskMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *ScheduledTaskMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *ScheduledTaskMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetMaxRuns sets the "max_runs" field.
func (m *ScheduledTaskMutation) SetMaxRuns(i int) {
	m.max_runs = &i
	m.addmax_runs = nil
}

// MaxRuns returns the value of the "max_runs" field in the mutation.
func (m *ScheduledTaskMutation) MaxRuns() (r int, exists bool) {
	v := m.max_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRuns returns the old "max_runs" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldMaxRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRuns: %w", err)
	}
	return oldValue.MaxRuns, nil
}

// AddMaxRuns adds i to the "max_runs" field.
func (m *ScheduledTaskMutation) AddMaxRuns(i int) {
	if m.addmax_runs != nil {
		*m.addmax_runs += i
	} else {
		m.addmax_runs = &i
	}
}

// AddedMaxRuns returns the value that was added to the "max_runs" field in this mutation.
func (m *ScheduledTaskMutation) AddedMaxRuns() (r int, exists bool) {
	v := m.addmax_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRuns resets all changes to the "max_runs" field.
func (m *ScheduledTaskMutation) ResetMaxRuns() {
	m.max_runs = nil
	m.addmax_runs = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledTaskMutation) SetStatus(s scheduledtask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledTaskMutation) Status() (r scheduledtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldStatus(ctx context.Context) (v scheduledtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledTaskMutation) ResetStatus() {
	m.status = nil
}

// SetExternalTaskID sets the "external_task_id" field.
func (m *ScheduledTaskMutation) SetExternalTaskID(s string) {
	m.external_task_id = &s
}

// ExternalTaskID returns the value of the "external_task_id" field in the mutation.
func (m *ScheduledTaskMutation) ExternalTaskID() (r string, exists bool) {
	v := m.external_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalTaskID returns the old "external_task_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldExternalTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalTaskID: %w", err)
	}
	return oldValue.ExternalTaskID, nil
}

// ClearExternalTaskID clears the value of the "external_task_id" field.
func (m *ScheduledTaskMutation) ClearExternalTaskID() {
	m.external_task_id = nil
	m.clearedFields[scheduledtask.FieldExternalTaskID] = struct{}{}
}

// ExternalTaskIDCleared returns if the "external_task_id" field was cleared in this mutation.
func (m *ScheduledTaskMutation) ExternalTaskIDCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldExternalTaskID]
	return ok
}

// ResetExternalTaskID resets all changes to the "external_task_id" field.
func (m *ScheduledTaskMutation) ResetExternalTaskID() {
	m.external_task_id = nil
	delete(m.clearedFields, scheduledtask.FieldExternalTaskID)
}

// SetPodID sets the "pod_id" field.
func (m *ScheduledTaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ScheduledTaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ScheduledTaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[scheduledtask.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ScheduledTaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ScheduledTaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, scheduledtask.FieldPodID)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduledTaskMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduledTaskMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduledTaskMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[scheduledtask.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduledTaskMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldLastRunAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledTaskMutation builder.
func (m *ScheduledTaskMutation) Where(ps ...predicate.ScheduledTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledTask).
func (m *ScheduledTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledTaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, scheduledtask.FieldUserID)
	}
	if m.agent_id != nil {
		fields = append(fields, scheduledtask.FieldAgentID)
	}
	if m.session_id != nil {
		fields = append(fields, scheduledtask.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, scheduledtask.FieldTopicID)
	}
	if m.prompt != nil {
		fields = append(fields, scheduledtask.FieldPrompt)
	}
	if m.schedule_type != nil {
		fields = append(fields, scheduledtask.FieldScheduleType)
	}
	if m.interval_seconds != nil {
		fields = append(fields, scheduledtask.FieldIntervalSeconds)
	}
	if m.next_fire_at != nil {
		fields = append(fields, scheduledtask.FieldNextFireAt)
	}
	if m.run_count != nil {
		fields = append(fields, scheduledtask.FieldRunCount)
	}
	if m.max_runs != nil {
		fields = append(fields, scheduledtask.FieldMaxRuns)
	}
	if m.status != nil {
		fields = append(fields, scheduledtask.FieldStatus)
	}
	if m.external_task_id != nil {
		fields = append(fields, scheduledtask.FieldExternalTaskID)
	}
	if m.pod_id != nil {
		fields = append(fields, scheduledtask.FieldPodID)
	}
	if m.last_run_at != nil {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldUserID:
		return m.UserID()
	case scheduledtask.FieldAgentID:
		return m.AgentID()
	case scheduledtask.FieldSessionID:
		return m.SessionID()
	case scheduledtask.FieldTopicID:
		return m.TopicID()
	case scheduledtask.FieldPrompt:
		return m.Prompt()
	case scheduledtask.FieldScheduleType:
		return m.ScheduleType()
	case scheduledtask.FieldIntervalSeconds:
		return m.IntervalSeconds()
	case scheduledtask.FieldNextFireAt:
		return m.NextFireAt()
	case scheduledtask.FieldRunCount:
		return m.RunCount()
	case scheduledtask.FieldMaxRuns:
		return m.MaxRuns()
	case scheduledtask.FieldStatus:
		return m.Status()
	case scheduledtask.FieldExternalTaskID:
		return m.ExternalTaskID()
	case scheduledtask.FieldPodID:
		return m.PodID()
	case scheduledtask.FieldLastRunAt:
		return m.LastRunAt()
	case scheduledtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledtask.FieldUserID:
		return m.OldUserID(ctx)
	case scheduledtask.FieldAgentID:
		return m.OldAgentID(ctx)
	case scheduledtask.FieldSessionID:
		return m.OldSessionID(ctx)
	case scheduledtask.FieldTopicID:
		return m.OldTopicID(ctx)
	case scheduledtask.FieldPrompt:
		return m.OldPrompt(ctx)
	case scheduledtask.FieldScheduleType:
		return m.OldScheduleType(ctx)
	case scheduledtask.FieldIntervalSeconds:
		return m.OldIntervalSeconds(ctx)
	case scheduledtask.FieldNextFireAt:
		return m.OldNextFireAt(ctx)
	case scheduledtask.FieldRunCount:
		return m.OldRunCount(ctx)
	case scheduledtask.FieldMaxRuns:
		return m.OldMaxRuns(ctx)
	case scheduledtask.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledtask.FieldExternalTaskID:
		return m.OldExternalTaskID(ctx)
	case scheduledtask.FieldPodID:
		return m.OldPodID(ctx)
	case scheduledtask.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scheduledtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scheduledtask.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case scheduledtask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scheduledtask.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case scheduledtask.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case scheduledtask.FieldScheduleType:
		v, ok := value.(scheduledtask.ScheduleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleType(v)
		return nil
	case scheduledtask.FieldIntervalSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalSeconds(v)
		return nil
	case scheduledtask.FieldNextFireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextFireAt(v)
		return nil
	case scheduledtask.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case scheduledtask.FieldMaxRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRuns(v)
		return nil
	case scheduledtask.FieldStatus:
		v, ok := value.(scheduledtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledtask.FieldExternalTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalTaskID(v)
		return nil
	case scheduledtask.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case scheduledtask.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scheduledtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledTaskMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_seconds != nil {
		fields = append(fields, scheduledtask.FieldIntervalSeconds)
	}
	if m.addrun_count != nil {
		fields = append(fields, scheduledtask.FieldRunCount)
	}
	if m.addmax_runs != nil {
		fields = append(fields, scheduledtask.FieldMaxRuns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldIntervalSeconds:
		return m.AddedIntervalSeconds()
	case scheduledtask.FieldRunCount:
		return m.AddedRunCount()
	case scheduledtask.FieldMaxRuns:
		return m.AddedMaxRuns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldIntervalSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalSeconds(v)
		return nil
	case scheduledtask.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	case scheduledtask.FieldMaxRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRuns(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledtask.FieldSessionID) {
		fields = append(fields, scheduledtask.FieldSessionID)
	}
	if m.FieldCleared(scheduledtask.FieldTopicID) {
		fields = append(fields, scheduledtask.FieldTopicID)
	}
	if m.FieldCleared(scheduledtask.FieldExternalTaskID) {
		fields = append(fields, scheduledtask.FieldExternalTaskID)
	}
	if m.FieldCleared(scheduledtask.FieldPodID) {
		fields = append(fields, scheduledtask.FieldPodID)
	}
	if m.FieldCleared(scheduledtask.FieldLastRunAt) {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ClearField(name string) error {
	switch name {
	case scheduledtask.FieldSessionID:
		m.ClearSessionID()
		return nil
	case scheduledtask.FieldTopicID:
		m.ClearTopicID()
		return nil
	case scheduledtask.FieldExternalTaskID:
		m.ClearExternalTaskID()
		return nil
	case scheduledtask.FieldPodID:
		m.ClearPodID()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ResetField(name string) error {
	switch name {
	case scheduledtask.FieldUserID:
		m.ResetUserID()
		return nil
	case scheduledtask.FieldAgentID:
		m.ResetAgentID()
		return nil
	case scheduledtask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scheduledtask.FieldTopicID:
		m.ResetTopicID()
		return nil
	case scheduledtask.FieldPrompt:
		m.ResetPrompt()
		return nil
	case scheduledtask.FieldScheduleType:
		m.ResetScheduleType()
		return nil
	case scheduledtask.FieldIntervalSeconds:
		m.ResetIntervalSeconds()
		return nil
	case scheduledtask.FieldNextFireAt:
		m.ResetNextFireAt()
		return nil
	case scheduledtask.FieldRunCount:
		m.ResetRunCount()
		return nil
	case scheduledtask.FieldMaxRuns:
		m.ResetMaxRuns()
		return nil
	case scheduledtask.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledtask.FieldExternalTaskID:
		m.ResetExternalTaskID()
		return nil
	case scheduledtask.FieldPodID:
		m.ResetPodID()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scheduledtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	agent_id          *string
	marketplace_id    *string
	developer_user_id *string
	config_editable   *bool
	title             *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Session, error)
	predicates        []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *SessionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SessionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SessionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetMarketplaceID sets the "marketplace_id" field.
func (m *SessionMutation) SetMarketplaceID(s string) {
	m.marketplace_id = &s
}

// MarketplaceID returns the value of the "marketplace_id" field in the mutation.
func (m *SessionMutation) MarketplaceID() (r string, exists bool) {
	v := m.marketplace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceID returns the old "marketplace_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMarketplaceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceID: %w", err)
	}
	return oldValue.MarketplaceID, nil
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (m *SessionMutation) ClearMarketplaceID() {
	m.marketplace_id = nil
	m.clearedFields[session.FieldMarketplaceID] = struct{}{}
}

// MarketplaceIDCleared returns if the "marketplace_id" field was cleared in this mutation.
func (m *SessionMutation) MarketplaceIDCleared() bool {
	_, ok := m.clearedFields[session.FieldMarketplaceID]
	return ok
}

// ResetMarketplaceID resets all changes to the "marketplace_id" field.
func (m *SessionMutation) ResetMarketplaceID() {
	m.marketplace_id = nil
	delete(m.clearedFields, session.FieldMarketplaceID)
}

// SetDeveloperUserID sets the "developer_user_id" field.
func (m *SessionMutation) SetDeveloperUserID(s string) {
	m.developer_user_id = &s
}

// DeveloperUserID returns the value of the "developer_user_id" field in the mutation.
func (m *SessionMutation) DeveloperUserID() (r string, exists bool) {
	v := m.developer_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeveloperUserID returns the old "developer_user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDeveloperUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeveloperUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeveloperUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeveloperUserID: %w", err)
	}
	return oldValue.DeveloperUserID, nil
}

// ClearDeveloperUserID clears the value of the "developer_user_id" field.
func (m *SessionMutation) ClearDeveloperUserID() {
	m.developer_user_id = nil
	m.clearedFields[session.FieldDeveloperUserID] = struct{}{}
}

// DeveloperUserIDCleared returns if the "developer_user_id" field was cleared in this mutation.
func (m *SessionMutation) DeveloperUserIDCleared() bool {
	_, ok := m.clearedFields[session.FieldDeveloperUserID]
	return ok
}

// ResetDeveloperUserID resets all changes to the "developer_user_id" field.
func (m *SessionMutation) ResetDeveloperUserID() {
	m.developer_user_id = nil
	delete(m.clearedFields, session.FieldDeveloperUserID)
}

// SetConfigEditable sets the "config_editable" field.
func (m *SessionMutation) SetConfigEditable(b bool) {
	m.config_editable = &b
}

// ConfigEditable returns the value of the "config_editable" field in the mutation.
func (m *SessionMutation) ConfigEditable() (r bool, exists bool) {
	v := m.config_editable
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigEditable returns the old "config_editable" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldConfigEditable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigEditable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigEditable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigEditable: %w", err)
	}
	return oldValue.ConfigEditable, nil
}

// ResetConfigEditable resets all changes to the "config_editable" field.
func (m *SessionMutation) ResetConfigEditable() {
	m.config_editable = nil
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[session.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[session.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, session.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.agent_id != nil {
		fields = append(fields, session.FieldAgentID)
	}
	if m.marketplace_id != nil {
		fields = append(fields, session.FieldMarketplaceID)
	}
	if m.developer_user_id != nil {
		fields = append(fields, session.FieldDeveloperUserID)
	}
	if m.config_editable != nil {
		fields = append(fields, session.FieldConfigEditable)
	}
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldAgentID:
		return m.AgentID()
	case session.FieldMarketplaceID:
		return m.MarketplaceID()
	case session.FieldDeveloperUserID:
		return m.DeveloperUserID()
	case session.FieldConfigEditable:
		return m.ConfigEditable()
	case session.FieldTitle:
		return m.Title()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldAgentID:
		return m.OldAgentID(ctx)
	case session.FieldMarketplaceID:
		return m.OldMarketplaceID(ctx)
	case session.FieldDeveloperUserID:
		return m.OldDeveloperUserID(ctx)
	case session.FieldConfigEditable:
		return m.OldConfigEditable(ctx)
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case session.FieldMarketplaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceID(v)
		return nil
	case session.FieldDeveloperUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeveloperUserID(v)
		return nil
	case session.FieldConfigEditable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigEditable(v)
		return nil
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldMarketplaceID) {
		fields = append(fields, session.FieldMarketplaceID)
	}
	if m.FieldCleared(session.FieldDeveloperUserID) {
		fields = append(fields, session.FieldDeveloperUserID)
	}
	if m.FieldCleared(session.FieldTitle) {
		fields = append(fields, session.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldMarketplaceID:
		m.ClearMarketplaceID()
		return nil
	case session.FieldDeveloperUserID:
		m.ClearDeveloperUserID()
		return nil
	case session.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldAgentID:
		m.ResetAgentID()
		return nil
	case session.FieldMarketplaceID:
		m.ResetMarketplaceID()
		return nil
	case session.FieldDeveloperUserID:
		m.ResetDeveloperUserID()
		return nil
	case session.FieldConfigEditable:
		m.ResetConfigEditable()
		return nil
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op              Op
	typ             string
	id              *string
	session_id      *string
	user_id         *string
	title           *string
	last_message_at *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Topic, error)
	predicates      []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id string) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TopicMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TopicMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TopicMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *TopicMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *TopicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TopicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TopicMutation) ResetTitle() {
	m.title = nil
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *TopicMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *TopicMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *TopicMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[topic.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *TopicMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[topic.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *TopicMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, topic.FieldLastMessageAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, topic.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, topic.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, topic.FieldTitle)
	}
	if m.last_message_at != nil {
		fields = append(fields, topic.FieldLastMessageAt)
	}
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldSessionID:
		return m.SessionID()
	case topic.FieldUserID:
		return m.UserID()
	case topic.FieldTitle:
		return m.Title()
	case topic.FieldLastMessageAt:
		return m.LastMessageAt()
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldSessionID:
		return m.OldSessionID(ctx)
	case topic.FieldUserID:
		return m.OldUserID(ctx)
	case topic.FieldTitle:
		return m.OldTitle(ctx)
	case topic.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case topic.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case topic.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldLastMessageAt) {
		fields = append(fields, topic.FieldLastMessageAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldSessionID:
		m.ResetSessionID()
		return nil
	case topic.FieldUserID:
		m.ResetUserID()
		return nil
	case topic.FieldTitle:
		m.ResetTitle()
		return nil
	case topic.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Topic edge %s", name)
}

// WalletMutation represents an operation that mutates the Wallet nodes in the graph.
type WalletMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	free              *int64
	addfree           *int64
	paid              *int64
	addpaid           *int64
	earned            *int64
	addearned         *int64
	virtual_total     *int64
	addvirtual_total  *int64
	total_credited    *int64
	addtotal_credited *int64
	total_consumed    *int64
	addtotal_consumed *int64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Wallet, error)
	predicates        []predicate.Wallet
}

var _ ent.Mutation = (*WalletMutation)(nil)

// walletOption allows management of the mutation configuration using functional options.
type walletOption func(*WalletMutation)

// newWalletMutation creates new mutation for the Wallet entity.
func newWalletMutation(c config, op Op, opts ...walletOption) *WalletMutation {
	m := &WalletMutation{
		config:        c,
		op:            op,
		typ:           TypeWallet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWalletID sets the ID field of the mutation.
func withWalletID(id string) walletOption {
	return func(m *WalletMutation) {
		var (
			err   error
			once  sync.Once
			value *Wallet
		)
		m.oldValue = func(ctx context.Context) (*Wallet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Wallet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallet sets the old Wallet of the mutation.
func withWallet(node *Wallet) walletOption {
	return func(m *WalletMutation) {
		m.oldValue = func(context.Context) (*Wallet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WalletMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WalletMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Wallet entities.
func (m *WalletMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WalletMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WalletMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Wallet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WalletMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WalletMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WalletMutation) ResetUserID() {
	m.user_id = nil
}

// SetFree sets the "free" field.
func (m *WalletMutation) SetFree(i int64) {
	m.free = &i
	m.addfree = nil
}

// Free returns the value of the "free" field in the mutation.
func (m *WalletMutation) Free() (r int64, exists bool) {
	v := m.free
	if v == nil {
		return
	}
	return *v, true
}

// OldFree returns the old "free" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldFree(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFree is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFree requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFree: %w", err)
	}
	return oldValue.Free, nil
}

// AddFree adds i to the "free" field.
func (m *WalletMutation) AddFree(i int64) {
	if m.addfree != nil {
		*m.addfree += i
	} else {
		m.addfree = &i
	}
}

// AddedFree returns the value that was added to the "free" field in this mutation.
func (m *WalletMutation) AddedFree() (r int64, exists bool) {
	v := m.addfree
	if v == nil {
		return
	}
	return *v, true
}

// ResetFree resets all changes to the "free" field.
func (m *WalletMutation) ResetFree() {
	m.free = nil
	m.addfree = nil
}

// SetPaid sets the "paid" field.
func (m *WalletMutation) SetPaid(i int64) {
	m.paid = &i
	m.addpaid = nil
}

// Paid returns the value of the "paid" field in the mutation.
func (m *WalletMutation) Paid() (r int64, exists bool) {
	v := m.paid
	if v == nil {
		return
	}
	return *v, true
}

// OldPaid returns the old "paid" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaid: %w", err)
	}
	return oldValue.Paid, nil
}

// AddPaid adds i to the "paid" field.
func (m *WalletMutation) AddPaid(i int64) {
	if m.addpaid != nil {
		*m.addpaid += i
	} else {
		m.addpaid = &i
	}
}

// AddedPaid returns the value that was added to the "paid" field in this mutation.
func (m *WalletMutation) AddedPaid() (r int64, exists bool) {
	v := m.addpaid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaid resets all changes to the "paid" field.
func (m *WalletMutation) ResetPaid() {
	m.paid = nil
	m.addpaid = nil
}

// SetEarned sets the "earned" field.
func (m *WalletMutation) SetEarned(i int64) {
	m.earned = &i
	m.addearned = nil
}

// Earned returns the value of the "earned" field in the mutation.
func (m *WalletMutation) Earned() (r int64, exists bool) {
	v := m.earned
	if v == nil {
		return
	}
	return *v, true
}

// OldEarned returns the old "earned" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldEarned(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarned: %w", err)
	}
	return oldValue.Earned, nil
}

// AddEarned adds i to the "earned" field.
func (m *WalletMutation) AddEarned(i int64) {
	if m.addearned != nil {
		*m.addearned += i
	} else {
		m.addearned = &i
	}
}

// AddedEarned returns the value that was added to the "earned" field in this mutation.
func (m *WalletMutation) AddedEarned() (r int64, exists bool) {
	v := m.addearned
	if v == nil {
		return
	}
	return *v, true
}

// ResetEarned resets all changes to the "earned" field.
func (m *WalletMutation) ResetEarned() {
	m.earned = nil
	m.addearned = nil
}

// SetVirtualTotal sets the "virtual_total" field.
func (m *WalletMutation) SetVirtualTotal(i int64) {
	m.virtual_total = &i
	m.addvirtual_total = nil
}

// VirtualTotal returns the value of the "virtual_total" field in the mutation.
func (m *WalletMutation) VirtualTotal() (r int64, exists bool) {
	v := m.virtual_total
	if v == nil {
		return
	}
	return *v, true
}

// OldVirtualTotal returns the old "virtual_total" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldVirtualTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVirtualTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVirtualTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVirtualTotal: %w", err)
	}
	return oldValue.VirtualTotal, nil
}

// AddVirtualTotal adds i to the "virtual_total" field.
func (m *WalletMutation) AddVirtualTotal(i int64) {
	if m.addvirtual_total != nil {
		*m.addvirtual_total += i
	} else {
		m.addvirtual_total = &i
	}
}

// AddedVirtualTotal returns the value that was added to the "virtual_total" field in this mutation.
func (m *WalletMutation) AddedVirtualTotal() (r int64, exists bool) {
	v := m.addvirtual_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetVirtualTotal resets all changes to the "virtual_total" field.
func (m *WalletMutation) ResetVirtualTotal() {
	m.virtual_total = nil
	m.addvirtual_total = nil
}

// SetTotalCredited sets the "total_credited" field.
func (m *WalletMutation) SetTotalCredited(i int64) {
	m.total_credited = &i
	m.addtotal_credited = nil
}

// TotalCredited returns the value of the "total_credited" field in the mutation.
func (m *WalletMutation) TotalCredited() (r int64, exists bool) {
	v := m.total_credited
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCredited returns the old "total_credited" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldTotalCredited(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCredited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCredited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCredited: %w", err)
	}
	return oldValue.TotalCredited, nil
}

// AddTotalCredited adds i to the "total_credited" field.
func (m *WalletMutation) AddTotalCredited(i int64) {
	if m.addtotal_credited != nil {
		*m.addtotal_credited += i
	} else {
		m.addtotal_credited = &i
	}
}

// AddedTotalCredited returns the value that was added to the "total_credited" field in this mutation.
func (m *WalletMutation) AddedTotalCredited() (r int64, exists bool) {
	v := m.addtotal_credited
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCredited resets all changes to the "total_credited" field.
func (m *WalletMutation) ResetTotalCredited() {
	m.total_credited = nil
	m.addtotal_credited = nil
}

// SetTotalConsumed sets the "total_consumed" field.
func (m *WalletMutation) SetTotalConsumed(i int64) {
	m.total_consumed = &i
	m.addtotal_consumed = nil
}

// TotalConsumed returns the value of the "total_consumed" field in the mutation.
func (m *WalletMutation) TotalConsumed() (r int64, exists bool) {
	v := m.total_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalConsumed returns the old "total_consumed" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldTotalConsumed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalConsumed: %w", err)
	}
	return oldValue.TotalConsumed, nil
}

// AddTotalConsumed adds i to the "total_consumed" field.
func (m *WalletMutation) AddTotalConsumed(i int64) {
	if m.addtotal_consumed != nil {
		*m.addtotal_consumed += i
	} else {
		m.addtotal_consumed = &i
	}
}

// AddedTotalConsumed returns the value that was added to the "total_consumed" field in this mutation.
func (m *WalletMutation) AddedTotalConsumed() (r int64, exists bool) {
	v := m.addtotal_consumed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalConsumed resets all changes to the "total_consumed" field.
func (m *WalletMutation) ResetTotalConsumed() {
	m.total_consumed = nil
	m.addtotal_consumed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WalletMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WalletMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WalletMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WalletMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WalletMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Wallet entity.
// If the Wallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WalletMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WalletMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WalletMutation builder.
func (m *WalletMutation) Where(ps ...predicate.Wallet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WalletMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WalletMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Wallet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WalletMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WalletMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Wallet).
func (m *WalletMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WalletMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, wallet.FieldUserID)
	}
	if m.free != nil {
		fields = append(fields, wallet.FieldFree)
	}
	if m.paid != nil {
		fields = append(fields, wallet.FieldPaid)
	}
	if m.earned != nil {
		fields = append(fields, wallet.FieldEarned)
	}
	if m.virtual_total != nil {
		fields = append(fields, wallet.FieldVirtualTotal)
	}
	if m.total_credited != nil {
		fields = append(fields, wallet.FieldTotalCredited)
	}
	if m.total_consumed != nil {
		fields = append(fields, wallet.FieldTotalConsumed)
	}
	if m.created_at != nil {
		fields = append(fields, wallet.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wallet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WalletMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallet.FieldUserID:
		return m.UserID()
	case wallet.FieldFree:
		return m.Free()
	case wallet.FieldPaid:
		return m.Paid()
	case wallet.FieldEarned:
		return m.Earned()
	case wallet.FieldVirtualTotal:
		return m.VirtualTotal()
	case wallet.FieldTotalCredited:
		return m.TotalCredited()
	case wallet.FieldTotalConsumed:
		return m.TotalConsumed()
	case wallet.FieldCreatedAt:
		return m.CreatedAt()
	case wallet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WalletMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallet.FieldUserID:
		return m.OldUserID(ctx)
	case wallet.FieldFree:
		return m.OldFree(ctx)
	case wallet.FieldPaid:
		return m.OldPaid(ctx)
	case wallet.FieldEarned:
		return m.OldEarned(ctx)
	case wallet.FieldVirtualTotal:
		return m.OldVirtualTotal(ctx)
	case wallet.FieldTotalCredited:
		return m.OldTotalCredited(ctx)
	case wallet.FieldTotalConsumed:
		return m.OldTotalConsumed(ctx)
	case wallet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wallet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Wallet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WalletMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallet.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case wallet.FieldFree:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFree(v)
		return nil
	case wallet.FieldPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaid(v)
		return nil
	case wallet.FieldEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarned(v)
		return nil
	case wallet.FieldVirtualTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVirtualTotal(v)
		return nil
	case wallet.FieldTotalCredited:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCredited(v)
		return nil
	case wallet.FieldTotalConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalConsumed(v)
		return nil
	case wallet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wallet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Wallet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WalletMutation) AddedFields() []string {
	var fields []string
	if m.addfree != nil {
		fields = append(fields, wallet.FieldFree)
	}
	if m.addpaid != nil {
		fields = append(fields, wallet.FieldPaid)
	}
	if m.addearned != nil {
		fields = append(fields, wallet.FieldEarned)
	}
	if m.addvirtual_total != nil {
		fields = append(fields, wallet.FieldVirtualTotal)
	}
	if m.addtotal_credited != nil {
		fields = append(fields, wallet.FieldTotalCredited)
	}
	if m.addtotal_consumed != nil {
		fields = append(fields, wallet.FieldTotalConsumed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WalletMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallet.FieldFree:
		return m.AddedFree()
	case wallet.FieldPaid:
		return m.AddedPaid()
	case wallet.FieldEarned:
		return m.AddedEarned()
	case wallet.FieldVirtualTotal:
		return m.AddedVirtualTotal()
	case wallet.FieldTotalCredited:
		return m.AddedTotalCredited()
	case wallet.FieldTotalConsumed:
		return m.AddedTotalConsumed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WalletMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallet.FieldFree:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFree(v)
		return nil
	case wallet.FieldPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaid(v)
		return nil
	case wallet.FieldEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEarned(v)
		return nil
	case wallet.FieldVirtualTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVirtualTotal(v)
		return nil
	case wallet.FieldTotalCredited:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCredited(v)
		return nil
	case wallet.FieldTotalConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown Wallet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WalletMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WalletMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WalletMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Wallet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WalletMutation) ResetField(name string) error {
	switch name {
	case wallet.FieldUserID:
		m.ResetUserID()
		return nil
	case wallet.FieldFree:
		m.ResetFree()
		return nil
	case wallet.FieldPaid:
		m.ResetPaid()
		return nil
	case wallet.FieldEarned:
		m.ResetEarned()
		return nil
	case wallet.FieldVirtualTotal:
		m.ResetVirtualTotal()
		return nil
	case wallet.FieldTotalCredited:
		m.ResetTotalCredited()
		return nil
	case wallet.FieldTotalConsumed:
		m.ResetTotalConsumed()
		return nil
	case wallet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wallet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Wallet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WalletMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WalletMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WalletMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WalletMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WalletMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WalletMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WalletMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Wallet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WalletMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Wallet edge %s", name)
}
