// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/consumerecord"
)

// ConsumeRecord is the model entity for the ConsumeRecord schema.
type ConsumeRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Null until the assistant message exists; settled by time-scoped sweep
	MessageID *string `json:"message_id,omitempty"`
	// RecordType holds the value of the "record_type" field.
	RecordType consumerecord.RecordType `json:"record_type,omitempty"`
	// Credits
	Amount int64 `json:"amount,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier *string `json:"tier,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName *string `json:"tool_name,omitempty"`
	// ToolCallID holds the value of the "tool_call_id" field.
	ToolCallID *string `json:"tool_call_id,omitempty"`
	// success or failed
	ToolStatus *string `json:"tool_status,omitempty"`
	// ConsumeState holds the value of the "consume_state" field.
	ConsumeState consumerecord.ConsumeState `json:"consume_state,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// MarketplaceID holds the value of the "marketplace_id" field.
	MarketplaceID *string `json:"marketplace_id,omitempty"`
	// DeveloperUserID holds the value of the "developer_user_id" field.
	DeveloperUserID *string `json:"developer_user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SettledAt holds the value of the "settled_at" field.
	SettledAt    *time.Time `json:"settled_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConsumeRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consumerecord.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case consumerecord.FieldAmount, consumerecord.FieldInputTokens, consumerecord.FieldOutputTokens, consumerecord.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case consumerecord.FieldID, consumerecord.FieldUserID, consumerecord.FieldSessionID, consumerecord.FieldTopicID, consumerecord.FieldMessageID, consumerecord.FieldRecordType, consumerecord.FieldModel, consumerecord.FieldTier, consumerecord.FieldToolName, consumerecord.FieldToolCallID, consumerecord.FieldToolStatus, consumerecord.FieldConsumeState, consumerecord.FieldAgentID, consumerecord.FieldMarketplaceID, consumerecord.FieldDeveloperUserID:
			values[i] = new(sql.NullString)
		case consumerecord.FieldCreatedAt, consumerecord.FieldSettledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConsumeRecord fields.
func (_m *ConsumeRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consumerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case consumerecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case consumerecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case consumerecord.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case consumerecord.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(string)
				*_m.MessageID = value.String
			}
		case consumerecord.FieldRecordType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_type", values[i])
			} else if value.Valid {
				_m.RecordType = consumerecord.RecordType(value.String)
			}
		case consumerecord.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case consumerecord.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case consumerecord.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case consumerecord.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case consumerecord.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case consumerecord.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case consumerecord.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = new(string)
				*_m.Tier = value.String
			}
		case consumerecord.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = new(string)
				*_m.ToolName = value.String
			}
		case consumerecord.FieldToolCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_call_id", values[i])
			} else if value.Valid {
				_m.ToolCallID = new(string)
				*_m.ToolCallID = value.String
			}
		case consumerecord.FieldToolStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_status", values[i])
			} else if value.Valid {
				_m.ToolStatus = new(string)
				*_m.ToolStatus = value.String
			}
		case consumerecord.FieldConsumeState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consume_state", values[i])
			} else if value.Valid {
				_m.ConsumeState = consumerecord.ConsumeState(value.String)
			}
		case consumerecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case consumerecord.FieldMarketplaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marketplace_id", values[i])
			} else if value.Valid {
				_m.MarketplaceID = new(string)
				*_m.MarketplaceID = value.String
			}
		case consumerecord.FieldDeveloperUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field developer_user_id", values[i])
			} else if value.Valid {
				_m.DeveloperUserID = new(string)
				*_m.DeveloperUserID = value.String
			}
		case consumerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case consumerecord.FieldSettledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field settled_at", values[i])
			} else if value.Valid {
				_m.SettledAt = new(time.Time)
				*_m.SettledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConsumeRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ConsumeRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConsumeRecord.
// Note that you need to call ConsumeRecord.Unwrap() before calling this method if this ConsumeRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConsumeRecord) Update() *ConsumeRecordUpdateOne {
	return NewConsumeRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConsumeRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConsumeRecord) Unwrap() *ConsumeRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConsumeRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConsumeRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ConsumeRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("record_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordType))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	if v := _m.Tier; v != nil {
		builder.WriteString("tier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolName; v != nil {
		builder.WriteString("tool_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolCallID; v != nil {
		builder.WriteString("tool_call_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolStatus; v != nil {
		builder.WriteString("tool_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("consume_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsumeState))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MarketplaceID; v != nil {
		builder.WriteString("marketplace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeveloperUserID; v != nil {
		builder.WriteString("developer_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SettledAt; v != nil {
		builder.WriteString("settled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConsumeRecords is a parsable slice of ConsumeRecord.
type ConsumeRecords []*ConsumeRecord
