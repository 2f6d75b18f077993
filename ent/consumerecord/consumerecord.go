// Code generated by ent, DO NOT EDIT.

package consumerecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the consumerecord type in the database.
	Label = "consume_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldRecordType holds the string denoting the record_type field in the database.
	FieldRecordType = "record_type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolCallID holds the string denoting the tool_call_id field in the database.
	FieldToolCallID = "tool_call_id"
	// FieldToolStatus holds the string denoting the tool_status field in the database.
	FieldToolStatus = "tool_status"
	// FieldConsumeState holds the string denoting the consume_state field in the database.
	FieldConsumeState = "consume_state"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldMarketplaceID holds the string denoting the marketplace_id field in the database.
	FieldMarketplaceID = "marketplace_id"
	// FieldDeveloperUserID holds the string denoting the developer_user_id field in the database.
	FieldDeveloperUserID = "developer_user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSettledAt holds the string denoting the settled_at field in the database.
	FieldSettledAt = "settled_at"
	// Table holds the table name of the consumerecord in the database.
	Table = "consume_records"
)

// Columns holds all SQL columns for consumerecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionID,
	FieldTopicID,
	FieldMessageID,
	FieldRecordType,
	FieldAmount,
	FieldCostUsd,
	FieldModel,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTotalTokens,
	FieldTier,
	FieldToolName,
	FieldToolCallID,
	FieldToolStatus,
	FieldConsumeState,
	FieldAgentID,
	FieldMarketplaceID,
	FieldDeveloperUserID,
	FieldCreatedAt,
	FieldSettledAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCostUsd holds the default value on creation for the "cost_usd" field.
	DefaultCostUsd float64
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RecordType defines the type for the "record_type" enum field.
type RecordType string

// RecordType values.
const (
	RecordTypeLlm      RecordType = "llm"
	RecordTypeToolCall RecordType = "tool_call"
)

func (rt RecordType) String() string {
	return string(rt)
}

// RecordTypeValidator is a validator for the "record_type" field enum values. It is called by the builders before save.
func RecordTypeValidator(rt RecordType) error {
	switch rt {
	case RecordTypeLlm, RecordTypeToolCall:
		return nil
	default:
		return fmt.Errorf("consumerecord: invalid enum value for record_type field: %q", rt)
	}
}

// ConsumeState defines the type for the "consume_state" enum field.
type ConsumeState string

// ConsumeStatePending is the default value of the ConsumeState enum.
const DefaultConsumeState = ConsumeStatePending

// ConsumeState values.
const (
	ConsumeStatePending ConsumeState = "pending"
	ConsumeStateSuccess ConsumeState = "success"
	ConsumeStateFailed  ConsumeState = "failed"
)

func (cs ConsumeState) String() string {
	return string(cs)
}

// ConsumeStateValidator is a validator for the "consume_state" field enum values. It is called by the builders before save.
func ConsumeStateValidator(cs ConsumeState) error {
	switch cs {
	case ConsumeStatePending, ConsumeStateSuccess, ConsumeStateFailed:
		return nil
	default:
		return fmt.Errorf("consumerecord: invalid enum value for consume_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the ConsumeRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByRecordType orders the results by the record_type field.
func ByRecordType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByToolCallID orders the results by the tool_call_id field.
func ByToolCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCallID, opts...).ToFunc()
}

// ByToolStatus orders the results by the tool_status field.
func ByToolStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolStatus, opts...).ToFunc()
}

// ByConsumeState orders the results by the consume_state field.
func ByConsumeState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumeState, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByMarketplaceID orders the results by the marketplace_id field.
func ByMarketplaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketplaceID, opts...).ToFunc()
}

// ByDeveloperUserID orders the results by the developer_user_id field.
func ByDeveloperUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeveloperUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySettledAt orders the results by the settled_at field.
func BySettledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSettledAt, opts...).ToFunc()
}
