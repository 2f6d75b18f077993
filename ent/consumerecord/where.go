// Code generated by ent, DO NOT EDIT.

package consumerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldSessionID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTopicID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldMessageID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldAmount, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldCostUsd, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldModel, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTotalTokens, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTier, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolName, v))
}

// ToolCallID applies equality check predicate on the "tool_call_id" field. It's identical to ToolCallIDEQ.
func ToolCallID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolCallID, v))
}

// ToolStatus applies equality check predicate on the "tool_status" field. It's identical to ToolStatusEQ.
func ToolStatus(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolStatus, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldAgentID, v))
}

// MarketplaceID applies equality check predicate on the "marketplace_id" field. It's identical to MarketplaceIDEQ.
func MarketplaceID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldMarketplaceID, v))
}

// DeveloperUserID applies equality check predicate on the "developer_user_id" field. It's identical to DeveloperUserIDEQ.
func DeveloperUserID(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldDeveloperUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SettledAt applies equality check predicate on the "settled_at" field. It's identical to SettledAtEQ.
func SettledAt(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldSettledAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldTopicID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldMessageID, v))
}

// RecordTypeEQ applies the EQ predicate on the "record_type" field.
func RecordTypeEQ(v RecordType) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldRecordType, v))
}

// RecordTypeNEQ applies the NEQ predicate on the "record_type" field.
func RecordTypeNEQ(v RecordType) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldRecordType, v))
}

// RecordTypeIn applies the In predicate on the "record_type" field.
func RecordTypeIn(vs ...RecordType) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldRecordType, vs...))
}

// RecordTypeNotIn applies the NotIn predicate on the "record_type" field.
func RecordTypeNotIn(vs ...RecordType) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldRecordType, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldAmount, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldCostUsd, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldModel, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldTotalTokens, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldTier, v))
}

// TierIsNil applies the IsNil predicate on the "tier" field.
func TierIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldTier))
}

// TierNotNil applies the NotNil predicate on the "tier" field.
func TierNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldTier))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldTier, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldToolName, v))
}

// ToolCallIDEQ applies the EQ predicate on the "tool_call_id" field.
func ToolCallIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolCallID, v))
}

// ToolCallIDNEQ applies the NEQ predicate on the "tool_call_id" field.
func ToolCallIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldToolCallID, v))
}

// ToolCallIDIn applies the In predicate on the "tool_call_id" field.
func ToolCallIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldToolCallID, vs...))
}

// ToolCallIDNotIn applies the NotIn predicate on the "tool_call_id" field.
func ToolCallIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldToolCallID, vs...))
}

// ToolCallIDGT applies the GT predicate on the "tool_call_id" field.
func ToolCallIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldToolCallID, v))
}

// ToolCallIDGTE applies the GTE predicate on the "tool_call_id" field.
func ToolCallIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldToolCallID, v))
}

// ToolCallIDLT applies the LT predicate on the "tool_call_id" field.
func ToolCallIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldToolCallID, v))
}

// ToolCallIDLTE applies the LTE predicate on the "tool_call_id" field.
func ToolCallIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldToolCallID, v))
}

// ToolCallIDContains applies the Contains predicate on the "tool_call_id" field.
func ToolCallIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldToolCallID, v))
}

// ToolCallIDHasPrefix applies the HasPrefix predicate on the "tool_call_id" field.
func ToolCallIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldToolCallID, v))
}

// ToolCallIDHasSuffix applies the HasSuffix predicate on the "tool_call_id" field.
func ToolCallIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldToolCallID, v))
}

// ToolCallIDIsNil applies the IsNil predicate on the "tool_call_id" field.
func ToolCallIDIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldToolCallID))
}

// ToolCallIDNotNil applies the NotNil predicate on the "tool_call_id" field.
func ToolCallIDNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldToolCallID))
}

// ToolCallIDEqualFold applies the EqualFold predicate on the "tool_call_id" field.
func ToolCallIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldToolCallID, v))
}

// ToolCallIDContainsFold applies the ContainsFold predicate on the "tool_call_id" field.
func ToolCallIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldToolCallID, v))
}

// ToolStatusEQ applies the EQ predicate on the "tool_status" field.
func ToolStatusEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldToolStatus, v))
}

// ToolStatusNEQ applies the NEQ predicate on the "tool_status" field.
func ToolStatusNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldToolStatus, v))
}

// ToolStatusIn applies the In predicate on the "tool_status" field.
func ToolStatusIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldToolStatus, vs...))
}

// ToolStatusNotIn applies the NotIn predicate on the "tool_status" field.
func ToolStatusNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldToolStatus, vs...))
}

// ToolStatusGT applies the GT predicate on the "tool_status" field.
func ToolStatusGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldToolStatus, v))
}

// ToolStatusGTE applies the GTE predicate on the "tool_status" field.
func ToolStatusGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldToolStatus, v))
}

// ToolStatusLT applies the LT predicate on the "tool_status" field.
func ToolStatusLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldToolStatus, v))
}

// ToolStatusLTE applies the LTE predicate on the "tool_status" field.
func ToolStatusLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldToolStatus, v))
}

// ToolStatusContains applies the Contains predicate on the "tool_status" field.
func ToolStatusContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldToolStatus, v))
}

// ToolStatusHasPrefix applies the HasPrefix predicate on the "tool_status" field.
func ToolStatusHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldToolStatus, v))
}

// ToolStatusHasSuffix applies the HasSuffix predicate on the "tool_status" field.
func ToolStatusHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldToolStatus, v))
}

// ToolStatusIsNil applies the IsNil predicate on the "tool_status" field.
func ToolStatusIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldToolStatus))
}

// ToolStatusNotNil applies the NotNil predicate on the "tool_status" field.
func ToolStatusNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldToolStatus))
}

// ToolStatusEqualFold applies the EqualFold predicate on the "tool_status" field.
func ToolStatusEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldToolStatus, v))
}

// ToolStatusContainsFold applies the ContainsFold predicate on the "tool_status" field.
func ToolStatusContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldToolStatus, v))
}

// ConsumeStateEQ applies the EQ predicate on the "consume_state" field.
func ConsumeStateEQ(v ConsumeState) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldConsumeState, v))
}

// ConsumeStateNEQ applies the NEQ predicate on the "consume_state" field.
func ConsumeStateNEQ(v ConsumeState) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldConsumeState, v))
}

// ConsumeStateIn applies the In predicate on the "consume_state" field.
func ConsumeStateIn(vs ...ConsumeState) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldConsumeState, vs...))
}

// ConsumeStateNotIn applies the NotIn predicate on the "consume_state" field.
func ConsumeStateNotIn(vs ...ConsumeState) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldConsumeState, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// MarketplaceIDEQ applies the EQ predicate on the "marketplace_id" field.
func MarketplaceIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldMarketplaceID, v))
}

// MarketplaceIDNEQ applies the NEQ predicate on the "marketplace_id" field.
func MarketplaceIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldMarketplaceID, v))
}

// MarketplaceIDIn applies the In predicate on the "marketplace_id" field.
func MarketplaceIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDNotIn applies the NotIn predicate on the "marketplace_id" field.
func MarketplaceIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDGT applies the GT predicate on the "marketplace_id" field.
func MarketplaceIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldMarketplaceID, v))
}

// MarketplaceIDGTE applies the GTE predicate on the "marketplace_id" field.
func MarketplaceIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldMarketplaceID, v))
}

// MarketplaceIDLT applies the LT predicate on the "marketplace_id" field.
func MarketplaceIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldMarketplaceID, v))
}

// MarketplaceIDLTE applies the LTE predicate on the "marketplace_id" field.
func MarketplaceIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldMarketplaceID, v))
}

// MarketplaceIDContains applies the Contains predicate on the "marketplace_id" field.
func MarketplaceIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldMarketplaceID, v))
}

// MarketplaceIDHasPrefix applies the HasPrefix predicate on the "marketplace_id" field.
func MarketplaceIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldMarketplaceID, v))
}

// MarketplaceIDHasSuffix applies the HasSuffix predicate on the "marketplace_id" field.
func MarketplaceIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldMarketplaceID, v))
}

// MarketplaceIDIsNil applies the IsNil predicate on the "marketplace_id" field.
func MarketplaceIDIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldMarketplaceID))
}

// MarketplaceIDNotNil applies the NotNil predicate on the "marketplace_id" field.
func MarketplaceIDNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldMarketplaceID))
}

// MarketplaceIDEqualFold applies the EqualFold predicate on the "marketplace_id" field.
func MarketplaceIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldMarketplaceID, v))
}

// MarketplaceIDContainsFold applies the ContainsFold predicate on the "marketplace_id" field.
func MarketplaceIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldMarketplaceID, v))
}

// DeveloperUserIDEQ applies the EQ predicate on the "developer_user_id" field.
func DeveloperUserIDEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDNEQ applies the NEQ predicate on the "developer_user_id" field.
func DeveloperUserIDNEQ(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDIn applies the In predicate on the "developer_user_id" field.
func DeveloperUserIDIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDNotIn applies the NotIn predicate on the "developer_user_id" field.
func DeveloperUserIDNotIn(vs ...string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDGT applies the GT predicate on the "developer_user_id" field.
func DeveloperUserIDGT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldDeveloperUserID, v))
}

// DeveloperUserIDGTE applies the GTE predicate on the "developer_user_id" field.
func DeveloperUserIDGTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDLT applies the LT predicate on the "developer_user_id" field.
func DeveloperUserIDLT(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldDeveloperUserID, v))
}

// DeveloperUserIDLTE applies the LTE predicate on the "developer_user_id" field.
func DeveloperUserIDLTE(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDContains applies the Contains predicate on the "developer_user_id" field.
func DeveloperUserIDContains(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContains(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasPrefix applies the HasPrefix predicate on the "developer_user_id" field.
func DeveloperUserIDHasPrefix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasPrefix(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasSuffix applies the HasSuffix predicate on the "developer_user_id" field.
func DeveloperUserIDHasSuffix(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldHasSuffix(FieldDeveloperUserID, v))
}

// DeveloperUserIDIsNil applies the IsNil predicate on the "developer_user_id" field.
func DeveloperUserIDIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldDeveloperUserID))
}

// DeveloperUserIDNotNil applies the NotNil predicate on the "developer_user_id" field.
func DeveloperUserIDNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldDeveloperUserID))
}

// DeveloperUserIDEqualFold applies the EqualFold predicate on the "developer_user_id" field.
func DeveloperUserIDEqualFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEqualFold(FieldDeveloperUserID, v))
}

// DeveloperUserIDContainsFold applies the ContainsFold predicate on the "developer_user_id" field.
func DeveloperUserIDContainsFold(v string) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldContainsFold(FieldDeveloperUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// SettledAtEQ applies the EQ predicate on the "settled_at" field.
func SettledAtEQ(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldEQ(FieldSettledAt, v))
}

// SettledAtNEQ applies the NEQ predicate on the "settled_at" field.
func SettledAtNEQ(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNEQ(FieldSettledAt, v))
}

// SettledAtIn applies the In predicate on the "settled_at" field.
func SettledAtIn(vs ...time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIn(FieldSettledAt, vs...))
}

// SettledAtNotIn applies the NotIn predicate on the "settled_at" field.
func SettledAtNotIn(vs ...time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotIn(FieldSettledAt, vs...))
}

// SettledAtGT applies the GT predicate on the "settled_at" field.
func SettledAtGT(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGT(FieldSettledAt, v))
}

// SettledAtGTE applies the GTE predicate on the "settled_at" field.
func SettledAtGTE(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldGTE(FieldSettledAt, v))
}

// SettledAtLT applies the LT predicate on the "settled_at" field.
func SettledAtLT(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLT(FieldSettledAt, v))
}

// SettledAtLTE applies the LTE predicate on the "settled_at" field.
func SettledAtLTE(v time.Time) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldLTE(FieldSettledAt, v))
}

// SettledAtIsNil applies the IsNil predicate on the "settled_at" field.
func SettledAtIsNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldIsNull(FieldSettledAt))
}

// SettledAtNotNil applies the NotNil predicate on the "settled_at" field.
func SettledAtNotNil() predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.FieldNotNull(FieldSettledAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConsumeRecord) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConsumeRecord) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConsumeRecord) predicate.ConsumeRecord {
	return predicate.ConsumeRecord(sql.NotPredicates(p))
}
