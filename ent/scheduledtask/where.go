// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUserID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldAgentID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldSessionID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTopicID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// IntervalSeconds applies equality check predicate on the "interval_seconds" field. It's identical to IntervalSecondsEQ.
func IntervalSeconds(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldIntervalSeconds, v))
}

// NextFireAt applies equality check predicate on the "next_fire_at" field. It's identical to NextFireAtEQ.
func NextFireAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextFireAt, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldRunCount, v))
}

// MaxRuns applies equality check predicate on the "max_runs" field. It's identical to MaxRunsEQ.
func MaxRuns(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldMaxRuns, v))
}

// ExternalTaskID applies equality check predicate on the "external_task_id" field. It's identical to ExternalTaskIDEQ.
func ExternalTaskID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldExternalTaskID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPodID, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldUserID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldAgentID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldTopicID))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldTopicID, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldPrompt, v))
}

// ScheduleTypeEQ applies the EQ predicate on the "schedule_type" field.
func ScheduleTypeEQ(v ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldScheduleType, v))
}

// ScheduleTypeNEQ applies the NEQ predicate on the "schedule_type" field.
func ScheduleTypeNEQ(v ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldScheduleType, v))
}

// ScheduleTypeIn applies the In predicate on the "schedule_type" field.
func ScheduleTypeIn(vs ...ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldScheduleType, vs...))
}

// ScheduleTypeNotIn applies the NotIn predicate on the "schedule_type" field.
func ScheduleTypeNotIn(vs ...ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldScheduleType, vs...))
}

// IntervalSecondsEQ applies the EQ predicate on the "interval_seconds" field.
func IntervalSecondsEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldIntervalSeconds, v))
}

// IntervalSecondsNEQ applies the NEQ predicate on the "interval_seconds" field.
func IntervalSecondsNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldIntervalSeconds, v))
}

// IntervalSecondsIn applies the In predicate on the "interval_seconds" field.
func IntervalSecondsIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldIntervalSeconds, vs...))
}

// IntervalSecondsNotIn applies the NotIn predicate on the "interval_seconds" field.
func IntervalSecondsNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldIntervalSeconds, vs...))
}

// IntervalSecondsGT applies the GT predicate on the "interval_seconds" field.
func IntervalSecondsGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldIntervalSeconds, v))
}

// IntervalSecondsGTE applies the GTE predicate on the "interval_seconds" field.
func IntervalSecondsGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldIntervalSeconds, v))
}

// IntervalSecondsLT applies the LT predicate on the "interval_seconds" field.
func IntervalSecondsLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldIntervalSeconds, v))
}

// IntervalSecondsLTE applies the LTE predicate on the "interval_seconds" field.
func IntervalSecondsLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldIntervalSeconds, v))
}

// NextFireAtEQ applies the EQ predicate on the "next_fire_at" field.
func NextFireAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextFireAt, v))
}

// NextFireAtNEQ applies the NEQ predicate on the "next_fire_at" field.
func NextFireAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldNextFireAt, v))
}

// NextFireAtIn applies the In predicate on the "next_fire_at" field.
func NextFireAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldNextFireAt, vs...))
}

// NextFireAtNotIn applies the NotIn predicate on the "next_fire_at" field.
func NextFireAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldNextFireAt, vs...))
}

// NextFireAtGT applies the GT predicate on the "next_fire_at" field.
func NextFireAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldNextFireAt, v))
}

// NextFireAtGTE applies the GTE predicate on the "next_fire_at" field.
func NextFireAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldNextFireAt, v))
}

// NextFireAtLT applies the LT predicate on the "next_fire_at" field.
func NextFireAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldNextFireAt, v))
}

// NextFireAtLTE applies the LTE predicate on the "next_fire_at" field.
func NextFireAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldNextFireAt, v))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldRunCount, v))
}

// MaxRunsEQ applies the EQ predicate on the "max_runs" field.
func MaxRunsEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldMaxRuns, v))
}

// MaxRunsNEQ applies the NEQ predicate on the "max_runs" field.
func MaxRunsNEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldMaxRuns, v))
}

// MaxRunsIn applies the In predicate on the "max_runs" field.
func MaxRunsIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldMaxRuns, vs...))
}

// MaxRunsNotIn applies the NotIn predicate on the "max_runs" field.
func MaxRunsNotIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldMaxRuns, vs...))
}

// MaxRunsGT applies the GT predicate on the "max_runs" field.
func MaxRunsGT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldMaxRuns, v))
}

// MaxRunsGTE applies the GTE predicate on the "max_runs" field.
func MaxRunsGTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldMaxRuns, v))
}

// MaxRunsLT applies the LT predicate on the "max_runs" field.
func MaxRunsLT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldMaxRuns, v))
}

// MaxRunsLTE applies the LTE predicate on the "max_runs" field.
func MaxRunsLTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldMaxRuns, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldStatus, vs...))
}

// ExternalTaskIDEQ applies the EQ predicate on the "external_task_id" field.
func ExternalTaskIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldExternalTaskID, v))
}

// ExternalTaskIDNEQ applies the NEQ predicate on the "external_task_id" field.
func ExternalTaskIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldExternalTaskID, v))
}

// ExternalTaskIDIn applies the In predicate on the "external_task_id" field.
func ExternalTaskIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldExternalTaskID, vs...))
}

// ExternalTaskIDNotIn applies the NotIn predicate on the "external_task_id" field.
func ExternalTaskIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldExternalTaskID, vs...))
}

// ExternalTaskIDGT applies the GT predicate on the "external_task_id" field.
func ExternalTaskIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldExternalTaskID, v))
}

// ExternalTaskIDGTE applies the GTE predicate on the "external_task_id" field.
func ExternalTaskIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldExternalTaskID, v))
}

// ExternalTaskIDLT applies the LT predicate on the "external_task_id" field.
func ExternalTaskIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldExternalTaskID, v))
}

// ExternalTaskIDLTE applies the LTE predicate on the "external_task_id" field.
func ExternalTaskIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldExternalTaskID, v))
}

// ExternalTaskIDContains applies the Contains predicate on the "external_task_id" field.
func ExternalTaskIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldExternalTaskID, v))
}

// ExternalTaskIDHasPrefix applies the HasPrefix predicate on the "external_task_id" field.
func ExternalTaskIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldExternalTaskID, v))
}

// ExternalTaskIDHasSuffix applies the HasSuffix predicate on the "external_task_id" field.
func ExternalTaskIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldExternalTaskID, v))
}

// ExternalTaskIDIsNil applies the IsNil predicate on the "external_task_id" field.
func ExternalTaskIDIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldExternalTaskID))
}

// ExternalTaskIDNotNil applies the NotNil predicate on the "external_task_id" field.
func ExternalTaskIDNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldExternalTaskID))
}

// ExternalTaskIDEqualFold applies the EqualFold predicate on the "external_task_id" field.
func ExternalTaskIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldExternalTaskID, v))
}

// ExternalTaskIDContainsFold applies the ContainsFold predicate on the "external_task_id" field.
func ExternalTaskIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldExternalTaskID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldPodID, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastRunAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.NotPredicates(p))
}
