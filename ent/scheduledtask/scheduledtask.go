// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduledtask type in the database.
	Label = "scheduled_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldScheduleType holds the string denoting the schedule_type field in the database.
	FieldScheduleType = "schedule_type"
	// FieldIntervalSeconds holds the string denoting the interval_seconds field in the database.
	FieldIntervalSeconds = "interval_seconds"
	// FieldNextFireAt holds the string denoting the next_fire_at field in the database.
	FieldNextFireAt = "next_fire_at"
	// FieldRunCount holds the string denoting the run_count field in the database.
	FieldRunCount = "run_count"
	// FieldMaxRuns holds the string denoting the max_runs field in the database.
	FieldMaxRuns = "max_runs"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExternalTaskID holds the string denoting the external_task_id field in the database.
	FieldExternalTaskID = "external_task_id"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the scheduledtask in the database.
	Table = "scheduled_tasks"
)

// Columns holds all SQL columns for scheduledtask fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAgentID,
	FieldSessionID,
	FieldTopicID,
	FieldPrompt,
	FieldScheduleType,
	FieldIntervalSeconds,
	FieldNextFireAt,
	FieldRunCount,
	FieldMaxRuns,
	FieldStatus,
	FieldExternalTaskID,
	FieldPodID,
	FieldLastRunAt,
	FieldCreatedAt,
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
	// DefaultIntervalSeconds holds the default value on creation for the "interval_seconds" field.
	DefaultIntervalSeconds int64
	// DefaultRunCount holds the default value on creation for the "run_count" field.
	DefaultRunCount int
	// DefaultMaxRuns holds the default value on creation for the "max_runs" field.
	DefaultMaxRuns int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ScheduleType defines the type for the "schedule_type" enum field.
type ScheduleType string

// ScheduleType values.
const (
	ScheduleTypeOnce     ScheduleType = "once"
	ScheduleTypeInterval ScheduleType = "interval"
)

func (st ScheduleType) String() string {
	return string(st)
}

// ScheduleTypeValidator is a validator for the "schedule_type" field enum values. It is called by the builders before save.
func ScheduleTypeValidator(st ScheduleType) error {
	switch st {
	case ScheduleTypeOnce, ScheduleTypeInterval:
		return nil
	default:
		return fmt.Errorf("scheduledtask: invalid enum value for schedule_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("scheduledtask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScheduledTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByScheduleType orders the results by the schedule_type field.
func ByScheduleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleType, opts...).ToFunc()
}

// ByIntervalSeconds orders the results by the interval_seconds field.
func ByIntervalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalSeconds, opts...).ToFunc()
}

// ByNextFireAt orders the results by the next_fire_at field.
func ByNextFireAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextFireAt, opts...).ToFunc()
}

// ByRunCount orders the results by the run_count field.
func ByRunCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunCount, opts...).ToFunc()
}

// ByMaxRuns orders the results by the max_runs field.
func ByMaxRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRuns, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExternalTaskID orders the results by the external_task_id field.
func ByExternalTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalTaskID, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
