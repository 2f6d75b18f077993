// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/scheduledtask"
)

// ScheduledTask is the model entity for the ScheduledTask schema.
type ScheduledTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Bound on first fire; autonomous runs share one conversation
	SessionID *string `json:"session_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID *string `json:"topic_id,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// ScheduleType holds the value of the "schedule_type" field.
	ScheduleType scheduledtask.ScheduleType `json:"schedule_type,omitempty"`
	// Zero for one-shot tasks
	IntervalSeconds int64 `json:"interval_seconds,omitempty"`
	// NextFireAt holds the value of the "next_fire_at" field.
	NextFireAt time.Time `json:"next_fire_at,omitempty"`
	// RunCount holds the value of the "run_count" field.
	RunCount int `json:"run_count,omitempty"`
	// Zero means unlimited
	MaxRuns int `json:"max_runs,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduledtask.Status `json:"status,omitempty"`
	// ExternalTaskID holds the value of the "external_task_id" field.
	ExternalTaskID *string `json:"external_task_id,omitempty"`
	// Claiming pod, for multi-replica
	PodID *string `json:"pod_id,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldIntervalSeconds, scheduledtask.FieldRunCount, scheduledtask.FieldMaxRuns:
			values[i] = new(sql.NullInt64)
		case scheduledtask.FieldID, scheduledtask.FieldUserID, scheduledtask.FieldAgentID, scheduledtask.FieldSessionID, scheduledtask.FieldTopicID, scheduledtask.FieldPrompt, scheduledtask.FieldScheduleType, scheduledtask.FieldStatus, scheduledtask.FieldExternalTaskID, scheduledtask.FieldPodID:
			values[i] = new(sql.NullString)
		case scheduledtask.FieldNextFireAt, scheduledtask.FieldLastRunAt, scheduledtask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledTask fields.
func (_m *ScheduledTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledtask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case scheduledtask.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case scheduledtask.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case scheduledtask.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(string)
				*_m.TopicID = value.String
			}
		case scheduledtask.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case scheduledtask.FieldScheduleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_type", values[i])
			} else if value.Valid {
				_m.ScheduleType = scheduledtask.ScheduleType(value.String)
			}
		case scheduledtask.FieldIntervalSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_seconds", values[i])
			} else if value.Valid {
				_m.IntervalSeconds = value.Int64
			}
		case scheduledtask.FieldNextFireAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_fire_at", values[i])
			} else if value.Valid {
				_m.NextFireAt = value.Time
			}
		case scheduledtask.FieldRunCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field run_count", values[i])
			} else if value.Valid {
				_m.RunCount = int(value.Int64)
			}
		case scheduledtask.FieldMaxRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_runs", values[i])
			} else if value.Valid {
				_m.MaxRuns = int(value.Int64)
			}
		case scheduledtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledtask.Status(value.String)
			}
		case scheduledtask.FieldExternalTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_task_id", values[i])
			} else if value.Valid {
				_m.ExternalTaskID = new(string)
				*_m.ExternalTaskID = value.String
			}
		case scheduledtask.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case scheduledtask.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case scheduledtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledTask.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledTask.
// Note that you need to call ScheduledTask.Unwrap() before calling this method if this ScheduledTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledTask) Update() *ScheduledTaskUpdateOne {
	return NewScheduledTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledTask) Unwrap() *ScheduledTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledTask) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TopicID; v != nil {
		builder.WriteString("topic_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("schedule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleType))
	builder.WriteString(", ")
	builder.WriteString("interval_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalSeconds))
	builder.WriteString(", ")
	builder.WriteString("next_fire_at=")
	builder.WriteString(_m.NextFireAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunCount))
	builder.WriteString(", ")
	builder.WriteString("max_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRuns))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ExternalTaskID; v != nil {
		builder.WriteString("external_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledTasks is a parsable slice of ScheduledTask.
type ScheduledTasks []*ScheduledTask
