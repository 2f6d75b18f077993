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
	"github.com/agentloom/loom/ent/predicate"
	"github.com/agentloom/loom/ent/scheduledtask"
)

// ScheduledTaskUpdate is the builder for updating ScheduledTask entities.
type ScheduledTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdate) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScheduledTaskUpdate) SetSessionID(v string) *ScheduledTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableSessionID(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ScheduledTaskUpdate) ClearSessionID() *ScheduledTaskUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ScheduledTaskUpdate) SetTopicID(v string) *ScheduledTaskUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableTopicID(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ScheduledTaskUpdate) ClearTopicID() *ScheduledTaskUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdate) SetPrompt(v string) *ScheduledTaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillablePrompt(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ScheduledTaskUpdate) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableScheduleType(v *scheduledtask.ScheduleType) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *ScheduledTaskUpdate) SetIntervalSeconds(v int64) *ScheduledTaskUpdate {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableIntervalSeconds(v *int64) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *ScheduledTaskUpdate) AddIntervalSeconds(v int64) *ScheduledTaskUpdate {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduledTaskUpdate) SetNextFireAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableNextFireAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *ScheduledTaskUpdate) SetRunCount(v int) *ScheduledTaskUpdate {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableRunCount(v *int) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *ScheduledTaskUpdate) AddRunCount(v int) *ScheduledTaskUpdate {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *ScheduledTaskUpdate) SetMaxRuns(v int) *ScheduledTaskUpdate {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableMaxRuns(v *int) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *ScheduledTaskUpdate) AddMaxRuns(v int) *ScheduledTaskUpdate {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledTaskUpdate) SetStatus(v scheduledtask.Status) *ScheduledTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableStatus(v *scheduledtask.Status) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalTaskID sets the "external_task_id" field.
func (_u *ScheduledTaskUpdate) SetExternalTaskID(v string) *ScheduledTaskUpdate {
	_u.mutation.SetExternalTaskID(v)
	return _u
}

// SetNillableExternalTaskID sets the "external_task_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableExternalTaskID(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetExternalTaskID(*v)
	}
	return _u
}

// ClearExternalTaskID clears the value of the "external_task_id" field.
func (_u *ScheduledTaskUpdate) ClearExternalTaskID() *ScheduledTaskUpdate {
	_u.mutation.ClearExternalTaskID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ScheduledTaskUpdate) SetPodID(v string) *ScheduledTaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillablePodID(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ScheduledTaskUpdate) ClearPodID() *ScheduledTaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdate) SetLastRunAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdate) ClearLastRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdate) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdate) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scheduledtask.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(scheduledtask.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(scheduledtask.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(scheduledtask.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledtask.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(scheduledtask.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledtask.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(scheduledtask.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(scheduledtask.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(scheduledtask.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(scheduledtask.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalTaskID(); ok {
		_spec.SetField(scheduledtask.FieldExternalTaskID, field.TypeString, value)
	}
	if _u.mutation.ExternalTaskIDCleared() {
		_spec.ClearField(scheduledtask.FieldExternalTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(scheduledtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(scheduledtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledTaskUpdateOne is the builder for updating a single ScheduledTask entity.
type ScheduledTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScheduledTaskUpdateOne) SetSessionID(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableSessionID(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ScheduledTaskUpdateOne) ClearSessionID() *ScheduledTaskUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ScheduledTaskUpdateOne) SetTopicID(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableTopicID(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ScheduledTaskUpdateOne) ClearTopicID() *ScheduledTaskUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdateOne) SetPrompt(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillablePrompt(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ScheduledTaskUpdateOne) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableScheduleType(v *scheduledtask.ScheduleType) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *ScheduledTaskUpdateOne) SetIntervalSeconds(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableIntervalSeconds(v *int64) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *ScheduledTaskUpdateOne) AddIntervalSeconds(v int64) *ScheduledTaskUpdateOne {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduledTaskUpdateOne) SetNextFireAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableNextFireAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *ScheduledTaskUpdateOne) SetRunCount(v int) *ScheduledTaskUpdateOne {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableRunCount(v *int) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *ScheduledTaskUpdateOne) AddRunCount(v int) *ScheduledTaskUpdateOne {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *ScheduledTaskUpdateOne) SetMaxRuns(v int) *ScheduledTaskUpdateOne {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableMaxRuns(v *int) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *ScheduledTaskUpdateOne) AddMaxRuns(v int) *ScheduledTaskUpdateOne {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledTaskUpdateOne) SetStatus(v scheduledtask.Status) *ScheduledTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableStatus(v *scheduledtask.Status) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalTaskID sets the "external_task_id" field.
func (_u *ScheduledTaskUpdateOne) SetExternalTaskID(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetExternalTaskID(v)
	return _u
}

// SetNillableExternalTaskID sets the "external_task_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableExternalTaskID(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetExternalTaskID(*v)
	}
	return _u
}

// ClearExternalTaskID clears the value of the "external_task_id" field.
func (_u *ScheduledTaskUpdateOne) ClearExternalTaskID() *ScheduledTaskUpdateOne {
	_u.mutation.ClearExternalTaskID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ScheduledTaskUpdateOne) SetPodID(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillablePodID(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ScheduledTaskUpdateOne) ClearPodID() *ScheduledTaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetLastRunAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearLastRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdateOne) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdateOne) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledTaskUpdateOne) Select(field string, fields ...string) *ScheduledTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledTask entity.
func (_u *ScheduledTaskUpdateOne) Save(ctx context.Context) (*ScheduledTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) SaveX(ctx context.Context) *ScheduledTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdateOne) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledtask.FieldID)
		for _, f := range fields {
			if !scheduledtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledtask.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scheduledtask.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(scheduledtask.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(scheduledtask.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(scheduledtask.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledtask.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(scheduledtask.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledtask.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(scheduledtask.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(scheduledtask.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(scheduledtask.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(scheduledtask.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalTaskID(); ok {
		_spec.SetField(scheduledtask.FieldExternalTaskID, field.TypeString, value)
	}
	if _u.mutation.ExternalTaskIDCleared() {
		_spec.ClearField(scheduledtask.FieldExternalTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(scheduledtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(scheduledtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	_node = &ScheduledTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
