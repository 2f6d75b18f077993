// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentloom/loom/ent/scheduledtask"
)

// ScheduledTaskCreate is the builder for creating a ScheduledTask entity.
type ScheduledTaskCreate struct {
	config
	mutation *ScheduledTaskMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ScheduledTaskCreate) SetUserID(v string) *ScheduledTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ScheduledTaskCreate) SetAgentID(v string) *ScheduledTaskCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScheduledTaskCreate) SetSessionID(v string) *ScheduledTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableSessionID(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ScheduledTaskCreate) SetTopicID(v string) *ScheduledTaskCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableTopicID(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ScheduledTaskCreate) SetPrompt(v string) *ScheduledTaskCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *ScheduledTaskCreate) SetScheduleType(v scheduledtask.ScheduleType) *ScheduledTaskCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_c *ScheduledTaskCreate) SetIntervalSeconds(v int64) *ScheduledTaskCreate {
	_c.mutation.SetIntervalSeconds(v)
	return _c
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableIntervalSeconds(v *int64) *ScheduledTaskCreate {
	if v != nil {
		_c.SetIntervalSeconds(*v)
	}
	return _c
}

// SetNextFireAt sets the "next_fire_at" field.
func (_c *ScheduledTaskCreate) SetNextFireAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetNextFireAt(v)
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *ScheduledTaskCreate) SetRunCount(v int) *ScheduledTaskCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableRunCount(v *int) *ScheduledTaskCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetMaxRuns sets the "max_runs" field.
func (_c *ScheduledTaskCreate) SetMaxRuns(v int) *ScheduledTaskCreate {
	_c.mutation.SetMaxRuns(v)
	return _c
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableMaxRuns(v *int) *ScheduledTaskCreate {
	if v != nil {
		_c.SetMaxRuns(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledTaskCreate) SetStatus(v scheduledtask.Status) *ScheduledTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableStatus(v *scheduledtask.Status) *ScheduledTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExternalTaskID sets the "external_task_id" field.
func (_c *ScheduledTaskCreate) SetExternalTaskID(v string) *ScheduledTaskCreate {
	_c.mutation.SetExternalTaskID(v)
	return _c
}

// SetNillableExternalTaskID sets the "external_task_id" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableExternalTaskID(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetExternalTaskID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ScheduledTaskCreate) SetPodID(v string) *ScheduledTaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillablePodID(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledTaskCreate) SetLastRunAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledTaskCreate) SetCreatedAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableCreatedAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledTaskCreate) SetID(v string) *ScheduledTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_c *ScheduledTaskCreate) Mutation() *ScheduledTaskMutation {
	return _c.mutation
}

// Save creates the ScheduledTask in the database.
func (_c *ScheduledTaskCreate) Save(ctx context.Context) (*ScheduledTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledTaskCreate) SaveX(ctx context.Context) *ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledTaskCreate) defaults() {
	if _, ok := _c.mutation.IntervalSeconds(); !ok {
		v := scheduledtask.DefaultIntervalSeconds
		_c.mutation.SetIntervalSeconds(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := scheduledtask.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.MaxRuns(); !ok {
		v := scheduledtask.DefaultMaxRuns
		_c.mutation.SetMaxRuns(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledTaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScheduledTask.user_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ScheduledTask.agent_id"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ScheduledTask.prompt"`)}
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		return &ValidationError{Name: "schedule_type", err: errors.New(`ent: missing required field "ScheduledTask.schedule_type"`)}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := scheduledtask.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalSeconds(); !ok {
		return &ValidationError{Name: "interval_seconds", err: errors.New(`ent: missing required field "ScheduledTask.interval_seconds"`)}
	}
	if _, ok := _c.mutation.NextFireAt(); !ok {
		return &ValidationError{Name: "next_fire_at", err: errors.New(`ent: missing required field "ScheduledTask.next_fire_at"`)}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "ScheduledTask.run_count"`)}
	}
	if _, ok := _c.mutation.MaxRuns(); !ok {
		return &ValidationError{Name: "max_runs", err: errors.New(`ent: missing required field "ScheduledTask.max_runs"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledTask.created_at"`)}
	}
	return nil
}

func (_c *ScheduledTaskCreate) sqlSave(ctx context.Context) (*ScheduledTask, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledTaskCreate) createSpec() (*ScheduledTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledtask.Table, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scheduledtask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(scheduledtask.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scheduledtask.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(scheduledtask.FieldTopicID, field.TypeString, value)
		_node.TopicID = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(scheduledtask.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledtask.FieldIntervalSeconds, field.TypeInt64, value)
		_node.IntervalSeconds = value
	}
	if value, ok := _c.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledtask.FieldNextFireAt, field.TypeTime, value)
		_node.NextFireAt = value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(scheduledtask.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.MaxRuns(); ok {
		_spec.SetField(scheduledtask.FieldMaxRuns, field.TypeInt, value)
		_node.MaxRuns = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExternalTaskID(); ok {
		_spec.SetField(scheduledtask.FieldExternalTaskID, field.TypeString, value)
		_node.ExternalTaskID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(scheduledtask.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ScheduledTaskCreateBulk is the builder for creating many ScheduledTask entities in bulk.
type ScheduledTaskCreateBulk struct {
	config
	err      error
	builders []*ScheduledTaskCreate
}

// Save creates the ScheduledTask entities in the database.
func (_c *ScheduledTaskCreateBulk) Save(ctx context.Context) ([]*ScheduledTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledTaskMutation)
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
func (_c *ScheduledTaskCreateBulk) SaveX(ctx context.Context) []*ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
