// Package scheduler fires autonomous agent turns from ScheduledTask rows.
// Multiple replicas poll concurrently; FOR UPDATE SKIP LOCKED makes each due
// task fire exactly once.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/scheduledtask"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/worker"
)

// ErrNoTasksDue is returned by the claim when nothing is ready to fire.
var ErrNoTasksDue = errors.New("no tasks due")

// TurnDispatcher launches one turn. *worker.TurnExecutor satisfies it.
type TurnDispatcher interface {
	Submit(ctx context.Context, input worker.TurnInput) error
}

// Scheduler is the poll-claim-fire loop.
type Scheduler struct {
	podID    string
	client   *ent.Client
	cfg      config.SchedulerConfig
	executor TurnDispatcher
	sessions *services.SessionService
	chat     *services.ChatService
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Scheduler.
func New(podID string, client *ent.Client, cfg config.SchedulerConfig, executor TurnDispatcher, sessions *services.SessionService, chat *services.ChatService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		podID:    podID,
		client:   client,
		cfg:      cfg,
		executor: executor,
		sessions: sessions,
		chat:     chat,
		logger:   logger.With("component", "scheduler", "pod_id", podID),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine. No-op when disabled.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Info("Scheduler disabled")
		return
	}
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the loop to exit and waits for it.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	s.logger.Info("Scheduler started", "poll_interval", s.cfg.PollInterval)

	for {
		select {
		case <-s.stopCh:
			s.logger.Info("Scheduler shutting down")
			return
		case <-ctx.Done():
			return
		default:
			if err := s.pollAndFire(ctx); err != nil {
				if errors.Is(err, ErrNoTasksDue) {
					s.sleep(s.cfg.PollInterval)
					continue
				}
				s.logger.Error("Task processing failed", "error", err)
				s.sleep(time.Second)
			}
		}
	}
}

func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// pollAndFire claims one due task and fires it.
func (s *Scheduler) pollAndFire(ctx context.Context) error {
	task, err := s.claimNextTask(ctx)
	if err != nil {
		return err
	}
	logger := s.logger.With("task_id", task.ID, "user_id", task.UserID)
	logger.Info("Task claimed")

	if err := s.fire(ctx, task, logger); err != nil {
		logger.Error("Task fire failed", "error", err)
		if uErr := s.client.ScheduledTask.UpdateOneID(task.ID).SetStatus(scheduledtask.StatusFailed).Exec(ctx); uErr != nil {
			logger.Error("Failed to mark task failed", "error", uErr)
		}
		return nil
	}
	return s.reschedule(ctx, task, logger)
}

// claimNextTask atomically claims the next due active task using
// FOR UPDATE SKIP LOCKED.
func (s *Scheduler) claimNextTask(ctx context.Context) (*ent.ScheduledTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.ScheduledTask.Query().
		Where(
			scheduledtask.StatusEQ(scheduledtask.StatusActive),
			scheduledtask.NextFireAtLTE(time.Now()),
		).
		Order(ent.Asc(scheduledtask.FieldNextFireAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksDue
		}
		return nil, fmt.Errorf("failed to query due tasks: %w", err)
	}

	task, err = task.Update().
		SetPodID(s.podID).
		SetLastRunAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return task, nil
}

// fire dispatches one autonomous turn for the task, binding a conversation
// on first run.
func (s *Scheduler) fire(ctx context.Context, task *ent.ScheduledTask, logger *slog.Logger) error {
	session, topicID, err := s.ensureConversation(ctx, task)
	if err != nil {
		return err
	}

	// Same soft probe as regenerate: no user message row is inserted.
	ok, err := s.chat.CheckBalance(ctx, task.UserID)
	if err != nil {
		return fmt.Errorf("balance check failed: %w", err)
	}
	if !ok {
		logger.Warn("Skipping scheduled turn, insufficient balance")
		return nil
	}

	return s.executor.Submit(ctx, worker.TurnInput{
		SessionID:   session.ID,
		TopicID:     topicID,
		UserID:      task.UserID,
		StreamID:    uuid.New().String(),
		Prompt:      task.Prompt,
		Attribution: s.sessions.ResolveAttribution(session),
	})
}

// ensureConversation returns the task's session and topic, creating and
// persisting them on the first fire.
func (s *Scheduler) ensureConversation(ctx context.Context, task *ent.ScheduledTask) (*ent.Session, string, error) {
	if task.SessionID != nil && task.TopicID != nil {
		session, err := s.client.Session.Get(ctx, *task.SessionID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load task session: %w", err)
		}
		return session, *task.TopicID, nil
	}

	session, err := s.sessions.CreateSession(ctx, task.UserID, task.AgentID, "", "", true)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create task session: %w", err)
	}
	topic, err := s.sessions.CreateTopic(ctx, session.ID, task.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create task topic: %w", err)
	}
	// The task entity came out of the claim transaction, which has already
	// committed; mutate through the client instead.
	err = s.client.ScheduledTask.UpdateOneID(task.ID).
		SetSessionID(session.ID).
		SetTopicID(topic.ID).
		Exec(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to bind task conversation: %w", err)
	}
	return session, topic.ID, nil
}

// reschedule advances the task after a successful fire: once tasks and
// exhausted interval tasks complete, the rest get the next fire time.
func (s *Scheduler) reschedule(ctx context.Context, task *ent.ScheduledTask, logger *slog.Logger) error {
	runCount := task.RunCount + 1
	upd := s.client.ScheduledTask.UpdateOneID(task.ID).SetRunCount(runCount)

	done := task.ScheduleType == scheduledtask.ScheduleTypeOnce ||
		(task.MaxRuns > 0 && runCount >= task.MaxRuns)
	if done {
		upd.SetStatus(scheduledtask.StatusCompleted)
	} else {
		upd.SetNextFireAt(time.Now().Add(time.Duration(task.IntervalSeconds) * time.Second))
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reschedule task: %w", err)
	}
	if done {
		logger.Info("Task completed", "run_count", runCount)
	}
	return nil
}
