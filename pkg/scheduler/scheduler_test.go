package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/scheduledtask"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/wallet"
	"github.com/agentloom/loom/pkg/worker"
	testdb "github.com/agentloom/loom/test/database"
)

// captureDispatcher records submitted turns.
type captureDispatcher struct {
	mu     sync.Mutex
	turns  []worker.TurnInput
	submit func(worker.TurnInput) error
}

func (c *captureDispatcher) Submit(ctx context.Context, input worker.TurnInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submit != nil {
		if err := c.submit(input); err != nil {
			return err
		}
	}
	c.turns = append(c.turns, input)
	return nil
}

func (c *captureDispatcher) submitted() []worker.TurnInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]worker.TurnInput(nil), c.turns...)
}

type schedFixture struct {
	client     *ent.Client
	scheduler  *Scheduler
	dispatcher *captureDispatcher
}

func newSchedFixture(t *testing.T, welcomeBonus int64) *schedFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	wallets := wallet.NewService(client.Client, config.WalletConfig{WelcomeBonus: welcomeBonus}, logger)
	sessions := services.NewSessionService(client.Client, nil, logger)
	chat := services.NewChatService(client.Client, wallets, logger)
	dispatcher := &captureDispatcher{}

	cfg := config.SchedulerConfig{PollInterval: 50 * time.Millisecond, Enabled: true}
	s := New("pod-test", client.Client, cfg, dispatcher, sessions, chat, logger)
	return &schedFixture{client: client.Client, scheduler: s, dispatcher: dispatcher}
}

func (f *schedFixture) createTask(t *testing.T, scheduleType scheduledtask.ScheduleType, interval int64, maxRuns int, due time.Time) *ent.ScheduledTask {
	t.Helper()
	task, err := f.client.ScheduledTask.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetAgentID("agent-1").
		SetPrompt("check the overnight build").
		SetScheduleType(scheduleType).
		SetIntervalSeconds(interval).
		SetMaxRuns(maxRuns).
		SetNextFireAt(due).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestClaimNextTaskEmpty(t *testing.T) {
	f := newSchedFixture(t, 200)
	_, err := f.scheduler.claimNextTask(context.Background())
	assert.ErrorIs(t, err, ErrNoTasksDue)
}

func TestClaimNextTaskSkipsFuture(t *testing.T) {
	f := newSchedFixture(t, 200)
	f.createTask(t, scheduledtask.ScheduleTypeOnce, 0, 0, time.Now().Add(time.Hour))

	_, err := f.scheduler.claimNextTask(context.Background())
	assert.ErrorIs(t, err, ErrNoTasksDue)
}

func TestPollAndFireOnceTask(t *testing.T) {
	f := newSchedFixture(t, 200)
	ctx := context.Background()
	task := f.createTask(t, scheduledtask.ScheduleTypeOnce, 0, 0, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	turns := f.dispatcher.submitted()
	require.Len(t, turns, 1)
	assert.Equal(t, "user-1", turns[0].UserID)
	assert.Equal(t, "check the overnight build", turns[0].Prompt)
	assert.NotEmpty(t, turns[0].SessionID)
	assert.NotEmpty(t, turns[0].StreamID)

	got, err := f.client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtask.StatusCompleted, got.Status)
	assert.Equal(t, 1, got.RunCount)
	assert.Equal(t, "pod-test", *got.PodID)
	require.NotNil(t, got.SessionID)
	assert.Equal(t, turns[0].SessionID, *got.SessionID, "conversation bound on first fire")
}

func TestPollAndFireIntervalTaskReschedules(t *testing.T) {
	f := newSchedFixture(t, 200)
	ctx := context.Background()
	task := f.createTask(t, scheduledtask.ScheduleTypeInterval, 3600, 0, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	got, err := f.client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtask.StatusActive, got.Status)
	assert.Equal(t, 1, got.RunCount)
	assert.True(t, got.NextFireAt.After(time.Now().Add(50*time.Minute)), "next fire pushed out by the interval")
}

func TestPollAndFireReusesConversation(t *testing.T) {
	f := newSchedFixture(t, 200)
	ctx := context.Background()
	task := f.createTask(t, scheduledtask.ScheduleTypeInterval, 1, 0, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	// Make it due again and fire a second time.
	require.NoError(t, f.client.ScheduledTask.UpdateOneID(task.ID).
		SetNextFireAt(time.Now().Add(-time.Second)).
		Exec(ctx))
	require.NoError(t, f.scheduler.pollAndFire(ctx))

	turns := f.dispatcher.submitted()
	require.Len(t, turns, 2)
	assert.Equal(t, turns[0].SessionID, turns[1].SessionID, "autonomous runs share one conversation")
	assert.Equal(t, turns[0].TopicID, turns[1].TopicID)
	assert.NotEqual(t, turns[0].StreamID, turns[1].StreamID)

	sessions, err := f.client.Session.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sessions)
}

func TestPollAndFireMaxRunsExhausted(t *testing.T) {
	f := newSchedFixture(t, 200)
	ctx := context.Background()
	task := f.createTask(t, scheduledtask.ScheduleTypeInterval, 60, 1, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	got, err := f.client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtask.StatusCompleted, got.Status)
}

func TestPollAndFireSkipsBrokeUser(t *testing.T) {
	f := newSchedFixture(t, 0)
	ctx := context.Background()
	task := f.createTask(t, scheduledtask.ScheduleTypeInterval, 60, 0, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	assert.Empty(t, f.dispatcher.submitted(), "no turn dispatched without balance")

	got, err := f.client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtask.StatusActive, got.Status, "the task stays scheduled")
	assert.Equal(t, 1, got.RunCount)
}

func TestPollAndFireDispatchFailureMarksFailed(t *testing.T) {
	f := newSchedFixture(t, 200)
	ctx := context.Background()
	f.dispatcher.submit = func(worker.TurnInput) error {
		return errors.New("executor shutting down")
	}
	task := f.createTask(t, scheduledtask.ScheduleTypeOnce, 0, 0, time.Now().Add(-time.Second))

	require.NoError(t, f.scheduler.pollAndFire(ctx))

	got, err := f.client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtask.StatusFailed, got.Status)
}

func TestStartDisabled(t *testing.T) {
	f := newSchedFixture(t, 200)
	f.scheduler.cfg.Enabled = false
	f.scheduler.Start(context.Background())
	f.scheduler.Stop() // returns immediately, no goroutine was started
}
