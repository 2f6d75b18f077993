package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/test/util"
)

func TestPresenceLifecycle(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()
	cid := "sess-1:topic-1"

	present, err := b.IsPresent(ctx, cid)
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, b.SetPresence(ctx, cid, time.Minute))
	present, err = b.IsPresent(ctx, cid)
	require.NoError(t, err)
	assert.True(t, present)

	require.NoError(t, b.RefreshPresence(ctx, cid, time.Minute))
	require.NoError(t, b.ClearPresence(ctx, cid))
	present, err = b.IsPresent(ctx, cid)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestAbortSignal(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()
	cid := "sess-1:topic-1"

	assert.False(t, b.AbortRequested(ctx, cid))
	require.NoError(t, b.SignalAbort(ctx, cid, time.Minute))
	assert.True(t, b.AbortRequested(ctx, cid))
	require.NoError(t, b.ClearAbort(ctx, cid))
	assert.False(t, b.AbortRequested(ctx, cid))
}

func TestQuestionState(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()
	cid := "sess-1:topic-1"

	state, err := b.GetQuestionState(ctx, cid)
	require.NoError(t, err)
	assert.Nil(t, state, "no question pending")

	require.NoError(t, b.SetQuestionState(ctx, cid, "thread-1", "q-1", time.Minute))
	state, err = b.GetQuestionState(ctx, cid)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "thread-1", state.ThreadID)
	assert.Equal(t, "q-1", state.QuestionID)
	assert.False(t, state.Expired)

	require.NoError(t, b.ClearQuestionState(ctx, cid, "q-1"))
	state, err = b.GetQuestionState(ctx, cid)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestQuestionStateExpiry(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()
	cid := "sess-1:topic-1"

	// A sub-second timeout lapses while the thread/active keys survive.
	require.NoError(t, b.SetQuestionState(ctx, cid, "thread-1", "q-1", 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	state, err := b.GetQuestionState(ctx, cid)
	require.NoError(t, err)
	require.NotNil(t, state, "state outlives the timeout for expiry detection")
	assert.True(t, state.Expired)
}

func TestRunnerPresence(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()

	id, err := b.RunnerOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, b.SetRunnerOnline(ctx, "user-1", "runner-abc", time.Minute))
	id, err = b.RunnerOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "runner-abc", id)

	require.NoError(t, b.ClearRunnerOnline(ctx, "user-1"))
	id, err = b.RunnerOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSandboxLock(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()

	ok, err := b.AcquireSandboxLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.AcquireSandboxLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquirer loses")

	require.NoError(t, b.ReleaseSandboxLock(ctx, "sess-1"))
	ok, err = b.AcquireSandboxLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPublishSubscribe(t *testing.T) {
	b := util.NewTestBus(t)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, bus.ChatChannel("sess-1:topic-1"))
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, b.Publish(ctx, bus.ChatChannel("sess-1:topic-1"), map[string]string{"type": "ping"}))

	select {
	case data := <-sub.Messages():
		assert.JSONEq(t, `{"type":"ping"}`, string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
}
