package runner

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/test/util"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func runnerCfg() config.RunnerConfig {
	return config.RunnerConfig{
		RequestTimeout: 5 * time.Second,
		PtyTimeout:     5 * time.Second,
		PtyCloseWait:   time.Second,
		PresenceTTL:    time.Minute,
		PtySessionTTL:  time.Minute,
	}
}

func TestDispatcherSendLocal(t *testing.T) {
	b := util.NewTestBus(t)
	registry := NewRegistry()
	d := NewDispatcher(registry, b, testLogger())

	conn := &fakeConn{}
	conn.onSend = func(msg models.RunnerMessage) {
		// Simulate the runner answering over the same socket.
		go d.HandleRunnerFrame(context.Background(), "user-1", models.RunnerMessage{
			ID:      msg.ID,
			Type:    msg.Type + "_result",
			Payload: json.RawMessage(`{"success": true, "data": {"stdout": "hi"}}`),
		}, nil)
	}
	registry.Register("user-1", conn)

	result, err := d.Send(context.Background(), "user-1", models.RunnerTypeExec,
		map[string]string{"command": "echo hi"}, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, result.Success)

	sent := conn.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, models.RunnerTypeExec, sent[0].Type)
}

func TestDispatcherSendLocalTimeout(t *testing.T) {
	b := util.NewTestBus(t)
	registry := NewRegistry()
	d := NewDispatcher(registry, b, testLogger())

	registry.Register("user-1", &fakeConn{}) // never answers

	_, err := d.Send(context.Background(), "user-1", models.RunnerTypeExec, nil, 200*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatcherSendCrossPod(t *testing.T) {
	b := util.NewTestBus(t)
	logger := testLogger()

	// Home pod: holds the runner socket and serves cross-pod requests.
	homeRegistry := NewRegistry()
	home := NewDispatcher(homeRegistry, b, logger)
	conn := &fakeConn{}
	conn.onSend = func(msg models.RunnerMessage) {
		// The runner replies to its home pod, which finds no local waiter and
		// relays the result onto the response channel.
		go home.HandleRunnerFrame(context.Background(), "user-1", models.RunnerMessage{
			ID:      msg.ID,
			Type:    msg.Type + "_result",
			Payload: json.RawMessage(`{"success": true}`),
		}, nil)
	}
	homeRegistry.Register("user-1", conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go home.ServeCrossPod(ctx, "user-1", conn)
	time.Sleep(100 * time.Millisecond) // let the subscription settle

	// Requesting pod: no local socket, must go over the bus.
	remote := NewDispatcher(NewRegistry(), b, logger)
	result, err := remote.Send(context.Background(), "user-1", models.RunnerTypeExec,
		map[string]string{"command": "uname"}, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestHandleRunnerFrameMalformedResult(t *testing.T) {
	b := util.NewTestBus(t)
	registry := NewRegistry()
	d := NewDispatcher(registry, b, testLogger())

	ch := registry.AddPending("req-1")
	d.HandleRunnerFrame(context.Background(), "user-1", models.RunnerMessage{
		ID:      "req-1",
		Type:    "exec_result",
		Payload: json.RawMessage(`{not json`),
	}, nil)

	result := <-ch
	assert.False(t, result.Success)
	assert.Equal(t, "malformed result payload", result.Error)
}
