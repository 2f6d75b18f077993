package runner

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/test/util"
)

// newPtyFixture wires a PtyManager to a runner socket that approves every
// RPC.
func newPtyFixture(t *testing.T) (*PtyManager, *bus.Bus, *fakeConn) {
	t.Helper()
	b := util.NewTestBus(t)
	registry := NewRegistry()
	d := NewDispatcher(registry, b, testLogger())

	conn := &fakeConn{}
	conn.onSend = func(msg models.RunnerMessage) {
		go d.HandleRunnerFrame(context.Background(), "user-1", models.RunnerMessage{
			ID:      msg.ID,
			Type:    msg.Type + "_result",
			Payload: json.RawMessage(`{"success": true}`),
		}, nil)
	}
	registry.Register("user-1", conn)

	return NewPtyManager(d, b, runnerCfg(), testLogger()), b, conn
}

func TestPtyCreateAndAttach(t *testing.T) {
	m, b, _ := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)
	require.NotEmpty(t, ptyID)

	info, err := b.GetPtySession(ctx, ptyID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "user-1", info.UserID)

	attached, err := b.IsPtyAttached(ctx, ptyID)
	require.NoError(t, err)
	assert.True(t, attached)

	replay, err := m.Attach(ctx, "user-1", ptyID)
	require.NoError(t, err)
	assert.Empty(t, replay, "nothing buffered on a live session")
}

func TestPtyAttachUnknownSession(t *testing.T) {
	m, _, _ := newPtyFixture(t)

	_, err := m.Attach(context.Background(), "user-1", "no-such-pty")
	assert.ErrorIs(t, err, ErrPtyNotFound)
}

func TestPtyAttachForeignUser(t *testing.T) {
	m, _, _ := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)

	_, err = m.Attach(ctx, "other-user", ptyID)
	assert.ErrorIs(t, err, ErrPtyNotFound, "ownership mismatch looks like expiry")
}

func TestPtyDetachBuffersOutputForReplay(t *testing.T) {
	m, _, _ := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)

	m.Detach(ctx, ptyID)
	m.RouteOutput(ctx, models.PtyOutputPayload{PtySessionID: ptyID, Data: "bGluZSAx"})
	m.RouteOutput(ctx, models.PtyOutputPayload{PtySessionID: ptyID, Data: "bGluZSAy"})

	replay, err := m.Attach(ctx, "user-1", ptyID)
	require.NoError(t, err)
	require.Len(t, replay, 2)
	assert.Equal(t, "bGluZSAx", string(replay[0]), "oldest first")
	assert.Equal(t, "bGluZSAy", string(replay[1]))

	// The buffer drains on attach.
	replay, err = m.Attach(ctx, "user-1", ptyID)
	require.NoError(t, err)
	assert.Empty(t, replay)
}

func TestPtyRouteOutputLive(t *testing.T) {
	m, b, _ := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)

	sub, err := b.Subscribe(ctx, bus.TerminalChannel(ptyID))
	require.NoError(t, err)
	defer func() { _ = sub.Close() }()
	time.Sleep(100 * time.Millisecond)

	m.RouteOutput(ctx, models.PtyOutputPayload{PtySessionID: ptyID, Data: "aGVsbG8="})

	select {
	case data := <-sub.Messages():
		var frame models.TerminalServerMessage
		require.NoError(t, json.Unmarshal(data, &frame))
		assert.Equal(t, models.TerminalTypeOutput, frame.Type)
		assert.Equal(t, "aGVsbG8=", frame.Data)
	case <-time.After(5 * time.Second):
		t.Fatal("no live output frame delivered")
	}
}

func TestPtyRouteExitCleansUp(t *testing.T) {
	m, b, _ := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)

	m.RouteExit(ctx, models.PtyExitPayload{PtySessionID: ptyID, ExitCode: 0})

	info, err := b.GetPtySession(ctx, ptyID)
	require.NoError(t, err)
	assert.Nil(t, info, "session state removed on exit")
}

func TestPtyClose(t *testing.T) {
	m, b, conn := newPtyFixture(t)
	ctx := context.Background()

	ptyID, err := m.Create(ctx, "user-1", "sess-1", 80, 24)
	require.NoError(t, err)

	require.NoError(t, m.Close(ctx, "user-1", ptyID, 0))

	info, err := b.GetPtySession(ctx, ptyID)
	require.NoError(t, err)
	assert.Nil(t, info)

	var sawClose bool
	for _, msg := range conn.messages() {
		if msg.Type == models.RunnerTypePtyClose {
			sawClose = true
		}
	}
	assert.True(t, sawClose, "runner told to destroy the pty")
}
