package runner

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/models"
)

// fakeConn records sent messages and optionally reacts to them.
type fakeConn struct {
	mu     sync.Mutex
	sent   []models.RunnerMessage
	onSend func(models.RunnerMessage)
}

func (f *fakeConn) Send(ctx context.Context, msg models.RunnerMessage) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	onSend := f.onSend
	f.mu.Unlock()
	if onSend != nil {
		onSend(msg)
	}
	return nil
}

func (f *fakeConn) messages() []models.RunnerMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.RunnerMessage(nil), f.sent...)
}

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	first := &fakeConn{}
	second := &fakeConn{}

	r.Register("user-1", first)
	assert.Same(t, Conn(first), r.Get("user-1"))

	// A reconnect replaces the socket; the stale one cannot unregister it.
	r.Register("user-1", second)
	r.Unregister("user-1", first)
	assert.Same(t, Conn(second), r.Get("user-1"))

	r.Unregister("user-1", second)
	assert.Nil(t, r.Get("user-1"))
}

func TestRegistryPendingResolve(t *testing.T) {
	r := NewRegistry()

	ch := r.AddPending("req-1")
	ok := r.Resolve("req-1", models.RunnerResult{Success: true})
	require.True(t, ok)

	result := <-ch
	assert.True(t, result.Success)

	assert.False(t, r.Resolve("req-1", models.RunnerResult{}), "second resolve finds nothing")
	assert.False(t, r.Resolve("never-added", models.RunnerResult{}))
}

func TestRegistryDropPending(t *testing.T) {
	r := NewRegistry()
	r.AddPending("req-1")
	r.DropPending("req-1")
	assert.False(t, r.Resolve("req-1", models.RunnerResult{}))
}

func TestRunnerMessageIsResult(t *testing.T) {
	assert.True(t, models.RunnerMessage{Type: "exec_result"}.IsResult())
	assert.True(t, models.RunnerMessage{Type: "pty_create_result"}.IsResult())
	assert.False(t, models.RunnerMessage{Type: "exec"}.IsResult())
	assert.False(t, models.RunnerMessage{Type: "pty_output"}.IsResult())
}
