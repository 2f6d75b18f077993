package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/test/util"
)

// fakeBackend counts creations and serves canned responses.
type fakeBackend struct {
	idPrefix string
	creates  atomic.Int64
	deletes  atomic.Int64
	mu       sync.Mutex
	deleted  []string
}

func (f *fakeBackend) Create(ctx context.Context, userID, sessionID string) (string, error) {
	n := f.creates.Add(1)
	return fmt.Sprintf("%s%s-%d", f.idPrefix, sessionID, n), nil
}

func (f *fakeBackend) Delete(ctx context.Context, sandboxID string) error {
	f.deletes.Add(1)
	f.mu.Lock()
	f.deleted = append(f.deleted, sandboxID)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Start(ctx context.Context, sandboxID string) error { return nil }

func (f *fakeBackend) Exec(ctx context.Context, sandboxID, command string, timeout time.Duration) (*ExecResult, error) {
	return &ExecResult{Stdout: "ok"}, nil
}

func (f *fakeBackend) ReadFile(ctx context.Context, sandboxID, path string) (string, error) {
	return "", nil
}
func (f *fakeBackend) WriteFile(ctx context.Context, sandboxID, path, content string) error {
	return nil
}
func (f *fakeBackend) ReadFileBytes(ctx context.Context, sandboxID, path string) ([]byte, error) {
	return nil, nil
}
func (f *fakeBackend) WriteFileBytes(ctx context.Context, sandboxID, path string, data []byte) error {
	return nil
}
func (f *fakeBackend) ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error) {
	return nil, nil
}
func (f *fakeBackend) FindFiles(ctx context.Context, sandboxID, pattern string) ([]string, error) {
	return nil, nil
}
func (f *fakeBackend) SearchInFiles(ctx context.Context, sandboxID, query, path string) ([]SearchMatch, error) {
	return nil, nil
}
func (f *fakeBackend) GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error) {
	return "", nil
}
func (f *fakeBackend) GetStatus(ctx context.Context, sandboxID string) (*Status, error) {
	return &Status{State: "running"}, nil
}
func (f *fakeBackend) GetInfo(ctx context.Context, sandboxID string) (*Info, error) {
	return &Info{SandboxID: sandboxID}, nil
}
func (f *fakeBackend) KeepAlive(ctx context.Context, sandboxID string) error { return nil }

func sandboxCfg() config.SandboxConfig {
	return config.SandboxConfig{
		BindingTTL:     time.Minute,
		LockTTL:        10 * time.Second,
		LockWait:       5 * time.Second,
		RequestTimeout: 5 * time.Second,
	}
}

func newManagerFixture(t *testing.T) (*Manager, *fakeBackend) {
	t.Helper()
	b := util.NewTestBus(t)
	cloud := &fakeBackend{idPrefix: "sbx-"}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewManager(b, cloud, nil, sandboxCfg(), logger), cloud
}

func TestEnsureCreatesOnce(t *testing.T) {
	m, cloud := newManagerFixture(t)
	ctx := context.Background()

	_, id1, err := m.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	_, id2, err := m.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, int64(1), cloud.creates.Load(), "second touch reuses the binding")

	_, other, err := m.Ensure(ctx, "user-1", "sess-2")
	require.NoError(t, err)
	assert.NotEqual(t, id1, other, "each session gets its own sandbox")
}

func TestEnsureConcurrentFirstTouch(t *testing.T) {
	m, cloud := newManagerFixture(t)
	ctx := context.Background()

	const callers = 8
	ids := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ids[i], errs[i] = m.Ensure(ctx, "user-1", "sess-1")
		}(i)
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "all callers converge on one sandbox")
	}
	assert.Equal(t, int64(1), cloud.creates.Load())
}

func TestEnsureSurvivesManagerRestart(t *testing.T) {
	b := util.NewTestBus(t)
	cloud := &fakeBackend{idPrefix: "sbx-"}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	first := NewManager(b, cloud, nil, sandboxCfg(), logger)
	_, id1, err := first.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)

	// A fresh manager (new pod) finds the binding in Redis.
	second := NewManager(b, cloud, nil, sandboxCfg(), logger)
	_, id2, err := second.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, int64(1), cloud.creates.Load())
}

func TestCleanup(t *testing.T) {
	m, cloud := newManagerFixture(t)
	ctx := context.Background()

	_, id, err := m.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)

	require.NoError(t, m.Cleanup(ctx, "user-1", "sess-1"))
	assert.Equal(t, []string{id}, cloud.deleted)

	// Idempotent on a missing binding.
	require.NoError(t, m.Cleanup(ctx, "user-1", "sess-1"))
	assert.Equal(t, int64(1), cloud.deletes.Load())

	// The next Ensure creates anew.
	_, fresh, err := m.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)
	assert.NotEqual(t, id, fresh)
}

func TestEnsureEnforcesPerUserLimit(t *testing.T) {
	b := util.NewTestBus(t)
	cloud := &fakeBackend{idPrefix: "sbx-"}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := sandboxCfg()
	cfg.MaxPerUser = 2
	m := NewManager(b, cloud, nil, cfg, logger)
	ctx := context.Background()

	_, _, err := m.Ensure(ctx, "user-1", "sess-1")
	require.NoError(t, err)
	_, _, err = m.Ensure(ctx, "user-1", "sess-2")
	require.NoError(t, err)

	_, _, err = m.Ensure(ctx, "user-1", "sess-3")
	assert.ErrorIs(t, err, ErrTooManySandboxes)

	// Another user is unaffected.
	_, _, err = m.Ensure(ctx, "user-2", "sess-9")
	require.NoError(t, err)

	// Tearing one down frees a slot.
	require.NoError(t, m.Cleanup(ctx, "user-1", "sess-1"))
	_, _, err = m.Ensure(ctx, "user-1", "sess-3")
	require.NoError(t, err)
}

func TestBackendForIDRoutesRunnerSandboxes(t *testing.T) {
	b := util.NewTestBus(t)
	cloud := &fakeBackend{idPrefix: "sbx-"}
	runner := &fakeBackend{idPrefix: runnerSandboxPrefix}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	m := NewManager(b, cloud, runner, sandboxCfg(), logger)

	assert.Same(t, Backend(runner), m.backendForID(RunnerSandboxID("user-1")))
	assert.Same(t, Backend(cloud), m.backendForID("sbx-abc"))
}
