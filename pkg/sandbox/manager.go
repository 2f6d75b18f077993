package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
)

// ErrTooManySandboxes is returned by Ensure when creating one more sandbox
// would exceed the per-user limit.
var ErrTooManySandboxes = errors.New("per-user sandbox limit reached")

// Manager owns the session→sandbox bindings and the creation protocol.
type Manager struct {
	bus    *bus.Bus
	cloud  Backend
	runner Backend
	cfg    config.SandboxConfig
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]string // session_id → sandbox_id
}

// NewManager creates a Manager. The runner backend may be nil when runner
// support is disabled.
func NewManager(b *bus.Bus, cloud, runner Backend, cfg config.SandboxConfig, logger *slog.Logger) *Manager {
	return &Manager{
		bus:    b,
		cloud:  cloud,
		runner: runner,
		cfg:    cfg,
		logger: logger.With("component", "sandbox_manager"),
		cache:  make(map[string]string),
	}
}

// backendFor picks the backend for a new sandbox: the user's runner when one
// is online, else the cloud provider.
func (m *Manager) backendFor(ctx context.Context, userID string) Backend {
	if m.runner != nil {
		if runnerID, err := m.bus.RunnerOnline(ctx, userID); err == nil && runnerID != "" {
			return m.runner
		}
	}
	return m.cloud
}

// backendForID routes an existing binding back to the backend that created
// it.
func (m *Manager) backendForID(sandboxID string) Backend {
	if strings.HasPrefix(sandboxID, runnerSandboxPrefix) && m.runner != nil {
		return m.runner
	}
	return m.cloud
}

// Ensure returns the session's sandbox, creating it on first touch.
// Concurrent first-touches converge on one sandbox through the lock
// protocol: SET NX, and losers poll the binding until the winner publishes
// it.
func (m *Manager) Ensure(ctx context.Context, userID, sessionID string) (Backend, string, error) {
	m.mu.RLock()
	cached := m.cache[sessionID]
	m.mu.RUnlock()
	if cached != "" {
		if err := m.bus.RefreshSandboxBinding(ctx, sessionID, m.cfg.BindingTTL); err != nil {
			m.logger.Warn("Binding refresh failed", "session_id", sessionID, "error", err)
		}
		return m.backendForID(cached), cached, nil
	}

	sandboxID, err := m.bus.GetSandboxBinding(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sandbox binding: %w", err)
	}
	if sandboxID != "" {
		m.remember(sessionID, sandboxID)
		if err := m.bus.RefreshSandboxBinding(ctx, sessionID, m.cfg.BindingTTL); err != nil {
			m.logger.Warn("Binding refresh failed", "session_id", sessionID, "error", err)
		}
		return m.backendForID(sandboxID), sandboxID, nil
	}

	acquired, err := m.bus.AcquireSandboxLock(ctx, sessionID, m.cfg.LockTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to acquire sandbox lock: %w", err)
	}
	if !acquired {
		return m.awaitBinding(ctx, sessionID)
	}
	defer func() {
		if err := m.bus.ReleaseSandboxLock(context.WithoutCancel(ctx), sessionID); err != nil {
			m.logger.Warn("Sandbox lock release failed", "session_id", sessionID, "error", err)
		}
	}()

	// Double-check under the lock; the binding may have landed between the
	// read and the SET NX.
	sandboxID, err = m.bus.GetSandboxBinding(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sandbox binding: %w", err)
	}
	if sandboxID != "" {
		m.remember(sessionID, sandboxID)
		return m.backendForID(sandboxID), sandboxID, nil
	}

	if err := m.checkUserLimit(ctx, userID); err != nil {
		return nil, "", err
	}

	backend := m.backendFor(ctx, userID)
	sandboxID, err = backend.Create(ctx, userID, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sandbox: %w", err)
	}
	if err := m.bus.SetSandboxBinding(ctx, sessionID, sandboxID, m.cfg.BindingTTL); err != nil {
		return nil, "", fmt.Errorf("failed to store sandbox binding: %w", err)
	}
	if err := m.bus.AddUserSandbox(ctx, userID, sessionID); err != nil {
		m.logger.Warn("Failed to record sandbox membership", "session_id", sessionID, "error", err)
	}
	m.remember(sessionID, sandboxID)
	m.logger.Info("Sandbox created", "session_id", sessionID, "sandbox_id", sandboxID)
	return backend, sandboxID, nil
}

// awaitBinding polls the binding key while another caller holds the
// creation lock.
func (m *Manager) awaitBinding(ctx context.Context, sessionID string) (Backend, string, error) {
	deadline := time.Now().Add(m.cfg.LockWait)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		sandboxID, err := m.bus.GetSandboxBinding(ctx, sessionID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to poll sandbox binding: %w", err)
		}
		if sandboxID != "" {
			m.remember(sessionID, sandboxID)
			return m.backendForID(sandboxID), sandboxID, nil
		}
		if time.Now().After(deadline) {
			return nil, "", fmt.Errorf("timed out waiting for sandbox creation for session %s", sessionID)
		}
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// checkUserLimit counts the user's live sandboxes before a create, pruning
// set members whose binding already expired. Runs under the creation lock.
func (m *Manager) checkUserLimit(ctx context.Context, userID string) error {
	if m.cfg.MaxPerUser <= 0 {
		return nil
	}
	sessions, err := m.bus.UserSandboxSessions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list user sandboxes: %w", err)
	}
	live := 0
	for _, sid := range sessions {
		bound, err := m.bus.GetSandboxBinding(ctx, sid)
		if err != nil {
			return fmt.Errorf("failed to read sandbox binding: %w", err)
		}
		if bound == "" {
			if err := m.bus.RemoveUserSandbox(ctx, userID, sid); err != nil {
				m.logger.Warn("Failed to prune sandbox membership", "session_id", sid, "error", err)
			}
			continue
		}
		live++
	}
	if live >= m.cfg.MaxPerUser {
		return fmt.Errorf("%w: %d of %d in use", ErrTooManySandboxes, live, m.cfg.MaxPerUser)
	}
	return nil
}

// Cleanup tears down the session's sandbox. Idempotent: a missing binding
// is a no-op and a backend delete failure only logs.
func (m *Manager) Cleanup(ctx context.Context, userID, sessionID string) error {
	sandboxID, err := m.bus.GetSandboxBinding(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to read sandbox binding: %w", err)
	}
	if sandboxID != "" {
		if err := m.backendForID(sandboxID).Delete(ctx, sandboxID); err != nil {
			m.logger.Warn("Sandbox delete failed", "session_id", sessionID, "sandbox_id", sandboxID, "error", err)
		}
	}
	if err := m.bus.DeleteSandboxBinding(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete sandbox binding: %w", err)
	}
	if err := m.bus.RemoveUserSandbox(ctx, userID, sessionID); err != nil {
		m.logger.Warn("Failed to remove sandbox membership", "session_id", sessionID, "error", err)
	}
	m.mu.Lock()
	delete(m.cache, sessionID)
	m.mu.Unlock()
	return nil
}

func (m *Manager) remember(sessionID, sandboxID string) {
	m.mu.Lock()
	m.cache[sessionID] = sandboxID
	m.mu.Unlock()
}
