package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
)

// ErrPtyNotFound is returned on attach when the session expired or never
// existed; the gateway surfaces it as attach_failed.
var ErrPtyNotFound = errors.New("Session expired or not found")

// PtyManager owns PTY session lifecycle and output routing. A PTY lives on
// the runner, independent of any browser socket; on detach its output is
// buffered under the grace-period TTL and replayed on reattach.
type PtyManager struct {
	dispatcher *Dispatcher
	bus        *bus.Bus
	cfg        config.RunnerConfig
	logger     *slog.Logger
}

// NewPtyManager creates a PtyManager.
func NewPtyManager(dispatcher *Dispatcher, b *bus.Bus, cfg config.RunnerConfig, logger *slog.Logger) *PtyManager {
	return &PtyManager{
		dispatcher: dispatcher,
		bus:        b,
		cfg:        cfg,
		logger:     logger.With("component", "pty_manager"),
	}
}

// Create asks the runner for a new PTY and registers the session as
// attached.
func (m *PtyManager) Create(ctx context.Context, userID, sessionID string, cols, rows int) (string, error) {
	ptyID := uuid.New().String()
	result, err := m.dispatcher.Send(ctx, userID, models.RunnerTypePtyCreate, map[string]any{
		"pty_session_id": ptyID,
		"cols":           cols,
		"rows":           rows,
	}, m.cfg.PtyTimeout)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", fmt.Errorf("pty_create failed: %s", result.Error)
	}

	info := bus.PtySessionInfo{SessionID: sessionID, UserID: userID}
	if err := m.bus.SetPtySession(ctx, ptyID, info, m.cfg.PtySessionTTL); err != nil {
		return "", fmt.Errorf("failed to register pty session: %w", err)
	}
	if err := m.bus.MarkPtyAttached(ctx, ptyID, m.cfg.PtySessionTTL); err != nil {
		m.logger.Warn("Failed to mark pty attached", "pty_session_id", ptyID, "error", err)
	}
	return ptyID, nil
}

// Attach validates the session, marks it attached, and returns buffered
// output accumulated while detached, oldest first.
func (m *PtyManager) Attach(ctx context.Context, userID, ptyID string) ([][]byte, error) {
	info, err := m.bus.GetPtySession(ctx, ptyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pty session: %w", err)
	}
	if info == nil || info.UserID != userID {
		return nil, ErrPtyNotFound
	}

	if err := m.bus.RefreshPtySession(ctx, ptyID, m.cfg.PtySessionTTL); err != nil {
		m.logger.Warn("Failed to refresh pty session", "pty_session_id", ptyID, "error", err)
	}
	if err := m.bus.MarkPtyAttached(ctx, ptyID, m.cfg.PtySessionTTL); err != nil {
		m.logger.Warn("Failed to mark pty attached", "pty_session_id", ptyID, "error", err)
	}
	replay, err := m.bus.DrainPtyBuffer(ctx, ptyID)
	if err != nil {
		m.logger.Warn("Failed to drain pty buffer", "pty_session_id", ptyID, "error", err)
		return nil, nil
	}
	return replay, nil
}

// Detach marks the session browserless; subsequent output is buffered until
// reattach or TTL expiry.
func (m *PtyManager) Detach(ctx context.Context, ptyID string) {
	if err := m.bus.MarkPtyDetached(ctx, ptyID); err != nil {
		m.logger.Warn("Failed to mark pty detached", "pty_session_id", ptyID, "error", err)
	}
}

// Input forwards base64 keystrokes to the runner.
func (m *PtyManager) Input(ctx context.Context, userID, ptyID, data string) error {
	result, err := m.dispatcher.Send(ctx, userID, models.RunnerTypePtyInput, map[string]string{
		"pty_session_id": ptyID,
		"data":           data,
	}, m.cfg.PtyTimeout)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("pty_input failed: %s", result.Error)
	}
	return nil
}

// Resize forwards a terminal resize to the runner.
func (m *PtyManager) Resize(ctx context.Context, userID, ptyID string, cols, rows int) error {
	result, err := m.dispatcher.Send(ctx, userID, models.RunnerTypePtyResize, map[string]any{
		"pty_session_id": ptyID,
		"cols":           cols,
		"rows":           rows,
	}, m.cfg.PtyTimeout)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("pty_resize failed: %s", result.Error)
	}
	return nil
}

// Close destroys the PTY on the runner and drops all session state. On the
// teardown path callers pass a short timeout; failures only log, the state
// is removed regardless.
func (m *PtyManager) Close(ctx context.Context, userID, ptyID string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = m.cfg.PtyCloseWait
	}
	_, err := m.dispatcher.Send(ctx, userID, models.RunnerTypePtyClose, map[string]string{
		"pty_session_id": ptyID,
	}, timeout)
	if err != nil {
		m.logger.Warn("pty_close failed", "pty_session_id", ptyID, "error", err)
	}
	if err := m.bus.DeletePtySession(ctx, ptyID); err != nil {
		return fmt.Errorf("failed to delete pty session: %w", err)
	}
	return nil
}

// RouteOutput delivers runner output: live to the terminal channel when a
// browser is attached, otherwise into the detach buffer.
func (m *PtyManager) RouteOutput(ctx context.Context, payload models.PtyOutputPayload) {
	attached, err := m.bus.IsPtyAttached(ctx, payload.PtySessionID)
	if err != nil {
		m.logger.Warn("Attach check failed", "pty_session_id", payload.PtySessionID, "error", err)
		attached = false
	}
	frame := models.TerminalServerMessage{
		Type:      models.TerminalTypeOutput,
		SessionID: payload.PtySessionID,
		Data:      payload.Data,
	}
	if attached {
		if err := m.bus.Publish(ctx, bus.TerminalChannel(payload.PtySessionID), frame); err != nil {
			m.logger.Warn("Terminal publish failed", "pty_session_id", payload.PtySessionID, "error", err)
		}
		return
	}
	if err := m.bus.AppendPtyBuffer(ctx, payload.PtySessionID, []byte(payload.Data), m.cfg.PtySessionTTL); err != nil {
		m.logger.Warn("Pty buffer append failed", "pty_session_id", payload.PtySessionID, "error", err)
	}
}

// RouteExit broadcasts process exit and removes the session.
func (m *PtyManager) RouteExit(ctx context.Context, payload models.PtyExitPayload) {
	exitCode := payload.ExitCode
	frame := models.TerminalServerMessage{
		Type:      models.TerminalTypeExit,
		SessionID: payload.PtySessionID,
		ExitCode:  &exitCode,
	}
	if err := m.bus.Publish(ctx, bus.TerminalChannel(payload.PtySessionID), frame); err != nil {
		m.logger.Warn("Terminal exit publish failed", "pty_session_id", payload.PtySessionID, "error", err)
	}
	if err := m.bus.DeletePtySession(ctx, payload.PtySessionID); err != nil {
		m.logger.Warn("Pty session cleanup failed", "pty_session_id", payload.PtySessionID, "error", err)
	}
}
