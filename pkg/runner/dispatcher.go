package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
)

// Dispatcher sends runner RPCs, local-first with a cross-pod fallback.
type Dispatcher struct {
	registry *Registry
	bus      *bus.Bus
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(registry *Registry, b *bus.Bus, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		bus:      b,
		logger:   logger.With("component", "runner_dispatcher"),
	}
}

// Send issues one request to the user's runner and awaits the paired
// "_result" reply within timeout. When the runner's socket lives on this
// pod the request goes directly over it; otherwise it is published to the
// user's request channel and the reply awaited on the per-request response
// channel.
func (d *Dispatcher) Send(ctx context.Context, userID, msgType string, payload any, timeout time.Duration) (*models.RunnerResult, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", msgType, err)
		}
		raw = data
	}
	msg := models.RunnerMessage{
		ID:      uuid.New().String(),
		Type:    msgType,
		Payload: raw,
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if conn := d.registry.Get(userID); conn != nil {
		return d.sendLocal(ctx, conn, msg)
	}
	return d.sendCrossPod(ctx, userID, msg)
}

func (d *Dispatcher) sendLocal(ctx context.Context, conn Conn, msg models.RunnerMessage) (*models.RunnerResult, error) {
	replyCh := d.registry.AddPending(msg.ID)
	defer d.registry.DropPending(msg.ID)

	if err := conn.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send %s to runner: %w", msg.Type, err)
	}

	select {
	case result := <-replyCh:
		return &result, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("runner %s timed out: %w", msg.Type, ctx.Err())
	}
}

func (d *Dispatcher) sendCrossPod(ctx context.Context, userID string, msg models.RunnerMessage) (*models.RunnerResult, error) {
	// Subscribe before publishing so the reply cannot race past us.
	sub, err := d.bus.Subscribe(ctx, bus.RunnerResponseChannel(msg.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe for runner reply: %w", err)
	}
	defer func() { _ = sub.Close() }()

	if err := d.bus.Publish(ctx, bus.RunnerRequestChannel(userID), msg); err != nil {
		return nil, fmt.Errorf("failed to publish runner request: %w", err)
	}

	select {
	case data, ok := <-sub.Messages():
		if !ok {
			return nil, fmt.Errorf("runner reply channel closed for %s", msg.Type)
		}
		var reply models.RunnerMessage
		if err := json.Unmarshal(data, &reply); err != nil {
			return nil, fmt.Errorf("failed to unmarshal runner reply: %w", err)
		}
		var result models.RunnerResult
		if len(reply.Payload) > 0 {
			if err := json.Unmarshal(reply.Payload, &result); err != nil {
				return nil, fmt.Errorf("failed to unmarshal runner result: %w", err)
			}
		}
		return &result, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("runner %s timed out cross-pod: %w", msg.Type, ctx.Err())
	}
}

// HandleRunnerFrame processes one frame read from a runner socket on its
// home pod: results resolve a local waiter or are relayed to the cross-pod
// response channel; proactive PTY pushes flow to the terminal plumbing.
func (d *Dispatcher) HandleRunnerFrame(ctx context.Context, userID string, msg models.RunnerMessage, pty *PtyManager) {
	switch {
	case msg.IsResult():
		if d.registry.Resolve(msg.ID, decodeResult(msg)) {
			return
		}
		// Not ours; the requester lives on another pod.
		if err := d.bus.Publish(ctx, bus.RunnerResponseChannel(msg.ID), msg); err != nil {
			d.logger.Warn("Cross-pod reply relay failed", "request_id", msg.ID, "error", err)
		}
	case msg.Type == models.RunnerTypePtyOutput:
		var payload models.PtyOutputPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			d.logger.Warn("Malformed pty_output frame", "user_id", userID, "error", err)
			return
		}
		pty.RouteOutput(ctx, payload)
	case msg.Type == models.RunnerTypePtyExit:
		var payload models.PtyExitPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			d.logger.Warn("Malformed pty_exit frame", "user_id", userID, "error", err)
			return
		}
		pty.RouteExit(ctx, payload)
	default:
		d.logger.Warn("Unexpected runner frame", "user_id", userID, "type", msg.Type)
	}
}

// ServeCrossPod forwards requests published for this user to the local
// runner socket until ctx ends. Started when a runner connects, one
// goroutine per runner.
func (d *Dispatcher) ServeCrossPod(ctx context.Context, userID string, conn Conn) {
	sub, err := d.bus.Subscribe(ctx, bus.RunnerRequestChannel(userID))
	if err != nil {
		d.logger.Error("Cross-pod request subscription failed", "user_id", userID, "error", err)
		return
	}
	defer func() { _ = sub.Close() }()

	for {
		select {
		case data, ok := <-sub.Messages():
			if !ok {
				return
			}
			var msg models.RunnerMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				d.logger.Warn("Malformed cross-pod request", "user_id", userID, "error", err)
				continue
			}
			if err := conn.Send(ctx, msg); err != nil {
				d.logger.Warn("Cross-pod forward failed", "user_id", userID, "type", msg.Type, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func decodeResult(msg models.RunnerMessage) models.RunnerResult {
	var result models.RunnerResult
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &result); err != nil {
			result = models.RunnerResult{Success: false, Error: "malformed result payload"}
		}
	}
	return result
}
