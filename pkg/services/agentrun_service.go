package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/agentrun"
)

// AgentRunService manages agent-run rows and their node timelines.
type AgentRunService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewAgentRunService creates a new AgentRunService.
func NewAgentRunService(client *ent.Client, logger *slog.Logger) *AgentRunService {
	return &AgentRunService{
		client: client,
		logger: logger.With("component", "agentrun_service"),
	}
}

// StartRun creates a running AgentRun for the assistant message.
func (s *AgentRunService) StartRun(ctx context.Context, messageID, sessionID, topicID, userID string, startedAt time.Time) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetMessageID(messageID).
		SetSessionID(sessionID).
		SetTopicID(topicID).
		SetUserID(userID).
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(startedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	return run, nil
}

// FinishRun transitions the run to a terminal status, stamping ended_at,
// duration, and the node timeline.
func (s *AgentRunService) FinishRun(ctx context.Context, runID string, status agentrun.Status, nodeData map[string]any) error {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load agent run: %w", err)
	}
	now := time.Now()
	upd := run.Update().
		SetStatus(status).
		SetEndedAt(now).
		SetDurationMs(now.Sub(run.StartedAt).Milliseconds())
	if nodeData != nil {
		upd.SetNodeData(nodeData)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finish agent run: %w", err)
	}
	return nil
}

// EnsureCancelledRun records an abort. When the turn never produced a run,
// a cancelled one is created so the timeline shows the attempt.
func (s *AgentRunService) EnsureCancelledRun(ctx context.Context, runID, messageID, sessionID, topicID, userID string, startedAt time.Time, nodeData map[string]any) (string, error) {
	if runID != "" {
		return runID, s.FinishRun(ctx, runID, agentrun.StatusCancelled, nodeData)
	}
	now := time.Now()
	create := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetMessageID(messageID).
		SetSessionID(sessionID).
		SetTopicID(topicID).
		SetUserID(userID).
		SetStatus(agentrun.StatusCancelled).
		SetStartedAt(startedAt).
		SetEndedAt(now).
		SetDurationMs(now.Sub(startedAt).Milliseconds())
	if nodeData != nil {
		create.SetNodeData(nodeData)
	}
	run, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create cancelled agent run: %w", err)
	}
	return run.ID, nil
}

// ReclaimOrphans marks runs stuck in running for longer than maxAge as
// failed. Called once at startup; a run that old belongs to a dead pod.
func (s *AgentRunService) ReclaimOrphans(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.client.AgentRun.Update().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.StartedAtLT(cutoff),
		).
		SetStatus(agentrun.StatusFailed).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim orphan runs: %w", err)
	}
	if n > 0 {
		s.logger.Info("Reclaimed orphan agent runs", "count", n)
	}
	return n, nil
}
