package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/pkg/models"
)

// RecordService writes and settles consume records. Records are written
// pending as usage is observed, auto-committed outside the turn's flow, and
// bulk-transitioned on settlement.
type RecordService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRecordService creates a new RecordService.
func NewRecordService(client *ent.Client, logger *slog.Logger) *RecordService {
	return &RecordService{
		client: client,
		logger: logger.With("component", "record_service"),
	}
}

// LLMRecordParams describes a pending LLM usage record.
type LLMRecordParams struct {
	UserID       string
	SessionID    string
	TopicID      string
	MessageID    string
	Amount       int64
	CostUSD      float64
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Tier         string
	Attribution  models.Attribution
}

// CreateLLMRecord writes a pending record for observed token usage.
func (s *RecordService) CreateLLMRecord(ctx context.Context, p LLMRecordParams) (*ent.ConsumeRecord, error) {
	create := s.client.ConsumeRecord.Create().
		SetID(uuid.New().String()).
		SetUserID(p.UserID).
		SetSessionID(p.SessionID).
		SetTopicID(p.TopicID).
		SetRecordType(consumerecord.RecordTypeLlm).
		SetAmount(p.Amount).
		SetCostUsd(p.CostUSD).
		SetInputTokens(p.InputTokens).
		SetOutputTokens(p.OutputTokens).
		SetTotalTokens(p.TotalTokens)
	if p.MessageID != "" {
		create.SetMessageID(p.MessageID)
	}
	if p.Model != "" {
		create.SetModel(p.Model)
	}
	if p.Tier != "" {
		create.SetTier(p.Tier)
	}
	applyAttribution(create, p.Attribution)

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm consume record: %w", err)
	}
	return rec, nil
}

// ToolRecordParams describes a pending tool-call record. Amount is zero for
// failed calls.
type ToolRecordParams struct {
	UserID      string
	SessionID   string
	TopicID     string
	MessageID   string
	Amount      int64
	ToolName    string
	ToolCallID  string
	ToolStatus  string
	Attribution models.Attribution
}

// CreateToolRecord writes a pending record for an observed tool call.
func (s *RecordService) CreateToolRecord(ctx context.Context, p ToolRecordParams) (*ent.ConsumeRecord, error) {
	create := s.client.ConsumeRecord.Create().
		SetID(uuid.New().String()).
		SetUserID(p.UserID).
		SetSessionID(p.SessionID).
		SetTopicID(p.TopicID).
		SetRecordType(consumerecord.RecordTypeToolCall).
		SetAmount(p.Amount).
		SetToolName(p.ToolName).
		SetToolCallID(p.ToolCallID).
		SetToolStatus(p.ToolStatus)
	if p.MessageID != "" {
		create.SetMessageID(p.MessageID)
	}
	applyAttribution(create, p.Attribution)

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool consume record: %w", err)
	}
	return rec, nil
}

func applyAttribution(create *ent.ConsumeRecordCreate, attr models.Attribution) {
	if attr.AgentID != "" {
		create.SetAgentID(attr.AgentID)
	}
	if attr.MarketplaceID != "" {
		create.SetMarketplaceID(attr.MarketplaceID)
	}
	if attr.DeveloperUserID != "" {
		create.SetDeveloperUserID(attr.DeveloperUserID)
	}
}

// PendingForTurn queries the pending records belonging to a turn: records
// bound to any of the turn's assistant messages (an interrupted turn spans
// two), plus unbound records created since the turn started. The time cutoff
// keeps a prior turn's orphans out.
func (s *RecordService) PendingForTurn(ctx context.Context, sessionID, topicID string, messageIDs []string, turnStart time.Time) ([]*ent.ConsumeRecord, error) {
	scope := consumerecord.And(
		consumerecord.MessageIDIsNil(),
		consumerecord.CreatedAtGTE(turnStart),
	)
	if len(messageIDs) > 0 {
		scope = consumerecord.Or(consumerecord.MessageIDIn(messageIDs...), scope)
	}
	records, err := s.client.ConsumeRecord.Query().
		Where(
			consumerecord.SessionID(sessionID),
			consumerecord.TopicID(topicID),
			consumerecord.ConsumeStateEQ(consumerecord.ConsumeStatePending),
			scope,
		).
		Order(ent.Asc(consumerecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending records: %w", err)
	}
	return records, nil
}

// MarkSuccess bulk-transitions records to success.
func (s *RecordService) MarkSuccess(ctx context.Context, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return nil
	}
	_, err := s.client.ConsumeRecord.Update().
		Where(consumerecord.IDIn(recordIDs...)).
		SetConsumeState(consumerecord.ConsumeStateSuccess).
		SetSettledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark records success: %w", err)
	}
	return nil
}

// SweepStalePending marks records stuck pending for longer than maxAge as
// failed. Called once at startup to reclaim work orphaned by dead pods.
func (s *RecordService) SweepStalePending(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.client.ConsumeRecord.Update().
		Where(
			consumerecord.ConsumeStateEQ(consumerecord.ConsumeStatePending),
			consumerecord.CreatedAtLT(cutoff),
		).
		SetConsumeState(consumerecord.ConsumeStateFailed).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale pending records: %w", err)
	}
	if n > 0 {
		s.logger.Info("Swept stale pending consume records", "count", n)
	}
	return n, nil
}

// SumAmounts totals the amount fields of a record set.
func SumAmounts(records []*ent.ConsumeRecord) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}
