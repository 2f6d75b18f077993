// Package settlement turns pending consume records into wallet deductions.
//
// The entry point is SettleChatRecords: deduct (best-effort, ordered
// buckets), bulk-mark records success, reward the publisher on attributed
// turns, and broadcast the new balance. Settlement errors never propagate
// into the event stream; an aborted turn must still commit.
package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/wallet"
)

// SourceChatSettlement is the ledger source for chat deductions.
const SourceChatSettlement = "chat_settlement"

// Broadcaster publishes wallet updates on the user events channel. *bus.Bus
// satisfies it.
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Service settles pending consume records against the consumer wallet.
type Service struct {
	wallets *wallet.Service
	records *services.RecordService
	rewards *DeveloperRewardService
	events  Broadcaster
	logger  *slog.Logger
}

// NewService creates a new settlement Service.
func NewService(wallets *wallet.Service, records *services.RecordService, rewards *DeveloperRewardService, events Broadcaster, logger *slog.Logger) *Service {
	return &Service{
		wallets: wallets,
		records: records,
		rewards: rewards,
		events:  events,
		logger:  logger.With("component", "settlement"),
	}
}

// HasBalance is the pre-dispatch soft probe: the turn may start only when
// the virtual balance is positive. First touch bootstraps the wallet.
func (s *Service) HasBalance(ctx context.Context, userID string) (bool, error) {
	w, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to probe wallet: %w", err)
	}
	return w.VirtualTotal > 0, nil
}

// SettleChatRecords deducts totalAmount from the consumer wallet and marks
// the records success. A zero total still marks the records; an
// insufficient balance shorts the deduction with a warning. Developer reward
// and the wallet-update broadcast are best-effort.
func (s *Service) SettleChatRecords(ctx context.Context, userID string, recordIDs []string, totalAmount int64, attr models.Attribution) error {
	if len(recordIDs) == 0 && totalAmount <= 0 {
		return nil
	}
	if totalAmount <= 0 {
		return s.records.MarkSuccess(ctx, recordIDs)
	}

	w, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load wallet for settlement: %w", err)
	}

	deductTarget := totalAmount
	if available := max(w.VirtualTotal, 0); available < deductTarget {
		s.logger.Warn("Insufficient balance, shorting deduction",
			"user_id", userID,
			"asked", totalAmount,
			"available", available)
		deductTarget = available
	}

	var deducted int64
	if deductTarget > 0 {
		w, deducted, err = s.wallets.DeductOrdered(ctx, userID, deductTarget, SourceChatSettlement, "")
		if err != nil {
			return fmt.Errorf("failed to deduct for settlement: %w", err)
		}
	}

	if err := s.records.MarkSuccess(ctx, recordIDs); err != nil {
		return err
	}

	if deducted > 0 && attr.Attributed() {
		if err := s.rewards.ProcessReward(ctx, attr, userID, deducted); err != nil {
			// Isolated: a reward failure never unwinds the settlement.
			s.logger.Error("Developer reward failed", "user_id", userID, "error", err)
		}
	}

	s.broadcastWalletUpdate(ctx, userID, w)
	return nil
}

// broadcastWalletUpdate publishes the new balances on the user events
// channel. Best-effort.
func (s *Service) broadcastWalletUpdate(ctx context.Context, userID string, w *ent.Wallet) {
	if s.events == nil || w == nil {
		return
	}
	event := models.NewStreamEvent(models.KindWalletUpdate, "", models.WalletUpdateData{
		Free:         w.Free,
		Paid:         w.Paid,
		Earned:       w.Earned,
		VirtualTotal: w.VirtualTotal,
	})
	if err := s.events.Publish(ctx, bus.UserChannel(userID), event); err != nil {
		s.logger.Warn("Wallet update broadcast failed", "user_id", userID, "error", err)
	}
}
