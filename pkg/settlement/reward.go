package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/developerearning"
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
)

// DeveloperRewardService routes a share of a consumer's settlement to the
// publisher of a marketplace agent.
type DeveloperRewardService struct {
	client *ent.Client
	cfg    config.WalletConfig
	logger *slog.Logger
}

// NewDeveloperRewardService creates a new DeveloperRewardService.
func NewDeveloperRewardService(client *ent.Client, cfg config.WalletConfig, logger *slog.Logger) *DeveloperRewardService {
	return &DeveloperRewardService{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "developer_reward"),
	}
}

// ProcessReward credits the developer wallet with the configured share of
// the actual deduction and appends an earning row. A zero computed share is
// a no-op.
func (s *DeveloperRewardService) ProcessReward(ctx context.Context, attr models.Attribution, consumerUserID string, totalConsumed int64) error {
	if !attr.Attributed() || totalConsumed <= 0 {
		return nil
	}
	reward := int64(float64(totalConsumed) * s.cfg.DeveloperShare)
	if reward <= 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	dw, err := tx.DeveloperWallet.Query().
		Where(developerwallet.UserID(attr.DeveloperUserID)).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		dw, err = tx.DeveloperWallet.Create().
			SetID(uuid.New().String()).
			SetUserID(attr.DeveloperUserID).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load developer wallet: %w", err)
	}

	err = dw.Update().
		SetAvailableBalance(dw.AvailableBalance + reward).
		SetTotalEarned(dw.TotalEarned + reward).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to credit developer wallet: %w", err)
	}

	forkMode := developerearning.ForkModeEditable
	if attr.ForkMode == "locked" {
		forkMode = developerearning.ForkModeLocked
	}
	_, err = tx.DeveloperEarning.Create().
		SetID(uuid.New().String()).
		SetDeveloperUserID(attr.DeveloperUserID).
		SetConsumerUserID(consumerUserID).
		SetMarketplaceID(attr.MarketplaceID).
		SetAmount(reward).
		SetTotalConsumed(totalConsumed).
		SetForkMode(forkMode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create developer earning: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit developer reward: %w", err)
	}

	s.logger.Info("Developer reward processed",
		"developer_user_id", attr.DeveloperUserID,
		"marketplace_id", attr.MarketplaceID,
		"reward", reward,
		"total_consumed", totalConsumed)
	return nil
}
