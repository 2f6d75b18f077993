package settlement

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/ent/ledgerentry"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/database"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/wallet"
	testdb "github.com/agentloom/loom/test/database"
)

// captureBroadcaster records published wallet updates.
type captureBroadcaster struct {
	mu       sync.Mutex
	channels []string
	events   []models.StreamEvent
}

func (c *captureBroadcaster) Publish(ctx context.Context, channel string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels = append(c.channels, channel)
	if ev, ok := payload.(models.StreamEvent); ok {
		c.events = append(c.events, ev)
	}
	return nil
}

type settleFixture struct {
	client    *database.Client
	wallets   *wallet.Service
	records   *services.RecordService
	service   *Service
	broadcast *captureBroadcaster
}

func newSettleFixture(t *testing.T) *settleFixture {
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.WalletConfig{WelcomeBonus: 200, DeveloperShare: 0.1}

	wallets := wallet.NewService(client.Client, cfg, logger)
	records := services.NewRecordService(client.Client, logger)
	rewards := NewDeveloperRewardService(client.Client, cfg, logger)
	broadcast := &captureBroadcaster{}

	return &settleFixture{
		client:    client,
		wallets:   wallets,
		records:   records,
		service:   NewService(wallets, records, rewards, broadcast, logger),
		broadcast: broadcast,
	}
}

func (f *settleFixture) pendingLLMRecord(t *testing.T, userID string, amount int64, attr models.Attribution) string {
	t.Helper()
	rec, err := f.records.CreateLLMRecord(context.Background(), services.LLMRecordParams{
		UserID:      userID,
		SessionID:   "sess-1",
		TopicID:     "topic-1",
		MessageID:   "msg-1",
		Amount:      amount,
		Model:       "gpt-4o-mini",
		Attribution: attr,
	})
	require.NoError(t, err)
	return rec.ID
}

func TestHasBalance(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	ok, err := f.service.HasBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok, "welcome bonus funds the first turn")

	_, _, err = f.wallets.DeductOrdered(ctx, "user-1", 200, "test", "")
	require.NoError(t, err)

	ok, err = f.service.HasBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettleChatRecordsDeductsAndMarks(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	id1 := f.pendingLLMRecord(t, "user-1", 30, models.Attribution{})
	id2 := f.pendingLLMRecord(t, "user-1", 20, models.Attribution{})

	err := f.service.SettleChatRecords(ctx, "user-1", []string{id1, id2}, 50, models.Attribution{})
	require.NoError(t, err)

	w, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(150), w.VirtualTotal)

	n, err := f.client.ConsumeRecord.Query().
		Where(consumerecord.ConsumeStateEQ(consumerecord.ConsumeStateSuccess)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, f.broadcast.events, 1)
	assert.Equal(t, models.KindWalletUpdate, f.broadcast.events[0].Kind)
	var update models.WalletUpdateData
	require.NoError(t, f.broadcast.events[0].Decode(&update))
	assert.Equal(t, int64(150), update.VirtualTotal)
}

func TestSettleChatRecordsZeroTotalOnlyMarks(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	id := f.pendingLLMRecord(t, "user-1", 0, models.Attribution{})
	require.NoError(t, f.service.SettleChatRecords(ctx, "user-1", []string{id}, 0, models.Attribution{}))

	rec, err := f.client.ConsumeRecord.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, consumerecord.ConsumeStateSuccess, rec.ConsumeState)

	// No wallet row was ever touched.
	n, err := f.client.Wallet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSettleChatRecordsShortsOverBalance(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	id := f.pendingLLMRecord(t, "user-1", 500, models.Attribution{})
	require.NoError(t, f.service.SettleChatRecords(ctx, "user-1", []string{id}, 500, models.Attribution{}))

	w, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.VirtualTotal, "wallet drained, never negative")

	rec, err := f.client.ConsumeRecord.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, consumerecord.ConsumeStateSuccess, rec.ConsumeState,
		"records settle even when the deduction was shorted")
}

func TestSettleChatRecordsRewardsDeveloper(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	attr := models.Attribution{
		AgentID:         "agent-1",
		MarketplaceID:   "mkt-1",
		DeveloperUserID: "dev-1",
		ForkMode:        "locked",
	}
	id := f.pendingLLMRecord(t, "user-1", 100, attr)
	require.NoError(t, f.service.SettleChatRecords(ctx, "user-1", []string{id}, 100, attr))

	dw, err := f.client.DeveloperWallet.Query().
		Where(developerwallet.UserID("dev-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), dw.AvailableBalance, "10% of the actual deduction")
	assert.Equal(t, int64(10), dw.TotalEarned)

	earnings, err := f.client.DeveloperEarning.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, earnings, 1)
	assert.Equal(t, "user-1", earnings[0].ConsumerUserID)
	assert.Equal(t, int64(100), earnings[0].TotalConsumed)
}

func TestSettleChatRecordsNoRewardWithoutAttribution(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	id := f.pendingLLMRecord(t, "user-1", 50, models.Attribution{AgentID: "own-agent"})
	require.NoError(t, f.service.SettleChatRecords(ctx, "user-1", []string{id}, 50, models.Attribution{AgentID: "own-agent"}))

	n, err := f.client.DeveloperEarning.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSettleChatRecordsEmptyTurn(t *testing.T) {
	f := newSettleFixture(t)
	require.NoError(t, f.service.SettleChatRecords(context.Background(), "user-1", nil, 0, models.Attribution{}))
	assert.Empty(t, f.broadcast.events)
}

func TestSettlementLedgerSource(t *testing.T) {
	f := newSettleFixture(t)
	ctx := context.Background()

	id := f.pendingLLMRecord(t, "user-1", 40, models.Attribution{})
	require.NoError(t, f.service.SettleChatRecords(ctx, "user-1", []string{id}, 40, models.Attribution{}))

	debits, err := f.client.LedgerEntry.Query().
		Where(ledgerentry.DirectionEQ(ledgerentry.DirectionDebit)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, debits, 1)
	assert.Equal(t, SourceChatSettlement, debits[0].Source)
}
