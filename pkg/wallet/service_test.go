package wallet

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent/ledgerentry"
	"github.com/agentloom/loom/pkg/config"
	testdb "github.com/agentloom/loom/test/database"
)

func newTestService(t *testing.T) *Service {
	client := testdb.NewTestClient(t)
	cfg := config.WalletConfig{WelcomeBonus: 200}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewService(client.Client, cfg, logger)
}

func TestGetOrCreateWelcomeBonus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), w.Free)
	assert.Equal(t, int64(0), w.Paid)
	assert.Equal(t, int64(0), w.Earned)
	assert.Equal(t, int64(200), w.VirtualTotal)
	assert.Equal(t, int64(200), w.TotalCredited)

	// Second call returns the same wallet without another bonus.
	again, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, w.ID, again.ID)
	assert.Equal(t, int64(200), again.Free)

	entries, err := svc.client.LedgerEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SourceWelcomeBonus, entries[0].Source)
	assert.Equal(t, ledgerentry.DirectionCredit, entries[0].Direction)
	assert.Equal(t, int64(200), entries[0].Amount)
}

func TestBootstrapLosesFirstTouchRace(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)

	// The losing creator hits the unique constraint and defers to the winner.
	require.NoError(t, svc.bootstrap(ctx, "user-1"))

	tx, err := svc.client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()
	got, err := svc.GetOrCreateTx(ctx, tx, "user-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, w.ID, got.ID)

	entries, err := svc.client.LedgerEntry.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the loser writes no second bonus")
}

func TestGetOrCreateConcurrentFirstTouch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.GetOrCreate(ctx, "user-1")
		}(i)
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
	}
	wallets, err := svc.client.Wallet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, wallets)
	entries, err := svc.client.LedgerEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, entries, "exactly one welcome bonus")
}

func TestCredit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, err := svc.Credit(ctx, "user-1", 500, ledgerentry.CreditTypePaid, "purchase", "order-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), w.Free, "bootstrap bonus still present")
	assert.Equal(t, int64(500), w.Paid)
	assert.Equal(t, int64(700), w.VirtualTotal)
	assert.Equal(t, int64(700), w.TotalCredited)

	_, err = svc.Credit(ctx, "user-1", 0, ledgerentry.CreditTypePaid, "purchase", "")
	assert.Error(t, err, "non-positive credit rejected")
}

func TestDeductOrderedDrainsBucketsInOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "user-1", 100, ledgerentry.CreditTypePaid, "purchase", "")
	require.NoError(t, err)
	_, err = svc.Credit(ctx, "user-1", 50, ledgerentry.CreditTypeEarned, "reward", "")
	require.NoError(t, err)

	// 200 free + 100 paid + 50 earned; a 260 deduction empties free, empties
	// paid, and takes 10 earned.
	w, deducted, err := svc.DeductOrdered(ctx, "user-1", 260, "settlement", "turn-1")
	require.NoError(t, err)
	assert.Equal(t, int64(260), deducted)
	assert.Equal(t, int64(0), w.Free)
	assert.Equal(t, int64(0), w.Paid)
	assert.Equal(t, int64(40), w.Earned)
	assert.Equal(t, int64(40), w.VirtualTotal)
	assert.Equal(t, int64(260), w.TotalConsumed)

	debits, err := svc.client.LedgerEntry.Query().
		Where(ledgerentry.DirectionEQ(ledgerentry.DirectionDebit)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, debits, 3, "one entry per drained bucket")
	for _, d := range debits {
		assert.Equal(t, "turn-1", *d.ReferenceID)
	}
}

func TestDeductOrderedShortsOnInsufficientFunds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, deducted, err := svc.DeductOrdered(ctx, "user-1", 1000, "settlement", "")
	require.NoError(t, err)
	assert.Equal(t, int64(200), deducted, "best effort takes what is there")
	assert.Equal(t, int64(0), w.Free)
	assert.Equal(t, int64(0), w.VirtualTotal)

	// A broke wallet deducts nothing and does not error.
	w, deducted, err = svc.DeductOrdered(ctx, "user-1", 10, "settlement", "")
	require.NoError(t, err)
	assert.Zero(t, deducted)
	assert.Equal(t, int64(0), w.VirtualTotal)
}

func TestDeductOrderedZeroAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, deducted, err := svc.DeductOrdered(ctx, "user-1", 0, "settlement", "")
	require.NoError(t, err)
	assert.Zero(t, deducted)
	assert.Equal(t, int64(200), w.VirtualTotal, "wallet bootstrapped on the way")
}

func TestVirtualTotalStaysConsistent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Credit(ctx, "user-1", 300, ledgerentry.CreditTypePaid, "purchase", "")
	require.NoError(t, err)
	_, _, err = svc.DeductOrdered(ctx, "user-1", 123, "settlement", "")
	require.NoError(t, err)
	w, _, err := svc.DeductOrdered(ctx, "user-1", 77, "settlement", "")
	require.NoError(t, err)

	assert.Equal(t, w.Free+w.Paid+w.Earned, w.VirtualTotal)
	assert.Equal(t, w.TotalCredited-w.TotalConsumed, w.VirtualTotal)
}
