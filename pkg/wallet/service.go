// Package wallet implements typed credit buckets with an append-only ledger.
//
// A wallet holds three buckets (free, paid, earned) plus a denormalized
// virtual_total kept equal to their sum inside every mutating transaction.
// Deduction is best-effort: insufficient funds short the deduction rather
// than fail.
package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/ledgerentry"
	"github.com/agentloom/loom/ent/wallet"
	"github.com/agentloom/loom/pkg/config"
)

// Ledger entry sources written by this package.
const (
	SourceWelcomeBonus = "welcome_bonus"
)

// Service manages wallet balances and the ledger.
type Service struct {
	client *ent.Client
	cfg    config.WalletConfig
	logger *slog.Logger
}

// NewService creates a new wallet Service.
func NewService(client *ent.Client, cfg config.WalletConfig, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "wallet"),
	}
}

// GetOrCreate returns the user's wallet, bootstrapping it with the welcome
// bonus on first touch.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*ent.Wallet, error) {
	w, err := s.client.Wallet.Query().
		Where(wallet.UserID(userID)).
		Only(ctx)
	if err == nil {
		return w, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query wallet: %w", err)
	}
	if err := s.bootstrap(ctx, userID); err != nil {
		return nil, err
	}
	return s.client.Wallet.Query().Where(wallet.UserID(userID)).Only(ctx)
}

// GetOrCreateTx is GetOrCreate within a caller-owned transaction. Callers use
// it to combine the balance probe with other writes (e.g. the user-message
// insert). The bootstrap itself runs in its own transaction: a unique
// violation would poison the caller's, and Postgres rejects every statement
// after one until rollback.
func (s *Service) GetOrCreateTx(ctx context.Context, tx *ent.Tx, userID string) (*ent.Wallet, error) {
	w, err := tx.Wallet.Query().
		Where(wallet.UserID(userID)).
		Only(ctx)
	if err == nil {
		return w, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query wallet: %w", err)
	}
	if err := s.bootstrap(ctx, userID); err != nil {
		return nil, err
	}
	return tx.Wallet.Query().Where(wallet.UserID(userID)).Only(ctx)
}

// bootstrap creates the wallet and its welcome-bonus ledger entry in a short
// dedicated transaction. Losing the first-touch race is not an error; the
// winner's row is authoritative and the caller re-queries it.
func (s *Service) bootstrap(ctx context.Context, userID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	bonus := s.cfg.WelcomeBonus
	_, err = tx.Wallet.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetFree(bonus).
		SetVirtualTotal(bonus).
		SetTotalCredited(bonus).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	_, err = tx.LedgerEntry.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCreditType(ledgerentry.CreditTypeFree).
		SetDirection(ledgerentry.DirectionCredit).
		SetAmount(bonus).
		SetBalanceAfter(bonus).
		SetTotalBalanceAfter(bonus).
		SetSource(SourceWelcomeBonus).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write welcome bonus ledger entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wallet creation: %w", err)
	}

	s.logger.Info("Wallet bootstrapped", "user_id", userID, "welcome_bonus", bonus)
	return nil
}

// Credit adds amount to the typed bucket and appends one ledger entry.
func (s *Service) Credit(ctx context.Context, userID string, amount int64, creditType ledgerentry.CreditType, source, referenceID string) (*ent.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := s.GetOrCreateTx(ctx, tx, userID); err != nil {
		return nil, err
	}
	w, err := s.lockWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	upd := w.Update().
		SetVirtualTotal(w.VirtualTotal + amount).
		SetTotalCredited(w.TotalCredited + amount)

	var bucketAfter int64
	switch creditType {
	case ledgerentry.CreditTypeFree:
		bucketAfter = w.Free + amount
		upd.SetFree(bucketAfter)
	case ledgerentry.CreditTypePaid:
		bucketAfter = w.Paid + amount
		upd.SetPaid(bucketAfter)
	case ledgerentry.CreditTypeEarned:
		bucketAfter = w.Earned + amount
		upd.SetEarned(bucketAfter)
	default:
		return nil, fmt.Errorf("unknown credit type %q", creditType)
	}

	w, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	if err := s.appendEntry(ctx, tx, userID, creditType, ledgerentry.DirectionCredit, amount, bucketAfter, w.VirtualTotal, source, referenceID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit credit: %w", err)
	}
	return w, nil
}

// DeductOrdered debits up to amount across the buckets in the fixed order
// free, paid, earned, appending one ledger entry per non-zero bucket debit.
// It returns the updated wallet and the amount actually deducted, which may
// be less than asked when the wallet cannot cover it.
func (s *Service) DeductOrdered(ctx context.Context, userID string, amount int64, source, referenceID string) (*ent.Wallet, int64, error) {
	if amount <= 0 {
		w, err := s.GetOrCreate(ctx, userID)
		return w, 0, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	w, err := s.GetOrCreateTx(ctx, tx, userID)
	if err != nil {
		return nil, 0, err
	}
	w, err = s.lockWallet(ctx, tx, userID)
	if err != nil {
		return nil, 0, err
	}

	type debit struct {
		creditType ledgerentry.CreditType
		taken      int64
		after      int64
	}

	remaining := amount
	buckets := []struct {
		creditType ledgerentry.CreditType
		balance    int64
	}{
		{ledgerentry.CreditTypeFree, w.Free},
		{ledgerentry.CreditTypePaid, w.Paid},
		{ledgerentry.CreditTypeEarned, w.Earned},
	}

	var debits []debit
	for _, b := range buckets {
		if remaining == 0 {
			break
		}
		take := min(remaining, b.balance)
		if take == 0 {
			continue
		}
		remaining -= take
		debits = append(debits, debit{
			creditType: b.creditType,
			taken:      take,
			after:      b.balance - take,
		})
	}

	deducted := amount - remaining
	if deducted == 0 {
		return w, 0, tx.Commit()
	}

	upd := w.Update().
		SetVirtualTotal(w.VirtualTotal - deducted).
		SetTotalConsumed(w.TotalConsumed + deducted)
	for _, d := range debits {
		switch d.creditType {
		case ledgerentry.CreditTypeFree:
			upd.SetFree(d.after)
		case ledgerentry.CreditTypePaid:
			upd.SetPaid(d.after)
		case ledgerentry.CreditTypeEarned:
			upd.SetEarned(d.after)
		}
	}
	w, err = upd.Save(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to deduct from wallet: %w", err)
	}

	runningTotal := w.VirtualTotal + deducted
	for _, d := range debits {
		runningTotal -= d.taken
		if err := s.appendEntry(ctx, tx, userID, d.creditType, ledgerentry.DirectionDebit, d.taken, d.after, runningTotal, source, referenceID); err != nil {
			return nil, 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit deduction: %w", err)
	}
	return w, deducted, nil
}

// lockWallet reloads the wallet row under FOR UPDATE.
func (s *Service) lockWallet(ctx context.Context, tx *ent.Tx, userID string) (*ent.Wallet, error) {
	w, err := tx.Wallet.Query().
		Where(wallet.UserID(userID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return w, nil
}

func (s *Service) appendEntry(ctx context.Context, tx *ent.Tx, userID string, creditType ledgerentry.CreditType, direction ledgerentry.Direction, amount, balanceAfter, totalAfter int64, source, referenceID string) error {
	create := tx.LedgerEntry.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCreditType(creditType).
		SetDirection(direction).
		SetAmount(amount).
		SetBalanceAfter(balanceAfter).
		SetTotalBalanceAfter(totalAfter).
		SetSource(source).
		SetCreatedAt(time.Now())
	if referenceID != "" {
		create.SetReferenceID(referenceID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
