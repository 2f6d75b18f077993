package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/pkg/wallet"
)

// ChatService orchestrates the gateway-side message path that spans the
// message table and the wallet.
type ChatService struct {
	client  *ent.Client
	wallets *wallet.Service
	logger  *slog.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(client *ent.Client, wallets *wallet.Service, logger *slog.Logger) *ChatService {
	return &ChatService{
		client:  client,
		wallets: wallets,
		logger:  logger.With("component", "chat_service"),
	}
}

// UserMessageParams describes an incoming user message.
type UserMessageParams struct {
	SessionID string
	TopicID   string
	UserID    string
	Content   string
	FileIDs   []string
	ClientID  string
}

// CreateUserMessageFunded inserts the user message and probes the wallet in
// the same transaction. On a zero or negative virtual balance the insert is
// rolled back and ErrInsufficientBalance returned. First touch bootstraps
// the wallet with the welcome bonus, so a brand-new user always passes.
func (s *ChatService) CreateUserMessageFunded(ctx context.Context, p UserMessageParams) (*ent.ChatMessage, *ent.Wallet, error) {
	if p.Content == "" {
		return nil, nil, NewValidationError("message", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetTopicID(p.TopicID).
		SetSessionID(p.SessionID).
		SetUserID(p.UserID).
		SetRole(chatmessage.RoleUser).
		SetContent(p.Content)
	if len(p.FileIDs) > 0 {
		create.SetFileIds(p.FileIDs)
	}
	if p.ClientID != "" {
		create.SetClientID(p.ClientID)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user message: %w", err)
	}

	w, err := s.wallets.GetOrCreateTx(ctx, tx, p.UserID)
	if err != nil {
		return nil, nil, err
	}
	if w.VirtualTotal <= 0 {
		return nil, nil, ErrInsufficientBalance
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit user message: %w", err)
	}
	return msg, w, nil
}

// CheckBalance is the pre-dispatch soft probe used by regenerate and
// scheduled turns, where no new user message is inserted.
func (s *ChatService) CheckBalance(ctx context.Context, userID string) (bool, error) {
	w, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return w.VirtualTotal > 0, nil
}
