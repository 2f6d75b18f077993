package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/wallet"
)

func newChatService(t *testing.T, welcomeBonus int64) (*ChatService, *wallet.Service) {
	client, logger := testClient(t)
	wallets := wallet.NewService(client.Client, config.WalletConfig{WelcomeBonus: welcomeBonus}, logger)
	return NewChatService(client.Client, wallets, logger), wallets
}

func TestCreateUserMessageFunded(t *testing.T) {
	svc, _ := newChatService(t, 200)
	ctx := context.Background()

	msg, w, err := svc.CreateUserMessageFunded(ctx, UserMessageParams{
		SessionID: "sess-1",
		TopicID:   "topic-1",
		UserID:    "user-1",
		Content:   "hello there",
		FileIDs:   []string{"f1"},
		ClientID:  "client-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, chatmessage.RoleUser, msg.Role)
	assert.Equal(t, "hello there", msg.Content)
	assert.Equal(t, []string{"f1"}, msg.FileIds)
	assert.Equal(t, "client-abc", *msg.ClientID)
	assert.Equal(t, int64(200), w.VirtualTotal, "first touch bootstraps the wallet")
}

func TestCreateUserMessageFundedEmptyContent(t *testing.T) {
	svc, _ := newChatService(t, 200)

	_, _, err := svc.CreateUserMessageFunded(context.Background(), UserMessageParams{
		SessionID: "sess-1",
		TopicID:   "topic-1",
		UserID:    "user-1",
	})
	assert.True(t, IsValidationError(err))
}

func TestCreateUserMessageFundedInsufficientBalanceRollsBack(t *testing.T) {
	svc, _ := newChatService(t, 0)
	ctx := context.Background()

	_, _, err := svc.CreateUserMessageFunded(ctx, UserMessageParams{
		SessionID: "sess-1",
		TopicID:   "topic-1",
		UserID:    "broke-user",
		Content:   "can I still chat?",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The insert was rolled back with the probe.
	n, err := svc.client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCheckBalance(t *testing.T) {
	svc, wallets := newChatService(t, 200)
	ctx := context.Background()

	ok, err := svc.CheckBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = wallets.DeductOrdered(ctx, "user-1", 200, "test", "")
	require.NoError(t, err)

	ok, err = svc.CheckBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
