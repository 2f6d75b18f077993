package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/pkg/models"
)

func TestEnsureAssistantMessageIdempotent(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)
	assert.Empty(t, msg.Content)

	again, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, again.ID, "same stream resolves to the same row")

	other, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-2")
	require.NoError(t, err)
	assert.NotEqual(t, msg.ID, other.ID)
}

func TestGetByStreamID(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	created, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)

	got, err := svc.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByStreamID(ctx, "no-such-stream")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlushPartialAndFinalize(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)

	require.NoError(t, svc.FlushPartial(ctx, msg.ID, "partial answ", "thinking so far"))
	got, err := client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "partial answ", got.Content)

	citations := []models.Citation{{Title: "Docs", URL: "https://example.com/docs"}}
	require.NoError(t, svc.Finalize(ctx, msg.ID, "the full answer", "", citations))
	got, err = client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "the full answer", got.Content)
	require.Len(t, got.Citations, 1)
	assert.Equal(t, "https://example.com/docs", got.Citations[0]["url"])
}

func TestSetError(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)

	errData := models.ErrorData{ErrorCode: "rate_limited", ErrorCategory: "upstream", Detail: "429 from provider"}
	require.NoError(t, svc.SetError(ctx, msg.ID, errData, "partial before failure", ""))

	got, err := client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "rate_limited", *got.ErrorCode)
	assert.Equal(t, "partial before failure", got.Content)
}

func TestUserQuestionLifecycle(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)

	question := models.AskUserQuestionData{
		QuestionID:     "q-1",
		Question:       "Deploy to production?",
		Options:        []string{"yes", "no"},
		TimeoutSeconds: 300,
	}
	require.NoError(t, svc.SetUserQuestion(ctx, msg.ID, question))

	pending, err := svc.PendingQuestionMessage(ctx, "topic-1")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, pending.ID)
	assert.False(t, HasAnsweredQuestion(pending))

	resp := models.UserQuestionResponse{QuestionID: "q-1", SelectedOptions: []string{"yes"}}
	require.NoError(t, svc.MarkQuestionAnswered(ctx, msg.ID, resp))

	answered, err := client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, HasAnsweredQuestion(answered))
	assert.Equal(t, QuestionStatusAnswered, answered.UserQuestionData["status"])

	_, err = svc.PendingQuestionMessage(ctx, "topic-1")
	assert.ErrorIs(t, err, ErrNotFound, "answered questions are no longer pending")
}

func TestMarkQuestionExpired(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)
	require.NoError(t, svc.SetUserQuestion(ctx, msg.ID, models.AskUserQuestionData{QuestionID: "q-1", Question: "Still there?"}))

	require.NoError(t, svc.MarkQuestionExpired(ctx, msg.ID))
	got, err := client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, QuestionStatusExpired, got.UserQuestionData["status"])

	// Expiring a message without a question is a no-op.
	other, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-2")
	require.NoError(t, err)
	require.NoError(t, svc.MarkQuestionExpired(ctx, other.ID))
}

func TestLinkGeneratedFiles(t *testing.T) {
	client, logger := testClient(t)
	svc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	msg, err := svc.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)

	require.NoError(t, svc.LinkGeneratedFiles(ctx, msg.ID, "user-1", []string{"f1", "f2"}))
	require.NoError(t, svc.LinkGeneratedFiles(ctx, msg.ID, "user-1", []string{"f3"}))

	got, err := client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2", "f3"}, got.FileIds)

	assert.ErrorIs(t, svc.LinkGeneratedFiles(ctx, msg.ID, "other-user", []string{"f4"}), ErrAccessDenied)
	assert.NoError(t, svc.LinkGeneratedFiles(ctx, msg.ID, "user-1", nil), "empty list is a no-op")
}

func TestLatestUserMessage(t *testing.T) {
	client, logger := testClient(t)
	msgSvc := NewMessageService(client.Client, logger)
	ctx := context.Background()

	_, err := msgSvc.LatestUserMessage(ctx, "topic-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
