package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/pkg/models"
)

// User-question status values stored in user_question_data.
const (
	QuestionStatusPending  = "pending"
	QuestionStatusAnswered = "answered"
	QuestionStatusExpired  = "expired"
)

// MessageService manages chat message rows: user messages, assistant
// messages accumulated by the worker, error fields, and the user-question
// blob.
type MessageService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client, logger *slog.Logger) *MessageService {
	return &MessageService{
		client: client,
		logger: logger.With("component", "message_service"),
	}
}

// EnsureAssistantMessage returns the assistant message for the stream,
// creating an empty one on first call. The unique stream_id index guarantees
// exactly one row per stream even under a duplicate-event race.
func (s *MessageService) EnsureAssistantMessage(ctx context.Context, sessionID, topicID, userID, streamID string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Query().
		Where(chatmessage.StreamID(streamID)).
		Only(ctx)
	if err == nil {
		return msg, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query assistant message: %w", err)
	}

	msg, err = s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetTopicID(topicID).
		SetSessionID(sessionID).
		SetUserID(userID).
		SetRole(chatmessage.RoleAssistant).
		SetStreamID(streamID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.ChatMessage.Query().
				Where(chatmessage.StreamID(streamID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create assistant message: %w", err)
	}
	return msg, nil
}

// CreateAssistantMessage creates a fresh assistant message row. Used when a
// turn needs a second message, e.g. a new question after an answered one.
func (s *MessageService) CreateAssistantMessage(ctx context.Context, sessionID, topicID, userID, streamID string) (*ent.ChatMessage, error) {
	create := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetTopicID(topicID).
		SetSessionID(sessionID).
		SetUserID(userID).
		SetRole(chatmessage.RoleAssistant)
	if streamID != "" {
		create.SetStreamID(streamID)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant message: %w", err)
	}
	return msg, nil
}

// PendingQuestionMessage returns the newest assistant message on the topic
// whose question is still pending, or ErrNotFound.
func (s *MessageService) PendingQuestionMessage(ctx context.Context, topicID string) (*ent.ChatMessage, error) {
	msgs, err := s.client.ChatMessage.Query().
		Where(
			chatmessage.TopicID(topicID),
			chatmessage.RoleEQ(chatmessage.RoleAssistant),
			chatmessage.UserQuestionDataNotNil(),
		).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query question messages: %w", err)
	}
	for _, msg := range msgs {
		if status, _ := msg.UserQuestionData["status"].(string); status == QuestionStatusPending {
			return msg, nil
		}
	}
	return nil, ErrNotFound
}

// GetByStreamID returns the assistant message for a stream.
func (s *MessageService) GetByStreamID(ctx context.Context, streamID string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Query().
		Where(chatmessage.StreamID(streamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query message by stream: %w", err)
	}
	return msg, nil
}

// FlushPartial persists in-flight content so a crashed worker leaves a
// recoverable partial answer.
func (s *MessageService) FlushPartial(ctx context.Context, messageID, content, thinkingContent string) error {
	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetContent(content).
		SetThinkingContent(thinkingContent).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to flush partial content: %w", err)
	}
	return nil
}

// Finalize writes the final content and bulk-inserts buffered citations.
func (s *MessageService) Finalize(ctx context.Context, messageID, content, thinkingContent string, citations []models.Citation) error {
	upd := s.client.ChatMessage.UpdateOneID(messageID).
		SetContent(content).
		SetThinkingContent(thinkingContent)
	if len(citations) > 0 {
		rows := make([]map[string]any, 0, len(citations))
		for _, c := range citations {
			rows = append(rows, map[string]any{
				"title":   c.Title,
				"url":     c.URL,
				"snippet": c.Snippet,
			})
		}
		upd.SetCitations(rows)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finalize message: %w", err)
	}
	return nil
}

// SetError persists error fields plus any partial content.
func (s *MessageService) SetError(ctx context.Context, messageID string, errData models.ErrorData, partialContent, thinkingContent string) error {
	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetErrorCode(errData.ErrorCode).
		SetErrorCategory(errData.ErrorCategory).
		SetErrorDetail(errData.Detail).
		SetContent(partialContent).
		SetThinkingContent(thinkingContent).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist message error: %w", err)
	}
	return nil
}

// SetUserQuestion stores a pending question on the message.
func (s *MessageService) SetUserQuestion(ctx context.Context, messageID string, q models.AskUserQuestionData) error {
	data := map[string]any{
		"question_id":      q.QuestionID,
		"question":         q.Question,
		"allow_text_input": q.AllowTextInput,
		"timeout_seconds":  q.TimeoutSeconds,
		"thread_id":        q.ThreadID,
		"status":           QuestionStatusPending,
		"asked_at":         time.Now().Format(time.RFC3339),
	}
	if len(q.Options) > 0 {
		data["options"] = q.Options
	}
	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetUserQuestionData(data).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist user question: %w", err)
	}
	return nil
}

// HasAnsweredQuestion reports whether the message already carries an
// answered question, in which case a new question needs a fresh message.
func HasAnsweredQuestion(msg *ent.ChatMessage) bool {
	if msg == nil || msg.UserQuestionData == nil {
		return false
	}
	status, _ := msg.UserQuestionData["status"].(string)
	return status == QuestionStatusAnswered
}

// MarkQuestionAnswered records the user's response on the question blob.
func (s *MessageService) MarkQuestionAnswered(ctx context.Context, messageID string, resp models.UserQuestionResponse) error {
	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	data := msg.UserQuestionData
	if data == nil {
		data = map[string]any{}
	}
	data["status"] = QuestionStatusAnswered
	data["response"] = map[string]any{
		"text":             resp.Text,
		"selected_options": resp.SelectedOptions,
	}
	data["answered_at"] = time.Now().Format(time.RFC3339)
	err = msg.Update().SetUserQuestionData(data).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark question answered: %w", err)
	}
	return nil
}

// MarkQuestionExpired flips a pending question to expired.
func (s *MessageService) MarkQuestionExpired(ctx context.Context, messageID string) error {
	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	data := msg.UserQuestionData
	if data == nil {
		return nil
	}
	data["status"] = QuestionStatusExpired
	err = msg.Update().SetUserQuestionData(data).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark question expired: %w", err)
	}
	return nil
}

// LinkGeneratedFiles attaches file ids to the assistant message when the
// ownership matches.
func (s *MessageService) LinkGeneratedFiles(ctx context.Context, messageID, userID string, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}
	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	if msg.UserID != userID {
		return ErrAccessDenied
	}
	merged := append(append([]string{}, msg.FileIds...), fileIDs...)
	err = msg.Update().SetFileIds(merged).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to link generated files: %w", err)
	}
	return nil
}

// SetAgentRunID links the assistant message to its agent run.
func (s *MessageService) SetAgentRunID(ctx context.Context, messageID, runID string) error {
	err := s.client.ChatMessage.UpdateOneID(messageID).
		SetAgentRunID(runID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set agent run id: %w", err)
	}
	return nil
}

// LatestUserMessage returns the most recent user message on the topic, used
// by regenerate.
func (s *MessageService) LatestUserMessage(ctx context.Context, topicID string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Query().
		Where(
			chatmessage.TopicID(topicID),
			chatmessage.RoleEQ(chatmessage.RoleUser),
		).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query latest user message: %w", err)
	}
	return msg, nil
}
