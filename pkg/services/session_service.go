package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/ent/schema"
	"github.com/agentloom/loom/ent/topic"
	"github.com/agentloom/loom/pkg/models"
)

// TitleGenerator derives a topic title from the first user message. The
// default implementation truncates; deployments may plug a model-backed one.
type TitleGenerator func(ctx context.Context, firstUserMessage string) (string, error)

// TruncateTitle is the default TitleGenerator: first line, at most 40 runes.
func TruncateTitle(_ context.Context, firstUserMessage string) (string, error) {
	title := strings.TrimSpace(firstUserMessage)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	if utf8.RuneCountInString(title) > 40 {
		runes := []rune(title)
		title = string(runes[:40]) + "…"
	}
	if title == "" {
		title = schema.DefaultTopicTitle
	}
	return title, nil
}

// SessionService manages sessions, topics, and connection-time attribution.
type SessionService struct {
	client   *ent.Client
	titleGen TitleGenerator
	logger   *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, titleGen TitleGenerator, logger *slog.Logger) *SessionService {
	if titleGen == nil {
		titleGen = TruncateTitle
	}
	return &SessionService{
		client:   client,
		titleGen: titleGen,
		logger:   logger.With("component", "session_service"),
	}
}

// CreateSession creates a session bound to an agent.
func (s *SessionService) CreateSession(ctx context.Context, userID, agentID string, marketplaceID, developerUserID string, configEditable bool) (*ent.Session, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	builder := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetAgentID(agentID).
		SetConfigEditable(configEditable)
	if marketplaceID != "" {
		builder.SetMarketplaceID(marketplaceID)
	}
	if developerUserID != "" {
		builder.SetDeveloperUserID(developerUserID)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// CreateTopic creates a topic under an existing session.
func (s *SessionService) CreateTopic(ctx context.Context, sessionID, userID string) (*ent.Topic, error) {
	session, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		// Treated as not-found to prevent enumeration.
		return nil, ErrNotFound
	}

	t, err := s.client.Topic.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return t, nil
}

// ValidateSessionAccess loads the session and verifies it belongs to the
// user. Returns ErrNotFound for a missing session and ErrAccessDenied for a
// cross-user one.
func (s *SessionService) ValidateSessionAccess(ctx context.Context, sessionID, userID string) (*ent.Session, error) {
	session, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrAccessDenied
	}
	return session, nil
}

// ValidateTopicAccess loads the topic and its parent session and verifies
// both belong to the user. Returns ErrNotFound for a missing topic and
// ErrAccessDenied for a cross-user session; the gateway maps these to the
// 4004 and 4003 close codes.
func (s *SessionService) ValidateTopicAccess(ctx context.Context, sessionID, topicID, userID string) (*ent.Session, *ent.Topic, error) {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load topic: %w", err)
	}
	if t.SessionID != sessionID {
		return nil, nil, ErrNotFound
	}

	session, err := s.client.Session.Get(ctx, t.SessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID || t.UserID != userID {
		return nil, nil, ErrAccessDenied
	}
	return session, t, nil
}

// ResolveAttribution derives the developer-reward attribution from the
// session's agent origin. Fork mode follows config_editable.
func (s *SessionService) ResolveAttribution(session *ent.Session) models.Attribution {
	attr := models.Attribution{AgentID: session.AgentID}
	if session.MarketplaceID != nil {
		attr.MarketplaceID = *session.MarketplaceID
	}
	if session.DeveloperUserID != nil {
		attr.DeveloperUserID = *session.DeveloperUserID
	}
	if session.ConfigEditable {
		attr.ForkMode = "editable"
	} else {
		attr.ForkMode = "locked"
	}
	return attr
}

// TouchTopic bumps last_message_at for topic list ordering.
func (s *SessionService) TouchTopic(ctx context.Context, topicID string) error {
	err := s.client.Topic.UpdateOneID(topicID).
		SetLastMessageAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch topic: %w", err)
	}
	return nil
}

// MaybeGenerateTitle replaces the placeholder title from the first user
// message. Fired in the background after a message insert; only acts while
// the conversation is young (at most 3 messages) and the title is still the
// default. Best-effort.
func (s *SessionService) MaybeGenerateTitle(ctx context.Context, topicID, firstUserMessage string) {
	t, err := s.client.Topic.Get(ctx, topicID)
	if err != nil {
		s.logger.Warn("Title generation skipped, topic load failed", "topic_id", topicID, "error", err)
		return
	}
	if t.Title != schema.DefaultTopicTitle {
		return
	}
	count, err := s.client.ChatMessage.Query().
		Where(chatmessage.TopicID(topicID)).
		Count(ctx)
	if err != nil || count > 3 {
		return
	}

	title, err := s.titleGen(ctx, firstUserMessage)
	if err != nil || title == "" {
		s.logger.Warn("Title generation failed", "topic_id", topicID, "error", err)
		return
	}
	err = s.client.Topic.Update().
		Where(topic.ID(topicID), topic.Title(schema.DefaultTopicTitle)).
		SetTitle(title).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Title update failed", "topic_id", topicID, "error", err)
	}
}
