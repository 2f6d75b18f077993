package api

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/worker"
)

// Application close codes on the WebSocket surface.
const (
	closeInvalidToken  websocket.StatusCode = 4001
	closeAccessDenied  websocket.StatusCode = 4003
	closeTopicMismatch websocket.StatusCode = 4004
)

// chatConn is the per-connection state of one chat WebSocket.
type chatConn struct {
	server *Server

	conn      *websocket.Conn
	cancel    context.CancelFunc
	sessionID string
	topicID   string
	userID    string
	cid       string
	attr      models.Attribution
}

// takeoverChatConn registers g as the live connection for its cid and evicts
// the previous one: only one socket per connection id at a time.
func (s *Server) takeoverChatConn(g *chatConn) {
	s.connMu.Lock()
	prev := s.chatConns[g.cid]
	s.chatConns[g.cid] = g
	s.connMu.Unlock()

	if prev != nil {
		s.logger.Info("Evicting superseded chat connection", "cid", g.cid)
		if prev.cancel != nil {
			prev.cancel()
		}
		if prev.conn != nil {
			_ = prev.conn.Close(websocket.StatusGoingAway, "superseded by newer connection")
		}
	}
}

// releaseChatConn drops g's registration if it still owns the cid. The
// return value tells the caller whether presence cleanup is its job; an
// evicted connection must not clear the presence its successor set.
func (s *Server) releaseChatConn(g *chatConn) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.chatConns[g.cid] == g {
		delete(s.chatConns, g.cid)
		return true
	}
	return false
}

// handleChatWS runs the gateway acceptance sequence and then the read loop.
// Authentication happens after the upgrade so failures surface as close
// codes the browser can inspect.
func (s *Server) handleChatWS(c *gin.Context) {
	sessionID := c.Param("session_id")
	topicID := c.Param("topic_id")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	ctx := c.Request.Context()

	userID, err := s.auth.UserID(requestToken(c.Request))
	if err != nil {
		_ = conn.Close(closeInvalidToken, "invalid token")
		return
	}

	session, _, err := s.sessions.ValidateTopicAccess(ctx, sessionID, topicID, userID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		_ = conn.Close(closeTopicMismatch, "topic not found")
		return
	case errors.Is(err, services.ErrAccessDenied):
		_ = conn.Close(closeAccessDenied, "access denied")
		return
	case err != nil:
		s.logger.Error("Topic validation failed", "topic_id", topicID, "error", err)
		_ = conn.Close(websocket.StatusInternalError, "validation failed")
		return
	}

	g := &chatConn{
		server:    s,
		conn:      conn,
		sessionID: sessionID,
		topicID:   topicID,
		userID:    userID,
		cid:       models.ConnectionID(sessionID, topicID),
		attr:      s.sessions.ResolveAttribution(session),
	}
	g.serve(ctx)
}

// serve owns the connection from hook registration to graceful close.
func (g *chatConn) serve(parentCtx context.Context) {
	s := g.server
	logger := s.logger.With("cid", g.cid, "user_id", g.userID)

	ctx, cancel := context.WithCancel(parentCtx)
	g.cancel = cancel
	defer cancel()
	defer func() { _ = g.conn.Close(websocket.StatusNormalClosure, "") }()

	if err := s.hook.Connect(ctx, g.userID, g.cid); err != nil {
		logger.Warn("Connection rejected by lifecycle hook", "error", err)
		_ = g.conn.Close(websocket.StatusPolicyViolation, "connection limit reached")
		return
	}
	defer s.hook.Disconnect(context.WithoutCancel(ctx), g.userID, g.cid)

	s.takeoverChatConn(g)
	defer func() {
		if !s.releaseChatConn(g) {
			return
		}
		if err := s.bus.ClearPresence(context.WithoutCancel(ctx), g.cid); err != nil {
			logger.Warn("Failed to clear presence", "error", err)
		}
	}()

	if err := s.bus.SetPresence(ctx, g.cid, s.cfg.Server.PresenceTTL); err != nil {
		logger.Warn("Failed to set presence", "error", err)
	}

	// One subscription covers turn events and cross-topic user events
	// (wallet updates).
	sub, err := s.bus.Subscribe(ctx, bus.ChatChannel(g.cid), bus.UserChannel(g.userID))
	if err != nil {
		logger.Error("Bus subscription failed", "error", err)
		return
	}
	defer func() { _ = sub.Close() }()

	// Relay: bus → socket, preserving publish order.
	go func() {
		for data := range sub.Messages() {
			if err := g.writeRaw(ctx, data); err != nil {
				cancel()
				return
			}
		}
	}()

	// Heartbeat: ping frame + presence refresh.
	go func() {
		ticker := time.NewTicker(s.cfg.Server.HeartbeatTick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := g.send(ctx, models.NewStreamEvent(models.KindPing, "", nil)); err != nil {
					cancel()
					return
				}
				if err := s.bus.RefreshPresence(ctx, g.cid, s.cfg.Server.PresenceTTL); err != nil {
					logger.Warn("Presence refresh failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Chat connection established")

	for {
		_, data, err := g.conn.Read(ctx)
		if err != nil {
			logger.Info("Chat connection closed", "error", err)
			return
		}
		var frame models.ChatClientMessage
		if err := json.Unmarshal(data, &frame); err != nil {
			logger.Warn("Malformed client frame", "error", err)
			continue
		}
		g.handleFrame(ctx, frame)
	}
}

// handleFrame dispatches one client → server frame.
func (g *chatConn) handleFrame(ctx context.Context, frame models.ChatClientMessage) {
	switch frame.Type {
	case models.ClientTypePong:
		// Heartbeat reply; presence is refreshed by the heartbeat loop.

	case models.ClientTypeAbort:
		if err := g.server.bus.SignalAbort(ctx, g.cid, g.server.cfg.Worker.AbortTTL); err != nil {
			g.server.logger.Warn("Abort signal failed", "cid", g.cid, "error", err)
		}

	case models.ClientTypeUserQuestionResponse:
		g.handleQuestionResponse(ctx, frame)

	case models.ClientTypeRegenerate:
		g.handleRegenerate(ctx)

	default:
		// Anything else is a normal user message.
		g.handleUserMessage(ctx, frame)
	}
}

// handleUserMessage runs the funded-insert dispatch path.
func (g *chatConn) handleUserMessage(ctx context.Context, frame models.ChatClientMessage) {
	s := g.server

	msg, _, err := s.chat.CreateUserMessageFunded(ctx, services.UserMessageParams{
		SessionID: g.sessionID,
		TopicID:   g.topicID,
		UserID:    g.userID,
		Content:   frame.Message,
		FileIDs:   frame.FileIDs,
		ClientID:  frame.ClientID,
	})
	switch {
	case errors.Is(err, services.ErrInsufficientBalance):
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindInsufficientBalance, "", models.InsufficientBalanceData{
			ErrorCode:      "insufficient_balance",
			ActionRequired: "top_up",
		}))
		return
	case services.IsValidationError(err):
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, "", models.ErrorData{
			ErrorCode:     "invalid_message",
			ErrorCategory: "input",
			Detail:        err.Error(),
		}))
		return
	case err != nil:
		s.logger.Error("User message insert failed", "cid", g.cid, "error", err)
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, "", models.ErrorData{
			ErrorCode:     "message_insert_failed",
			ErrorCategory: "internal",
		}))
		return
	}

	g.sendOrLog(ctx, models.NewStreamEvent(models.KindUserMessageSaved, "", models.UserMessageSavedData{
		MessageID: msg.ID,
		ClientID:  frame.ClientID,
		Content:   msg.Content,
		FileIDs:   msg.FileIds,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339Nano),
	}))

	streamID := uuid.New().String()
	g.sendOrLog(ctx, models.NewStreamEvent(models.KindLoading, streamID, nil))

	err = s.executor.Submit(ctx, worker.TurnInput{
		SessionID:     g.sessionID,
		TopicID:       g.topicID,
		UserID:        g.userID,
		StreamID:      streamID,
		Prompt:        frame.Message,
		FileIDs:       frame.FileIDs,
		Context:       frame.Context,
		UserMessageID: msg.ID,
		Attribution:   g.attr,
	})
	if err != nil {
		s.logger.Error("Turn dispatch failed", "cid", g.cid, "error", err)
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, streamID, models.ErrorData{
			ErrorCode:     "dispatch_failed",
			ErrorCategory: "internal",
		}))
		return
	}

	g.sendOrLog(ctx, models.NewStreamEvent(models.KindMessageAck, streamID, models.MessageAckData{
		MessageID: msg.ID,
		ClientID:  frame.ClientID,
	}))

	go s.sessions.MaybeGenerateTitle(context.WithoutCancel(ctx), g.topicID, frame.Message)
}

// handleQuestionResponse resumes an interrupted turn with the user's answer.
// The resumed turn gets a fresh stream id.
func (g *chatConn) handleQuestionResponse(ctx context.Context, frame models.ChatClientMessage) {
	s := g.server
	if frame.Data == nil {
		s.logger.Warn("user_question_response without data", "cid", g.cid)
		return
	}

	err := s.executor.Resume(ctx, worker.ResumeInput{
		TurnInput: worker.TurnInput{
			SessionID:   g.sessionID,
			TopicID:     g.topicID,
			UserID:      g.userID,
			StreamID:    uuid.New().String(),
			Attribution: g.attr,
		},
		QuestionID: frame.Data.QuestionID,
		Response:   *frame.Data,
	})
	switch {
	case errors.Is(err, worker.ErrStaleQuestion):
		// Stale answers are dropped silently; the worker already logged it.
	case errors.Is(err, worker.ErrQuestionExpired):
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, "", models.ErrorData{
			ErrorCode:     "question_expired",
			ErrorCategory: "input",
			Detail:        "the question timed out before the response arrived",
		}))
	case err != nil:
		s.logger.Error("Resume dispatch failed", "cid", g.cid, "error", err)
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, "", models.ErrorData{
			ErrorCode:     "dispatch_failed",
			ErrorCategory: "internal",
		}))
	}
}

// handleRegenerate re-dispatches the most recent user message under a fresh
// stream id after a balance re-check. No new message row is inserted.
func (g *chatConn) handleRegenerate(ctx context.Context) {
	s := g.server

	last, err := s.messages.LatestUserMessage(ctx, g.topicID)
	if err != nil {
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, "", models.ErrorData{
			ErrorCode:     "no_user_message",
			ErrorCategory: "input",
			Detail:        "nothing to regenerate",
		}))
		return
	}

	ok, err := s.chat.CheckBalance(ctx, g.userID)
	if err != nil {
		s.logger.Error("Balance check failed", "cid", g.cid, "error", err)
		return
	}
	if !ok {
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindInsufficientBalance, "", models.InsufficientBalanceData{
			ErrorCode:      "insufficient_balance",
			ActionRequired: "top_up",
		}))
		return
	}

	streamID := uuid.New().String()
	g.sendOrLog(ctx, models.NewStreamEvent(models.KindLoading, streamID, nil))

	err = s.executor.Submit(ctx, worker.TurnInput{
		SessionID:     g.sessionID,
		TopicID:       g.topicID,
		UserID:        g.userID,
		StreamID:      streamID,
		Prompt:        last.Content,
		FileIDs:       last.FileIds,
		UserMessageID: last.ID,
		Attribution:   g.attr,
	})
	if err != nil {
		s.logger.Error("Regenerate dispatch failed", "cid", g.cid, "error", err)
		g.sendOrLog(ctx, models.NewStreamEvent(models.KindError, streamID, models.ErrorData{
			ErrorCode:     "dispatch_failed",
			ErrorCategory: "internal",
		}))
	}
}

// send marshals and writes one event with the configured write timeout.
func (g *chatConn) send(ctx context.Context, ev models.StreamEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return g.writeRaw(ctx, data)
}

func (g *chatConn) sendOrLog(ctx context.Context, ev models.StreamEvent) {
	if err := g.send(ctx, ev); err != nil {
		g.server.logger.Warn("Socket write failed", "cid", g.cid, "kind", ev.Kind, "error", err)
	}
}

func (g *chatConn) writeRaw(ctx context.Context, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, g.server.cfg.Server.WriteTimeout)
	defer cancel()
	return g.conn.Write(writeCtx, websocket.MessageText, data)
}
