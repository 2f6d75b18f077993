package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/runner"
)

// terminalConn is the per-connection state of one terminal WebSocket. A PTY
// session outlives the socket: disconnecting without close detaches it and
// the runner's output is buffered for later reattach.
type terminalConn struct {
	server *Server
	conn   *websocket.Conn
	userID string

	ptyID       string
	relayCancel context.CancelFunc
}

func (s *Server) handleTerminalWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("Terminal upgrade failed", "error", err)
		return
	}

	userID, err := s.auth.UserID(requestToken(c.Request))
	if err != nil {
		_ = conn.Close(closeInvalidToken, "invalid token")
		return
	}

	t := &terminalConn{server: s, conn: conn, userID: userID}
	t.serve(c.Request.Context())
}

func (t *terminalConn) serve(parentCtx context.Context) {
	s := t.server
	logger := s.logger.With("user_id", t.userID)

	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()
	defer func() { _ = t.conn.Close(websocket.StatusNormalClosure, "") }()

	// Disconnect without close: keep the PTY alive detached.
	defer func() {
		t.stopRelay()
		if t.ptyID != "" {
			s.pty.Detach(context.WithoutCancel(ctx), t.ptyID)
		}
	}()

	logger.Info("Terminal connection established")

	for {
		_, data, err := t.conn.Read(ctx)
		if err != nil {
			logger.Info("Terminal connection closed", "error", err)
			return
		}
		var msg models.TerminalClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warn("Malformed terminal frame", "error", err)
			continue
		}
		t.handleFrame(ctx, msg)
	}
}

func (t *terminalConn) handleFrame(ctx context.Context, msg models.TerminalClientMessage) {
	s := t.server

	switch msg.Type {
	case models.TerminalTypeCreate:
		ptyID, err := s.pty.Create(ctx, t.userID, msg.SessionID, msg.Cols, msg.Rows)
		if err != nil {
			s.logger.Warn("PTY create failed", "user_id", t.userID, "error", err)
			t.reply(ctx, models.TerminalServerMessage{
				Type:    models.TerminalTypeError,
				Message: "failed to create terminal session",
			})
			return
		}
		t.switchSession(ctx, ptyID)
		t.reply(ctx, models.TerminalServerMessage{
			Type:      models.TerminalTypeCreated,
			SessionID: ptyID,
		})

	case models.TerminalTypeAttach:
		replay, err := s.pty.Attach(ctx, t.userID, msg.SessionID)
		if err != nil {
			reason := "failed to attach terminal session"
			if errors.Is(err, runner.ErrPtyNotFound) {
				reason = err.Error()
			}
			t.reply(ctx, models.TerminalServerMessage{
				Type:      models.TerminalTypeAttachFailed,
				SessionID: msg.SessionID,
				Message:   reason,
			})
			return
		}
		t.reply(ctx, models.TerminalServerMessage{
			Type:      models.TerminalTypeAttached,
			SessionID: msg.SessionID,
		})
		// Buffered output is replayed before the live subscription starts.
		for _, chunk := range replay {
			t.reply(ctx, models.TerminalServerMessage{
				Type:      models.TerminalTypeOutput,
				SessionID: msg.SessionID,
				Data:      string(chunk),
			})
		}
		t.switchSession(ctx, msg.SessionID)

	case models.TerminalTypeInput:
		if t.ptyID == "" {
			return
		}
		if err := s.pty.Input(ctx, t.userID, t.ptyID, msg.Data); err != nil {
			s.logger.Warn("PTY input failed", "pty_session_id", t.ptyID, "error", err)
		}

	case models.TerminalTypeResize:
		if t.ptyID == "" {
			return
		}
		if err := s.pty.Resize(ctx, t.userID, t.ptyID, msg.Cols, msg.Rows); err != nil {
			s.logger.Warn("PTY resize failed", "pty_session_id", t.ptyID, "error", err)
		}

	case models.TerminalTypeClose:
		if t.ptyID == "" {
			return
		}
		t.stopRelay()
		if err := s.pty.Close(ctx, t.userID, t.ptyID, 0); err != nil {
			s.logger.Warn("PTY close failed", "pty_session_id", t.ptyID, "error", err)
		}
		t.ptyID = ""

	case models.TerminalTypePing:
		t.reply(ctx, models.TerminalServerMessage{Type: models.TerminalTypePong})

	default:
		t.reply(ctx, models.TerminalServerMessage{
			Type:    models.TerminalTypeError,
			Message: "unknown message type",
		})
	}
}

// switchSession points the live relay at a PTY's output channel, replacing
// any previous subscription.
func (t *terminalConn) switchSession(ctx context.Context, ptyID string) {
	s := t.server
	t.stopRelay()
	t.ptyID = ptyID

	relayCtx, cancel := context.WithCancel(ctx)
	sub, err := s.bus.Subscribe(relayCtx, bus.TerminalChannel(ptyID))
	if err != nil {
		cancel()
		s.logger.Error("Terminal subscription failed", "pty_session_id", ptyID, "error", err)
		return
	}
	t.relayCancel = func() {
		cancel()
		_ = sub.Close()
	}

	go func() {
		for data := range sub.Messages() {
			writeCtx, writeCancel := context.WithTimeout(relayCtx, s.cfg.Server.WriteTimeout)
			err := t.conn.Write(writeCtx, websocket.MessageText, data)
			writeCancel()
			if err != nil {
				return
			}
		}
	}()
}

func (t *terminalConn) stopRelay() {
	if t.relayCancel != nil {
		t.relayCancel()
		t.relayCancel = nil
	}
}

func (t *terminalConn) reply(ctx context.Context, msg models.TerminalServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, t.server.cfg.Server.WriteTimeout)
	defer cancel()
	if err := t.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		t.server.logger.Warn("Terminal write failed", "user_id", t.userID, "error", err)
	}
}
