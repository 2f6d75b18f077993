package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agentloom/loom/pkg/models"
)

// runnerSocket adapts a runner WebSocket to the dispatcher's Conn interface.
type runnerSocket struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func (r *runnerSocket) Send(ctx context.Context, msg models.RunnerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()
	return r.conn.Write(writeCtx, websocket.MessageText, data)
}

// handleRunnerWS terminates a user's CLI runner connection. The runner
// authenticates with the user's JWT plus the static runner token; this pod
// becomes home for the runner and serves cross-pod requests for it.
func (s *Server) handleRunnerWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("Runner upgrade failed", "error", err)
		return
	}

	userID, err := s.auth.UserID(requestToken(c.Request))
	if err != nil {
		_ = conn.Close(closeInvalidToken, "invalid token")
		return
	}
	if !s.auth.VerifyRunnerToken(c.Query("runner_token")) {
		_ = conn.Close(closeInvalidToken, "invalid runner token")
		return
	}

	logger := s.logger.With("user_id", userID)
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	sock := &runnerSocket{conn: conn, writeTimeout: s.cfg.Server.WriteTimeout}
	s.registry.Register(userID, sock)
	defer s.registry.Unregister(userID, sock)

	runnerID := uuid.New().String()
	if err := s.bus.SetRunnerOnline(ctx, userID, runnerID, s.cfg.Runner.PresenceTTL); err != nil {
		logger.Warn("Failed to set runner presence", "error", err)
	}
	defer func() {
		if err := s.bus.ClearRunnerOnline(context.WithoutCancel(ctx), userID); err != nil {
			logger.Warn("Failed to clear runner presence", "error", err)
		}
	}()

	// Presence refresh; the TTL covers a crashed pod.
	go func() {
		ticker := time.NewTicker(s.cfg.Server.HeartbeatTick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.bus.RefreshRunnerOnline(ctx, userID, s.cfg.Runner.PresenceTTL); err != nil {
					logger.Warn("Runner presence refresh failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Requests from other pods are forwarded onto this socket.
	go s.dispatcher.ServeCrossPod(ctx, userID, sock)

	logger.Info("Runner connected", "runner_id", runnerID)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			logger.Info("Runner disconnected", "runner_id", runnerID, "error", err)
			return
		}
		var msg models.RunnerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warn("Malformed runner frame", "error", err)
			continue
		}
		s.dispatcher.HandleRunnerFrame(ctx, userID, msg, s.pty)
	}
}
