// Package api terminates the platform's HTTP and WebSocket surface: the
// chat gateway, the terminal and runner sockets, and the thin REST layer
// around sessions, topics, and the wallet.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/database"
	"github.com/agentloom/loom/pkg/runner"
	"github.com/agentloom/loom/pkg/sandbox"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/wallet"
	"github.com/agentloom/loom/pkg/worker"
)

// Server wires the gateway's handlers to the platform services.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	bus      *bus.Bus
	auth     *Authenticator
	hook     ConnectionHook
	executor *worker.TurnExecutor

	sessions *services.SessionService
	chat     *services.ChatService
	messages *services.MessageService
	wallets  *wallet.Service

	registry   *runner.Registry
	dispatcher *runner.Dispatcher
	pty        *runner.PtyManager
	sandboxes  *sandbox.Manager

	// Live chat connections by connection id; a new accept evicts the old.
	connMu    sync.Mutex
	chatConns map[string]*chatConn

	logger *slog.Logger
}

// NewServer creates a Server. A nil hook defaults to NopHook.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	b *bus.Bus,
	executor *worker.TurnExecutor,
	sessions *services.SessionService,
	chat *services.ChatService,
	messages *services.MessageService,
	wallets *wallet.Service,
	registry *runner.Registry,
	dispatcher *runner.Dispatcher,
	pty *runner.PtyManager,
	sandboxes *sandbox.Manager,
	hook ConnectionHook,
	logger *slog.Logger,
) *Server {
	if hook == nil {
		hook = NopHook{}
	}
	return &Server{
		cfg:        cfg,
		db:         db,
		bus:        b,
		auth:       NewAuthenticator(cfg.Server.JWTSecret, cfg.Server.RunnerToken),
		hook:       hook,
		executor:   executor,
		sessions:   sessions,
		chat:       chat,
		messages:   messages,
		wallets:    wallets,
		registry:   registry,
		dispatcher: dispatcher,
		pty:        pty,
		sandboxes:  sandboxes,
		chatConns:  make(map[string]*chatConn),
		logger:     logger.With("component", "api"),
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api", s.auth.AuthRequired())
	api.POST("/sessions", s.handleCreateSession)
	api.POST("/sessions/:session_id/topics", s.handleCreateTopic)
	api.GET("/wallet", s.handleGetWallet)

	sb := api.Group("/sessions/:session_id/sandbox")
	sb.POST("/exec", s.handleSandboxExec)
	sb.GET("/files", s.handleSandboxReadFile)
	sb.PUT("/files", s.handleSandboxWriteFile)
	sb.GET("/files/list", s.handleSandboxListFiles)
	sb.GET("/files/find", s.handleSandboxFindFiles)
	sb.GET("/files/search", s.handleSandboxSearch)
	sb.GET("/preview", s.handleSandboxPreview)
	sb.GET("/status", s.handleSandboxStatus)
	sb.POST("/keepalive", s.handleSandboxKeepAlive)
	sb.DELETE("", s.handleSandboxDelete)

	// WebSocket upgrades authenticate inside the handler so failures can be
	// reported with close codes instead of HTTP statuses.
	r.GET("/ws/chat/:session_id/:topic_id", s.handleChatWS)
	r.GET("/ws/terminal", s.handleTerminalWS)
	r.GET("/ws/runner", s.handleRunnerWS)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

type createSessionRequest struct {
	AgentID         string `json:"agent_id" binding:"required"`
	MarketplaceID   string `json:"marketplace_id"`
	DeveloperUserID string `json:"developer_user_id"`
	ConfigEditable  *bool  `json:"config_editable"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	editable := true
	if req.ConfigEditable != nil {
		editable = *req.ConfigEditable
	}
	session, err := s.sessions.CreateSession(c.Request.Context(), currentUser(c),
		req.AgentID, req.MarketplaceID, req.DeveloperUserID, editable)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleCreateTopic(c *gin.Context) {
	topic, err := s.sessions.CreateTopic(c.Request.Context(), c.Param("session_id"), currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (s *Server) handleGetWallet(c *gin.Context) {
	w, err := s.wallets.GetOrCreate(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"free":           w.Free,
		"paid":           w.Paid,
		"earned":         w.Earned,
		"virtual_total":  w.VirtualTotal,
		"total_credited": w.TotalCredited,
		"total_consumed": w.TotalConsumed,
	})
}
