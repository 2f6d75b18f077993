package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentloom/loom/pkg/sandbox"
)

// maxExecTimeout caps the per-request command timeout a client may ask for.
const maxExecTimeout = 5 * time.Minute

// sandboxScope resolves the caller's sandbox for a session, creating it on
// first touch. Ownership is checked first so a denied session never triggers
// a sandbox create.
func (s *Server) sandboxScope(c *gin.Context) (sandbox.Backend, string, bool) {
	sessionID := c.Param("session_id")
	if _, err := s.sessions.ValidateSessionAccess(c.Request.Context(), sessionID, currentUser(c)); err != nil {
		abortWithServiceError(c, err)
		return nil, "", false
	}
	backend, sandboxID, err := s.sandboxes.Ensure(c.Request.Context(), currentUser(c), sessionID)
	if errors.Is(err, sandbox.ErrTooManySandboxes) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "sandbox limit reached"})
		return nil, "", false
	}
	if err != nil {
		s.logger.Error("Sandbox resolution failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "sandbox unavailable"})
		return nil, "", false
	}
	return backend, sandboxID, true
}

type sandboxExecRequest struct {
	Command        string `json:"command" binding:"required"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func (s *Server) handleSandboxExec(c *gin.Context) {
	var req sandboxExecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	timeout := s.cfg.Sandbox.RequestTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
		if timeout > maxExecTimeout {
			timeout = maxExecTimeout
		}
	}

	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	result, err := backend.Exec(c.Request.Context(), sandboxID, req.Command, timeout)
	if err != nil {
		s.logger.Error("Sandbox exec failed", "sandbox_id", sandboxID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "command execution failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSandboxReadFile(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	content, err := backend.ReadFile(c.Request.Context(), sandboxID, path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not readable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "content": content})
}

type sandboxWriteRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

func (s *Server) handleSandboxWriteFile(c *gin.Context) {
	var req sandboxWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	if err := backend.WriteFile(c.Request.Context(), sandboxID, req.Path, req.Content); err != nil {
		s.logger.Error("Sandbox write failed", "sandbox_id", sandboxID, "path", req.Path, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "file write failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

func (s *Server) handleSandboxListFiles(c *gin.Context) {
	path := c.DefaultQuery("path", ".")
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	files, err := backend.ListFiles(c.Request.Context(), sandboxID, path)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "files": files})
}

func (s *Server) handleSandboxFindFiles(c *gin.Context) {
	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern is required"})
		return
	}
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	paths, err := backend.FindFiles(c.Request.Context(), sandboxID, pattern)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "find failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

func (s *Server) handleSandboxSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	matches, err := backend.SearchInFiles(c.Request.Context(), sandboxID, query, c.DefaultQuery("path", "."))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (s *Server) handleSandboxPreview(c *gin.Context) {
	port, err := strconv.Atoi(c.DefaultQuery("port", "3000"))
	if err != nil || port < 1 || port > 65535 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid port"})
		return
	}
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	url, err := backend.GetPreviewURL(c.Request.Context(), sandboxID, port)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "preview unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "port": port})
}

func (s *Server) handleSandboxStatus(c *gin.Context) {
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	status, err := backend.GetStatus(c.Request.Context(), sandboxID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "status unavailable"})
		return
	}
	info, err := backend.GetInfo(c.Request.Context(), sandboxID)
	if err != nil {
		info = &sandbox.Info{SandboxID: sandboxID}
	}
	c.JSON(http.StatusOK, gin.H{
		"sandbox_id":  sandboxID,
		"state":       status.State,
		"preview_url": info.PreviewURL,
	})
}

func (s *Server) handleSandboxKeepAlive(c *gin.Context) {
	backend, sandboxID, ok := s.sandboxScope(c)
	if !ok {
		return
	}
	if err := backend.KeepAlive(c.Request.Context(), sandboxID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "keepalive failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sandbox_id": sandboxID})
}

// handleSandboxDelete tears the sandbox down without creating one first, so
// it validates ownership and calls Cleanup directly.
func (s *Server) handleSandboxDelete(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, err := s.sessions.ValidateSessionAccess(c.Request.Context(), sessionID, currentUser(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	if err := s.sandboxes.Cleanup(c.Request.Context(), currentUser(c), sessionID); err != nil {
		s.logger.Error("Sandbox cleanup failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cleanup failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
