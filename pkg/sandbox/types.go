// Package sandbox gives each session exactly one compute environment,
// lazily, with a uniform operation surface over multiple backends. The
// binding lives in Redis under a TTL; creation is serialized by a short
// named lock so concurrent first-touches converge on one sandbox.
package sandbox

import (
	"context"
	"time"
)

// ExecResult is the outcome of a command execution inside a sandbox.
type ExecResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// FileInfo describes one entry of a directory listing.
type FileInfo struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	IsDir   bool      `json:"is_dir"`
	ModTime time.Time `json:"mod_time,omitempty"`
}

// SearchMatch is one hit of a content search.
type SearchMatch struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Status reports backend-side sandbox health.
type Status struct {
	State string `json:"state"` // creating, running, stopped, unknown
}

// Info describes a live sandbox.
type Info struct {
	SandboxID  string    `json:"sandbox_id"`
	PreviewURL string    `json:"preview_url,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Backend is the polymorphic sandbox operation surface. Implementations:
// the cloud provider and the runner-routed backend.
type Backend interface {
	Create(ctx context.Context, userID, sessionID string) (string, error)
	Delete(ctx context.Context, sandboxID string) error
	Start(ctx context.Context, sandboxID string) error

	Exec(ctx context.Context, sandboxID, command string, timeout time.Duration) (*ExecResult, error)

	ReadFile(ctx context.Context, sandboxID, path string) (string, error)
	WriteFile(ctx context.Context, sandboxID, path, content string) error
	ReadFileBytes(ctx context.Context, sandboxID, path string) ([]byte, error)
	WriteFileBytes(ctx context.Context, sandboxID, path string, data []byte) error
	ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error)
	FindFiles(ctx context.Context, sandboxID, pattern string) ([]string, error)
	SearchInFiles(ctx context.Context, sandboxID, query, path string) ([]SearchMatch, error)

	GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error)
	GetStatus(ctx context.Context, sandboxID string) (*Status, error)
	GetInfo(ctx context.Context, sandboxID string) (*Info, error)
	KeepAlive(ctx context.Context, sandboxID string) error
}
