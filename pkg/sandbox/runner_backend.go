package sandbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agentloom/loom/pkg/models"
)

// RunnerDispatcher sends a runner RPC and awaits the paired result.
// *runner.Dispatcher satisfies it.
type RunnerDispatcher interface {
	Send(ctx context.Context, userID, msgType string, payload any, timeout time.Duration) (*models.RunnerResult, error)
}

const runnerSandboxPrefix = "runner:"

// RunnerBackend routes every sandbox operation through the user's connected
// CLI runner. The "sandbox" is the user's own machine; Create is a presence
// check and the sandbox id encodes the user id for later routing.
type RunnerBackend struct {
	dispatcher RunnerDispatcher
	timeout    time.Duration
}

var _ Backend = (*RunnerBackend)(nil)

// NewRunnerBackend creates a runner-routed backend.
func NewRunnerBackend(dispatcher RunnerDispatcher, requestTimeout time.Duration) *RunnerBackend {
	return &RunnerBackend{
		dispatcher: dispatcher,
		timeout:    requestTimeout,
	}
}

// RunnerSandboxID builds the synthetic sandbox id for a user's runner.
func RunnerSandboxID(userID string) string {
	return runnerSandboxPrefix + userID
}

func runnerUserID(sandboxID string) (string, error) {
	if !strings.HasPrefix(sandboxID, runnerSandboxPrefix) {
		return "", fmt.Errorf("not a runner sandbox id: %q", sandboxID)
	}
	return strings.TrimPrefix(sandboxID, runnerSandboxPrefix), nil
}

func (b *RunnerBackend) call(ctx context.Context, sandboxID, msgType string, payload, out any) error {
	userID, err := runnerUserID(sandboxID)
	if err != nil {
		return err
	}
	result, err := b.dispatcher.Send(ctx, userID, msgType, payload, b.timeout)
	if err != nil {
		return fmt.Errorf("runner %s failed: %w", msgType, err)
	}
	if !result.Success {
		return fmt.Errorf("runner %s failed: %s", msgType, result.Error)
	}
	if out != nil && len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, out); err != nil {
			return fmt.Errorf("failed to decode runner %s result: %w", msgType, err)
		}
	}
	return nil
}

// Create verifies the runner answers and returns the synthetic id.
func (b *RunnerBackend) Create(ctx context.Context, userID, sessionID string) (string, error) {
	err := b.call(ctx, RunnerSandboxID(userID), models.RunnerTypeExec, map[string]any{
		"command":      "true",
		"timeout_secs": 10,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("runner not reachable: %w", err)
	}
	return RunnerSandboxID(userID), nil
}

// Delete is a no-op: nothing to tear down on the user's machine.
func (b *RunnerBackend) Delete(ctx context.Context, sandboxID string) error {
	return nil
}

// Start is a no-op: the runner is online or it is not.
func (b *RunnerBackend) Start(ctx context.Context, sandboxID string) error {
	return nil
}

// Exec runs a command on the runner.
func (b *RunnerBackend) Exec(ctx context.Context, sandboxID, command string, timeout time.Duration) (*ExecResult, error) {
	var result ExecResult
	err := b.call(ctx, sandboxID, models.RunnerTypeExec, map[string]any{
		"command":      command,
		"timeout_secs": int(timeout.Seconds()),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ReadFile reads a text file on the runner.
func (b *RunnerBackend) ReadFile(ctx context.Context, sandboxID, path string) (string, error) {
	data, err := b.ReadFileBytes(ctx, sandboxID, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes a text file on the runner.
func (b *RunnerBackend) WriteFile(ctx context.Context, sandboxID, path, content string) error {
	return b.WriteFileBytes(ctx, sandboxID, path, []byte(content))
}

// ReadFileBytes reads a file; content travels base64-encoded.
func (b *RunnerBackend) ReadFileBytes(ctx context.Context, sandboxID, path string) ([]byte, error) {
	var resp struct {
		Content string `json:"content"`
	}
	err := b.call(ctx, sandboxID, models.RunnerTypeReadFile, map[string]string{
		"path": path,
	}, &resp)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}
	return data, nil
}

// WriteFileBytes writes a file; content travels base64-encoded.
func (b *RunnerBackend) WriteFileBytes(ctx context.Context, sandboxID, path string, data []byte) error {
	return b.call(ctx, sandboxID, models.RunnerTypeWriteFile, map[string]string{
		"path":    path,
		"content": base64.StdEncoding.EncodeToString(data),
	}, nil)
}

// ListFiles lists a directory on the runner.
func (b *RunnerBackend) ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error) {
	var resp struct {
		Files []FileInfo `json:"files"`
	}
	err := b.call(ctx, sandboxID, models.RunnerTypeListFiles, map[string]string{
		"path": path,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// FindFiles matches file names against a glob pattern.
func (b *RunnerBackend) FindFiles(ctx context.Context, sandboxID, pattern string) ([]string, error) {
	var resp struct {
		Paths []string `json:"paths"`
	}
	err := b.call(ctx, sandboxID, models.RunnerTypeFindFiles, map[string]string{
		"pattern": pattern,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Paths, nil
}

// SearchInFiles greps file contents under path.
func (b *RunnerBackend) SearchInFiles(ctx context.Context, sandboxID, query, path string) ([]SearchMatch, error) {
	var resp struct {
		Matches []SearchMatch `json:"matches"`
	}
	err := b.call(ctx, sandboxID, models.RunnerTypeSearchInFiles, map[string]string{
		"query": query,
		"path":  path,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// GetPreviewURL is unsupported on runner sandboxes.
func (b *RunnerBackend) GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error) {
	return "", fmt.Errorf("preview URLs are not available for runner sandboxes")
}

// GetStatus probes the runner with a trivial exec.
func (b *RunnerBackend) GetStatus(ctx context.Context, sandboxID string) (*Status, error) {
	err := b.call(ctx, sandboxID, models.RunnerTypeExec, map[string]any{
		"command":      "true",
		"timeout_secs": 10,
	}, nil)
	if err != nil {
		return &Status{State: "unknown"}, nil
	}
	return &Status{State: "running"}, nil
}

// GetInfo describes the runner sandbox.
func (b *RunnerBackend) GetInfo(ctx context.Context, sandboxID string) (*Info, error) {
	return &Info{SandboxID: sandboxID}, nil
}

// KeepAlive is a no-op: runner liveness is tracked by its own heartbeat.
func (b *RunnerBackend) KeepAlive(ctx context.Context, sandboxID string) error {
	return nil
}
