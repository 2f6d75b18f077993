package sandbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CloudBackend talks to the managed sandbox provider over its JSON API.
type CloudBackend struct {
	baseURL string
	client  *http.Client
}

var _ Backend = (*CloudBackend)(nil)

// NewCloudBackend creates a backend for the provider at baseURL
// (e.g. "http://sandbox-provider:9000").
func NewCloudBackend(baseURL string, requestTimeout time.Duration) *CloudBackend {
	return &CloudBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (b *CloudBackend) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("sandbox provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sandbox provider returned %d for %s %s: %s", resp.StatusCode, method, path, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// Create provisions a sandbox for the session.
func (b *CloudBackend) Create(ctx context.Context, userID, sessionID string) (string, error) {
	var resp struct {
		SandboxID string `json:"sandbox_id"`
	}
	err := b.do(ctx, http.MethodPost, "/sandboxes", map[string]string{
		"user_id":    userID,
		"session_id": sessionID,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.SandboxID == "" {
		return "", fmt.Errorf("sandbox provider returned empty sandbox id")
	}
	return resp.SandboxID, nil
}

// Delete tears the sandbox down.
func (b *CloudBackend) Delete(ctx context.Context, sandboxID string) error {
	return b.do(ctx, http.MethodDelete, "/sandboxes/"+sandboxID, nil, nil)
}

// Start resumes a stopped sandbox.
func (b *CloudBackend) Start(ctx context.Context, sandboxID string) error {
	return b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/start", nil, nil)
}

// Exec runs a command inside the sandbox.
func (b *CloudBackend) Exec(ctx context.Context, sandboxID, command string, timeout time.Duration) (*ExecResult, error) {
	var result ExecResult
	err := b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/exec", map[string]any{
		"command":      command,
		"timeout_secs": int(timeout.Seconds()),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ReadFile reads a text file.
func (b *CloudBackend) ReadFile(ctx context.Context, sandboxID, path string) (string, error) {
	data, err := b.ReadFileBytes(ctx, sandboxID, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes a text file.
func (b *CloudBackend) WriteFile(ctx context.Context, sandboxID, path, content string) error {
	return b.WriteFileBytes(ctx, sandboxID, path, []byte(content))
}

// ReadFileBytes reads a file; content travels base64-encoded.
func (b *CloudBackend) ReadFileBytes(ctx context.Context, sandboxID, path string) ([]byte, error) {
	var resp struct {
		Content string `json:"content"`
	}
	err := b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/files/read", map[string]string{
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
func (b *CloudBackend) WriteFileBytes(ctx context.Context, sandboxID, path string, data []byte) error {
	return b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/files/write", map[string]string{
		"path":    path,
		"content": base64.StdEncoding.EncodeToString(data),
	}, nil)
}

// ListFiles lists a directory.
func (b *CloudBackend) ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error) {
	var resp struct {
		Files []FileInfo `json:"files"`
	}
	err := b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/files/list", map[string]string{
		"path": path,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// FindFiles matches file names against a glob pattern.
func (b *CloudBackend) FindFiles(ctx context.Context, sandboxID, pattern string) ([]string, error) {
	var resp struct {
		Paths []string `json:"paths"`
	}
	err := b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/files/find", map[string]string{
		"pattern": pattern,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Paths, nil
}

// SearchInFiles greps file contents under path.
func (b *CloudBackend) SearchInFiles(ctx context.Context, sandboxID, query, path string) ([]SearchMatch, error) {
	var resp struct {
		Matches []SearchMatch `json:"matches"`
	}
	err := b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/files/search", map[string]string{
		"query": query,
		"path":  path,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// GetPreviewURL returns the public URL forwarding to a port inside the
// sandbox.
func (b *CloudBackend) GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	err := b.do(ctx, http.MethodGet, fmt.Sprintf("/sandboxes/%s/preview?port=%d", sandboxID, port), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

// GetStatus reports the sandbox state.
func (b *CloudBackend) GetStatus(ctx context.Context, sandboxID string) (*Status, error) {
	var status Status
	if err := b.do(ctx, http.MethodGet, "/sandboxes/"+sandboxID+"/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetInfo describes the sandbox.
func (b *CloudBackend) GetInfo(ctx context.Context, sandboxID string) (*Info, error) {
	var info Info
	if err := b.do(ctx, http.MethodGet, "/sandboxes/"+sandboxID+"/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// KeepAlive extends the provider-side idle timeout.
func (b *CloudBackend) KeepAlive(ctx context.Context, sandboxID string) error {
	return b.do(ctx, http.MethodPost, "/sandboxes/"+sandboxID+"/keepalive", nil, nil)
}
