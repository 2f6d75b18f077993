package models

import (
	"encoding/json"
	"strings"
)

// Runner RPC request types. Every request/response pair shares an ID and the
// response type is the request type with a "_result" suffix.
const (
	RunnerTypeExec          = "exec"
	RunnerTypeReadFile      = "read_file"
	RunnerTypeWriteFile     = "write_file"
	RunnerTypeListFiles     = "list_files"
	RunnerTypeFindFiles     = "find_files"
	RunnerTypeSearchInFiles = "search_in_files"
	RunnerTypePtyCreate     = "pty_create"
	RunnerTypePtyInput      = "pty_input"
	RunnerTypePtyResize     = "pty_resize"
	RunnerTypePtyClose      = "pty_close"
)

// Proactive runner → server push types (no request pairing).
const (
	RunnerTypePtyOutput = "pty_output"
	RunnerTypePtyExit   = "pty_exit"
)

// RunnerMessage is a framed JSON message on the runner WebSocket and on the
// cross-pod runner request/response channels.
type RunnerMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// IsResult reports whether the message is a response frame.
func (m RunnerMessage) IsResult() bool {
	return strings.HasSuffix(m.Type, "_result")
}

// RunnerResult is the payload shape of every "_result" frame.
type RunnerResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// PtyOutputPayload is the payload of proactive pty_output pushes.
// Data is base64-encoded for byte safety.
type PtyOutputPayload struct {
	PtySessionID string `json:"pty_session_id"`
	Data         string `json:"data"`
}

// PtyExitPayload is the payload of proactive pty_exit pushes.
type PtyExitPayload struct {
	PtySessionID string `json:"pty_session_id"`
	ExitCode     int    `json:"exit_code"`
}

// Terminal WebSocket client → server message types.
const (
	TerminalTypeCreate = "create"
	TerminalTypeAttach = "attach"
	TerminalTypeInput  = "input"
	TerminalTypeResize = "resize"
	TerminalTypeClose  = "close"
	TerminalTypePing   = "ping"
)

// Terminal WebSocket server → client message types.
const (
	TerminalTypeCreated      = "created"
	TerminalTypeAttached     = "attached"
	TerminalTypeAttachFailed = "attach_failed"
	TerminalTypeOutput       = "output"
	TerminalTypeExit         = "exit"
	TerminalTypeError        = "error"
	TerminalTypePong         = "pong"
)

// TerminalClientMessage is a client → server frame on the terminal WebSocket.
// Input data is base64-encoded.
type TerminalClientMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Data      string `json:"data,omitempty"`
	Cols      int    `json:"cols,omitempty"`
	Rows      int    `json:"rows,omitempty"`
}

// TerminalServerMessage is a server → client frame on the terminal WebSocket.
// Output data is base64-encoded.
type TerminalServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Data      string `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	ExitCode  *int   `json:"exit_code,omitempty"`
}
