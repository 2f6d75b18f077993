// Package models contains the wire-level types shared by the gateway, the
// turn worker, and the runner/terminal router: the agent-graph stream-event
// union, WebSocket frames, and the runner RPC protocol.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventKind identifies a stream-event variant emitted by the agent graph or
// synthesized by the worker/gateway. The same kinds flow to the browser
// unchanged, so these constants are also the server→client frame types.
type EventKind string

// Graph-emitted event kinds (§ event protocol).
const (
	KindStreamingStart   EventKind = "streaming_start"
	KindStreamingChunk   EventKind = "streaming_chunk"
	KindStreamingEnd     EventKind = "streaming_end"
	KindTokenUsage       EventKind = "token_usage"
	KindToolCallRequest  EventKind = "tool_call_request"
	KindToolCallResponse EventKind = "tool_call_response"
	KindThinkingStart    EventKind = "thinking_start"
	KindThinkingChunk    EventKind = "thinking_chunk"
	KindThinkingEnd      EventKind = "thinking_end"
	KindAgentStart       EventKind = "agent_start"
	KindAgentEnd         EventKind = "agent_end"
	KindNodeStart        EventKind = "node_start"
	KindNodeEnd          EventKind = "node_end"
	KindAskUserQuestion  EventKind = "ask_user_question"
	KindSearchCitations  EventKind = "search_citations"
	KindGeneratedFiles   EventKind = "generated_files"
	KindMessage          EventKind = "message"
	KindError            EventKind = "error"
)

// Worker/gateway-synthesized frame kinds.
const (
	KindMessageAck          EventKind = "message_ack"
	KindMessageSaved        EventKind = "message_saved"
	KindStreamAborted       EventKind = "stream_aborted"
	KindLoading             EventKind = "loading"
	KindInsufficientBalance EventKind = "insufficient_balance"
	KindWalletUpdate        EventKind = "wallet_update"
	KindPing                EventKind = "ping"
	KindUserMessageSaved    EventKind = "user_message_saved"
)

// StreamEvent is the tagged union flowing from the agent graph through the
// worker to the bus and on to the browser. Data holds the kind-specific
// payload; Decode unmarshals it into the matching *Data struct.
type StreamEvent struct {
	Kind      EventKind       `json:"type"`
	StreamID  string          `json:"stream_id,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewStreamEvent builds an event of the given kind with a marshaled payload.
// Marshal failures are programming errors and panic.
func NewStreamEvent(kind EventKind, streamID string, data any) StreamEvent {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			panic(fmt.Sprintf("models: marshal %s payload: %v", kind, err))
		}
		raw = b
	}
	return StreamEvent{
		Kind:      kind,
		StreamID:  streamID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Data:      raw,
	}
}

// Decode unmarshals the event payload into v.
func (e StreamEvent) Decode(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Kind, err)
	}
	return nil
}

// ChunkData is the payload of streaming_chunk and thinking_chunk events.
type ChunkData struct {
	Content string `json:"content"`
}

// AgentState is the canonical node-output snapshot a graph may attach to
// streaming_end. When present, FinalContent overrides chunk concatenation.
type AgentState struct {
	FinalContent string            `json:"final_content"`
	NodeOutputs  map[string]string `json:"node_outputs,omitempty"`
	NodeOrder    []string          `json:"node_order,omitempty"`
	NodeNames    map[string]string `json:"node_names,omitempty"`
}

// StreamingEndData is the payload of streaming_end events.
type StreamingEndData struct {
	AgentState *AgentState `json:"agent_state,omitempty"`
}

// TokenUsageData is the payload of token_usage events. Total defaults to
// Input+Output when the graph leaves it unset.
type TokenUsageData struct {
	Model           string `json:"model,omitempty"`
	InputTokens     int    `json:"input"`
	OutputTokens    int    `json:"output"`
	TotalTokens     int    `json:"total,omitempty"`
	CacheReadTokens int    `json:"cache_read_tokens,omitempty"`
}

// ToolCallRequestData is the payload of tool_call_request events.
type ToolCallRequestData struct {
	ToolCallID string          `json:"tool_call_id"`
	Name       string          `json:"name"`
	Arguments  json.RawMessage `json:"arguments,omitempty"`
}

// ToolCallResponseData is the payload of tool_call_response events.
// A response counts as failed when Status says so, Error is set, or the raw
// result carries success:false.
type ToolCallResponseData struct {
	ToolCallID string          `json:"tool_call_id"`
	Status     string          `json:"status,omitempty"`
	Error      string          `json:"error,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
}

// Failed reports whether the tool call should be billed as a failure.
func (d ToolCallResponseData) Failed() bool {
	if d.Status == "failed" || d.Status == "error" {
		return true
	}
	if d.Error != "" {
		return true
	}
	var probe struct {
		Success *bool `json:"success"`
	}
	if len(d.Result) > 0 && json.Unmarshal(d.Result, &probe) == nil &&
		probe.Success != nil && !*probe.Success {
		return true
	}
	return false
}

// NodeData is the payload of node_start and node_end events.
type NodeData struct {
	NodeID   string `json:"node_id"`
	NodeName string `json:"node_name,omitempty"`
	Output   string `json:"output,omitempty"`
}

// AskUserQuestionData is the payload of ask_user_question events.
type AskUserQuestionData struct {
	QuestionID     string   `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options,omitempty"`
	AllowTextInput bool     `json:"allow_text_input"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	ThreadID       string   `json:"thread_id"`
}

// Citation is one entry of a search_citations payload.
type Citation struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// SearchCitationsData is the payload of search_citations events.
type SearchCitationsData struct {
	Citations []Citation `json:"citations"`
}

// GeneratedFilesData is the payload of generated_files events.
type GeneratedFilesData struct {
	FileIDs []string `json:"file_ids"`
}

// MessageData is the payload of non-streaming message events.
type MessageData struct {
	Content string `json:"content"`
}

// ErrorData is the payload of error events.
type ErrorData struct {
	ErrorCode     string `json:"error_code"`
	ErrorCategory string `json:"error_category,omitempty"`
	Detail        string `json:"detail,omitempty"`
}

// MessageSavedData is the payload of message_saved frames.
type MessageSavedData struct {
	StreamID  string `json:"stream_id"`
	DBID      string `json:"db_id"`
	CreatedAt string `json:"created_at"`
}

// StreamAbortedData is the payload of stream_aborted frames.
type StreamAbortedData struct {
	StreamID             string `json:"stream_id"`
	Reason               string `json:"reason"`
	PartialContentLength int    `json:"partial_content_length"`
	TokensConsumed       int    `json:"tokens_consumed"`
}

// MessageAckData is the payload of message_ack frames.
type MessageAckData struct {
	MessageID string `json:"message_id"`
	ClientID  string `json:"client_id,omitempty"`
}

// InsufficientBalanceData is the payload of insufficient_balance frames.
type InsufficientBalanceData struct {
	ErrorCode      string `json:"error_code"`
	ActionRequired string `json:"action_required"`
	StreamID       string `json:"stream_id,omitempty"`
}

// UserMessageSavedData echoes the stored user message back to its sender.
// ClientID lets the browser reconcile its optimistic copy.
type UserMessageSavedData struct {
	MessageID string   `json:"message_id"`
	ClientID  string   `json:"client_id,omitempty"`
	Content   string   `json:"content"`
	FileIDs   []string `json:"file_ids,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// WalletUpdateData is broadcast on the user events channel after settlement.
type WalletUpdateData struct {
	Free         int64 `json:"free"`
	Paid         int64 `json:"paid"`
	Earned       int64 `json:"earned"`
	VirtualTotal int64 `json:"virtual_total"`
}
