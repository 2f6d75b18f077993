// Package agent defines the contract between the platform and the agent
// engine. The engine is a stream emitter: it consumes a prompt (or a resume
// answer) and produces the stream-event protocol until its channel closes.
// The turn worker owns everything else.
package agent

import (
	"context"
	"encoding/json"

	"github.com/agentloom/loom/pkg/models"
)

// RunInput starts a fresh turn.
type RunInput struct {
	SessionID   string
	TopicID     string
	UserID      string
	StreamID    string
	Prompt      string
	FileIDs     []string
	Context     json.RawMessage
	Attribution models.Attribution
}

// ResumeInput re-enters a suspended turn at its thread with the user's
// answer injected as graph state.
type ResumeInput struct {
	RunInput
	ThreadID   string
	QuestionID string
	Response   models.UserQuestionResponse
}

// Graph is the pluggable agent engine.
//
// The returned channel delivers events in stream order and is closed when
// the graph finishes, suspends on a question, or fails (after emitting an
// error event). A nil channel with an error means the graph never started.
type Graph interface {
	Run(ctx context.Context, input RunInput) (<-chan models.StreamEvent, error)
	Resume(ctx context.Context, input ResumeInput) (<-chan models.StreamEvent, error)
}
