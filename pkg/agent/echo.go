package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentloom/loom/pkg/models"
)

// EchoGraph is the development engine: a single node that streams the prompt
// back with token usage attached. It exercises the full event protocol
// without a model; deployments plug a real Graph.
type EchoGraph struct {
	// Model is the name reported in token_usage events.
	Model string
}

var _ Graph = (*EchoGraph)(nil)

// Run emits one complete streamed answer.
func (g *EchoGraph) Run(ctx context.Context, input RunInput) (<-chan models.StreamEvent, error) {
	out := make(chan models.StreamEvent, 16)
	go func() {
		defer close(out)
		g.emitTurn(ctx, out, input.StreamID, fmt.Sprintf("You said: %s", input.Prompt))
	}()
	return out, nil
}

// Resume emits a short completion acknowledging the answer.
func (g *EchoGraph) Resume(ctx context.Context, input ResumeInput) (<-chan models.StreamEvent, error) {
	out := make(chan models.StreamEvent, 16)
	answer := input.Response.Text
	if answer == "" && len(input.Response.SelectedOptions) > 0 {
		answer = input.Response.SelectedOptions[0]
	}
	go func() {
		defer close(out)
		g.emitTurn(ctx, out, input.StreamID, fmt.Sprintf("Continuing with: %s", answer))
	}()
	return out, nil
}

func (g *EchoGraph) emitTurn(ctx context.Context, out chan<- models.StreamEvent, streamID, content string) {
	nodeID := uuid.New().String()
	send := func(ev models.StreamEvent) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !send(models.NewStreamEvent(models.KindStreamingStart, streamID, nil)) {
		return
	}
	send(models.NewStreamEvent(models.KindNodeStart, streamID, models.NodeData{
		NodeID:   nodeID,
		NodeName: "echo",
	}))
	send(models.NewStreamEvent(models.KindStreamingChunk, streamID, models.ChunkData{Content: content}))
	send(models.NewStreamEvent(models.KindNodeEnd, streamID, models.NodeData{
		NodeID: nodeID,
		Output: content,
	}))
	send(models.NewStreamEvent(models.KindTokenUsage, streamID, models.TokenUsageData{
		Model:        g.Model,
		InputTokens:  len(content) / 4,
		OutputTokens: len(content) / 4,
	}))
	send(models.NewStreamEvent(models.KindStreamingEnd, streamID, models.StreamingEndData{
		AgentState: &models.AgentState{
			FinalContent: content,
			NodeOutputs:  map[string]string{nodeID: content},
			NodeOrder:    []string{nodeID},
			NodeNames:    map[string]string{nodeID: "echo"},
		},
	}))
}
