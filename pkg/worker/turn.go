package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentloom/loom/ent/agentrun"
	"github.com/agentloom/loom/pkg/agent"
	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/settlement"
)

// outcome is the terminal state of one event loop.
type outcome int

const (
	outcomeCompleted outcome = iota
	outcomeAborted
	outcomeInterrupted
	outcomeErrored
)

// turnState is the in-memory accumulation of one turn. Owned exclusively by
// the turn goroutine until persisted.
type turnState struct {
	input  TurnInput
	cid    string
	logger *slog.Logger

	messageID            string
	interruptedMessageID string
	fullContent          string
	thinkingContent      string
	agentRunID           string
	turnStart            time.Time
	runStart        time.Time
	lastFlush       time.Time

	activeNodeID string
	nodeOrder    []string
	nodeNames    map[string]string
	nodeOutputs  map[string]string
	timeline     []map[string]any
	toolCalls    map[string][]map[string]any // node id → tool call entries
	pendingTool  map[string][2]any           // tool_call_id → (node id, index)

	citations      []models.Citation
	tokensConsumed int
	errorHandled   bool
}

func newTurnState(input TurnInput, logger *slog.Logger) *turnState {
	return &turnState{
		input:       input,
		cid:         models.ConnectionID(input.SessionID, input.TopicID),
		logger:      logger,
		turnStart:   time.Now(),
		lastFlush:   time.Now(),
		nodeNames:   make(map[string]string),
		nodeOutputs: make(map[string]string),
		toolCalls:   make(map[string][]map[string]any),
		pendingTool: make(map[string][2]any),
	}
}

// nodeData assembles the AgentRun timeline blob.
func (st *turnState) nodeData() map[string]any {
	toolCalls := make(map[string]any, len(st.toolCalls))
	for node, calls := range st.toolCalls {
		toolCalls[node] = calls
	}
	return map[string]any{
		"timeline":     st.timeline,
		"node_outputs": st.nodeOutputs,
		"node_order":   st.nodeOrder,
		"node_names":   st.nodeNames,
		"tool_calls":   toolCalls,
	}
}

// ────────────────────────────────────────────────────────────
// runTurn — one full turn, fresh or resumed
// ────────────────────────────────────────────────────────────

func (e *TurnExecutor) runTurn(ctx context.Context, input TurnInput, resume *ResumeInput) {
	logger := e.logger.With(
		"session_id", input.SessionID,
		"topic_id", input.TopicID,
		"stream_id", input.StreamID,
	)
	st := newTurnState(input, logger)
	if resume != nil {
		// Settlement must reach back to the interrupted half of the turn:
		// its records are bound to the pre-interrupt message or carry an
		// earlier created_at than this goroutine's start.
		st.interruptedMessageID = resume.InterruptedMessageID
		if !resume.InterruptedAt.IsZero() && resume.InterruptedAt.Before(st.turnStart) {
			st.turnStart = resume.InterruptedAt
		}
	}
	logger.Info("Turn starting", "resumed", resume != nil)

	ctx = agent.WithTurn(ctx, &agent.TurnContext{
		SessionID:   input.SessionID,
		TopicID:     input.TopicID,
		UserID:      input.UserID,
		StreamID:    input.StreamID,
		Attribution: input.Attribution,
	})

	// 1. Pre-dispatch balance probe: strict before any tokens are consumed.
	// Resume continues already-funded work and skips it.
	if resume == nil {
		ok, err := e.settle.HasBalance(ctx, input.UserID)
		if err != nil {
			logger.Error("Balance probe failed", "error", err)
		}
		if err == nil && !ok {
			e.publish(ctx, st, models.NewStreamEvent(models.KindInsufficientBalance, input.StreamID, models.InsufficientBalanceData{
				ErrorCode:      "insufficient_balance",
				ActionRequired: "top_up",
				StreamID:       input.StreamID,
			}))
			logger.Info("Turn refused, insufficient balance")
			return
		}
	}

	// 2. Enter the graph.
	var (
		events <-chan models.StreamEvent
		err    error
	)
	if resume != nil {
		events, err = e.graph.Resume(ctx, agent.ResumeInput{
			RunInput:   e.runInput(input),
			ThreadID:   resume.ThreadID,
			QuestionID: resume.QuestionID,
			Response:   resume.Response,
		})
	} else {
		events, err = e.graph.Run(ctx, e.runInput(input))
	}
	if err != nil {
		logger.Error("Agent graph failed to start", "error", err)
		e.failTurn(ctx, st, models.ErrorData{
			ErrorCode:     "agent_start_failed",
			ErrorCategory: "internal",
			Detail:        err.Error(),
		})
		return
	}

	// 3. Consume the stream.
	result := e.consume(ctx, st, events)

	// 4. Finalize per outcome.
	switch result {
	case outcomeCompleted:
		e.finalizeCompleted(ctx, st)
	case outcomeAborted:
		e.finalizeAborted(ctx, st)
	case outcomeInterrupted:
		logger.Info("Turn interrupted, awaiting user response")
		// No settlement: it happens on resume or next finalization.
	case outcomeErrored:
		e.finalizeErrored(ctx, st)
	}
}

func (e *TurnExecutor) runInput(input TurnInput) agent.RunInput {
	return agent.RunInput{
		SessionID:   input.SessionID,
		TopicID:     input.TopicID,
		UserID:      input.UserID,
		StreamID:    input.StreamID,
		Prompt:      input.Prompt,
		FileIDs:     input.FileIDs,
		Context:     input.Context,
		Attribution: input.Attribution,
	}
}

// ────────────────────────────────────────────────────────────
// consume — the per-event loop
// ────────────────────────────────────────────────────────────

func (e *TurnExecutor) consume(ctx context.Context, st *turnState, events <-chan models.StreamEvent) outcome {
	sawEvent := false
	for ev := range events {
		sawEvent = true
		// Handler failures are per-event: a non-fatal persistence error must
		// not kill the stream.
		done, result := e.handleEvent(ctx, st, ev)
		if done {
			return result
		}
	}
	if !sawEvent {
		st.logger.Error("Agent graph produced an empty stream")
		e.failTurn(ctx, st, models.ErrorData{
			ErrorCode:     "empty_stream",
			ErrorCategory: "internal",
			Detail:        "agent graph produced no events",
		})
		return outcomeErrored
	}
	return outcomeCompleted
}

// handleEvent applies one event's contract: update state, persist, then
// propagate. Returns done=true when the loop must stop.
func (e *TurnExecutor) handleEvent(ctx context.Context, st *turnState, ev models.StreamEvent) (bool, outcome) {
	switch ev.Kind {
	case models.KindStreamingStart:
		if err := e.ensureMessage(ctx, st); err != nil {
			st.logger.Error("Failed to allocate assistant message", "error", err)
		}
		if st.runStart.IsZero() {
			st.runStart = time.Now()
		}
		e.publish(ctx, st, ev)

	case models.KindStreamingChunk:
		var chunk models.ChunkData
		if err := ev.Decode(&chunk); err == nil {
			st.fullContent += chunk.Content
		}
		e.maybeFlushPartial(ctx, st)
		e.publish(ctx, st, ev)

	case models.KindThinkingChunk:
		var chunk models.ChunkData
		if err := ev.Decode(&chunk); err == nil {
			st.thinkingContent += chunk.Content
		}
		e.publish(ctx, st, ev)

	case models.KindThinkingStart, models.KindThinkingEnd,
		models.KindAgentStart, models.KindAgentEnd:
		e.publish(ctx, st, ev)

	case models.KindNodeStart:
		var node models.NodeData
		if err := ev.Decode(&node); err == nil {
			st.activeNodeID = node.NodeID
			st.nodeOrder = append(st.nodeOrder, node.NodeID)
			if node.NodeName != "" {
				st.nodeNames[node.NodeID] = node.NodeName
			}
			st.timeline = append(st.timeline, map[string]any{
				"event":   "node_start",
				"node_id": node.NodeID,
				"at":      time.Now().Format(time.RFC3339Nano),
			})
		}
		e.publish(ctx, st, ev)

	case models.KindNodeEnd:
		var node models.NodeData
		if err := ev.Decode(&node); err == nil {
			if node.Output != "" {
				st.nodeOutputs[node.NodeID] = node.Output
			}
			st.timeline = append(st.timeline, map[string]any{
				"event":   "node_end",
				"node_id": node.NodeID,
				"at":      time.Now().Format(time.RFC3339Nano),
			})
		}
		e.publish(ctx, st, ev)
		if e.abortRequested(ctx, st) {
			return true, outcomeAborted
		}

	case models.KindStreamingEnd:
		e.handleStreamingEnd(ctx, st, ev)
		e.publish(ctx, st, ev)

	case models.KindTokenUsage:
		e.handleTokenUsage(ctx, st, ev)
		e.publish(ctx, st, ev)

	case models.KindToolCallRequest:
		e.handleToolCallRequest(st, ev)
		e.publish(ctx, st, ev)

	case models.KindToolCallResponse:
		e.handleToolCallResponse(ctx, st, ev)
		e.publish(ctx, st, ev)
		// Abort is polled at tool-call boundaries only; mid-stream it would
		// leave an unbillable half answer.
		if e.abortRequested(ctx, st) {
			return true, outcomeAborted
		}

	case models.KindGeneratedFiles:
		var files models.GeneratedFilesData
		if err := ev.Decode(&files); err == nil && st.messageID != "" {
			if err := e.messages.LinkGeneratedFiles(ctx, st.messageID, st.input.UserID, files.FileIDs); err != nil {
				st.logger.Warn("Failed to link generated files", "error", err)
			}
		}
		e.publish(ctx, st, ev)

	case models.KindSearchCitations:
		var data models.SearchCitationsData
		if err := ev.Decode(&data); err == nil {
			st.citations = append(st.citations, data.Citations...)
		}
		e.publish(ctx, st, ev)

	case models.KindAskUserQuestion:
		e.handleAskUserQuestion(ctx, st, ev)
		e.publish(ctx, st, ev)
		return true, outcomeInterrupted

	case models.KindMessage:
		var msg models.MessageData
		if err := ev.Decode(&msg); err == nil {
			if err := e.ensureMessage(ctx, st); err != nil {
				st.logger.Error("Failed to allocate assistant message", "error", err)
			}
			st.fullContent = msg.Content
		}
		e.publish(ctx, st, ev)

	case models.KindError:
		var errData models.ErrorData
		if err := ev.Decode(&errData); err != nil {
			errData = models.ErrorData{ErrorCode: "unknown_error"}
		}
		if err := e.ensureMessage(ctx, st); err == nil {
			if err := e.messages.SetError(ctx, st.messageID, errData, st.fullContent, st.thinkingContent); err != nil {
				st.logger.Error("Failed to persist error", "error", err)
			}
		}
		e.publish(ctx, st, ev)
		st.errorHandled = true
		return true, outcomeErrored

	default:
		st.logger.Warn("Unknown event kind", "kind", ev.Kind)
		e.publish(ctx, st, ev)
	}
	return false, outcomeCompleted
}

// ────────────────────────────────────────────────────────────
// Per-event handlers
// ────────────────────────────────────────────────────────────

func (e *TurnExecutor) handleStreamingEnd(ctx context.Context, st *turnState, ev models.StreamEvent) {
	var end models.StreamingEndData
	if err := ev.Decode(&end); err != nil {
		st.logger.Warn("Malformed streaming_end", "error", err)
	}
	if end.AgentState != nil {
		// The graph's node output is canonical over chunk concatenation.
		if end.AgentState.FinalContent != "" {
			st.fullContent = end.AgentState.FinalContent
		}
		for node, out := range end.AgentState.NodeOutputs {
			st.nodeOutputs[node] = out
		}
		if len(end.AgentState.NodeOrder) > 0 {
			st.nodeOrder = end.AgentState.NodeOrder
		}
		for node, name := range end.AgentState.NodeNames {
			st.nodeNames[node] = name
		}
	}

	if st.agentRunID == "" {
		if err := e.ensureMessage(ctx, st); err != nil {
			st.logger.Error("Failed to allocate assistant message", "error", err)
			return
		}
		start := st.runStart
		if start.IsZero() {
			start = st.turnStart
		}
		run, err := e.runs.StartRun(ctx, st.messageID, st.input.SessionID, st.input.TopicID, st.input.UserID, start)
		if err != nil {
			st.logger.Error("Failed to create agent run", "error", err)
			return
		}
		st.agentRunID = run.ID
		if err := e.messages.SetAgentRunID(ctx, st.messageID, run.ID); err != nil {
			st.logger.Warn("Failed to link agent run", "error", err)
		}
	}
	if err := e.runs.FinishRun(ctx, st.agentRunID, agentrun.StatusCompleted, st.nodeData()); err != nil {
		st.logger.Error("Failed to finish agent run", "error", err)
	}
}

func (e *TurnExecutor) handleTokenUsage(ctx context.Context, st *turnState, ev models.StreamEvent) {
	var usage models.TokenUsageData
	if err := ev.Decode(&usage); err != nil {
		st.logger.Warn("Malformed token_usage", "error", err)
		return
	}
	usage = settlement.NormalizeUsage(usage)
	st.tokensConsumed += usage.TotalTokens

	credits := settlement.CreditsForUsage(usage, e.cfg.Wallet)
	costUSD := e.pricing.CostUSD(usage.Model, usage.InputTokens, usage.OutputTokens)

	_, err := e.records.CreateLLMRecord(ctx, services.LLMRecordParams{
		UserID:       st.input.UserID,
		SessionID:    st.input.SessionID,
		TopicID:      st.input.TopicID,
		MessageID:    st.messageID,
		Amount:       credits,
		CostUSD:      costUSD,
		Model:        usage.Model,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.TotalTokens,
		Tier:         e.pricing.Tier(usage.Model),
		Attribution:  st.input.Attribution,
	})
	if err != nil {
		st.logger.Error("Failed to write llm consume record", "error", err)
	}
}

func (e *TurnExecutor) handleToolCallRequest(st *turnState, ev models.StreamEvent) {
	var req models.ToolCallRequestData
	if err := ev.Decode(&req); err != nil {
		st.logger.Warn("Malformed tool_call_request", "error", err)
		return
	}
	node := st.activeNodeID
	entry := map[string]any{
		"tool_call_id": req.ToolCallID,
		"name":         req.Name,
		"arguments":    string(req.Arguments),
		"status":       "pending",
	}
	st.toolCalls[node] = append(st.toolCalls[node], entry)
	st.pendingTool[req.ToolCallID] = [2]any{node, len(st.toolCalls[node]) - 1}
}

func (e *TurnExecutor) handleToolCallResponse(ctx context.Context, st *turnState, ev models.StreamEvent) {
	var resp models.ToolCallResponseData
	if err := ev.Decode(&resp); err != nil {
		st.logger.Warn("Malformed tool_call_response", "error", err)
		return
	}

	toolName := ""
	failed := resp.Failed()
	status := "success"
	if failed {
		status = "failed"
	}

	// Patch the stored entry from the pending index.
	if loc, ok := st.pendingTool[resp.ToolCallID]; ok {
		node := loc[0].(string)
		idx := loc[1].(int)
		if calls := st.toolCalls[node]; idx < len(calls) {
			entry := calls[idx]
			toolName, _ = entry["name"].(string)
			entry["status"] = status
			if len(resp.Result) > 0 {
				entry["result"] = string(resp.Result)
			}
			if resp.Error != "" {
				entry["error"] = resp.Error
			}
		}
		delete(st.pendingTool, resp.ToolCallID)
	} else {
		st.logger.Warn("Tool response without request", "tool_call_id", resp.ToolCallID)
	}

	amount := settlement.CreditsForToolCall(failed, e.cfg.Wallet)
	_, err := e.records.CreateToolRecord(ctx, services.ToolRecordParams{
		UserID:      st.input.UserID,
		SessionID:   st.input.SessionID,
		TopicID:     st.input.TopicID,
		MessageID:   st.messageID,
		Amount:      amount,
		ToolName:    toolName,
		ToolCallID:  resp.ToolCallID,
		ToolStatus:  status,
		Attribution: st.input.Attribution,
	})
	if err != nil {
		st.logger.Error("Failed to write tool consume record", "error", err)
	}
}

func (e *TurnExecutor) handleAskUserQuestion(ctx context.Context, st *turnState, ev models.StreamEvent) {
	var question models.AskUserQuestionData
	if err := ev.Decode(&question); err != nil {
		st.logger.Error("Malformed ask_user_question", "error", err)
		return
	}
	if question.TimeoutSeconds <= 0 {
		question.TimeoutSeconds = int(e.cfg.Worker.QuestionTimeout.Seconds())
	}

	if err := e.ensureMessage(ctx, st); err != nil {
		st.logger.Error("Failed to allocate assistant message", "error", err)
		return
	}

	// A message that already holds an answered question is finalized as-is
	// and the new question lands on a fresh message.
	if msg, err := e.messages.GetByStreamID(ctx, st.input.StreamID); err == nil && services.HasAnsweredQuestion(msg) {
		if err := e.messages.Finalize(ctx, st.messageID, st.fullContent, st.thinkingContent, st.citations); err != nil {
			st.logger.Error("Failed to finalize answered-question message", "error", err)
		}
		fresh, err := e.messages.CreateAssistantMessage(ctx, st.input.SessionID, st.input.TopicID, st.input.UserID,
			st.input.StreamID+":"+question.QuestionID)
		if err != nil {
			st.logger.Error("Failed to create follow-up question message", "error", err)
			return
		}
		st.messageID = fresh.ID
		st.fullContent = ""
		st.thinkingContent = ""
		st.citations = nil
	}

	if err := e.messages.SetUserQuestion(ctx, st.messageID, question); err != nil {
		st.logger.Error("Failed to persist user question", "error", err)
	}
	timeout := time.Duration(question.TimeoutSeconds) * time.Second
	if err := e.bus.SetQuestionState(ctx, st.cid, question.ThreadID, question.QuestionID, timeout); err != nil {
		st.logger.Error("Failed to set question state", "error", err)
	}
}

// ────────────────────────────────────────────────────────────
// Finalization paths
// ────────────────────────────────────────────────────────────

func (e *TurnExecutor) finalizeCompleted(ctx context.Context, st *turnState) {
	// Use background-derived context: the turn context may already be
	// cancelled or timed out.
	ctx = context.WithoutCancel(ctx)

	if st.messageID == "" {
		st.logger.Error("Stream ended with no assistant message")
		e.failTurn(ctx, st, models.ErrorData{
			ErrorCode:     "empty_stream",
			ErrorCategory: "internal",
			Detail:        "stream ended without content",
		})
		return
	}
	if err := e.messages.Finalize(ctx, st.messageID, st.fullContent, st.thinkingContent, st.citations); err != nil {
		st.logger.Error("Failed to finalize message", "error", err)
	}
	if err := e.sessions.TouchTopic(ctx, st.input.TopicID); err != nil {
		st.logger.Warn("Failed to touch topic", "error", err)
	}

	e.finalizeAndSettle(ctx, st)

	msg, err := e.messages.GetByStreamID(ctx, st.input.StreamID)
	createdAt := time.Now()
	if err == nil {
		createdAt = msg.CreatedAt
	}
	e.publish(ctx, st, models.NewStreamEvent(models.KindMessageSaved, st.input.StreamID, models.MessageSavedData{
		StreamID:  st.input.StreamID,
		DBID:      st.messageID,
		CreatedAt: createdAt.Format(time.RFC3339Nano),
	}))

	e.maybeNotify(ctx, st)
	st.logger.Info("Turn completed", "tokens", st.tokensConsumed)
}

func (e *TurnExecutor) finalizeAborted(ctx context.Context, st *turnState) {
	ctx = context.WithoutCancel(ctx)

	if st.messageID != "" {
		if err := e.messages.Finalize(ctx, st.messageID, st.fullContent, st.thinkingContent, st.citations); err != nil {
			st.logger.Error("Failed to save partial content", "error", err)
		}
	}
	start := st.runStart
	if start.IsZero() {
		start = st.turnStart
	}
	runID, err := e.runs.EnsureCancelledRun(ctx, st.agentRunID, st.messageID,
		st.input.SessionID, st.input.TopicID, st.input.UserID, start, st.nodeData())
	if err != nil {
		st.logger.Error("Failed to record cancelled run", "error", err)
	} else if st.agentRunID == "" && st.messageID != "" {
		st.agentRunID = runID
		if err := e.messages.SetAgentRunID(ctx, st.messageID, runID); err != nil {
			st.logger.Warn("Failed to link cancelled run", "error", err)
		}
	}

	e.finalizeAndSettle(ctx, st)

	e.publish(ctx, st, models.NewStreamEvent(models.KindStreamAborted, st.input.StreamID, models.StreamAbortedData{
		StreamID:             st.input.StreamID,
		Reason:               "user_abort",
		PartialContentLength: len(st.fullContent),
		TokensConsumed:       st.tokensConsumed,
	}))

	if err := e.bus.ClearAbort(ctx, st.cid); err != nil {
		st.logger.Warn("Failed to clear abort signal", "error", err)
	}
	st.logger.Info("Turn aborted", "partial_length", len(st.fullContent))
}

func (e *TurnExecutor) finalizeErrored(ctx context.Context, st *turnState) {
	ctx = context.WithoutCancel(ctx)

	// Work already done is still billed.
	e.finalizeAndSettle(ctx, st)

	if st.messageID != "" {
		e.publish(ctx, st, models.NewStreamEvent(models.KindMessageSaved, st.input.StreamID, models.MessageSavedData{
			StreamID:  st.input.StreamID,
			DBID:      st.messageID,
			CreatedAt: time.Now().Format(time.RFC3339Nano),
		}))
	}
	st.logger.Info("Turn errored")
}

// failTurn is the fatal-internal path: persist the error on the message and
// emit one error event.
func (e *TurnExecutor) failTurn(ctx context.Context, st *turnState, errData models.ErrorData) {
	if err := e.ensureMessage(ctx, st); err == nil {
		if err := e.messages.SetError(ctx, st.messageID, errData, st.fullContent, st.thinkingContent); err != nil {
			st.logger.Error("Failed to persist error", "error", err)
		}
	}
	e.publish(ctx, st, models.NewStreamEvent(models.KindError, st.input.StreamID, errData))
	e.finalizeAndSettle(context.WithoutCancel(ctx), st)
}

// finalizeAndSettle assembles the turn's pending records and settles them.
// Errors are logged, never re-raised: an already-aborted turn must still
// commit.
func (e *TurnExecutor) finalizeAndSettle(ctx context.Context, st *turnState) {
	messageIDs := make([]string, 0, 2)
	if st.messageID != "" {
		messageIDs = append(messageIDs, st.messageID)
	}
	if st.interruptedMessageID != "" && st.interruptedMessageID != st.messageID {
		messageIDs = append(messageIDs, st.interruptedMessageID)
	}
	records, err := e.records.PendingForTurn(ctx, st.input.SessionID, st.input.TopicID, messageIDs, st.turnStart)
	if err != nil {
		st.logger.Error("Settlement query failed", "error", err)
		return
	}
	if len(records) == 0 {
		return
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	total := services.SumAmounts(records)

	if err := e.settle.SettleChatRecords(ctx, st.input.UserID, ids, total, st.input.Attribution); err != nil {
		st.logger.Error("Settlement failed, records remain pending", "error", err, "total", total)
	}
}

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

func (e *TurnExecutor) ensureMessage(ctx context.Context, st *turnState) error {
	if st.messageID != "" {
		return nil
	}
	msg, err := e.messages.EnsureAssistantMessage(ctx, st.input.SessionID, st.input.TopicID, st.input.UserID, st.input.StreamID)
	if err != nil {
		return err
	}
	st.messageID = msg.ID
	return nil
}

// maybeFlushPartial writes accumulated content to storage on the flush
// cadence so a crashed worker leaves a recoverable partial answer.
func (e *TurnExecutor) maybeFlushPartial(ctx context.Context, st *turnState) {
	if st.messageID == "" || time.Since(st.lastFlush) < e.cfg.Worker.PartialFlushTick {
		return
	}
	st.lastFlush = time.Now()
	if err := e.messages.FlushPartial(ctx, st.messageID, st.fullContent, st.thinkingContent); err != nil {
		st.logger.Warn("Partial flush failed", "error", err)
	}
}

func (e *TurnExecutor) abortRequested(ctx context.Context, st *turnState) bool {
	if ctx.Err() != nil {
		return true
	}
	return e.bus.AbortRequested(ctx, st.cid)
}

// publish propagates an event to the connection's chat channel. Publishing
// is unconditional; presence only decides whether a push also goes out.
func (e *TurnExecutor) publish(ctx context.Context, st *turnState, ev models.StreamEvent) {
	if err := e.bus.Publish(ctx, bus.ChatChannel(st.cid), ev); err != nil {
		st.logger.Warn("Event publish failed", "kind", ev.Kind, "error", err)
	}
}

// maybeNotify sends a push when no WebSocket is active for the connection.
func (e *TurnExecutor) maybeNotify(ctx context.Context, st *turnState) {
	present, err := e.bus.IsPresent(ctx, st.cid)
	if err != nil {
		st.logger.Warn("Presence check failed", "error", err)
		return
	}
	if present {
		return
	}
	e.notifier.Notify(ctx, st.input.UserID, "Your agent finished", truncate(st.fullContent, 120))
}

// truncate cuts on rune boundaries so a multi-byte character is never split
// mid-sequence.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
