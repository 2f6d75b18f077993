// Package worker drives one user turn from prompt to persisted answer: it
// invokes the agent graph, consumes its event stream, republishes each event
// on the bus, performs event-specific persistence, and finalizes with
// settlement. Turns survive user-question interrupts, user abort, and
// partial failures.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentloom/loom/pkg/agent"
	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/push"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/settlement"
)

var (
	// ErrShuttingDown is returned by Submit/Resume after Stop.
	ErrShuttingDown = errors.New("executor is shutting down")

	// ErrStaleQuestion is returned on resume when the question id does not
	// match the active interrupt.
	ErrStaleQuestion = errors.New("stale or unknown question id")

	// ErrQuestionExpired is returned on resume after the question timeout.
	ErrQuestionExpired = errors.New("question timed out")
)

// TurnInput groups everything needed to execute one turn.
type TurnInput struct {
	SessionID     string
	TopicID       string
	UserID        string
	StreamID      string
	Prompt        string
	FileIDs       []string
	Context       json.RawMessage
	UserMessageID string
	Attribution   models.Attribution
}

// ResumeInput re-enters an interrupted turn. ThreadID and the interrupted
// message fields are filled by Resume from the stored question state; the
// gateway only supplies the ids, the response, and a fresh stream id.
type ResumeInput struct {
	TurnInput
	ThreadID   string
	QuestionID string
	Response   models.UserQuestionResponse

	// InterruptedMessageID and InterruptedAt identify the assistant message
	// the turn was on when it interrupted, so settlement covers the whole
	// turn and not just the post-resume stream.
	InterruptedMessageID string
	InterruptedAt        time.Time
}

// TurnExecutor runs turns asynchronously, one goroutine per turn, with
// cancellation and graceful shutdown.
type TurnExecutor struct {
	cfg    *config.Config
	graph  agent.Graph
	bus    *bus.Bus
	logger *slog.Logger

	// Services
	messages *services.MessageService
	runs     *services.AgentRunService
	records  *services.RecordService
	sessions *services.SessionService
	settle   *settlement.Service
	pricing  settlement.PricingOracle
	notifier *push.Notifier

	// Active turn tracking (for cancellation + shutdown)
	mu          sync.RWMutex
	activeTurns map[string]*turnReg // connection id → registration
	wg          sync.WaitGroup
	stopped     bool
}

type turnReg struct {
	cancel context.CancelFunc
}

// NewTurnExecutor creates a TurnExecutor.
func NewTurnExecutor(
	cfg *config.Config,
	graph agent.Graph,
	b *bus.Bus,
	messages *services.MessageService,
	runs *services.AgentRunService,
	records *services.RecordService,
	sessions *services.SessionService,
	settle *settlement.Service,
	pricing settlement.PricingOracle,
	notifier *push.Notifier,
	logger *slog.Logger,
) *TurnExecutor {
	return &TurnExecutor{
		cfg:         cfg,
		graph:       graph,
		bus:         b,
		messages:    messages,
		runs:        runs,
		records:     records,
		sessions:    sessions,
		settle:      settle,
		pricing:     pricing,
		notifier:    notifier,
		logger:      logger.With("component", "turn_executor"),
		activeTurns: make(map[string]*turnReg),
	}
}

// Submit launches a fresh turn asynchronously. The pre-dispatch balance
// probe runs inside the turn goroutine so a broke user costs no tokens but
// Submit itself never blocks on the wallet.
func (e *TurnExecutor) Submit(ctx context.Context, input TurnInput) error {
	return e.launch(func(turnCtx context.Context) {
		e.runTurn(turnCtx, input, nil)
	}, models.ConnectionID(input.SessionID, input.TopicID))
}

// Resume validates the interrupt and re-enters the graph at the stored
// thread with the user's answer. A stale question id is ignored with a log;
// an expired one flips the question to expired and is rejected.
func (e *TurnExecutor) Resume(ctx context.Context, input ResumeInput) error {
	cid := models.ConnectionID(input.SessionID, input.TopicID)

	state, err := e.bus.GetQuestionState(ctx, cid)
	if err != nil {
		return fmt.Errorf("failed to load question state: %w", err)
	}
	if state == nil || state.QuestionID != input.QuestionID {
		e.logger.Warn("Resume with stale question id, ignoring",
			"cid", cid, "question_id", input.QuestionID)
		return ErrStaleQuestion
	}
	if state.Expired || input.Response.TimedOut {
		if msg, qErr := e.messages.PendingQuestionMessage(ctx, input.TopicID); qErr == nil {
			if mErr := e.messages.MarkQuestionExpired(ctx, msg.ID); mErr != nil {
				e.logger.Warn("Failed to expire question", "message_id", msg.ID, "error", mErr)
			}
		}
		if cErr := e.bus.ClearQuestionState(ctx, cid, input.QuestionID); cErr != nil {
			e.logger.Warn("Failed to clear question state", "cid", cid, "error", cErr)
		}
		return ErrQuestionExpired
	}

	input.ThreadID = state.ThreadID
	if err := e.bus.ClearQuestionState(ctx, cid, input.QuestionID); err != nil {
		e.logger.Warn("Failed to clear question state", "cid", cid, "error", err)
	}
	if msg, qErr := e.messages.PendingQuestionMessage(ctx, input.TopicID); qErr == nil {
		input.InterruptedMessageID = msg.ID
		input.InterruptedAt = msg.CreatedAt
		if aErr := e.messages.MarkQuestionAnswered(ctx, msg.ID, input.Response); aErr != nil {
			e.logger.Warn("Failed to mark question answered", "message_id", msg.ID, "error", aErr)
		}
	}

	resume := input
	return e.launch(func(turnCtx context.Context) {
		e.runTurn(turnCtx, resume.TurnInput, &resume)
	}, cid)
}

// launch registers the goroutine against shutdown and cancellation.
func (e *TurnExecutor) launch(run func(ctx context.Context), cid string) error {
	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		return ErrShuttingDown
	}
	e.wg.Add(1)
	e.mu.RUnlock()

	// Detached context: the turn outlives the WebSocket frame that started it.
	turnCtx, cancel := context.WithTimeout(context.Background(), e.cfg.Worker.TurnTimeout)
	reg := &turnReg{cancel: cancel}
	e.register(cid, reg)

	go func() {
		defer e.wg.Done()
		defer cancel()
		defer e.unregister(cid, reg)
		run(turnCtx)
	}()
	return nil
}

// Cancel aborts the active turn for a connection, if any.
func (e *TurnExecutor) Cancel(cid string) {
	e.mu.RLock()
	reg := e.activeTurns[cid]
	e.mu.RUnlock()
	if reg != nil {
		reg.cancel()
	}
}

// Stop rejects new turns and waits for active ones up to the shutdown
// timeout.
func (e *TurnExecutor) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(e.cfg.Worker.ShutdownTimeout):
		return fmt.Errorf("shutdown timed out with turns still active")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *TurnExecutor) register(cid string, reg *turnReg) {
	e.mu.Lock()
	if prev, ok := e.activeTurns[cid]; ok {
		prev.cancel()
	}
	e.activeTurns[cid] = reg
	e.mu.Unlock()
}

func (e *TurnExecutor) unregister(cid string, reg *turnReg) {
	e.mu.Lock()
	// Only remove our own registration; a newer turn may have replaced it.
	if e.activeTurns[cid] == reg {
		delete(e.activeTurns, cid)
	}
	e.mu.Unlock()
}
