package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent"
	"github.com/agentloom/loom/ent/agentrun"
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/pkg/agent"
	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/models"
	"github.com/agentloom/loom/pkg/push"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/settlement"
	"github.com/agentloom/loom/pkg/wallet"
	testdb "github.com/agentloom/loom/test/database"
	"github.com/agentloom/loom/test/util"
)

// scriptedGraph plays back a fixed event script. When gate is set, emission
// pauses before the event at pauseBefore until the gate is closed.
type scriptedGraph struct {
	mu           sync.Mutex
	runs         []agent.RunInput
	resumes      []agent.ResumeInput
	script       []models.StreamEvent
	resumeScript []models.StreamEvent
	startErr     error
	gate         chan struct{}
	pauseBefore  int
}

func (g *scriptedGraph) Run(ctx context.Context, input agent.RunInput) (<-chan models.StreamEvent, error) {
	g.mu.Lock()
	g.runs = append(g.runs, input)
	script := g.script
	g.mu.Unlock()
	if g.startErr != nil {
		return nil, g.startErr
	}
	return g.emit(script), nil
}

func (g *scriptedGraph) Resume(ctx context.Context, input agent.ResumeInput) (<-chan models.StreamEvent, error) {
	g.mu.Lock()
	g.resumes = append(g.resumes, input)
	script := g.resumeScript
	g.mu.Unlock()
	return g.emit(script), nil
}

func (g *scriptedGraph) emit(events []models.StreamEvent) <-chan models.StreamEvent {
	ch := make(chan models.StreamEvent)
	go func() {
		defer close(ch)
		for i, ev := range events {
			if g.gate != nil && i == g.pauseBefore {
				<-g.gate
			}
			ch <- ev
		}
	}()
	return ch
}

func (g *scriptedGraph) started() []agent.RunInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]agent.RunInput(nil), g.runs...)
}

func (g *scriptedGraph) resumed() []agent.ResumeInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]agent.ResumeInput(nil), g.resumes...)
}

func workerCfg(welcomeBonus int64) *config.Config {
	return &config.Config{
		Wallet: config.WalletConfig{
			WelcomeBonus:      welcomeBonus,
			CreditsPer1KToken: 1,
			CacheReadDiscount: 0.5,
			ToolCallRate:      2,
			DeveloperShare:    0.1,
		},
		Worker: config.WorkerConfig{
			TurnTimeout:      30 * time.Second,
			PartialFlushTick: time.Hour,
			AbortTTL:         time.Minute,
			QuestionTimeout:  time.Minute,
			ShutdownTimeout:  5 * time.Second,
		},
	}
}

type turnFixture struct {
	client   *ent.Client
	bus      *bus.Bus
	graph    *scriptedGraph
	executor *TurnExecutor
	wallets  *wallet.Service
	messages *services.MessageService
}

func newTurnFixture(t *testing.T, welcomeBonus int64) *turnFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	b := util.NewTestBus(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := workerCfg(welcomeBonus)

	wallets := wallet.NewService(client.Client, cfg.Wallet, logger)
	records := services.NewRecordService(client.Client, logger)
	rewards := settlement.NewDeveloperRewardService(client.Client, cfg.Wallet, logger)
	settle := settlement.NewService(wallets, records, rewards, b, logger)
	messages := services.NewMessageService(client.Client, logger)
	runs := services.NewAgentRunService(client.Client, logger)
	sessions := services.NewSessionService(client.Client, nil, logger)
	graph := &scriptedGraph{}

	executor := NewTurnExecutor(cfg, graph, b, messages, runs, records, sessions, settle,
		settlement.NewStaticPricing(), push.NewNotifier(nil, logger), logger)

	_, err := client.Client.Topic.Create().
		SetID("topic-1").
		SetSessionID("sess-1").
		SetUserID("user-1").
		Save(context.Background())
	require.NoError(t, err)

	return &turnFixture{
		client:   client.Client,
		bus:      b,
		graph:    graph,
		executor: executor,
		wallets:  wallets,
		messages: messages,
	}
}

func (f *turnFixture) turnActive(cid string) bool {
	f.executor.mu.RLock()
	defer f.executor.mu.RUnlock()
	_, ok := f.executor.activeTurns[cid]
	return ok
}

func (f *turnFixture) subscribeChat(t *testing.T) *bus.Subscription {
	t.Helper()
	sub, err := f.bus.Subscribe(context.Background(), bus.ChatChannel("sess-1:topic-1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })
	time.Sleep(100 * time.Millisecond)
	return sub
}

func testTurnInput() TurnInput {
	return TurnInput{
		SessionID: "sess-1",
		TopicID:   "topic-1",
		UserID:    "user-1",
		StreamID:  "stream-1",
		Prompt:    "summarize the report",
	}
}

func waitForEvent(t *testing.T, sub *bus.Subscription, kind models.EventKind) models.StreamEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case data := <-sub.Messages():
			var ev models.StreamEvent
			require.NoError(t, json.Unmarshal(data, &ev))
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("event %s never arrived", kind)
		}
	}
}

func TestRunTurnCompleted(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "Hello "}),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "world"}),
		models.NewStreamEvent(models.KindTokenUsage, "stream-1", models.TokenUsageData{
			Model: "gpt-4o-mini", InputTokens: 2000, OutputTokens: 3000,
		}),
		models.NewStreamEvent(models.KindStreamingEnd, "stream-1", models.StreamingEndData{
			AgentState: &models.AgentState{FinalContent: "Hello world."},
		}),
	}
	sub := f.subscribeChat(t)

	f.executor.runTurn(ctx, testTurnInput(), nil)

	saved := waitForEvent(t, sub, models.KindMessageSaved)
	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", msg.Content, "agent state overrides chunk concatenation")

	var savedData models.MessageSavedData
	require.NoError(t, saved.Decode(&savedData))
	assert.Equal(t, msg.ID, savedData.DBID)

	run, err := f.client.AgentRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	require.NotNil(t, msg.AgentRunID)
	assert.Equal(t, run.ID, *msg.AgentRunID)

	recs, err := f.client.ConsumeRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, consumerecord.ConsumeStateSuccess, recs[0].ConsumeState)
	assert.Equal(t, int64(5), recs[0].Amount)
	require.NotNil(t, recs[0].Tier)
	assert.Equal(t, settlement.TierStandard, *recs[0].Tier)

	w, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(195), w.VirtualTotal)

	topic, err := f.client.Topic.Get(ctx, "topic-1")
	require.NoError(t, err)
	assert.NotNil(t, topic.LastMessageAt)
}

func TestRunTurnInsufficientBalance(t *testing.T) {
	f := newTurnFixture(t, 0)
	ctx := context.Background()
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
	}
	sub := f.subscribeChat(t)

	f.executor.runTurn(ctx, testTurnInput(), nil)

	ev := waitForEvent(t, sub, models.KindInsufficientBalance)
	var data models.InsufficientBalanceData
	require.NoError(t, ev.Decode(&data))
	assert.Equal(t, "top_up", data.ActionRequired)

	assert.Empty(t, f.graph.started(), "the graph never runs for a broke user")

	count, err := f.client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRunTurnGraphStartFailure(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.startErr = errors.New("model endpoint offline")

	f.executor.runTurn(ctx, testTurnInput(), nil)

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	require.NotNil(t, msg.ErrorCode)
	assert.Equal(t, "agent_start_failed", *msg.ErrorCode)
}

func TestRunTurnEmptyStream(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.script = nil

	f.executor.runTurn(ctx, testTurnInput(), nil)

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	require.NotNil(t, msg.ErrorCode)
	assert.Equal(t, "empty_stream", *msg.ErrorCode)
}

func TestRunTurnErrorEvent(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "half an ans"}),
		models.NewStreamEvent(models.KindError, "stream-1", models.ErrorData{
			ErrorCode: "rate_limited", ErrorCategory: "upstream", Detail: "429 from provider",
		}),
	}

	f.executor.runTurn(ctx, testTurnInput(), nil)

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	require.NotNil(t, msg.ErrorCode)
	assert.Equal(t, "rate_limited", *msg.ErrorCode)
	assert.Equal(t, "half an ans", msg.Content, "partial content survives the failure")
}

func TestRunTurnAbortAtToolBoundary(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	require.NoError(t, f.bus.SignalAbort(ctx, "sess-1:topic-1", time.Minute))

	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "partial answer"}),
		models.NewStreamEvent(models.KindToolCallRequest, "stream-1", models.ToolCallRequestData{
			ToolCallID: "tc-1", Name: "web_search", Arguments: json.RawMessage(`{"query":"go releases"}`),
		}),
		models.NewStreamEvent(models.KindToolCallResponse, "stream-1", models.ToolCallResponseData{
			ToolCallID: "tc-1", Result: json.RawMessage(`{"success": true}`),
		}),
		models.NewStreamEvent(models.KindStreamingEnd, "stream-1", models.StreamingEndData{}),
	}
	sub := f.subscribeChat(t)

	f.executor.runTurn(ctx, testTurnInput(), nil)

	ev := waitForEvent(t, sub, models.KindStreamAborted)
	var aborted models.StreamAbortedData
	require.NoError(t, ev.Decode(&aborted))
	assert.Equal(t, "user_abort", aborted.Reason)
	assert.Equal(t, len("partial answer"), aborted.PartialContentLength)

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	assert.Equal(t, "partial answer", msg.Content)

	run, err := f.client.AgentRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCancelled, run.Status)

	// Tool work done before the abort is still billed.
	w, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(198), w.VirtualTotal)

	assert.False(t, f.bus.AbortRequested(ctx, "sess-1:topic-1"), "abort signal consumed")
}

func TestRunTurnInterruptAndResume(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "Which repo?"}),
		models.NewStreamEvent(models.KindTokenUsage, "stream-1", models.TokenUsageData{
			Model: "gpt-4o-mini", InputTokens: 3000, OutputTokens: 2000,
		}),
		models.NewStreamEvent(models.KindAskUserQuestion, "stream-1", models.AskUserQuestionData{
			QuestionID:     "q-1",
			Question:       "Which repository should I clone?",
			AllowTextInput: true,
			TimeoutSeconds: 60,
			ThreadID:       "thread-1",
		}),
	}

	f.executor.runTurn(ctx, testTurnInput(), nil)

	state, err := f.bus.GetQuestionState(ctx, "sess-1:topic-1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "thread-1", state.ThreadID)
	assert.Equal(t, "q-1", state.QuestionID)

	pending, err := f.messages.PendingQuestionMessage(ctx, "topic-1")
	require.NoError(t, err)

	preRecs, err := f.client.ConsumeRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, preRecs, 1)
	assert.Equal(t, consumerecord.ConsumeStatePending, preRecs[0].ConsumeState,
		"no settlement while interrupted")

	// The gateway resumes under a fresh stream id.
	resumeInput := testTurnInput()
	resumeInput.StreamID = "stream-2"
	f.graph.resumeScript = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-2", nil),
		models.NewStreamEvent(models.KindTokenUsage, "stream-2", models.TokenUsageData{
			Model: "gpt-4o-mini", InputTokens: 2000, OutputTokens: 1000,
		}),
		models.NewStreamEvent(models.KindStreamingEnd, "stream-2", models.StreamingEndData{
			AgentState: &models.AgentState{FinalContent: "Cloned the loom repo."},
		}),
	}
	err = f.executor.Resume(ctx, ResumeInput{
		TurnInput:  resumeInput,
		QuestionID: "q-1",
		Response:   models.UserQuestionResponse{QuestionID: "q-1", Text: "the loom repo"},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		msg, err := f.messages.GetByStreamID(ctx, "stream-2")
		return err == nil && msg.Content == "Cloned the loom repo."
	}, 5*time.Second, 50*time.Millisecond)

	resumes := f.graph.resumed()
	require.Len(t, resumes, 1)
	assert.Equal(t, "thread-1", resumes[0].ThreadID, "resume re-enters the stored thread")
	assert.Equal(t, "the loom repo", resumes[0].Response.Text)

	state, err = f.bus.GetQuestionState(ctx, "sess-1:topic-1")
	require.NoError(t, err)
	assert.Nil(t, state, "question state cleared on resume")

	msg, err := f.client.ChatMessage.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.True(t, services.HasAnsweredQuestion(msg))

	// Settlement on resume completion covers both halves of the turn.
	require.Eventually(t, func() bool {
		n, err := f.client.ConsumeRecord.Query().
			Where(consumerecord.ConsumeStateEQ(consumerecord.ConsumeStateSuccess)).
			Count(ctx)
		return err == nil && n == 2
	}, 5*time.Second, 50*time.Millisecond)

	pre, err := f.client.ConsumeRecord.Get(ctx, preRecs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, consumerecord.ConsumeStateSuccess, pre.ConsumeState,
		"pre-interrupt usage settles with the resumed turn")

	w, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(192), w.VirtualTotal, "both halves billed in one settlement")
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "hél…", truncate("héllo wörld", 3))
	assert.Equal(t, "日本…", truncate("日本語のテキスト", 2))
}

func TestResumeStaleQuestion(t *testing.T) {
	f := newTurnFixture(t, 200)

	err := f.executor.Resume(context.Background(), ResumeInput{
		TurnInput:  testTurnInput(),
		QuestionID: "never-asked",
		Response:   models.UserQuestionResponse{QuestionID: "never-asked", Text: "yes"},
	})
	assert.ErrorIs(t, err, ErrStaleQuestion)
	assert.Empty(t, f.graph.resumed())
}

func TestResumeExpiredQuestion(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()

	msg, err := f.messages.EnsureAssistantMessage(ctx, "sess-1", "topic-1", "user-1", "stream-1")
	require.NoError(t, err)
	require.NoError(t, f.messages.SetUserQuestion(ctx, msg.ID, models.AskUserQuestionData{
		QuestionID: "q-1", Question: "Proceed?", ThreadID: "thread-1", TimeoutSeconds: 1,
	}))
	require.NoError(t, f.bus.SetQuestionState(ctx, "sess-1:topic-1", "thread-1", "q-1", 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	err = f.executor.Resume(ctx, ResumeInput{
		TurnInput:  testTurnInput(),
		QuestionID: "q-1",
		Response:   models.UserQuestionResponse{QuestionID: "q-1", Text: "yes"},
	})
	assert.ErrorIs(t, err, ErrQuestionExpired)
	assert.Empty(t, f.graph.resumed())

	got, err := f.client.ChatMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	status, _ := got.UserQuestionData["status"].(string)
	assert.Equal(t, services.QuestionStatusExpired, status)

	state, err := f.bus.GetQuestionState(ctx, "sess-1:topic-1")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestExecutorSubmitAndStop(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindMessage, "stream-1", models.MessageData{Content: "done"}),
	}

	require.NoError(t, f.executor.Submit(ctx, testTurnInput()))
	require.NoError(t, f.executor.Stop(ctx))

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	assert.Equal(t, "done", msg.Content)

	assert.ErrorIs(t, f.executor.Submit(ctx, testTurnInput()), ErrShuttingDown)
	assert.ErrorIs(t, f.executor.Resume(ctx, ResumeInput{TurnInput: testTurnInput()}), ErrStaleQuestion)
}

func TestExecutorCancel(t *testing.T) {
	f := newTurnFixture(t, 200)
	ctx := context.Background()
	f.graph.gate = make(chan struct{})
	f.graph.pauseBefore = 2
	f.graph.script = []models.StreamEvent{
		models.NewStreamEvent(models.KindStreamingStart, "stream-1", nil),
		models.NewStreamEvent(models.KindStreamingChunk, "stream-1", models.ChunkData{Content: "working on it"}),
		models.NewStreamEvent(models.KindNodeEnd, "stream-1", models.NodeData{NodeID: "node-1"}),
	}

	require.NoError(t, f.executor.Submit(ctx, testTurnInput()))
	require.Eventually(t, func() bool {
		return f.turnActive("sess-1:topic-1")
	}, 5*time.Second, 10*time.Millisecond)

	f.executor.Cancel("sess-1:topic-1")
	close(f.graph.gate)
	require.NoError(t, f.executor.Stop(ctx))

	run, err := f.client.AgentRun.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCancelled, run.Status)

	msg, err := f.messages.GetByStreamID(ctx, "stream-1")
	require.NoError(t, err)
	assert.Equal(t, "working on it", msg.Content, "partial content saved on cancel")
}
