package agent

import (
	"context"

	"github.com/agentloom/loom/pkg/models"
)

// TurnContext identifies the turn on whose behalf nested tool code runs, so
// usage can be attributed without threading parameters through every call.
// It rides the per-turn context.Context; concurrent turns are isolated.
type TurnContext struct {
	SessionID   string
	TopicID     string
	UserID      string
	StreamID    string
	MessageID   string
	Attribution models.Attribution
}

type turnContextKey struct{}

// WithTurn attaches the turn tracking context.
func WithTurn(ctx context.Context, tc *TurnContext) context.Context {
	return context.WithValue(ctx, turnContextKey{}, tc)
}

// TurnFromContext returns the turn tracking context, or nil outside a turn.
func TurnFromContext(ctx context.Context) *TurnContext {
	tc, _ := ctx.Value(turnContextKey{}).(*TurnContext)
	return tc
}
