package api

import "context"

// ConnectionHook is invoked around each chat WebSocket's lifetime. The
// default build uses NopHook; enterprise builds register connections toward
// a per-user parallel-chat limit.
type ConnectionHook interface {
	// Connect is called after authentication and before the relay starts.
	// A non-nil error rejects the connection.
	Connect(ctx context.Context, userID, cid string) error

	// Disconnect is called once on graceful close or read failure.
	Disconnect(ctx context.Context, userID, cid string)
}

// NopHook accepts every connection.
type NopHook struct{}

func (NopHook) Connect(context.Context, string, string) error { return nil }
func (NopHook) Disconnect(context.Context, string, string)    {}
