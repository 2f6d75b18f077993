package bus

import "fmt"

// Channel name builders. One channel family per routing concern; payloads are
// JSON-encoded StreamEvent or RunnerMessage frames.

// ChatChannel carries turn events from the worker to the gateway relay.
func ChatChannel(connectionID string) string {
	return "chat:" + connectionID
}

// UserChannel carries cross-topic per-user events (wallet updates,
// notifications).
func UserChannel(userID string) string {
	return fmt.Sprintf("user:%s:events", userID)
}

// TerminalChannel carries PTY output from the runner's home pod to the
// terminal gateway.
func TerminalChannel(ptySessionID string) string {
	return "terminal:output:" + ptySessionID
}

// RunnerRequestChannel carries cross-pod RPC requests toward the pod holding
// the user's runner connection.
func RunnerRequestChannel(userID string) string {
	return "runner:request:" + userID
}

// RunnerResponseChannel is the reply channel paired with a single cross-pod
// request.
func RunnerResponseChannel(requestID string) string {
	return "runner:response:" + requestID
}
