// Package runner routes RPCs to user-connected CLI runners. The pod that
// terminates a runner's WebSocket is its home pod and holds the connection
// in a pod-local registry; requests from other pods travel over the bus
// request/response channels.
package runner

import (
	"context"
	"sync"

	"github.com/agentloom/loom/pkg/models"
)

// Conn is one runner WebSocket, writable by the dispatcher. The gateway's
// socket wrapper satisfies it.
type Conn interface {
	Send(ctx context.Context, msg models.RunnerMessage) error
}

// Registry is the pod-local map of connected runners and in-flight local
// requests.
type Registry struct {
	mu      sync.RWMutex
	conns   map[string]Conn // user_id → socket
	pending map[string]chan models.RunnerResult
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		conns:   make(map[string]Conn),
		pending: make(map[string]chan models.RunnerResult),
	}
}

// Register makes this pod home for the user's runner. A second runner for
// the same user replaces the first.
func (r *Registry) Register(userID string, conn Conn) {
	r.mu.Lock()
	r.conns[userID] = conn
	r.mu.Unlock()
}

// Unregister removes the connection if it is still the registered one.
func (r *Registry) Unregister(userID string, conn Conn) {
	r.mu.Lock()
	if r.conns[userID] == conn {
		delete(r.conns, userID)
	}
	r.mu.Unlock()
}

// Get returns the local connection for the user, or nil.
func (r *Registry) Get(userID string) Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conns[userID]
}

// AddPending allocates the reply slot for a local request.
func (r *Registry) AddPending(requestID string) <-chan models.RunnerResult {
	ch := make(chan models.RunnerResult, 1)
	r.mu.Lock()
	r.pending[requestID] = ch
	r.mu.Unlock()
	return ch
}

// Resolve delivers a local reply. Returns false when the request is not
// pending here (a cross-pod request, or one that already timed out).
func (r *Registry) Resolve(requestID string, result models.RunnerResult) bool {
	r.mu.Lock()
	ch, ok := r.pending[requestID]
	if ok {
		delete(r.pending, requestID)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	ch <- result
	return true
}

// DropPending abandons a request slot after a timeout.
func (r *Registry) DropPending(requestID string) {
	r.mu.Lock()
	delete(r.pending, requestID)
	r.mu.Unlock()
}
