package api

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func connTestServer() *Server {
	return &Server{
		chatConns: make(map[string]*chatConn),
		logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

func TestTakeoverEvictsPreviousConnection(t *testing.T) {
	s := connTestServer()

	evicted := false
	old := &chatConn{server: s, cid: "sess-1:topic-1", cancel: func() { evicted = true }}
	s.takeoverChatConn(old)

	newer := &chatConn{server: s, cid: "sess-1:topic-1", cancel: func() {}}
	s.takeoverChatConn(newer)

	assert.True(t, evicted, "older connection for the same cid is cancelled")
	assert.False(t, s.releaseChatConn(old), "evicted connection no longer owns the cid")
	assert.True(t, s.releaseChatConn(newer))
}

func TestTakeoverIsolatesConnectionIDs(t *testing.T) {
	s := connTestServer()

	evicted := false
	a := &chatConn{server: s, cid: "sess-1:topic-1", cancel: func() { evicted = true }}
	b := &chatConn{server: s, cid: "sess-1:topic-2", cancel: func() {}}
	s.takeoverChatConn(a)
	s.takeoverChatConn(b)

	assert.False(t, evicted, "different cids coexist")
	assert.True(t, s.releaseChatConn(a))
	assert.True(t, s.releaseChatConn(b))
	assert.False(t, s.releaseChatConn(a), "release is idempotent")
}
