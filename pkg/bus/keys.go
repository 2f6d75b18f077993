package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL keys. Every key here expires; TTLs double as crash safety when the
// owning process dies without cleaning up.

func presenceKey(cid string) string        { return "ws:active:" + cid }
func abortKey(cid string) string           { return "abort:" + cid }
func questionThreadKey(cid string) string  { return "question_thread:" + cid }
func questionActiveKey(cid string) string  { return "question_active:" + cid }
func questionTimeoutKey(cid, qid string) string {
	return fmt.Sprintf("question_timeout:%s:%s", cid, qid)
}
func sandboxKey(sessionID string) string     { return "sandbox:session:" + sessionID }
func sandboxLockKey(sessionID string) string { return "sandbox:session:" + sessionID + ":lock" }
func userSandboxKey(userID string) string    { return "sandbox:user:" + userID }
func runnerKey(userID string) string         { return "runner:online:" + userID }

// SetPresence marks the connection active with the safety-net TTL.
func (b *Bus) SetPresence(ctx context.Context, cid string, ttl time.Duration) error {
	return b.rdb.Set(ctx, presenceKey(cid), "1", ttl).Err()
}

// RefreshPresence extends the presence TTL; called from the heartbeat loop.
func (b *Bus) RefreshPresence(ctx context.Context, cid string, ttl time.Duration) error {
	return b.rdb.Expire(ctx, presenceKey(cid), ttl).Err()
}

// ClearPresence removes the presence key immediately on graceful close.
func (b *Bus) ClearPresence(ctx context.Context, cid string) error {
	return b.rdb.Del(ctx, presenceKey(cid)).Err()
}

// IsPresent reports whether a WebSocket is active for the connection. It is
// a hint for push-vs-socket decisions, not a delivery guarantee.
func (b *Bus) IsPresent(ctx context.Context, cid string) (bool, error) {
	n, err := b.rdb.Exists(ctx, presenceKey(cid)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SignalAbort sets the abort key for the connection.
func (b *Bus) SignalAbort(ctx context.Context, cid string, ttl time.Duration) error {
	return b.rdb.Set(ctx, abortKey(cid), "1", ttl).Err()
}

// AbortRequested reports whether an abort signal is pending. Errors are
// swallowed as "no abort": a flaky Redis must not kill an in-flight turn.
func (b *Bus) AbortRequested(ctx context.Context, cid string) bool {
	n, err := b.rdb.Exists(ctx, abortKey(cid)).Result()
	if err != nil {
		b.logger.Warn("Abort check failed", "cid", cid, "error", err)
		return false
	}
	return n > 0
}

// ClearAbort removes the abort key at the end of the abort path.
func (b *Bus) ClearAbort(ctx context.Context, cid string) error {
	return b.rdb.Del(ctx, abortKey(cid)).Err()
}

// SetQuestionState records an interrupt: thread id, active question id, and
// a timeout deadline keyed by the question id.
func (b *Bus) SetQuestionState(ctx context.Context, cid, threadID, questionID string, timeout time.Duration) error {
	// The thread and active keys outlive the question timeout so the resume
	// handler can distinguish "expired" from "never asked".
	stateTTL := timeout + 10*time.Minute
	pipe := b.rdb.TxPipeline()
	pipe.Set(ctx, questionThreadKey(cid), threadID, stateTTL)
	pipe.Set(ctx, questionActiveKey(cid), questionID, stateTTL)
	pipe.Set(ctx, questionTimeoutKey(cid, questionID), "1", timeout)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set question state for %s: %w", cid, err)
	}
	return nil
}

// QuestionState holds the active interrupt for a connection.
type QuestionState struct {
	ThreadID   string
	QuestionID string
	Expired    bool
}

// GetQuestionState loads the active interrupt. Returns nil when no question
// is pending.
func (b *Bus) GetQuestionState(ctx context.Context, cid string) (*QuestionState, error) {
	threadID, err := b.rdb.Get(ctx, questionThreadKey(cid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	questionID, err := b.rdb.Get(ctx, questionActiveKey(cid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	n, err := b.rdb.Exists(ctx, questionTimeoutKey(cid, questionID)).Result()
	if err != nil {
		return nil, err
	}
	return &QuestionState{
		ThreadID:   threadID,
		QuestionID: questionID,
		Expired:    n == 0,
	}, nil
}

// ClearQuestionState removes all interrupt keys for the connection.
func (b *Bus) ClearQuestionState(ctx context.Context, cid, questionID string) error {
	return b.rdb.Del(ctx,
		questionThreadKey(cid),
		questionActiveKey(cid),
		questionTimeoutKey(cid, questionID),
	).Err()
}

// GetSandboxBinding returns the backend sandbox id bound to the session, or
// "" when unbound.
func (b *Bus) GetSandboxBinding(ctx context.Context, sessionID string) (string, error) {
	id, err := b.rdb.Get(ctx, sandboxKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return id, err
}

// SetSandboxBinding binds the session to a backend sandbox id.
func (b *Bus) SetSandboxBinding(ctx context.Context, sessionID, sandboxID string, ttl time.Duration) error {
	return b.rdb.Set(ctx, sandboxKey(sessionID), sandboxID, ttl).Err()
}

// RefreshSandboxBinding extends the binding TTL on use.
func (b *Bus) RefreshSandboxBinding(ctx context.Context, sessionID string, ttl time.Duration) error {
	return b.rdb.Expire(ctx, sandboxKey(sessionID), ttl).Err()
}

// DeleteSandboxBinding removes the binding during cleanup.
func (b *Bus) DeleteSandboxBinding(ctx context.Context, sessionID string) error {
	return b.rdb.Del(ctx, sandboxKey(sessionID)).Err()
}

// AddUserSandbox records the session in the user's sandbox set, used to
// enforce the per-user creation limit.
func (b *Bus) AddUserSandbox(ctx context.Context, userID, sessionID string) error {
	return b.rdb.SAdd(ctx, userSandboxKey(userID), sessionID).Err()
}

// RemoveUserSandbox drops the session from the user's sandbox set.
func (b *Bus) RemoveUserSandbox(ctx context.Context, userID, sessionID string) error {
	return b.rdb.SRem(ctx, userSandboxKey(userID), sessionID).Err()
}

// UserSandboxSessions lists the sessions holding a sandbox for the user. The
// set has no TTL of its own; members whose binding expired are pruned by the
// limit check.
func (b *Bus) UserSandboxSessions(ctx context.Context, userID string) ([]string, error) {
	return b.rdb.SMembers(ctx, userSandboxKey(userID)).Result()
}

// AcquireSandboxLock attempts SET NX on the per-session creation lock.
func (b *Bus) AcquireSandboxLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return b.rdb.SetNX(ctx, sandboxLockKey(sessionID), "1", ttl).Result()
}

// ReleaseSandboxLock drops the creation lock.
func (b *Bus) ReleaseSandboxLock(ctx context.Context, sessionID string) error {
	return b.rdb.Del(ctx, sandboxLockKey(sessionID)).Err()
}

// SetRunnerOnline records which runner serves the user.
func (b *Bus) SetRunnerOnline(ctx context.Context, userID, runnerID string, ttl time.Duration) error {
	return b.rdb.Set(ctx, runnerKey(userID), runnerID, ttl).Err()
}

// RefreshRunnerOnline extends the runner presence TTL on heartbeat.
func (b *Bus) RefreshRunnerOnline(ctx context.Context, userID string, ttl time.Duration) error {
	return b.rdb.Expire(ctx, runnerKey(userID), ttl).Err()
}

// ClearRunnerOnline removes runner presence on disconnect.
func (b *Bus) ClearRunnerOnline(ctx context.Context, userID string) error {
	return b.rdb.Del(ctx, runnerKey(userID)).Err()
}

// RunnerOnline returns the online runner id for the user, or "" when none.
func (b *Bus) RunnerOnline(ctx context.Context, userID string) (string, error) {
	id, err := b.rdb.Get(ctx, runnerKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return id, err
}
