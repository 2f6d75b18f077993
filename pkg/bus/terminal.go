package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PTY session state. Kept in Redis rather than pod memory so a browser can
// reattach through any pod while the runner's home pod keeps producing
// output.

const ptyBufferCap = 500 // buffered output frames kept per detached session

func ptySessionKey(ptyID string) string  { return "terminal:session:" + ptyID }
func ptyAttachedKey(ptyID string) string { return "terminal:attached:" + ptyID }
func ptyBufferKey(ptyID string) string   { return "terminal:buffer:" + ptyID }

// PtySessionInfo is the persisted PTY session record.
type PtySessionInfo struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

// SetPtySession registers a live PTY session under the grace-period TTL.
func (b *Bus) SetPtySession(ctx context.Context, ptyID string, info PtySessionInfo, ttl time.Duration) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal pty session: %w", err)
	}
	return b.rdb.Set(ctx, ptySessionKey(ptyID), data, ttl).Err()
}

// GetPtySession loads the PTY session record; nil when expired or unknown.
func (b *Bus) GetPtySession(ctx context.Context, ptyID string) (*PtySessionInfo, error) {
	data, err := b.rdb.Get(ctx, ptySessionKey(ptyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var info PtySessionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pty session: %w", err)
	}
	return &info, nil
}

// RefreshPtySession extends the session TTL while a browser is attached.
func (b *Bus) RefreshPtySession(ctx context.Context, ptyID string, ttl time.Duration) error {
	return b.rdb.Expire(ctx, ptySessionKey(ptyID), ttl).Err()
}

// DeletePtySession removes all state for a closed PTY.
func (b *Bus) DeletePtySession(ctx context.Context, ptyID string) error {
	return b.rdb.Del(ctx,
		ptySessionKey(ptyID),
		ptyAttachedKey(ptyID),
		ptyBufferKey(ptyID),
	).Err()
}

// MarkPtyAttached flags the session as having a live browser.
func (b *Bus) MarkPtyAttached(ctx context.Context, ptyID string, ttl time.Duration) error {
	return b.rdb.Set(ctx, ptyAttachedKey(ptyID), "1", ttl).Err()
}

// MarkPtyDetached clears the attached flag; subsequent output is buffered.
func (b *Bus) MarkPtyDetached(ctx context.Context, ptyID string) error {
	return b.rdb.Del(ctx, ptyAttachedKey(ptyID)).Err()
}

// IsPtyAttached reports whether a browser is live on the session.
func (b *Bus) IsPtyAttached(ctx context.Context, ptyID string) (bool, error) {
	n, err := b.rdb.Exists(ctx, ptyAttachedKey(ptyID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AppendPtyBuffer queues one output frame for a detached session, capped to
// the newest ptyBufferCap frames.
func (b *Bus) AppendPtyBuffer(ctx context.Context, ptyID string, data []byte, ttl time.Duration) error {
	pipe := b.rdb.TxPipeline()
	pipe.RPush(ctx, ptyBufferKey(ptyID), data)
	pipe.LTrim(ctx, ptyBufferKey(ptyID), -ptyBufferCap, -1)
	pipe.Expire(ctx, ptyBufferKey(ptyID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// DrainPtyBuffer returns and clears the buffered output for replay.
func (b *Bus) DrainPtyBuffer(ctx context.Context, ptyID string) ([][]byte, error) {
	vals, err := b.rdb.LRange(ctx, ptyBufferKey(ptyID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if err := b.rdb.Del(ctx, ptyBufferKey(ptyID)).Err(); err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		out = append(out, []byte(v))
	}
	return out, nil
}
