package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"whisper-hub/contract"
	"whisper-hub/domain/event"
)

// DefaultTypingRevertDelay is how long a typing indicator stays up
// before the coordinator reverts it on the sender's behalf.
const DefaultTypingRevertDelay = 2 * time.Second

// TypingCoordinator broadcasts transient typing indicators and owns
// their expiry. At most one pending revert timer exists per (from, to)
// pair: a fresh Typing call cancels and replaces the previous timer, so
// the eventual "stopped typing" is timed from the last keystroke and
// timers never stack. Nothing here is persisted.
type TypingCoordinator struct {
	log         *slog.Logger
	registry    contract.IPresenceRegistry
	revertDelay time.Duration
	shards      [shardCount]*typingShard
}

type typingShard struct {
	mu      sync.Mutex
	pending map[string]*revertHandle
}

// revertHandle identifies one armed auto-revert. The fired callback
// checks it is still the registered handle for its pair before
// broadcasting, so a superseded timer stays silent even if it was
// already past Stop when replaced.
type revertHandle struct {
	timer *time.Timer
}

func NewTypingCoordinator(log *slog.Logger, registry contract.IPresenceRegistry,
	revertDelay time.Duration) *TypingCoordinator {
	if revertDelay <= 0 {
		revertDelay = DefaultTypingRevertDelay
	}
	c := &TypingCoordinator{log: log, registry: registry, revertDelay: revertDelay}
	for i := range c.shards {
		c.shards[i] = &typingShard{pending: make(map[string]*revertHandle)}
	}
	return c
}

func (c *TypingCoordinator) shard(key string) *typingShard {
	return c.shards[shardIndex(key)]
}

// Typing broadcasts "is typing" to the recipient's connections and arms
// the auto-revert for this pair, replacing any timer already pending.
func (c *TypingCoordinator) Typing(ctx context.Context, from, to string) {
	c.broadcast(ctx, event.TypingChanged{From: from, To: to, Typing: true})

	key := pairTimerKey(from, to)
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.pending[key]; ok {
		old.timer.Stop()
	}
	handle := &revertHandle{}
	handle.timer = time.AfterFunc(c.revertDelay, func() {
		c.expire(key, handle, from, to)
	})
	s.pending[key] = handle
}

// StopTyping reverts the indicator immediately and disarms any pending
// timer for the pair.
func (c *TypingCoordinator) StopTyping(ctx context.Context, from, to string) {
	key := pairTimerKey(from, to)
	s := c.shard(key)
	s.mu.Lock()
	if handle, ok := s.pending[key]; ok {
		handle.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	c.broadcast(ctx, event.TypingChanged{From: from, To: to, Typing: false})
}

func (c *TypingCoordinator) expire(key string, handle *revertHandle, from, to string) {
	s := c.shard(key)
	s.mu.Lock()
	current, ok := s.pending[key]
	if !ok || current != handle {
		// Superseded by a newer Typing call or already stopped.
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	c.broadcast(context.Background(), event.TypingChanged{From: from, To: to, Typing: false})
}

func (c *TypingCoordinator) broadcast(ctx context.Context, evt event.TypingChanged) {
	for _, sink := range c.registry.ConnectionsOf(evt.To) {
		if err := sink.Consume(ctx, evt); err != nil {
			c.log.Debug(fmt.Sprintf("Typing event dropped for %s", evt.To), "error", err)
		}
	}
}

func pairTimerKey(from, to string) string {
	return from + ":" + to
}
