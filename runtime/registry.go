package runtime

import (
	"sync"

	"whisper-hub/contract"
)

// Registry is the process-wide presence map: identity -> live connection
// handles. It is sharded by identity hash; operations on different
// identities proceed in parallel, operations on the same identity are
// linearized by its shard lock.
//
// An identity whose last connection leaves is removed entirely, so
// "offline" is the same whether the entry is absent or was never there.
type Registry struct {
	shards [shardCount]*registryShard
}

type registryShard struct {
	mu sync.RWMutex
	// identity -> connection id -> sink
	connections map[string]map[string]contract.EventSink
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i] = &registryShard{
			connections: make(map[string]map[string]contract.EventSink),
		}
	}
	return r
}

func (r *Registry) shard(identity string) *registryShard {
	return r.shards[shardIndex(identity)]
}

// Connect adds a connection handle for the identity, creating the entry
// on first connection. One identity may hold many concurrent handles.
func (r *Registry) Connect(identity, connectionID string, sink contract.EventSink) {
	s := r.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connections[identity]; !ok {
		s.connections[identity] = make(map[string]contract.EventSink)
	}
	s.connections[identity][connectionID] = sink
}

// Disconnect removes the handle and drops the whole entry once the set
// is empty, to keep the registry bounded by live identities.
func (r *Registry) Disconnect(identity, connectionID string) {
	s := r.shard(identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, ok := s.connections[identity]
	if !ok {
		return
	}
	delete(handles, connectionID)
	if len(handles) == 0 {
		delete(s.connections, identity)
	}
}

// IsLive reports whether the identity has at least one connection right
// now. This is a point-in-time snapshot: a disconnect racing with the
// caller's next step is accepted best-effort behavior.
func (r *Registry) IsLive(identity string) bool {
	s := r.shard(identity)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections[identity]) > 0
}

// ConnectionsOf returns a snapshot of the identity's handles for
// fan-out. The returned slice is owned by the caller.
func (r *Registry) ConnectionsOf(identity string) []contract.EventSink {
	s := r.shard(identity)
	s.mu.RLock()
	defer s.mu.RUnlock()

	handles := s.connections[identity]
	if len(handles) == 0 {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(handles))
	for _, sink := range handles {
		sinks = append(sinks, sink)
	}
	return sinks
}
