package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"whisper-hub/domain/event"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSink captures every event it consumes, for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DeliveryEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DeliveryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []event.DeliveryEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DeliveryEvent(nil), s.events...)
}

func TestRegistryConnectDisconnect(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.False(registry.IsLive("alice"))

	registry.Connect("alice", "conn-1", &recordingSink{})
	req.True(registry.IsLive("alice"))
	req.Len(registry.ConnectionsOf("alice"), 1)

	registry.Disconnect("alice", "conn-1")
	req.False(registry.IsLive("alice"))
	req.Nil(registry.ConnectionsOf("alice"))
}

func TestRegistryMultipleConnectionsPerIdentity(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Connect("alice", "phone", &recordingSink{})
	registry.Connect("alice", "laptop", &recordingSink{})
	req.Len(registry.ConnectionsOf("alice"), 2)

	registry.Disconnect("alice", "phone")
	req.True(registry.IsLive("alice"))
	req.Len(registry.ConnectionsOf("alice"), 1)

	registry.Disconnect("alice", "laptop")
	req.False(registry.IsLive("alice"))
}

func TestRegistryDisconnectUnknownIsNoop(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Disconnect("ghost", "conn-1")
	req.False(registry.IsLive("ghost"))

	registry.Connect("alice", "conn-1", &recordingSink{})
	registry.Disconnect("alice", "wrong-conn")
	req.True(registry.IsLive("alice"))
}

func TestRegistrySnapshotIsCallerOwned(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Connect("alice", "conn-1", &recordingSink{})
	snapshot := registry.ConnectionsOf("alice")
	registry.Disconnect("alice", "conn-1")

	// The snapshot keeps working after the disconnect.
	req.Len(snapshot, 1)
}

func TestRegistryConcurrentChurn(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			identity := fmt.Sprintf("user-%d", n%8)
			connID := fmt.Sprintf("conn-%d", n)
			registry.Connect(identity, connID, &recordingSink{})
			registry.IsLive(identity)
			registry.ConnectionsOf(identity)
			registry.Disconnect(identity, connID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		req.False(registry.IsLive(fmt.Sprintf("user-%d", i)))
	}
}
