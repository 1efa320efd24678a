package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"whisper-hub/push"
	"whisper-hub/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGateway records every Notify call and can be told to fail some
// endpoints.
type fakeGateway struct {
	mu      sync.Mutex
	calls   []repositories.PushSubscription
	failFor map[string]error
}

func (g *fakeGateway) Notify(_ context.Context, sub repositories.PushSubscription, _ push.Notification) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, sub)
	if err, ok := g.failFor[sub.Endpoint]; ok {
		return err
	}
	return nil
}

func (g *fakeGateway) Calls() []repositories.PushSubscription {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]repositories.PushSubscription(nil), g.calls...)
}

func TestDispatcherNotifiesEveryEndpoint(t *testing.T) {
	req := require.New(t)
	gateway := &fakeGateway{}
	jobs := make(chan PushJob, 1)
	dispatcher := NewPushDispatcher(discardLogger(), gateway, jobs)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = dispatcher.Run(ctx)
		close(done)
	}()

	jobs <- PushJob{
		Subscriptions: []repositories.PushSubscription{
			{UserID: "bob", Endpoint: "https://push.example/a"},
			{UserID: "bob", Endpoint: "https://push.example/b"},
		},
		Notification: push.Notification{Title: "Alice", Body: "hi", URL: "/chat/alice"},
	}

	req.Eventually(func() bool { return len(gateway.Calls()) == 2 },
		time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestDispatcherSwallowsGatewayFailures(t *testing.T) {
	req := require.New(t)
	gateway := &fakeGateway{failFor: map[string]error{
		"https://push.example/dead": errors.New("endpoint gone"),
	}}
	jobs := make(chan PushJob, 2)
	dispatcher := NewPushDispatcher(discardLogger(), gateway, jobs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	// A failing endpoint must not stop later deliveries.
	jobs <- PushJob{Subscriptions: []repositories.PushSubscription{
		{UserID: "bob", Endpoint: "https://push.example/dead"},
		{UserID: "bob", Endpoint: "https://push.example/live"},
	}}
	jobs <- PushJob{Subscriptions: []repositories.PushSubscription{
		{UserID: "carol", Endpoint: "https://push.example/other"},
	}}

	req.Eventually(func() bool { return len(gateway.Calls()) == 3 },
		time.Second, 5*time.Millisecond)
}

func TestDispatcherStopsOnContextCancel(t *testing.T) {
	req := require.New(t)
	dispatcher := NewPushDispatcher(discardLogger(), &fakeGateway{}, make(chan PushJob))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- dispatcher.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
