package runtime

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"whisper-hub/contract"
	"whisper-hub/domain"
	"whisper-hub/domain/event"
	"whisper-hub/errors"
	"whisper-hub/repositories"
	"whisper-hub/runtime/workers"
	"whisper-hub/social"
)

type hubFixture struct {
	coordinator *Coordinator
	registry    *Registry
	messages    repositories.MessageRepository
	users       repositories.IUserRepository
	subs        repositories.SubscriptionRepository
	pushJobs    chan workers.PushJob
}

func newHub(t *testing.T, graph contract.ISocialGraph) *hubFixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := discardLogger()
	messages := repositories.NewMessageRepository(db, log)
	users := repositories.NewUserRepository(db)
	subs := repositories.NewSubscriptionRepository(db)
	registry := NewRegistry()
	pushJobs := make(chan workers.PushJob, 4)

	return &hubFixture{
		coordinator: NewCoordinator(log, messages, users, subs, registry, graph, pushJobs),
		registry:    registry,
		messages:    messages,
		users:       users,
		subs:        subs,
		pushJobs:    pushJobs,
	}
}

func TestSendMessageOnlineRecipient(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	aliceSink := &recordingSink{}
	bobSink := &recordingSink{}
	hub.registry.Connect("alice", "conn-a", aliceSink)
	hub.registry.Connect("bob", "conn-b", bobSink)

	sent, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "hello"})
	req.NoError(err)
	req.Equal("hello", sent.Body)

	// Recipient sees the message and the fresh unread count.
	bobEvents := bobSink.Events()
	req.Len(bobEvents, 2)
	received, ok := bobEvents[0].(event.MessageReceived)
	req.True(ok)
	req.Equal("hello", received.Message.Body)
	req.Equal("alice", received.Message.From)
	unread, ok := bobEvents[1].(event.UnreadCountChanged)
	req.True(ok)
	req.Equal(1, unread.Count)

	// Sender gets the echo.
	aliceEvents := aliceSink.Events()
	req.Len(aliceEvents, 1)
	ack, ok := aliceEvents[0].(event.MessageSentAck)
	req.True(ok)
	req.Equal(sent.ID, ack.Message.ID)

	// Online recipient means no push fallback.
	req.Empty(hub.pushJobs)
}

func TestSendMessageFansOutToAllRecipientConnections(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	phone := &recordingSink{}
	laptop := &recordingSink{}
	hub.registry.Connect("bob", "phone", phone)
	hub.registry.Connect("bob", "laptop", laptop)

	_, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "hi"})
	req.NoError(err)

	for _, sink := range []*recordingSink{phone, laptop} {
		evts := sink.Events()
		req.Len(evts, 2)
		_, ok := evts[0].(event.MessageReceived)
		req.True(ok)
	}
}

func TestSendMessageOfflineRecipientQueuesPush(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	req.NoError(hub.subs.Save(repositories.PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/a", P256DH: "k", Auth: "a",
	}))
	req.NoError(hub.subs.Save(repositories.PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/b", P256DH: "k", Auth: "a",
	}))

	sent, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "are you there?", Ephemeral: true})
	req.NoError(err)
	req.True(sent.Ephemeral)

	req.Len(hub.pushJobs, 1)
	job := <-hub.pushJobs
	req.Len(job.Subscriptions, 2)
	req.Equal("are you there?", job.Notification.Body)
	req.Equal("/chat/alice", job.Notification.URL)

	// The message is durably stored and unread until acknowledged.
	msgs, err := hub.coordinator.Conversation(context.Background(), "alice", "bob")
	req.NoError(err)
	req.Len(msgs, 1)
	req.False(msgs[0].Read)

	marked, err := hub.coordinator.MarkAsRead(context.Background(), "alice", "bob")
	req.NoError(err)
	req.Equal(1, marked)

	msgs, err = hub.coordinator.Conversation(context.Background(), "alice", "bob")
	req.NoError(err)
	req.Empty(msgs)
}

func TestSendMessageOfflineNoSubscriptionsNoPush(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	_, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "void"})
	req.NoError(err)
	req.Empty(hub.pushJobs)
}

func TestSendMessageValidationShortCircuits(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	_, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "  ", To: "bob", Body: "x"})
	req.ErrorIs(err, errors.ErrEmptyIdentity)

	// Nothing was persisted and nothing was queued.
	count, err := hub.coordinator.UnreadCount(context.Background(), "bob")
	req.NoError(err)
	req.Equal(0, count)
	req.Empty(hub.pushJobs)
}

type failingMessages struct{}

func (failingMessages) Append(domain.SendCommand) (domain.Message, error) {
	return domain.Message{}, errors.ErrStorageUnavailable
}

func (failingMessages) Conversation(_, _ string) ([]domain.Message, error) {
	return nil, errors.ErrStorageUnavailable
}

func (failingMessages) MarkRead(_, _ string) (int, error) {
	return 0, errors.ErrStorageUnavailable
}

func (failingMessages) UnreadCount(string) (int, error) {
	return 0, errors.ErrStorageUnavailable
}

func TestSendMessageStorageFailureEmitsNothing(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := discardLogger()
	users := repositories.NewUserRepository(db)
	subs := repositories.NewSubscriptionRepository(db)
	registry := NewRegistry()
	pushJobs := make(chan workers.PushJob, 4)
	coordinator := NewCoordinator(log, failingMessages{}, users, subs,
		registry, social.AllowAll{}, pushJobs)

	// Recipient offline with a registered endpoint: a broken abort path
	// would queue a push for the failed send.
	req.NoError(subs.Save(repositories.PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/a", P256DH: "k", Auth: "a",
	}))
	aliceSink := &recordingSink{}
	registry.Connect("alice", "conn-a", aliceSink)

	_, err = coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "lost"})
	req.ErrorIs(err, errors.ErrStorageUnavailable)

	// A failed send emits nothing: no echo, no badge, no push.
	req.Empty(aliceSink.Events())
	req.Empty(pushJobs)

	_, err = coordinator.MarkAsRead(context.Background(), "alice", "bob")
	req.ErrorIs(err, errors.ErrStorageUnavailable)
}

type denyAll struct{}

func (denyAll) CanMessage(_, _ string) (bool, error) { return false, nil }

func TestSendMessageBlockedBySocialGraph(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, denyAll{})

	_, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "x"})
	req.ErrorIs(err, errors.ErrNotAllowed)

	count, err := hub.coordinator.UnreadCount(context.Background(), "bob")
	req.NoError(err)
	req.Equal(0, count)
}

func TestMutualFollowGraphGatesDelivery(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	graph := social.NewGraph(db)
	hub := newHub(t, graph)

	_, err = hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "x"})
	req.ErrorIs(err, errors.ErrNotAllowed)

	// One-way follow is still not enough.
	req.NoError(graph.Follow("alice", "bob"))
	_, err = hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "x"})
	req.ErrorIs(err, errors.ErrNotAllowed)

	req.NoError(graph.Follow("bob", "alice"))
	_, err = hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: "alice", To: "bob", Body: "x"})
	req.NoError(err)
}

func TestEnrichmentResolvesDisplayNames(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	aliceID, err := hub.users.CreateUser("alice@example.com", "Alice Lidell", "hash")
	req.NoError(err)

	sent, err := hub.coordinator.SendMessage(context.Background(),
		domain.SendCommand{From: aliceID, To: "bob", Body: "hi"})
	req.NoError(err)
	req.Equal("Alice Lidell", sent.FromName)
	// Unknown profiles fall back to the bare identity.
	req.Equal("bob", sent.ToName)
}

func TestUnreadCountReadThrough(t *testing.T) {
	req := require.New(t)
	hub := newHub(t, social.AllowAll{})

	for i := 0; i < 3; i++ {
		_, err := hub.coordinator.SendMessage(context.Background(),
			domain.SendCommand{From: "alice", To: "bob", Body: "ping"})
		req.NoError(err)
	}

	count, err := hub.coordinator.UnreadCount(context.Background(), "bob")
	req.NoError(err)
	req.Equal(3, count)

	_, err = hub.coordinator.MarkAsRead(context.Background(), "alice", "bob")
	req.NoError(err)

	count, err = hub.coordinator.UnreadCount(context.Background(), "bob")
	req.NoError(err)
	req.Equal(0, count)
}
