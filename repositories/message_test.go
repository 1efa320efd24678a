package repositories

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"whisper-hub/domain"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAppendAssignsIdentityAndTimestamp(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	before := time.Now().UTC()
	msg, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "hello"})
	req.NoError(err)

	req.NotEqual(uuid.Nil, msg.ID)
	req.False(msg.SentAt.Before(before))
	req.False(msg.Read)
	req.False(msg.Ephemeral)
}

func TestConversationOrderedBothDirections(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	bodies := []string{"first", "second", "third", "fourth"}
	senders := []string{"alice", "bob", "alice", "bob"}
	for i, body := range bodies {
		to := "bob"
		if senders[i] == "bob" {
			to = "alice"
		}
		_, err := repo.Append(domain.SendCommand{From: senders[i], To: to, Body: body})
		req.NoError(err)
		time.Sleep(time.Millisecond)
	}

	// Same history regardless of which side asks.
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		msgs, err := repo.Conversation(pair[0], pair[1])
		req.NoError(err)
		req.Equal(bodies, lo.Map(msgs, func(m domain.Message, _ int) string { return m.Body }))
		req.Equal(senders, lo.Map(msgs, func(m domain.Message, _ int) string { return m.From }))
	}
}

func TestConversationIsolatedPerPair(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "for bob"})
	req.NoError(err)
	_, err = repo.Append(domain.SendCommand{From: "alice", To: "carol", Body: "for carol"})
	req.NoError(err)

	msgs, err := repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("for bob", msgs[0].Body)
}

func TestUnreadCountPerRecipient(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	for i := 0; i < 3; i++ {
		_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "ping"})
		req.NoError(err)
	}
	_, err := repo.Append(domain.SendCommand{From: "carol", To: "bob", Body: "ping"})
	req.NoError(err)
	_, err = repo.Append(domain.SendCommand{From: "bob", To: "alice", Body: "pong"})
	req.NoError(err)

	count, err := repo.UnreadCount("bob")
	req.NoError(err)
	req.Equal(4, count)

	count, err = repo.UnreadCount("alice")
	req.NoError(err)
	req.Equal(1, count)

	count, err = repo.UnreadCount("carol")
	req.NoError(err)
	req.Equal(0, count)
}

func TestMarkReadFlipsAndClearsIndex(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "one"})
	req.NoError(err)
	_, err = repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "two"})
	req.NoError(err)
	_, err = repo.Append(domain.SendCommand{From: "carol", To: "bob", Body: "three"})
	req.NoError(err)

	marked, err := repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(2, marked)

	// Only the acknowledged sender is cleared.
	count, err := repo.UnreadCount("bob")
	req.NoError(err)
	req.Equal(1, count)

	msgs, err := repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(msgs, 2)
	for _, msg := range msgs {
		req.True(msg.Read)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "once"})
	req.NoError(err)

	marked, err := repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(1, marked)

	marked, err = repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(0, marked)

	count, err := repo.UnreadCount("bob")
	req.NoError(err)
	req.Equal(0, count)
}

func TestEphemeralVisibleUntilReadThenGone(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "keep", Ephemeral: false})
	req.NoError(err)
	time.Sleep(time.Millisecond)
	_, err = repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "burn", Ephemeral: true})
	req.NoError(err)

	// Unread ephemeral messages still show up in the history.
	msgs, err := repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(msgs, 2)
	req.True(msgs[1].Ephemeral)
	req.False(msgs[1].Read)

	marked, err := repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(2, marked)

	msgs, err = repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("keep", msgs[0].Body)
	req.True(msgs[0].Read)
}

func TestEphemeralAppendedBetweenMarkAndSweep(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "first", Ephemeral: true})
	req.NoError(err)

	// MarkRead is two transactions. An ephemeral append landing between
	// them is swept while unread; its index entry must go with it.
	marked, err := repo.markUnread("alice", "bob")
	req.NoError(err)
	req.Equal(1, marked)

	_, err = repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "interleaved", Ephemeral: true})
	req.NoError(err)

	req.NoError(repo.sweepEphemeral("alice", "bob"))

	count, err := repo.UnreadCount("bob")
	req.NoError(err)
	req.Equal(0, count)

	msgs, err := repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Empty(msgs)

	// And the next acknowledgement is still a harmless no-op.
	marked, err = repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(0, marked)
}

func TestMarkReadToleratesDanglingIndexEntry(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewMessageRepository(db, discardLogger())

	msg, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "gone", Ephemeral: true})
	req.NoError(err)

	// Simulate a crash that removed the document but not its index.
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(messageKey(msg)))
	}))

	marked, err := repo.MarkRead("alice", "bob")
	req.NoError(err)
	req.Equal(0, marked)

	count, err := repo.UnreadCount("bob")
	req.NoError(err)
	req.Equal(0, count)
}

func TestEphemeralSweepLeavesOtherDirection(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestDB(t), discardLogger())

	_, err := repo.Append(domain.SendCommand{From: "alice", To: "bob", Body: "from alice", Ephemeral: true})
	req.NoError(err)
	_, err = repo.Append(domain.SendCommand{From: "bob", To: "alice", Body: "from bob", Ephemeral: true})
	req.NoError(err)

	_, err = repo.MarkRead("alice", "bob")
	req.NoError(err)

	msgs, err := repo.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("bob", msgs[0].From)
}
