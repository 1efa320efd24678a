package repositories

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"whisper-hub/errors"
)

func TestSaveAndListSubscriptions(t *testing.T) {
	req := require.New(t)
	repo := NewSubscriptionRepository(newTestDB(t))

	req.NoError(repo.Save(PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/a", P256DH: "key-a", Auth: "auth-a",
	}))
	req.NoError(repo.Save(PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/b", P256DH: "key-b", Auth: "auth-b",
	}))
	req.NoError(repo.Save(PushSubscription{
		UserID: "alice", Endpoint: "https://push.example/c", P256DH: "key-c", Auth: "auth-c",
	}))

	subs, err := repo.ListByUser("bob")
	req.NoError(err)
	req.Len(subs, 2)
	req.ElementsMatch([]string{"https://push.example/a", "https://push.example/b"},
		lo.Map(subs, func(s PushSubscription, _ int) string { return s.Endpoint }))
	for _, sub := range subs {
		req.Equal("bob", sub.UserID)
		req.False(sub.CreatedAt.IsZero())
	}
}

func TestSaveRejectsIncompleteSubscription(t *testing.T) {
	req := require.New(t)
	repo := NewSubscriptionRepository(newTestDB(t))

	err := repo.Save(PushSubscription{UserID: "", Endpoint: "https://push.example/a"})
	req.ErrorIs(err, errors.ErrInvalidSubscription)

	err = repo.Save(PushSubscription{UserID: "bob", Endpoint: "  "})
	req.ErrorIs(err, errors.ErrInvalidSubscription)
}

func TestResaveKeepsOriginalTimestamp(t *testing.T) {
	req := require.New(t)
	repo := NewSubscriptionRepository(newTestDB(t))

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	req.NoError(repo.Save(PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/a", CreatedAt: first,
	}))
	req.NoError(repo.Save(PushSubscription{
		UserID: "bob", Endpoint: "https://push.example/a",
	}))

	subs, err := repo.ListByUser("bob")
	req.NoError(err)
	req.Len(subs, 1)
	req.Equal(first, subs[0].CreatedAt)
}

func TestDeleteSubscription(t *testing.T) {
	req := require.New(t)
	repo := NewSubscriptionRepository(newTestDB(t))

	req.NoError(repo.Save(PushSubscription{UserID: "bob", Endpoint: "https://push.example/a"}))
	req.NoError(repo.Delete("bob", "https://push.example/a"))

	subs, err := repo.ListByUser("bob")
	req.NoError(err)
	req.Empty(subs)

	// Deleting an unknown endpoint is a no-op.
	req.NoError(repo.Delete("bob", "https://push.example/ghost"))
}
