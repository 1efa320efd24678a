package social

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewGraph(db)
}

func TestCanMessageRequiresMutualFollow(t *testing.T) {
	req := require.New(t)
	graph := newTestGraph(t)

	allowed, err := graph.CanMessage("alice", "bob")
	req.NoError(err)
	req.False(allowed)

	req.NoError(graph.Follow("alice", "bob"))
	allowed, err = graph.CanMessage("alice", "bob")
	req.NoError(err)
	req.False(allowed)

	req.NoError(graph.Follow("bob", "alice"))
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		allowed, err = graph.CanMessage(pair[0], pair[1])
		req.NoError(err)
		req.True(allowed)
	}
}

func TestUnfollowRevokesDelivery(t *testing.T) {
	req := require.New(t)
	graph := newTestGraph(t)

	req.NoError(graph.Follow("alice", "bob"))
	req.NoError(graph.Follow("bob", "alice"))

	req.NoError(graph.Unfollow("bob", "alice"))
	allowed, err := graph.CanMessage("alice", "bob")
	req.NoError(err)
	req.False(allowed)

	// Unfollowing twice is harmless.
	req.NoError(graph.Unfollow("bob", "alice"))
}

func TestAllowAll(t *testing.T) {
	req := require.New(t)
	allowed, err := AllowAll{}.CanMessage("anyone", "anyone-else")
	req.NoError(err)
	req.True(allowed)
}
