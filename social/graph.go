// Package social is the follow-graph collaborator. The hub only asks it
// one question: may A message B. The follow/accept workflow itself lives
// outside the delivery core.
package social

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"whisper-hub/errors"
	pb "whisper-hub/proto/storage"
)

// Graph is a badger-backed follow graph. CanMessage requires a mutual
// follow: an edge in each direction.
type Graph struct {
	db *badger.DB
}

func NewGraph(db *badger.DB) *Graph {
	return &Graph{db: db}
}

// Follow records a directed edge. Re-following is a no-op.
func (g *Graph) Follow(follower, followee string) error {
	edge := &pb.FollowEdge{
		Follower:  follower,
		Followee:  followee,
		CreatedAt: time.Now().Unix(),
	}
	data, err := proto.Marshal(edge)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	err = g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(edgeKey(follower, followee)), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return nil
}

// Unfollow removes a directed edge if present.
func (g *Graph) Unfollow(follower, followee string) error {
	err := g.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(edgeKey(follower, followee)))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return nil
}

func (g *Graph) CanMessage(from, to string) (bool, error) {
	allowed := false
	err := g.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(edgeKey(from, to))); err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		if _, err := txn.Get([]byte(edgeKey(to, from))); err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		allowed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return allowed, nil
}

func edgeKey(follower, followee string) string {
	return "follow:" + follower + ":" + followee
}

// AllowAll is the permissive graph for deployments without follow
// restrictions.
type AllowAll struct{}

func (AllowAll) CanMessage(_, _ string) (bool, error) { return true, nil }
