//go:generate go run go.uber.org/mock/mockgen -source=subscription.go -destination=../mocks/mock_subscription_repository.go -package=mocks
package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"whisper-hub/errors"
	pb "whisper-hub/proto/storage"
)

type ISubscriptionRepository interface {
	Save(sub PushSubscription) error
	ListByUser(userID string) ([]PushSubscription, error)
	Delete(userID, endpoint string) error
}

// PushSubscription is one registered device endpoint for a user,
// carrying the web-push keys needed to encrypt the payload.
type PushSubscription struct {
	UserID    string
	Endpoint  string
	P256DH    string
	Auth      string
	CreatedAt time.Time
}

// SubscriptionRepository stores push subscriptions under
// "sub:{user}:{endpoint}". The endpoint is part of the key, so saving
// the same endpoint twice for a user is a no-op.
type SubscriptionRepository struct {
	db *badger.DB
}

func NewSubscriptionRepository(db *badger.DB) SubscriptionRepository {
	return SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) Save(sub PushSubscription) error {
	if strings.TrimSpace(sub.UserID) == "" || strings.TrimSpace(sub.Endpoint) == "" {
		return errors.ErrInvalidSubscription
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	bytes, err := proto.Marshal(fromSubscription(sub))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	key := []byte(subscriptionKey(sub.UserID, sub.Endpoint))
	err = s.db.Update(func(txn *badger.Txn) error {
		// Keep the original registration timestamp on re-save.
		if _, err := txn.Get(key); err == nil {
			return nil
		}
		return txn.Set(key, bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s SubscriptionRepository) ListByUser(userID string) ([]PushSubscription, error) {
	prefix := []byte("sub:" + userID + ":")

	var rawValues [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				rawValues = append(rawValues, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}

	var subs []PushSubscription
	for _, raw := range rawValues {
		var record pb.PushSubscription
		if err = proto.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
		subs = append(subs, toSubscription(&record))
	}
	return subs, nil
}

func (s SubscriptionRepository) Delete(userID, endpoint string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(subscriptionKey(userID, endpoint)))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return nil
}

func subscriptionKey(userID, endpoint string) string {
	return "sub:" + userID + ":" + endpoint
}

func fromSubscription(sub PushSubscription) *pb.PushSubscription {
	return &pb.PushSubscription{
		UserId:    sub.UserID,
		Endpoint:  sub.Endpoint,
		P256Dh:    sub.P256DH,
		Auth:      sub.Auth,
		CreatedAt: sub.CreatedAt.UnixNano(),
	}
}

func toSubscription(record *pb.PushSubscription) PushSubscription {
	return PushSubscription{
		UserID:    record.UserId,
		Endpoint:  record.Endpoint,
		P256DH:    record.P256Dh,
		Auth:      record.Auth,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}
}
