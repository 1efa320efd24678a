//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"whisper-hub/domain"
	"whisper-hub/errors"
	pb "whisper-hub/proto/storage"
)

type IMessageRepository interface {
	Append(cmd domain.SendCommand) (domain.Message, error)
	Conversation(userA, userB string) ([]domain.Message, error)
	MarkRead(from, to string) (int, error)
	UnreadCount(recipient string) (int, error)
}

// MessageRepository is the durable message log on BadgerDB.
//
// Key layout:
//
//	msg:{pair}:{nanos_padded}:{uuid}   -> storage.Message
//	inbox:{to}:{from}:{nanos_padded}:{uuid} -> msg key (unread index)
//
// The pair segment is the sorted identity pair, so both directions of a
// conversation share one prefix and the 19-digit zero-padded timestamp
// keeps keys in chronological order lexicographically. The uuid (v7,
// itself time-ordered) disambiguates messages stored in the same
// nanosecond. An inbox entry exists exactly while the message is unread.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// Append persists a new message, assigning its id and timestamp. The
// message document and its unread-index entry are written in a single
// transaction; any storage failure surfaces as ErrStorageUnavailable and
// nothing is kept.
func (m MessageRepository) Append(cmd domain.SendCommand) (domain.Message, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Message{}, fmt.Errorf("id generation failed: %w", err)
	}
	msg := domain.Message{
		ID:        id,
		From:      cmd.From,
		To:        cmd.To,
		Body:      cmd.Body,
		SentAt:    time.Now().UTC(),
		Read:      false,
		Ephemeral: cmd.Ephemeral,
	}

	bytes, err := proto.Marshal(fromMessage(msg))
	if err != nil {
		return domain.Message{}, fmt.Errorf("marshal failed: %w", err)
	}

	key := messageKey(msg)
	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(inboxKey(msg)), []byte(key))
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return msg, nil
}

// Conversation returns every message exchanged between the two
// identities, both directions, ascending by sentAt then id. Unread
// ephemeral messages are still present here; once marked read they are
// physically removed and vanish from all future calls.
func (m MessageRepository) Conversation(userA, userB string) ([]domain.Message, error) {
	prefix := []byte("msg:" + domain.PairKey(userA, userB) + ":")

	var rawValues [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
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

	var messages []domain.Message
	for _, raw := range rawValues {
		var record pb.Message
		if err = proto.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
		msg, err := toMessage(&record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// MarkRead flips every unread message from sender to recipient to read,
// then sweeps out all ephemeral messages for that direction, whether
// newly marked or read long ago. Mark happens strictly before delete so
// an ephemeral message is never removed without being recorded as read.
// Calling it with nothing unread is a no-op that still sweeps.
func (m MessageRepository) MarkRead(from, to string) (int, error) {
	marked, err := m.markUnread(from, to)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	if err := m.sweepEphemeral(from, to); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	if marked > 0 {
		m.log.Debug(fmt.Sprintf("Marked %d messages read", marked), "from", from, "to", to)
	}
	return marked, nil
}

func (m MessageRepository) markUnread(from, to string) (int, error) {
	prefix := []byte("inbox:" + to + ":" + from + ":")
	marked := 0
	err := m.db.Update(func(txn *badger.Txn) error {
		// Collect first, mutate after the iterator is closed.
		var indexKeys, msgKeys [][]byte
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			msgKey, err := item.ValueCopy(nil)
			if err != nil {
				it.Close()
				return err
			}
			indexKeys = append(indexKeys, item.KeyCopy(nil))
			msgKeys = append(msgKeys, msgKey)
		}
		it.Close()

		for i, msgKey := range msgKeys {
			item, err := txn.Get(msgKey)
			if err == badger.ErrKeyNotFound {
				// Dangling index entry, message already gone. Drop it
				// and move on so the next call stays a no-op.
				if err := txn.Delete(indexKeys[i]); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			var record pb.Message
			if err = item.Value(func(value []byte) error {
				return proto.Unmarshal(value, &record)
			}); err != nil {
				return err
			}
			record.Read = true
			bytes, err := proto.Marshal(&record)
			if err != nil {
				return err
			}
			if err = txn.Set(msgKey, bytes); err != nil {
				return err
			}
			if err = txn.Delete(indexKeys[i]); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func (m MessageRepository) sweepEphemeral(from, to string) error {
	prefix := []byte("msg:" + domain.PairKey(from, to) + ":")
	return m.db.Update(func(txn *badger.Txn) error {
		var doomed [][]byte
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var record pb.Message
			if err := item.Value(func(value []byte) error {
				return proto.Unmarshal(value, &record)
			}); err != nil {
				it.Close()
				return err
			}
			// Only the direction being acknowledged is swept.
			if record.Ephemeral && record.From == from && record.To == to {
				doomed = append(doomed, item.KeyCopy(nil))
				// A message appended after the mark pass is still
				// unread here; its index entry goes with it or the
				// count would never converge back to zero.
				doomed = append(doomed, []byte(fmt.Sprintf("inbox:%s:%s:%019d:%s",
					record.To, record.From, record.SentAt, record.Id)))
			}
		}
		it.Close()

		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// UnreadCount counts unread messages addressed to the recipient across
// all senders. Pure index scan, values are never fetched.
func (m MessageRepository) UnreadCount(recipient string) (int, error) {
	prefix := []byte("inbox:" + recipient + ":")
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return count, nil
}

func messageKey(msg domain.Message) string {
	return fmt.Sprintf("msg:%s:%019d:%s",
		domain.PairKey(msg.From, msg.To),
		msg.SentAt.UnixNano(),
		msg.ID,
	)
}

func inboxKey(msg domain.Message) string {
	return fmt.Sprintf("inbox:%s:%s:%019d:%s",
		msg.To,
		msg.From,
		msg.SentAt.UnixNano(),
		msg.ID,
	)
}

func fromMessage(msg domain.Message) *pb.Message {
	return &pb.Message{
		Id:        msg.ID.String(),
		From:      msg.From,
		To:        msg.To,
		Body:      msg.Body,
		SentAt:    msg.SentAt.UnixNano(),
		Read:      msg.Read,
		Ephemeral: msg.Ephemeral,
	}
}

func toMessage(record *pb.Message) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.Id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("corrupt message id: %w", err)
	}
	return domain.Message{
		ID:        parsedID,
		From:      record.From,
		To:        record.To,
		Body:      record.Body,
		SentAt:    time.Unix(0, record.SentAt).UTC(),
		Read:      record.Read,
		Ephemeral: record.Ephemeral,
	}, nil
}
