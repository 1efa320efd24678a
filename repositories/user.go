//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"whisper-hub/errors"
	pb "whisper-hub/proto/storage"
)

type IUserRepository interface {
	CreateUser(email, displayName, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
	GetProfile(userID string) (User, error)
}

// User is the repository-level representation of an account.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// UserRepository stores each account twice: under "user:{email}" for
// credential lookups and under "profile:{id}" for display-name
// resolution during delivery. Both entries are written in one
// transaction.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists the account and returns the newly generated id.
func (u UserRepository) CreateUser(email, displayName, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	record := &pb.User{
		Id:           newID,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().Unix(),
	}

	data, err := proto.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte("user:" + email)
		if _, err = txn.Get(emailKey); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err = txn.Set(emailKey, data); err != nil {
			return err
		}
		return txn.Set([]byte("profile:"+newID), data)
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	return u.get("user:" + email)
}

// GetProfile resolves an account by id, used by the delivery path to
// embed display names into outbound events.
func (u UserRepository) GetProfile(userID string) (User, error) {
	return u.get("profile:" + userID)
}

func (u UserRepository) get(key string) (User, error) {
	var record pb.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return User{}, err
	}
	return toUserStruct(&record), nil
}

func toUserStruct(record *pb.User) User {
	return User{
		ID:           record.Id,
		Email:        record.Email,
		DisplayName:  record.DisplayName,
		PasswordHash: record.PasswordHash,
		Roles:        record.Roles,
		CreatedAt:    time.Unix(record.CreatedAt, 0).UTC(),
	}
}
