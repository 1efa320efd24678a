package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"whisper-hub/errors"
)

func TestCreateUserAndLookup(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.CreateUser("alice@example.com", "Alice", "hashed-secret")
	req.NoError(err)
	req.NotEmpty(id)

	byEmail, err := repo.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal(id, byEmail.ID)
	req.Equal("Alice", byEmail.DisplayName)
	req.Equal("hashed-secret", byEmail.PasswordHash)
	req.Equal([]string{"user"}, byEmail.Roles)

	profile, err := repo.GetProfile(id)
	req.NoError(err)
	req.Equal(byEmail.Email, profile.Email)
	req.Equal(byEmail.DisplayName, profile.DisplayName)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.CreateUser("alice@example.com", "Alice", "hash-one")
	req.NoError(err)

	_, err = repo.CreateUser("alice@example.com", "Impostor", "hash-two")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestGetUnknownUser(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetUserByEmail("ghost@example.com")
	req.Error(err)

	_, err = repo.GetProfile("no-such-id")
	req.Error(err)
}
