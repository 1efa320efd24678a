package services

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"whisper-hub/auth"
	"whisper-hub/errors"
	"whisper-hub/repositories"
)

func newAccountService(t *testing.T) (IAccountService, *auth.TokenManager) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAccountService(repositories.NewUserRepository(db), tokens), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	req := require.New(t)
	service, tokens := newAccountService(t)

	token, userID, err := service.Register("alice@example.com", "Alice", "ComplexPass123!")
	req.NoError(err)
	req.NotEmpty(token)
	req.NotEmpty(userID)

	claims, err := tokens.Validate(string(token))
	req.NoError(err)
	req.Equal(userID, claims.UserID)

	token, loginID, err := service.Login("alice@example.com", "ComplexPass123!")
	req.NoError(err)
	req.NotEmpty(token)
	req.Equal(userID, loginID)
}

func TestRegisterWeakPassword(t *testing.T) {
	req := require.New(t)
	service, _ := newAccountService(t)

	_, _, err := service.Register("alice@example.com", "Alice", "weak")
	req.ErrorIs(err, errors.ErrInvalidPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	req := require.New(t)
	service, _ := newAccountService(t)

	_, _, err := service.Register("alice@example.com", "Alice", "ComplexPass123!")
	req.NoError(err)

	_, _, err = service.Register("alice@example.com", "Impostor", "OtherComplex123!")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	req := require.New(t)
	service, _ := newAccountService(t)

	_, _, err := service.Register("alice@example.com", "Alice", "ComplexPass123!")
	req.NoError(err)

	// Unknown account and wrong password yield the same error.
	_, _, err = service.Login("ghost@example.com", "ComplexPass123!")
	req.ErrorIs(err, errors.ErrInvalidCredentials)

	_, _, err = service.Login("alice@example.com", "WrongPass123!")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}
