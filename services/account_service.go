//go:generate go run go.uber.org/mock/mockgen -source=account_service.go -destination=../mocks/mock_account_service.go -package=mocks
package services

import (
	"fmt"

	"whisper-hub/auth"
	"whisper-hub/errors"
	"whisper-hub/repositories"
)

// IAccountService is the identity collaborator: it issues and verifies
// credentials so the hub can trust the identity resolved from a token.
type IAccountService interface {
	Register(email, displayName, password string) (Token, string, error)
	Login(email, password string) (Token, string, error)
}

type Token string

type AccountService struct {
	userRepository repositories.IUserRepository
	tokens         *auth.TokenManager
}

func NewAccountService(repo repositories.IUserRepository, tokens *auth.TokenManager) IAccountService {
	return &AccountService{userRepository: repo, tokens: tokens}
}

// Register validates the request, hashes the password and persists the
// account, then issues the first session token. Returns token and the
// new user id.
func (s *AccountService) Register(email, displayName, password string) (Token, string, error) {
	valReq := auth.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
	}

	// Business rules first, before any expensive crypto.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(email, displayName, hashedPassword)
	if err != nil {
		return "", "", err // Propagates ErrUserAlreadyExists if the email is taken.
	}

	token, err := s.tokens.Generate(userID, []string{"user"})
	if err != nil {
		return "", "", errors.ErrTokenGeneration
	}
	return Token(token), userID, nil
}

// Login verifies credentials and issues a session token. Failures are
// collapsed into one generic error to prevent user enumeration.
func (s *AccountService) Login(email, password string) (Token, string, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return "", "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Roles)
	if err != nil {
		return "", "", errors.ErrTokenGeneration
	}
	return Token(token), user.ID, nil
}
