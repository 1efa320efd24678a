package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MySuperS3cure-Passw0rd!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "Alice", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "Alice", "ComplexPass123!"}, true},
		{"Missing display name", RegisterRequest{"test@example.com", "", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Alice", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "Alice", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "Alice", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "Alice", "nouppercase123!"}, true},
		{"Password too long (edge case)", RegisterRequest{"test@example.com", "Alice", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("test-secret-key", time.Hour)

	token, err := tokens.Generate("user-123", []string{"user"})
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := tokens.Validate(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)

	// Another manager with a different secret must reject it.
	other := NewTokenManager("another-secret", time.Hour)
	_, err = other.Validate(token)
	req.Error(err)
}

func TestTokenExpiry(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("test-secret-key", -time.Minute)

	token, err := tokens.Generate("user-123", []string{"user"})
	req.NoError(err)

	_, err = tokens.Validate(token)
	req.Error(err)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
