package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// Формат: $argon2id$v=19$m=...,t=...,p=...$salt$hash
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	// Один и тот же пароль должен давать разные хеши из-за случайной соли
	first, err := HashPassword("password123")
	require.NoError(t, err)

	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("password123")
	require.NoError(t, err)

	// Правильный пароль
	assert.NoError(t, VerifyPassword("password123", encoded))

	// Неправильный пароль
	err = VerifyPassword("wrongpassword", encoded)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyPassword_InvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "Empty", encoded: ""},
		{name: "Garbage", encoded: "not-a-hash"},
		{name: "Wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "Missing parts", encoded: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "Bad base64 salt", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("password123", tt.encoded)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	other, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}
