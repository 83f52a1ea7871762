package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
			}
		})
	}
}

func TestHashService_Cost(t *testing.T) {
	hash, err := NewHashService(bcrypt.MinCost).HashPassword("securepassword")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(99).cost)
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashedPassword, err := hashService.HashPassword("securepassword")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hashed      string
		expectMatch bool
	}{
		{name: "Matching Password", password: "securepassword", hashed: hashedPassword, expectMatch: true},
		{name: "Non-Matching Password", password: "wrongpassword", hashed: hashedPassword, expectMatch: false},
		{name: "Garbage hash", password: "securepassword", hashed: "not-a-hash", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashed, tt.password))
		})
	}
}
