package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashKey(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name:        "Valid Key",
			key:         "cron-secret",
			expectError: false,
		},
		{
			name:        "Empty Key",
			key:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedKey, err := hashService.HashKey(tt.key)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedKey)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedKey)
			}
		})
	}
}

func TestCompareKey(t *testing.T) {
	hashService := &HashService{}
	hashed, err := hashService.HashKey("cron-secret")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		hashedKey   string
		key         string
		expectMatch bool
	}{
		{name: "Matching Key", hashedKey: hashed, key: "cron-secret", expectMatch: true},
		{name: "Non-Matching Key", hashedKey: hashed, key: "guess", expectMatch: false},
		{name: "Empty Key", hashedKey: hashed, key: "", expectMatch: false},
		{name: "No Hash Configured", hashedKey: "", key: "cron-secret", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.CompareKey(tt.hashedKey, tt.key))
		})
	}
}
