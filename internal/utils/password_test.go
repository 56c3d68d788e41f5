// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("123456")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=4$"), encoded)
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(encoded, "correct horse battery staple"))
	assert.False(t, VerifyPassword(encoded, "Correct horse battery staple"))
	assert.False(t, VerifyPassword(encoded, ""))
}

func TestVerifyPassword_PaddedSegments(t *testing.T) {
	encoded, err := HashPassword("pw")
	require.NoError(t, err)

	parts := strings.Split(encoded, "$")
	parts[4] += "=="
	assert.True(t, VerifyPassword(strings.Join(parts, "$"), "pw"))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plain text", "123456"},
		{"bcrypt", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"},
		{"argon2i variant", "$argon2i$v=19$m=65536,t=3,p=4$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"wrong version", "$argon2id$v=16$m=65536,t=3,p=4$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"bad params", "$argon2id$v=19$m=x,t=3,p=4$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"zero memory", "$argon2id$v=19$m=0,t=3,p=4$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"bad salt", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaGhhc2g"},
		{"empty key", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdHNhbHQ$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword(tt.hash, "123456"))

			_, err := decodeArgonHash(tt.hash)
			assert.ErrorIs(t, err, ErrMalformedPasswordHash)
		})
	}
}
