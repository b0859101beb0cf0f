package utils

import (
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID(t *testing.T) {
	pattern := regexp.MustCompile(`^SD-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateTrackingID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "tracking ids must not repeat: %s", id)
		seen[id] = true
	}
}

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-[0-9A-F]{16}$`)

	assert.Regexp(t, pattern, GenerateTransactionID())
	assert.NotEqual(t, GenerateTransactionID(), GenerateTransactionID())
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{7, 0, 1},
		{7, -3, 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(key))

	plaintext := "cs_test_a1b2c3d4e5"

	encrypted, err := EncryptData(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := DecryptData(encrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)

	// Nonce is random, so the same plaintext never encrypts identically.
	again, err := EncryptData(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, again)
}

func TestDecryptRejectsTamperedData(t *testing.T) {
	key := make([]byte, 32)
	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(key))

	encrypted, err := EncryptData("session-id")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF

	_, err = DecryptData(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)
}
