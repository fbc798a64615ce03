package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCipherRoundTrip(t *testing.T) {
	cipher := NewFieldCipher("very_secret_key_32_chars_long_!!")

	tests := []string{
		"I feel sad today",
		"मुझे बहुत तनाव है",
		"short",
		strings.Repeat("long message ", 100),
	}

	for _, plaintext := range tests {
		encrypted, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, encrypted)

		// iv:tag:ciphertext
		parts := strings.SplitN(encrypted, ":", 3)
		require.Len(t, parts, 3)
		assert.Len(t, parts[0], gcmIVLength*2)
		assert.Len(t, parts[1], gcmTagLength*2)

		decrypted, err := cipher.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestFieldCipherEmptyPassesThrough(t *testing.T) {
	cipher := NewFieldCipher("very_secret_key_32_chars_long_!!")

	encrypted, err := cipher.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", encrypted)

	decrypted, err := cipher.Decrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestFieldCipherLegacyPlaintextPassesThrough(t *testing.T) {
	cipher := NewFieldCipher("very_secret_key_32_chars_long_!!")

	decrypted, err := cipher.Decrypt("plain old trigger topic")
	require.NoError(t, err)
	assert.Equal(t, "plain old trigger topic", decrypted)
}

func TestFieldCipherShortKeyIsPadded(t *testing.T) {
	cipher := NewFieldCipher("short-key")

	encrypted, err := cipher.Encrypt("hello")
	require.NoError(t, err)

	decrypted, err := cipher.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "hello", decrypted)
}

func TestFieldCipherTamperedCiphertextFails(t *testing.T) {
	cipher := NewFieldCipher("very_secret_key_32_chars_long_!!")

	encrypted, err := cipher.Encrypt("sensitive message")
	require.NoError(t, err)

	parts := strings.SplitN(encrypted, ":", 3)
	flipped := "00" + parts[2][2:]
	tampered := parts[0] + ":" + parts[1] + ":" + flipped
	if tampered == encrypted {
		tampered = parts[0] + ":" + parts[1] + ":" + "ff" + parts[2][2:]
	}

	_, err = cipher.Decrypt(tampered)
	assert.Error(t, err)
}

func TestFieldCipherDistinctIVs(t *testing.T) {
	cipher := NewFieldCipher("very_secret_key_32_chars_long_!!")

	first, err := cipher.Encrypt("same message")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same message")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
