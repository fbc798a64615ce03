package utils

import (
    "crypto/aes"
    "crypto/cipher"
    "crypto/rand"
    "encoding/hex"
    "fmt"
    "strings"
)

const (
    gcmIVLength  = 12
    gcmTagLength = 16
)

// FieldCipher encrypts individual document fields with AES-256-GCM before
// they reach the database. The wire format is iv:tag:ciphertext, hex
// encoded, matching the existing stored records.
type FieldCipher struct {
    key []byte
}

// NewFieldCipher derives a 32-byte key from the configured secret by
// right-padding with spaces and truncating.
func NewFieldCipher(secret string) *FieldCipher {
    padded := secret
    for len(padded) < 32 {
        padded += " "
    }
    return &FieldCipher{key: []byte(padded[:32])}
}

// Encrypt returns the iv:tag:ciphertext encoding of text. Empty input
// passes through unchanged.
func (fc *FieldCipher) Encrypt(text string) (string, error) {
    if text == "" {
        return text, nil
    }

    block, err := aes.NewCipher(fc.key)
    if err != nil {
        return "", err
    }
    gcm, err := cipher.NewGCMWithNonceSize(block, gcmIVLength)
    if err != nil {
        return "", err
    }

    iv := make([]byte, gcmIVLength)
    if _, err := rand.Read(iv); err != nil {
        return "", err
    }

    sealed := gcm.Seal(nil, iv, []byte(text), nil)
    ciphertext := sealed[:len(sealed)-gcmTagLength]
    tag := sealed[len(sealed)-gcmTagLength:]

    return fmt.Sprintf("%s:%s:%s",
        hex.EncodeToString(iv),
        hex.EncodeToString(tag),
        hex.EncodeToString(ciphertext),
    ), nil
}

// Decrypt reverses Encrypt. Values without the iv:tag:ciphertext shape
// are treated as legacy plaintext and returned as-is.
func (fc *FieldCipher) Decrypt(encrypted string) (string, error) {
    if encrypted == "" || !strings.Contains(encrypted, ":") {
        return encrypted, nil
    }

    parts := strings.SplitN(encrypted, ":", 3)
    if len(parts) != 3 {
        return encrypted, nil
    }

    iv, err := hex.DecodeString(parts[0])
    if err != nil {
        return encrypted, nil
    }
    tag, err := hex.DecodeString(parts[1])
    if err != nil {
        return encrypted, nil
    }
    ciphertext, err := hex.DecodeString(parts[2])
    if err != nil {
        return encrypted, nil
    }
    if len(iv) != gcmIVLength || len(tag) != gcmTagLength {
        return encrypted, nil
    }

    block, err := aes.NewCipher(fc.key)
    if err != nil {
        return "", err
    }
    gcm, err := cipher.NewGCMWithNonceSize(block, gcmIVLength)
    if err != nil {
        return "", err
    }

    plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
    if err != nil {
        return "", fmt.Errorf("failed to decrypt field: %w", err)
    }

    return string(plaintext), nil
}
