package encryption

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	svc, err := NewService(testKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("shpat_abc123")
	require.NoError(t, err)
	assert.NotEqual(t, "shpat_abc123", ciphertext)

	plaintext, err := svc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "shpat_abc123", plaintext)
}

func TestEncryptUsesFreshNonces(t *testing.T) {
	svc, err := NewService(testKey)
	require.NoError(t, err)

	first, err := svc.Encrypt("same input")
	require.NoError(t, err)
	second, err := svc.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	svc, err := NewService(testKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("shpat_abc123")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = svc.Decrypt(tampered)
	assert.ErrorContains(t, err, "failed to decrypt")
}

func TestNewServiceRejectsBadKeys(t *testing.T) {
	_, err := NewService("not-hex")
	assert.Error(t, err)

	_, err = NewService(strings.Repeat("ab", 16))
	assert.ErrorContains(t, err, "32 bytes")
}
