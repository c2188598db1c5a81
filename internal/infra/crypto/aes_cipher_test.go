package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budie/config"
	"budie/internal/domain/service"
)

func newTestCipher(t *testing.T) service.FieldCipher {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	c, err := NewAESCipher(&config.Config{
		Encryption: &config.EncryptionConfig{Key: hex.EncodeToString(key)},
	})
	require.NoError(t, err)

	return c
}

func TestAESCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.Encrypt("ya29.a0AfH6SMB-oauth-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, "ya29.a0AfH6SMB-oauth-access-token", sealed)

	opened, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a0AfH6SMB-oauth-access-token", opened)
}

func TestAESCipher_NonDeterministic(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("token")
	require.NoError(t, err)
	second, err := c.Encrypt("token")
	require.NoError(t, err)

	// A fresh nonce per call means identical plaintexts never share ciphertext.
	assert.NotEqual(t, first, second)
}

func TestAESCipher_TamperDetection(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)

	tampered := []byte(sealed)
	tampered[len(tampered)-5] ^= 0x01

	_, err = c.Decrypt(string(tampered))
	assert.Error(t, err)
}

func TestAESCipher_RejectsGarbage(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Decrypt("not base64 at all!!!")
	assert.Error(t, err)

	_, err = c.Decrypt("c2hvcnQ=")
	assert.Error(t, err)
}

func TestNewAESCipher_KeyValidation(t *testing.T) {
	_, err := NewAESCipher(&config.Config{})
	assert.Error(t, err)

	_, err = NewAESCipher(&config.Config{Encryption: &config.EncryptionConfig{Key: "zz"}})
	assert.Error(t, err)

	_, err = NewAESCipher(&config.Config{Encryption: &config.EncryptionConfig{Key: "abcd"}})
	assert.Error(t, err)
}
