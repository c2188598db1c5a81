// Package crypto implements field-level encryption for stored integration
// tokens using AES-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"

	"budie/config"
	"budie/internal/domain/service"
)

// aesCipher seals values with AES-256-GCM. The random nonce is prepended to
// the ciphertext and the whole blob is base64-encoded for storage in a text
// column.
type aesCipher struct {
	key []byte
}

// NewAESCipher builds a FieldCipher from the hex-encoded key in config.
func NewAESCipher(cfg *config.Config) (service.FieldCipher, error) {
	if cfg.Encryption == nil || cfg.Encryption.Key == "" {
		return nil, errors.New("encryption key must be provided")
	}

	key, err := hex.DecodeString(cfg.Encryption.Key)
	if err != nil {
		return nil, errors.Wrap(err, "encryption key is not valid hex")
	}
	if len(key) != 32 {
		return nil, errors.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}

	return &aesCipher{key: key}, nil
}

// Encrypt seals a plaintext value into an opaque, storable string.
func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	aesgcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := aesgcm.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "ciphertext is not valid base64")
	}

	aesgcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	if len(blob) < aesgcm.NonceSize() {
		return "", errors.New("ciphertext shorter than nonce")
	}

	nonce, sealed := blob[:aesgcm.NonceSize()], blob[aesgcm.NonceSize():]
	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt value")
	}

	return string(plaintext), nil
}

func (c *aesCipher) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	return aesgcm, nil
}
