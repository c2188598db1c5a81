package service

// FieldCipher encrypts individual sensitive fields (integration tokens)
// before they are handed to the persistence layer. The transformation is
// invoked explicitly on the write path, never implicitly by the ORM.
type FieldCipher interface {
	// Encrypt seals a plaintext value into an opaque, storable string.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a value produced by Encrypt.
	Decrypt(ciphertext string) (string, error)
}
