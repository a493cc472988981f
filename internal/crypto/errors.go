package crypto

import "errors"

// Sentinel errors returned by the key chain. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrDecryptionFailed is returned when an AEAD open or sealed-box open
	// fails authentication. It almost always means the wrong key was used.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidSaltLength is returned by key derivation when the salt is
	// shorter than 16 bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrInvalidKeyLength is returned when a symmetric key is not exactly
	// 32 bytes or a box key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
)
