package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/mvolkhin/notelock/models"
)

const (
	saltLength = 16
	keyLength  = 32 // 256 bits
	nonceSize  = 12 // 96-bit GCM nonce

	// kdfIterations is fixed for all devices; changing it would break the
	// cross-device derivation anchor for existing vaults.
	kdfIterations = 210_000
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the production [KeyChain]: PBKDF2-SHA256 with
// 210,000 iterations for derivation, AES-256-GCM for symmetric envelopes,
// and NaCl anonymous sealed boxes for asymmetric wrapping.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateSalt implements [KeyChain].
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateKey implements [KeyChain].
func (k *keyChain) GenerateKey() ([]byte, error) {
	key := make([]byte, keyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveVaultKey implements [KeyChain]. The result exists only in client
// memory and is never transmitted or persisted in any form.
func (k *keyChain) DeriveVaultKey(masterPassword string, salt []byte) ([]byte, error) {
	if len(salt) < saltLength {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrInvalidSaltLength, len(salt), saltLength)
	}
	return pbkdf2.Key([]byte(masterPassword), salt, kdfIterations, keyLength, sha256.New), nil
}

// EncryptJSON implements [KeyChain].
func (k *keyChain) EncryptJSON(v any, key []byte) (models.Envelope, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}
	return seal(plaintext, key)
}

// DecryptJSON implements [KeyChain].
func (k *keyChain) DecryptJSON(env models.Envelope, key []byte, target any) error {
	plaintext, err := open(env, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	return nil
}

// EncryptBytes implements [KeyChain].
func (k *keyChain) EncryptBytes(b, key []byte) (models.Envelope, error) {
	return seal(b, key)
}

// DecryptBytes implements [KeyChain].
func (k *keyChain) DecryptBytes(env models.Envelope, key []byte) ([]byte, error) {
	return open(env, key)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeyLength, len(key), keyLength)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func seal(plaintext, key []byte) (models.Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.Envelope{}, err
	}

	// Nonces must never repeat for the same key, so every call draws a
	// fresh one from the OS CSPRNG.
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, plaintext, nil)
	return models.Envelope{
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

func open(env models.Envelope, key []byte) ([]byte, error) {
	nonce, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %w", models.ErrMalformedEnvelope, err)
	}
	ct, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %w", models.ErrMalformedEnvelope, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", models.ErrMalformedEnvelope, len(nonce), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
