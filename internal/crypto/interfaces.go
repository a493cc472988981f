package crypto

import "github.com/mvolkhin/notelock/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is the single home of all client-side cryptography. It knows
// nothing about the network, the database, or users; its only job is to
// derive, generate, wrap, and unwrap keys and payloads.
//
// Key hierarchy:
//
//	vaultKey = DeriveVaultKey(masterPassword, salt)   held in memory only
//	noteKey  = GenerateKey()                          wrapped under vaultKey
//	groupKey = GenerateKey()                          sealed to member boxes
type KeyChain interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG. The salt is
	// not a secret — it is stored on the server in the clear so every
	// device derives the same vault key.
	GenerateSalt() ([]byte, error)

	// GenerateKey returns a random 256-bit symmetric key, used for both
	// per-note keys and group keys.
	GenerateKey() ([]byte, error)

	// DeriveVaultKey derives the 256-bit vault key from the master password
	// and salt. Deterministic: identical inputs always yield the same key,
	// which is the cross-device consistency anchor. Returns
	// [ErrInvalidSaltLength] if salt is shorter than 16 bytes.
	DeriveVaultKey(masterPassword string, salt []byte) ([]byte, error)

	// EncryptJSON marshals v to JSON and encrypts it under key with
	// AES-256-GCM and a fresh random 96-bit nonce.
	EncryptJSON(v any, key []byte) (models.Envelope, error)

	// DecryptJSON decrypts an envelope under key and unmarshals the
	// plaintext into target (a non-nil pointer). Returns
	// [ErrDecryptionFailed] (wrapped) on authentication failure.
	DecryptJSON(env models.Envelope, key []byte, target any) error

	// EncryptBytes encrypts raw bytes under key. Used for wrapping key
	// material, where JSON framing would be wasteful.
	EncryptBytes(b, key []byte) (models.Envelope, error)

	// DecryptBytes decrypts an envelope under key and returns the raw
	// plaintext bytes.
	DecryptBytes(env models.Envelope, key []byte) ([]byte, error)

	// GenerateBoxKeypair creates a fresh X25519 keypair for sealed-box
	// operations. The private half must only ever be persisted encrypted
	// under the vault key.
	GenerateBoxKeypair() (publicKey, privateKey []byte, err error)

	// SealTo encrypts message to the holder of publicKey as an anonymous
	// sealed box. The output is a single blob with no separate nonce.
	SealTo(publicKey, message []byte) ([]byte, error)

	// OpenSealed opens a sealed box using the recipient keypair. Returns
	// [ErrDecryptionFailed] (wrapped) when the box was sealed to a
	// different key.
	OpenSealed(sealed, publicKey, privateKey []byte) ([]byte, error)
}
