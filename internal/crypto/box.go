package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// GenerateBoxKeypair implements [KeyChain].
func (k *keyChain) GenerateBoxKeypair() ([]byte, []byte, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate box keypair: %w", err)
	}
	return pub[:], priv[:], nil
}

// SealTo implements [KeyChain]. The sealed blob embeds an ephemeral public
// key, so no separate nonce travels alongside it and the sender stays
// anonymous — only the recipient's private key can open it.
func (k *keyChain) SealTo(publicKey, message []byte) ([]byte, error) {
	pub, err := toBoxKey(publicKey)
	if err != nil {
		return nil, err
	}
	sealed, err := box.SealAnonymous(nil, message, pub, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("seal to public key: %w", err)
	}
	return sealed, nil
}

// OpenSealed implements [KeyChain].
func (k *keyChain) OpenSealed(sealed, publicKey, privateKey []byte) ([]byte, error) {
	pub, err := toBoxKey(publicKey)
	if err != nil {
		return nil, err
	}
	priv, err := toBoxKey(privateKey)
	if err != nil {
		return nil, err
	}

	msg, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, fmt.Errorf("%w: sealed box was not addressed to this keypair", ErrDecryptionFailed)
	}
	return msg, nil
}

func toBoxKey(b []byte) (*[32]byte, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: box key is %d bytes, want 32", ErrInvalidKeyLength, len(b))
	}
	var key [32]byte
	copy(key[:], b)
	return &key, nil
}
