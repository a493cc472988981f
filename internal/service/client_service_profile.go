package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

type profileService struct {
	adapter adapter.RemoteStore
	keys    crypto.KeyChain
	vault   ClientVaultService
	logger  *logger.Logger
}

// NewClientProfileService manages the user's published box keypair. The
// public half is world-readable; the private half is stored AEAD-encrypted
// under the vault key and decrypted only in memory.
func NewClientProfileService(remote adapter.RemoteStore, keys crypto.KeyChain, vault ClientVaultService, log *logger.Logger) ClientProfileService {
	return &profileService{adapter: remote, keys: keys, vault: vault, logger: log}
}

// EnsureProfileKeys implements ClientProfileService.
func (p *profileService) EnsureProfileKeys(ctx context.Context) error {
	vaultKey, err := p.vault.Key()
	if err != nil {
		return err
	}

	profile, err := p.adapter.GetProfile(ctx)
	if err == nil && profile.BoxPublicKey != "" && profile.EncBoxSecretKey != "" {
		return nil
	}
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("fetch profile: %w", err)
	}

	pub, priv, err := p.keys.GenerateBoxKeypair()
	if err != nil {
		return fmt.Errorf("generate box keypair: %w", err)
	}
	encPriv, err := p.keys.EncryptBytes(priv, vaultKey)
	if err != nil {
		return fmt.Errorf("encrypt box private key: %w", err)
	}

	profile.UserID = p.adapter.UserID()
	profile.BoxPublicKey = base64.StdEncoding.EncodeToString(pub)
	profile.EncBoxSecretKey = encPriv.Ciphertext
	profile.EncBoxSecretKeyIV = encPriv.IV

	if err := p.adapter.PutProfile(ctx, profile); err != nil {
		return fmt.Errorf("publish profile keys: %w", err)
	}

	p.logger.Info().Str("func", "EnsureProfileKeys").Msg("box keypair published")
	return nil
}

// LoadBoxKeypair implements ClientProfileService.
func (p *profileService) LoadBoxKeypair(ctx context.Context) ([]byte, []byte, error) {
	vaultKey, err := p.vault.Key()
	if err != nil {
		return nil, nil, err
	}

	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fetch profile: %w", ErrKeyUnavailable, err)
	}

	pub, err := base64.StdEncoding.DecodeString(profile.BoxPublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode box public key: %w", ErrKeyUnavailable, err)
	}

	env := models.Envelope{IV: profile.EncBoxSecretKeyIV, Ciphertext: profile.EncBoxSecretKey}
	priv, err := p.keys.DecryptBytes(env, vaultKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decrypt box private key: %w", ErrKeyUnavailable, err)
	}

	return pub, priv, nil
}
