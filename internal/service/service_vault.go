package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type vaultService struct {
	vaultRepository store.VaultRepository
	logger          *logger.Logger
}

// NewVaultService serves KDF salts and box-keypair profiles. Both are
// opaque blobs to the server; validation stops at shape.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{vaultRepository: vaultRepository, logger: logger}
}

// GetSalt implements VaultService.
func (v *vaultService) GetSalt(ctx context.Context, userID string) (string, error) {
	salt, err := v.vaultRepository.GetVaultSalt(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get vault salt: %w", err)
	}
	return salt, nil
}

// PutSalt implements VaultService. The salt must be valid non-empty base64;
// its decoded length is the client's business.
func (v *vaultService) PutSalt(ctx context.Context, userID, salt string) (string, error) {
	if salt == "" {
		return "", ErrInvalidDataProvided
	}
	if _, err := base64.StdEncoding.DecodeString(salt); err != nil {
		return "", fmt.Errorf("%w: salt is not valid base64", ErrInvalidDataProvided)
	}

	stored, err := v.vaultRepository.PutVaultSalt(ctx, userID, salt)
	if err != nil {
		return "", fmt.Errorf("put vault salt: %w", err)
	}
	return stored, nil
}

// GetProfile implements VaultService.
func (v *vaultService) GetProfile(ctx context.Context, userID string) (models.ProfileRow, error) {
	profile, err := v.vaultRepository.GetProfile(ctx, userID)
	if err != nil {
		return models.ProfileRow{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile implements VaultService. The profile is always stored under
// the caller's id regardless of what the body claims.
func (v *vaultService) UpsertProfile(ctx context.Context, userID string, profile models.ProfileRow) error {
	log := logger.FromContext(ctx)

	if profile.BoxPublicKey == "" || profile.EncBoxSecretKey == "" || profile.EncBoxSecretKeyIV == "" {
		log.Error().Str("func", "UpsertProfile").Str("user_id", userID).Msg("incomplete profile submitted")
		return ErrInvalidDataProvided
	}

	profile.UserID = userID
	if err := v.vaultRepository.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// LookupProfileByEmail implements VaultService.
func (v *vaultService) LookupProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error) {
	if email == "" {
		return models.ProfileRow{}, ErrInvalidDataProvided
	}

	profile, err := v.vaultRepository.FindProfileByEmail(ctx, email)
	if err != nil {
		return models.ProfileRow{}, fmt.Errorf("lookup profile by email: %w", err)
	}
	return profile, nil
}
