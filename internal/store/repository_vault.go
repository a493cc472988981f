package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It stores the per-user KDF salt ("vault_kdf" table) and
// the published box-keypair profiles ("profiles" table). Both are opaque
// blobs from the server's point of view.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// GetVaultSalt returns the stored base64 KDF salt for userID, or
// [ErrSaltNotFound] when no salt has been published yet.
func (r *vaultRepository) GetVaultSalt(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	var salt string
	err := r.db.QueryRowContext(ctx, getVaultSalt, userID).Scan(&salt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSaltNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.GetVaultSalt").
			Str("user_id", userID).
			Msg("failed to query vault salt")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt, nil
}

// PutVaultSalt stores salt for userID, replacing any existing one, and
// returns the stored value. Overwrite semantics are required by legacy-salt
// promotion: a client that proves its old salt still decrypts the vault
// writes it back as canonical.
func (r *vaultRepository) PutVaultSalt(ctx context.Context, userID, salt string) (string, error) {
	log := logger.FromContext(ctx)

	var stored string
	if err := r.db.QueryRowContext(ctx, putVaultSalt, userID, salt).Scan(&stored); err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.PutVaultSalt").
			Str("user_id", userID).
			Msg("failed to store vault salt")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// GetProfile returns the published keypair profile for userID, or
// [ErrProfileNotFound].
func (r *vaultRepository) GetProfile(ctx context.Context, userID string) (models.ProfileRow, error) {
	return r.scanProfile(ctx, getProfile, userID)
}

// FindProfileByEmail resolves a share recipient by email, or
// [ErrProfileNotFound].
func (r *vaultRepository) FindProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error) {
	return r.scanProfile(ctx, findProfileByEmail, email)
}

func (r *vaultRepository) scanProfile(ctx context.Context, query, arg string) (models.ProfileRow, error) {
	log := logger.FromContext(ctx)

	var profile models.ProfileRow
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.DisplayName,
		&profile.BoxPublicKey,
		&profile.EncBoxSecretKey,
		&profile.EncBoxSecretKeyIV,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProfileRow{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.scanProfile").
			Msg("failed to scan profile row")
		return models.ProfileRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// UpsertProfile publishes or replaces the caller's box-keypair profile.
func (r *vaultRepository) UpsertProfile(ctx context.Context, profile models.ProfileRow) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertProfile,
		profile.UserID,
		profile.Email,
		profile.DisplayName,
		profile.BoxPublicKey,
		profile.EncBoxSecretKey,
		profile.EncBoxSecretKeyIV,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.UpsertProfile").
			Str("user_id", profile.UserID).
			Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
