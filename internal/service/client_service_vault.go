package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

// Meta keys in the local store. Current keys are namespaced per user
// ("<key>:<userID>"); the un-namespaced variants predate multi-account
// support and survive only as a migration source.
const (
	metaVaultSalt  = "vault_salt_v1"
	metaVaultCheck = "vault_check_v1"

	legacyMetaVaultSalt  = "vault_salt"
	legacyMetaVaultCheck = "vault_check"

	// probeLimit bounds the remote-validity probe to the most recently
	// updated notes. If the user has zero notes the probe is vacuously
	// positive, a known weak point carried over deliberately.
	probeLimit = 5
)

func metaKeyFor(key, userID string) string {
	return key + ":" + userID
}

// checkSentinel is the known plaintext of the vault check blob. Decrypting
// it verifies a candidate key without contacting the network.
type checkSentinel struct {
	OK bool `json:"ok"`
}

type vaultSession struct {
	localStore store.LocalStore
	adapter    adapter.RemoteStore
	keys       crypto.KeyChain
	logger     *logger.Logger

	mu  sync.RWMutex
	key []byte
}

// NewClientVaultService creates the session that owns the in-memory vault
// key. The key never leaves this struct in persisted form.
func NewClientVaultService(localStore store.LocalStore, remote adapter.RemoteStore, keys crypto.KeyChain, log *logger.Logger) ClientVaultService {
	return &vaultSession{localStore: localStore, adapter: remote, keys: keys, logger: log}
}

// Unlock implements ClientVaultService. The verification order is: local
// check blob, then a probe against recently updated remote notes (the check
// blob can be stale relative to a salt rotated elsewhere), then a retry of
// the whole derivation with the legacy un-namespaced salt.
func (v *vaultSession) Unlock(ctx context.Context, masterPassword string) error {
	userID := v.adapter.UserID()
	if userID == "" {
		return ErrNotAuthenticated
	}
	log := logger.FromContext(ctx)

	salt, legacySalt, err := v.resolveSalt(ctx, userID)
	if err != nil {
		return err
	}

	candidate, err := v.keys.DeriveVaultKey(masterPassword, salt)
	if err != nil {
		return fmt.Errorf("derive vault key: %w", err)
	}

	checkEnv, checkIsLegacy := v.loadCheckBlob(ctx, userID)

	if checkEnv != nil {
		if v.checkOpens(*checkEnv, candidate) {
			valid, conclusive := v.probeRemoteValidity(ctx, candidate)
			if !conclusive || valid {
				// Offline probes trust the local check blob.
				v.adopt(ctx, userID, candidate, checkIsLegacy)
				return nil
			}

			log.Warn().Str("func", "Unlock").Msg("check blob opened but remote notes do not decrypt, trying legacy salt")
			if key, ok := v.legacySaltFallback(ctx, userID, masterPassword, salt, legacySalt, checkEnv); ok {
				v.adopt(ctx, userID, key, true)
				return nil
			}
			return ErrIncorrectPassword
		}

		if key, ok := v.legacySaltFallback(ctx, userID, masterPassword, salt, legacySalt, checkEnv); ok {
			v.adopt(ctx, userID, key, true)
			return nil
		}
		return ErrIncorrectPassword
	}

	// No check blob on this device. If remote notes exist and none decrypt
	// under the candidate key the password is wrong; otherwise this is
	// genuine first-time setup.
	valid, conclusive := v.probeRemoteValidity(ctx, candidate)
	if conclusive && !valid {
		if key, ok := v.legacySaltFallback(ctx, userID, masterPassword, salt, legacySalt, nil); ok {
			v.adopt(ctx, userID, key, true)
			return nil
		}
		return ErrIncorrectPassword
	}

	v.adopt(ctx, userID, candidate, true)
	return nil
}

// Lock implements ClientVaultService.
func (v *vaultSession) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.key {
		v.key[i] = 0
	}
	v.key = nil
}

// IsUnlocked implements ClientVaultService.
func (v *vaultSession) IsUnlocked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.key != nil
}

// Key implements ClientVaultService. It hands out a copy: Lock zeroes only
// the session's own buffer, so an operation that fetched the key keeps a
// usable one until it finishes instead of silently encrypting under zeros.
func (v *vaultSession) Key() ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.key == nil {
		return nil, ErrVaultLocked
	}

	key := make([]byte, len(v.key))
	copy(key, v.key)
	return key, nil
}

// resolveSalt returns the salt to derive with, preferring the remote
// per-user salt over the local per-user cache over the legacy un-namespaced
// salt, creating and publishing a fresh one when none exists. The legacy
// salt is returned separately so Unlock can fall back to it.
func (v *vaultSession) resolveSalt(ctx context.Context, userID string) (salt, legacySalt []byte, err error) {
	legacySalt = v.localSalt(ctx, legacyMetaVaultSalt)

	encoded, rerr := v.adapter.GetVaultSalt(ctx)
	switch {
	case rerr == nil:
		salt, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, nil, fmt.Errorf("decode remote salt: %w", err)
		}
		v.cacheSalt(ctx, userID, salt)
		return salt, legacySalt, nil
	case errors.Is(rerr, adapter.ErrNotFound),
		errors.Is(rerr, adapter.ErrNetworkUnavailable),
		errors.Is(rerr, adapter.ErrInternalServerError),
		errors.Is(rerr, adapter.ErrBadGateway):
		// A missing, unreachable, or failing server degrades to local
		// resolution; the check blob still verifies the password.
	default:
		return nil, nil, fmt.Errorf("fetch remote salt: %w", rerr)
	}

	if salt = v.localSalt(ctx, metaKeyFor(metaVaultSalt, userID)); salt != nil {
		return salt, legacySalt, nil
	}
	if legacySalt != nil {
		return legacySalt, legacySalt, nil
	}

	salt, err = v.keys.GenerateSalt()
	if err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	if canonical, perr := v.adapter.PutVaultSalt(ctx, base64.StdEncoding.EncodeToString(salt)); perr == nil {
		if decoded, derr := base64.StdEncoding.DecodeString(canonical); derr == nil && len(decoded) > 0 {
			salt = decoded
		}
	} else if !errors.Is(perr, adapter.ErrNetworkUnavailable) {
		return nil, nil, fmt.Errorf("publish salt: %w", perr)
	}
	v.cacheSalt(ctx, userID, salt)
	return salt, nil, nil
}

func (v *vaultSession) localSalt(ctx context.Context, metaKey string) []byte {
	raw, err := v.localStore.GetMeta(ctx, metaKey)
	if err != nil {
		return nil
	}
	salt, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		v.logger.Warn().Str("func", "localSalt").Str("key", metaKey).Msg("cached salt is not valid base64, ignoring")
		return nil
	}
	return salt
}

func (v *vaultSession) cacheSalt(ctx context.Context, userID string, salt []byte) {
	err := v.localStore.SetMeta(ctx, metaKeyFor(metaVaultSalt, userID), base64.StdEncoding.EncodeToString(salt))
	if err != nil {
		v.logger.Warn().Err(err).Str("func", "cacheSalt").Msg("could not cache salt locally")
	}
}

// loadCheckBlob returns the stored check-blob envelope, preferring the
// per-user key over the legacy one, and reports which one was found.
func (v *vaultSession) loadCheckBlob(ctx context.Context, userID string) (*models.Envelope, bool) {
	if raw, err := v.localStore.GetMeta(ctx, metaKeyFor(metaVaultCheck, userID)); err == nil {
		if env, perr := models.ParseEnvelope(raw); perr == nil {
			return &env, false
		}
	}
	if raw, err := v.localStore.GetMeta(ctx, legacyMetaVaultCheck); err == nil {
		if env, perr := models.ParseEnvelope(raw); perr == nil {
			return &env, true
		}
	}
	return nil, false
}

func (v *vaultSession) checkOpens(env models.Envelope, key []byte) bool {
	var sentinel checkSentinel
	if err := v.keys.DecryptJSON(env, key, &sentinel); err != nil {
		return false
	}
	return sentinel.OK
}

// probeRemoteValidity tries to decrypt a sample of the most recently updated
// remote notes under key. conclusive is false when the server could not be
// reached, in which case the caller falls back to local verification. An
// empty remote note set counts as valid.
func (v *vaultSession) probeRemoteValidity(ctx context.Context, key []byte) (valid, conclusive bool) {
	rows, err := v.adapter.ListRecentNotes(ctx, probeLimit)
	if err != nil {
		v.logger.Warn().Err(err).Str("func", "probeRemoteValidity").Msg("remote probe unavailable")
		return false, false
	}
	if len(rows) == 0 {
		return true, true
	}

	for _, row := range rows {
		if v.rowDecrypts(row, key) {
			return true, true
		}
	}
	return false, true
}

// rowDecrypts reports whether one remote note row opens under key, trying
// the wrapped per-note key the row carries, then direct legacy decryption.
func (v *vaultSession) rowDecrypts(row models.RemoteNoteRow, key []byte) bool {
	payload, err := models.ParseEnvelope(row.Ciphertext)
	if err != nil {
		return false
	}

	var plain models.PlainNote
	if row.NoteKeyCiphertext != "" && row.NoteKeyIV != "" {
		wrapped := models.Envelope{IV: row.NoteKeyIV, Ciphertext: row.NoteKeyCiphertext}
		if noteKey, err := v.keys.DecryptBytes(wrapped, key); err == nil {
			if v.keys.DecryptJSON(payload, noteKey, &plain) == nil {
				return true
			}
		}
	}
	return v.keys.DecryptJSON(payload, key, &plain) == nil
}

// legacySaltFallback retries the whole derivation with the legacy
// un-namespaced salt. On success the legacy salt is promoted to canonical:
// cached under the per-user meta key and written back as the remote salt.
func (v *vaultSession) legacySaltFallback(ctx context.Context, userID, masterPassword string, primarySalt, legacySalt []byte, checkEnv *models.Envelope) ([]byte, bool) {
	if len(legacySalt) == 0 || bytes.Equal(legacySalt, primarySalt) {
		return nil, false
	}

	key, err := v.keys.DeriveVaultKey(masterPassword, legacySalt)
	if err != nil {
		return nil, false
	}

	valid, conclusive := v.probeRemoteValidity(ctx, key)
	if conclusive {
		if !valid {
			return nil, false
		}
	} else if checkEnv == nil || !v.checkOpens(*checkEnv, key) {
		return nil, false
	}

	v.cacheSalt(ctx, userID, legacySalt)
	if _, err := v.adapter.PutVaultSalt(ctx, base64.StdEncoding.EncodeToString(legacySalt)); err != nil {
		v.logger.Warn().Err(err).Str("func", "legacySaltFallback").Msg("could not promote legacy salt remotely")
	}

	v.logger.Info().Str("func", "legacySaltFallback").Msg("legacy salt promoted to canonical")
	return key, true
}

// adopt stores the verified key in memory and, when asked, refreshes the
// per-user check blob. Check-blob persistence is best effort: a write
// failure must not undo a successful unlock.
func (v *vaultSession) adopt(ctx context.Context, userID string, key []byte, writeCheck bool) {
	v.mu.Lock()
	v.key = key
	v.mu.Unlock()

	if !writeCheck {
		return
	}

	env, err := v.keys.EncryptJSON(checkSentinel{OK: true}, key)
	if err != nil {
		v.logger.Warn().Err(err).Str("func", "adopt").Msg("could not encrypt check blob")
		return
	}
	if err := v.localStore.SetMeta(ctx, metaKeyFor(metaVaultCheck, userID), env.Encode()); err != nil {
		v.logger.Warn().Err(err).Str("func", "adopt").Msg("could not persist check blob")
	}
}
