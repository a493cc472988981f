package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type syncService struct {
	localStore store.LocalStore
	adapter    adapter.RemoteStore
	keys       crypto.KeyChain
	vault      ClientVaultService
	profile    ClientProfileService
	groups     ClientGroupService
	logger     *logger.Logger
}

// NewClientSyncService builds the reconciler that merges remote encrypted
// rows into the local store. Owned-note reconciliation never decrypts
// content; it compares envelopes and timestamps only.
func NewClientSyncService(localStore store.LocalStore, remote adapter.RemoteStore, keys crypto.KeyChain, vault ClientVaultService, profile ClientProfileService, groups ClientGroupService, log *logger.Logger) ClientSyncService {
	return &syncService{
		localStore: localStore,
		adapter:    remote,
		keys:       keys,
		vault:      vault,
		profile:    profile,
		groups:     groups,
		logger:     log,
	}
}

// SyncDown implements ClientSyncService.
func (s *syncService) SyncDown(ctx context.Context) (SyncStats, error) {
	log := logger.FromContext(ctx)

	rows, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return SyncStats{}, fmt.Errorf("list remote notes: %w", err)
	}

	var stats SyncStats
	stats.Rows = len(rows)

	for _, row := range rows {
		payload, err := models.ParseEnvelope(row.Ciphertext)
		if err != nil {
			stats.SkippedBad++
			log.Warn().Str("func", "SyncDown").Str("note_id", row.ID).Msg("remote row has malformed envelope, skipping")
			continue
		}

		local, err := s.localStore.GetNote(ctx, row.ID)
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			rec := models.EncryptedNoteRecord{ID: row.ID, Payload: payload, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
			if uerr := s.localStore.UpsertNote(ctx, rec); uerr != nil {
				return stats, fmt.Errorf("import note %s: %w", row.ID, uerr)
			}
			stats.Imported++
		case err != nil:
			return stats, fmt.Errorf("load local note %s: %w", row.ID, err)
		case remoteWins(local.UpdatedAt, row.UpdatedAt):
			rec := models.EncryptedNoteRecord{ID: row.ID, Payload: payload, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
			if uerr := s.localStore.UpsertNote(ctx, rec); uerr != nil {
				return stats, fmt.Errorf("overwrite note %s: %w", row.ID, uerr)
			}
			stats.Imported++
		default:
			stats.SkippedOlder++
		}

		// The key upsert is independent of the payload decision: a device
		// whose payload copy is current may still be missing the key.
		if row.NoteKeyCiphertext != "" && row.NoteKeyIV != "" {
			upserted, kerr := s.upsertRemoteNoteKey(ctx, row)
			if kerr != nil {
				return stats, kerr
			}
			if upserted {
				stats.KeysUpserted++
			}
		}
	}

	log.Info().
		Str("func", "SyncDown").
		Int("rows", stats.Rows).
		Int("imported", stats.Imported).
		Int("keys_upserted", stats.KeysUpserted).
		Int("skipped_older", stats.SkippedOlder).
		Int("skipped_bad", stats.SkippedBad).
		Msg("sync down finished")
	return stats, nil
}

// SyncDownShared implements ClientSyncService.
func (s *syncService) SyncDownShared(ctx context.Context) error {
	log := logger.FromContext(ctx)

	vaultKey, err := s.vault.Key()
	if err != nil {
		return err
	}

	grants, err := s.adapter.ListShares(ctx)
	if err != nil {
		return fmt.Errorf("list visible shares: %w", err)
	}

	grantsByNote := make(map[string][]models.NoteShareRow)
	order := make([]string, 0, len(grants))
	for _, grant := range grants {
		if _, seen := grantsByNote[grant.NoteID]; !seen {
			order = append(order, grant.NoteID)
		}
		grantsByNote[grant.NoteID] = append(grantsByNote[grant.NoteID], grant)
	}

	rowByID := make(map[string]models.RemoteNoteRow, len(order))
	if len(order) > 0 {
		rows, err := s.adapter.GetNotesByIDs(ctx, order)
		if err != nil {
			return fmt.Errorf("fetch shared notes: %w", err)
		}
		for _, row := range rows {
			rowByID[row.ID] = row
		}
	}

	// Group keys and the box keypair are both best effort here: a missing
	// profile only makes the matching grants unopenable, not the whole pass.
	groupKeys, err := s.groups.LoadMyGroupKeys(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "SyncDownShared").Msg("group keys unavailable, group shares will be skipped")
		groupKeys = map[string]GroupKey{}
	}
	pub, priv, err := s.profile.LoadBoxKeypair(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "SyncDownShared").Msg("box keypair unavailable, user shares will be skipped")
	}

	for _, noteID := range order {
		row, ok := rowByID[noteID]
		if !ok {
			continue
		}
		payload, perr := models.ParseEnvelope(row.Ciphertext)
		if perr != nil {
			log.Warn().Str("func", "SyncDownShared").Str("note_id", noteID).Msg("shared row has malformed envelope, skipping")
			continue
		}

		// First openable grant wins; duplicates are ignored.
		for _, grant := range grantsByNote[noteID] {
			noteKey, ok := s.openGrant(grant, groupKeys, pub, priv)
			if !ok {
				continue
			}

			rec := models.SharedEncryptedNoteRecord{
				EncryptedNoteRecord: models.EncryptedNoteRecord{ID: row.ID, Payload: payload, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt},
				SharedFromUserID:    row.UserID,
				Permission:          grant.Permission,
			}
			if grant.SharedWithType == models.SharedWithGroup {
				rec.SharedGroupID = grant.SharedWithID
			}
			if uerr := s.localStore.UpsertSharedNote(ctx, rec); uerr != nil {
				return fmt.Errorf("store shared note %s: %w", noteID, uerr)
			}
			s.cacheNoteKey(ctx, noteID, noteKey, vaultKey)
			break
		}
	}

	return s.revokeVanishedShares(ctx, grantsByNote)
}

// FullSync implements ClientSyncService. Both passes run even if the first
// fails; sync is best effort end to end.
func (s *syncService) FullSync(ctx context.Context) error {
	_, downErr := s.SyncDown(ctx)
	sharedErr := s.SyncDownShared(ctx)
	return errors.Join(downErr, sharedErr)
}

// openGrant tries to recover the raw note key behind one grant: a group-key
// unwrap for group shares, a sealed-box open for user shares.
func (s *syncService) openGrant(grant models.NoteShareRow, groupKeys map[string]GroupKey, pub, priv []byte) ([]byte, bool) {
	switch grant.SharedWithType {
	case models.SharedWithGroup:
		groupKey, ok := groupKeys[grant.SharedWithID]
		if !ok {
			return nil, false
		}
		env := models.Envelope{IV: grant.WrappedNoteKeyIV, Ciphertext: grant.WrappedNoteKey}
		noteKey, err := s.keys.DecryptBytes(env, groupKey.Key)
		if err != nil {
			return nil, false
		}
		return noteKey, true

	case models.SharedWithUser:
		if pub == nil || priv == nil {
			return nil, false
		}
		sealed, err := base64.StdEncoding.DecodeString(grant.WrappedNoteKey)
		if err != nil {
			return nil, false
		}
		noteKey, err := s.keys.OpenSealed(sealed, pub, priv)
		if err != nil {
			return nil, false
		}
		return noteKey, true
	}
	return nil, false
}

// cacheNoteKey stores the opened note key wrapped under the vault key,
// skipping the write when the cached record already unwraps to the same
// bytes.
func (s *syncService) cacheNoteKey(ctx context.Context, noteID string, noteKey, vaultKey []byte) {
	if existing, err := s.localStore.GetNoteKey(ctx, noteID); err == nil {
		if cached, derr := s.keys.DecryptBytes(existing.EncryptedNoteKey, vaultKey); derr == nil && bytes.Equal(cached, noteKey) {
			return
		}
	}

	wrapped, err := s.keys.EncryptBytes(noteKey, vaultKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "cacheNoteKey").Str("note_id", noteID).Msg("could not wrap shared note key")
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	rec := models.NoteKeyRecord{NoteID: noteID, EncryptedNoteKey: wrapped, CreatedAt: now, UpdatedAt: now}
	if err := s.localStore.UpsertNoteKey(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("func", "cacheNoteKey").Str("note_id", noteID).Msg("could not cache shared note key")
	}
}

// revokeVanishedShares deletes local copies of shared notes whose grants
// disappeared from the visible set. The cached note key is deleted too,
// unless this device owns the note outright.
func (s *syncService) revokeVanishedShares(ctx context.Context, grantsByNote map[string][]models.NoteShareRow) error {
	locals, err := s.localStore.ListSharedNotes(ctx)
	if err != nil {
		return fmt.Errorf("list local shared notes: %w", err)
	}

	for _, rec := range locals {
		if _, visible := grantsByNote[rec.ID]; visible {
			continue
		}

		if derr := s.localStore.DeleteSharedNote(ctx, rec.ID); derr != nil {
			return fmt.Errorf("delete revoked shared note %s: %w", rec.ID, derr)
		}

		_, oerr := s.localStore.GetNote(ctx, rec.ID)
		if errors.Is(oerr, store.ErrNoteNotFound) {
			if derr := s.localStore.DeleteNoteKey(ctx, rec.ID); derr != nil {
				s.logger.Warn().Err(derr).Str("func", "revokeVanishedShares").Str("note_id", rec.ID).Msg("could not delete revoked note key")
			}
		}

		s.logger.Info().Str("func", "revokeVanishedShares").Str("note_id", rec.ID).Msg("revoked share removed locally")
	}
	return nil
}

// upsertRemoteNoteKey stores the wrapped key a remote row carries, unless an
// identical envelope is already cached.
func (s *syncService) upsertRemoteNoteKey(ctx context.Context, row models.RemoteNoteRow) (bool, error) {
	env := models.Envelope{IV: row.NoteKeyIV, Ciphertext: row.NoteKeyCiphertext}

	existing, err := s.localStore.GetNoteKey(ctx, row.ID)
	if err == nil && existing.EncryptedNoteKey == env {
		return false, nil
	}
	if err != nil && !errors.Is(err, store.ErrNoteKeyNotFound) {
		return false, fmt.Errorf("load note key %s: %w", row.ID, err)
	}

	rec := models.NoteKeyRecord{NoteID: row.ID, EncryptedNoteKey: env, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
	if err := s.localStore.UpsertNoteKey(ctx, rec); err != nil {
		return false, fmt.Errorf("upsert note key %s: %w", row.ID, err)
	}
	return true, nil
}

// remoteWins applies the last-write-wins rule: the remote copy wins on a
// strictly greater instant, and on any unparsable timestamp — availability
// over staleness.
func remoteWins(localUpdated, remoteUpdated string) bool {
	local, lerr := time.Parse(time.RFC3339, localUpdated)
	remote, rerr := time.Parse(time.RFC3339, remoteUpdated)
	if lerr != nil || rerr != nil {
		return true
	}
	return remote.After(local)
}
