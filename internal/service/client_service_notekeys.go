package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type noteKeyService struct {
	localStore store.LocalStore
	keys       crypto.KeyChain
	vault      ClientVaultService
	logger     *logger.Logger
}

// NewClientNoteKeyService wires the per-note key envelope logic to the local
// store and the vault session.
func NewClientNoteKeyService(localStore store.LocalStore, keys crypto.KeyChain, vault ClientVaultService, log *logger.Logger) ClientNoteKeyService {
	return &noteKeyService{localStore: localStore, keys: keys, vault: vault, logger: log}
}

// EncryptWithNoteKey implements ClientNoteKeyService. The cached key is
// reused so that every save of a note stays decryptable by existing shares;
// a fresh key is generated only for notes that never had one.
func (n *noteKeyService) EncryptWithNoteKey(ctx context.Context, noteID string, plain models.PlainNote) (models.Envelope, []byte, models.Envelope, error) {
	vaultKey, err := n.vault.Key()
	if err != nil {
		return models.Envelope{}, nil, models.Envelope{}, err
	}

	noteKey, wrapped, err := n.getOrCreateNoteKey(ctx, noteID, vaultKey)
	if err != nil {
		return models.Envelope{}, nil, models.Envelope{}, err
	}

	payload, err := n.keys.EncryptJSON(plain, noteKey)
	if err != nil {
		return models.Envelope{}, nil, models.Envelope{}, fmt.Errorf("encrypt note payload: %w", err)
	}

	return payload, noteKey, wrapped, nil
}

// DecryptNotePayload implements ClientNoteKeyService. The fallback ladder
// handles every storage shape a note can be in: per-note key, legacy direct
// vault-key encryption, and a stale cached key record left behind by a
// device that re-encrypted the note in the other format.
func (n *noteKeyService) DecryptNotePayload(ctx context.Context, noteID string, payload models.Envelope) (models.PlainNote, error) {
	vaultKey, err := n.vault.Key()
	if err != nil {
		return models.PlainNote{}, err
	}

	rec, err := n.localStore.GetNoteKey(ctx, noteID)
	if errors.Is(err, store.ErrNoteKeyNotFound) {
		// Legacy format: the payload is encrypted directly under the vault key.
		return n.decryptDirect(payload, vaultKey)
	}
	if err != nil {
		return models.PlainNote{}, fmt.Errorf("load note key record: %w", err)
	}

	noteKey, err := n.keys.DecryptBytes(rec.EncryptedNoteKey, vaultKey)
	if err != nil {
		// Unwrap failed; the payload may still be legacy format.
		return n.decryptDirect(payload, vaultKey)
	}

	var plain models.PlainNote
	if err := n.keys.DecryptJSON(payload, noteKey, &plain); err == nil {
		return plain, nil
	}

	// The cached key does not match the payload format. If direct decryption
	// works, the key record is stale and self-heals by deletion.
	plain, err = n.decryptDirect(payload, vaultKey)
	if err != nil {
		return models.PlainNote{}, err
	}
	if derr := n.localStore.DeleteNoteKey(ctx, noteID); derr != nil {
		n.logger.Warn().Err(derr).Str("func", "DecryptNotePayload").Str("note_id", noteID).Msg("could not delete stale note key record")
	} else {
		n.logger.Info().Str("func", "DecryptNotePayload").Str("note_id", noteID).Msg("stale note key record deleted")
	}
	return plain, nil
}

// LoadNoteKey implements ClientNoteKeyService.
func (n *noteKeyService) LoadNoteKey(ctx context.Context, noteID string) ([]byte, error) {
	vaultKey, err := n.vault.Key()
	if err != nil {
		return nil, err
	}

	rec, err := n.localStore.GetNoteKey(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%w: no key record for note %s", ErrKeyUnavailable, noteID)
	}

	noteKey, err := n.keys.DecryptBytes(rec.EncryptedNoteKey, vaultKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap key for note %s: %w", ErrKeyUnavailable, noteID, err)
	}
	return noteKey, nil
}

func (n *noteKeyService) decryptDirect(payload models.Envelope, vaultKey []byte) (models.PlainNote, error) {
	var plain models.PlainNote
	if err := n.keys.DecryptJSON(payload, vaultKey, &plain); err != nil {
		return models.PlainNote{}, err
	}
	return plain, nil
}

func (n *noteKeyService) getOrCreateNoteKey(ctx context.Context, noteID string, vaultKey []byte) ([]byte, models.Envelope, error) {
	rec, err := n.localStore.GetNoteKey(ctx, noteID)
	if err == nil {
		noteKey, uerr := n.keys.DecryptBytes(rec.EncryptedNoteKey, vaultKey)
		if uerr != nil {
			return nil, models.Envelope{}, fmt.Errorf("%w: unwrap key for note %s: %w", ErrKeyUnavailable, noteID, uerr)
		}
		return noteKey, rec.EncryptedNoteKey, nil
	}
	if !errors.Is(err, store.ErrNoteKeyNotFound) {
		return nil, models.Envelope{}, fmt.Errorf("load note key record: %w", err)
	}

	noteKey, err := n.keys.GenerateKey()
	if err != nil {
		return nil, models.Envelope{}, fmt.Errorf("generate note key: %w", err)
	}
	wrapped, err := n.keys.EncryptBytes(noteKey, vaultKey)
	if err != nil {
		return nil, models.Envelope{}, fmt.Errorf("wrap note key: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	newRec := models.NoteKeyRecord{NoteID: noteID, EncryptedNoteKey: wrapped, CreatedAt: now, UpdatedAt: now}
	if err := n.localStore.UpsertNoteKey(ctx, newRec); err != nil {
		return nil, models.Envelope{}, fmt.Errorf("store note key record: %w", err)
	}

	return noteKey, wrapped, nil
}
