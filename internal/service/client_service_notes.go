package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

// metaCorruptNotes stores the JSON array of note ids excluded from listings
// after unrecoverable decryption failures. Namespaced per user.
const metaCorruptNotes = "corrupt_notes_v1"

type noteService struct {
	localStore store.LocalStore
	adapter    adapter.RemoteStore
	noteKeys   ClientNoteKeyService
	vault      ClientVaultService
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewClientNoteService composes the local store, the remote store, and the
// note-key service into the plaintext-facing note API.
func NewClientNoteService(localStore store.LocalStore, remote adapter.RemoteStore, noteKeys ClientNoteKeyService, vault ClientVaultService, log *logger.Logger) ClientNoteService {
	return &noteService{
		localStore: localStore,
		adapter:    remote,
		noteKeys:   noteKeys,
		vault:      vault,
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// SaveNote implements ClientNoteService. The note is always written locally
// first; a remote upload that fails for network reasons is deferred to the
// next sync pass rather than failing the save.
func (s *noteService) SaveNote(ctx context.Context, noteID string, plain models.PlainNote) (string, error) {
	if !s.vault.IsUnlocked() {
		return "", ErrVaultLocked
	}

	now := time.Now().UTC().Format(time.RFC3339)
	createdAt := now
	if noteID == "" {
		noteID = s.ids.Generate()
	} else if existing, err := s.localStore.GetNote(ctx, noteID); err == nil {
		createdAt = existing.CreatedAt
	}

	payload, _, wrapped, err := s.noteKeys.EncryptWithNoteKey(ctx, noteID, plain)
	if err != nil {
		return "", err
	}

	rec := models.EncryptedNoteRecord{ID: noteID, Payload: payload, CreatedAt: createdAt, UpdatedAt: now}
	if err := s.localStore.UpsertNote(ctx, rec); err != nil {
		return "", fmt.Errorf("save note locally: %w", err)
	}

	row := models.RemoteNoteRow{
		ID:                noteID,
		UserID:            s.adapter.UserID(),
		Title:             plain.Title,
		Ciphertext:        payload.Encode(),
		NoteKeyCiphertext: wrapped.Ciphertext,
		NoteKeyIV:         wrapped.IV,
		CreatedAt:         createdAt,
		UpdatedAt:         now,
	}
	if err := s.adapter.UpsertNote(ctx, row); err != nil {
		if !errors.Is(err, adapter.ErrNetworkUnavailable) {
			return "", fmt.Errorf("upload note: %w", err)
		}
		s.logger.Warn().Err(err).Str("func", "SaveNote").Str("note_id", noteID).Msg("offline, note saved locally only")
	}

	return noteID, nil
}

// GetNote implements ClientNoteService.
func (s *noteService) GetNote(ctx context.Context, noteID string) (models.DecryptedNote, error) {
	rec, err := s.localStore.GetNote(ctx, noteID)
	if err != nil {
		return models.DecryptedNote{}, fmt.Errorf("load note: %w", err)
	}
	return s.decryptWithRecovery(ctx, rec)
}

// ListNotes implements ClientNoteService. Each note is isolated: a failure
// lands the note in the corrupt set and the listing continues.
func (s *noteService) ListNotes(ctx context.Context) ([]models.DecryptedNote, error) {
	recs, err := s.localStore.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local notes: %w", err)
	}

	corrupt, err := s.corruptSet(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]models.DecryptedNote, 0, len(recs))
	for _, rec := range recs {
		if _, bad := corrupt[rec.ID]; bad {
			continue
		}

		note, err := s.decryptWithRecovery(ctx, rec)
		if errors.Is(err, ErrVaultLocked) {
			return nil, err
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "ListNotes").Str("note_id", rec.ID).Msg("note excluded from listing")
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// ListSharedNotes implements ClientNoteService. Shared notes always carry a
// cached per-note key, so there is no recovery ladder; failures are skipped.
func (s *noteService) ListSharedNotes(ctx context.Context) ([]models.DecryptedNote, error) {
	recs, err := s.localStore.ListSharedNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local shared notes: %w", err)
	}

	notes := make([]models.DecryptedNote, 0, len(recs))
	for _, rec := range recs {
		plain, err := s.noteKeys.DecryptNotePayload(ctx, rec.ID, rec.Payload)
		if errors.Is(err, ErrVaultLocked) {
			return nil, err
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "ListSharedNotes").Str("note_id", rec.ID).Msg("shared note skipped")
			continue
		}
		notes = append(notes, models.DecryptedNote{
			ID:            rec.ID,
			Note:          plain,
			CreatedAt:     rec.CreatedAt,
			UpdatedAt:     rec.UpdatedAt,
			SharedGroupID: rec.SharedGroupID,
			Permission:    rec.Permission,
		})
	}
	return notes, nil
}

// DeleteNote implements ClientNoteService.
func (s *noteService) DeleteNote(ctx context.Context, noteID string) error {
	if err := s.localStore.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note locally: %w", err)
	}
	if err := s.localStore.DeleteNoteKey(ctx, noteID); err != nil {
		s.logger.Warn().Err(err).Str("func", "DeleteNote").Str("note_id", noteID).Msg("could not delete cached note key")
	}

	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		if !errors.Is(err, adapter.ErrNetworkUnavailable) {
			return fmt.Errorf("delete note remotely: %w", err)
		}
		s.logger.Warn().Err(err).Str("func", "DeleteNote").Str("note_id", noteID).Msg("offline, note deleted locally only")
	}
	return nil
}

// CorruptNoteIDs implements ClientNoteService.
func (s *noteService) CorruptNoteIDs(ctx context.Context) ([]string, error) {
	set, err := s.corruptSet(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids, nil
}

// ClearCorruptNotes implements ClientNoteService.
func (s *noteService) ClearCorruptNotes(ctx context.Context) error {
	err := s.localStore.DeleteMeta(ctx, metaKeyFor(metaCorruptNotes, s.adapter.UserID()))
	if err != nil && !errors.Is(err, store.ErrMetaNotFound) {
		return fmt.Errorf("clear corrupt set: %w", err)
	}
	return nil
}

// decryptWithRecovery decrypts one owned note. On failure it re-fetches the
// note and its wrapped key from the server, re-imports both, and retries
// exactly once; a second failure adds the id to the corrupt set.
//
// A locked vault is a session condition, not a per-note failure: it is
// returned as-is, before any recovery attempt, so healthy notes never enter
// the corrupt set just because the idle timer fired.
func (s *noteService) decryptWithRecovery(ctx context.Context, rec models.EncryptedNoteRecord) (models.DecryptedNote, error) {
	plain, err := s.noteKeys.DecryptNotePayload(ctx, rec.ID, rec.Payload)
	if err == nil {
		return s.decrypted(rec, plain), nil
	}
	if errors.Is(err, ErrVaultLocked) {
		return models.DecryptedNote{}, err
	}

	recovered, rerr := s.refetchNote(ctx, rec.ID)
	if rerr != nil {
		s.logger.Warn().Err(rerr).Str("func", "decryptWithRecovery").Str("note_id", rec.ID).Msg("remote recovery unavailable")
		s.markCorrupt(ctx, rec.ID)
		return models.DecryptedNote{}, fmt.Errorf("%w: %s: %w", ErrNoteCorrupt, rec.ID, err)
	}

	plain, err = s.noteKeys.DecryptNotePayload(ctx, recovered.ID, recovered.Payload)
	if err != nil {
		s.markCorrupt(ctx, rec.ID)
		return models.DecryptedNote{}, fmt.Errorf("%w: %s: %w", ErrNoteCorrupt, rec.ID, err)
	}
	return s.decrypted(recovered, plain), nil
}

// refetchNote pulls one note row and its wrapped key from the server and
// re-imports both locally.
func (s *noteService) refetchNote(ctx context.Context, noteID string) (models.EncryptedNoteRecord, error) {
	rows, err := s.adapter.GetNotesByIDs(ctx, []string{noteID})
	if err != nil {
		return models.EncryptedNoteRecord{}, fmt.Errorf("refetch note: %w", err)
	}
	if len(rows) == 0 {
		return models.EncryptedNoteRecord{}, fmt.Errorf("refetch note: %s not visible remotely", noteID)
	}
	row := rows[0]

	payload, err := models.ParseEnvelope(row.Ciphertext)
	if err != nil {
		return models.EncryptedNoteRecord{}, fmt.Errorf("refetch note %s: %w", noteID, err)
	}

	rec := models.EncryptedNoteRecord{ID: row.ID, Payload: payload, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
	if err := s.localStore.UpsertNote(ctx, rec); err != nil {
		return models.EncryptedNoteRecord{}, fmt.Errorf("re-import note %s: %w", noteID, err)
	}

	if row.NoteKeyCiphertext != "" && row.NoteKeyIV != "" {
		keyRec := models.NoteKeyRecord{
			NoteID:           row.ID,
			EncryptedNoteKey: models.Envelope{IV: row.NoteKeyIV, Ciphertext: row.NoteKeyCiphertext},
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		}
		if err := s.localStore.UpsertNoteKey(ctx, keyRec); err != nil {
			return models.EncryptedNoteRecord{}, fmt.Errorf("re-import note key %s: %w", noteID, err)
		}
	}

	return rec, nil
}

func (s *noteService) decrypted(rec models.EncryptedNoteRecord, plain models.PlainNote) models.DecryptedNote {
	return models.DecryptedNote{ID: rec.ID, Note: plain, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
}

func (s *noteService) corruptSet(ctx context.Context) (map[string]struct{}, error) {
	raw, err := s.localStore.GetMeta(ctx, metaKeyFor(metaCorruptNotes, s.adapter.UserID()))
	if errors.Is(err, store.ErrMetaNotFound) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load corrupt set: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn().Err(err).Str("func", "corruptSet").Msg("corrupt set unreadable, resetting")
		return map[string]struct{}{}, nil
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *noteService) markCorrupt(ctx context.Context, noteID string) {
	set, err := s.corruptSet(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "markCorrupt").Str("note_id", noteID).Msg("could not load corrupt set")
		set = map[string]struct{}{}
	}
	set[noteID] = struct{}{}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	raw, _ := json.Marshal(ids)
	if err := s.localStore.SetMeta(ctx, metaKeyFor(metaCorruptNotes, s.adapter.UserID()), string(raw)); err != nil {
		s.logger.Warn().Err(err).Str("func", "markCorrupt").Str("note_id", noteID).Msg("could not persist corrupt set")
	}
}
