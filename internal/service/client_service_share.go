package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type shareService struct {
	localStore store.LocalStore
	adapter    adapter.RemoteStore
	keys       crypto.KeyChain
	noteKeys   ClientNoteKeyService
	notes      ClientNoteService
	groups     ClientGroupService
	logger     *logger.Logger
}

// NewClientShareService wraps note keys for recipients. It leans on the
// note-key service for the raw key and on the group service for group keys.
func NewClientShareService(localStore store.LocalStore, remote adapter.RemoteStore, keys crypto.KeyChain, noteKeys ClientNoteKeyService, notes ClientNoteService, groups ClientGroupService, log *logger.Logger) ClientShareService {
	return &shareService{
		localStore: localStore,
		adapter:    remote,
		keys:       keys,
		noteKeys:   noteKeys,
		notes:      notes,
		groups:     groups,
		logger:     log,
	}
}

// ShareNoteToGroup implements ClientShareService.
func (s *shareService) ShareNoteToGroup(ctx context.Context, noteID, groupID, permission string) error {
	if permission != models.PermissionRead && permission != models.PermissionWrite {
		return fmt.Errorf("%w: permission %q", ErrInvalidDataProvided, permission)
	}

	noteKey, err := s.noteKey(ctx, noteID)
	if err != nil {
		return err
	}

	groupKeys, err := s.groups.LoadMyGroupKeys(ctx)
	if err != nil {
		return err
	}
	groupKey, ok := groupKeys[groupID]
	if !ok {
		return fmt.Errorf("%w: no group key for group %s", ErrKeyUnavailable, groupID)
	}

	env, err := s.keys.EncryptBytes(noteKey, groupKey.Key)
	if err != nil {
		return fmt.Errorf("wrap note key under group key: %w", err)
	}

	share := models.NoteShareRow{
		NoteID:           noteID,
		SharedWithType:   models.SharedWithGroup,
		SharedWithID:     groupID,
		Permission:       permission,
		WrappedNoteKey:   env.Ciphertext,
		WrappedNoteKeyIV: env.IV,
		KeyVersion:       groupKey.Version,
	}
	if err := s.adapter.UpsertShare(ctx, share); err != nil {
		return fmt.Errorf("store group share: %w", err)
	}

	s.logger.Info().Str("func", "ShareNoteToGroup").Str("note_id", noteID).Str("group_id", groupID).Msg("note shared to group")
	return nil
}

// ShareNoteToUser implements ClientShareService. The sealed box carries its
// own ephemeral key material, so the iv column stays empty and the version
// is a constant that nothing reads back.
func (s *shareService) ShareNoteToUser(ctx context.Context, noteID, email, permission string) error {
	if permission != models.PermissionRead && permission != models.PermissionWrite {
		return fmt.Errorf("%w: permission %q", ErrInvalidDataProvided, permission)
	}

	recipient, err := s.adapter.LookupProfileByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("resolve recipient %q: %w", email, err)
	}
	recipientPub, err := base64.StdEncoding.DecodeString(recipient.BoxPublicKey)
	if err != nil {
		return fmt.Errorf("decode recipient public key: %w", err)
	}

	noteKey, err := s.noteKey(ctx, noteID)
	if err != nil {
		return err
	}

	sealed, err := s.keys.SealTo(recipientPub, noteKey)
	if err != nil {
		return fmt.Errorf("seal note key to recipient: %w", err)
	}

	share := models.NoteShareRow{
		NoteID:         noteID,
		SharedWithType: models.SharedWithUser,
		SharedWithID:   recipient.UserID,
		Permission:     permission,
		WrappedNoteKey: base64.StdEncoding.EncodeToString(sealed),
		KeyVersion:     1,
	}
	if err := s.adapter.UpsertShare(ctx, share); err != nil {
		return fmt.Errorf("store user share: %w", err)
	}

	s.logger.Info().Str("func", "ShareNoteToUser").Str("note_id", noteID).Str("user_id", recipient.UserID).Msg("note shared to user")
	return nil
}

// RemoveNoteShare implements ClientShareService.
func (s *shareService) RemoveNoteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error {
	if err := s.adapter.DeleteShare(ctx, noteID, sharedWithType, sharedWithID); err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	return nil
}

// noteKey returns the note's raw key, upgrading a legacy note to the
// per-note-key format first: the payload is decrypted under the vault key
// and re-saved, which mints and persists a fresh per-note key.
func (s *shareService) noteKey(ctx context.Context, noteID string) ([]byte, error) {
	noteKey, err := s.noteKeys.LoadNoteKey(ctx, noteID)
	if err == nil {
		return noteKey, nil
	}
	if !errors.Is(err, ErrKeyUnavailable) {
		return nil, err
	}

	rec, gerr := s.localStore.GetNote(ctx, noteID)
	if gerr != nil {
		return nil, fmt.Errorf("%w: note %s not present locally", ErrKeyUnavailable, noteID)
	}
	plain, derr := s.noteKeys.DecryptNotePayload(ctx, noteID, rec.Payload)
	if derr != nil {
		return nil, fmt.Errorf("%w: note %s: %w", ErrKeyUnavailable, noteID, derr)
	}

	if _, serr := s.notes.SaveNote(ctx, noteID, plain); serr != nil {
		return nil, fmt.Errorf("upgrade note %s to per-note key: %w", noteID, serr)
	}
	s.logger.Info().Str("func", "noteKey").Str("note_id", noteID).Msg("legacy note upgraded to per-note key format")

	return s.noteKeys.LoadNoteKey(ctx, noteID)
}
