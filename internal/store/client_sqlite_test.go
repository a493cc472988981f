package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

func newTestStore(t *testing.T) LocalStore {
	t.Helper()
	s, err := NewLocalStore(":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLocalStore_Meta(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetMeta(ctx, "vault_salt_v1")
	assert.ErrorIs(t, err, ErrMetaNotFound)

	require.NoError(t, s.SetMeta(ctx, "vault_salt_v1", "c2FsdA=="))
	got, err := s.GetMeta(ctx, "vault_salt_v1")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", got)

	// upsert semantics
	require.NoError(t, s.SetMeta(ctx, "vault_salt_v1", "b3RoZXI="))
	got, err = s.GetMeta(ctx, "vault_salt_v1")
	require.NoError(t, err)
	assert.Equal(t, "b3RoZXI=", got)

	require.NoError(t, s.DeleteMeta(ctx, "vault_salt_v1"))
	_, err = s.GetMeta(ctx, "vault_salt_v1")
	assert.ErrorIs(t, err, ErrMetaNotFound)
}

func TestLocalStore_NotesOrderedByUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newer := models.EncryptedNoteRecord{
		ID:        "note-2",
		Payload:   models.Envelope{IV: "aXYy", Ciphertext: "Y3Qy"},
		CreatedAt: "2026-01-02T10:00:00Z",
		UpdatedAt: "2026-01-02T10:00:00Z",
	}
	older := models.EncryptedNoteRecord{
		ID:        "note-1",
		Payload:   models.Envelope{IV: "aXYx", Ciphertext: "Y3Qx"},
		CreatedAt: "2026-01-01T10:00:00Z",
		UpdatedAt: "2026-01-01T10:00:00Z",
	}

	require.NoError(t, s.UpsertNote(ctx, newer))
	require.NoError(t, s.UpsertNote(ctx, older))

	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "note-1", notes[0].ID)
	assert.Equal(t, "note-2", notes[1].ID)

	got, err := s.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, older, got)

	require.NoError(t, s.DeleteNote(ctx, "note-1"))
	_, err = s.GetNote(ctx, "note-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestLocalStore_SharedNotesKeepOrigin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := models.SharedEncryptedNoteRecord{
		EncryptedNoteRecord: models.EncryptedNoteRecord{
			ID:        "shared-1",
			Payload:   models.Envelope{IV: "aXY=", Ciphertext: "Y3Q="},
			CreatedAt: "2026-01-01T10:00:00Z",
			UpdatedAt: "2026-01-01T10:00:00Z",
		},
		SharedFromUserID: "owner-uuid",
		SharedGroupID:    "group-uuid",
		Permission:       models.PermissionRead,
	}
	require.NoError(t, s.UpsertSharedNote(ctx, rec))

	got, err := s.GetSharedNote(ctx, "shared-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	all, err := s.ListSharedNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteSharedNote(ctx, "shared-1"))
	_, err = s.GetSharedNote(ctx, "shared-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestLocalStore_NoteKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetNoteKey(ctx, "note-1")
	assert.ErrorIs(t, err, ErrNoteKeyNotFound)

	rec := models.NoteKeyRecord{
		NoteID:           "note-1",
		EncryptedNoteKey: models.Envelope{IV: "aXY=", Ciphertext: "a2V5"},
		CreatedAt:        "2026-01-01T10:00:00Z",
		UpdatedAt:        "2026-01-01T10:00:00Z",
	}
	require.NoError(t, s.UpsertNoteKey(ctx, rec))

	got, err := s.GetNoteKey(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	require.NoError(t, s.DeleteNoteKey(ctx, "note-1"))
	_, err = s.GetNoteKey(ctx, "note-1")
	assert.ErrorIs(t, err, ErrNoteKeyNotFound)
}
