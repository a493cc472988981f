package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/mock"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type noteFixture struct {
	notes    ClientNoteService
	noteKeys ClientNoteKeyService
	remote   *mock.MockRemoteStore
	local    store.LocalStore
	keys     crypto.KeyChain
	vault    *vaultSession
	vaultKey []byte
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().UserID().Return(testUserID).AnyTimes()

	local, err := store.NewLocalStore(":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	keys := crypto.NewKeyChain()
	vaultKey, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)

	// The session gets its own buffer: Lock zeroes it in place, and tests
	// still need vaultKey intact for assertions and re-unlocking.
	sessionKey := make([]byte, len(vaultKey))
	copy(sessionKey, vaultKey)
	vault := &vaultSession{keys: keys, key: sessionKey, logger: logger.Nop()}

	noteKeys := NewClientNoteKeyService(local, keys, vault, logger.Nop())
	notes := NewClientNoteService(local, remote, noteKeys, vault, logger.Nop())

	return &noteFixture{notes: notes, noteKeys: noteKeys, remote: remote, local: local, keys: keys, vault: vault, vaultKey: vaultKey}
}

func TestSaveNote_GeneratesIDAndUploads(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	plain := models.PlainNote{Title: "Test", Body: "Secret"}

	var uploaded models.RemoteNoteRow
	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row models.RemoteNoteRow) error {
			uploaded = row
			return nil
		})

	id, err := f.notes.SaveNote(ctx, "", plain)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, id, uploaded.ID)
	assert.Equal(t, testUserID, uploaded.UserID)
	assert.Equal(t, "Test", uploaded.Title)
	assert.NotEmpty(t, uploaded.NoteKeyCiphertext)
	assert.NotEmpty(t, uploaded.NoteKeyIV)

	// The uploaded ciphertext is a well-formed envelope that opens via the
	// wrapped per-note key the row carries.
	payload, err := models.ParseEnvelope(uploaded.Ciphertext)
	require.NoError(t, err)
	noteKey, err := f.keys.DecryptBytes(models.Envelope{IV: uploaded.NoteKeyIV, Ciphertext: uploaded.NoteKeyCiphertext}, f.vaultKey)
	require.NoError(t, err)
	var got models.PlainNote
	require.NoError(t, f.keys.DecryptJSON(payload, noteKey, &got))
	assert.Equal(t, plain, got)

	note, err := f.notes.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, plain, note.Note)
}

func TestSaveNote_OfflineKeepsLocalCopy(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(adapter.ErrNetworkUnavailable)

	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "offline", Body: "draft"})
	require.NoError(t, err)

	note, err := f.notes.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "offline", note.Note.Title)
}

func TestSaveNote_PreservesCreatedAt(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "v1"})
	require.NoError(t, err)
	first, err := f.local.GetNote(ctx, id)
	require.NoError(t, err)

	_, err = f.notes.SaveNote(ctx, id, models.PlainNote{Title: "v2"})
	require.NoError(t, err)
	second, err := f.local.GetNote(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestSaveNote_VaultLocked(t *testing.T) {
	f := newNoteFixture(t)

	locked := &vaultSession{keys: f.keys, logger: logger.Nop()}
	notes := NewClientNoteService(f.local, f.remote, f.noteKeys, locked, logger.Nop())

	_, err := notes.SaveNote(context.Background(), "", models.PlainNote{Title: "t"})
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestGetNote_RecoversFromServer(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	// The local copy is undecryptable garbage; the server still holds the
	// good row together with its wrapped key.
	junkKey, err := f.keys.GenerateKey()
	require.NoError(t, err)
	junk, err := f.keys.EncryptJSON(models.PlainNote{Title: "x"}, junkKey)
	require.NoError(t, err)
	require.NoError(t, f.local.UpsertNote(ctx, models.EncryptedNoteRecord{ID: "n1", Payload: junk, UpdatedAt: "2026-01-01T00:00:00Z"}))

	plain := models.PlainNote{Title: "Test", Body: "Secret"}
	noteKey, err := f.keys.GenerateKey()
	require.NoError(t, err)
	payload, err := f.keys.EncryptJSON(plain, noteKey)
	require.NoError(t, err)
	wrapped, err := f.keys.EncryptBytes(noteKey, f.vaultKey)
	require.NoError(t, err)
	row := models.RemoteNoteRow{
		ID:                "n1",
		UserID:            testUserID,
		Ciphertext:        payload.Encode(),
		NoteKeyCiphertext: wrapped.Ciphertext,
		NoteKeyIV:         wrapped.IV,
		CreatedAt:         "2026-01-01T00:00:00Z",
		UpdatedAt:         "2026-01-02T00:00:00Z",
	}
	f.remote.EXPECT().GetNotesByIDs(gomock.Any(), []string{"n1"}).Return([]models.RemoteNoteRow{row}, nil)

	note, err := f.notes.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, plain, note.Note)

	// The good copy replaced the local one.
	rec, err := f.local.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, payload, rec.Payload)
}

func TestGetNote_PermanentFailureMarksCorrupt(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	junkKey, err := f.keys.GenerateKey()
	require.NoError(t, err)
	junk, err := f.keys.EncryptJSON(models.PlainNote{Title: "x"}, junkKey)
	require.NoError(t, err)
	require.NoError(t, f.local.UpsertNote(ctx, models.EncryptedNoteRecord{ID: "n1", Payload: junk, UpdatedAt: "2026-01-01T00:00:00Z"}))

	// The server copy is just as broken.
	row := models.RemoteNoteRow{ID: "n1", UserID: testUserID, Ciphertext: junk.Encode(), UpdatedAt: "2026-01-01T00:00:00Z"}
	f.remote.EXPECT().GetNotesByIDs(gomock.Any(), []string{"n1"}).Return([]models.RemoteNoteRow{row}, nil)

	_, err = f.notes.GetNote(ctx, "n1")
	assert.ErrorIs(t, err, ErrNoteCorrupt)

	ids, err := f.notes.CorruptNoteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"n1"}, ids)

	// Corrupt notes are excluded from listings without remote traffic.
	listed, err := f.notes.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, f.notes.ClearCorruptNotes(ctx))
	ids, err = f.notes.CorruptNoteIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGetNote_LockedVaultIsNotCorruption(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(nil)
	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "healthy", Body: "still here"})
	require.NoError(t, err)

	f.vault.Lock()

	// No GetNotesByIDs expectation: a locked vault must not trigger the
	// refetch-retry ladder at all.
	_, err = f.notes.GetNote(ctx, id)
	assert.ErrorIs(t, err, ErrVaultLocked)

	ids, err := f.notes.CorruptNoteIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, id)

	// Unlocking again restores access to the untouched note.
	f.vault.key = append([]byte(nil), f.vaultKey...)
	note, err := f.notes.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "healthy", note.Note.Title)
}

func TestListNotes_LockedVaultFailsFast(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(nil)
	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "healthy"})
	require.NoError(t, err)

	f.vault.Lock()

	_, err = f.notes.ListNotes(ctx)
	assert.ErrorIs(t, err, ErrVaultLocked)

	ids, err := f.notes.CorruptNoteIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, id)
}

func TestListNotes_MixedFormats(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(nil)

	// One current-format note, one legacy note encrypted directly under the
	// vault key.
	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "current"})
	require.NoError(t, err)

	legacy, err := f.keys.EncryptJSON(models.PlainNote{Title: "legacy"}, f.vaultKey)
	require.NoError(t, err)
	require.NoError(t, f.local.UpsertNote(ctx, models.EncryptedNoteRecord{ID: "legacy-1", Payload: legacy, UpdatedAt: "2026-01-01T00:00:00Z"}))

	notes, err := f.notes.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	titles := map[string]string{}
	for _, n := range notes {
		titles[n.ID] = n.Note.Title
	}
	assert.Equal(t, "current", titles[id])
	assert.Equal(t, "legacy", titles["legacy-1"])
}

func TestDeleteNote(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).Return(nil)
	id, err := f.notes.SaveNote(ctx, "", models.PlainNote{Title: "doomed"})
	require.NoError(t, err)

	f.remote.EXPECT().DeleteNote(gomock.Any(), id).Return(nil)
	require.NoError(t, f.notes.DeleteNote(ctx, id))

	_, err = f.local.GetNote(ctx, id)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	_, err = f.local.GetNoteKey(ctx, id)
	assert.ErrorIs(t, err, store.ErrNoteKeyNotFound)
}

func TestListSharedNotes(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	// A shared note whose per-note key is already cached, plus one whose key
	// never arrived; the second is skipped, not fatal.
	plain := models.PlainNote{Title: "from alice", Body: "hi"}
	noteKey, err := f.keys.GenerateKey()
	require.NoError(t, err)
	payload, err := f.keys.EncryptJSON(plain, noteKey)
	require.NoError(t, err)
	wrapped, err := f.keys.EncryptBytes(noteKey, f.vaultKey)
	require.NoError(t, err)
	require.NoError(t, f.local.UpsertNoteKey(ctx, models.NoteKeyRecord{NoteID: "s1", EncryptedNoteKey: wrapped}))
	require.NoError(t, f.local.UpsertSharedNote(ctx, models.SharedEncryptedNoteRecord{
		EncryptedNoteRecord: models.EncryptedNoteRecord{ID: "s1", Payload: payload, UpdatedAt: "2026-01-01T00:00:00Z"},
		SharedFromUserID:    "alice",
		SharedGroupID:       "g1",
		Permission:          models.PermissionRead,
	}))

	orphanKey, err := f.keys.GenerateKey()
	require.NoError(t, err)
	orphan, err := f.keys.EncryptJSON(models.PlainNote{Title: "unreadable"}, orphanKey)
	require.NoError(t, err)
	require.NoError(t, f.local.UpsertSharedNote(ctx, models.SharedEncryptedNoteRecord{
		EncryptedNoteRecord: models.EncryptedNoteRecord{ID: "s2", Payload: orphan, UpdatedAt: "2026-01-02T00:00:00Z"},
	}))

	notes, err := f.notes.ListSharedNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "s1", notes[0].ID)
	assert.Equal(t, plain, notes[0].Note)
	assert.Equal(t, "g1", notes[0].SharedGroupID)
	assert.Equal(t, models.PermissionRead, notes[0].Permission)
}
