package service

import (
	"context"
	"encoding/base64"
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

const testUserID = "user-1"

func newVaultFixture(t *testing.T) (*vaultSession, *mock.MockRemoteStore, store.LocalStore, crypto.KeyChain) {
	t.Helper()

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	local, err := store.NewLocalStore(":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	keys := crypto.NewKeyChain()
	v := NewClientVaultService(local, remote, keys, logger.Nop()).(*vaultSession)
	return v, remote, local, keys
}

// seedCheckBlob writes a check blob under metaKey that opens with key.
func seedCheckBlob(t *testing.T, local store.LocalStore, keys crypto.KeyChain, metaKey string, key []byte) {
	t.Helper()
	env, err := keys.EncryptJSON(checkSentinel{OK: true}, key)
	require.NoError(t, err)
	require.NoError(t, local.SetMeta(context.Background(), metaKey, env.Encode()))
}

func TestUnlock_NotAuthenticated(t *testing.T) {
	v, remote, _, _ := newVaultFixture(t)
	remote.EXPECT().UserID().Return("")

	err := v.Unlock(context.Background(), testMasterPassword)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, v.IsUnlocked())
}

func TestUnlock_FirstTimeSetup(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	var published string
	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return("", adapter.ErrNotFound)
	remote.EXPECT().PutVaultSalt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, salt string) (string, error) {
			published = salt
			return salt, nil
		})
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return(nil, nil)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())

	// The generated salt must be published and cached locally.
	cached, err := local.GetMeta(ctx, metaKeyFor(metaVaultSalt, testUserID))
	require.NoError(t, err)
	assert.Equal(t, published, cached)

	// The check blob must open under the freshly derived key.
	raw, err := local.GetMeta(ctx, metaKeyFor(metaVaultCheck, testUserID))
	require.NoError(t, err)
	env, err := models.ParseEnvelope(raw)
	require.NoError(t, err)
	key, err := v.Key()
	require.NoError(t, err)
	var sentinel checkSentinel
	require.NoError(t, keys.DecryptJSON(env, key, &sentinel))
	assert.True(t, sentinel.OK)
}

func TestUnlock_CorrectPasswordOffline(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)
	// The probe cannot reach the server: the local check blob decides.
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return(nil, adapter.ErrNetworkUnavailable)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())

	got, err := v.Key()
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestUnlock_WrongPassword(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)

	err = v.Unlock(ctx, "not the master password")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.False(t, v.IsUnlocked())
}

func TestUnlock_WrongPasswordNoCheckBlob(t *testing.T) {
	v, remote, _, keys := newVaultFixture(t)
	ctx := context.Background()

	// A remote note encrypted under the real key: the probe must reject a
	// candidate derived from the wrong password.
	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	payload, err := keys.EncryptJSON(models.PlainNote{Title: "t"}, key)
	require.NoError(t, err)
	row := models.RemoteNoteRow{ID: "n1", Ciphertext: payload.Encode()}

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return([]models.RemoteNoteRow{row}, nil)

	err = v.Unlock(ctx, "not the master password")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestUnlock_StaleCheckBlobRejectedByProbe(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	// The check blob opens under the candidate key, but every remote note is
	// encrypted under some other key: the salt was rotated elsewhere and the
	// local check blob is stale.
	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	otherKey, err := keys.GenerateKey()
	require.NoError(t, err)
	payload, err := keys.EncryptJSON(models.PlainNote{Title: "t"}, otherKey)
	require.NoError(t, err)
	row := models.RemoteNoteRow{ID: "n1", Ciphertext: payload.Encode()}

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return([]models.RemoteNoteRow{row}, nil)

	err = v.Unlock(ctx, testMasterPassword)
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.False(t, v.IsUnlocked())
}

func TestUnlock_ProbeDecryptsWrappedKeyRow(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	// Current-format row: payload under a per-note key, per-note key wrapped
	// under the vault key.
	noteKey, err := keys.GenerateKey()
	require.NoError(t, err)
	payload, err := keys.EncryptJSON(models.PlainNote{Title: "t"}, noteKey)
	require.NoError(t, err)
	wrapped, err := keys.EncryptBytes(noteKey, key)
	require.NoError(t, err)
	row := models.RemoteNoteRow{
		ID:                "n1",
		Ciphertext:        payload.Encode(),
		NoteKeyCiphertext: wrapped.Ciphertext,
		NoteKeyIV:         wrapped.IV,
	}

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return([]models.RemoteNoteRow{row}, nil)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())
}

func TestUnlock_LegacySaltPromotion(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	// This device predates per-user salts: the real salt lives under the
	// un-namespaced meta key, while the server holds a different (useless)
	// per-user salt.
	legacySalt := []byte("fedcba9876543210")
	legacyKey, err := keys.DeriveVaultKey(testMasterPassword, legacySalt)
	require.NoError(t, err)
	require.NoError(t, local.SetMeta(ctx, legacyMetaVaultSalt, base64.StdEncoding.EncodeToString(legacySalt)))
	seedCheckBlob(t, local, keys, legacyMetaVaultCheck, legacyKey)

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return(base64.StdEncoding.EncodeToString(testSalt), nil)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return(nil, nil)
	remote.EXPECT().PutVaultSalt(gomock.Any(), base64.StdEncoding.EncodeToString(legacySalt)).
		Return(base64.StdEncoding.EncodeToString(legacySalt), nil)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())

	got, err := v.Key()
	require.NoError(t, err)
	assert.Equal(t, legacyKey, got, "unlock must land on the legacy-salt key")

	// The legacy salt is promoted to the per-user cache.
	cached, err := local.GetMeta(ctx, metaKeyFor(metaVaultSalt, testUserID))
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(legacySalt), cached)

	// And the check blob is rewritten under the per-user key.
	raw, err := local.GetMeta(ctx, metaKeyFor(metaVaultCheck, testUserID))
	require.NoError(t, err)
	env, err := models.ParseEnvelope(raw)
	require.NoError(t, err)
	var sentinel checkSentinel
	require.NoError(t, keys.DecryptJSON(env, legacyKey, &sentinel))
	assert.True(t, sentinel.OK)
}

func TestUnlock_OfflineUsesCachedSalt(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	require.NoError(t, local.SetMeta(ctx, metaKeyFor(metaVaultSalt, testUserID), base64.StdEncoding.EncodeToString(testSalt)))
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return("", adapter.ErrNetworkUnavailable)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return(nil, adapter.ErrNetworkUnavailable)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())
}

func TestUnlock_ServerErrorFallsBackToCachedSalt(t *testing.T) {
	v, remote, local, keys := newVaultFixture(t)
	ctx := context.Background()

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	require.NoError(t, local.SetMeta(ctx, metaKeyFor(metaVaultSalt, testUserID), base64.StdEncoding.EncodeToString(testSalt)))
	seedCheckBlob(t, local, keys, metaKeyFor(metaVaultCheck, testUserID), key)

	// A 5xx from the server degrades unlock the same way unreachability
	// does: cached salt plus check blob decide.
	remote.EXPECT().UserID().Return(testUserID).AnyTimes()
	remote.EXPECT().GetVaultSalt(gomock.Any()).Return("", adapter.ErrInternalServerError)
	remote.EXPECT().ListRecentNotes(gomock.Any(), probeLimit).Return(nil, adapter.ErrBadGateway)

	require.NoError(t, v.Unlock(ctx, testMasterPassword))
	assert.True(t, v.IsUnlocked())
}

func TestLock(t *testing.T) {
	v, _, _, keys := newVaultFixture(t)

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	v.key = key
	require.True(t, v.IsUnlocked())

	v.Lock()
	assert.False(t, v.IsUnlocked())
	_, err = v.Key()
	assert.ErrorIs(t, err, ErrVaultLocked)

	// Locking twice is harmless.
	v.Lock()
	assert.False(t, v.IsUnlocked())
}

func TestKey_CopySurvivesLock(t *testing.T) {
	v, _, _, keys := newVaultFixture(t)

	key, err := keys.DeriveVaultKey(testMasterPassword, testSalt)
	require.NoError(t, err)
	v.key = key

	held, err := v.Key()
	require.NoError(t, err)

	// An operation that fetched the key before the idle timer fired must not
	// end up encrypting under zeros mid-flight.
	v.Lock()
	assert.NotEqual(t, make([]byte, len(held)), held, "Lock must not zero copies already handed out")

	v.key = append([]byte(nil), held...)

	// And callers cannot corrupt the session's key through their copy.
	held[0] ^= 0xff
	again, err := v.Key()
	require.NoError(t, err)
	assert.NotEqual(t, held[0], again[0])
}
