package service

import (
	"context"
	"time"

	"github.com/mvolkhin/notelock/models"
)

// ClientAuthService handles account registration and login against the
// notelock server. It only manages the server identity (bearer token);
// vault-key derivation is the job of ClientVaultService and happens strictly
// after authentication.
type ClientAuthService interface {
	// Register creates an account for the given email and login password and
	// stores the returned bearer token in the adapter.
	Register(ctx context.Context, email, password string) error

	// Login authenticates against the server and stores the returned bearer
	// token in the adapter.
	Login(ctx context.Context, email, password string) error
}

// ClientVaultService owns the in-memory vault key and the Locked → Unlocked
// state machine. Every other client service that touches key material reads
// the key through this interface.
type ClientVaultService interface {
	// Unlock derives a candidate vault key from the master password and the
	// resolved per-user salt, verifies it against the local check blob and a
	// probe of recently updated remote notes, and on success stores the key
	// in memory.
	//
	// Returns ErrNotAuthenticated when no identity is available,
	// ErrIncorrectPassword when the derived key fails every verification
	// path. May persist a fresh salt and check blob on first unlock.
	Unlock(ctx context.Context, masterPassword string) error

	// Lock discards the in-memory vault key unconditionally. Synchronous and
	// infallible; safe to call at any time, from any state.
	Lock()

	// IsUnlocked reports whether a vault key is currently held in memory.
	IsUnlocked() bool

	// Key returns a copy of the in-memory vault key, or ErrVaultLocked when
	// none is held. A concurrent Lock does not invalidate copies already
	// handed out; callers still must not retain one past the current
	// operation.
	Key() ([]byte, error)
}

// ClientNoteKeyService manages per-note symmetric keys wrapped under the
// vault key, including the transparent legacy fallback for notes encrypted
// directly under the vault key before per-note keys existed.
type ClientNoteKeyService interface {
	// EncryptWithNoteKey encrypts plain under the note's per-note key,
	// reusing the cached key when one exists and generating plus persisting a
	// fresh one otherwise. Returns the payload envelope, the raw note key
	// (for sharing), and the wrapped-key envelope (for remote persistence).
	EncryptWithNoteKey(ctx context.Context, noteID string, plain models.PlainNote) (payload models.Envelope, noteKey []byte, wrappedKey models.Envelope, err error)

	// DecryptNotePayload decrypts payload, trying the per-note key first and
	// falling back to direct vault-key decryption for legacy payloads. A
	// stale cached note key that no longer matches the payload format is
	// deleted once the fallback succeeds. ErrDecryptionFailed is returned
	// only after every fallback is exhausted.
	DecryptNotePayload(ctx context.Context, noteID string, payload models.Envelope) (models.PlainNote, error)

	// LoadNoteKey unwraps and returns the note's raw key, or
	// ErrKeyUnavailable when no usable key record exists on this device.
	LoadNoteKey(ctx context.Context, noteID string) ([]byte, error)
}

// ClientNoteService is the plaintext-facing note API: it composes the local
// store, the remote store, and the note-key service so that callers only
// ever see decrypted notes.
type ClientNoteService interface {
	// SaveNote encrypts and persists the note locally and remotely. An empty
	// id creates a new note and returns its generated id.
	SaveNote(ctx context.Context, noteID string, plain models.PlainNote) (string, error)

	// GetNote loads and decrypts one owned note. On a decryption failure it
	// re-fetches the note and its key from the server and retries exactly
	// once; a permanent failure adds the id to the corrupt set and returns
	// ErrNoteCorrupt.
	GetNote(ctx context.Context, noteID string) (models.DecryptedNote, error)

	// ListNotes decrypts every owned note outside the corrupt set. Per-note
	// failures never abort the listing: after the single recovery retry a
	// failing note joins the corrupt set and is skipped.
	ListNotes(ctx context.Context) ([]models.DecryptedNote, error)

	// ListSharedNotes decrypts every note shared with this user, tagged with
	// origin group and permission. Per-note failures are skipped.
	ListSharedNotes(ctx context.Context) ([]models.DecryptedNote, error)

	// DeleteNote removes the note locally and remotely, along with its
	// cached key.
	DeleteNote(ctx context.Context, noteID string) error

	// CorruptNoteIDs returns the persisted set of note ids excluded from
	// listings after unrecoverable decryption failures.
	CorruptNoteIDs(ctx context.Context) ([]string, error)

	// ClearCorruptNotes empties the corrupt set so excluded notes become
	// eligible for listing again.
	ClearCorruptNotes(ctx context.Context) error
}

// ClientProfileService manages the per-user X25519 box keypair used for
// direct sharing and for receiving sealed group keys. The private half only
// ever exists in the clear in memory; at rest it is AEAD-encrypted under the
// vault key.
type ClientProfileService interface {
	// EnsureProfileKeys publishes a box keypair for the current user if none
	// exists yet. Idempotent; called lazily after unlock.
	EnsureProfileKeys(ctx context.Context) error

	// LoadBoxKeypair fetches the published profile and decrypts the private
	// half under the vault key.
	LoadBoxKeypair(ctx context.Context) (publicKey, privateKey []byte, err error)
}

// GroupKey is one decrypted group key as held by a member device.
type GroupKey struct {
	Key     []byte
	Version int64
}

// ClientGroupService owns the group-key lifecycle: creation, distribution to
// members via sealed boxes, and rotation.
type ClientGroupService interface {
	// CreateGroup creates the group, the owner membership, and a fresh group
	// key sealed to the owner at version 1.
	CreateGroup(ctx context.Context, name string) (models.Group, error)

	// LoadMyGroupKeys opens every sealed group key addressed to the caller
	// and returns, per group, the highest version observed. Rows that cannot
	// be opened are skipped.
	LoadMyGroupKeys(ctx context.Context) (map[string]GroupKey, error)

	// InviteMember resolves the invitee by email, records the membership,
	// and seals the current group key to the invitee's public key. The
	// invitee needs no interaction to receive access.
	InviteMember(ctx context.Context, groupID, email string) error

	// RemoveMember drops the membership row. Access is actually revoked only
	// by the following RotateGroupKey call.
	RemoveMember(ctx context.Context, groupID, userID string) error

	// RotateGroupKey generates a fresh group key at version+1, seals it to
	// every current member, re-wraps every group share's note key under the
	// new key, and applies the whole result through the server's atomic
	// rotate operation. If any shared note's raw key cannot be recovered on
	// this device the entire rotation is aborted with ErrKeyUnavailable.
	RotateGroupKey(ctx context.Context, groupID string) error
}

// ClientShareService wraps note keys for recipients: symmetrically under a
// group key, or asymmetrically sealed to an individual's public key.
type ClientShareService interface {
	// ShareNoteToGroup wraps the note key under the group key and upserts a
	// share row tagged with the group key version. A note still in legacy
	// format is transparently upgraded to the per-note-key format first.
	ShareNoteToGroup(ctx context.Context, noteID, groupID, permission string) error

	// ShareNoteToUser seals the note key to the recipient resolved by email.
	// No version tracking: each user share is independently re-sealable.
	ShareNoteToUser(ctx context.Context, noteID, email, permission string) error

	// RemoveNoteShare revokes one share grant.
	RemoveNoteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error
}

// SyncStats counts the outcome of one SyncDown pass.
type SyncStats struct {
	Rows         int
	Imported     int
	KeysUpserted int
	SkippedOlder int
	SkippedBad   int
}

// ClientSyncService reconciles the local encrypted store with the remote
// one. It never decrypts note content during reconciliation of owned notes;
// it only compares envelopes and timestamps.
type ClientSyncService interface {
	// SyncDown merges all remote owned-note rows into the local store using
	// last-write-wins timestamp precedence; the remote copy wins on a
	// strictly greater instant or on any unparsable timestamp. Note keys
	// carried by remote rows are upserted independently of the payload
	// decision.
	SyncDown(ctx context.Context) (SyncStats, error)

	// SyncDownShared reconciles the shared-with-me set against the currently
	// visible share grants: it opens the first openable grant per note,
	// caches the note key under the vault key, and deletes local copies of
	// notes whose grants disappeared (keeping the key when the device owns
	// the note outright).
	SyncDownShared(ctx context.Context) error

	// FullSync runs SyncDown then SyncDownShared, returning the first error
	// after both have been attempted.
	FullSync(ctx context.Context) error
}

// ClientSyncJob is the periodic background sync worker. A tick is skipped
// entirely when the previous pass has not finished; there is no queuing and
// no cancellation of an in-flight pass.
type ClientSyncJob interface {
	// Start launches the background goroutine, stopping any previous one
	// first. A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()
}

// ClientIdleLocker locks the vault after a period of inactivity. Expiry
// calls Lock unconditionally, which is safe from any point because locking
// only clears the in-memory key.
type ClientIdleLocker interface {
	// Start arms the idle timer. A non-positive timeout disables autolock.
	Start(ctx context.Context, timeout time.Duration)

	// Touch registers user activity and resets the timer.
	Touch()

	// Stop disarms the timer without locking.
	Stop()
}
