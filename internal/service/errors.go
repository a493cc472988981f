package service

import (
	"errors"

	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/models"
)

// Client-side error taxonomy. Callers match with errors.Is; every fallback
// path in the vault and note-key services ends in exactly one of these.
var (
	// ErrNotAuthenticated means no signed-in identity is available. Fatal:
	// the user must log in again before any vault operation can proceed.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrVaultLocked means the operation needs the vault key but the
	// session is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrIncorrectPassword means the derived key failed every verification
	// path (check blob, legacy salt, remote probe). Recoverable by retrying
	// with a different password.
	ErrIncorrectPassword = errors.New("incorrect master password")

	// ErrKeyUnavailable means a share or rotation operation needs a note or
	// group key this device cannot recover. Fatal for that operation only;
	// the user must first open the note on a device that holds the key.
	ErrKeyUnavailable = errors.New("required key is not available on this device")

	// ErrNoteCorrupt marks a note that failed decryption after the remote
	// recovery retry. The id is persisted in the corrupt set and the note is
	// excluded from listings until the set is cleared.
	ErrNoteCorrupt = errors.New("note is corrupt")
)

// Re-exported so service callers do not need to import the crypto package to
// classify failures.
var (
	ErrDecryptionFailed  = crypto.ErrDecryptionFailed
	ErrMalformedEnvelope = models.ErrMalformedEnvelope
)

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotGroupOwner   = errors.New("caller does not own the group")
	ErrNotGroupMember  = errors.New("caller is not a member of the group")
	ErrInvalidShareRow = errors.New("invalid share row")
)
