package store

import (
	"context"

	"github.com/mvolkhin/notelock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository handles server-side account persistence.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the account for email, or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository persists per-user key-derivation material and published
// box-keypair profiles. Both are opaque to the server.
type VaultRepository interface {
	// GetVaultSalt returns the base64 KDF salt for userID, or [ErrSaltNotFound].
	GetVaultSalt(ctx context.Context, userID string) (string, error)
	// PutVaultSalt stores the salt for userID, replacing any existing one,
	// and returns the stored value. Overwriting is deliberate: legacy-salt
	// promotion writes a proven old salt back as canonical.
	PutVaultSalt(ctx context.Context, userID, salt string) (string, error)

	// GetProfile returns the published keypair profile for userID, or
	// [ErrProfileNotFound].
	GetProfile(ctx context.Context, userID string) (models.ProfileRow, error)
	UpsertProfile(ctx context.Context, profile models.ProfileRow) error
	// FindProfileByEmail resolves a share recipient by email, or
	// [ErrProfileNotFound].
	FindProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error)
}

// NoteRepository stores encrypted note rows. Payloads are never inspected.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID string) ([]models.RemoteNoteRow, error)
	// ListRecentNotes returns up to limit rows ordered by descending
	// updated_at. Used by clients probing whether a vault key can still
	// decrypt the remote data set.
	ListRecentNotes(ctx context.Context, userID string, limit uint64) ([]models.RemoteNoteRow, error)
	// GetNotesByIDs returns the rows among ids that belong to userID or are
	// shared with them. Missing ids are silently omitted.
	GetNotesByIDs(ctx context.Context, userID string, ids []string) ([]models.RemoteNoteRow, error)
	UpsertNote(ctx context.Context, row models.RemoteNoteRow) error
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// GroupRepository manages groups and their membership.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	// GetGroup returns the group, or [ErrGroupNotFound].
	GetGroup(ctx context.Context, groupID string) (models.Group, error)
	AddMember(ctx context.Context, member models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
	// ListMemberKeys joins members against profiles, returning each member's
	// published box public key. Members without a profile are omitted.
	ListMemberKeys(ctx context.Context, groupID string) ([]models.GroupMemberKey, error)
}

// ShareRepository stores note shares and sealed group keys, including the
// atomic group-key rotation.
type ShareRepository interface {
	// ListSharesForUser returns shares addressed to userID directly or to any
	// group they belong to.
	ListSharesForUser(ctx context.Context, userID string) ([]models.NoteShareRow, error)
	// ListSharesForGroup returns all shares addressed to groupID.
	ListSharesForGroup(ctx context.Context, groupID string) ([]models.NoteShareRow, error)
	UpsertShare(ctx context.Context, share models.NoteShareRow) error
	DeleteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error
	// DeleteSharesForNote removes every share row for noteID.
	DeleteSharesForNote(ctx context.Context, noteID string) error

	// ListGroupKeys returns every sealed group-key row addressed to userID,
	// all versions included.
	ListGroupKeys(ctx context.Context, userID string) ([]models.GroupKeyRow, error)
	UpsertGroupKeys(ctx context.Context, rows []models.GroupKeyRow) error

	// RotateGroupKeys applies a full key rotation in one transaction: every
	// sealed key is written at the new version and every group share's
	// wrapped note key is replaced. Any failure rolls the whole rotation
	// back.
	RotateGroupKeys(ctx context.Context, req models.RotateGroupKeysRequest) error
}
