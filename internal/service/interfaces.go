package service

import (
	"context"

	"github.com/mvolkhin/notelock/models"
)

// Server-side services. The server is a blind store: it never inspects
// ciphertext beyond shape and enforces only row-level authorization — a user
// reaches their own rows, shares addressed to them, and groups they belong
// to. The acting user id always comes from the verified bearer token, never
// from the request body.

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService stores per-user KDF salts and published box-keypair profiles.
type VaultService interface {
	GetSalt(ctx context.Context, userID string) (string, error)
	PutSalt(ctx context.Context, userID, salt string) (string, error)

	GetProfile(ctx context.Context, userID string) (models.ProfileRow, error)
	UpsertProfile(ctx context.Context, userID string, profile models.ProfileRow) error
	LookupProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error)
}

// NoteService stores encrypted note rows on behalf of their owners.
type NoteService interface {
	ListNotes(ctx context.Context, userID string) ([]models.RemoteNoteRow, error)
	ListRecentNotes(ctx context.Context, userID string, limit int) ([]models.RemoteNoteRow, error)
	GetNotesByIDs(ctx context.Context, userID string, ids []string) ([]models.RemoteNoteRow, error)
	UpsertNote(ctx context.Context, userID string, row models.RemoteNoteRow) error
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// GroupService manages groups, membership, and the atomic key rotation.
type GroupService interface {
	CreateGroup(ctx context.Context, ownerID, name string) (models.Group, error)
	AddMember(ctx context.Context, callerID, groupID, userID, role string) error
	RemoveMember(ctx context.Context, callerID, groupID, userID string) error
	ListMemberKeys(ctx context.Context, callerID, groupID string) ([]models.GroupMemberKey, error)
	ListGroupShares(ctx context.Context, callerID, groupID string) ([]models.NoteShareRow, error)
	RotateGroupKeys(ctx context.Context, callerID string, req models.RotateGroupKeysRequest) error
}

// ShareService stores note shares and sealed group keys.
type ShareService interface {
	ListShares(ctx context.Context, userID string) ([]models.NoteShareRow, error)
	UpsertShare(ctx context.Context, callerID string, share models.NoteShareRow) error
	DeleteShare(ctx context.Context, callerID, noteID, sharedWithType, sharedWithID string) error

	ListGroupKeys(ctx context.Context, userID string) ([]models.GroupKeyRow, error)
	UpsertGroupKeys(ctx context.Context, callerID string, rows []models.GroupKeyRow) error
}
