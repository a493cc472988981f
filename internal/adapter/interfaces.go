// Package adapter provides transport-layer abstractions for communicating
// with the notelock server.
//
// The primary abstraction is [RemoteStore], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// Failures where no response arrived at all are wrapped in
// [ErrNetworkUnavailable].
package adapter

import (
	"context"

	"github.com/mvolkhin/notelock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the notelock
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Except for Register and Login, every method requires a bearer token to
// have been set; the server infers the acting user from it.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// UserID returns the authenticated user's id extracted from the bearer
	// token, or an empty string before login.
	UserID() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetVaultSalt fetches the caller's published KDF salt. Returns
	// [ErrNotFound] when no salt has been published yet.
	GetVaultSalt(ctx context.Context) (string, error)
	// PutVaultSalt publishes salt, replacing any previously stored one, and
	// returns the value the server now holds.
	PutVaultSalt(ctx context.Context, salt string) (string, error)

	ListNotes(ctx context.Context) ([]models.RemoteNoteRow, error)
	// ListRecentNotes fetches up to limit notes ordered by most recent
	// update, used as a probe set for vault-key validity checks.
	ListRecentNotes(ctx context.Context, limit int) ([]models.RemoteNoteRow, error)
	// GetNotesByIDs fetches the requested note rows; unreachable ids are
	// silently omitted from the result.
	GetNotesByIDs(ctx context.Context, ids []string) ([]models.RemoteNoteRow, error)
	UpsertNote(ctx context.Context, row models.RemoteNoteRow) error
	DeleteNote(ctx context.Context, noteID string) error

	// GetProfile fetches the caller's published box-keypair profile, or
	// [ErrNotFound].
	GetProfile(ctx context.Context) (models.ProfileRow, error)
	PutProfile(ctx context.Context, profile models.ProfileRow) error
	// LookupProfileByEmail resolves a share recipient, or [ErrNotFound].
	LookupProfileByEmail(ctx context.Context, email string) (models.ProfileRow, error)

	// CreateGroup creates a group owned by the caller.
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	AddGroupMember(ctx context.Context, groupID, userID, role string) error
	RemoveGroupMember(ctx context.Context, groupID, userID string) error
	// ListGroupMemberKeys returns each member's published box public key.
	ListGroupMemberKeys(ctx context.Context, groupID string) ([]models.GroupMemberKey, error)
	// ListGroupShares returns every share addressed to groupID.
	ListGroupShares(ctx context.Context, groupID string) ([]models.NoteShareRow, error)

	// ListGroupKeys returns every sealed group-key row addressed to the
	// caller, all versions included.
	ListGroupKeys(ctx context.Context) ([]models.GroupKeyRow, error)
	UpsertGroupKeys(ctx context.Context, rows []models.GroupKeyRow) error

	// ListShares returns every share addressed to the caller directly or
	// through group membership.
	ListShares(ctx context.Context) ([]models.NoteShareRow, error)
	UpsertShare(ctx context.Context, share models.NoteShareRow) error
	DeleteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error

	// RotateGroupKeys submits a complete group-key rotation; the server
	// applies it atomically.
	RotateGroupKeys(ctx context.Context, req models.RotateGroupKeysRequest) error
}
