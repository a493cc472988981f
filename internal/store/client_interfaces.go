package store

import (
	"context"

	"github.com/mvolkhin/notelock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the on-device encrypted cache: a string→string meta table
// plus record tables for owned notes, shared notes, and wrapped per-note
// keys. Everything stored here is ciphertext or non-secret metadata — the
// vault key itself never passes through this interface.
type LocalStore interface {
	// GetMeta returns the value stored under key, or [ErrMetaNotFound].
	GetMeta(ctx context.Context, key string) (string, error)
	SetMeta(ctx context.Context, key, value string) error
	DeleteMeta(ctx context.Context, key string) error

	// GetNote returns an owned note by id, or [ErrNoteNotFound].
	GetNote(ctx context.Context, id string) (models.EncryptedNoteRecord, error)
	UpsertNote(ctx context.Context, rec models.EncryptedNoteRecord) error
	DeleteNote(ctx context.Context, id string) error
	// ListNotes returns all owned notes ordered by ascending updated_at.
	ListNotes(ctx context.Context) ([]models.EncryptedNoteRecord, error)

	// GetSharedNote returns a shared-with-me note by id, or [ErrNoteNotFound].
	GetSharedNote(ctx context.Context, id string) (models.SharedEncryptedNoteRecord, error)
	UpsertSharedNote(ctx context.Context, rec models.SharedEncryptedNoteRecord) error
	DeleteSharedNote(ctx context.Context, id string) error
	ListSharedNotes(ctx context.Context) ([]models.SharedEncryptedNoteRecord, error)

	// GetNoteKey returns the wrapped per-note key for noteID, or
	// [ErrNoteKeyNotFound] when the note is legacy format.
	GetNoteKey(ctx context.Context, noteID string) (models.NoteKeyRecord, error)
	UpsertNoteKey(ctx context.Context, rec models.NoteKeyRecord) error
	DeleteNoteKey(ctx context.Context, noteID string) error

	Close() error
}
