package service

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

// defaultRecentLimit caps the recent-notes probe when the client sends no or
// an absurd limit.
const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

type noteStoreService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService stores encrypted note rows blindly. Ciphertext is validated
// for envelope shape only; the server can never decrypt it.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteStoreService{noteRepository: noteRepository, logger: logger}
}

// ListNotes implements NoteService.
func (n *noteStoreService) ListNotes(ctx context.Context, userID string) ([]models.RemoteNoteRow, error) {
	rows, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return rows, nil
}

// ListRecentNotes implements NoteService.
func (n *noteStoreService) ListRecentNotes(ctx context.Context, userID string, limit int) ([]models.RemoteNoteRow, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := n.noteRepository.ListRecentNotes(ctx, userID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent notes: %w", err)
	}
	return rows, nil
}

// GetNotesByIDs implements NoteService. Ids the caller cannot reach are
// silently omitted by the repository query.
func (n *noteStoreService) GetNotesByIDs(ctx context.Context, userID string, ids []string) ([]models.RemoteNoteRow, error) {
	if len(ids) == 0 {
		return []models.RemoteNoteRow{}, nil
	}

	rows, err := n.noteRepository.GetNotesByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get notes by ids: %w", err)
	}
	return rows, nil
}

// UpsertNote implements NoteService. The row is always stored under the
// caller's id; the repository's conflict guard keeps a caller from
// overwriting another user's note by guessing its id.
func (n *noteStoreService) UpsertNote(ctx context.Context, userID string, row models.RemoteNoteRow) error {
	log := logger.FromContext(ctx)

	if row.ID == "" || row.Ciphertext == "" {
		log.Error().Str("func", "UpsertNote").Str("user_id", userID).Msg("invalid note row submitted")
		return ErrInvalidDataProvided
	}
	if _, err := models.ParseEnvelope(row.Ciphertext); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	row.UserID = userID
	if err := n.noteRepository.UpsertNote(ctx, row); err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

// DeleteNote implements NoteService.
func (n *noteStoreService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if noteID == "" {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
