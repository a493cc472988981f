package store

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all encrypted-note CRUD operations against the
// "encrypted_notes" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id, row counts).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListNotes retrieves every encrypted note owned by userID, ordered by
// ascending updated_at.
func (r *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.RemoteNoteRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Str("user_id", userID).
			Msg("failed to build query")
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.ListNotes", query, args...)
}

// ListRecentNotes retrieves up to limit encrypted notes owned by userID,
// ordered by descending updated_at. Clients use this as a small probe set to
// check whether their derived vault key still decrypts the remote data.
func (r *noteRepository) ListRecentNotes(ctx context.Context, userID string, limit uint64) ([]models.RemoteNoteRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentNotesQuery(userID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListRecentNotes").
			Str("user_id", userID).
			Msg("failed to build query")
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.ListRecentNotes", query, args...)
}

// GetNotesByIDs retrieves the rows among ids that userID owns or can reach
// through a share. Missing or unreachable ids are silently omitted, so the
// result may be shorter than the request.
func (r *noteRepository) GetNotesByIDs(ctx context.Context, userID string, ids []string) ([]models.RemoteNoteRow, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.RemoteNoteRow{}, nil
	}

	query, args, err := buildGetNotesByIDsQuery(userID, ids)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNotesByIDs").
			Str("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to build query")
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.GetNotesByIDs", query, args...)
}

func (r *noteRepository) queryNotes(ctx context.Context, funcName, query string, args ...any) ([]models.RemoteNoteRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute query for encrypted notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RemoteNoteRow, 0, 50)

	for rows.Next() {
		var row models.RemoteNoteRow

		scanErr := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.Title,
			&row.Ciphertext,
			&row.NoteKeyCiphertext,
			&row.NoteKeyIV,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan encrypted note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpsertNote inserts or replaces one encrypted note row. The conflict guard
// keeps the row untouched when the id exists under a different owner, so a
// client cannot overwrite somebody else's note by guessing its id.
func (r *noteRepository) UpsertNote(ctx context.Context, row models.RemoteNoteRow) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertEncryptedNote,
		row.ID,
		row.UserID,
		row.Title,
		row.Ciphertext,
		row.NoteKeyCiphertext,
		row.NoteKeyIV,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpsertNote").
			Str("user_id", row.UserID).
			Str("note_id", row.ID).
			Msg("failed to upsert encrypted note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteNote removes the encrypted note and all its share rows. Deleting a
// note that does not exist, or that the caller does not own, is a no-op.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deleteEncryptedNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to delete encrypted note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// Only drop the shares when the note row was actually removed: a delete
	// issued by a non-owner must not strip the owner's shares.
	if affected, _ := res.RowsAffected(); affected > 0 {
		if _, err := tx.ExecContext(ctx, deleteNoteShares, noteID); err != nil {
			log.Err(err).
				Str("func", "noteRepository.DeleteNote").
				Str("note_id", noteID).
				Msg("failed to delete note shares")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return nil
}
