package store

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository], covering the "note_shares" and "group_keys" tables.
// It also hosts the transactional group-key rotation.
type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSharesForUser retrieves every share addressed to userID directly or to
// any group they belong to, ordered by creation time.
func (r *shareRepository) ListSharesForUser(ctx context.Context, userID string) ([]models.NoteShareRow, error) {
	return r.queryShares(ctx, "shareRepository.ListSharesForUser", listSharesForUser, userID)
}

// ListSharesForGroup retrieves every share addressed to groupID. Used when
// inviting a member (their sealed key must cover existing shares) and during
// rotation.
func (r *shareRepository) ListSharesForGroup(ctx context.Context, groupID string) ([]models.NoteShareRow, error) {
	return r.queryShares(ctx, "shareRepository.ListSharesForGroup", listSharesForGroup, groupID)
}

func (r *shareRepository) queryShares(ctx context.Context, funcName, query string, args ...any) ([]models.NoteShareRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute query for note shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.NoteShareRow, 0, 16)

	for rows.Next() {
		var s models.NoteShareRow

		scanErr := rows.Scan(
			&s.NoteID,
			&s.SharedWithType,
			&s.SharedWithID,
			&s.Permission,
			&s.WrappedNoteKey,
			&s.WrappedNoteKeyIV,
			&s.KeyVersion,
			&s.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan note share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		shares = append(shares, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

// UpsertShare inserts or replaces one share row, keyed by
// (note_id, shared_with_type, shared_with_id).
func (r *shareRepository) UpsertShare(ctx context.Context, share models.NoteShareRow) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertNoteShare,
		share.NoteID,
		share.SharedWithType,
		share.SharedWithID,
		share.Permission,
		share.WrappedNoteKey,
		share.WrappedNoteKeyIV,
		share.KeyVersion,
	)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.UpsertShare").
			Str("note_id", share.NoteID).
			Str("shared_with_id", share.SharedWithID).
			Msg("failed to upsert note share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteShare removes one share row. Deleting an absent share is a no-op.
func (r *shareRepository) DeleteShare(ctx context.Context, noteID, sharedWithType, sharedWithID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteNoteShare, noteID, sharedWithType, sharedWithID); err != nil {
		log.Err(err).
			Str("func", "shareRepository.DeleteShare").
			Str("note_id", noteID).
			Str("shared_with_id", sharedWithID).
			Msg("failed to delete note share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSharesForNote removes every share row for noteID.
func (r *shareRepository) DeleteSharesForNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteNoteShares, noteID); err != nil {
		log.Err(err).
			Str("func", "shareRepository.DeleteSharesForNote").
			Str("note_id", noteID).
			Msg("failed to delete note shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListGroupKeys retrieves every sealed group-key row addressed to userID,
// all versions included. The client picks the highest version per group.
func (r *shareRepository) ListGroupKeys(ctx context.Context, userID string) ([]models.GroupKeyRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listGroupKeysForUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.ListGroupKeys").
			Str("user_id", userID).
			Msg("failed to execute query for group keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.GroupKeyRow, 0, 8)

	for rows.Next() {
		var k models.GroupKeyRow
		if scanErr := rows.Scan(&k.GroupID, &k.UserID, &k.SealedGroupKey, &k.KeyVersion); scanErr != nil {
			log.Err(scanErr).
				Str("func", "shareRepository.ListGroupKeys").
				Str("user_id", userID).
				Msg("failed to scan group key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, k)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "shareRepository.ListGroupKeys").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

// UpsertGroupKeys writes a batch of sealed group-key rows inside a single
// transaction using a prepared statement. Used at group creation and when
// inviting a member.
func (r *shareRepository) UpsertGroupKeys(ctx context.Context, keyRows []models.GroupKeyRow) error {
	log := logger.FromContext(ctx)

	if len(keyRows) == 0 {
		log.Warn().
			Str("func", "shareRepository.UpsertGroupKeys").
			Msg("no group key rows provided")
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.UpsertGroupKeys").
			Int("count", len(keyRows)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertGroupKey)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.UpsertGroupKeys").
			Int("count", len(keyRows)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer stmt.Close()

	for idx, row := range keyRows {
		if _, execErr := stmt.ExecContext(ctx, row.GroupID, row.UserID, row.SealedGroupKey, row.KeyVersion); execErr != nil {
			log.Err(execErr).
				Str("func", "shareRepository.UpsertGroupKeys").
				Int("iteration", idx+1).
				Str("group_id", row.GroupID).
				Str("user_id", row.UserID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "shareRepository.UpsertGroupKeys").
			Int("count", len(keyRows)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return nil
}

// RotateGroupKeys applies a full key rotation atomically: every member's
// sealed key is written at the new version, then every group share's wrapped
// note key is replaced with its rewrapped form. The transaction is rolled
// back on any failure — a partial rotation would leave members holding a key
// version that cannot open the shares.
func (r *shareRepository) RotateGroupKeys(ctx context.Context, req models.RotateGroupKeysRequest) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.RotateGroupKeys").
			Str("group_id", req.GroupID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	keyStmt, err := tx.PrepareContext(ctx, upsertGroupKey)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.RotateGroupKeys").
			Str("group_id", req.GroupID).
			Msg("failed to prepare group key statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer keyStmt.Close()

	for idx, sealed := range req.SealedGroupKeys {
		log.Debug().
			Str("func", "shareRepository.RotateGroupKeys").
			Int("iteration", idx+1).
			Int("total", len(req.SealedGroupKeys)).
			Str("group_id", req.GroupID).
			Str("user_id", sealed.UserID).
			Msg("writing sealed group key in transaction")

		_, execErr := keyStmt.ExecContext(ctx, req.GroupID, sealed.UserID, sealed.SealedGroupKey, req.NewKeyVersion)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "shareRepository.RotateGroupKeys").
				Int("iteration", idx+1).
				Str("user_id", sealed.UserID).
				Msg("failed to write sealed group key")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	shareStmt, err := tx.PrepareContext(ctx, rotateRewrapShare)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.RotateGroupKeys").
			Str("group_id", req.GroupID).
			Msg("failed to prepare share rewrap statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer shareStmt.Close()

	for idx, share := range req.RewrappedShares {
		log.Debug().
			Str("func", "shareRepository.RotateGroupKeys").
			Int("iteration", idx+1).
			Int("total", len(req.RewrappedShares)).
			Str("note_id", share.NoteID).
			Msg("rewrapping note share in transaction")

		_, execErr := shareStmt.ExecContext(ctx,
			share.WrappedNoteKey,
			share.WrappedNoteKeyIV,
			req.NewKeyVersion,
			share.NoteID,
			share.SharedWithType,
			share.SharedWithID,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "shareRepository.RotateGroupKeys").
				Int("iteration", idx+1).
				Str("note_id", share.NoteID).
				Msg("failed to rewrap note share")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "shareRepository.RotateGroupKeys").
			Str("group_id", req.GroupID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	log.Info().
		Str("func", "shareRepository.RotateGroupKeys").
		Str("group_id", req.GroupID).
		Int64("new_key_version", req.NewKeyVersion).
		Int("sealed_keys", len(req.SealedGroupKeys)).
		Int("rewrapped_shares", len(req.RewrappedShares)).
		Msg("group key rotation committed")

	return nil
}
