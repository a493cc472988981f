package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// localSQLiteStore is the SQLite-backed implementation of [LocalStore].
type localSQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStore opens (creating if necessary) the client-side SQLite cache
// at dbPath and bootstraps the schema. Pass ":memory:" for an ephemeral
// store, used by tests and the --no-persist mode.
func NewLocalStore(dbPath string, log *logger.Logger) (LocalStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("create local store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	// SQLite allows one writer; the client is single-writer by design, so a
	// single connection avoids SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createClientSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap local schema: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("local store opened")
	return &localSQLiteStore{db: db, logger: log}, nil
}

func (s *localSQLiteStore) Close() error {
	return s.db.Close()
}

func (s *localSQLiteStore) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getMetaValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMetaNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func (s *localSQLiteStore) SetMeta(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertMetaValue, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) DeleteMeta(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteMetaValue, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) GetNote(ctx context.Context, id string) (models.EncryptedNoteRecord, error) {
	var rec models.EncryptedNoteRecord
	err := s.db.QueryRowContext(ctx, getLocalNote, id).Scan(
		&rec.ID, &rec.Payload.IV, &rec.Payload.Ciphertext, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedNoteRecord{}, ErrNoteNotFound
	}
	if err != nil {
		return models.EncryptedNoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

func (s *localSQLiteStore) UpsertNote(ctx context.Context, rec models.EncryptedNoteRecord) error {
	_, err := s.db.ExecContext(ctx, upsertLocalNote,
		rec.ID, rec.Payload.IV, rec.Payload.Ciphertext, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalNote, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) ListNotes(ctx context.Context) ([]models.EncryptedNoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, listLocalNotes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.EncryptedNoteRecord, 0, 32)
	for rows.Next() {
		var rec models.EncryptedNoteRecord
		if err := rows.Scan(&rec.ID, &rec.Payload.IV, &rec.Payload.Ciphertext, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return notes, nil
}

func (s *localSQLiteStore) GetSharedNote(ctx context.Context, id string) (models.SharedEncryptedNoteRecord, error) {
	var rec models.SharedEncryptedNoteRecord
	err := s.db.QueryRowContext(ctx, getLocalSharedNote, id).Scan(
		&rec.ID, &rec.Payload.IV, &rec.Payload.Ciphertext, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.SharedFromUserID, &rec.SharedGroupID, &rec.Permission,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SharedEncryptedNoteRecord{}, ErrNoteNotFound
	}
	if err != nil {
		return models.SharedEncryptedNoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

func (s *localSQLiteStore) UpsertSharedNote(ctx context.Context, rec models.SharedEncryptedNoteRecord) error {
	_, err := s.db.ExecContext(ctx, upsertLocalSharedNote,
		rec.ID, rec.Payload.IV, rec.Payload.Ciphertext, rec.CreatedAt, rec.UpdatedAt,
		rec.SharedFromUserID, rec.SharedGroupID, rec.Permission,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) DeleteSharedNote(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalSharedNote, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) ListSharedNotes(ctx context.Context) ([]models.SharedEncryptedNoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, listLocalSharedNotes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.SharedEncryptedNoteRecord, 0, 16)
	for rows.Next() {
		var rec models.SharedEncryptedNoteRecord
		err := rows.Scan(
			&rec.ID, &rec.Payload.IV, &rec.Payload.Ciphertext, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.SharedFromUserID, &rec.SharedGroupID, &rec.Permission,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return notes, nil
}

func (s *localSQLiteStore) GetNoteKey(ctx context.Context, noteID string) (models.NoteKeyRecord, error) {
	var rec models.NoteKeyRecord
	err := s.db.QueryRowContext(ctx, getLocalNoteKey, noteID).Scan(
		&rec.NoteID, &rec.EncryptedNoteKey.IV, &rec.EncryptedNoteKey.Ciphertext, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NoteKeyRecord{}, ErrNoteKeyNotFound
	}
	if err != nil {
		return models.NoteKeyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

func (s *localSQLiteStore) UpsertNoteKey(ctx context.Context, rec models.NoteKeyRecord) error {
	_, err := s.db.ExecContext(ctx, upsertLocalNoteKey,
		rec.NoteID, rec.EncryptedNoteKey.IV, rec.EncryptedNoteKey.Ciphertext, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *localSQLiteStore) DeleteNoteKey(ctx context.Context, noteID string) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalNoteKey, noteID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
