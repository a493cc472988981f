package store

// Schema and queries for the client-side SQLite cache. Mirrors the remote
// wire format: payloads are stored as separate iv/ciphertext columns, both
// base64, and timestamps as RFC3339 text so unparsable values survive
// round-trips untouched.
const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notes (
			id         TEXT PRIMARY KEY,
			iv         TEXT NOT NULL,
			ciphertext TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS notes_by_updated_at ON notes (updated_at);

		CREATE TABLE IF NOT EXISTS shared_notes (
			id                  TEXT PRIMARY KEY,
			iv                  TEXT NOT NULL,
			ciphertext          TEXT NOT NULL,
			created_at          TEXT NOT NULL,
			updated_at          TEXT NOT NULL,
			shared_from_user_id TEXT NOT NULL DEFAULT '',
			shared_group_id     TEXT NOT NULL DEFAULT '',
			permission          TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS shared_notes_by_updated_at ON shared_notes (updated_at);
		CREATE INDEX IF NOT EXISTS shared_notes_by_group ON shared_notes (shared_group_id);

		CREATE TABLE IF NOT EXISTS note_keys (
			note_id    TEXT PRIMARY KEY,
			iv         TEXT NOT NULL,
			ciphertext TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS note_keys_by_updated_at ON note_keys (updated_at);`

	getMetaValue    = `SELECT value FROM meta WHERE key = $1;`
	upsertMetaValue = `
		INSERT INTO meta (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	deleteMetaValue = `DELETE FROM meta WHERE key = $1;`

	getLocalNote = `
		SELECT id, iv, ciphertext, created_at, updated_at
		FROM notes WHERE id = $1;`
	upsertLocalNote = `
		INSERT INTO notes (id, iv, ciphertext, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			iv         = excluded.iv,
			ciphertext = excluded.ciphertext,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`
	deleteLocalNote = `DELETE FROM notes WHERE id = $1;`
	listLocalNotes  = `
		SELECT id, iv, ciphertext, created_at, updated_at
		FROM notes ORDER BY updated_at ASC;`

	getLocalSharedNote = `
		SELECT id, iv, ciphertext, created_at, updated_at,
		       shared_from_user_id, shared_group_id, permission
		FROM shared_notes WHERE id = $1;`
	upsertLocalSharedNote = `
		INSERT INTO shared_notes (
			id, iv, ciphertext, created_at, updated_at,
			shared_from_user_id, shared_group_id, permission
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			iv                  = excluded.iv,
			ciphertext          = excluded.ciphertext,
			created_at          = excluded.created_at,
			updated_at          = excluded.updated_at,
			shared_from_user_id = excluded.shared_from_user_id,
			shared_group_id     = excluded.shared_group_id,
			permission          = excluded.permission;`
	deleteLocalSharedNote = `DELETE FROM shared_notes WHERE id = $1;`
	listLocalSharedNotes  = `
		SELECT id, iv, ciphertext, created_at, updated_at,
		       shared_from_user_id, shared_group_id, permission
		FROM shared_notes ORDER BY updated_at ASC;`

	getLocalNoteKey = `
		SELECT note_id, iv, ciphertext, created_at, updated_at
		FROM note_keys WHERE note_id = $1;`
	upsertLocalNoteKey = `
		INSERT INTO note_keys (note_id, iv, ciphertext, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (note_id) DO UPDATE SET
			iv         = excluded.iv,
			ciphertext = excluded.ciphertext,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`
	deleteLocalNoteKey = `DELETE FROM note_keys WHERE note_id = $1;`
)
