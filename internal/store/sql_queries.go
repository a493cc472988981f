package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	getVaultSalt = `SELECT salt FROM vault_kdf WHERE user_id = $1;`

	// Last writer wins: a client promoting its legacy salt must be able to
	// replace the stored one. The RETURNING clause hands the stored value
	// back so the client and server agree on the canonical salt.
	putVaultSalt = `INSERT INTO vault_kdf (user_id, salt)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET salt = excluded.salt
    RETURNING salt;`

	getProfile = `SELECT user_id, email, display_name, box_public_key, enc_box_secret_key, enc_box_secret_key_iv
    FROM profiles
    WHERE user_id = $1;`

	findProfileByEmail = `SELECT user_id, email, display_name, box_public_key, enc_box_secret_key, enc_box_secret_key_iv
    FROM profiles
    WHERE email = $1;`

	upsertProfile = `INSERT INTO profiles (user_id, email, display_name, box_public_key, enc_box_secret_key, enc_box_secret_key_iv)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (user_id) DO UPDATE SET
        email                 = excluded.email,
        display_name          = excluded.display_name,
        box_public_key        = excluded.box_public_key,
        enc_box_secret_key    = excluded.enc_box_secret_key,
        enc_box_secret_key_iv = excluded.enc_box_secret_key_iv;`

	upsertEncryptedNote = `INSERT INTO encrypted_notes (
        id,
        user_id,
        title,
        ciphertext,
        note_key_ciphertext,
        note_key_iv,
        created_at,
        updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    ON CONFLICT (id) DO UPDATE SET
        title               = excluded.title,
        ciphertext          = excluded.ciphertext,
        note_key_ciphertext = excluded.note_key_ciphertext,
        note_key_iv         = excluded.note_key_iv,
        updated_at          = excluded.updated_at
    WHERE encrypted_notes.user_id = excluded.user_id;`

	deleteEncryptedNote = `DELETE FROM encrypted_notes WHERE id = $1 AND user_id = $2;`

	createGroup = `INSERT INTO groups (id, name, owner_id)
    VALUES ($1, $2, $3)
    RETURNING id, name, owner_id;`

	getGroup = `SELECT id, name, owner_id FROM groups WHERE id = $1;`

	addGroupMember = `INSERT INTO group_members (group_id, user_id, role)
    VALUES ($1, $2, $3)
    ON CONFLICT (group_id, user_id) DO UPDATE SET role = excluded.role;`

	removeGroupMember = `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2;`

	listGroupMembers = `SELECT group_id, user_id, role
    FROM group_members
    WHERE group_id = $1
    ORDER BY user_id;`

	listGroupMemberKeys = `SELECT m.user_id, p.box_public_key
    FROM group_members m
    JOIN profiles p ON p.user_id = m.user_id
    WHERE m.group_id = $1
    ORDER BY m.user_id;`

	listSharesForUser = `SELECT s.note_id, s.shared_with_type, s.shared_with_id, s.permission,
           s.wrapped_note_key, s.wrapped_note_key_iv, s.key_version, s.created_at
    FROM note_shares s
    WHERE (s.shared_with_type = 'user' AND s.shared_with_id = $1)
       OR (s.shared_with_type = 'group' AND s.shared_with_id IN (
            SELECT group_id FROM group_members WHERE user_id = $1))
    ORDER BY s.created_at;`

	listSharesForGroup = `SELECT note_id, shared_with_type, shared_with_id, permission,
           wrapped_note_key, wrapped_note_key_iv, key_version, created_at
    FROM note_shares
    WHERE shared_with_type = 'group' AND shared_with_id = $1
    ORDER BY note_id;`

	upsertNoteShare = `INSERT INTO note_shares (
        note_id,
        shared_with_type,
        shared_with_id,
        permission,
        wrapped_note_key,
        wrapped_note_key_iv,
        key_version
    ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (note_id, shared_with_type, shared_with_id) DO UPDATE SET
        permission          = excluded.permission,
        wrapped_note_key    = excluded.wrapped_note_key,
        wrapped_note_key_iv = excluded.wrapped_note_key_iv,
        key_version         = excluded.key_version;`

	deleteNoteShare = `DELETE FROM note_shares
    WHERE note_id = $1 AND shared_with_type = $2 AND shared_with_id = $3;`

	deleteNoteShares = `DELETE FROM note_shares WHERE note_id = $1;`

	listGroupKeysForUser = `SELECT group_id, user_id, sealed_group_key, key_version
    FROM group_keys
    WHERE user_id = $1
    ORDER BY group_id, key_version;`

	upsertGroupKey = `INSERT INTO group_keys (group_id, user_id, sealed_group_key, key_version)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (group_id, user_id, key_version) DO UPDATE SET
        sealed_group_key = excluded.sealed_group_key;`

	// Rotation rewrap targets only the group's own shares; user shares keep
	// their sealed-box blobs.
	rotateRewrapShare = `UPDATE note_shares
    SET wrapped_note_key    = $1,
        wrapped_note_key_iv = $2,
        key_version         = $3
    WHERE note_id = $4 AND shared_with_type = $5 AND shared_with_id = $6;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListNotesQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "user_id", "title", "ciphertext", "note_key_ciphertext", "note_key_iv", "created_at", "updated_at").
		From("encrypted_notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListRecentNotesQuery(userID string, limit uint64) (string, []any, error) {
	query, args, err := psql.
		Select("id", "user_id", "title", "ciphertext", "note_key_ciphertext", "note_key_iv", "created_at", "updated_at").
		From("encrypted_notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetNotesByIDsQuery narrows the fetch to the requested ids, but only
// those the caller owns or can reach through a share.
func buildGetNotesByIDsQuery(userID string, ids []string) (string, []any, error) {
	reachable := sq.Or{
		sq.Eq{"n.user_id": userID},
		sq.Expr(`n.id IN (
            SELECT s.note_id FROM note_shares s
            WHERE (s.shared_with_type = 'user' AND s.shared_with_id = ?)
               OR (s.shared_with_type = 'group' AND s.shared_with_id IN (
                    SELECT group_id FROM group_members WHERE user_id = ?))
        )`, userID, userID),
	}

	query, args, err := psql.
		Select("n.id", "n.user_id", "n.title", "n.ciphertext", "n.note_key_ciphertext", "n.note_key_iv", "n.created_at", "n.updated_at").
		From("encrypted_notes n").
		Where(sq.Eq{"n.id": ids}).
		Where(reachable).
		OrderBy("n.updated_at ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
