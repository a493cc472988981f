package models

// Share permissions and share target kinds as stored in note_shares.
const (
	PermissionRead  = "read"
	PermissionWrite = "write"

	SharedWithGroup = "group"
	SharedWithUser  = "user"
)

// Group member roles as stored in group_members.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// EncryptedNoteRecord is the local copy of an owned note. Payload is the
// note content encrypted either under a per-note key (current format) or
// directly under the vault key (legacy format); which one applies is decided
// by the presence of a matching [NoteKeyRecord].
//
// Timestamps are RFC3339 strings end-to-end. They are parsed only at
// comparison points so that an unparsable value can still flow through sync,
// where it makes the remote copy win.
type EncryptedNoteRecord struct {
	ID        string   `json:"id"`
	Payload   Envelope `json:"payload"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// SharedEncryptedNoteRecord is the local copy of a note somebody shared with
// this user, tagged with its origin so listings can show provenance and
// enforce the granted permission.
type SharedEncryptedNoteRecord struct {
	EncryptedNoteRecord

	SharedFromUserID string `json:"shared_from_user_id,omitempty"`
	SharedGroupID    string `json:"shared_group_id,omitempty"`
	Permission       string `json:"permission,omitempty"`
}

// NoteKeyRecord holds a note's 256-bit symmetric key, itself AEAD-encrypted
// under the vault key. If a record exists for a note, the note payload must
// be decryptable only via this unwrapped key; if absent, the payload is
// legacy format and decrypts directly under the vault key.
type NoteKeyRecord struct {
	NoteID           string   `json:"note_id"`
	EncryptedNoteKey Envelope `json:"encrypted_note_key"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// DecryptedNote pairs a note id with its decrypted content for listings.
// Shared notes additionally carry their origin group and permission.
type DecryptedNote struct {
	ID            string
	Note          PlainNote
	CreatedAt     string
	UpdatedAt     string
	SharedGroupID string
	Permission    string
}
