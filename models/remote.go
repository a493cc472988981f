package models

// RemoteNoteRow mirrors one row of the encrypted_notes table. Ciphertext is
// the JSON-serialized [Envelope]; NoteKeyCiphertext/NoteKeyIV optionally
// carry the note's wrapped per-note key so other devices can recover it.
// The server stores all of these blindly and never inspects them.
type RemoteNoteRow struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	Title             string `json:"title"`
	Ciphertext        string `json:"ciphertext"`
	NoteKeyCiphertext string `json:"note_key_ciphertext,omitempty"`
	NoteKeyIV         string `json:"note_key_iv,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// NoteShareRow mirrors one row of the note_shares table, keyed by
// (note_id, shared_with_type, shared_with_id).
//
// For group shares WrappedNoteKey/WrappedNoteKeyIV form an AEAD envelope
// under the group key of KeyVersion. For user shares WrappedNoteKey is a
// single sealed-box blob, the iv column is empty and KeyVersion is a
// constant 1 that nothing reads back.
type NoteShareRow struct {
	NoteID           string `json:"note_id"`
	SharedWithType   string `json:"shared_with_type"`
	SharedWithID     string `json:"shared_with_id"`
	Permission       string `json:"permission"`
	WrappedNoteKey   string `json:"wrapped_note_key"`
	WrappedNoteKeyIV string `json:"wrapped_note_key_iv"`
	KeyVersion       int64  `json:"key_version"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// Group mirrors one row of the groups table.
type Group struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// GroupMember mirrors one row of the group_members table.
type GroupMember struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

// GroupMemberKey is the invite/rotation view of a member: identity plus the
// base64 public half of their box keypair.
type GroupMemberKey struct {
	UserID       string `json:"user_id"`
	BoxPublicKey string `json:"box_public_key"`
}

// GroupKeyRow mirrors one row of the group_keys table: a group's symmetric
// key sealed to one member's public key at one version. Multiple versions
// per (group, user) coexist during rotation; the highest is authoritative.
type GroupKeyRow struct {
	GroupID        string `json:"group_id"`
	UserID         string `json:"user_id"`
	SealedGroupKey string `json:"sealed_group_key"`
	KeyVersion     int64  `json:"key_version"`
}

// ProfileRow mirrors one row of the profiles table: a user's box keypair
// with the private half AEAD-encrypted under their vault key. Used only for
// direct user-to-user sharing and for opening sealed group keys.
type ProfileRow struct {
	UserID            string `json:"user_id"`
	Email             string `json:"email,omitempty"`
	DisplayName       string `json:"display_name,omitempty"`
	BoxPublicKey      string `json:"box_public_key"`
	EncBoxSecretKey   string `json:"enc_box_secret_key"`
	EncBoxSecretKeyIV string `json:"enc_box_secret_key_iv"`
}

// SealedGroupKeyEntry is one member's sealed copy of a rotated group key.
type SealedGroupKeyEntry struct {
	UserID         string `json:"user_id"`
	SealedGroupKey string `json:"sealed_group_key"`
}

// RewrappedShareEntry replaces one share's wrapped note key during rotation.
type RewrappedShareEntry struct {
	NoteID           string `json:"note_id"`
	SharedWithType   string `json:"shared_with_type"`
	SharedWithID     string `json:"shared_with_id"`
	WrappedNoteKey   string `json:"wrapped_note_key"`
	WrappedNoteKeyIV string `json:"wrapped_note_key_iv"`
}

// RotateGroupKeysRequest is the payload of the atomic rotation RPC. The
// server applies all sealed keys and rewrapped shares in one transaction or
// not at all; partial rotation would leave some members unable to decrypt.
type RotateGroupKeysRequest struct {
	GroupID         string                `json:"group_id"`
	NewKeyVersion   int64                 `json:"new_key_version"`
	SealedGroupKeys []SealedGroupKeyEntry `json:"sealed_group_keys"`
	RewrappedShares []RewrappedShareEntry `json:"rewrapped_shares"`
}
