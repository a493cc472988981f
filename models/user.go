package models

import "time"

// User represents an account entity used for authentication. The master
// password itself never reaches the server; Password here is the login
// credential for the blind store, unrelated to vault key derivation.
type User struct {
	// UserID is the account identifier (UUID). Assigned by the server on
	// registration and carried as the JWT subject afterwards.
	UserID string `json:"user_id,omitempty"`

	// Email is the unique login identifier, also used for group invites.
	Email string `json:"email"`

	// Password is the login credential sent during register/login only.
	Password string `json:"password,omitempty"`

	// PasswordHash is the server-side HMAC of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}
