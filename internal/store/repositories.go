package store

import "github.com/mvolkhin/notelock/internal/logger"

// Repositories aggregates every server-side repository behind one value,
// wired into the HTTP handlers at startup.
type Repositories struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
	NoteRepository  NoteRepository
	GroupRepository GroupRepository
	ShareRepository ShareRepository
}

// NewRepositories constructs all repositories over a shared database
// connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		VaultRepository: NewVaultRepository(db, log),
		NoteRepository:  NewNoteRepository(db, log),
		GroupRepository: NewGroupRepository(db, log),
		ShareRepository: NewShareRepository(db, log),
	}
}
