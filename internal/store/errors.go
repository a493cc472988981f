package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMetaNotFound is returned when a meta key has no stored value.
	ErrMetaNotFound = errors.New("meta key not found")

	// ErrNoteNotFound is returned when a note lookup by id produces no row.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteKeyNotFound is returned when a note has no cached per-note key
	// record. This is a normal condition for legacy-format notes.
	ErrNoteKeyNotFound = errors.New("note key not found")

	// ErrEmailAlreadyExists is returned when registration fails because a
	// user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when a user has not published box
	// keypair material yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSaltNotFound is returned when no vault_kdf row exists for a user.
	ErrSaltNotFound = errors.New("vault salt not found")

	// ErrGroupNotFound is returned when a group lookup by id produces no
	// row, or the caller is not allowed to see it.
	ErrGroupNotFound = errors.New("group not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
