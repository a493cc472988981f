package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

// groupRepository is the PostgreSQL-backed implementation of
// [GroupRepository], covering the "groups" and "group_members" tables.
type groupRepository struct {
	*DB
	logger *logger.Logger
}

// NewGroupRepository constructs a [GroupRepository] backed by the provided
// database connection and logger.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateGroup persists a new group together with its owner's membership row,
// in one transaction. The owner is always a member with the "owner" role.
func (r *groupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.CreateGroup").
			Str("owner_id", group.OwnerID).
			Msg("failed to begin transaction")
		return models.Group{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.Group
	err = tx.QueryRowContext(ctx, createGroup, group.ID, group.Name, group.OwnerID).
		Scan(&created.ID, &created.Name, &created.OwnerID)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.CreateGroup").
			Str("owner_id", group.OwnerID).
			Msg("failed to insert group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, addGroupMember, created.ID, created.OwnerID, models.RoleOwner); err != nil {
		log.Err(err).
			Str("func", "groupRepository.CreateGroup").
			Str("group_id", created.ID).
			Msg("failed to insert owner membership")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "groupRepository.CreateGroup").
			Str("group_id", created.ID).
			Msg("failed to commit transaction")
		return models.Group{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return created, nil
}

// GetGroup retrieves a group by id, or returns [ErrGroupNotFound].
func (r *groupRepository) GetGroup(ctx context.Context, groupID string) (models.Group, error) {
	log := logger.FromContext(ctx)

	var group models.Group
	err := r.DB.QueryRowContext(ctx, getGroup, groupID).Scan(&group.ID, &group.Name, &group.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Group{}, ErrGroupNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.GetGroup").
			Str("group_id", groupID).
			Msg("failed to scan group row")
		return models.Group{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return group, nil
}

// AddMember inserts or updates a membership row.
func (r *groupRepository) AddMember(ctx context.Context, member models.GroupMember) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, addGroupMember, member.GroupID, member.UserID, member.Role); err != nil {
		log.Err(err).
			Str("func", "groupRepository.AddMember").
			Str("group_id", member.GroupID).
			Str("user_id", member.UserID).
			Msg("failed to add group member")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveMember deletes a membership row. Removing a non-member is a no-op;
// revoking their access to shared notes is the caller's follow-up (key
// rotation).
func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, removeGroupMember, groupID, userID); err != nil {
		log.Err(err).
			Str("func", "groupRepository.RemoveMember").
			Str("group_id", groupID).
			Str("user_id", userID).
			Msg("failed to remove group member")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListMembers retrieves every membership row of groupID.
func (r *groupRepository) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listGroupMembers, groupID)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.ListMembers").
			Str("group_id", groupID).
			Msg("failed to execute query for group members")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.GroupMember, 0, 8)

	for rows.Next() {
		var m models.GroupMember
		if scanErr := rows.Scan(&m.GroupID, &m.UserID, &m.Role); scanErr != nil {
			log.Err(scanErr).
				Str("func", "groupRepository.ListMembers").
				Str("group_id", groupID).
				Msg("failed to scan group member row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		members = append(members, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "groupRepository.ListMembers").
			Str("group_id", groupID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return members, nil
}

// ListMemberKeys joins members against profiles, returning each member's
// published box public key. Members who never published a profile are
// omitted; callers sealing group keys must treat them as unreachable.
func (r *groupRepository) ListMemberKeys(ctx context.Context, groupID string) ([]models.GroupMemberKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listGroupMemberKeys, groupID)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.ListMemberKeys").
			Str("group_id", groupID).
			Msg("failed to execute query for group member keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.GroupMemberKey, 0, 8)

	for rows.Next() {
		var k models.GroupMemberKey
		if scanErr := rows.Scan(&k.UserID, &k.BoxPublicKey); scanErr != nil {
			log.Err(scanErr).
				Str("func", "groupRepository.ListMemberKeys").
				Str("group_id", groupID).
				Msg("failed to scan member key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, k)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "groupRepository.ListMemberKeys").
			Str("group_id", groupID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}
