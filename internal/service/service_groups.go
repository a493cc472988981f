package service

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type groupStoreService struct {
	groupRepository store.GroupRepository
	shareRepository store.ShareRepository
	logger          *logger.Logger
}

// NewGroupService manages groups and membership. Mutations are restricted to
// the group owner; reads to members. The rotation endpoint is the only place
// the server is trusted with atomicity, never with key material.
func NewGroupService(groupRepository store.GroupRepository, shareRepository store.ShareRepository, logger *logger.Logger) GroupService {
	return &groupStoreService{groupRepository: groupRepository, shareRepository: shareRepository, logger: logger}
}

// CreateGroup implements GroupService.
func (g *groupStoreService) CreateGroup(ctx context.Context, ownerID, name string) (models.Group, error) {
	if name == "" {
		return models.Group{}, ErrInvalidDataProvided
	}

	group, err := g.groupRepository.CreateGroup(ctx, models.Group{Name: name, OwnerID: ownerID})
	if err != nil {
		return models.Group{}, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// AddMember implements GroupService.
func (g *groupStoreService) AddMember(ctx context.Context, callerID, groupID, userID, role string) error {
	if userID == "" || (role != models.RoleMember && role != models.RoleOwner) {
		return ErrInvalidDataProvided
	}
	if err := g.requireOwner(ctx, callerID, groupID); err != nil {
		return err
	}

	member := models.GroupMember{GroupID: groupID, UserID: userID, Role: role}
	if err := g.groupRepository.AddMember(ctx, member); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// RemoveMember implements GroupService. The owner cannot remove themselves;
// that would orphan the group.
func (g *groupStoreService) RemoveMember(ctx context.Context, callerID, groupID, userID string) error {
	if err := g.requireOwner(ctx, callerID, groupID); err != nil {
		return err
	}
	if userID == callerID {
		return fmt.Errorf("%w: owner cannot leave their own group", ErrInvalidDataProvided)
	}

	if err := g.groupRepository.RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// ListMemberKeys implements GroupService.
func (g *groupStoreService) ListMemberKeys(ctx context.Context, callerID, groupID string) ([]models.GroupMemberKey, error) {
	if err := g.requireMember(ctx, callerID, groupID); err != nil {
		return nil, err
	}

	keys, err := g.groupRepository.ListMemberKeys(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list member keys: %w", err)
	}
	return keys, nil
}

// ListGroupShares implements GroupService.
func (g *groupStoreService) ListGroupShares(ctx context.Context, callerID, groupID string) ([]models.NoteShareRow, error) {
	if err := g.requireMember(ctx, callerID, groupID); err != nil {
		return nil, err
	}

	shares, err := g.shareRepository.ListSharesForGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group shares: %w", err)
	}
	return shares, nil
}

// RotateGroupKeys implements GroupService. The repository applies the whole
// request in one transaction; a partial rotation would leave some members
// unable to decrypt.
func (g *groupStoreService) RotateGroupKeys(ctx context.Context, callerID string, req models.RotateGroupKeysRequest) error {
	log := logger.FromContext(ctx)

	if req.GroupID == "" || req.NewKeyVersion < 1 || len(req.SealedGroupKeys) == 0 {
		return ErrInvalidDataProvided
	}
	if err := g.requireOwner(ctx, callerID, req.GroupID); err != nil {
		return err
	}

	if err := g.shareRepository.RotateGroupKeys(ctx, req); err != nil {
		return fmt.Errorf("rotate group keys: %w", err)
	}

	log.Info().
		Str("func", "RotateGroupKeys").
		Str("group_id", req.GroupID).
		Int64("new_key_version", req.NewKeyVersion).
		Msg("group key rotation applied")
	return nil
}

func (g *groupStoreService) requireOwner(ctx context.Context, callerID, groupID string) error {
	group, err := g.groupRepository.GetGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("get group: %w", err)
	}
	if group.OwnerID != callerID {
		return ErrNotGroupOwner
	}
	return nil
}

func (g *groupStoreService) requireMember(ctx context.Context, callerID, groupID string) error {
	members, err := g.groupRepository.ListMembers(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}
	for _, member := range members {
		if member.UserID == callerID {
			return nil
		}
	}
	return ErrNotGroupMember
}
