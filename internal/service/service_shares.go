package service

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

type shareStoreService struct {
	shareRepository store.ShareRepository
	groupRepository store.GroupRepository
	noteRepository  store.NoteRepository
	logger          *logger.Logger
}

// NewShareService stores wrapped note keys and sealed group keys. Wrapped
// key material is opaque; the service checks only shapes and row-level
// reachability.
func NewShareService(shareRepository store.ShareRepository, groupRepository store.GroupRepository, noteRepository store.NoteRepository, logger *logger.Logger) ShareService {
	return &shareStoreService{
		shareRepository: shareRepository,
		groupRepository: groupRepository,
		noteRepository:  noteRepository,
		logger:          logger,
	}
}

// ListShares implements ShareService: every share addressed to userID
// directly or through group membership.
func (s *shareStoreService) ListShares(ctx context.Context, userID string) ([]models.NoteShareRow, error) {
	shares, err := s.shareRepository.ListSharesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	return shares, nil
}

// UpsertShare implements ShareService. Only the note's owner may share it,
// and group shares additionally require the caller to belong to the target
// group.
func (s *shareStoreService) UpsertShare(ctx context.Context, callerID string, share models.NoteShareRow) error {
	if err := validateShareRow(share); err != nil {
		return err
	}
	if err := s.requireNoteOwner(ctx, callerID, share.NoteID); err != nil {
		return err
	}
	if share.SharedWithType == models.SharedWithGroup {
		if err := s.requireMember(ctx, callerID, share.SharedWithID); err != nil {
			return err
		}
	}

	if err := s.shareRepository.UpsertShare(ctx, share); err != nil {
		return fmt.Errorf("upsert share: %w", err)
	}
	return nil
}

// DeleteShare implements ShareService. The note's owner may revoke any
// share; a recipient may delete a share addressed to themselves.
func (s *shareStoreService) DeleteShare(ctx context.Context, callerID, noteID, sharedWithType, sharedWithID string) error {
	if noteID == "" || sharedWithType == "" || sharedWithID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.requireNoteOwner(ctx, callerID, noteID); err != nil {
		if !(sharedWithType == models.SharedWithUser && sharedWithID == callerID) {
			return err
		}
	}

	if err := s.shareRepository.DeleteShare(ctx, noteID, sharedWithType, sharedWithID); err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	return nil
}

// ListGroupKeys implements ShareService: every sealed group-key row
// addressed to userID, all versions included.
func (s *shareStoreService) ListGroupKeys(ctx context.Context, userID string) ([]models.GroupKeyRow, error) {
	rows, err := s.shareRepository.ListGroupKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list group keys: %w", err)
	}
	return rows, nil
}

// UpsertGroupKeys implements ShareService. Sealed keys may be addressed to
// any user (that is how invites work), but the caller must belong to every
// group they write keys for.
func (s *shareStoreService) UpsertGroupKeys(ctx context.Context, callerID string, rows []models.GroupKeyRow) error {
	if len(rows) == 0 {
		return ErrInvalidDataProvided
	}

	checked := make(map[string]struct{}, 1)
	for _, row := range rows {
		if row.GroupID == "" || row.UserID == "" || row.SealedGroupKey == "" || row.KeyVersion < 1 {
			return ErrInvalidDataProvided
		}
		if _, done := checked[row.GroupID]; done {
			continue
		}
		if err := s.requireMember(ctx, callerID, row.GroupID); err != nil {
			return err
		}
		checked[row.GroupID] = struct{}{}
	}

	if err := s.shareRepository.UpsertGroupKeys(ctx, rows); err != nil {
		return fmt.Errorf("upsert group keys: %w", err)
	}
	return nil
}

func (s *shareStoreService) requireNoteOwner(ctx context.Context, callerID, noteID string) error {
	rows, err := s.noteRepository.GetNotesByIDs(ctx, callerID, []string{noteID})
	if err != nil {
		return fmt.Errorf("resolve note %s: %w", noteID, err)
	}
	if len(rows) == 0 || rows[0].UserID != callerID {
		return fmt.Errorf("%w: note %s is not owned by caller", ErrInvalidShareRow, noteID)
	}
	return nil
}

func (s *shareStoreService) requireMember(ctx context.Context, callerID, groupID string) error {
	members, err := s.groupRepository.ListMembers(ctx, groupID)
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

func validateShareRow(share models.NoteShareRow) error {
	if share.NoteID == "" || share.SharedWithID == "" || share.WrappedNoteKey == "" {
		return ErrInvalidShareRow
	}
	if share.SharedWithType != models.SharedWithGroup && share.SharedWithType != models.SharedWithUser {
		return fmt.Errorf("%w: unknown share type %q", ErrInvalidShareRow, share.SharedWithType)
	}
	if share.Permission != models.PermissionRead && share.Permission != models.PermissionWrite {
		return fmt.Errorf("%w: unknown permission %q", ErrInvalidShareRow, share.Permission)
	}
	if share.SharedWithType == models.SharedWithGroup && (share.WrappedNoteKeyIV == "" || share.KeyVersion < 1) {
		return fmt.Errorf("%w: group share needs an iv and a key version", ErrInvalidShareRow)
	}
	return nil
}
