package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

type groupService struct {
	adapter  adapter.RemoteStore
	keys     crypto.KeyChain
	vault    ClientVaultService
	profile  ClientProfileService
	noteKeys ClientNoteKeyService
	logger   *logger.Logger
}

// NewClientGroupService owns the group-key lifecycle: sealed distribution to
// members and the atomic rotation that is the sole revocation mechanism for
// group access.
func NewClientGroupService(remote adapter.RemoteStore, keys crypto.KeyChain, vault ClientVaultService, profile ClientProfileService, noteKeys ClientNoteKeyService, log *logger.Logger) ClientGroupService {
	return &groupService{adapter: remote, keys: keys, vault: vault, profile: profile, noteKeys: noteKeys, logger: log}
}

// CreateGroup implements ClientGroupService.
func (g *groupService) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	if name == "" {
		return models.Group{}, ErrInvalidDataProvided
	}
	if err := g.profile.EnsureProfileKeys(ctx); err != nil {
		return models.Group{}, err
	}
	pub, _, err := g.profile.LoadBoxKeypair(ctx)
	if err != nil {
		return models.Group{}, err
	}

	group, err := g.adapter.CreateGroup(ctx, name)
	if err != nil {
		return models.Group{}, fmt.Errorf("create group: %w", err)
	}

	groupKey, err := g.keys.GenerateKey()
	if err != nil {
		return models.Group{}, fmt.Errorf("generate group key: %w", err)
	}
	sealed, err := g.keys.SealTo(pub, groupKey)
	if err != nil {
		return models.Group{}, fmt.Errorf("seal group key to owner: %w", err)
	}

	row := models.GroupKeyRow{
		GroupID:        group.ID,
		UserID:         g.adapter.UserID(),
		SealedGroupKey: base64.StdEncoding.EncodeToString(sealed),
		KeyVersion:     1,
	}
	if err := g.adapter.UpsertGroupKeys(ctx, []models.GroupKeyRow{row}); err != nil {
		return models.Group{}, fmt.Errorf("store sealed group key: %w", err)
	}

	g.logger.Info().Str("func", "CreateGroup").Str("group_id", group.ID).Msg("group created")
	return group, nil
}

// LoadMyGroupKeys implements ClientGroupService. Rows sealed to a keypair
// this device no longer holds are skipped; for each group only the highest
// version survives, since versions are issued monotonically.
func (g *groupService) LoadMyGroupKeys(ctx context.Context) (map[string]GroupKey, error) {
	pub, priv, err := g.profile.LoadBoxKeypair(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := g.adapter.ListGroupKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list group keys: %w", err)
	}

	out := make(map[string]GroupKey, len(rows))
	for _, row := range rows {
		if existing, ok := out[row.GroupID]; ok && existing.Version >= row.KeyVersion {
			continue
		}

		sealed, err := base64.StdEncoding.DecodeString(row.SealedGroupKey)
		if err != nil {
			g.logger.Warn().Str("func", "LoadMyGroupKeys").Str("group_id", row.GroupID).Msg("sealed group key is not valid base64, skipping")
			continue
		}
		key, err := g.keys.OpenSealed(sealed, pub, priv)
		if err != nil {
			g.logger.Warn().Err(err).Str("func", "LoadMyGroupKeys").Str("group_id", row.GroupID).Int64("key_version", row.KeyVersion).Msg("could not open sealed group key, skipping")
			continue
		}

		out[row.GroupID] = GroupKey{Key: key, Version: row.KeyVersion}
	}
	return out, nil
}

// InviteMember implements ClientGroupService.
func (g *groupService) InviteMember(ctx context.Context, groupID, email string) error {
	invitee, err := g.adapter.LookupProfileByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("resolve invitee %q: %w", email, err)
	}
	inviteePub, err := base64.StdEncoding.DecodeString(invitee.BoxPublicKey)
	if err != nil {
		return fmt.Errorf("decode invitee public key: %w", err)
	}

	groupKeys, err := g.LoadMyGroupKeys(ctx)
	if err != nil {
		return err
	}
	current, ok := groupKeys[groupID]
	if !ok {
		return fmt.Errorf("%w: no group key for group %s", ErrKeyUnavailable, groupID)
	}

	if err := g.adapter.AddGroupMember(ctx, groupID, invitee.UserID, models.RoleMember); err != nil {
		return fmt.Errorf("add group member: %w", err)
	}

	sealed, err := g.keys.SealTo(inviteePub, current.Key)
	if err != nil {
		return fmt.Errorf("seal group key to invitee: %w", err)
	}
	row := models.GroupKeyRow{
		GroupID:        groupID,
		UserID:         invitee.UserID,
		SealedGroupKey: base64.StdEncoding.EncodeToString(sealed),
		KeyVersion:     current.Version,
	}
	if err := g.adapter.UpsertGroupKeys(ctx, []models.GroupKeyRow{row}); err != nil {
		return fmt.Errorf("store sealed group key for invitee: %w", err)
	}

	g.logger.Info().Str("func", "InviteMember").Str("group_id", groupID).Str("user_id", invitee.UserID).Msg("member invited")
	return nil
}

// RemoveMember implements ClientGroupService. Dropping the membership alone
// does not revoke anything; the caller is expected to rotate afterwards.
func (g *groupService) RemoveMember(ctx context.Context, groupID, userID string) error {
	if err := g.adapter.RemoveGroupMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("remove group member: %w", err)
	}
	return nil
}

// RotateGroupKey implements ClientGroupService. Everything is prepared
// locally before a single atomic server call; any note key this device
// cannot recover aborts the rotation, because a partially rotated group
// would leave some members unable to decrypt.
func (g *groupService) RotateGroupKey(ctx context.Context, groupID string) error {
	groupKeys, err := g.LoadMyGroupKeys(ctx)
	if err != nil {
		return err
	}
	current, ok := groupKeys[groupID]
	if !ok {
		return fmt.Errorf("%w: no group key for group %s", ErrKeyUnavailable, groupID)
	}

	newKey, err := g.keys.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate rotated group key: %w", err)
	}
	newVersion := current.Version + 1

	members, err := g.adapter.ListGroupMemberKeys(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list member keys: %w", err)
	}

	sealedKeys := make([]models.SealedGroupKeyEntry, 0, len(members))
	for _, member := range members {
		pub, err := base64.StdEncoding.DecodeString(member.BoxPublicKey)
		if err != nil {
			return fmt.Errorf("decode public key of member %s: %w", member.UserID, err)
		}
		sealed, err := g.keys.SealTo(pub, newKey)
		if err != nil {
			return fmt.Errorf("seal rotated key to member %s: %w", member.UserID, err)
		}
		sealedKeys = append(sealedKeys, models.SealedGroupKeyEntry{
			UserID:         member.UserID,
			SealedGroupKey: base64.StdEncoding.EncodeToString(sealed),
		})
	}

	shares, err := g.adapter.ListGroupShares(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list group shares: %w", err)
	}

	rewrapped := make([]models.RewrappedShareEntry, 0, len(shares))
	for _, share := range shares {
		noteKey, err := g.recoverShareNoteKey(ctx, share, current)
		if err != nil {
			return fmt.Errorf("%w: note %s: %w", ErrKeyUnavailable, share.NoteID, err)
		}

		env, err := g.keys.EncryptBytes(noteKey, newKey)
		if err != nil {
			return fmt.Errorf("rewrap note key for %s: %w", share.NoteID, err)
		}
		rewrapped = append(rewrapped, models.RewrappedShareEntry{
			NoteID:           share.NoteID,
			SharedWithType:   share.SharedWithType,
			SharedWithID:     share.SharedWithID,
			WrappedNoteKey:   env.Ciphertext,
			WrappedNoteKeyIV: env.IV,
		})
	}

	req := models.RotateGroupKeysRequest{
		GroupID:         groupID,
		NewKeyVersion:   newVersion,
		SealedGroupKeys: sealedKeys,
		RewrappedShares: rewrapped,
	}
	if err := g.adapter.RotateGroupKeys(ctx, req); err != nil {
		return fmt.Errorf("apply rotation: %w", err)
	}

	g.logger.Info().
		Str("func", "RotateGroupKey").
		Str("group_id", groupID).
		Int64("new_key_version", newVersion).
		Int("members", len(sealedKeys)).
		Int("shares", len(rewrapped)).
		Msg("group key rotated")
	return nil
}

// recoverShareNoteKey obtains the raw note key behind one group share,
// preferring the locally cached per-note key and falling back to unwrapping
// the share under the group key it was wrapped with.
func (g *groupService) recoverShareNoteKey(ctx context.Context, share models.NoteShareRow, current GroupKey) ([]byte, error) {
	noteKey, err := g.noteKeys.LoadNoteKey(ctx, share.NoteID)
	if err == nil {
		return noteKey, nil
	}
	if !errors.Is(err, ErrKeyUnavailable) {
		return nil, err
	}

	if share.KeyVersion != current.Version {
		return nil, fmt.Errorf("share wrapped at version %d, only %d held locally", share.KeyVersion, current.Version)
	}
	env := models.Envelope{IV: share.WrappedNoteKeyIV, Ciphertext: share.WrappedNoteKey}
	noteKey, uerr := g.keys.DecryptBytes(env, current.Key)
	if uerr != nil {
		return nil, fmt.Errorf("unwrap share under group key: %w", uerr)
	}
	return noteKey, nil
}
