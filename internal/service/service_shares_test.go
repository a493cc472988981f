package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/mock"
	"github.com/mvolkhin/notelock/models"
)

type shareServiceFixture struct {
	svc    ShareService
	shares *mock.MockShareRepository
	groups *mock.MockGroupRepository
	notes  *mock.MockNoteRepository
}

func newShareServiceFixture(t *testing.T) *shareServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	shares := mock.NewMockShareRepository(ctrl)
	groups := mock.NewMockGroupRepository(ctrl)
	notes := mock.NewMockNoteRepository(ctrl)
	svc := NewShareService(shares, groups, notes, logger.Nop())
	return &shareServiceFixture{svc: svc, shares: shares, groups: groups, notes: notes}
}

func (f *shareServiceFixture) expectNoteOwnedBy(userID, noteID string) {
	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), userID, []string{noteID}).
		Return([]models.RemoteNoteRow{{ID: noteID, UserID: userID}}, nil)
}

func validGroupShare() models.NoteShareRow {
	return models.NoteShareRow{
		NoteID:           "n1",
		SharedWithType:   models.SharedWithGroup,
		SharedWithID:     "g1",
		Permission:       models.PermissionRead,
		WrappedNoteKey:   "d3JhcHBlZA==",
		WrappedNoteKeyIV: "aXY=",
		KeyVersion:       1,
	}
}

func TestUpsertShare_GroupShare(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()
	share := validGroupShare()

	f.expectNoteOwnedBy("owner-1", "n1")
	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "owner-1", Role: models.RoleOwner},
	}, nil)
	f.shares.EXPECT().UpsertShare(gomock.Any(), share).Return(nil)

	assert.NoError(t, f.svc.UpsertShare(ctx, "owner-1", share))
}

func TestUpsertShare_OnlyNoteOwnerMayShare(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	// The note is not visible under the caller's id.
	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "intruder", []string{"n1"}).Return(nil, nil)

	err := f.svc.UpsertShare(ctx, "intruder", validGroupShare())
	assert.ErrorIs(t, err, ErrInvalidShareRow)
}

func TestUpsertShare_GroupShareRequiresMembership(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	f.expectNoteOwnedBy("owner-1", "n1")
	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "someone-else", Role: models.RoleOwner},
	}, nil)

	err := f.svc.UpsertShare(ctx, "owner-1", validGroupShare())
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestUpsertShare_Validation(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	bad := validGroupShare()
	bad.Permission = "admin"
	assert.ErrorIs(t, f.svc.UpsertShare(ctx, "owner-1", bad), ErrInvalidShareRow)

	bad = validGroupShare()
	bad.SharedWithType = "channel"
	assert.ErrorIs(t, f.svc.UpsertShare(ctx, "owner-1", bad), ErrInvalidShareRow)

	bad = validGroupShare()
	bad.WrappedNoteKey = ""
	assert.ErrorIs(t, f.svc.UpsertShare(ctx, "owner-1", bad), ErrInvalidShareRow)

	// A group share without an iv or a version is undecryptable.
	bad = validGroupShare()
	bad.WrappedNoteKeyIV = ""
	assert.ErrorIs(t, f.svc.UpsertShare(ctx, "owner-1", bad), ErrInvalidShareRow)

	bad = validGroupShare()
	bad.KeyVersion = 0
	assert.ErrorIs(t, f.svc.UpsertShare(ctx, "owner-1", bad), ErrInvalidShareRow)
}

func TestUpsertShare_UserShareNeedsNoIV(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	share := models.NoteShareRow{
		NoteID:         "n1",
		SharedWithType: models.SharedWithUser,
		SharedWithID:   "user-2",
		Permission:     models.PermissionWrite,
		WrappedNoteKey: "c2VhbGVk",
		KeyVersion:     1,
	}
	f.expectNoteOwnedBy("owner-1", "n1")
	f.shares.EXPECT().UpsertShare(gomock.Any(), share).Return(nil)

	assert.NoError(t, f.svc.UpsertShare(ctx, "owner-1", share))
}

func TestDeleteShare(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	// The owner revokes a grant.
	f.expectNoteOwnedBy("owner-1", "n1")
	f.shares.EXPECT().DeleteShare(gomock.Any(), "n1", models.SharedWithGroup, "g1").Return(nil)
	assert.NoError(t, f.svc.DeleteShare(ctx, "owner-1", "n1", models.SharedWithGroup, "g1"))

	// A recipient removes a share addressed to themselves.
	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "user-2", []string{"n1"}).Return(nil, nil)
	f.shares.EXPECT().DeleteShare(gomock.Any(), "n1", models.SharedWithUser, "user-2").Return(nil)
	assert.NoError(t, f.svc.DeleteShare(ctx, "user-2", "n1", models.SharedWithUser, "user-2"))

	// A third party may not touch it.
	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "intruder", []string{"n1"}).Return(nil, nil)
	err := f.svc.DeleteShare(ctx, "intruder", "n1", models.SharedWithUser, "user-2")
	assert.ErrorIs(t, err, ErrInvalidShareRow)
}

func TestUpsertGroupKeys(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	rows := []models.GroupKeyRow{
		{GroupID: "g1", UserID: "user-2", SealedGroupKey: "c2VhbGVk", KeyVersion: 1},
		{GroupID: "g1", UserID: "user-3", SealedGroupKey: "c2VhbGVk", KeyVersion: 1},
	}

	// Membership is checked once per distinct group.
	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "caller-1", Role: models.RoleOwner},
	}, nil)
	f.shares.EXPECT().UpsertGroupKeys(gomock.Any(), rows).Return(nil)

	assert.NoError(t, f.svc.UpsertGroupKeys(ctx, "caller-1", rows))
}

func TestUpsertGroupKeys_Validation(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.UpsertGroupKeys(ctx, "caller-1", nil), ErrInvalidDataProvided)

	bad := []models.GroupKeyRow{{GroupID: "g1", UserID: "user-2", SealedGroupKey: "", KeyVersion: 1}}
	assert.ErrorIs(t, f.svc.UpsertGroupKeys(ctx, "caller-1", bad), ErrInvalidDataProvided)

	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "someone-else", Role: models.RoleOwner},
	}, nil)
	rows := []models.GroupKeyRow{{GroupID: "g1", UserID: "user-2", SealedGroupKey: "c2VhbGVk", KeyVersion: 1}}
	err := f.svc.UpsertGroupKeys(ctx, "outsider", rows)
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestListShares(t *testing.T) {
	f := newShareServiceFixture(t)
	ctx := context.Background()

	want := []models.NoteShareRow{validGroupShare()}
	f.shares.EXPECT().ListSharesForUser(gomock.Any(), "user-1").Return(want, nil)

	got, err := f.svc.ListShares(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
