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

func newGroupServiceFixture(t *testing.T) (GroupService, *mock.MockGroupRepository, *mock.MockShareRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	groups := mock.NewMockGroupRepository(ctrl)
	shares := mock.NewMockShareRepository(ctrl)
	return NewGroupService(groups, shares, logger.Nop()), groups, shares
}

func TestGroupService_CreateGroup(t *testing.T) {
	svc, groups, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	groups.EXPECT().CreateGroup(gomock.Any(), models.Group{Name: "team", OwnerID: "owner-1"}).
		Return(models.Group{ID: "g1", Name: "team", OwnerID: "owner-1"}, nil)

	group, err := svc.CreateGroup(ctx, "owner-1", "team")
	require.NoError(t, err)
	assert.Equal(t, "g1", group.ID)

	_, err = svc.CreateGroup(ctx, "owner-1", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGroupService_AddMemberRequiresOwner(t *testing.T) {
	svc, groups, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	groups.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{ID: "g1", OwnerID: "owner-1"}, nil).Times(2)

	err := svc.AddMember(ctx, "intruder", "g1", "user-2", models.RoleMember)
	assert.ErrorIs(t, err, ErrNotGroupOwner)

	groups.EXPECT().AddMember(gomock.Any(), models.GroupMember{GroupID: "g1", UserID: "user-2", Role: models.RoleMember}).Return(nil)
	err = svc.AddMember(ctx, "owner-1", "g1", "user-2", models.RoleMember)
	assert.NoError(t, err)
}

func TestGroupService_AddMemberValidation(t *testing.T) {
	svc, _, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	err := svc.AddMember(ctx, "owner-1", "g1", "", models.RoleMember)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.AddMember(ctx, "owner-1", "g1", "user-2", "superuser")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGroupService_RemoveMember(t *testing.T) {
	svc, groups, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	groups.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{ID: "g1", OwnerID: "owner-1"}, nil).Times(2)

	// The owner cannot orphan their own group.
	err := svc.RemoveMember(ctx, "owner-1", "g1", "owner-1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	groups.EXPECT().RemoveMember(gomock.Any(), "g1", "user-2").Return(nil)
	err = svc.RemoveMember(ctx, "owner-1", "g1", "user-2")
	assert.NoError(t, err)
}

func TestGroupService_ListMemberKeysRequiresMembership(t *testing.T) {
	svc, groups, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	members := []models.GroupMember{
		{GroupID: "g1", UserID: "owner-1", Role: models.RoleOwner},
		{GroupID: "g1", UserID: "user-2", Role: models.RoleMember},
	}
	groups.EXPECT().ListMembers(gomock.Any(), "g1").Return(members, nil).Times(2)

	_, err := svc.ListMemberKeys(ctx, "outsider", "g1")
	assert.ErrorIs(t, err, ErrNotGroupMember)

	keys := []models.GroupMemberKey{{UserID: "user-2", BoxPublicKey: "cHVi"}}
	groups.EXPECT().ListMemberKeys(gomock.Any(), "g1").Return(keys, nil)
	got, err := svc.ListMemberKeys(ctx, "user-2", "g1")
	require.NoError(t, err)
	assert.Equal(t, keys, got)
}

func TestGroupService_RotateGroupKeys(t *testing.T) {
	svc, groups, shares := newGroupServiceFixture(t)
	ctx := context.Background()

	req := models.RotateGroupKeysRequest{
		GroupID:       "g1",
		NewKeyVersion: 2,
		SealedGroupKeys: []models.SealedGroupKeyEntry{
			{UserID: "owner-1", SealedGroupKey: "c2VhbGVk"},
		},
	}

	groups.EXPECT().GetGroup(gomock.Any(), "g1").Return(models.Group{ID: "g1", OwnerID: "owner-1"}, nil).Times(2)

	err := svc.RotateGroupKeys(ctx, "user-2", req)
	assert.ErrorIs(t, err, ErrNotGroupOwner)

	shares.EXPECT().RotateGroupKeys(gomock.Any(), req).Return(nil)
	err = svc.RotateGroupKeys(ctx, "owner-1", req)
	assert.NoError(t, err)
}

func TestGroupService_RotateGroupKeysValidation(t *testing.T) {
	svc, _, _ := newGroupServiceFixture(t)
	ctx := context.Background()

	// No sealed keys would lock every member out.
	err := svc.RotateGroupKeys(ctx, "owner-1", models.RotateGroupKeysRequest{GroupID: "g1", NewKeyVersion: 2})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.RotateGroupKeys(ctx, "owner-1", models.RotateGroupKeysRequest{
		GroupID:         "g1",
		NewKeyVersion:   0,
		SealedGroupKeys: []models.SealedGroupKeyEntry{{UserID: "u", SealedGroupKey: "x"}},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
