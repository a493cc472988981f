package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/models"
)

func groupShareRow() models.NoteShareRow {
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

func TestListShares(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	want := []models.NoteShareRow{groupShareRow()}
	f.shares.EXPECT().ListSharesForUser(gomock.Any(), "user-1").Return(want, nil)

	rr := f.do(t, http.MethodGet, "/api/shares", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, decodeBody[[]models.NoteShareRow](t, rr))
}

func TestUpsertShare(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "owner-1")
	share := groupShareRow()

	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "owner-1", []string{"n1"}).
		Return([]models.RemoteNoteRow{{ID: "n1", UserID: "owner-1"}}, nil)
	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "owner-1", Role: models.RoleOwner},
	}, nil)
	f.shares.EXPECT().UpsertShare(gomock.Any(), share).Return(nil)

	rr := f.do(t, http.MethodPut, "/api/shares", bearer, share)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpsertShare_NotOwner(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "intruder")

	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "intruder", []string{"n1"}).Return(nil, nil)

	rr := f.do(t, http.MethodPut, "/api/shares", bearer, groupShareRow())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteShare_QueryParams(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "owner-1")

	f.notes.EXPECT().GetNotesByIDs(gomock.Any(), "owner-1", []string{"n1"}).
		Return([]models.RemoteNoteRow{{ID: "n1", UserID: "owner-1"}}, nil)
	f.shares.EXPECT().DeleteShare(gomock.Any(), "n1", models.SharedWithGroup, "g1").Return(nil)

	rr := f.do(t, http.MethodDelete, "/api/shares?note_id=n1&shared_with_type=group&shared_with_id=g1", bearer, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListGroupKeys(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	want := []models.GroupKeyRow{{GroupID: "g1", UserID: "user-1", SealedGroupKey: "c2VhbGVk", KeyVersion: 1}}
	f.shares.EXPECT().ListGroupKeys(gomock.Any(), "user-1").Return(want, nil)

	rr := f.do(t, http.MethodGet, "/api/group-keys", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, decodeBody[[]models.GroupKeyRow](t, rr))
}

func TestUpsertGroupKeys(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "owner-1")

	rows := []models.GroupKeyRow{
		{GroupID: "g1", UserID: "user-2", SealedGroupKey: "c2VhbGVk", KeyVersion: 1},
	}
	f.groups.EXPECT().ListMembers(gomock.Any(), "g1").Return([]models.GroupMember{
		{GroupID: "g1", UserID: "owner-1", Role: models.RoleOwner},
	}, nil)
	f.shares.EXPECT().UpsertGroupKeys(gomock.Any(), rows).Return(nil)

	rr := f.do(t, http.MethodPost, "/api/group-keys", bearer, rows)
	assert.Equal(t, http.StatusOK, rr.Code)
}
