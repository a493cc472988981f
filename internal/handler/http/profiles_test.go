package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/models"
)

func testProfile(userID string) models.ProfileRow {
	return models.ProfileRow{
		UserID:            userID,
		Email:             "alice@example.com",
		BoxPublicKey:      "cHVi",
		EncBoxSecretKey:   "ZW5j",
		EncBoxSecretKeyIV: "aXY=",
	}
}

func TestGetProfile(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	want := testProfile("user-1")
	f.vaults.EXPECT().GetProfile(gomock.Any(), "user-1").Return(want, nil)

	rr := f.do(t, http.MethodGet, "/api/profiles/me", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, decodeBody[models.ProfileRow](t, rr))
}

func TestPutProfile_CallerIDWins(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	var persisted models.ProfileRow
	f.vaults.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile models.ProfileRow) error {
			persisted = profile
			return nil
		})

	rr := f.do(t, http.MethodPut, "/api/profiles/me", bearer, testProfile("somebody-else"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", persisted.UserID)
}

func TestLookupProfile(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	want := testProfile("user-2")
	f.vaults.EXPECT().FindProfileByEmail(gomock.Any(), "bob@example.com").Return(want, nil)

	rr := f.do(t, http.MethodPost, "/api/profiles/lookup", bearer, map[string]string{"email": "bob@example.com"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, decodeBody[models.ProfileRow](t, rr))
}

func TestLookupProfile_Unknown(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	f.vaults.EXPECT().FindProfileByEmail(gomock.Any(), "nobody@example.com").
		Return(models.ProfileRow{}, store.ErrProfileNotFound)

	rr := f.do(t, http.MethodPost, "/api/profiles/lookup", bearer, map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
