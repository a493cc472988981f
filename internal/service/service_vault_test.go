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

func newVaultServiceFixture(t *testing.T) (VaultService, *mock.MockVaultRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vaults := mock.NewMockVaultRepository(ctrl)
	return NewVaultService(vaults, logger.Nop()), vaults
}

func TestPutSalt(t *testing.T) {
	svc, vaults := newVaultServiceFixture(t)
	ctx := context.Background()

	vaults.EXPECT().PutVaultSalt(gomock.Any(), "user-1", "c2FsdA==").Return("c2FsdA==", nil)

	stored, err := svc.PutSalt(ctx, "user-1", "c2FsdA==")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", stored)
}

func TestPutSalt_Validation(t *testing.T) {
	svc, _ := newVaultServiceFixture(t)
	ctx := context.Background()

	_, err := svc.PutSalt(ctx, "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.PutSalt(ctx, "user-1", "not base64 at all!!!")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpsertProfile_ForcesCallerID(t *testing.T) {
	svc, vaults := newVaultServiceFixture(t)
	ctx := context.Background()

	var persisted models.ProfileRow
	vaults.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile models.ProfileRow) error {
			persisted = profile
			return nil
		})

	profile := models.ProfileRow{
		UserID:            "somebody-else",
		BoxPublicKey:      "cHVi",
		EncBoxSecretKey:   "ZW5j",
		EncBoxSecretKeyIV: "aXY=",
	}
	require.NoError(t, svc.UpsertProfile(ctx, "user-1", profile))
	assert.Equal(t, "user-1", persisted.UserID, "the body's user id must be overridden by the caller's")
}

func TestUpsertProfile_IncompleteKeys(t *testing.T) {
	svc, _ := newVaultServiceFixture(t)
	ctx := context.Background()

	err := svc.UpsertProfile(ctx, "user-1", models.ProfileRow{BoxPublicKey: "cHVi"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLookupProfileByEmail_EmptyEmail(t *testing.T) {
	svc, _ := newVaultServiceFixture(t)

	_, err := svc.LookupProfileByEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
