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

func newNoteServiceFixture(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(notes, logger.Nop()), notes
}

func TestServerUpsertNote_ForcesCallerID(t *testing.T) {
	svc, notes := newNoteServiceFixture(t)
	ctx := context.Background()

	var persisted models.RemoteNoteRow
	notes.EXPECT().UpsertNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row models.RemoteNoteRow) error {
			persisted = row
			return nil
		})

	row := models.RemoteNoteRow{
		ID:         "n1",
		UserID:     "somebody-else",
		Ciphertext: models.Envelope{IV: "aXY=", Ciphertext: "Y3Q="}.Encode(),
	}
	require.NoError(t, svc.UpsertNote(ctx, "user-1", row))
	assert.Equal(t, "user-1", persisted.UserID)
}

func TestServerUpsertNote_RejectsMalformedCiphertext(t *testing.T) {
	svc, _ := newNoteServiceFixture(t)
	ctx := context.Background()

	err := svc.UpsertNote(ctx, "user-1", models.RemoteNoteRow{ID: "n1", Ciphertext: "not an envelope"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.UpsertNote(ctx, "user-1", models.RemoteNoteRow{ID: "n1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.UpsertNote(ctx, "user-1", models.RemoteNoteRow{Ciphertext: models.Envelope{IV: "aXY=", Ciphertext: "Y3Q="}.Encode()})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestServerListRecentNotes_ClampsLimit(t *testing.T) {
	svc, notes := newNoteServiceFixture(t)
	ctx := context.Background()

	notes.EXPECT().ListRecentNotes(gomock.Any(), "user-1", uint64(defaultRecentLimit)).Return(nil, nil)
	_, err := svc.ListRecentNotes(ctx, "user-1", 0)
	require.NoError(t, err)

	notes.EXPECT().ListRecentNotes(gomock.Any(), "user-1", uint64(maxRecentLimit)).Return(nil, nil)
	_, err = svc.ListRecentNotes(ctx, "user-1", 10_000)
	require.NoError(t, err)

	notes.EXPECT().ListRecentNotes(gomock.Any(), "user-1", uint64(7)).Return(nil, nil)
	_, err = svc.ListRecentNotes(ctx, "user-1", 7)
	require.NoError(t, err)
}

func TestServerGetNotesByIDs_EmptyInput(t *testing.T) {
	svc, _ := newNoteServiceFixture(t)

	rows, err := svc.GetNotesByIDs(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestServerDeleteNote_EmptyID(t *testing.T) {
	svc, _ := newNoteServiceFixture(t)

	err := svc.DeleteNote(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
