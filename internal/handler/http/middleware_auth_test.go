package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithAuth_MissingHeader(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(t, http.MethodGet, "/api/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "empty `Authorization` header")
}

func TestWithAuth_MalformedHeader(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(t, http.MethodGet, "/api/notes", "Bearer", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = f.do(t, http.MethodGet, "/api/notes", "Bearer ", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_InvalidToken(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(t, http.MethodGet, "/api/notes", "Bearer definitely.not.a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_ValidTokenReachesHandler(t *testing.T) {
	f := newHandlerFixture(t)

	// the user id seen by the service must come from the token subject
	f.notes.EXPECT().ListNotes(gomock.Any(), "user-7").Return(nil, nil)

	rr := f.do(t, http.MethodGet, "/api/notes", f.bearerFor(t, "user-7"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
}
