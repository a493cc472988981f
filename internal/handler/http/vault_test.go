package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/store"
)

func TestGetVaultSalt(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	f.vaults.EXPECT().GetVaultSalt(gomock.Any(), "user-1").Return("c2FsdA==", nil)

	rr := f.do(t, http.MethodGet, "/api/vault/salt", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody[vaultSaltBody](t, rr)
	assert.Equal(t, "c2FsdA==", body.Salt)
}

func TestGetVaultSalt_NotPublished(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	f.vaults.EXPECT().GetVaultSalt(gomock.Any(), "user-1").Return("", store.ErrSaltNotFound)

	rr := f.do(t, http.MethodGet, "/api/vault/salt", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPutVaultSalt(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	f.vaults.EXPECT().PutVaultSalt(gomock.Any(), "user-1", "c2FsdA==").Return("c2FsdA==", nil)

	rr := f.do(t, http.MethodPut, "/api/vault/salt", bearer, vaultSaltBody{Salt: "c2FsdA=="})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody[vaultSaltBody](t, rr)
	assert.Equal(t, "c2FsdA==", body.Salt)
}

func TestPutVaultSalt_Invalid(t *testing.T) {
	f := newHandlerFixture(t)
	bearer := f.bearerFor(t, "user-1")

	rr := f.do(t, http.MethodPut, "/api/vault/salt", bearer, vaultSaltBody{Salt: "not base64 at all!!!"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
