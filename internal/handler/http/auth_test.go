package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/store"
	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func TestRegister(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = "user-1"
			return user, nil
		})

	rr := f.do(t, http.MethodPost, "/api/auth/register", "", models.User{
		Email:    "alice@example.com",
		Password: "login-pass",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	authHeader := rr.Header().Get("Authorization")
	require.True(t, strings.HasPrefix(authHeader, "Bearer "), "got header %q", authHeader)

	// the issued token must authenticate follow-up requests
	f.vaults.EXPECT().GetVaultSalt(gomock.Any(), "user-1").Return("c2FsdA==", nil)
	rr = f.do(t, http.MethodGet, "/api/vault/salt", authHeader, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := f.do(t, http.MethodPost, "/api/auth/register", "", models.User{
		Email:    "alice@example.com",
		Password: "login-pass",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(t, http.MethodPost, "/api/auth/register", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/auth/register", "", models.User{Email: "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin(t *testing.T) {
	f := newHandlerFixture(t)

	stored := models.User{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: utils.HashString("login-pass", "pepper"),
	}
	f.users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil).Times(2)

	rr := f.do(t, http.MethodPost, "/api/auth/login", "", models.User{
		Email:    "alice@example.com",
		Password: "login-pass",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Authorization"), "Bearer "))

	rr = f.do(t, http.MethodPost, "/api/auth/login", "", models.User{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	rr := f.do(t, http.MethodPost, "/api/auth/login", "", models.User{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
