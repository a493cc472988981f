package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvolkhin/notelock/internal/config"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/mock"
	"github.com/mvolkhin/notelock/internal/utils"
	"github.com/mvolkhin/notelock/models"
)

func newAuthFixture(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		PasswordHashKey: "pepper",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "notelock",
		TokenDuration:   time.Hour,
	}
	return NewAuthService(users, cfg, logger.Nop()), users
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	var persisted models.User
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = "user-1"
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, models.User{Email: "alice@example.com", Password: "login-pass"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", registered.UserID)

	assert.Empty(t, persisted.Password, "plaintext password must never reach the repository")
	assert.Equal(t, utils.HashString("login-pass", "pepper"), persisted.PasswordHash)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Email: "", Password: "p"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(ctx, models.User{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	stored := models.User{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: utils.HashString("login-pass", "pepper"),
	}
	users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil).Times(2)

	got, err := svc.Login(ctx, models.User{Email: "alice@example.com", Password: "login-pass"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	_, err = svc.Login(ctx, models.User{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestTokenLifecycle(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "definitely.not.a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// Signed with a different key.
	foreign, err := utils.GenerateJWTToken("notelock", "user-1", time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
