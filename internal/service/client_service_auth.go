package service

import (
	"context"
	"fmt"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/models"
)

type clientAuthService struct {
	adapter adapter.RemoteStore
	logger  *logger.Logger
}

// NewClientAuthService wires account registration and login to the remote
// store. The login password authenticates against the server only; it is
// also the master password from which the vault key is later derived, but
// that derivation never involves this service.
func NewClientAuthService(remote adapter.RemoteStore, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: remote, logger: log}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.adapter.Register(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("register on server: %w", err)
	}

	a.logger.Info().Str("func", "Register").Str("email", email).Msg("account registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.adapter.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login on server: %w", err)
	}

	return nil
}
