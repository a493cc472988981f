package service

import (
	"github.com/mvolkhin/notelock/internal/config"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
	NoteService  NoteService
	GroupService GroupService
	ShareService ShareService
}

func NewServices(repos *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repos.UserRepository, cfg, logger),
		VaultService: NewVaultService(repos.VaultRepository, logger),
		NoteService:  NewNoteService(repos.NoteRepository, logger),
		GroupService: NewGroupService(repos.GroupRepository, repos.ShareRepository, logger),
		ShareService: NewShareService(repos.ShareRepository, repos.GroupRepository, repos.NoteRepository, logger),
	}
}
