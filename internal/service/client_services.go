package service

import (
	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/crypto"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	VaultService   ClientVaultService
	NoteKeyService ClientNoteKeyService
	NoteService    ClientNoteService
	ProfileService ClientProfileService
	GroupService   ClientGroupService
	ShareService   ClientShareService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
	IdleLocker     ClientIdleLocker
}

func NewClientServices(localStore store.LocalStore, remote adapter.RemoteStore, log *logger.Logger) *ClientServices {
	keys := crypto.NewKeyChain()

	vaultSvc := NewClientVaultService(localStore, remote, keys, log)
	noteKeySvc := NewClientNoteKeyService(localStore, keys, vaultSvc, log)
	noteSvc := NewClientNoteService(localStore, remote, noteKeySvc, vaultSvc, log)
	profileSvc := NewClientProfileService(remote, keys, vaultSvc, log)
	groupSvc := NewClientGroupService(remote, keys, vaultSvc, profileSvc, noteKeySvc, log)
	shareSvc := NewClientShareService(localStore, remote, keys, noteKeySvc, noteSvc, groupSvc, log)
	syncSvc := NewClientSyncService(localStore, remote, keys, vaultSvc, profileSvc, groupSvc, log)

	return &ClientServices{
		AuthService:    NewClientAuthService(remote, log),
		VaultService:   vaultSvc,
		NoteKeyService: noteKeySvc,
		NoteService:    noteSvc,
		ProfileService: profileSvc,
		GroupService:   groupSvc,
		ShareService:   shareSvc,
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, log),
		IdleLocker:     NewClientIdleLocker(vaultSvc, log),
	}
}
