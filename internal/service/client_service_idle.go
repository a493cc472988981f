package service

import (
	"context"
	"sync"
	"time"

	"github.com/mvolkhin/notelock/internal/logger"
)

type idleLocker struct {
	vault  ClientVaultService
	logger *logger.Logger

	mu      sync.Mutex
	timeout time.Duration
	timer   *time.Timer
}

// NewClientIdleLocker relocks the vault after a window of inactivity.
// Locking only clears the in-memory key, so expiry firing mid-operation is
// harmless: the operation fails with ErrVaultLocked instead of corrupting
// anything.
func NewClientIdleLocker(vault ClientVaultService, log *logger.Logger) ClientIdleLocker {
	return &idleLocker{vault: vault, logger: log}
}

// Start implements ClientIdleLocker.
func (l *idleLocker) Start(ctx context.Context, timeout time.Duration) {
	l.Stop()

	if timeout <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.timeout = timeout
	l.timer = time.AfterFunc(timeout, l.expire)
}

// Touch implements ClientIdleLocker.
func (l *idleLocker) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		l.timer.Reset(l.timeout)
	}
}

// Stop implements ClientIdleLocker.
func (l *idleLocker) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *idleLocker) expire() {
	l.vault.Lock()
	l.logger.Info().Str("func", "expire").Msg("vault locked after idle timeout")
}
