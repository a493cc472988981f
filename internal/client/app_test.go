package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/service"
)

type fakeVault struct {
	unlocked bool
	locks    int
}

func (f *fakeVault) Unlock(context.Context, string) error { f.unlocked = true; return nil }
func (f *fakeVault) Lock()                                { f.unlocked = false; f.locks++ }
func (f *fakeVault) IsUnlocked() bool                     { return f.unlocked }
func (f *fakeVault) Key() ([]byte, error)                 { return nil, service.ErrVaultLocked }

type fakeIdleLocker struct {
	touches int
}

func (f *fakeIdleLocker) Start(context.Context, time.Duration) {}
func (f *fakeIdleLocker) Touch()                               { f.touches++ }
func (f *fakeIdleLocker) Stop()                                {}

func newScriptedApp(script string) (*App, *fakeVault, *fakeIdleLocker, *bytes.Buffer) {
	vault := &fakeVault{unlocked: true}
	idle := &fakeIdleLocker{}
	out := &bytes.Buffer{}

	app := &App{
		services: &service.ClientServices{
			VaultService: vault,
			IdleLocker:   idle,
		},
		logger: logger.Nop(),
		in:     bufio.NewScanner(strings.NewReader(script)),
		out:    out,
	}
	return app, vault, idle, out
}

func TestCommandLoop_QuitLocksVault(t *testing.T) {
	app, vault, _, _ := newScriptedApp("quit\n")

	require.NoError(t, app.commandLoop(context.Background()))
	assert.Equal(t, 1, vault.locks)
}

func TestCommandLoop_UnknownCommand(t *testing.T) {
	app, _, idle, out := newScriptedApp("frobnicate\nquit\n")

	require.NoError(t, app.commandLoop(context.Background()))
	assert.Contains(t, out.String(), "unknown command")
	assert.Equal(t, 2, idle.touches)
}

func TestCommandLoop_LockCommand(t *testing.T) {
	app, vault, _, out := newScriptedApp("lock\nquit\n")

	require.NoError(t, app.commandLoop(context.Background()))
	assert.Equal(t, 2, vault.locks, "explicit lock plus the lock on quit")
	assert.Contains(t, out.String(), "vault locked")
}

func TestCommandLoop_EOFEndsLoopAndLocks(t *testing.T) {
	app, vault, _, _ := newScriptedApp("")

	require.NoError(t, app.commandLoop(context.Background()))
	assert.Equal(t, 1, vault.locks, "a closed stdin must not leave the vault unlocked")
}
