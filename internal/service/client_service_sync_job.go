package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mvolkhin/notelock/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	// busy guards against overlapping passes: a tick that arrives while a
	// pass is still running is skipped entirely, never queued.
	busy atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the periodic sync worker. The job is idle until
// Start is called.
func NewClientSyncJob(syncService ClientSyncService, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: log}
}

// Start implements ClientSyncJob. Any previously running job is stopped
// before the new one begins.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	if !j.busy.CompareAndSwap(false, true) {
		j.logger.Debug().Str("func", "runOnce").Msg("previous sync pass still running, tick skipped")
		return
	}
	defer j.busy.Store(false)

	if err := j.syncService.FullSync(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "runOnce").Msg("periodic sync failed")
	}
}
