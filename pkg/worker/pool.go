package worker

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// agentIdleAfter is how long without activity before an agent record is
// marked idle.
const agentIdleAfter = 30 * time.Minute

// OrphanScanner fails stale IN_FLIGHT resolution requests. Satisfied by
// *ledger.Ledger.
type OrphanScanner interface {
	RequeueOrphans(ctx context.Context, threshold time.Duration) (int, error)
}

// IdleMarker transitions inactive agent records to idle. Satisfied by
// *agent.Registry.
type IdleMarker interface {
	MarkIdle(ctx context.Context, inactiveFor time.Duration) (int, error)
}

// TaskHandler processes one bus task. Satisfied by (*Resolver).HandleTask.
type TaskHandler func(ctx context.Context, task models.Task) error

// Pool bounds resolve_incident concurrency across bus partitions and runs
// the background maintenance loop (orphan recovery, idle marking). The bus
// consumer delivers per-partition FIFO; the pool only caps parallelism.
type Pool struct {
	cfg      config.WorkerConfig
	handler  TaskHandler
	orphans  OrphanScanner
	idler    IdleMarker
	sem      chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewPool creates a pool. orphans and idler may be nil; the corresponding
// maintenance step is skipped.
func NewPool(cfg config.WorkerConfig, handler TaskHandler, orphans OrphanScanner, idler IdleMarker) *Pool {
	if handler == nil {
		panic("worker.NewPool: handler must not be nil")
	}
	count := cfg.WorkerCount
	if count <= 0 {
		count = 1
	}
	return &Pool{
		cfg:     cfg,
		handler: handler,
		orphans: orphans,
		idler:   idler,
		sem:     make(chan struct{}, count),
		stopCh:  make(chan struct{}),
		logger:  slog.Default().With("component", "worker_pool"),
	}
}

// Start runs an immediate orphan scan (startup recovery for workers that died
// mid-claim) and launches the maintenance loop.
func (p *Pool) Start(ctx context.Context) {
	p.maintain(ctx)
	p.wg.Add(1)
	go p.maintenanceLoop(ctx)
	p.logger.Info("Worker pool started",
		"worker_count", cap(p.sem), "orphan_threshold", p.cfg.OrphanThreshold)
}

// Stop signals the maintenance loop to exit and waits for it and for all
// in-flight tasks.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// HandleTask acquires a worker slot and dispatches. Blocks when all slots are
// busy; per-partition FIFO is preserved because the bus consumer is
// synchronous per partition.
func (p *Pool) HandleTask(ctx context.Context, task models.Task) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopCh:
		return context.Canceled
	}
	p.wg.Add(1)
	defer p.wg.Done()
	defer func() { <-p.sem }()
	return p.handler(ctx, task)
}

// maintenanceLoop scans on OrphanScanInterval with jitter so replicas do not
// stampede; a failed scan retries sooner on PollInterval.
func (p *Pool) maintenanceLoop(ctx context.Context) {
	defer p.wg.Done()
	for {
		wait := p.cfg.OrphanScanInterval + p.jitter()
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		if !p.maintain(ctx) {
			select {
			case <-p.stopCh:
				return
			case <-ctx.Done():
				return
			case <-time.After(p.cfg.PollInterval):
			}
			p.maintain(ctx)
		}
	}
}

// maintain runs one maintenance pass. Returns false when the orphan scan
// failed and a quick retry is warranted.
func (p *Pool) maintain(ctx context.Context) bool {
	ok := true
	if p.orphans != nil {
		if n, err := p.orphans.RequeueOrphans(ctx, p.cfg.OrphanThreshold); err != nil {
			p.logger.Warn("Orphan scan failed", "error", err)
			ok = false
		} else if n > 0 {
			p.logger.Info("Failed orphaned resolution requests", "count", n)
		}
	}
	if p.idler != nil {
		if _, err := p.idler.MarkIdle(ctx, agentIdleAfter); err != nil {
			p.logger.Warn("Idle agent sweep failed", "error", err)
		}
	}
	return ok
}

func (p *Pool) jitter() time.Duration {
	if p.cfg.PollIntervalJitter <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(p.cfg.PollIntervalJitter)))
}
