// Package cleanup enforces data retention and performs per-service purges.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/agentevent"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
	"github.com/sourabhkumawat/healops/pkg/config"
)

// Retention periodically removes expired agent events, terminal resolution
// requests past their retention, and stale scratchpad files. All passes are
// idempotent and safe to run from multiple replicas.
type Retention struct {
	cfg        config.CleanupConfig
	client     *ent.Client
	scratchDir string
	now        func() time.Time
	logger     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRetention creates a retention service. scratchDir may be empty; the
// scratchpad sweep is then skipped.
func NewRetention(cfg config.CleanupConfig, client *ent.Client, scratchDir string) *Retention {
	if client == nil {
		panic("cleanup.NewRetention: client must not be nil")
	}
	return &Retention{
		cfg:        cfg,
		client:     client,
		scratchDir: scratchDir,
		now:        time.Now,
		logger:     slog.Default().With("component", "retention"),
	}
}

// Start launches the background retention loop. The first pass runs
// immediately.
func (r *Retention) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	r.logger.Info("Retention service started",
		"interval", r.cfg.Interval,
		"agent_event_ttl", r.cfg.AgentEventTTL,
		"resolved_retention", r.cfg.ResolvedAfter)
}

// Stop signals the loop to exit and waits for it.
func (r *Retention) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.logger.Info("Retention service stopped")
}

func (r *Retention) run(ctx context.Context) {
	defer close(r.done)

	r.RunOnce(ctx)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes one retention pass.
func (r *Retention) RunOnce(ctx context.Context) {
	r.expireAgentEvents(ctx)
	r.expireResolutionRequests(ctx)
	r.sweepScratchpads()
}

func (r *Retention) expireAgentEvents(ctx context.Context) {
	cutoff := r.now().Add(-r.cfg.AgentEventTTL)
	n, err := r.client.AgentEvent.Delete().
		Where(agentevent.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("Retention: agent event cleanup failed", "error", err)
		return
	}
	if n > 0 {
		r.logger.Info("Retention: removed expired agent events", "count", n)
	}
}

// expireResolutionRequests removes terminal ledger rows whose completion is
// older than the resolved retention. Active rows are never touched.
func (r *Retention) expireResolutionRequests(ctx context.Context) {
	cutoff := r.now().Add(-r.cfg.ResolvedAfter)
	n, err := r.client.ResolutionRequest.Delete().
		Where(
			resolutionrequest.StateIn(
				resolutionrequest.StateCompleted,
				resolutionrequest.StateFailed,
			),
			resolutionrequest.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("Retention: resolution request cleanup failed", "error", err)
		return
	}
	if n > 0 {
		r.logger.Info("Retention: removed terminal resolution requests", "count", n)
	}
}

func (r *Retention) sweepScratchpads() {
	if r.scratchDir == "" {
		return
	}
	entries, err := os.ReadDir(r.scratchDir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("Retention: scratchpad scan failed", "dir", r.scratchDir, "error", err)
		}
		return
	}
	cutoff := r.now().Add(-r.cfg.ScratchpadFileTTL)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(r.scratchDir, entry.Name())); err != nil {
			r.logger.Warn("Retention: scratchpad removal failed", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		r.logger.Info("Retention: removed stale scratchpad files", "count", removed)
	}
}
