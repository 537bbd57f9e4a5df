// Package ledger implements the per-incident resolution request state
// machine: QUEUED → IN_FLIGHT → {COMPLETED, FAILED}, with QUEUED → FAILED
// allowed. The QUEUED → IN_FLIGHT claim is an atomic compare-and-set and is
// the only cross-worker synchronization primitive in the system.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// maxErrorLen bounds last_error stored on the ledger row.
const maxErrorLen = 2000

// dbRetries is how many times transient DB failures are retried with
// exponential backoff before surfacing.
const dbRetries = 3

// Publisher enqueues resolve_incident tasks onto the bus.
type Publisher interface {
	PublishResolveIncident(ctx context.Context, incidentID, requestedByUserID string) error
}

// Ledger mediates all resolution request state changes.
type Ledger struct {
	client    *ent.Client
	publisher Publisher
}

// New creates a Ledger. publisher may be nil (no task is enqueued; used by
// tests and by callers that publish themselves).
func New(client *ent.Client, publisher Publisher) *Ledger {
	if client == nil {
		panic("ledger.New: client must not be nil")
	}
	return &Ledger{client: client, publisher: publisher}
}

// EnsureRequested makes sure an active resolution request exists for the
// incident. If no row exists, or the existing row is terminal (COMPLETED or
// FAILED), the row is created/reset to QUEUED and a resolve_incident task is
// published. QUEUED or IN_FLIGHT rows are left untouched (idempotent).
// Returns whether a new task was published.
func (l *Ledger) EnsureRequested(ctx context.Context, incidentID, requestedByUserID, trigger string) (bool, error) {
	var published bool

	err := l.withRetry(ctx, func() error {
		published = false

		row, err := l.client.ResolutionRequest.Query().
			Where(resolutionrequest.IncidentIDEQ(incidentID)).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = l.client.ResolutionRequest.Create().
				SetIncidentID(incidentID).
				SetState(resolutionrequest.StateQueued).
				SetRequestedByUserID(requestedByUserID).
				SetRequestedByTrigger(trigger).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create resolution request: %w", err)
			}
		case err != nil:
			return fmt.Errorf("query resolution request: %w", err)
		case row.State == resolutionrequest.StateQueued || row.State == resolutionrequest.StateInFlight:
			// Active request already tracked; duplicate trigger is a no-op.
			return nil
		default:
			// Terminal row: reset to QUEUED for a fresh attempt. The CAS on
			// the current state keeps two concurrent resets from both
			// publishing.
			n, err := l.client.ResolutionRequest.Update().
				Where(
					resolutionrequest.IncidentIDEQ(incidentID),
					resolutionrequest.StateEQ(row.State),
				).
				SetState(resolutionrequest.StateQueued).
				SetRequestedByUserID(requestedByUserID).
				SetRequestedByTrigger(trigger).
				ClearLastError().
				ClearClaimedAt().
				ClearCompletedAt().
				Save(ctx)
			if err != nil {
				return fmt.Errorf("requeue resolution request: %w", err)
			}
			if n == 0 {
				return nil // lost the reset race; someone else owns it now
			}
		}

		if l.publisher != nil {
			if err := l.publisher.PublishResolveIncident(ctx, incidentID, requestedByUserID); err != nil {
				return fmt.Errorf("publish resolve_incident: %w", err)
			}
		}
		published = true
		return nil
	})
	return published, err
}

// TryClaim atomically transitions the incident's request from QUEUED to
// IN_FLIGHT. Exactly one concurrent caller wins; everyone else gets false
// and must drop the task as a duplicate.
func (l *Ledger) TryClaim(ctx context.Context, incidentID string) (bool, error) {
	var claimed bool
	err := l.withRetry(ctx, func() error {
		n, err := l.client.ResolutionRequest.Update().
			Where(
				resolutionrequest.IncidentIDEQ(incidentID),
				resolutionrequest.StateEQ(resolutionrequest.StateQueued),
			).
			SetState(resolutionrequest.StateInFlight).
			SetClaimedAt(time.Now()).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("claim resolution request: %w", err)
		}
		claimed = n == 1
		return nil
	})
	return claimed, err
}

// MarkCompleted transitions IN_FLIGHT → COMPLETED.
func (l *Ledger) MarkCompleted(ctx context.Context, incidentID string) error {
	return l.withRetry(ctx, func() error {
		n, err := l.client.ResolutionRequest.Update().
			Where(
				resolutionrequest.IncidentIDEQ(incidentID),
				resolutionrequest.StateEQ(resolutionrequest.StateInFlight),
			).
			SetState(resolutionrequest.StateCompleted).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("complete resolution request: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("complete resolution request: no IN_FLIGHT row for incident %s", incidentID)
		}
		return nil
	})
}

// MarkFailed transitions the request (from any non-terminal state) to FAILED
// and records the error, truncated to a bounded length. The next EnsureRequested
// re-enables processing.
func (l *Ledger) MarkFailed(ctx context.Context, incidentID string, cause error) error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return l.withRetry(ctx, func() error {
		_, err := l.client.ResolutionRequest.Update().
			Where(
				resolutionrequest.IncidentIDEQ(incidentID),
				resolutionrequest.StateIn(
					resolutionrequest.StateQueued,
					resolutionrequest.StateInFlight,
				),
			).
			SetState(resolutionrequest.StateFailed).
			SetLastError(msg).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("fail resolution request: %w", err)
		}
		return nil
	})
}

// RequeueOrphans fails IN_FLIGHT requests whose claim is older than the
// threshold; the worker that held them is presumed dead. A later
// EnsureRequested (or the reducer's next log) re-queues the incident.
func (l *Ledger) RequeueOrphans(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)
	n, err := l.client.ResolutionRequest.Update().
		Where(
			resolutionrequest.StateEQ(resolutionrequest.StateInFlight),
			resolutionrequest.ClaimedAtLT(cutoff),
		).
		SetState(resolutionrequest.StateFailed).
		SetLastError("orphaned: worker heartbeat lost").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("requeue orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Failed orphaned resolution requests", "count", n, "threshold", threshold)
	}
	return n, nil
}

// withRetry runs op with exponential backoff for transient DB failures.
func (l *Ledger) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dbRetries), ctx)
	return backoff.Retry(op, bo)
}
