package cleanup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// PurgeResult reports what a purge removed, or would remove in a dry run.
type PurgeResult struct {
	ServiceName string
	EmailLogs   int
	Incidents   int
	Requests    int
	Logs        int
	DryRun      bool
}

// Purger deletes all data for one service: email logs first, then incidents
// with their resolution requests, then the remaining logs, in one
// transaction. A dry run only counts.
type Purger struct {
	client *ent.Client
	logger *slog.Logger
}

// NewPurger creates a Purger.
func NewPurger(client *ent.Client) *Purger {
	if client == nil {
		panic("cleanup.NewPurger: client must not be nil")
	}
	return &Purger{
		client: client,
		logger: slog.Default().With("component", "purge"),
	}
}

// Purge removes the service's data. With confirm false nothing is deleted;
// the result carries the would-be counts.
func (p *Purger) Purge(ctx context.Context, serviceName string, confirm bool) (*PurgeResult, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("purge: service name must not be empty")
	}
	if !confirm {
		return p.dryRun(ctx, serviceName)
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge %s: begin: %w", serviceName, err)
	}
	res, err := p.purgeTx(ctx, tx, serviceName)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("purge %s: commit: %w", serviceName, err)
	}
	p.logger.Info("Purged service data",
		"service", serviceName,
		"email_logs", res.EmailLogs,
		"incidents", res.Incidents,
		"requests", res.Requests,
		"logs", res.Logs)
	return res, nil
}

func (p *Purger) purgeTx(ctx context.Context, tx *ent.Tx, serviceName string) (*PurgeResult, error) {
	res := &PurgeResult{ServiceName: serviceName}

	var err error
	res.EmailLogs, err = tx.LogEntry.Delete().
		Where(logentry.ServiceNameEQ(serviceName), logentry.IsEmailEQ(true)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge %s: email logs: %w", serviceName, err)
	}

	incidentIDs, err := tx.Incident.Query().
		Where(incident.ServiceNameEQ(serviceName)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge %s: incident lookup: %w", serviceName, err)
	}
	if len(incidentIDs) > 0 {
		res.Requests, err = tx.ResolutionRequest.Delete().
			Where(resolutionrequest.IncidentIDIn(incidentIDs...)).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("purge %s: resolution requests: %w", serviceName, err)
		}
	}
	res.Incidents, err = tx.Incident.Delete().
		Where(incident.ServiceNameEQ(serviceName)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge %s: incidents: %w", serviceName, err)
	}

	res.Logs, err = tx.LogEntry.Delete().
		Where(logentry.ServiceNameEQ(serviceName)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge %s: logs: %w", serviceName, err)
	}
	return res, nil
}

func (p *Purger) dryRun(ctx context.Context, serviceName string) (*PurgeResult, error) {
	res := &PurgeResult{ServiceName: serviceName, DryRun: true}

	var err error
	res.EmailLogs, err = p.client.LogEntry.Query().
		Where(logentry.ServiceNameEQ(serviceName), logentry.IsEmailEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge dry run %s: email logs: %w", serviceName, err)
	}

	incidentIDs, err := p.client.Incident.Query().
		Where(incident.ServiceNameEQ(serviceName)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge dry run %s: incidents: %w", serviceName, err)
	}
	res.Incidents = len(incidentIDs)
	if len(incidentIDs) > 0 {
		res.Requests, err = p.client.ResolutionRequest.Query().
			Where(resolutionrequest.IncidentIDIn(incidentIDs...)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("purge dry run %s: resolution requests: %w", serviceName, err)
		}
	}

	res.Logs, err = p.client.LogEntry.Query().
		Where(logentry.ServiceNameEQ(serviceName), logentry.IsEmailEQ(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("purge dry run %s: logs: %w", serviceName, err)
	}
	return res, nil
}
