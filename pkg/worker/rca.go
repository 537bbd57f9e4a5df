package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// HandleRCA serves an rca_cursor_slack task: an on-demand root cause summary
// posted to the chat channel. The analysis result is persisted so a later
// resolve run starts from it.
func (r *Resolver) HandleRCA(ctx context.Context, task models.Task) error {
	if task.Type != models.TaskRCACursorSlack {
		r.logger.Warn("Ignoring unexpected task type", "task_type", task.Type)
		return nil
	}
	logger := r.logger.With("incident_id", task.IncidentID)

	inc, err := r.client.Incident.Get(ctx, task.IncidentID)
	if ent.IsNotFound(err) {
		logger.Warn("Incident not found, dropping RCA task")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load incident %s: %w", task.IncidentID, err)
	}

	rootCause := inc.RootCause
	if rootCause == "" {
		messages := logMessages(r.loadLogs(ctx, inc, logger))
		rootCause = r.analyze(ctx, inc, messages, logger)
		if rootCause != "" {
			if err := r.client.Incident.UpdateOneID(inc.ID).SetRootCause(rootCause).Exec(ctx); err != nil {
				logger.Warn("Root cause persistence failed", "error", err)
			}
		}
	}

	r.notifyChat(ctx, rcaSummary(inc, rootCause))
	return nil
}

func rcaSummary(inc *ent.Incident, rootCause string) string {
	var b strings.Builder
	fmt.Fprintf(&b, ":mag: *RCA for %s* (`%s`, severity %s)\n", inc.Title, inc.ServiceName, inc.Severity)
	if rootCause != "" {
		b.WriteString("\n*Root cause*\n")
		b.WriteString(rootCause)
		b.WriteString("\n")
	} else {
		b.WriteString("\nRoot cause analysis is still pending for this incident.\n")
	}
	if inc.PrURL != "" {
		fmt.Fprintf(&b, "\nProposed fix: %s\n", inc.PrURL)
	}
	return b.String()
}
