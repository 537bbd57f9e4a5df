// Package reducer folds the ordered log stream into incidents: integration
// liveness upkeep, the severity gate, the dedup-window merge lookup, incident
// creation with LLM titling, ticket initiation, and resolution triggering.
package reducer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/pkg/agent/prompt"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// DefaultDedupWindow is how far back the merge lookup reaches.
const DefaultDedupWindow = 3 * time.Minute

// maxFallbackDescription caps the description when title generation fails.
const maxFallbackDescription = 200

// Resolver is the ledger seam: it guarantees at most one active resolution
// request per incident.
type Resolver interface {
	EnsureRequested(ctx context.Context, incidentID, requestedByUserID, trigger string) (bool, error)
}

// Ticketing initiates the tracking ticket for a new incident. Scheduling is
// preferred; synchronous creation is the fallback.
type Ticketing interface {
	ScheduleTicket(ctx context.Context, incidentID string) error
	CreateTicket(ctx context.Context, inc *ent.Incident) (ticketID, ticketURL string, err error)
}

// Reducer consumes process_log_entry tasks. The bus keys logs by
// (user, service, source), so create-vs-merge for one logical incident is
// serialized onto a single consumer and needs no locks.
type Reducer struct {
	client    *ent.Client
	resolver  Resolver
	llm       llm.Client
	ticketing Ticketing
	window    time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Options configures a Reducer. LLM and Ticketing may be nil: titling then
// always uses the fallback and no tickets are created.
type Options struct {
	Client      *ent.Client
	Resolver    Resolver
	LLM         llm.Client
	Ticketing   Ticketing
	DedupWindow time.Duration
}

// New creates a reducer.
func New(opts Options) *Reducer {
	if opts.Client == nil {
		panic("reducer.New: client must not be nil")
	}
	if opts.Resolver == nil {
		panic("reducer.New: resolver must not be nil")
	}
	window := opts.DedupWindow
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &Reducer{
		client:    opts.Client,
		resolver:  opts.Resolver,
		llm:       opts.LLM,
		ticketing: opts.Ticketing,
		window:    window,
		now:       time.Now,
		logger:    slog.Default().With("component", "reducer"),
	}
}

// HandleTask is the bus consumer entry point.
func (r *Reducer) HandleTask(ctx context.Context, task models.Task) error {
	if task.Type != models.TaskProcessLogEntry {
		r.logger.Warn("Ignoring unexpected task type", "task_type", task.Type)
		return nil
	}
	return r.ProcessLogEntry(ctx, task.LogID)
}

// ProcessLogEntry runs the reducer algorithm for one log.
func (r *Reducer) ProcessLogEntry(ctx context.Context, logID string) error {
	logger := r.logger.With("log_id", logID)

	row, err := r.client.LogEntry.Get(ctx, logID)
	if ent.IsNotFound(err) {
		logger.Warn("Log entry not found, dropping task")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load log %s: %w", logID, err)
	}

	// Per-task integration cache avoids N+1 fetches across the handler.
	cache := newIntegrationCache(r.client)

	r.touchIntegration(ctx, row.IntegrationID, cache)

	if !models.LogSeverity(row.Severity).IsIncidentWorthy() {
		return nil
	}

	now := r.now().UTC()
	open, err := r.client.Incident.Query().
		Where(
			incident.StatusEQ(incident.StatusOpen),
			incident.ServiceNameEQ(row.ServiceName),
			incident.SourceEQ(row.Source),
			incident.UserIDEQ(row.UserID),
			incident.LastSeenAtGTE(now.Add(-r.window)),
		).
		Order(ent.Desc(incident.FieldLastSeenAt)).
		First(ctx)
	switch {
	case err == nil:
		return r.merge(ctx, open, row, now, cache)
	case ent.IsNotFound(err):
		return r.create(ctx, row, now, cache)
	default:
		return fmt.Errorf("merge lookup for log %s: %w", logID, err)
	}
}

// touchIntegration records liveness on the log's integration and activates
// it when needed. Failures are logged, never fatal: liveness is bookkeeping.
func (r *Reducer) touchIntegration(ctx context.Context, integrationID string, cache *integrationCache) {
	if integrationID == "" {
		return
	}
	row, err := cache.get(ctx, integrationID)
	if err != nil {
		r.logger.Warn("Integration lookup failed", "integration_id", integrationID, "error", err)
		return
	}
	update := r.client.Integration.UpdateOneID(integrationID).
		SetLastLogTime(r.now().UTC())
	if row.Status != integration.StatusActive {
		update.SetStatus(integration.StatusActive)
	}
	if err := update.Exec(ctx); err != nil {
		r.logger.Warn("Integration liveness update failed", "integration_id", integrationID, "error", err)
	}
}

// merge folds the log into an existing open incident.
func (r *Reducer) merge(ctx context.Context, inc *ent.Incident, row *ent.LogEntry, now time.Time, cache *integrationCache) error {
	update := r.client.Incident.UpdateOne(inc).
		SetLastSeenAt(now)

	logIDs := inc.LogIds
	if !contains(logIDs, row.ID) {
		logIDs = append(logIDs, row.ID)
		update.SetLogIds(logIDs)
	}

	integrationID := inc.IntegrationID
	if integrationID == "" {
		integrationID = row.IntegrationID
		if integrationID == "" {
			if auto := r.autoAssignIntegration(ctx, row.UserID, row.ServiceName, cache); auto != nil {
				integrationID = auto.ID
			}
		}
		if integrationID != "" {
			update.SetIntegrationID(integrationID)
		}
	}

	if inc.RepoName == "" {
		if repo := r.resolveRepo(ctx, integrationID, row.ServiceName, row.UserID, cache); repo != "" {
			update.SetRepoName(repo)
		}
	}

	if len(row.Metadata) > 0 {
		update.SetMetadata(models.Metadata(inc.Metadata).Merge(models.Metadata(row.Metadata)))
	}

	if models.LogSeverity(row.Severity) == models.LogSeverityCritical {
		current := models.IncidentSeverity(inc.Severity)
		if escalated := current.Escalate(models.IncidentSeverityCritical); escalated != current {
			update.SetSeverity(incident.Severity(escalated))
		}
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("merge log %s into incident %s: %w", row.ID, inc.ID, err)
	}
	r.logger.Info("Merged log into incident",
		"incident_id", inc.ID, "log_id", row.ID, "log_count", len(logIDs))

	if inc.RootCause == "" {
		if _, err := r.resolver.EnsureRequested(ctx, inc.ID, row.UserID, models.TriggerIncidentUpdatedFromLog); err != nil {
			r.logger.Warn("Resolution trigger failed", "incident_id", inc.ID, "error", err)
		}
	}
	return nil
}

// create opens a new incident from the log.
func (r *Reducer) create(ctx context.Context, row *ent.LogEntry, now time.Time, cache *integrationCache) error {
	title, description := r.generateTitle(ctx, row)

	integrationID := row.IntegrationID
	if integrationID == "" {
		if auto := r.autoAssignIntegration(ctx, row.UserID, row.ServiceName, cache); auto != nil {
			integrationID = auto.ID
		}
	}
	repoName := r.resolveRepo(ctx, integrationID, row.ServiceName, row.UserID, cache)

	create := r.client.Incident.Create().
		SetID(uuid.NewString()).
		SetTitle(title).
		SetDescription(description).
		SetSeverity(incident.Severity(models.InitialIncidentSeverity(models.LogSeverity(row.Severity)))).
		SetStatus(incident.StatusOpen).
		SetServiceName(row.ServiceName).
		SetSource(row.Source).
		SetUserID(row.UserID).
		SetLogIds([]string{row.ID}).
		SetTriggerEvent(map[string]interface{}{
			"log_id":  row.ID,
			"message": row.Message,
			"level":   string(row.Severity),
		}).
		SetMetadata(row.Metadata).
		SetFirstSeenAt(now).
		SetLastSeenAt(now)
	if integrationID != "" {
		create.SetIntegrationID(integrationID)
	}
	if repoName != "" {
		create.SetRepoName(repoName)
	}

	inc, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create incident for log %s: %w", row.ID, err)
	}
	r.logger.Info("Created incident",
		"incident_id", inc.ID, "service", row.ServiceName, "severity", inc.Severity)

	r.initiateTicket(ctx, inc, row.UserID, cache)

	if _, err := r.resolver.EnsureRequested(ctx, inc.ID, row.UserID, models.TriggerIncidentCreatedFromLog); err != nil {
		r.logger.Warn("Resolution trigger failed", "incident_id", inc.ID, "error", err)
	}
	return nil
}

// generateTitle asks the LLM for a title and one-line description, falling
// back to a deterministic rendering on any failure.
func (r *Reducer) generateTitle(ctx context.Context, row *ent.LogEntry) (string, string) {
	fallbackTitle := fmt.Sprintf("Detected %s in %s", strings.ToUpper(string(row.Severity)), row.ServiceName)
	fallbackDescription := row.Message
	if len(fallbackDescription) > maxFallbackDescription {
		fallbackDescription = fallbackDescription[:maxFallbackDescription]
	}
	if r.llm == nil {
		return fallbackTitle, fallbackDescription
	}

	resp, err := r.llm.Complete(ctx, llm.Request{
		System: prompt.TitleSystem,
		Prompt: prompt.BuildTitlePrompt(row.ServiceName, string(row.Severity), row.Message),
	})
	if err != nil {
		r.logger.Warn("Title generation failed, using fallback", "error", err)
		return fallbackTitle, fallbackDescription
	}
	title, description := parseTitleResponse(resp.Text)
	if title == "" {
		return fallbackTitle, fallbackDescription
	}
	if description == "" {
		description = fallbackDescription
	}
	return title, description
}

// parseTitleResponse extracts the TITLE:/DESCRIPTION: lines.
func parseTitleResponse(text string) (string, string) {
	var title, description string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
		}
	}
	if len(title) > 80 {
		title = title[:80]
	}
	return title, description
}

// initiateTicket creates the tracking ticket when the user has a Linear
// integration: scheduled when possible, synchronously otherwise, with the
// ticket identity persisted into incident metadata.
func (r *Reducer) initiateTicket(ctx context.Context, inc *ent.Incident, userID string, cache *integrationCache) {
	if r.ticketing == nil {
		return
	}
	linked, err := cache.firstByProvider(ctx, userID, integration.ProviderLinear)
	if err != nil || linked == nil {
		return
	}

	if err := r.ticketing.ScheduleTicket(ctx, inc.ID); err == nil {
		return
	}

	ticketID, ticketURL, err := r.ticketing.CreateTicket(ctx, inc)
	if err != nil {
		r.logger.Warn("Ticket creation failed", "incident_id", inc.ID, "error", err)
		return
	}
	meta := models.Metadata(inc.Metadata).Merge(models.Metadata{
		models.MetaTicketID:  ticketID,
		models.MetaTicketURL: ticketURL,
	})
	if err := r.client.Incident.UpdateOne(inc).SetMetadata(meta).Exec(ctx); err != nil {
		r.logger.Warn("Ticket identity persistence failed", "incident_id", inc.ID, "error", err)
	}
}

// autoAssignIntegration picks the first active integration for the user,
// preferring one whose service_mappings do not contradict the service.
func (r *Reducer) autoAssignIntegration(ctx context.Context, userID, serviceName string, cache *integrationCache) *ent.Integration {
	rows, err := cache.activeForUser(ctx, userID)
	if err != nil {
		r.logger.Warn("Active integration lookup failed", "user_id", userID, "error", err)
		return nil
	}
	var fallback *ent.Integration
	for _, row := range rows {
		mappings := serviceMappings(row.Config)
		if mappings == nil {
			if fallback == nil {
				fallback = row
			}
			continue
		}
		if _, ok := mappings[serviceName]; ok {
			return row
		}
		// Mappings exist but exclude this service: contradicts.
	}
	return fallback
}

// resolveRepo resolves the target repository per the configured order:
// service_mappings[service] → repo_name → repository → project_id, then the
// user's GitHub integration.
func (r *Reducer) resolveRepo(ctx context.Context, integrationID, serviceName, userID string, cache *integrationCache) string {
	if integrationID != "" {
		row, err := cache.get(ctx, integrationID)
		if err == nil {
			if repo := repoFromConfig(row.Config, serviceName); repo != "" {
				return repo
			}
		}
	}
	gh, err := cache.firstByProvider(ctx, userID, integration.ProviderGithub)
	if err != nil || gh == nil {
		return ""
	}
	return repoFromConfig(gh.Config, serviceName)
}

func repoFromConfig(config map[string]interface{}, serviceName string) string {
	if mappings := serviceMappings(config); mappings != nil {
		if repo, ok := mappings[serviceName].(string); ok && repo != "" {
			return repo
		}
	}
	for _, key := range []string{"repo_name", "repository", "project_id"} {
		if repo, ok := config[key].(string); ok && repo != "" {
			return repo
		}
	}
	return ""
}

func serviceMappings(config map[string]interface{}) map[string]interface{} {
	mappings, _ := config["service_mappings"].(map[string]interface{})
	return mappings
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
