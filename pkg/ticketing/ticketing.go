// Package ticketing creates and updates the Linear tracking ticket for an
// incident. Creation is async-first: the reducer schedules a create_ticket
// task on the tickets topic, and this package's consumer performs the actual
// GraphQL work; synchronous creation is the fallback when scheduling fails.
package ticketing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/pkg/linear"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// IssueClient is the Linear surface the service uses. Satisfied by
// *linear.Client.
type IssueClient interface {
	CreateIssue(ctx context.Context, teamID, title, description string, priority int) (*linear.Issue, error)
	AddCommentToIssue(ctx context.Context, issueID, body string) error
}

// Publisher schedules async ticket creation. Satisfied by *bus.Gateway.
type Publisher interface {
	PublishCreateTicket(ctx context.Context, incidentID string) error
}

// ClientFactory builds an IssueClient from a user's Linear integration
// config. Production wiring constructs linear.NewClient from the stored
// OAuth token; tests inject fakes.
type ClientFactory func(ctx context.Context, config map[string]interface{}) (IssueClient, error)

// Service implements ticket scheduling, creation, and commenting.
type Service struct {
	client    *ent.Client
	publisher Publisher
	clients   ClientFactory
	logger    *slog.Logger
}

// Options wires a Service. Publisher may be nil: ScheduleTicket then always
// fails over to synchronous creation.
type Options struct {
	Client    *ent.Client
	Publisher Publisher
	Clients   ClientFactory
}

// New creates a Service.
func New(opts Options) *Service {
	if opts.Client == nil {
		panic("ticketing.New: client must not be nil")
	}
	if opts.Clients == nil {
		panic("ticketing.New: client factory must not be nil")
	}
	return &Service{
		client:    opts.Client,
		publisher: opts.Publisher,
		clients:   opts.Clients,
		logger:    slog.Default().With("component", "ticketing"),
	}
}

// OAuthClientFactory builds the production ClientFactory. The integration
// config carries the OAuth token state and the target team.
func OAuthClientFactory(clientID, clientSecret string) ClientFactory {
	return func(ctx context.Context, config map[string]interface{}) (IssueClient, error) {
		access, _ := config["access_token"].(string)
		if access == "" {
			return nil, fmt.Errorf("linear integration config has no access_token")
		}
		refresh, _ := config["refresh_token"].(string)
		token := linear.OAuthToken{AccessToken: access, RefreshToken: refresh}
		if raw, ok := config["token_expiry"].(string); ok {
			if expiry, err := time.Parse(time.RFC3339, raw); err == nil {
				token.Expiry = expiry
			}
		}
		return linear.NewClient(ctx, clientID, clientSecret, token), nil
	}
}

// ScheduleTicket enqueues async ticket creation for the incident.
func (s *Service) ScheduleTicket(ctx context.Context, incidentID string) error {
	if s.publisher == nil {
		return fmt.Errorf("ticket scheduling unavailable: no publisher")
	}
	return s.publisher.PublishCreateTicket(ctx, incidentID)
}

// CreateTicket creates the Linear issue synchronously and returns its
// identifier and URL.
func (s *Service) CreateTicket(ctx context.Context, inc *ent.Incident) (string, string, error) {
	issues, teamID, err := s.issueClientFor(ctx, inc.UserID)
	if err != nil {
		return "", "", err
	}

	logs := s.loadLogs(ctx, inc)
	issue, err := issues.CreateIssue(ctx,
		teamID,
		inc.Title,
		linear.EnhancedDescription(inc, logs),
		linear.PriorityForSeverity(string(inc.Severity)),
	)
	if err != nil {
		return "", "", fmt.Errorf("create ticket for incident %s: %w", inc.ID, err)
	}
	return issue.Identifier, issue.URL, nil
}

// CommentOnTicket appends a comment to the incident's tracking ticket. A
// no-op when the incident has no ticket.
func (s *Service) CommentOnTicket(ctx context.Context, inc *ent.Incident, body string) error {
	ticketID := models.Metadata(inc.Metadata).String(models.MetaTicketID)
	if ticketID == "" {
		return nil
	}
	issues, _, err := s.issueClientFor(ctx, inc.UserID)
	if err != nil {
		return err
	}
	if err := issues.AddCommentToIssue(ctx, ticketID, body); err != nil {
		return fmt.Errorf("comment on ticket %s: %w", ticketID, err)
	}
	return nil
}

// HandleTask is the tickets topic consumer entry point: it performs the
// scheduled creation and persists the ticket identity onto the incident.
func (s *Service) HandleTask(ctx context.Context, task models.Task) error {
	if task.Type != models.TaskCreateTicket {
		s.logger.Warn("Ignoring unexpected task type", "task_type", task.Type)
		return nil
	}
	logger := s.logger.With("incident_id", task.IncidentID)

	inc, err := s.client.Incident.Get(ctx, task.IncidentID)
	if ent.IsNotFound(err) {
		logger.Warn("Incident not found, dropping ticket task")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load incident %s: %w", task.IncidentID, err)
	}
	if models.Metadata(inc.Metadata).String(models.MetaTicketID) != "" {
		// Redelivery after a completed creation; nothing to do.
		return nil
	}

	ticketID, ticketURL, err := s.CreateTicket(ctx, inc)
	if err != nil {
		// Dropped, not retried: the incident survives without a ticket and
		// the sync fallback already covers the scheduling failure mode.
		logger.Warn("Scheduled ticket creation failed", "error", err)
		return nil
	}

	meta := models.Metadata(inc.Metadata).Merge(models.Metadata{
		models.MetaTicketID:  ticketID,
		models.MetaTicketURL: ticketURL,
	})
	if err := s.client.Incident.UpdateOneID(inc.ID).SetMetadata(meta).Exec(ctx); err != nil {
		return fmt.Errorf("persist ticket identity for incident %s: %w", inc.ID, err)
	}
	logger.Info("Ticket created", "ticket_id", ticketID)
	return nil
}

// issueClientFor builds the Linear client for the user's oldest active
// Linear integration and returns the configured team.
func (s *Service) issueClientFor(ctx context.Context, userID string) (IssueClient, string, error) {
	integ, err := s.client.Integration.Query().
		Where(
			integration.UserIDEQ(userID),
			integration.ProviderEQ(integration.ProviderLinear),
			integration.StatusEQ(integration.StatusActive),
		).
		Order(ent.Asc(integration.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, "", fmt.Errorf("user %s has no active linear integration", userID)
	}
	if err != nil {
		return nil, "", fmt.Errorf("linear integration lookup for user %s: %w", userID, err)
	}

	teamID, _ := integ.Config["team_id"].(string)
	if teamID == "" {
		return nil, "", fmt.Errorf("linear integration %s has no team_id", integ.ID)
	}
	issues, err := s.clients(ctx, integ.Config)
	if err != nil {
		return nil, "", fmt.Errorf("linear client for integration %s: %w", integ.ID, err)
	}
	return issues, teamID, nil
}

func (s *Service) loadLogs(ctx context.Context, inc *ent.Incident) []*ent.LogEntry {
	if len(inc.LogIds) == 0 {
		return nil
	}
	logs, err := s.client.LogEntry.Query().
		Where(logentry.IDIn(inc.LogIds...)).
		Order(ent.Asc(logentry.FieldTimestamp)).
		All(ctx)
	if err != nil {
		s.logger.Warn("Log load for ticket description failed", "incident_id", inc.ID, "error", err)
		return nil
	}
	return logs
}
