// Package events broadcasts agent run events via PostgreSQL NOTIFY for
// cross-pod delivery. Persistent events are stored in the agent_events table
// then broadcast; transient progress events are broadcast only.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypePlanStepStarted   = "plan_step_started"
	EventTypePlanStepCompleted = "plan_step_completed"
	EventTypePlanStepFailed    = "plan_step_failed"
	EventTypePlanUpdated       = "plan_updated"
	EventTypeError             = "error"
	EventTypeRunCompleted      = "run_completed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeProgress = "progress"
)

// GlobalIncidentsChannel carries incident-level status events for dashboards.
const GlobalIncidentsChannel = "incidents"

// IncidentChannel returns the channel name for one incident's events.
// Format: "incident:{incident_id}"
func IncidentChannel(incidentID string) string {
	return "incident:" + incidentID
}

// Event is one broadcastable agent event.
type Event struct {
	Type       string         `json:"type"`
	EventID    string         `json:"event_id"`
	IncidentID string         `json:"incident_id"`
	AgentName  string         `json:"agent_name,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

// Publisher persists and broadcasts agent events.
// The db parameter should be the *sql.DB from database.Client.DB().
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher.
func NewPublisher(db *sql.DB) *Publisher {
	if db == nil {
		panic("events.NewPublisher: db must not be nil")
	}
	return &Publisher{db: db}
}

// PublishAgentEvent persists an event to agent_events and broadcasts it on
// the incident channel. The INSERT and pg_notify share a transaction, so the
// notification fires only if the row committed.
func (p *Publisher) PublishAgentEvent(ctx context.Context, event Event) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return p.persistAndNotify(ctx, event, IncidentChannel(event.IncidentID), payloadJSON)
}

// PublishRunStatus broadcasts a run status change on the global incidents
// channel without persisting (the ledger already holds the durable state).
func (p *Publisher) PublishRunStatus(ctx context.Context, incidentID, status string) error {
	payloadJSON, err := json.Marshal(map[string]any{
		"type":        EventTypeRunCompleted,
		"incident_id": incidentID,
		"status":      status,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run status payload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalIncidentsChannel, payloadJSON)
}

// PublishProgress broadcasts a transient progress event on the incident
// channel (no DB persistence).
func (p *Publisher) PublishProgress(ctx context.Context, incidentID string, data map[string]any) error {
	payloadJSON, err := json.Marshal(Event{
		Type:       EventTypeProgress,
		EventID:    uuid.NewString(),
		IncidentID: incidentID,
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal progress payload: %w", err)
	}
	return p.notifyOnly(ctx, IncidentChannel(incidentID), payloadJSON)
}

// persistAndNotify persists the event and broadcasts via NOTIFY in a single
// transaction (pg_notify is transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, event Event, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	dataJSON, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO agent_events (event_id, incident_id, type, agent_name, data, timestamp) VALUES ($1, $2, $3, $4, $5, $6)`,
		event.EventID, event.IncidentID, event.Type, nullable(event.AgentName), dataJSON, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded keeps payloads under PostgreSQL's 8000-byte NOTIFY limit,
// replacing oversize ones with a minimal routing envelope so clients can
// fetch the full event from the database.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type       string `json:"type"`
		EventID    string `json:"event_id"`
		IncidentID string `json:"incident_id"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":        routing.Type,
		"event_id":    routing.EventID,
		"incident_id": routing.IncidentID,
		"truncated":   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
