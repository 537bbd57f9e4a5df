package worker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/pkg/agent/stream"
	"github.com/sourabhkumawat/healops/pkg/events"
)

// broadcastTimeout bounds one NOTIFY publish.
const broadcastTimeout = 5 * time.Second

// EventBridge forwards one run's stream events to the Postgres NOTIFY
// publisher. Bound to a single incident; the RunnerFactory builds one per
// run.
type EventBridge struct {
	pub        *events.Publisher
	incidentID string
	logger     *slog.Logger
}

// NewEventBridge creates a bridge for one incident's run.
func NewEventBridge(pub *events.Publisher, incidentID string) *EventBridge {
	if pub == nil {
		panic("worker.NewEventBridge: publisher must not be nil")
	}
	return &EventBridge{
		pub:        pub,
		incidentID: incidentID,
		logger:     slog.Default().With("component", "event_bridge", "incident_id", incidentID),
	}
}

// Broadcast publishes one stream event. Best-effort: broadcast failures never
// affect the run.
func (b *EventBridge) Broadcast(e stream.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
	defer cancel()
	err := b.pub.PublishAgentEvent(ctx, events.Event{
		Type:       strings.ToLower(e.Type),
		EventID:    uuid.NewString(),
		IncidentID: b.incidentID,
		AgentName:  e.AgentName,
		Data:       e.Data,
	})
	if err != nil {
		b.logger.Warn("Event broadcast failed", "event_type", e.Type, "error", err)
	}
}
