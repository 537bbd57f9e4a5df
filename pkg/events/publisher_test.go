package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sourabhkumawat/healops/ent/agentevent"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishAgentEvent_Persists(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	p := NewPublisher(db)
	ctx := context.Background()

	err := p.PublishAgentEvent(ctx, Event{
		Type:       EventTypePlanStepStarted,
		IncidentID: "inc-1",
		AgentName:  "resolver",
		Data:       map[string]any{"step": 1},
	})
	require.NoError(t, err)

	rows, err := client.AgentEvent.Query().
		Where(agentevent.IncidentIDEQ("inc-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, EventTypePlanStepStarted, rows[0].Type)
	assert.NotEmpty(t, rows[0].ID)
}

func TestPublishProgress_DoesNotPersist(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	p := NewPublisher(db)
	ctx := context.Background()

	require.NoError(t, p.PublishProgress(ctx, "inc-1", map[string]any{"iteration": 3}))

	n, err := client.AgentEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"error","event_id":"e1","incident_id":"inc-1"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	big, err := json.Marshal(Event{
		Type:       EventTypeError,
		EventID:    "e2",
		IncidentID: "inc-2",
		Data:       map[string]any{"blob": strings.Repeat("x", 10000)},
	})
	require.NoError(t, err)

	out, err = truncateIfNeeded(string(big))
	require.NoError(t, err)
	assert.Less(t, len(out), 500)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, "inc-2", envelope["incident_id"])
	assert.Equal(t, "e2", envelope["event_id"])
}

func TestIncidentChannel(t *testing.T) {
	assert.Equal(t, "incident:inc-1", IncidentChannel("inc-1"))
}
