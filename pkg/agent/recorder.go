package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/sourabhkumawat/healops/pkg/agent/workspace"
)

// RunRecord is the post-run snapshot handed to the recorder.
type RunRecord struct {
	IncidentID   string
	Status       string
	Iterations   int
	Steps        []planner.Step
	ReplanCount  int
	ReplanReason string
	Files        map[string]string
	Notes        []workspace.Note
}

// Recorder persists the terminal state of an agent run.
type Recorder interface {
	PersistRun(ctx context.Context, rec RunRecord) error
}

// EntRecorder writes run snapshots to the agent_plans and agent_workspaces
// tables.
type EntRecorder struct {
	client *ent.Client
	logger *slog.Logger
}

// NewEntRecorder creates a recorder over the ent client.
func NewEntRecorder(client *ent.Client) *EntRecorder {
	if client == nil {
		panic("agent.NewEntRecorder: client must not be nil")
	}
	return &EntRecorder{
		client: client,
		logger: slog.Default().With("component", "agent_recorder"),
	}
}

// PersistRun stores the final plan version and the workspace snapshot.
func (r *EntRecorder) PersistRun(ctx context.Context, rec RunRecord) error {
	steps, err := encodeSteps(rec.Steps)
	if err != nil {
		return fmt.Errorf("encode plan steps: %w", err)
	}
	err = r.client.AgentPlan.Create().
		SetID(uuid.NewString()).
		SetIncidentID(rec.IncidentID).
		SetVersion(rec.ReplanCount + 1).
		SetSteps(steps).
		SetReplanReason(rec.ReplanReason).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("persist plan for incident %s: %w", rec.IncidentID, err)
	}

	completed := 0
	for _, s := range rec.Steps {
		if s.Status == planner.StatusCompleted {
			completed++
		}
	}
	progress := map[string]interface{}{
		"completed":  completed,
		"total":      len(rec.Steps),
		"iterations": rec.Iterations,
		"status":     rec.Status,
	}
	notes := encodeNotes(rec.Notes)

	existing, err := r.client.AgentWorkspace.Query().
		Where(agentworkspace.IncidentIDEQ(rec.IncidentID)).
		Only(ctx)
	switch {
	case err == nil:
		err = r.client.AgentWorkspace.UpdateOne(existing).
			SetFiles(rec.Files).
			SetNotes(notes).
			SetPlanProgress(progress).
			Exec(ctx)
	case ent.IsNotFound(err):
		err = r.client.AgentWorkspace.Create().
			SetID(uuid.NewString()).
			SetIncidentID(rec.IncidentID).
			SetFiles(rec.Files).
			SetNotes(notes).
			SetPlanProgress(progress).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("persist workspace for incident %s: %w", rec.IncidentID, err)
	}
	return nil
}

func encodeSteps(steps []planner.Step) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(steps)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeSteps restores plan steps from a persisted row, for plan restore and
// the to-Markdown round trip.
func DecodeSteps(rows []map[string]interface{}) ([]planner.Step, error) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	var out []planner.Step
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeNotes(notes []workspace.Note) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(notes))
	for _, n := range notes {
		out = append(out, map[string]interface{}{
			"text":     n.Text,
			"category": n.Category,
			"at":       n.At.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}
