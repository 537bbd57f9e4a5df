package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/agentrecord"
)

// maxCompletedTasks bounds the per-agent completed-task history.
const maxCompletedTasks = 50

// Registry maintains the per-agent status rows. Updates are row-scoped; two
// runs updating different agents never conflict.
type Registry struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRegistry creates a registry over the agent_records table.
func NewRegistry(client *ent.Client) *Registry {
	if client == nil {
		panic("agent.NewRegistry: client must not be nil")
	}
	return &Registry{
		client: client,
		logger: slog.Default().With("component", "agent_registry"),
	}
}

// EnsureAgent creates the agent row if it does not exist, refreshing name,
// role, and keywords when it does.
func (r *Registry) EnsureAgent(ctx context.Context, id, name, role string, keywords []string) error {
	exists, err := r.client.AgentRecord.Query().
		Where(agentrecord.IDEQ(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check agent %s: %w", id, err)
	}
	if exists {
		err = r.client.AgentRecord.UpdateOneID(id).
			SetName(name).
			SetRole(role).
			SetKeywords(keywords).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("refresh agent %s: %w", id, err)
		}
		return nil
	}
	err = r.client.AgentRecord.Create().
		SetID(id).
		SetName(name).
		SetRole(role).
		SetKeywords(keywords).
		SetStatus(agentrecord.StatusAvailable).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create agent %s: %w", id, err)
	}
	return nil
}

// MarkWorking moves an available agent to working with the current task.
// Disabled agents are left untouched.
func (r *Registry) MarkWorking(ctx context.Context, id, task string) error {
	n, err := r.client.AgentRecord.Update().
		Where(
			agentrecord.IDEQ(id),
			agentrecord.StatusNEQ(agentrecord.StatusDisabled),
		).
		SetStatus(agentrecord.StatusWorking).
		SetCurrentTask(task).
		SetLastActiveAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark agent %s working: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("agent %s is disabled or missing", id)
	}
	return nil
}

// MarkAvailable returns a working agent to available, clearing the current
// task and appending one entry to the bounded completed-task history.
func (r *Registry) MarkAvailable(ctx context.Context, id string, completedTask map[string]interface{}) error {
	row, err := r.client.AgentRecord.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load agent %s: %w", id, err)
	}
	if row.Status == agentrecord.StatusDisabled {
		return nil
	}

	history := row.CompletedTasks
	if completedTask != nil {
		history = append(history, completedTask)
		if len(history) > maxCompletedTasks {
			history = history[len(history)-maxCompletedTasks:]
		}
	}

	err = r.client.AgentRecord.UpdateOneID(id).
		SetStatus(agentrecord.StatusAvailable).
		ClearCurrentTask().
		SetCompletedTasks(history).
		SetLastActiveAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark agent %s available: %w", id, err)
	}
	return nil
}

// MarkIdle moves agents inactive past the threshold from available to idle.
// Returns how many rows changed.
func (r *Registry) MarkIdle(ctx context.Context, inactiveFor time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-inactiveFor)
	n, err := r.client.AgentRecord.Update().
		Where(
			agentrecord.StatusEQ(agentrecord.StatusAvailable),
			agentrecord.LastActiveAtLT(cutoff),
		).
		SetStatus(agentrecord.StatusIdle).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark idle agents: %w", err)
	}
	return n, nil
}
