package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/ent/agentrecord"
	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/sourabhkumawat/healops/pkg/agent/workspace"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	require.NoError(t, reg.EnsureAgent(ctx, "resolver", "Resolver", "code fixes", []string{"fixer"}))
	// Second call refreshes instead of failing.
	require.NoError(t, reg.EnsureAgent(ctx, "resolver", "Resolver", "code fixes and PRs", []string{"fixer", "bot"}))

	require.NoError(t, reg.MarkWorking(ctx, "resolver", "resolve inc-1"))
	row, err := client.AgentRecord.Get(ctx, "resolver")
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusWorking, row.Status)
	require.NotNil(t, row.CurrentTask)
	assert.Equal(t, "resolve inc-1", *row.CurrentTask)

	require.NoError(t, reg.MarkAvailable(ctx, "resolver", map[string]interface{}{
		"incident_id": "inc-1",
		"status":      "success",
	}))
	row, err = client.AgentRecord.Get(ctx, "resolver")
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusAvailable, row.Status)
	assert.Nil(t, row.CurrentTask)
	assert.Len(t, row.CompletedTasks, 1)
}

func TestRegistry_CompletedTasksBounded(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	require.NoError(t, reg.EnsureAgent(ctx, "resolver", "Resolver", "", nil))
	for i := 0; i < maxCompletedTasks+10; i++ {
		require.NoError(t, reg.MarkWorking(ctx, "resolver", "task"))
		require.NoError(t, reg.MarkAvailable(ctx, "resolver", map[string]interface{}{"n": i}))
	}

	row, err := client.AgentRecord.Get(ctx, "resolver")
	require.NoError(t, err)
	assert.Len(t, row.CompletedTasks, maxCompletedTasks)
	// Newest entries survive.
	assert.EqualValues(t, maxCompletedTasks+9, row.CompletedTasks[maxCompletedTasks-1]["n"])
}

func TestRegistry_DisabledIsTerminal(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	require.NoError(t, reg.EnsureAgent(ctx, "resolver", "Resolver", "", nil))
	require.NoError(t, client.AgentRecord.UpdateOneID("resolver").
		SetStatus(agentrecord.StatusDisabled).
		Exec(ctx))

	assert.Error(t, reg.MarkWorking(ctx, "resolver", "task"))
	// MarkAvailable leaves a disabled agent untouched.
	require.NoError(t, reg.MarkAvailable(ctx, "resolver", nil))
	row, err := client.AgentRecord.Get(ctx, "resolver")
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusDisabled, row.Status)
}

func TestRegistry_MarkIdle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	require.NoError(t, reg.EnsureAgent(ctx, "stale", "Stale", "", nil))
	require.NoError(t, client.AgentRecord.UpdateOneID("stale").
		SetLastActiveAt(time.Now().UTC().Add(-2 * time.Hour)).
		Exec(ctx))
	require.NoError(t, reg.EnsureAgent(ctx, "fresh", "Fresh", "", nil))
	require.NoError(t, client.AgentRecord.UpdateOneID("fresh").
		SetLastActiveAt(time.Now().UTC()).
		Exec(ctx))

	n, err := reg.MarkIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := client.AgentRecord.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusIdle, row.Status)
}

func TestEntRecorder_PersistAndRestore(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	rec := NewEntRecorder(client)
	ctx := context.Background()

	steps := []planner.Step{
		{StepNumber: 1, Description: "read files", Status: planner.StatusCompleted, Result: "ok"},
		{StepNumber: 2, Description: "fix bug", Status: planner.StatusFailed, Errors: []string{"boom"}},
	}
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	err := rec.PersistRun(ctx, RunRecord{
		IncidentID:  "inc-1",
		Status:      StatusPartial,
		Iterations:  4,
		Steps:       steps,
		ReplanCount: 1,
		Files:       map[string]string{"src/a.ts": "fixed"},
		Notes:       []workspace.Note{{Text: "traced to guard", Category: "analysis", At: now}},
	})
	require.NoError(t, err)

	plans, err := client.AgentPlan.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 2, plans[0].Version)

	restored, err := DecodeSteps(plans[0].Steps)
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.Equal(t, steps[0], restored[0])
	assert.Equal(t, steps[1], restored[1])

	// Restoring into a planner yields the same Markdown.
	p := planner.New(3)
	p.Restore(restored)
	q := planner.New(3)
	q.Restore(steps)
	assert.Equal(t, q.ToTodoMD(), p.ToTodoMD())

	spaces, err := client.AgentWorkspace.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "fixed", spaces[0].Files["src/a.ts"])
	assert.EqualValues(t, 1, spaces[0].PlanProgress["completed"])

	// A second persist for the same incident updates the workspace row.
	err = rec.PersistRun(ctx, RunRecord{
		IncidentID: "inc-1",
		Status:     StatusSuccess,
		Steps:      steps,
		Files:      map[string]string{"src/a.ts": fmt.Sprintf("fixed v%d", 2)},
	})
	require.NoError(t, err)
	spaces, err = client.AgentWorkspace.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "fixed v2", spaces[0].Files["src/a.ts"])
}
