package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCleanupConfig() config.CleanupConfig {
	return config.CleanupConfig{
		Interval:          time.Hour,
		AgentEventTTL:     7 * 24 * time.Hour,
		ResolvedAfter:     30 * 24 * time.Hour,
		ScratchpadFileTTL: 24 * time.Hour,
	}
}

func seedEvent(t *testing.T, client *ent.Client, at time.Time) {
	t.Helper()
	err := client.AgentEvent.Create().
		SetID(uuid.NewString()).
		SetIncidentID("inc-1").
		SetType("plan_step_started").
		SetTimestamp(at).
		Exec(context.Background())
	require.NoError(t, err)
}

func seedRequest(t *testing.T, client *ent.Client, incidentID string, state resolutionrequest.State, completedAt *time.Time) {
	t.Helper()
	create := client.ResolutionRequest.Create().
		SetIncidentID(incidentID).
		SetState(state).
		SetRequestedByUserID("7").
		SetRequestedByTrigger("manual")
	if completedAt != nil {
		create.SetCompletedAt(*completedAt)
	}
	require.NoError(t, create.Exec(context.Background()))
}

func seedServiceData(t *testing.T, client *ent.Client, service string, emailLogs, appLogs, incidents int) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	for i := 0; i < emailLogs; i++ {
		require.NoError(t, client.LogEntry.Create().
			SetID(uuid.NewString()).
			SetTimestamp(now).
			SetServiceName(service).
			SetSeverity(logentry.SeverityError).
			SetMessage("mailed alert").
			SetSource("email").
			SetUserID("7").
			SetIsEmail(true).
			Exec(ctx))
	}
	for i := 0; i < appLogs; i++ {
		require.NoError(t, client.LogEntry.Create().
			SetID(uuid.NewString()).
			SetTimestamp(now).
			SetServiceName(service).
			SetSeverity(logentry.SeverityError).
			SetMessage("boom").
			SetSource("app").
			SetUserID("7").
			Exec(ctx))
	}
	for i := 0; i < incidents; i++ {
		id := uuid.NewString()
		require.NoError(t, client.Incident.Create().
			SetID(id).
			SetTitle("incident").
			SetServiceName(service).
			SetSource("app").
			SetUserID("7").
			SetLogIds([]string{}).
			SetFirstSeenAt(now).
			SetLastSeenAt(now).
			Exec(ctx))
		seedRequest(t, client, id, resolutionrequest.StateCompleted, &now)
	}
}

func TestRetention_ExpiresOldAgentEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetention(testCleanupConfig(), client, "")
	now := time.Now().UTC()
	r.now = func() time.Time { return now }

	seedEvent(t, client, now.Add(-8*24*time.Hour))
	seedEvent(t, client, now.Add(-time.Hour))

	r.RunOnce(context.Background())

	n, err := client.AgentEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRetention_ExpiresTerminalRequestsOnly(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := NewRetention(testCleanupConfig(), client, "")
	now := time.Now().UTC()
	r.now = func() time.Time { return now }

	old := now.Add(-31 * 24 * time.Hour)
	recent := now.Add(-time.Hour)
	seedRequest(t, client, "inc-old", resolutionrequest.StateCompleted, &old)
	seedRequest(t, client, "inc-recent", resolutionrequest.StateFailed, &recent)
	seedRequest(t, client, "inc-active", resolutionrequest.StateInFlight, nil)

	r.RunOnce(context.Background())

	rows, err := client.ResolutionRequest.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	ids := []string{rows[0].IncidentID, rows[1].IncidentID}
	assert.NotContains(t, ids, "inc-old")
}

func TestRetention_SweepsStaleScratchpads(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	dir := t.TempDir()
	r := NewRetention(testCleanupConfig(), client, dir)

	stale := filepath.Join(dir, "scratchpad_inc-old.md")
	fresh := filepath.Join(dir, "notes_inc-new.txt")
	require.NoError(t, os.WriteFile(stale, []byte("plan"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("notes"), 0o644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	r.RunOnce(context.Background())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestPurge_DryRunCountsWithoutDeleting(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedServiceData(t, client, "svc-a", 2, 3, 1)
	seedServiceData(t, client, "svc-b", 0, 1, 1)

	p := NewPurger(client)
	res, err := p.Purge(context.Background(), "svc-a", false)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, 2, res.EmailLogs)
	assert.Equal(t, 3, res.Logs)
	assert.Equal(t, 1, res.Incidents)
	assert.Equal(t, 1, res.Requests)

	n, err := client.LogEntry.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestPurge_DeletesOnlyTargetService(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedServiceData(t, client, "svc-a", 2, 3, 2)
	seedServiceData(t, client, "svc-b", 1, 1, 1)
	ctx := context.Background()

	p := NewPurger(client)
	res, err := p.Purge(ctx, "svc-a", true)
	require.NoError(t, err)
	assert.False(t, res.DryRun)
	assert.Equal(t, 2, res.EmailLogs)
	assert.Equal(t, 3, res.Logs)
	assert.Equal(t, 2, res.Incidents)
	assert.Equal(t, 2, res.Requests)

	remainingLogs, err := client.LogEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, remainingLogs)
	remainingIncidents, err := client.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remainingIncidents)
	remainingRequests, err := client.ResolutionRequest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remainingRequests)
}

func TestPurge_RequiresServiceName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	p := NewPurger(client)
	_, err := p.Purge(context.Background(), "", true)
	assert.Error(t, err)
}
