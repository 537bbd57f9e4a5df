package reducer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	mu       sync.Mutex
	requests []string
	triggers []string
}

func (f *fakeResolver) EnsureRequested(_ context.Context, incidentID, _, trigger string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, incidentID)
	f.triggers = append(f.triggers, trigger)
	return true, nil
}

type fakeTicketing struct {
	scheduleErr error
	scheduled   []string
	created     []string
}

func (f *fakeTicketing) ScheduleTicket(_ context.Context, incidentID string) error {
	if f.scheduleErr != nil {
		return f.scheduleErr
	}
	f.scheduled = append(f.scheduled, incidentID)
	return nil
}

func (f *fakeTicketing) CreateTicket(_ context.Context, inc *ent.Incident) (string, string, error) {
	f.created = append(f.created, inc.ID)
	return "OPS-99", "https://linear.app/acme/issue/OPS-99", nil
}

type titleLLM struct {
	err  error
	text string
}

func (l *titleLLM) Complete(context.Context, llm.Request) (*llm.Response, error) {
	if l.err != nil {
		return nil, l.err
	}
	return &llm.Response{Text: l.text}, nil
}

func seedLog(t *testing.T, client *ent.Client, at time.Time, severity logentry.Severity, message, integrationID string) *ent.LogEntry {
	t.Helper()
	create := client.LogEntry.Create().
		SetID(uuid.NewString()).
		SetTimestamp(at).
		SetServiceName("svc-a").
		SetSeverity(severity).
		SetMessage(message).
		SetSource("app").
		SetUserID("7")
	if integrationID != "" {
		create.SetIntegrationID(integrationID)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func seedIntegration(t *testing.T, client *ent.Client, provider integration.Provider, status integration.Status, config map[string]interface{}) *ent.Integration {
	t.Helper()
	row, err := client.Integration.Create().
		SetID(uuid.NewString()).
		SetUserID("7").
		SetProvider(provider).
		SetStatus(status).
		SetConfig(config).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func newReducer(client *ent.Client, resolver Resolver, model llm.Client, ticketing Ticketing) *Reducer {
	return New(Options{
		Client:    client,
		Resolver:  resolver,
		LLM:       model,
		Ticketing: ticketing,
	})
}

func TestCreateThenMergeWindow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	resolver := &fakeResolver{}
	r := newReducer(client, resolver, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	l1 := seedLog(t, client, base, logentry.SeverityError, "NullPointerException at X", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l1.ID))

	incidents, err := client.Incident.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	inc := incidents[0]
	assert.Equal(t, incident.SeverityMedium, inc.Severity)
	assert.Equal(t, incident.StatusOpen, inc.Status)
	assert.Equal(t, []string{l1.ID}, inc.LogIds)
	assert.Equal(t, "Detected ERROR in svc-a", inc.Title)
	assert.Equal(t, l1.ID, inc.TriggerEvent["log_id"])

	// 90 s later, same signature: merge, not a second incident.
	r.now = func() time.Time { return base.Add(90 * time.Second) }
	l2 := seedLog(t, client, base.Add(90*time.Second), logentry.SeverityError, "NullPointerException at X (retry)", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l2.ID))

	incidents, err = client.Incident.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	merged := incidents[0]
	assert.Equal(t, []string{l1.ID, l2.ID}, merged.LogIds)
	assert.Equal(t, base.Add(90*time.Second), merged.LastSeenAt.UTC())

	// Both passes requested resolution: create then update trigger.
	assert.Equal(t, []string{models.TriggerIncidentCreatedFromLog, models.TriggerIncidentUpdatedFromLog}, resolver.triggers)
}

func TestMerge_EscalatesToCritical(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	resolver := &fakeResolver{}
	r := newReducer(client, resolver, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	l1 := seedLog(t, client, base, logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l1.ID))

	r.now = func() time.Time { return base.Add(2 * time.Minute) }
	l3 := seedLog(t, client, base.Add(2*time.Minute), logentry.SeverityCritical, "boom harder", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l3.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, incident.SeverityCritical, inc.Severity)
	assert.Len(t, resolver.requests, 2)
}

func TestOutsideWindowCreatesNewIncident(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	l1 := seedLog(t, client, base, logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l1.ID))

	r.now = func() time.Time { return base.Add(5 * time.Minute) }
	l2 := seedLog(t, client, base.Add(5*time.Minute), logentry.SeverityError, "boom again", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l2.ID))

	count, err := client.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSeverityGate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	resolver := &fakeResolver{}
	r := newReducer(client, resolver, nil, nil)
	ctx := context.Background()

	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityWarn, "slow query", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	count, err := client.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, resolver.requests)
}

func TestMissingLogIsDropped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	assert.NoError(t, r.ProcessLogEntry(context.Background(), "no-such-log"))
}

func TestIntegrationLivenessAndActivation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	ctx := context.Background()

	integ := seedIntegration(t, client, integration.ProviderSignoz, integration.StatusInactive, nil)
	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityInfo, "ok", integ.ID)
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	row, err := client.Integration.Get(ctx, integ.ID)
	require.NoError(t, err)
	assert.Equal(t, integration.StatusActive, row.Status)
	assert.NotNil(t, row.LastLogTime)
}

func TestRepoResolutionOrder(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	ctx := context.Background()

	integ := seedIntegration(t, client, integration.ProviderSignoz, integration.StatusActive, map[string]interface{}{
		"service_mappings": map[string]interface{}{"svc-a": "acme/svc-a-repo"},
		"repo_name":        "acme/default-repo",
	})
	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "boom", integ.ID)
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme/svc-a-repo", inc.RepoName)
	assert.Equal(t, integ.ID, inc.IntegrationID)
}

func TestRepoFallsBackToGitHubIntegration(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	ctx := context.Background()

	// Log's integration has no repo hints; the user's GitHub integration does.
	integ := seedIntegration(t, client, integration.ProviderSignoz, integration.StatusActive, nil)
	seedIntegration(t, client, integration.ProviderGithub, integration.StatusActive, map[string]interface{}{
		"repository": "acme/shop",
	})
	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "boom", integ.ID)
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme/shop", inc.RepoName)
}

func TestTitleGeneration(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, &titleLLM{
		text: "TITLE: Payment service crashes on null user\nDESCRIPTION: getUser dereferences a missing record.",
	}, nil)
	ctx := context.Background()

	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "TypeError: cannot read name of undefined", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Payment service crashes on null user", inc.Title)
	assert.Equal(t, "getUser dereferences a missing record.", inc.Description)
}

func TestTitleFallsBackOnLLMError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, &titleLLM{err: errors.New("down")}, nil)
	ctx := context.Background()

	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityCritical, "kernel panic", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Detected CRITICAL in svc-a", inc.Title)
	assert.Equal(t, incident.SeverityHigh, inc.Severity)
}

func TestTicketScheduledWhenLinearIntegrationExists(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ticketing := &fakeTicketing{}
	r := newReducer(client, &fakeResolver{}, nil, ticketing)
	ctx := context.Background()

	seedIntegration(t, client, integration.ProviderLinear, integration.StatusActive, nil)
	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	assert.Len(t, ticketing.scheduled, 1)
	assert.Empty(t, ticketing.created)
}

func TestTicketFallsBackToSynchronousCreation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ticketing := &fakeTicketing{scheduleErr: errors.New("queue full")}
	r := newReducer(client, &fakeResolver{}, nil, ticketing)
	ctx := context.Background()

	seedIntegration(t, client, integration.ProviderLinear, integration.StatusActive, nil)
	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	require.Len(t, ticketing.created, 1)
	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OPS-99", inc.Metadata[models.MetaTicketID])
	assert.Equal(t, "https://linear.app/acme/issue/OPS-99", inc.Metadata[models.MetaTicketURL])
}

func TestNoTicketWithoutLinearIntegration(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ticketing := &fakeTicketing{}
	r := newReducer(client, &fakeResolver{}, nil, ticketing)
	ctx := context.Background()

	l := seedLog(t, client, time.Now().UTC(), logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l.ID))

	assert.Empty(t, ticketing.scheduled)
	assert.Empty(t, ticketing.created)
}

func TestMergePreservesRootCauseGate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	resolver := &fakeResolver{}
	r := newReducer(client, resolver, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	l1 := seedLog(t, client, base, logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l1.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Incident.UpdateOne(inc).SetRootCause("known already").Exec(ctx))

	// Merging into an incident with a root cause does not re-trigger.
	r.now = func() time.Time { return base.Add(time.Minute) }
	l2 := seedLog(t, client, base.Add(time.Minute), logentry.SeverityError, "boom", "")
	require.NoError(t, r.ProcessLogEntry(ctx, l2.ID))

	assert.Len(t, resolver.requests, 1)
}

func TestMergeMergesMetadata(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	r := newReducer(client, &fakeResolver{}, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	l1, err := client.LogEntry.Create().
		SetID(uuid.NewString()).
		SetTimestamp(base).
		SetServiceName("svc-a").
		SetSeverity(logentry.SeverityError).
		SetMessage("boom").
		SetSource("app").
		SetUserID("7").
		SetMetadata(map[string]interface{}{"traceId": "t-1", "statusCode": "500"}).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, r.ProcessLogEntry(ctx, l1.ID))

	r.now = func() time.Time { return base.Add(time.Minute) }
	l2, err := client.LogEntry.Create().
		SetID(uuid.NewString()).
		SetTimestamp(base.Add(time.Minute)).
		SetServiceName("svc-a").
		SetSeverity(logentry.SeverityError).
		SetMessage("boom").
		SetSource("app").
		SetUserID("7").
		SetMetadata(map[string]interface{}{"traceId": "t-2", "spanId": "s-9"}).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, r.ProcessLogEntry(ctx, l2.ID))

	inc, err := client.Incident.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t-2", inc.Metadata["traceId"])
	assert.Equal(t, "500", inc.Metadata["statusCode"])
	assert.Equal(t, "s-9", inc.Metadata["spanId"])
}
