package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/pkg/agent"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	mu        sync.Mutex
	claim     bool
	claimErr  error
	completed []string
	failed    map[string]string
}

func newFakeLedger(claim bool) *fakeLedger {
	return &fakeLedger{claim: claim, failed: map[string]string{}}
}

func (f *fakeLedger) TryClaim(context.Context, string) (bool, error) {
	return f.claim, f.claimErr
}

func (f *fakeLedger) MarkCompleted(_ context.Context, incidentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, incidentID)
	return nil
}

func (f *fakeLedger) MarkFailed(_ context.Context, incidentID string, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[incidentID] = cause.Error()
	return nil
}

type fakeRunner struct {
	mu     sync.Mutex
	inputs []agent.Input
	result *agent.Result
}

func (f *fakeRunner) Run(_ context.Context, in agent.Input) *agent.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return f.result
}

type fakeRepoHost struct {
	originals map[string]string
	prErr     error
	created   []struct {
		Repo, Title, Body, Head, Base string
		Changes                       []github.FileChange
	}
}

func (f *fakeRepoHost) GetFileContents(_ context.Context, _, path, _ string) (string, error) {
	if content, ok := f.originals[path]; ok {
		return content, nil
	}
	return "", errors.New("not found")
}

func (f *fakeRepoHost) CreatePR(_ context.Context, repo, title, body, head, base string, changes []github.FileChange, _ bool) (*github.PullRequest, error) {
	if f.prErr != nil {
		return nil, f.prErr
	}
	f.created = append(f.created, struct {
		Repo, Title, Body, Head, Base string
		Changes                       []github.FileChange
	}{repo, title, body, head, base, changes})
	pr := &github.PullRequest{Number: 42, HTMLURL: "https://github.com/acme/shop/pull/42"}
	return pr, nil
}

type fakeTickets struct {
	comments map[string][]string
}

func (f *fakeTickets) CommentOnTicket(_ context.Context, inc *ent.Incident, body string) error {
	ticketID := models.Metadata(inc.Metadata).String(models.MetaTicketID)
	if ticketID == "" {
		return nil
	}
	if f.comments == nil {
		f.comments = map[string][]string{}
	}
	f.comments[ticketID] = append(f.comments[ticketID], body)
	return nil
}

type fakeChat struct {
	messages []string
}

func (f *fakeChat) PostMessage(_ context.Context, _, text, _ string) (string, error) {
	f.messages = append(f.messages, text)
	return "ts-1", nil
}

type fakeRegistry struct {
	working   []string
	available []map[string]interface{}
}

func (f *fakeRegistry) MarkWorking(_ context.Context, _, task string) error {
	f.working = append(f.working, task)
	return nil
}

func (f *fakeRegistry) MarkAvailable(_ context.Context, _ string, completed map[string]interface{}) error {
	f.available = append(f.available, completed)
	return nil
}

type analysisLLM struct {
	text string
	err  error
}

func (l *analysisLLM) Complete(context.Context, llm.Request) (*llm.Response, error) {
	if l.err != nil {
		return nil, l.err
	}
	return &llm.Response{Text: l.text}, nil
}

func seedIncident(t *testing.T, client *ent.Client, repoName string, meta map[string]interface{}) *ent.Incident {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	logRow, err := client.LogEntry.Create().
		SetID(uuid.NewString()).
		SetTimestamp(now).
		SetServiceName("svc-a").
		SetSeverity(logentry.SeverityError).
		SetMessage("TypeError: cannot read name of undefined").
		SetSource("app").
		SetUserID("7").
		Save(ctx)
	require.NoError(t, err)

	create := client.Incident.Create().
		SetID(uuid.NewString()).
		SetTitle("svc-a crashes on null user").
		SetSeverity(incident.SeverityHigh).
		SetStatus(incident.StatusOpen).
		SetServiceName("svc-a").
		SetSource("app").
		SetUserID("7").
		SetLogIds([]string{logRow.ID}).
		SetFirstSeenAt(now).
		SetLastSeenAt(now)
	if repoName != "" {
		create.SetRepoName(repoName)
	}
	if meta != nil {
		create.SetMetadata(meta)
	}
	inc, err := create.Save(ctx)
	require.NoError(t, err)
	return inc
}

func newResolver(client *ent.Client, led LedgerAPI, runner Runner, opts ResolverOptions) *Resolver {
	opts.Client = client
	opts.Ledger = led
	opts.Runners = func(string) Runner { return runner }
	return NewResolver(opts)
}

func TestResolve_DropsWhenClaimLost(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	led := newFakeLedger(false)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusSuccess}}
	r := newResolver(client, led, runner, ResolverOptions{})

	require.NoError(t, r.Resolve(context.Background(), "inc-dup"))
	assert.Empty(t, runner.inputs)
	assert.Empty(t, led.completed)
	assert.Empty(t, led.failed)
}

func TestResolve_SuccessOpensPRAndNotifies(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "acme/shop", map[string]interface{}{
		models.MetaTicketID: "OPS-7",
	})
	require.NoError(t, client.Incident.UpdateOneID(inc.ID).SetRootCause("missing null guard in getUser").Exec(context.Background()))

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{
		Status:        agent.StatusSuccess,
		Iterations:    3,
		PlanCompleted: 4,
		PlanTotal:     4,
		Fixes:         map[string]string{"src/user.ts": "fixed content"},
	}}
	repo := &fakeRepoHost{originals: map[string]string{"src/user.ts": "original content"}}
	tickets := &fakeTickets{}
	chat := &fakeChat{}
	registry := &fakeRegistry{}
	r := newResolver(client, led, runner, ResolverOptions{
		Repo: repo, Tickets: tickets, Chat: chat, Registry: registry,
		Channel: "#incidents", BaseBranch: "main",
	})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "acme/shop", created.Repo)
	assert.Equal(t, "Fix: svc-a crashes on null user", created.Title)
	assert.Equal(t, branchPrefix+inc.ID[:8], created.Head)
	assert.Equal(t, "main", created.Base)
	assert.Contains(t, created.Body, "missing null guard in getUser")
	require.Len(t, created.Changes, 1)
	assert.Equal(t, "fixed content", created.Changes[0].Content)

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, row.Status)
	assert.Equal(t, "https://github.com/acme/shop/pull/42", row.PrURL)
	assert.Equal(t, 42, row.PrNumber)
	assert.Equal(t, []string{"src/user.ts"}, row.PrFilesChanged)
	assert.Equal(t, "original content", row.PrOriginalContents["src/user.ts"])
	assert.NotNil(t, row.ResolvedAt)

	assert.Equal(t, []string{inc.ID}, led.completed)
	assert.Len(t, tickets.comments["OPS-7"], 1)
	require.Len(t, chat.messages, 1)
	assert.Contains(t, chat.messages[0], "pull/42")

	require.Len(t, registry.working, 1)
	require.Len(t, registry.available, 1)
	assert.Equal(t, agent.StatusSuccess, registry.available[0]["status"])

	// Runner saw the persisted root cause and the incident's log messages.
	require.Len(t, runner.inputs, 1)
	in := runner.inputs[0]
	assert.Equal(t, "missing null guard in getUser", in.RootCause)
	assert.Equal(t, []string{"TypeError: cannot read name of undefined"}, in.Messages)
}

func TestResolve_SuccessWithoutFixesSkipsPR(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "acme/shop", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{
		Status:        agent.StatusSuccess,
		Iterations:    2,
		PlanCompleted: 3,
		PlanTotal:     3,
	}}
	repo := &fakeRepoHost{originals: map[string]string{"src/user.ts": "original content"}}
	chat := &fakeChat{}
	r := newResolver(client, led, runner, ResolverOptions{
		Repo: repo, Chat: chat, Channel: "#incidents", BaseBranch: "main",
	})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	// Nothing was written during the run, so no pull request is opened.
	assert.Empty(t, repo.created)
	assert.Empty(t, chat.messages)

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, row.Status)
	assert.Equal(t, "Resolved without code changes", row.ActionTaken)
	assert.Empty(t, row.PrURL)
	assert.Zero(t, row.PrNumber)
	assert.Equal(t, []string{inc.ID}, led.completed)
	assert.NotEmpty(t, runner.inputs[0].Fingerprint)
}

func TestResolve_SkippedExternalCompletesLedger(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "acme/shop", nil)

	led := newFakeLedger(true)
	explanation := "## Why we didn't auto-resolve this incident\n\nAll frames are dependency code."
	runner := &fakeRunner{result: &agent.Result{
		Status:          agent.StatusSuccess,
		Skipped:         true,
		SkipExplanation: explanation,
	}}
	repo := &fakeRepoHost{}
	r := newResolver(client, led, runner, ResolverOptions{Repo: repo})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, explanation, row.CodeFixExplanation)
	assert.Equal(t, incident.StatusResolved, row.Status)
	assert.Equal(t, []string{inc.ID}, led.completed)
	assert.Empty(t, repo.created)
}

func TestResolve_ErrorMarksIncidentAndLedgerFailed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusError, Error: "crew timeout after 20m"}}
	r := newResolver(client, led, runner, ResolverOptions{})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusFailed, row.Status)
	assert.Equal(t, "crew timeout after 20m", led.failed[inc.ID])
	assert.Empty(t, led.completed)
}

func TestResolve_PartialFailsLedgerKeepsProgress(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusPartial, PlanCompleted: 2, PlanTotal: 5}}
	r := newResolver(client, led, runner, ResolverOptions{})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	// Partial progress does not fail the incident; the next trigger retries.
	assert.Equal(t, incident.StatusHealing, row.Status)
	assert.Contains(t, led.failed[inc.ID], "resolution incomplete")
}

func TestResolve_AnalysisPersistsRootCause(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusSuccess}}
	r := newResolver(client, led, runner, ResolverOptions{
		LLM: &analysisLLM{text: "getUser dereferences a deleted record"},
	})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, "getUser dereferences a deleted record", row.RootCause)
	require.Len(t, runner.inputs, 1)
	assert.Equal(t, "getUser dereferences a deleted record", runner.inputs[0].RootCause)
}

func TestResolve_AnalysisFailureStillRuns(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusSuccess}}
	r := newResolver(client, led, runner, ResolverOptions{
		LLM: &analysisLLM{err: errors.New("model overloaded")},
	})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))
	require.Len(t, runner.inputs, 1)
	assert.Empty(t, runner.inputs[0].RootCause)
	assert.Equal(t, []string{inc.ID}, led.completed)
}

func TestResolve_PRFailureMarksFailed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "acme/shop", nil)

	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{
		Status: agent.StatusSuccess,
		Fixes:  map[string]string{"src/user.ts": "fixed"},
	}}
	repo := &fakeRepoHost{prErr: errors.New("403 forbidden")}
	r := newResolver(client, led, runner, ResolverOptions{Repo: repo})

	require.NoError(t, r.Resolve(context.Background(), inc.ID))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusFailed, row.Status)
	assert.Contains(t, led.failed[inc.ID], "403 forbidden")
	assert.Empty(t, led.completed)
}

func TestResolve_MissingIncidentFailsLedger(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusSuccess}}
	r := newResolver(client, led, runner, ResolverOptions{})

	require.NoError(t, r.Resolve(context.Background(), "no-such-incident"))
	assert.Contains(t, led.failed["no-such-incident"], "load incident")
	assert.Empty(t, runner.inputs)
}

func TestHandleTask_IgnoresOtherTaskTypes(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	led := newFakeLedger(true)
	runner := &fakeRunner{result: &agent.Result{Status: agent.StatusSuccess}}
	r := newResolver(client, led, runner, ResolverOptions{})

	require.NoError(t, r.HandleTask(context.Background(), models.Task{
		Type:  models.TaskProcessLogEntry,
		LogID: "l-1",
	}))
	assert.Empty(t, runner.inputs)
}
