package ticketing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/pkg/linear"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssues struct {
	createErr  error
	created    []createdIssue
	comments   map[string][]string
	commentErr error
}

type createdIssue struct {
	TeamID, Title, Description string
	Priority                   int
}

func (f *fakeIssues) CreateIssue(_ context.Context, teamID, title, description string, priority int) (*linear.Issue, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, createdIssue{teamID, title, description, priority})
	return &linear.Issue{
		ID:         "issue-uuid-1",
		Identifier: "OPS-99",
		Title:      title,
		URL:        "https://linear.app/acme/issue/OPS-99",
	}, nil
}

func (f *fakeIssues) AddCommentToIssue(_ context.Context, issueID, body string) error {
	if f.commentErr != nil {
		return f.commentErr
	}
	if f.comments == nil {
		f.comments = map[string][]string{}
	}
	f.comments[issueID] = append(f.comments[issueID], body)
	return nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) PublishCreateTicket(_ context.Context, incidentID string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, incidentID)
	return nil
}

func seedLinearIntegration(t *testing.T, client *ent.Client, config map[string]interface{}) {
	t.Helper()
	require.NoError(t, client.Integration.Create().
		SetID(uuid.NewString()).
		SetUserID("7").
		SetProvider(integration.ProviderLinear).
		SetStatus(integration.StatusActive).
		SetConfig(config).
		Exec(context.Background()))
}

func seedIncident(t *testing.T, client *ent.Client, meta map[string]interface{}) *ent.Incident {
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
		SetServiceName("svc-a").
		SetSource("app").
		SetUserID("7").
		SetLogIds([]string{logRow.ID}).
		SetFirstSeenAt(now).
		SetLastSeenAt(now)
	if meta != nil {
		create.SetMetadata(meta)
	}
	inc, err := create.Save(ctx)
	require.NoError(t, err)
	return inc
}

func newService(client *ent.Client, pub Publisher, issues IssueClient, factoryErr error) *Service {
	return New(Options{
		Client:    client,
		Publisher: pub,
		Clients: func(context.Context, map[string]interface{}) (IssueClient, error) {
			if factoryErr != nil {
				return nil, factoryErr
			}
			return issues, nil
		},
	})
}

func TestScheduleTicketPublishes(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	pub := &fakePublisher{}
	s := newService(client, pub, &fakeIssues{}, nil)

	require.NoError(t, s.ScheduleTicket(context.Background(), "inc-1"))
	assert.Equal(t, []string{"inc-1"}, pub.published)
}

func TestScheduleTicketFailsWithoutPublisher(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	s := newService(client, nil, &fakeIssues{}, nil)
	assert.Error(t, s.ScheduleTicket(context.Background(), "inc-1"))
}

func TestCreateTicketBuildsEnhancedIssue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{
		"access_token": "tok", "team_id": "team-1",
	})
	inc := seedIncident(t, client, nil)
	issues := &fakeIssues{}
	s := newService(client, nil, issues, nil)

	ticketID, ticketURL, err := s.CreateTicket(context.Background(), inc)
	require.NoError(t, err)
	assert.Equal(t, "OPS-99", ticketID)
	assert.Equal(t, "https://linear.app/acme/issue/OPS-99", ticketURL)

	require.Len(t, issues.created, 1)
	created := issues.created[0]
	assert.Equal(t, "team-1", created.TeamID)
	assert.Equal(t, "svc-a crashes on null user", created.Title)
	assert.Equal(t, 2, created.Priority)
	// Description carries the incident facts and the linked log message.
	assert.Contains(t, created.Description, "svc-a")
	assert.Contains(t, created.Description, "TypeError: cannot read name of undefined")
}

func TestCreateTicketRequiresActiveIntegration(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	require.NoError(t, client.Integration.Create().
		SetID(uuid.NewString()).
		SetUserID("7").
		SetProvider(integration.ProviderLinear).
		SetStatus(integration.StatusInactive).
		SetConfig(map[string]interface{}{"access_token": "tok", "team_id": "team-1"}).
		Exec(context.Background()))
	inc := seedIncident(t, client, nil)
	s := newService(client, nil, &fakeIssues{}, nil)

	_, _, err := s.CreateTicket(context.Background(), inc)
	assert.ErrorContains(t, err, "no active linear integration")
}

func TestCreateTicketRequiresTeamID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{"access_token": "tok"})
	inc := seedIncident(t, client, nil)
	s := newService(client, nil, &fakeIssues{}, nil)

	_, _, err := s.CreateTicket(context.Background(), inc)
	assert.ErrorContains(t, err, "team_id")
}

func TestHandleTaskPersistsTicketIdentity(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{
		"access_token": "tok", "team_id": "team-1",
	})
	inc := seedIncident(t, client, map[string]interface{}{"traceId": "t-1"})
	s := newService(client, nil, &fakeIssues{}, nil)

	require.NoError(t, s.HandleTask(context.Background(), models.Task{
		Type:       models.TaskCreateTicket,
		IncidentID: inc.ID,
	}))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	meta := models.Metadata(row.Metadata)
	assert.Equal(t, "OPS-99", meta.String(models.MetaTicketID))
	assert.Equal(t, "https://linear.app/acme/issue/OPS-99", meta.String(models.MetaTicketURL))
	assert.Equal(t, "t-1", meta.String(models.MetaTraceID))
}

func TestHandleTaskSkipsExistingTicket(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{
		"access_token": "tok", "team_id": "team-1",
	})
	inc := seedIncident(t, client, map[string]interface{}{
		models.MetaTicketID: "OPS-7",
	})
	issues := &fakeIssues{}
	s := newService(client, nil, issues, nil)

	require.NoError(t, s.HandleTask(context.Background(), models.Task{
		Type:       models.TaskCreateTicket,
		IncidentID: inc.ID,
	}))
	assert.Empty(t, issues.created)
}

func TestHandleTaskDropsOnCreateFailure(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{
		"access_token": "tok", "team_id": "team-1",
	})
	inc := seedIncident(t, client, nil)
	issues := &fakeIssues{createErr: errors.New("linear 500")}
	s := newService(client, nil, issues, nil)

	// A failed creation is not retried; the task is acknowledged.
	require.NoError(t, s.HandleTask(context.Background(), models.Task{
		Type:       models.TaskCreateTicket,
		IncidentID: inc.ID,
	}))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Empty(t, models.Metadata(row.Metadata).String(models.MetaTicketID))
}

func TestHandleTaskDropsMissingIncident(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	issues := &fakeIssues{}
	s := newService(client, nil, issues, nil)

	require.NoError(t, s.HandleTask(context.Background(), models.Task{
		Type:       models.TaskCreateTicket,
		IncidentID: "no-such-incident",
	}))
	assert.Empty(t, issues.created)
}

func TestCommentOnTicket(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedLinearIntegration(t, client, map[string]interface{}{
		"access_token": "tok", "team_id": "team-1",
	})
	inc := seedIncident(t, client, map[string]interface{}{
		models.MetaTicketID: "OPS-7",
	})
	issues := &fakeIssues{}
	s := newService(client, nil, issues, nil)

	require.NoError(t, s.CommentOnTicket(context.Background(), inc, "fix is up"))
	assert.Equal(t, []string{"fix is up"}, issues.comments["OPS-7"])
}

func TestCommentOnTicketNoopWithoutTicket(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, nil)
	issues := &fakeIssues{}
	s := newService(client, nil, issues, nil)

	require.NoError(t, s.CommentOnTicket(context.Background(), inc, "fix is up"))
	assert.Empty(t, issues.comments)
}
