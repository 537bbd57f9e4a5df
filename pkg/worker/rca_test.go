package worker

import (
	"context"
	"testing"

	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRCA_PostsPersistedRootCause(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "acme/shop", nil)
	require.NoError(t, client.Incident.UpdateOneID(inc.ID).
		SetRootCause("getUser dereferences a deleted record").
		SetPrURL("https://github.com/acme/shop/pull/42").
		Exec(context.Background()))

	chat := &fakeChat{}
	r := newResolver(client, newFakeLedger(true), &fakeRunner{}, ResolverOptions{
		Chat: chat, Channel: "#incidents",
	})

	require.NoError(t, r.HandleRCA(context.Background(), models.Task{
		Type:       models.TaskRCACursorSlack,
		IncidentID: inc.ID,
	}))

	require.Len(t, chat.messages, 1)
	assert.Contains(t, chat.messages[0], "getUser dereferences a deleted record")
	assert.Contains(t, chat.messages[0], "pull/42")
}

func TestHandleRCA_RunsAnalysisWhenMissing(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	chat := &fakeChat{}
	r := newResolver(client, newFakeLedger(true), &fakeRunner{}, ResolverOptions{
		Chat: chat, Channel: "#incidents",
		LLM: &analysisLLM{text: "null user record reaches getUser"},
	})

	require.NoError(t, r.HandleRCA(context.Background(), models.Task{
		Type:       models.TaskRCACursorSlack,
		IncidentID: inc.ID,
	}))

	row, err := client.Incident.Get(context.Background(), inc.ID)
	require.NoError(t, err)
	assert.Equal(t, "null user record reaches getUser", row.RootCause)
	require.Len(t, chat.messages, 1)
	assert.Contains(t, chat.messages[0], "null user record reaches getUser")
	// Summarizing never moves the incident state machine.
	assert.Equal(t, incident.StatusOpen, row.Status)
}

func TestHandleRCA_PendingWhenAnalysisUnavailable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	inc := seedIncident(t, client, "", nil)

	chat := &fakeChat{}
	r := newResolver(client, newFakeLedger(true), &fakeRunner{}, ResolverOptions{
		Chat: chat, Channel: "#incidents",
	})

	require.NoError(t, r.HandleRCA(context.Background(), models.Task{
		Type:       models.TaskRCACursorSlack,
		IncidentID: inc.ID,
	}))

	require.Len(t, chat.messages, 1)
	assert.Contains(t, chat.messages[0], "still pending")
}

func TestHandleRCA_DropsMissingIncident(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	chat := &fakeChat{}
	r := newResolver(client, newFakeLedger(true), &fakeRunner{}, ResolverOptions{
		Chat: chat, Channel: "#incidents",
	})

	require.NoError(t, r.HandleRCA(context.Background(), models.Task{
		Type:       models.TaskRCACursorSlack,
		IncidentID: "no-such-incident",
	}))
	assert.Empty(t, chat.messages)
}
