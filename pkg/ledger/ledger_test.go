package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
	"github.com/sourabhkumawat/healops/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []string
}

func (p *fakePublisher) PublishResolveIncident(_ context.Context, incidentID, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, incidentID)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func TestEnsureRequested_Idempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	pub := &fakePublisher{}
	l := New(client, pub)
	ctx := context.Background()

	published, err := l.EnsureRequested(ctx, "inc-1", "7", "incident_created_from_log")
	require.NoError(t, err)
	assert.True(t, published)

	// Second call while QUEUED is a no-op.
	published, err = l.EnsureRequested(ctx, "inc-1", "7", "incident_updated_from_log")
	require.NoError(t, err)
	assert.False(t, published)

	assert.Equal(t, 1, pub.count())

	row, err := client.ResolutionRequest.Query().
		Where(resolutionrequest.IncidentIDEQ("inc-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, resolutionrequest.StateQueued, row.State)
	assert.Equal(t, "incident_created_from_log", row.RequestedByTrigger)
}

func TestEnsureRequested_ResetsTerminalRow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	pub := &fakePublisher{}
	l := New(client, pub)
	ctx := context.Background()

	_, err := l.EnsureRequested(ctx, "inc-1", "7", "incident_created_from_log")
	require.NoError(t, err)

	claimed, err := l.TryClaim(ctx, "inc-1")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, l.MarkCompleted(ctx, "inc-1"))

	published, err := l.EnsureRequested(ctx, "inc-1", "7", "incident_updated_from_log")
	require.NoError(t, err)
	assert.True(t, published)
	assert.Equal(t, 2, pub.count())

	row, err := client.ResolutionRequest.Query().
		Where(resolutionrequest.IncidentIDEQ("inc-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, resolutionrequest.StateQueued, row.State)
	assert.Nil(t, row.CompletedAt)
}

func TestTryClaim_ExactlyOneWinner(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	l := New(client, nil)
	ctx := context.Background()

	_, err := l.EnsureRequested(ctx, "inc-1", "7", "manual")
	require.NoError(t, err)

	const claimers = 8
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := l.TryClaim(ctx, "inc-1")
			assert.NoError(t, err)
			if claimed {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)

	row, err := client.ResolutionRequest.Query().
		Where(resolutionrequest.IncidentIDEQ("inc-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, resolutionrequest.StateInFlight, row.State)
	assert.Equal(t, 1, row.Attempts)
	assert.NotNil(t, row.ClaimedAt)
}

func TestMarkFailed_TruncatesError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	l := New(client, nil)
	ctx := context.Background()

	_, err := l.EnsureRequested(ctx, "inc-1", "7", "manual")
	require.NoError(t, err)

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'e'
	}
	require.NoError(t, l.MarkFailed(ctx, "inc-1", assert.AnError))

	row, err := client.ResolutionRequest.Query().
		Where(resolutionrequest.IncidentIDEQ("inc-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, resolutionrequest.StateFailed, row.State)
	require.NotNil(t, row.LastError)
	assert.LessOrEqual(t, len(*row.LastError), 2000)
	assert.NotNil(t, row.CompletedAt)
}

func TestMarkCompleted_RequiresInFlight(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	l := New(client, nil)
	ctx := context.Background()

	_, err := l.EnsureRequested(ctx, "inc-1", "7", "manual")
	require.NoError(t, err)

	// Not claimed yet: completing must fail.
	assert.Error(t, l.MarkCompleted(ctx, "inc-1"))
}
