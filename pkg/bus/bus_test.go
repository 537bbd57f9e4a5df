package bus

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestPartition_StableAndInRange(t *testing.T) {
	g := NewGateway(nil, 8)

	p1 := g.Partition("user-7:svc-a:app")
	p2 := g.Partition("user-7:svc-a:app")
	assert.Equal(t, p1, p2)
	assert.GreaterOrEqual(t, p1, 0)
	assert.Less(t, p1, 8)
}

func TestPartition_SpreadsKeys(t *testing.T) {
	g := NewGateway(nil, 8)
	seen := map[int]bool{}
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, k := range keys {
		seen[g.Partition(k)] = true
	}
	// FNV over a dozen distinct keys should hit more than one partition.
	assert.Greater(t, len(seen), 1)
}

func TestPublish_SameKeyPreservesOrder(t *testing.T) {
	rdb := newTestRedis(t)
	g := NewGateway(rdb, 4)
	ctx := context.Background()

	require.NoError(t, g.PublishProcessLog(ctx, "log-1", "7", "svc-a", "app"))
	require.NoError(t, g.PublishProcessLog(ctx, "log-2", "7", "svc-a", "app"))
	require.NoError(t, g.PublishProcessLog(ctx, "log-3", "7", "svc-a", "app"))

	stream := StreamName(TopicIncidents, g.Partition("7:svc-a:app"))
	entries, err := rdb.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var ids []string
	for _, e := range entries {
		var task models.Task
		require.NoError(t, decodeTask(e.Values, &task))
		ids = append(ids, task.LogID)
	}
	assert.Equal(t, []string{"log-1", "log-2", "log-3"}, ids)
}

func TestConsumer_DeliversAndAcks(t *testing.T) {
	rdb := newTestRedis(t)
	g := NewGateway(rdb, 2)
	ctx := context.Background()

	var mu sync.Mutex
	var got []models.Task
	handler := func(_ context.Context, task models.Task) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, task)
		return nil
	}

	c := NewConsumer(rdb, TopicIncidents, "healops-workers", "test-consumer", 2, handler)
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	require.NoError(t, g.PublishResolveIncident(ctx, "inc-1", "7"))
	require.NoError(t, g.PublishResolveIncident(ctx, "inc-2", "7"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	seen := map[string]bool{}
	for _, task := range got {
		assert.Equal(t, models.TaskResolveIncident, task.Type)
		seen[task.IncidentID] = true
	}
	assert.True(t, seen["inc-1"])
	assert.True(t, seen["inc-2"])
}

func TestPublish_StampsCreatedAt(t *testing.T) {
	rdb := newTestRedis(t)
	g := NewGateway(rdb, 1)
	ctx := context.Background()

	require.NoError(t, g.PublishResolveIncident(ctx, "inc-1", "7"))

	entries, err := rdb.XRange(ctx, StreamName(TopicIncidents, 0), "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var task models.Task
	require.NoError(t, decodeTask(entries[0].Values, &task))
	assert.WithinDuration(t, time.Now().UTC(), task.CreatedAt, time.Minute)
}

func decodeTask(values map[string]any, task *models.Task) error {
	raw, _ := values[taskField].(string)
	return json.Unmarshal([]byte(raw), task)
}
