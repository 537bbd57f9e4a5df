package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkerConfig(count int) config.WorkerConfig {
	return config.WorkerConfig{
		WorkerCount:        count,
		PollInterval:       10 * time.Millisecond,
		PollIntervalJitter: time.Millisecond,
		OrphanThreshold:    30 * time.Minute,
		OrphanScanInterval: time.Hour,
	}
}

type countingScanner struct {
	mu        sync.Mutex
	calls     int
	threshold time.Duration
}

func (c *countingScanner) RequeueOrphans(_ context.Context, threshold time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.threshold = threshold
	return 0, nil
}

func TestPool_StartRunsStartupOrphanScan(t *testing.T) {
	scanner := &countingScanner{}
	p := NewPool(testWorkerConfig(2), func(context.Context, models.Task) error { return nil }, scanner, nil)

	p.Start(context.Background())
	p.Stop()

	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	assert.Equal(t, 1, scanner.calls)
	assert.Equal(t, 30*time.Minute, scanner.threshold)
}

func TestPool_HandleTaskDispatches(t *testing.T) {
	var handled atomic.Int32
	p := NewPool(testWorkerConfig(2), func(_ context.Context, task models.Task) error {
		if task.IncidentID == "inc-1" {
			handled.Add(1)
		}
		return nil
	}, nil, nil)

	err := p.HandleTask(context.Background(), models.Task{
		Type:       models.TaskResolveIncident,
		IncidentID: "inc-1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, handled.Load())
}

func TestPool_ConcurrencyBounded(t *testing.T) {
	var current, max atomic.Int32
	release := make(chan struct{})
	p := NewPool(testWorkerConfig(2), func(context.Context, models.Task) error {
		n := current.Add(1)
		for {
			old := max.Load()
			if n <= old || max.CompareAndSwap(old, n) {
				break
			}
		}
		<-release
		current.Add(-1)
		return nil
	}, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.HandleTask(context.Background(), models.Task{Type: models.TaskResolveIncident})
		}()
	}

	// Let the first two acquire slots, then drain everyone.
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, max.Load(), int32(2))
	close(release)
	wg.Wait()
	assert.LessOrEqual(t, max.Load(), int32(2))
	assert.Zero(t, current.Load())
}

func TestPool_HandleTaskStopsOnCancel(t *testing.T) {
	block := make(chan struct{})
	p := NewPool(testWorkerConfig(1), func(context.Context, models.Task) error {
		<-block
		return nil
	}, nil, nil)

	go func() { _ = p.HandleTask(context.Background(), models.Task{}) }()
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.HandleTask(ctx, models.Task{})
	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}
