package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// Handler processes one task. A nil return acknowledges the entry; an error
// leaves it pending for redelivery via the stale-entry reclaim loop.
type Handler func(ctx context.Context, task models.Task) error

// Consumer reads one topic's partition streams with a consumer group. One
// goroutine per partition preserves per-key FIFO ordering.
type Consumer struct {
	rdb        *redis.Client
	topic      string
	group      string
	consumerID string
	partitions int
	handler    Handler

	// reclaimMinIdle is how long a pending entry may sit unacknowledged
	// before another consumer may steal it.
	reclaimMinIdle time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConsumer creates a consumer over all partitions of a topic.
func NewConsumer(rdb *redis.Client, topic, group, consumerID string, partitions int, handler Handler) *Consumer {
	if partitions <= 0 {
		partitions = 1
	}
	return &Consumer{
		rdb:            rdb,
		topic:          topic,
		group:          group,
		consumerID:     consumerID,
		partitions:     partitions,
		handler:        handler,
		reclaimMinIdle: 5 * time.Minute,
		stopCh:         make(chan struct{}),
	}
}

// Start creates the consumer groups and launches one reader per partition.
func (c *Consumer) Start(ctx context.Context) error {
	for p := 0; p < c.partitions; p++ {
		stream := StreamName(c.topic, p)
		err := c.rdb.XGroupCreateMkStream(ctx, stream, c.group, "0").Err()
		if err != nil && !isBusyGroup(err) {
			return fmt.Errorf("create group on %s: %w", stream, err)
		}
	}

	for p := 0; p < c.partitions; p++ {
		c.wg.Add(1)
		go c.readPartition(ctx, p)
	}

	slog.Info("Bus consumer started",
		"topic", c.topic, "group", c.group, "partitions", c.partitions)
	return nil
}

// Stop signals all partition readers to exit and waits for them.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

func (c *Consumer) readPartition(ctx context.Context, partition int) {
	defer c.wg.Done()

	stream := StreamName(c.topic, partition)
	log := slog.With("stream", stream, "group", c.group)
	lastReclaim := time.Now()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		res, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumerID,
			Streams:  []string{stream, ">"},
			Count:    16,
			Block:    time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				// No new entries (or shutting down); fall through to reclaim.
			} else {
				log.Error("Stream read failed", "error", err)
				c.sleep(time.Second)
			}
		}

		for _, streamRes := range res {
			for _, msg := range streamRes.Messages {
				c.handleMessage(ctx, stream, msg, log)
			}
		}

		if time.Since(lastReclaim) >= c.reclaimMinIdle {
			c.reclaimStale(ctx, stream, log)
			lastReclaim = time.Now()
		}
	}
}

// handleMessage decodes and dispatches one stream entry. Undecodable entries
// are acknowledged and dropped; handler failures leave the entry pending.
func (c *Consumer) handleMessage(ctx context.Context, stream string, msg redis.XMessage, log *slog.Logger) {
	raw, ok := msg.Values[taskField].(string)
	if !ok {
		log.Warn("Dropping malformed stream entry", "entry_id", msg.ID)
		c.ack(ctx, stream, msg.ID)
		return
	}

	var task models.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		log.Warn("Dropping undecodable task", "entry_id", msg.ID, "error", err)
		c.ack(ctx, stream, msg.ID)
		return
	}

	if err := c.handler(ctx, task); err != nil {
		log.Error("Task handler failed, leaving entry pending",
			"entry_id", msg.ID, "task_type", task.Type, "error", err)
		return
	}
	c.ack(ctx, stream, msg.ID)
}

// reclaimStale steals pending entries idle past reclaimMinIdle from dead
// consumers. At-least-once delivery; the ledger claim dedupes side effects.
func (c *Consumer) reclaimStale(ctx context.Context, stream string, log *slog.Logger) {
	msgs, _, err := c.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   stream,
		Group:    c.group,
		Consumer: c.consumerID,
		MinIdle:  c.reclaimMinIdle,
		Start:    "0-0",
		Count:    16,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("Stale entry reclaim failed", "error", err)
		}
		return
	}
	for _, msg := range msgs {
		log.Info("Reclaimed stale entry", "entry_id", msg.ID)
		c.handleMessage(ctx, stream, msg, log)
	}
}

func (c *Consumer) ack(ctx context.Context, stream, id string) {
	if err := c.rdb.XAck(ctx, stream, c.group, id).Err(); err != nil {
		slog.Warn("Failed to ack stream entry", "stream", stream, "entry_id", id, "error", err)
	}
}

func (c *Consumer) sleep(d time.Duration) {
	select {
	case <-c.stopCh:
	case <-time.After(d):
	}
}

func isBusyGroup(err error) bool {
	return err != nil && len(err.Error()) >= 9 && err.Error()[:9] == "BUSYGROUP"
}
