// Package bus implements the message bus gateway on Redis Streams.
//
// Each topic is split into a fixed number of partition streams
// (healops:<topic>:<n>). A task's key is hashed to pick the partition, so all
// work for one incident lands on one stream and is consumed in FIFO order by
// a single group consumer. Delivery is at-least-once: effective exactly-once
// processing comes from the resolution ledger claim, not from the bus.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// Topics used by the core.
const (
	TopicIncidents = "incidents"
	TopicTickets   = "tickets"
)

// taskField is the stream entry field carrying the JSON task payload.
const taskField = "task"

// Gateway publishes tasks onto partitioned Redis streams.
type Gateway struct {
	rdb        *redis.Client
	partitions int
}

// NewGateway creates a bus gateway over the given Redis client.
func NewGateway(rdb *redis.Client, partitions int) *Gateway {
	if partitions <= 0 {
		partitions = 1
	}
	return &Gateway{rdb: rdb, partitions: partitions}
}

// Partition maps a task key to its partition index using FNV-1a.
func (g *Gateway) Partition(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(g.partitions))
}

// StreamName returns the Redis stream for a topic partition.
func StreamName(topic string, partition int) string {
	return fmt.Sprintf("healops:%s:%d", topic, partition)
}

// Publish appends a task to the partition stream chosen by key. The task's
// CreatedAt is stamped if unset.
func (g *Gateway) Publish(ctx context.Context, topic, key string, task models.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	stream := StreamName(topic, g.Partition(key))
	if err := g.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{taskField: payload},
	}).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", stream, err)
	}
	return nil
}

// PublishProcessLog enqueues a process_log_entry task keyed to colocate all
// logs of one logical incident on one partition.
func (g *Gateway) PublishProcessLog(ctx context.Context, logID, userID, serviceName, source string) error {
	key := fmt.Sprintf("%s:%s:%s", userID, serviceName, source)
	return g.Publish(ctx, TopicIncidents, key, models.Task{
		Type:  models.TaskProcessLogEntry,
		LogID: logID,
	})
}

// PublishResolveIncident enqueues a resolve_incident task keyed by incident.
func (g *Gateway) PublishResolveIncident(ctx context.Context, incidentID, requestedByUserID string) error {
	return g.Publish(ctx, TopicIncidents, incidentID, models.Task{
		Type:              models.TaskResolveIncident,
		IncidentID:        incidentID,
		RequestedByUserID: requestedByUserID,
	})
}

// PublishCreateTicket enqueues a create_ticket task on the tickets topic,
// keyed by incident.
func (g *Gateway) PublishCreateTicket(ctx context.Context, incidentID string) error {
	return g.Publish(ctx, TopicTickets, incidentID, models.Task{
		Type:       models.TaskCreateTicket,
		IncidentID: incidentID,
	})
}

// PublishRCACursorSlack enqueues an rca_cursor_slack task keyed by incident.
func (g *Gateway) PublishRCACursorSlack(ctx context.Context, incidentID, userID string) error {
	return g.Publish(ctx, TopicIncidents, incidentID, models.Task{
		Type:       models.TaskRCACursorSlack,
		IncidentID: incidentID,
		UserID:     userID,
	})
}
