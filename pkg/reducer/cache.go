package reducer

import (
	"context"
	"fmt"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/integration"
)

// integrationCache memoizes integration rows for the duration of one task
// handler. Not safe for concurrent use; each handler call builds its own.
type integrationCache struct {
	client       *ent.Client
	byID         map[string]*ent.Integration
	activeByUser map[string][]*ent.Integration
}

func newIntegrationCache(client *ent.Client) *integrationCache {
	return &integrationCache{
		client:       client,
		byID:         make(map[string]*ent.Integration),
		activeByUser: make(map[string][]*ent.Integration),
	}
}

func (c *integrationCache) get(ctx context.Context, id string) (*ent.Integration, error) {
	if row, ok := c.byID[id]; ok {
		return row, nil
	}
	row, err := c.client.Integration.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load integration %s: %w", id, err)
	}
	c.byID[id] = row
	return row, nil
}

// activeForUser fetches all active integrations for a user in one query,
// ordered oldest first so "first integration" is deterministic.
func (c *integrationCache) activeForUser(ctx context.Context, userID string) ([]*ent.Integration, error) {
	if rows, ok := c.activeByUser[userID]; ok {
		return rows, nil
	}
	rows, err := c.client.Integration.Query().
		Where(
			integration.UserIDEQ(userID),
			integration.StatusEQ(integration.StatusActive),
		).
		Order(ent.Asc(integration.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active integrations for user %s: %w", userID, err)
	}
	c.activeByUser[userID] = rows
	for _, row := range rows {
		c.byID[row.ID] = row
	}
	return rows, nil
}

// firstByProvider returns the user's oldest active integration of the given
// provider, or nil when none exists.
func (c *integrationCache) firstByProvider(ctx context.Context, userID string, provider integration.Provider) (*ent.Integration, error) {
	rows, err := c.activeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Provider == provider {
			return row, nil
		}
	}
	return nil, nil
}
