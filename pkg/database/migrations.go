package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over log messages and incident
// descriptions from the dashboard (out of core scope, but the data is here).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_log_entries_message_gin
		ON log_entries USING gin(to_tsvector('english', message))`)
	if err != nil {
		return fmt.Errorf("failed to create log message GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_incidents_description_gin
		ON incidents USING gin(to_tsvector('english', COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create incident description GIN index: %w", err)
	}

	return nil
}
