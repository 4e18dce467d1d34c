package pg

import (
	"context"
	"fmt"
)

// EnsureSchema creates the collaborator tables when they do not exist yet.
// This is deliberate table bootstrap, not a migration system.
func EnsureSchema(ctx context.Context, pool *ConnectionPool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS bookmarks (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'General',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, url)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_user ON bookmarks (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			email TEXT PRIMARY KEY,
			subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS article_views (
			url TEXT PRIMARY KEY,
			view_count BIGINT NOT NULL DEFAULT 0,
			last_viewed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.GetConn().Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
