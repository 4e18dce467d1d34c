package pg

import (
	"context"
	"fmt"
)

// ViewStore records article views and exposes the counts the popularity
// ranking consumes.
type ViewStore struct {
	pool *ConnectionPool
}

func NewViewStore(pool *ConnectionPool) *ViewStore {
	return &ViewStore{pool: pool}
}

// Record bumps the view counter for an article URL.
func (s *ViewStore) Record(ctx context.Context, url string) error {
	_, err := s.pool.GetConn().Exec(ctx,
		`INSERT INTO article_views (url, view_count, last_viewed_at)
		 VALUES ($1, 1, now())
		 ON CONFLICT (url) DO UPDATE
		 SET view_count = article_views.view_count + 1, last_viewed_at = now()`,
		url)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// TopURLs returns the most viewed article URLs with their counts.
func (s *ViewStore) TopURLs(ctx context.Context, limit int) (map[string]int64, error) {
	if limit < 1 {
		limit = 100
	}
	rows, err := s.pool.GetConn().Query(ctx,
		`SELECT url, view_count FROM article_views
		 ORDER BY view_count DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query view counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var url string
		var count int64
		if err := rows.Scan(&url, &count); err != nil {
			return nil, fmt.Errorf("failed to scan view count: %w", err)
		}
		counts[url] = count
	}
	return counts, rows.Err()
}
