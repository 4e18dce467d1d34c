package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/newspulse/newspulse/internal/apperr"
)

// Bookmark is a saved article reference keyed by user id.
type Bookmark struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookmarkStore struct {
	pool *ConnectionPool
}

func NewBookmarkStore(pool *ConnectionPool) *BookmarkStore {
	return &BookmarkStore{pool: pool}
}

// Save stores a bookmark, returning the existing row untouched when the
// user already bookmarked the URL.
func (s *BookmarkStore) Save(ctx context.Context, b Bookmark) (Bookmark, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()

	_, err := s.pool.GetConn().Exec(ctx,
		`INSERT INTO bookmarks (id, user_id, title, description, url, image_url, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, url) DO NOTHING`,
		b.ID, b.UserID, b.Title, b.Description, b.URL, b.ImageURL, b.Category, b.CreatedAt)
	if err != nil {
		return Bookmark{}, fmt.Errorf("failed to save bookmark: %w", err)
	}
	return b, nil
}

// List returns the user's bookmarks, newest first.
func (s *BookmarkStore) List(ctx context.Context, userID string) ([]Bookmark, error) {
	rows, err := s.pool.GetConn().Query(ctx,
		`SELECT id, user_id, title, description, url, image_url, category, created_at
		 FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.URL, &b.ImageURL, &b.Category, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Delete removes one bookmark owned by the user.
func (s *BookmarkStore) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := s.pool.GetConn().Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("bookmark not found")
	}
	return nil
}

// Get returns one bookmark owned by the user.
func (s *BookmarkStore) Get(ctx context.Context, userID string, id uuid.UUID) (Bookmark, error) {
	var b Bookmark
	err := s.pool.GetConn().QueryRow(ctx,
		`SELECT id, user_id, title, description, url, image_url, category, created_at
		 FROM bookmarks WHERE user_id = $1 AND id = $2`,
		userID, id).Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.URL, &b.ImageURL, &b.Category, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bookmark{}, apperr.NewNotFound("bookmark not found")
	}
	if err != nil {
		return Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return b, nil
}
