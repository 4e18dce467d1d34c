package pg

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/newspulse/newspulse/internal/apperr"
)

type NewsletterStore struct {
	pool *ConnectionPool
}

func NewNewsletterStore(pool *ConnectionPool) *NewsletterStore {
	return &NewsletterStore{pool: pool}
}

// Subscribe records a newsletter subscription. Re-subscribing the same
// address is a no-op.
func (s *NewsletterStore) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.NewValidationWrap("invalid email address", err)
	}

	_, err := s.pool.GetConn().Exec(ctx,
		`INSERT INTO newsletter_subscribers (email) VALUES ($1)
		 ON CONFLICT (email) DO NOTHING`,
		email)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	return nil
}

// Count returns the number of subscribers.
func (s *NewsletterStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.GetConn().QueryRow(ctx,
		`SELECT count(*) FROM newsletter_subscribers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
