package source

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"github.com/newspulse/newspulse/internal/domain"
	"github.com/newspulse/newspulse/pkg/stringsutil"
)

const (
	defaultFeedTimeout = 5 * time.Second
	defaultUserAgent   = "NewsPulseBot/1.0"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// RSSConfig configures the RSS adapter.
type RSSConfig struct {
	Registry  FeedRegistry
	Timeout   time.Duration
	UserAgent string
}

// RSSSource fetches and normalizes RSS/Atom feeds from a per-category
// registry. Each feed URL gets its own circuit breaker so one flapping
// publisher cannot slow every request; a feed that fails or yields nothing
// contributes nothing, and the adapter moves on to the next feed.
type RSSSource struct {
	registry  FeedRegistry
	client    *http.Client
	userAgent string
	breakers  map[string]*gobreaker.CircuitBreaker
}

// NewRSSSource builds the adapter. Breakers are created upfront for every
// registry URL; the registry is treated as read-only afterwards.
func NewRSSSource(cfg RSSConfig) *RSSSource {
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultFeedTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	breakers := make(map[string]*gobreaker.CircuitBreaker)
	for _, feedURL := range cfg.Registry.URLs() {
		breakers[feedURL] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    feedURL,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
	}

	return &RSSSource{
		registry:  cfg.Registry,
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		breakers:  breakers,
	}
}

func (s *RSSSource) Name() string { return "rss" }

// Fetch pulls up to ceil(pageSize/feedCount) items from each candidate
// feed for the category. Feed failures are logged and skipped, never
// surfaced.
func (s *RSSSource) Fetch(ctx context.Context, p Params) ([]domain.Article, error) {
	feeds := s.registry.Select(p.Category)
	if len(feeds) == 0 {
		return nil, nil
	}

	perFeed := (p.PageSize + len(feeds) - 1) / len(feeds)
	if perFeed < 1 {
		perFeed = 1
	}

	category := domain.ParseCategory(p.Category)
	var articles []domain.Article
	for _, feedURL := range feeds {
		feed, err := s.fetchFeed(ctx, feedURL)
		if err != nil {
			slog.Warn("feed fetch failed, skipping", "url", feedURL, "error", err)
			continue
		}

		count := 0
		for _, item := range feed.Items {
			if count >= perFeed {
				break
			}
			article, ok := s.mapItem(feed, item, feedURL, category)
			if !ok {
				continue
			}
			articles = append(articles, article)
			count++
		}
	}

	return articles, nil
}

func (s *RSSSource) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	breaker, ok := s.breakers[feedURL]
	if !ok {
		// Registry override added after construction; fetch unprotected.
		return s.parseFeed(ctx, feedURL)
	}

	result, err := breaker.Execute(func() (interface{}, error) {
		return s.parseFeed(ctx, feedURL)
	})
	if err != nil {
		return nil, err
	}
	return result.(*gofeed.Feed), nil
}

func (s *RSSSource) parseFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.UserAgent = s.userAgent
	parser.Client = s.client

	return parser.ParseURLWithContext(feedURL, fetchCtx)
}

func (s *RSSSource) mapItem(feed *gofeed.Feed, item *gofeed.Item, feedURL string, category domain.Category) (domain.Article, bool) {
	if item == nil || strings.TrimSpace(item.Title) == "" {
		return domain.Article{}, false
	}

	description := htmlToText(item.Description)
	if description == "" {
		description = htmlToText(item.Content)
	}
	description = stringsutil.Truncate(description, descriptionMaxLen)

	author := domain.DefaultAuthor
	if item.Author != nil && item.Author.Name != "" {
		author = item.Author.Name
	} else if feed.Title != "" {
		author = feed.Title
	}

	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	return domain.Article{
		Title:       strings.TrimSpace(item.Title),
		Description: description,
		ImageURL:    extractImage(item, feedURL),
		Author:      author,
		PublishedAt: publishedAt,
		Category:    category,
		SourceURL:   item.Link,
		SourceName:  feed.Title,
	}, true
}

func htmlToText(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, " "))
}
