// Package aggregator orchestrates the source adapters: it walks them in
// priority order, classifies each article geographically, and returns one
// sorted list. The first tier yielding at least one article wins; adapter
// failures are logged and treated as empty results, never surfaced.
package aggregator

import (
	"context"
	"log/slog"

	"github.com/newspulse/newspulse/internal/domain"
	"github.com/newspulse/newspulse/internal/geo"
	"github.com/newspulse/newspulse/internal/observability/metrics"
	"github.com/newspulse/newspulse/internal/source"
)

// ViewRanker supplies recorded view counts for popularity ranking. The
// aggregation pipeline itself never touches persistence; this narrow
// interface is injected at wiring time and may be nil.
type ViewRanker interface {
	TopURLs(ctx context.Context, limit int) (map[string]int64, error)
}

// Archiver receives successful aggregations for optional indexing. May be
// nil.
type Archiver interface {
	Archive(articles []domain.Article)
}

// Aggregator owns all process-lifetime aggregation state: the ordered
// adapter list and the classifier. Each Aggregate call is independent and
// stateless, so one instance serves concurrent requests without locking.
type Aggregator struct {
	sources    []source.Source
	classifier *geo.Classifier
	views      ViewRanker
	archiver   Archiver
}

type Option func(*Aggregator)

// WithViewRanker enables view-count-based popularity ranking.
func WithViewRanker(v ViewRanker) Option {
	return func(a *Aggregator) { a.views = v }
}

// WithArchiver forwards successful aggregations to an article archive.
func WithArchiver(ar Archiver) Option {
	return func(a *Aggregator) { a.archiver = ar }
}

// New builds an aggregator over the given adapters, tried in order.
func New(classifier *geo.Classifier, sources []source.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		sources:    sources,
		classifier: classifier,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate runs the fallback chain for the query and returns a sorted
// article list. An exhausted chain yields an empty list, not an error.
func (a *Aggregator) Aggregate(ctx context.Context, q domain.NewsQuery) []domain.Article {
	q = q.Normalize()

	params := source.Params{
		Category: q.Category,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	hints := geo.Hints{
		Region:   q.Region,
		State:    q.State,
		District: q.District,
		Country:  q.Country,
	}

	for _, src := range a.sources {
		articles, err := src.Fetch(ctx, params)
		if err != nil {
			slog.Warn("source fetch failed, falling back", "source", src.Name(), "error", err)
			metrics.SourceFailures.WithLabelValues(src.Name()).Inc()
			metrics.SourceFetches.WithLabelValues(src.Name(), "error").Inc()
			continue
		}

		articles = domain.DropUntitled(articles)
		if len(articles) == 0 {
			metrics.SourceFetches.WithLabelValues(src.Name(), "empty").Inc()
			continue
		}
		metrics.SourceFetches.WithLabelValues(src.Name(), "ok").Inc()

		for i := range articles {
			articles[i] = a.classifier.Classify(articles[i], hints)
		}

		if filterable, ok := src.(source.Filterable); ok && filterable.Filterable() {
			articles = FilterByGeography(articles, q)
		}

		domain.SortByRecency(articles)

		metrics.AggregationsServed.WithLabelValues(src.Name(), q.Category).Inc()
		metrics.ArticlesServed.WithLabelValues(q.Category, src.Name()).Add(float64(len(articles)))
		slog.Info("aggregation served", "source", src.Name(), "category", q.Category, "count", len(articles))

		if a.archiver != nil {
			a.archiver.Archive(articles)
		}
		return articles
	}

	metrics.AggregationsServed.WithLabelValues("none", q.Category).Inc()
	slog.Info("aggregation exhausted all tiers", "category", q.Category)
	return []domain.Article{}
}

// Trending returns the top-N of a general aggregation by recency.
func (a *Aggregator) Trending(ctx context.Context, limit int) []domain.Article {
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	articles := a.Aggregate(ctx, domain.NewsQuery{PageSize: limit})
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

// Popular returns a general aggregation re-ranked by recorded view counts
// when a view ranker is configured, falling back to Trending order
// otherwise. Ties keep recency order. The returned map carries the view
// counts backing the ranking; nil when no ranker is configured.
func (a *Aggregator) Popular(ctx context.Context, limit int) ([]domain.Article, map[string]int64) {
	articles := a.Trending(ctx, limit)
	if a.views == nil || len(articles) == 0 {
		return articles, nil
	}

	counts, err := a.views.TopURLs(ctx, domain.MaxPageSize)
	if err != nil {
		slog.Warn("view ranking unavailable, serving recency order", "error", err)
		return articles, nil
	}

	rankByViews(articles, counts)
	return articles, counts
}

// Related returns up to limit articles for the category, excluding the
// index position matching articleID.
func (a *Aggregator) Related(ctx context.Context, articleID int, category string, limit int) []domain.Article {
	if limit < 1 {
		limit = 3
	}
	articles := a.Aggregate(ctx, domain.NewsQuery{Category: category, PageSize: limit + 1})

	related := make([]domain.Article, 0, limit)
	for i, article := range articles {
		if i == articleID {
			continue
		}
		if len(related) >= limit {
			break
		}
		related = append(related, article)
	}
	return related
}
