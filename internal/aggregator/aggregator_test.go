package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/newspulse/internal/domain"
	"github.com/newspulse/newspulse/internal/geo"
	"github.com/newspulse/newspulse/internal/source"
)

// fakeSource is a scriptable adapter for exercising the fallback chain.
type fakeSource struct {
	name       string
	articles   []domain.Article
	err        error
	filterable bool
	calls      int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, p source.Params) ([]domain.Article, error) {
	f.calls++
	return f.articles, f.err
}

func (f *fakeSource) Filterable() bool { return f.filterable }

type fakeRanker struct {
	counts map[string]int64
	err    error
}

func (f *fakeRanker) TopURLs(ctx context.Context, limit int) (map[string]int64, error) {
	return f.counts, f.err
}

type recordingArchiver struct {
	batches [][]domain.Article
}

func (r *recordingArchiver) Archive(articles []domain.Article) {
	r.batches = append(r.batches, articles)
}

func article(title string, age time.Duration) domain.Article {
	return domain.Article{
		Title:       title,
		PublishedAt: time.Now().Add(-age),
		SourceURL:   "https://example.com/" + title,
	}
}

func TestAggregate_FirstNonEmptyTierWins(t *testing.T) {
	first := &fakeSource{name: "first", articles: []domain.Article{article("a", time.Hour)}}
	second := &fakeSource{name: "second", articles: []domain.Article{article("b", time.Hour)}}

	a := New(geo.NewClassifier(), []source.Source{first, second})
	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, 0, second.calls, "later tiers must not be touched once one answers")
}

func TestAggregate_FailedTierFallsThrough(t *testing.T) {
	failing := &fakeSource{name: "failing", err: errors.New("upstream down")}
	empty := &fakeSource{name: "empty"}
	working := &fakeSource{name: "working", articles: []domain.Article{article("c", time.Hour)}}

	a := New(geo.NewClassifier(), []source.Source{failing, empty, working})
	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Title)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestAggregate_ExhaustedChainReturnsEmptyList(t *testing.T) {
	a := New(geo.NewClassifier(), []source.Source{
		&fakeSource{name: "one", err: errors.New("down")},
		&fakeSource{name: "two"},
	})

	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.NotNil(t, got, "exhausted chain must yield an empty list, not nil")
	assert.Empty(t, got)
}

func TestAggregate_SortsByRecencyDescending(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("oldest", 3 * time.Hour),
		article("newest", time.Minute),
		article("middle", time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "oldest", got[2].Title)
}

func TestAggregate_DropsUntitledAndFallsThroughWhenAllDropped(t *testing.T) {
	onlyUntitled := &fakeSource{name: "untitled", articles: []domain.Article{
		{PublishedAt: time.Now()},
		{Title: "   ", PublishedAt: time.Now()},
	}}
	next := &fakeSource{name: "next", articles: []domain.Article{article("kept", time.Hour)}}

	a := New(geo.NewClassifier(), []source.Source{onlyUntitled, next})
	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Title)
}

func TestAggregate_EveryArticleGetsClassified(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("Mumbai traffic snarls", time.Hour),
		article("Global summit opens", 2 * time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got := a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, got, 2)
	for _, art := range got {
		assert.True(t, art.Region.Valid(), "article %q missing region", art.Title)
		assert.NotEmpty(t, art.Country)
	}
	assert.Equal(t, domain.RegionDomestic, got[0].Region)
	assert.Equal(t, domain.RegionInternational, got[1].Region)
}

func TestAggregate_GeographyFilterAppliesToFilterableTierOnly(t *testing.T) {
	articles := []domain.Article{
		{Title: "domestic", PublishedAt: time.Now(), Country: "India"},
		{Title: "foreign", PublishedAt: time.Now(), Country: "France"},
	}
	q := domain.NewsQuery{Region: domain.RegionDomestic, Country: "India"}

	plain := &fakeSource{name: "plain", articles: append([]domain.Article(nil), articles...)}
	a := New(geo.NewClassifier(), []source.Source{plain})
	got := a.Aggregate(context.Background(), q)
	assert.Len(t, got, 2, "non-filterable tiers pass geography through")

	tagged := &fakeSource{name: "tagged", filterable: true, articles: append([]domain.Article(nil), articles...)}
	a = New(geo.NewClassifier(), []source.Source{tagged})
	got = a.Aggregate(context.Background(), q)
	require.Len(t, got, 1)
	assert.Equal(t, "domestic", got[0].Title)
}

func TestAggregate_ForwardsToArchiver(t *testing.T) {
	archiver := &recordingArchiver{}
	src := &fakeSource{name: "src", articles: []domain.Article{article("a", time.Hour)}}

	a := New(geo.NewClassifier(), []source.Source{src}, WithArchiver(archiver))
	a.Aggregate(context.Background(), domain.NewsQuery{})

	require.Len(t, archiver.batches, 1)
	assert.Len(t, archiver.batches[0], 1)
}

func TestAggregate_EmptyResultSkipsArchiver(t *testing.T) {
	archiver := &recordingArchiver{}
	a := New(geo.NewClassifier(), []source.Source{&fakeSource{name: "empty"}}, WithArchiver(archiver))

	a.Aggregate(context.Background(), domain.NewsQuery{})

	assert.Empty(t, archiver.batches)
}

func TestTrending_CapsAtLimit(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("a", time.Hour),
		article("b", 2*time.Hour),
		article("c", 3*time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got := a.Trending(context.Background(), 2)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
}

func TestPopular_RanksByViewCounts(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("fresh", time.Minute),
		article("stale", 5 * time.Hour),
	}}
	ranker := &fakeRanker{counts: map[string]int64{
		"https://example.com/stale": 40,
		"https://example.com/fresh": 2,
	}}

	a := New(geo.NewClassifier(), []source.Source{src}, WithViewRanker(ranker))
	got, counts := a.Popular(context.Background(), 10)

	require.Len(t, got, 2)
	assert.Equal(t, "stale", got[0].Title, "view counts outrank recency")
	assert.Equal(t, int64(40), counts["https://example.com/stale"])
}

func TestPopular_NoRankerKeepsRecencyOrder(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("fresh", time.Minute),
		article("stale", 5 * time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got, counts := a.Popular(context.Background(), 10)

	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].Title)
	assert.Nil(t, counts)
}

func TestPopular_RankerFailureFallsBackToRecency(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("fresh", time.Minute),
		article("stale", 5 * time.Hour),
	}}
	ranker := &fakeRanker{err: errors.New("db down")}

	a := New(geo.NewClassifier(), []source.Source{src}, WithViewRanker(ranker))
	got, counts := a.Popular(context.Background(), 10)

	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].Title)
	assert.Nil(t, counts)
}

func TestRelated_ExcludesRequestedArticle(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("a", time.Hour),
		article("b", 2*time.Hour),
		article("c", 3*time.Hour),
		article("d", 4*time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got := a.Related(context.Background(), 1, "general", 3)

	require.Len(t, got, 3)
	for _, art := range got {
		assert.NotEqual(t, "b", art.Title)
	}
}

func TestRelated_OutOfRangeIDReturnsLimit(t *testing.T) {
	src := &fakeSource{name: "src", articles: []domain.Article{
		article("a", time.Hour),
		article("b", 2*time.Hour),
	}}

	a := New(geo.NewClassifier(), []source.Source{src})
	got := a.Related(context.Background(), 99, "general", 3)

	assert.Len(t, got, 2)
}
