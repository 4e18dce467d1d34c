package source

import (
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/newspulse/newspulse/internal/domain"
)

//go:embed data/sample_news.json
var sampleNewsJSON []byte

// staticArticle is the bundled dataset's record shape.
type staticArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Country     string `json:"country"`
	State       string `json:"state"`
	District    string `json:"district"`
}

// StaticSource serves the bundled sample dataset as the terminal fallback
// tier. Sample data carries no meaningful freshness, so every article is
// stamped with the current time at fetch.
type StaticSource struct {
	articles []staticArticle
	now      func() time.Time
}

// NewStaticSource loads the embedded dataset.
func NewStaticSource() (*StaticSource, error) {
	return newStaticSource(sampleNewsJSON)
}

// NewStaticSourceFromFile loads a dataset override from disk.
func NewStaticSourceFromFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read static dataset: %w", err)
	}
	return newStaticSource(data)
}

func newStaticSource(data []byte) (*StaticSource, error) {
	var articles []staticArticle
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse static dataset: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("static dataset is empty")
	}
	return &StaticSource{articles: articles, now: time.Now}, nil
}

func (s *StaticSource) Name() string { return "static" }

// Filterable marks the static tier as the one geography filtering applies
// to: only its records carry curated country/state/district tags.
func (s *StaticSource) Filterable() bool { return true }

func (s *StaticSource) Fetch(ctx context.Context, p Params) ([]domain.Article, error) {
	category := domain.ParseCategory(p.Category)

	matched := s.filterByCategory(category)
	if len(matched) == 0 {
		matched = s.filterByCategory(domain.CategoryGeneral)
	}

	stamped := s.now()
	articles := make([]domain.Article, 0, len(matched))
	for _, raw := range matched {
		if len(articles) >= p.PageSize {
			break
		}
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}

		author := raw.Author
		if author == "" {
			author = domain.DefaultAuthor
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Description: raw.Description,
			ImageURL:    validateImageURL(raw.Image),
			Author:      author,
			PublishedAt: stamped,
			Category:    domain.ParseCategory(raw.Category),
			SourceURL:   raw.URL,
			SourceName:  raw.Source,
			Country:     raw.Country,
			State:       raw.State,
			District:    raw.District,
		})
	}

	return articles, nil
}

func (s *StaticSource) filterByCategory(category domain.Category) []staticArticle {
	var matched []staticArticle
	for _, a := range s.articles {
		if strings.EqualFold(a.Category, string(category)) {
			matched = append(matched, a)
		}
	}
	return matched
}
