package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/newspulse/newspulse/internal/domain"
	"github.com/newspulse/newspulse/pkg/stringsutil"
)

const defaultGNewsBaseURL = "https://gnews.io/api/v4/top-headlines"

// gnewsTopics maps our categories onto GNews topic names. Anything not
// listed falls back to breaking-news.
var gnewsTopics = map[string]string{
	"general":       "breaking-news",
	"technology":    "technology",
	"science":       "science",
	"business":      "business",
	"health":        "health",
	"entertainment": "entertainment",
	"sports":        "sports",
}

// GNewsConfig configures the secondary headline provider.
type GNewsConfig struct {
	APIKey  string
	BaseURL string
	Lang    string
	Timeout time.Duration
}

// GNewsSource maps GNews's top-headlines shape onto the common article
// shape. It sits after NewsAPI in the fallback order.
type GNewsSource struct {
	cfg    GNewsConfig
	client *http.Client
}

func NewGNewsSource(cfg GNewsConfig) *GNewsSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGNewsBaseURL
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultFeedTimeout
	}
	return &GNewsSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *GNewsSource) Name() string { return "gnews" }

type gnewsResponse struct {
	TotalArticles int            `json:"totalArticles"`
	Articles      []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

func (s *GNewsSource) Fetch(ctx context.Context, p Params) ([]domain.Article, error) {
	topic, ok := gnewsTopics[strings.ToLower(p.Category)]
	if !ok {
		topic = "breaking-news"
	}

	query := url.Values{}
	query.Set("topic", topic)
	query.Set("lang", s.cfg.Lang)
	query.Set("max", strconv.Itoa(p.PageSize))
	query.Set("page", strconv.Itoa(p.Page))
	query.Set("apikey", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gnews request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews responded with status %d", resp.StatusCode)
	}

	var payload gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode gnews response: %w", err)
	}

	category := domain.ParseCategory(p.Category)
	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, raw := range payload.Articles {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}

		description := strings.TrimSpace(raw.Description)
		if description == "" {
			description = stringsutil.Truncate(raw.Content, descriptionMaxLen)
		}

		publishedAt := time.Now()
		if ts, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
			publishedAt = ts
		}

		author := raw.Source.Name
		if author == "" {
			author = domain.DefaultAuthor
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Description: description,
			ImageURL:    validateImageURL(raw.Image),
			Author:      author,
			PublishedAt: publishedAt,
			Category:    category,
			SourceURL:   raw.URL,
			SourceName:  raw.Source.Name,
		})
	}

	return articles, nil
}
