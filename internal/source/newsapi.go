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

const defaultNewsAPIBaseURL = "https://newsapi.org/v2/top-headlines"

// NewsAPIConfig configures the NewsAPI.org headline adapter. The adapter
// is only wired in when an API key is present.
type NewsAPIConfig struct {
	APIKey  string
	BaseURL string
	Country string
	Timeout time.Duration
}

// NewsAPISource maps NewsAPI.org's top-headlines shape onto the common
// article shape.
type NewsAPISource struct {
	cfg    NewsAPIConfig
	client *http.Client
}

func NewNewsAPISource(cfg NewsAPIConfig) *NewsAPISource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultNewsAPIBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = "in"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultFeedTimeout
	}
	return &NewsAPISource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *NewsAPISource) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

func (s *NewsAPISource) Fetch(ctx context.Context, p Params) ([]domain.Article, error) {
	query := url.Values{}
	query.Set("category", strings.ToLower(p.Category))
	query.Set("country", s.cfg.Country)
	query.Set("page", strconv.Itoa(p.Page))
	query.Set("pageSize", strconv.Itoa(p.PageSize))
	query.Set("apiKey", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build newsapi request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi responded with status %d", resp.StatusCode)
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode newsapi response: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", payload.Status)
	}

	category := domain.ParseCategory(p.Category)
	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, raw := range payload.Articles {
		title := strings.TrimSpace(raw.Title)
		if title == "" || title == "[Removed]" {
			continue
		}

		description := strings.TrimSpace(raw.Description)
		if description == "" {
			description = stringsutil.Truncate(raw.Content, descriptionMaxLen)
		}

		author := strings.TrimSpace(raw.Author)
		if author == "" {
			author = raw.Source.Name
		}
		if author == "" {
			author = domain.DefaultAuthor
		}

		publishedAt := time.Now()
		if ts, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
			publishedAt = ts
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Description: description,
			ImageURL:    validateImageURL(raw.URLToImage),
			Author:      author,
			PublishedAt: publishedAt,
			Category:    category,
			SourceURL:   raw.URL,
			SourceName:  raw.Source.Name,
		})
	}

	return articles, nil
}
