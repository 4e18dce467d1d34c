package source

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxFeedsPerCategory caps how many feeds one aggregation run will hit.
const maxFeedsPerCategory = 3

// FeedRegistry maps a lowercase category name to its candidate feed URLs.
type FeedRegistry map[string][]string

// DefaultRegistry returns the built-in per-category feed list.
func DefaultRegistry() FeedRegistry {
	return FeedRegistry{
		"general": {
			"http://feeds.bbci.co.uk/news/rss.xml",
			"https://www.thehindu.com/news/national/feeder/default.rss",
			"https://feeds.feedburner.com/ndtvnews-top-stories",
		},
		"technology": {
			"https://techcrunch.com/feed/",
			"https://www.theverge.com/rss/index.xml",
			"https://www.wired.com/feed/rss",
		},
		"science": {
			"https://www.sciencedaily.com/rss/all.xml",
			"https://www.nasa.gov/rss/dyn/breaking_news.rss",
			"https://www.thehindu.com/sci-tech/science/feeder/default.rss",
		},
		"business": {
			"https://economictimes.indiatimes.com/rssfeedstopstories.cms",
			"http://feeds.bbci.co.uk/news/business/rss.xml",
			"https://www.livemint.com/rss/money",
		},
		"health": {
			"http://feeds.bbci.co.uk/news/health/rss.xml",
			"https://www.sciencedaily.com/rss/health_medicine.xml",
			"https://www.thehindu.com/sci-tech/health/feeder/default.rss",
		},
		"entertainment": {
			"https://variety.com/feed/",
			"https://www.hollywoodreporter.com/feed/",
			"https://www.bollywoodhungama.com/rss/news.xml",
		},
		"sports": {
			"https://www.espn.com/espn/rss/news",
			"http://feeds.bbci.co.uk/sport/rss.xml",
			"https://www.espncricinfo.com/rss/content/story/feeds/0.xml",
		},
	}
}

// LoadRegistry reads a category -> feed URLs mapping from YAML. Category
// names are lowercased; empty URL entries are dropped.
func LoadRegistry(r io.Reader) (FeedRegistry, error) {
	decoder := yaml.NewDecoder(r)
	var raw map[string][]string
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode feed registry: %w", err)
	}

	registry := make(FeedRegistry, len(raw))
	for category, urls := range raw {
		var kept []string
		for _, u := range urls {
			if u = strings.TrimSpace(u); u != "" {
				kept = append(kept, u)
			}
		}
		if len(kept) > 0 {
			registry[strings.ToLower(strings.TrimSpace(category))] = kept
		}
	}
	if len(registry) == 0 {
		return nil, fmt.Errorf("feed registry is empty")
	}
	return registry, nil
}

// Select returns up to maxFeedsPerCategory feed URLs for a category,
// falling back to the "general" list when the category is unknown.
func (r FeedRegistry) Select(category string) []string {
	feeds, ok := r[strings.ToLower(strings.TrimSpace(category))]
	if !ok || len(feeds) == 0 {
		feeds = r["general"]
	}
	if len(feeds) > maxFeedsPerCategory {
		feeds = feeds[:maxFeedsPerCategory]
	}
	return feeds
}

// URLs returns every feed URL in the registry, for upfront breaker setup.
func (r FeedRegistry) URLs() []string {
	var urls []string
	seen := make(map[string]bool)
	for _, feeds := range r {
		for _, u := range feeds {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}
	return urls
}
