package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/newspulse/newspulse/internal/archive/es"
	"github.com/newspulse/newspulse/internal/source"
	"github.com/newspulse/newspulse/internal/store/pg"
)

// AppConfig is everything beyond the HTTP server config: source adapter
// keys, dataset overrides, and the optional collaborators.
type AppConfig struct {
	NewsAPIKey string
	GNewsKey   string

	FeedsConfigPath string
	StaticDataPath  string

	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadAppConfig reads the environment. Both collaborators are optional:
// missing PG/ES settings disable the corresponding features rather than
// failing startup.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		NewsAPIKey:      os.Getenv("NEWSAPI_KEY"),
		GNewsKey:        os.Getenv("GNEWS_KEY"),
		FeedsConfigPath: os.Getenv("FEEDS_CONFIG"),
		StaticDataPath:  os.Getenv("STATIC_DATA_PATH"),
	}

	if connStr := os.Getenv("PG_CONNECTION_STRING"); connStr != "" {
		cfg.Pg = &pg.PoolConfig{ConnStr: connStr}
	}

	if addresses := os.Getenv("ES_ADDRESSES"); addresses != "" {
		indexName := os.Getenv("ES_INDEX_NAME")
		if indexName == "" {
			return nil, fmt.Errorf("ES_INDEX_NAME is required when ES_ADDRESSES is set")
		}
		cfg.Es = &es.ClientConfig{
			Addresses: strings.Split(addresses, ","),
			IndexName: indexName,
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	}

	return cfg, nil
}

// LoadFeedRegistry returns the configured registry override, or the
// built-in default.
func (c *AppConfig) LoadFeedRegistry() (source.FeedRegistry, error) {
	if c.FeedsConfigPath == "" {
		return source.DefaultRegistry(), nil
	}

	file, err := os.Open(c.FeedsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open feeds config: %w", err)
	}
	defer file.Close()

	return source.LoadRegistry(file)
}

// LoadStaticSource returns the configured dataset override, or the
// embedded sample dataset.
func (c *AppConfig) LoadStaticSource() (*source.StaticSource, error) {
	if c.StaticDataPath != "" {
		return source.NewStaticSourceFromFile(c.StaticDataPath)
	}
	return source.NewStaticSource()
}
