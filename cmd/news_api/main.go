// Package main NewsPulse API
// @title NewsPulse API
// @version 1.0
// @description News aggregation service merging RSS feeds, headline APIs and a bundled sample dataset, with geographic classification
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/newspulse/newspulse/internal/aggregator"
	"github.com/newspulse/newspulse/internal/api/router"
	apiserver "github.com/newspulse/newspulse/internal/api/server"
	"github.com/newspulse/newspulse/internal/archive/es"
	"github.com/newspulse/newspulse/internal/geo"
	"github.com/newspulse/newspulse/internal/source"
	"github.com/newspulse/newspulse/internal/store/pg"
	pkgserver "github.com/newspulse/newspulse/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	cfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	registry, err := cfg.LoadFeedRegistry()
	if err != nil {
		slog.Error("Failed to load feed registry", "error", err)
		os.Exit(1)
	}

	staticSource, err := cfg.LoadStaticSource()
	if err != nil {
		slog.Error("Failed to load static dataset", "error", err)
		os.Exit(1)
	}

	states, err := geo.LoadStateDirectory()
	if err != nil {
		slog.Error("Failed to load states directory", "error", err)
		os.Exit(1)
	}

	// Fallback order: RSS, then the headline APIs when keyed, then the
	// bundled dataset as the tier that always answers.
	sources := []source.Source{source.NewRSSSource(source.RSSConfig{Registry: registry})}
	if cfg.NewsAPIKey != "" {
		sources = append(sources, source.NewNewsAPISource(source.NewsAPIConfig{APIKey: cfg.NewsAPIKey}))
		slog.Info("NewsAPI tier enabled")
	}
	if cfg.GNewsKey != "" {
		sources = append(sources, source.NewGNewsSource(source.GNewsConfig{APIKey: cfg.GNewsKey}))
		slog.Info("GNews tier enabled")
	}
	sources = append(sources, staticSource)

	startCtx := context.Background()
	health := pkgserver.HealthChecker(pkgserver.NewOkHealthChecker())

	var aggOpts []aggregator.Option
	newsOpts := []router.NewsRouterOption{router.WithStateDirectory(states)}

	var pool *pg.ConnectionPool
	if cfg.Pg != nil {
		pool, err = pg.NewConnectionPool(startCtx, *cfg.Pg)
		if err != nil {
			slog.Error("Failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pg.EnsureSchema(startCtx, pool); err != nil {
			slog.Error("Failed to ensure schema", "error", err)
			os.Exit(1)
		}

		views := pg.NewViewStore(pool)
		aggOpts = append(aggOpts, aggregator.WithViewRanker(views))
		newsOpts = append(newsOpts, router.WithViewRecorder(views))

		health = pkgserver.NewMultiHealthChecker(health, pool)
		slog.Info("Persistence collaborator enabled")
	} else {
		slog.Info("Persistence collaborator disabled")
	}

	var searcher router.ArchiveSearcher
	if cfg.Es != nil {
		archiver, err := es.NewArchiver(startCtx, *cfg.Es)
		if err != nil {
			slog.Error("Failed to create article archiver", "error", err)
			os.Exit(1)
		}
		aggOpts = append(aggOpts, aggregator.WithArchiver(archiver))

		esSearcher, err := es.NewSearcher(*cfg.Es)
		if err != nil {
			slog.Error("Failed to create archive searcher", "error", err)
			os.Exit(1)
		}
		searcher = esSearcher
		slog.Info("Article archive enabled", "index", cfg.Es.IndexName)
	} else {
		slog.Info("Article archive disabled")
	}

	s := apiserver.New(sCfg, health).
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "NewsPulse API is running")
	})

	classifier := geo.NewClassifier(geo.WithStateDirectory(states))
	agg := aggregator.New(classifier, sources, aggOpts...)

	router.NewNewsRouter(s.Echo, agg, newsOpts...).Bind()
	router.NewSearchRouter(s.Echo, searcher).Bind()

	if pool != nil {
		router.NewBookmarkRouter(s.Echo, pg.NewBookmarkStore(pool)).Bind()
		router.NewNewsletterRouter(s.Echo, pg.NewNewsletterStore(pool)).Bind()
	}

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
