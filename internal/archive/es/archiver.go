package es

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"

	"github.com/newspulse/newspulse/internal/domain"
)

const archiveTimeout = 15 * time.Second

// document is the indexed article shape.
type document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category"`
	SourceURL   string    `json:"sourceUrl"`
	SourceName  string    `json:"sourceName,omitempty"`
	Region      string    `json:"region"`
	Country     string    `json:"country,omitempty"`
	State       string    `json:"state,omitempty"`
	District    string    `json:"district,omitempty"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Archiver indexes aggregated articles. Document ids are derived from the
// source URL so re-archiving the same article overwrites instead of
// duplicating.
type Archiver struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewArchiver(ctx context.Context, config ClientConfig) (*Archiver, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	a := &Archiver{
		client:    client,
		indexName: config.IndexName,
	}

	if err := a.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return a, nil
}

func (a *Archiver) ensureIndex(ctx context.Context) error {
	exists, err := a.client.Indices.Exists(a.indexName).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = a.client.Indices.Create(a.indexName).Do(ctx)
	if err != nil {
		return err
	}
	slog.Info("archive index created", "index", a.indexName)
	return nil
}

// Archive indexes articles fire-and-forget. Failures are logged, never
// surfaced to the request path.
func (a *Archiver) Archive(articles []domain.Article) {
	if len(articles) == 0 {
		return
	}

	docs := make([]document, 0, len(articles))
	for _, article := range articles {
		docs = append(docs, mapToDocument(article))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := a.saveBulk(ctx, docs); err != nil {
			slog.Warn("article archiving failed", "error", err, "count", len(docs))
		}
	}()
}

func (a *Archiver) saveBulk(ctx context.Context, docs []document) error {
	var failed int
	for _, doc := range docs {
		if _, err := a.client.Index(a.indexName).Id(doc.ID).Document(doc).Do(ctx); err != nil {
			failed++
			slog.Error("failed to index document", "error", err, "id", doc.ID)
		}
	}

	slog.Debug("archiving completed", "indexed", len(docs)-failed, "failed", failed, "index", a.indexName)
	if failed == len(docs) {
		return fmt.Errorf("all %d documents failed to index", failed)
	}
	return nil
}

func mapToDocument(article domain.Article) document {
	return document{
		ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(article.SourceURL)).String(),
		Title:       article.Title,
		Description: article.Description,
		ImageURL:    article.ImageURL,
		Author:      article.Author,
		PublishedAt: article.PublishedAt,
		Category:    string(article.Category),
		SourceURL:   article.SourceURL,
		SourceName:  article.SourceName,
		Region:      string(article.Region),
		Country:     article.Country,
		State:       article.State,
		District:    article.District,
		IndexedAt:   time.Now(),
	}
}
