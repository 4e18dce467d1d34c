package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/newspulse/newspulse/pkg/pagination"
)

// SearchHit is one archived article with its relevance score.
type SearchHit struct {
	Article document `json:"article"`
	Score   float64  `json:"score"`
}

// SearchResult is one page of archive search results.
type SearchResult = pagination.OffsetResult[SearchHit]

// Searcher serves basic full-text search over the archive with a
// multi_match across title and description, title boosted.
type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// SearchBasic runs an offset-paged relevance search.
func (s *Searcher) SearchBasic(ctx context.Context, query string, page, size int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	from := (page - 1) * size

	slog.Debug("executing archive search", "query", query, "page", page, "size", size)

	resp, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  query,
				Fields: []string{"title^3.0", "description"},
			},
		}).
		From(from).
		Size(size).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"_score": {Order: &sortorder.Desc},
		}}).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive search failed: %w", err)
	}

	var total int64
	if resp.Hits.Total != nil {
		total = resp.Hits.Total.Value
	}

	items := make([]SearchHit, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			slog.Error("failed to decode archived document", "error", err)
			continue
		}
		var score float64
		if hit.Score_ != nil {
			score = float64(*hit.Score_)
		}
		items = append(items, SearchHit{Article: doc, Score: score})
	}

	return pagination.NewOffsetResult(items, total, page, size), nil
}
