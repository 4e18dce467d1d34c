package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/newspulse/internal/domain"
)

func TestNewsAPISource_FetchMapsArticles(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"category": r.URL.Query().Get("category"),
			"country":  r.URL.Query().Get("country"),
			"apiKey":   r.URL.Query().Get("apiKey"),
		}
		fmt.Fprint(w, `{
			"status": "ok",
			"articles": [
				{
					"source": {"name": "Example Times"},
					"author": "Jane Writer",
					"title": "Big headline",
					"description": "Something happened",
					"url": "https://example.com/big",
					"urlToImage": "https://cdn.example.com/big.jpg",
					"publishedAt": "2025-06-02T10:00:00Z"
				},
				{
					"source": {"name": "Example Times"},
					"title": "[Removed]",
					"url": "https://example.com/removed"
				},
				{
					"source": {"name": "Example Times"},
					"title": "",
					"url": "https://example.com/empty"
				}
			]
		}`)
	}))
	t.Cleanup(server.Close)

	src := NewNewsAPISource(NewsAPIConfig{APIKey: "key123", BaseURL: server.URL})
	articles, err := src.Fetch(context.Background(), Params{Category: "Business", Page: 1, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, "business", gotQuery["category"])
	assert.Equal(t, "in", gotQuery["country"], "defaults to India edition")
	assert.Equal(t, "key123", gotQuery["apiKey"])

	require.Len(t, articles, 1, "removed and untitled entries are discarded")
	a := articles[0]
	assert.Equal(t, "Big headline", a.Title)
	assert.Equal(t, "Jane Writer", a.Author)
	assert.Equal(t, "https://cdn.example.com/big.jpg", a.ImageURL)
	assert.Equal(t, domain.CategoryBusiness, a.Category)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), a.PublishedAt.UTC())
}

func TestNewsAPISource_AuthorFallbackChain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": "ok",
			"articles": [
				{"source": {"name": "Outlet"}, "title": "No author", "url": "https://example.com/1"},
				{"source": {"name": ""}, "title": "Nothing at all", "url": "https://example.com/2"}
			]
		}`)
	}))
	t.Cleanup(server.Close)

	src := NewNewsAPISource(NewsAPIConfig{APIKey: "k", BaseURL: server.URL})
	articles, err := src.Fetch(context.Background(), Params{Category: "general", Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Outlet", articles[0].Author)
	assert.Equal(t, domain.DefaultAuthor, articles[1].Author)
}

func TestNewsAPISource_DescriptionFallsBackToContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": "ok",
			"articles": [
				{"source": {"name": "Outlet"}, "title": "T", "url": "https://example.com/1",
				 "content": "The long body of the article"}
			]
		}`)
	}))
	t.Cleanup(server.Close)

	src := NewNewsAPISource(NewsAPIConfig{APIKey: "k", BaseURL: server.URL})
	articles, err := src.Fetch(context.Background(), Params{Category: "general", Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "The long body of the article", articles[0].Description)
}

func TestNewsAPISource_ErrorStatusSurfaces(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "api-level error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"status": "error", "articles": []}`)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			t.Cleanup(server.Close)

			src := NewNewsAPISource(NewsAPIConfig{APIKey: "k", BaseURL: server.URL})
			_, err := src.Fetch(context.Background(), Params{Category: "general", Page: 1, PageSize: 20})
			assert.Error(t, err)
		})
	}
}
