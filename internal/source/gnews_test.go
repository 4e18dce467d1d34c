package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/newspulse/internal/domain"
)

func TestGNewsSource_FetchMapsArticles(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"topic":  r.URL.Query().Get("topic"),
			"lang":   r.URL.Query().Get("lang"),
			"apikey": r.URL.Query().Get("apikey"),
		}
		fmt.Fprint(w, `{
			"totalArticles": 2,
			"articles": [
				{
					"title": "Headline one",
					"description": "Details",
					"url": "https://example.com/1",
					"image": "https://cdn.example.com/1.jpg",
					"publishedAt": "2025-06-02T08:00:00Z",
					"source": {"name": "GNews Outlet", "url": "https://outlet.example.com"}
				},
				{
					"title": "",
					"url": "https://example.com/skipped"
				}
			]
		}`)
	}))
	t.Cleanup(server.Close)

	src := NewGNewsSource(GNewsConfig{APIKey: "gkey", BaseURL: server.URL})
	articles, err := src.Fetch(context.Background(), Params{Category: "general", Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, "breaking-news", gotQuery["topic"], "general maps to the breaking-news topic")
	assert.Equal(t, "en", gotQuery["lang"])
	assert.Equal(t, "gkey", gotQuery["apikey"])

	require.Len(t, articles, 1)
	a := articles[0]
	assert.Equal(t, "Headline one", a.Title)
	assert.Equal(t, "GNews Outlet", a.Author)
	assert.Equal(t, "GNews Outlet", a.SourceName)
	assert.Equal(t, domain.CategoryGeneral, a.Category)
}

func TestGNewsSource_TopicMapping(t *testing.T) {
	var topic string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topic = r.URL.Query().Get("topic")
		fmt.Fprint(w, `{"totalArticles": 0, "articles": []}`)
	}))
	t.Cleanup(server.Close)

	src := NewGNewsSource(GNewsConfig{APIKey: "k", BaseURL: server.URL})

	_, err := src.Fetch(context.Background(), Params{Category: "Sports", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "sports", topic)

	_, err = src.Fetch(context.Background(), Params{Category: "astrology", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "breaking-news", topic, "unknown categories fall back to breaking-news")
}

func TestGNewsSource_HTTPErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	src := NewGNewsSource(GNewsConfig{APIKey: "k", BaseURL: server.URL})
	_, err := src.Fetch(context.Background(), Params{Category: "general", Page: 1, PageSize: 10})
	assert.Error(t, err)
}
