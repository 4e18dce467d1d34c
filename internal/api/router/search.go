package router

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newspulse/newspulse/internal/archive/es"
	"github.com/newspulse/newspulse/pkg/pagination"
)

// ArchiveSearcher serves full-text search over the article archive.
type ArchiveSearcher interface {
	SearchBasic(ctx context.Context, query string, page, size int) (*es.SearchResult, error)
}

// SearchRouter binds the archive search route. Without a configured
// archive the route answers 503.
type SearchRouter struct {
	e        *echo.Echo
	searcher ArchiveSearcher
}

func NewSearchRouter(e *echo.Echo, searcher ArchiveSearcher) *SearchRouter {
	return &SearchRouter{e: e, searcher: searcher}
}

func (r *SearchRouter) Bind() {
	r.e.GET("/api/news/search", r.searchHandler)
}

// searchHandler godoc
// @Summary Full-text search over archived articles
// @Param query query string true "Search text"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Produce json
// @Success 200 {object} es.SearchResult
// @Router /api/news/search [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	if r.searcher == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "article archive is not configured"})
	}

	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query parameter is required"})
	}

	var paging pagination.OffsetRequest
	if err := c.Bind(&paging); err != nil {
		// Unparsable paging is defaulted, never rejected.
		paging = pagination.OffsetRequest{}
	}
	_ = paging.Validate()

	results, err := r.searcher.SearchBasic(c.Request().Context(), query, paging.Page, paging.Size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, results)
}
