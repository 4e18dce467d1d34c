// Package router binds the public API routes and translates query
// parameters into aggregation queries. Invalid parameters are defaulted,
// never rejected.
package router

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newspulse/newspulse/internal/aggregator"
	"github.com/newspulse/newspulse/internal/domain"
	"github.com/newspulse/newspulse/internal/dto"
	"github.com/newspulse/newspulse/internal/geo"
	"github.com/newspulse/newspulse/pkg/pagination"
)

const defaultRailLimit = 5

// ViewRecorder records article views for popularity ranking.
type ViewRecorder interface {
	Record(ctx context.Context, url string) error
}

// NewsRouter serves the aggregation query surface.
type NewsRouter struct {
	e      *echo.Echo
	agg    *aggregator.Aggregator
	states *geo.StateDirectory
	views  ViewRecorder
}

type NewsRouterOption func(*NewsRouter)

// WithStateDirectory enables the locations directory route.
func WithStateDirectory(d *geo.StateDirectory) NewsRouterOption {
	return func(r *NewsRouter) { r.states = d }
}

// WithViewRecorder enables the view-tracking route.
func WithViewRecorder(v ViewRecorder) NewsRouterOption {
	return func(r *NewsRouter) { r.views = v }
}

func NewNewsRouter(e *echo.Echo, agg *aggregator.Aggregator, opts ...NewsRouterOption) *NewsRouter {
	r := &NewsRouter{e: e, agg: agg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *NewsRouter) Bind() {
	r.e.GET("/api/news", r.newsHandler)
	r.e.GET("/api/news/trending", r.trendingHandler)
	r.e.GET("/api/news/popular", r.popularHandler)
	r.e.GET("/api/news/related/:articleId", r.relatedHandler)
	if r.views != nil {
		r.e.POST("/api/news/view", r.viewHandler)
	}
	if r.states != nil {
		r.e.GET("/api/locations/states", r.statesHandler)
	}
}

// newsHandler godoc
// @Summary Aggregated news
// @Description Merged, classified and sorted articles from the configured sources
// @Param category query string false "Category (technology, science, business, health, entertainment, sports, general)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param region query string false "Region filter (domestic, international, district)"
// @Param state query string false "State filter"
// @Param district query string false "District filter"
// @Param country query string false "Country filter"
// @Produce json
// @Success 200 {array} dto.Article
// @Router /api/news [get]
func (r *NewsRouter) newsHandler(c echo.Context) error {
	q := domain.NewsQuery{
		Category: c.QueryParam("category"),
		Page:     intParam(c, "page", domain.DefaultPage),
		PageSize: intParam(c, "pageSize", domain.DefaultPageSize),
		Region:   domain.Region(strings.ToLower(c.QueryParam("region"))),
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Country:  c.QueryParam("country"),
	}.Normalize()

	articles := r.agg.Aggregate(c.Request().Context(), q)

	// Providers with native paging already received the page parameter;
	// slicing here covers the tiers that return everything at once.
	if len(articles) > q.PageSize {
		articles = pagination.Slice(articles, q.Page, q.PageSize)
	}

	return c.JSON(http.StatusOK, dto.FromDomainList(articles))
}

// trendingHandler godoc
// @Summary Trending news
// @Param limit query int false "Result limit"
// @Produce json
// @Success 200 {array} dto.Article
// @Router /api/news/trending [get]
func (r *NewsRouter) trendingHandler(c echo.Context) error {
	limit := intParam(c, "limit", defaultRailLimit)
	articles := r.agg.Trending(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, dto.FromDomainList(articles))
}

// popularHandler godoc
// @Summary Popular news
// @Description Ranked by recorded view counts when view tracking is configured
// @Param limit query int false "Result limit"
// @Produce json
// @Success 200 {array} dto.Article
// @Router /api/news/popular [get]
func (r *NewsRouter) popularHandler(c echo.Context) error {
	limit := intParam(c, "limit", defaultRailLimit)
	articles, counts := r.agg.Popular(c.Request().Context(), limit)

	out := dto.FromDomainList(articles)
	for i := range out {
		out[i].ViewCount = counts[out[i].URL]
	}
	return c.JSON(http.StatusOK, out)
}

// relatedHandler godoc
// @Summary Related news
// @Description Category aggregation excluding the index position matching articleId
// @Param articleId path int true "Index of the article to exclude"
// @Param category query string false "Category"
// @Param limit query int false "Result limit"
// @Produce json
// @Success 200 {array} dto.Article
// @Router /api/news/related/{articleId} [get]
func (r *NewsRouter) relatedHandler(c echo.Context) error {
	articleID, err := strconv.Atoi(c.Param("articleId"))
	if err != nil {
		articleID = -1
	}
	category := c.QueryParam("category")
	limit := intParam(c, "limit", 3)

	articles := r.agg.Related(c.Request().Context(), articleID, category, limit)
	return c.JSON(http.StatusOK, dto.FromDomainList(articles))
}

type viewRequest struct {
	URL string `json:"url"`
}

// viewHandler godoc
// @Summary Record an article view
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string
// @Router /api/news/view [post]
func (r *NewsRouter) viewHandler(c echo.Context) error {
	var req viewRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}

	if err := r.views.Record(c.Request().Context(), req.URL); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "recorded"})
}

// statesHandler godoc
// @Summary Indian states and districts directory
// @Produce json
// @Success 200 {array} geo.State
// @Router /api/locations/states [get]
func (r *NewsRouter) statesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.states.States())
}

// intParam reads an integer query parameter, falling back to def on
// anything non-numeric or non-positive.
func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	return value
}
