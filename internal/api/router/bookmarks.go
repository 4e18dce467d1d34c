package router

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/newspulse/newspulse/internal/apperr"
	"github.com/newspulse/newspulse/internal/store/pg"
)

// userIDHeader identifies the bookmark owner. Verifying that identity is
// the identity service's job, not this service's (no sessions here).
const userIDHeader = "X-User-Id"

// BookmarkRouter serves bookmark CRUD backed by the persistence
// collaborator.
type BookmarkRouter struct {
	e     *echo.Echo
	store *pg.BookmarkStore
}

func NewBookmarkRouter(e *echo.Echo, store *pg.BookmarkStore) *BookmarkRouter {
	return &BookmarkRouter{e: e, store: store}
}

func (r *BookmarkRouter) Bind() {
	r.e.GET("/api/bookmarks", r.listHandler)
	r.e.GET("/api/bookmarks/:id", r.getHandler)
	r.e.POST("/api/bookmarks", r.createHandler)
	r.e.DELETE("/api/bookmarks/:id", r.deleteHandler)
}

type bookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func (r *BookmarkRouter) listHandler(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	bookmarks, err := r.store.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (r *BookmarkRouter) getHandler(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid bookmark id", err)
	}

	bookmark, err := r.store.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmark)
}

func (r *BookmarkRouter) createHandler(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req bookmarkRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid bookmark payload", err)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
		return apperr.NewValidation("title and url are required")
	}

	bookmark, err := r.store.Save(c.Request().Context(), pg.Bookmark{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.Image,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bookmark)
}

func (r *BookmarkRouter) deleteHandler(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid bookmark id", err)
	}

	if err := r.store.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func requireUserID(c echo.Context) (string, error) {
	userID := strings.TrimSpace(c.Request().Header.Get(userIDHeader))
	if userID == "" {
		return "", apperr.NewValidation("missing " + userIDHeader + " header")
	}
	return userID, nil
}
