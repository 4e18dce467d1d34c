package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newspulse/newspulse/internal/apperr"
	"github.com/newspulse/newspulse/internal/store/pg"
)

// NewsletterRouter serves newsletter subscriptions backed by the
// persistence collaborator.
type NewsletterRouter struct {
	e     *echo.Echo
	store *pg.NewsletterStore
}

func NewNewsletterRouter(e *echo.Echo, store *pg.NewsletterStore) *NewsletterRouter {
	return &NewsletterRouter{e: e, store: store}
}

func (r *NewsletterRouter) Bind() {
	r.e.POST("/api/newsletter/subscribe", r.subscribeHandler)
	r.e.GET("/api/newsletter/subscribers", r.countHandler)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// subscribeHandler godoc
// @Summary Subscribe to the newsletter
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Router /api/newsletter/subscribe [post]
func (r *NewsletterRouter) subscribeHandler(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid subscribe payload", err)
	}

	if err := r.store.Subscribe(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "subscribed"})
}

// countHandler godoc
// @Summary Newsletter subscriber count
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /api/newsletter/subscribers [get]
func (r *NewsletterRouter) countHandler(c echo.Context) error {
	count, err := r.store.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"subscribers": count})
}
