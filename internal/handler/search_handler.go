package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pedro-candido/mvvm-app/internal/store"
)

// SearchHandler serves the naive cross-collection search route.
type SearchHandler struct {
	store *store.Store
}

// NewSearchHandler creates the search handler.
func NewSearchHandler(st *store.Store) *SearchHandler {
	return &SearchHandler{store: st}
}

// Search handles GET /search?q=. The query is matched case-insensitively as
// a substring against user name/email, post title/content and product
// name/description.
func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, `Query parameter "q" is required`)
	}
	users, posts, products := h.store.Search(q)
	return c.JSON(http.StatusOK, echo.Map{
		"users":    users,
		"posts":    posts,
		"products": products,
	})
}
