package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pedro-candido/mvvm-app/internal/store"
)

// RelationHandler serves the custom relationship and category filter routes.
// A filter that matches nothing returns an empty sequence with 200, never a
// 404: the routes answer "which records reference this id", not "does this
// id exist".
type RelationHandler struct {
	store *store.Store
}

// NewRelationHandler creates the relation filter handler.
func NewRelationHandler(st *store.Store) *RelationHandler {
	return &RelationHandler{store: st}
}

// UserPosts handles GET /users/:id/posts.
func (h *RelationHandler) UserPosts(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	posts, err := h.store.FilterByRef("posts", "userId", id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// PostComments handles GET /posts/:id/comments.
func (h *RelationHandler) PostComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	comments, err := h.store.FilterByRef("comments", "postId", id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// ProductsByCategory handles GET /products/category/:category with an exact,
// case-sensitive match on the category field.
func (h *RelationHandler) ProductsByCategory(c echo.Context) error {
	products, err := h.store.FilterByValue("products", "category", c.Param("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}
