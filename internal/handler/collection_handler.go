package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/pedro-candido/mvvm-app/internal/errors"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

// CollectionHandler serves the generic CRUD routes shared by every
// collection.
type CollectionHandler struct {
	store *store.Store
}

// NewCollectionHandler creates the generic CRUD handler.
func NewCollectionHandler(st *store.Store) *CollectionHandler {
	return &CollectionHandler{store: st}
}

// List handles GET /:collection.
func (h *CollectionHandler) List(c echo.Context) error {
	records, err := h.store.List(c.Param("collection"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Get handles GET /:collection/:id.
func (h *CollectionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.store.Find(c.Param("collection"), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /:collection, assigning a fresh id.
func (h *CollectionHandler) Create(c echo.Context) error {
	var rec store.Record
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.store.Insert(c.Param("collection"), rec)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /:collection/:id, replacing the record wholesale. The
// path id is authoritative; a body-supplied id is ignored.
func (h *CollectionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var rec store.Record
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	updated, err := h.store.Replace(c.Param("collection"), id, rec)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /:collection/:id.
func (h *CollectionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.store.Delete(c.Param("collection"), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, store.Record{})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// httpError converts a domain error into the echo error the custom error
// handler renders as {"error": message}.
func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.Message)
}
