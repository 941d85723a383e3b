package session

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-candido/mvvm-app/internal/config"
	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
	"github.com/pedro-candido/mvvm-app/internal/requestlog"
	"github.com/pedro-candido/mvvm-app/internal/router"
	"github.com/pedro-candido/mvvm-app/internal/service"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

func newAPI(t *testing.T) (*httpapi.Client, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	e := echo.New()
	router.Register(e, &config.Config{BasePath: "/api", Latency: 0}, st, requestlog.NewRing(100))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return httpapi.New(srv.URL + "/api"), st
}

func TestUserSessionAgainstRealServer(t *testing.T) {
	api, _ := newAPI(t)
	s := NewUserSession(context.Background(), service.NewUserService(api))
	defer s.Close()

	snap := waitForState(t, s, StateReady)
	assert.Empty(t, snap.Items, "session over an empty collection settles ready and empty")

	created, err := s.Create(context.Background(), model.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	snap = s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, created, snap.Items[0])

	_, err = s.Update(context.Background(), created.ID, model.User{Name: "Ana Maria", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", s.Snapshot().Items[0].Name)

	require.NoError(t, s.Delete(context.Background(), created.ID))
	assert.Empty(t, s.Snapshot().Items)
}

func TestUserSessionMutateFailurePropagates(t *testing.T) {
	api, st := newAPI(t)
	s := NewUserSession(context.Background(), service.NewUserService(api))
	defer s.Close()
	waitForState(t, s, StateReady)

	// deleting a record that was never created fails server-side
	err := s.Delete(context.Background(), 424242)
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())

	snap := s.Snapshot()
	assert.Equal(t, StateErrored, snap.State)
	assert.NotEmpty(t, snap.Err)

	users, listErr := st.List("users")
	require.NoError(t, listErr)
	assert.Empty(t, users)
}

func TestProductSessionFetchByCategory(t *testing.T) {
	api, st := newAPI(t)
	for _, p := range []store.Record{
		{"name": "headphones", "category": "electronics"},
		{"name": "mug", "category": "home"},
	} {
		_, err := st.Insert("products", p)
		require.NoError(t, err)
	}

	s := NewProductSession(context.Background(), service.NewProductService(api))
	defer s.Close()
	snap := waitForState(t, s.Session, StateReady)
	assert.Len(t, snap.Items, 2)

	require.NoError(t, s.FetchByCategory(context.Background(), "electronics"))
	snap = s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "headphones", snap.Items[0].Name)
}

func TestCategorySessionIsReadOnly(t *testing.T) {
	api, st := newAPI(t)
	_, err := st.Insert("categories", store.Record{"name": "electronics"})
	require.NoError(t, err)

	s := NewCategorySession(context.Background(), service.NewCategoryService(api))
	defer s.Close()
	snap := waitForState(t, s, StateReady)
	require.Len(t, snap.Items, 1)

	_, err = s.Create(context.Background(), model.Category{Name: "home"})
	assert.ErrorIs(t, err, ErrUnsupported)
}
