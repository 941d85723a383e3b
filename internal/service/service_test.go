package service

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-candido/mvvm-app/internal/config"
	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
	"github.com/pedro-candido/mvvm-app/internal/requestlog"
	"github.com/pedro-candido/mvvm-app/internal/router"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

// newAPI spins up a real store server over httptest and returns a client
// pointed at it.
func newAPI(t *testing.T) (*httpapi.Client, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	e := echo.New()
	cfg := &config.Config{BasePath: "/api", Latency: 0}
	router.Register(e, cfg, st, requestlog.NewRing(100))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return httpapi.New(srv.URL + "/api"), st
}

func TestUserServiceRoundTrip(t *testing.T) {
	api, _ := newAPI(t)
	svc := NewUserService(api)
	ctx := context.Background()

	users, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	created, err := svc.Create(ctx, model.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ana", created.Name)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, created.ID, model.User{Name: "Ana Maria", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Maria", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
}

func TestPostServiceRelations(t *testing.T) {
	api, st := newAPI(t)
	svc := NewPostService(api)
	userSvc := NewUserService(api)
	ctx := context.Background()

	_, err := st.Insert("posts", store.Record{"title": "mine", "userId": int64(7)})
	require.NoError(t, err)
	_, err = st.Insert("comments", store.Record{"content": "hi", "postId": int64(5)})
	require.NoError(t, err)

	posts, err := userSvc.GetPosts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].Title)

	comments, err := svc.GetComments(ctx, 5)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "hi", comments[0].Content)

	empty, err := svc.GetComments(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductServiceByCategory(t *testing.T) {
	api, st := newAPI(t)
	svc := NewProductService(api)
	ctx := context.Background()

	for _, p := range []store.Record{
		{"name": "headphones", "category": "electronics"},
		{"name": "mug", "category": "home"},
	} {
		_, err := st.Insert("products", p)
		require.NoError(t, err)
	}

	products, err := svc.GetByCategory(ctx, "electronics")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "headphones", products[0].Name)
}

func TestAuthServiceFlow(t *testing.T) {
	api, st := newAPI(t)
	svc := NewAuthService(api)
	ctx := context.Background()

	resp, err := svc.Register(ctx, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Token, "fake-jwt-token-"))
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.NotZero(t, resp.User.ID)

	_, err = svc.Register(ctx, "Other", "ana@example.com", "secret")
	require.Error(t, err)
	assert.Equal(t, "User already exists", err.Error())

	users, listErr := st.List("users")
	require.NoError(t, listErr)
	assert.Len(t, users, 1)

	login, err := svc.Login(ctx, "ana@example.com", "any-password-at-all")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, "ghost@example.com", "x")
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}

func TestSearchService(t *testing.T) {
	api, st := newAPI(t)
	svc := NewSearchService(api)
	ctx := context.Background()

	_, err := st.Insert("users", store.Record{"name": "Ana Souza", "email": "ana@example.com"})
	require.NoError(t, err)

	result, err := svc.Search(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "Ana Souza", result.Users[0].Name)
	assert.Empty(t, result.Posts)
	assert.Empty(t, result.Products)

	_, err = svc.Search(ctx, "")
	require.Error(t, err)
	assert.Equal(t, `Query parameter "q" is required`, err.Error())

	// query escaping survives characters that are special in URLs
	_, err = svc.Search(ctx, "a&b c")
	require.NoError(t, err)
}

func TestCategoryService(t *testing.T) {
	api, st := newAPI(t)
	svc := NewCategoryService(api)
	ctx := context.Background()

	created, err := st.Insert("categories", store.Record{"name": "electronics", "description": "gadgets"})
	require.NoError(t, err)
	id, _ := store.RecordID(created)

	categories, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "electronics", got.Name)
}
