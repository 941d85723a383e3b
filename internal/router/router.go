package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pedro-candido/mvvm-app/internal/config"
	apperrors "github.com/pedro-candido/mvvm-app/internal/errors"
	"github.com/pedro-candido/mvvm-app/internal/handler"
	"github.com/pedro-candido/mvvm-app/internal/requestlog"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

// Register wires routes and middleware. The custom routes are registered
// before the generic collection routes; echo matches static segments before
// params, so /users/:id/posts wins over /:collection/:id for its path shape.
func Register(e *echo.Echo, cfg *config.Config, st *store.Store, tap *requestlog.Ring) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Latency and tap wrap every route uniformly, custom or generic, in
	// that order: the delay runs before the handler, the tap records
	// method+path+timestamp around it.
	e.Use(Latency(cfg.Latency))
	e.Use(Tap(tap))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	collectionHandler := handler.NewCollectionHandler(st)
	relationHandler := handler.NewRelationHandler(st)
	searchHandler := handler.NewSearchHandler(st)
	authHandler := handler.NewAuthHandler(st)

	api := e.Group(cfg.BasePath)

	// Custom routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/search", searchHandler.Search)
	api.GET("/users/:id/posts", relationHandler.UserPosts)
	api.GET("/posts/:id/comments", relationHandler.PostComments)
	api.GET("/products/category/:category", relationHandler.ProductsByCategory)

	// Generic collection routes
	api.GET("/:collection", collectionHandler.List)
	api.GET("/:collection/:id", collectionHandler.Get)
	api.POST("/:collection", collectionHandler.Create)
	api.PUT("/:collection/:id", collectionHandler.Update)
	api.DELETE("/:collection/:id", collectionHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// httpErrorHandler renders every failure as the {"error": message} body the
// API contract promises.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, apperrors.ErrorResponse{Error: message})
}
