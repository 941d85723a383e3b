package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pedro-candido/mvvm-app/internal/config"
	"github.com/pedro-candido/mvvm-app/internal/requestlog"
	"github.com/pedro-candido/mvvm-app/internal/router"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

const requestLogCapacity = 1000

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DBFile)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	tap := requestlog.NewRing(requestLogCapacity)
	router.Register(e, cfg, st, tap)

	log.Printf("Store server listening on http://localhost:%s", cfg.ServerPort)
	log.Println("Available endpoints:")
	for _, route := range []string{
		"GET    " + cfg.BasePath + "/users",
		"GET    " + cfg.BasePath + "/posts",
		"GET    " + cfg.BasePath + "/products",
		"GET    " + cfg.BasePath + "/categories",
		"GET    " + cfg.BasePath + "/comments",
		"GET    " + cfg.BasePath + "/users/:id/posts",
		"GET    " + cfg.BasePath + "/posts/:id/comments",
		"GET    " + cfg.BasePath + "/products/category/:category",
		"GET    " + cfg.BasePath + "/search?q=query",
		"POST   " + cfg.BasePath + "/auth/login",
		"POST   " + cfg.BasePath + "/auth/register",
	} {
		log.Printf("  %s", route)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
