package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sergey-xx/Blogicum/internal/feedcache"
	"github.com/sergey-xx/Blogicum/internal/router"
	"github.com/sergey-xx/Blogicum/pkg/config"
	"github.com/sergey-xx/Blogicum/pkg/storage"
	"github.com/sergey-xx/Blogicum/web"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	store, err := storage.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	renderer, err := web.NewRenderer(cfg.TemplatesGlob)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	cache := feedcache.New(cfg.FeedCacheTTL)

	e := echo.New()
	e.Renderer = renderer
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db, cache, store, cfg)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
