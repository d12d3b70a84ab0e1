package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitrije/sendit/internal/config"
	"github.com/dimitrije/sendit/internal/handlers"
	reqmw "github.com/dimitrije/sendit/internal/middleware"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/internal/sse"
	"github.com/dimitrije/sendit/internal/storage"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	kv, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DataPath, cfg.Storage.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer kv.Close()

	hub := sse.NewHub()
	go hub.Run()

	store := services.NewStore(kv, services.StoreConfig{
		Key:          cfg.Storage.Key,
		RepairOnLoad: cfg.Storage.RepairOnLoad,
		Publisher:    hub,
	})

	data, status := store.Load(ctx)
	log.Printf("Library %s from %s storage: %d videos, %d collections",
		status, cfg.Storage.Driver, len(data.Videos), len(data.Collections))

	videoHandler := handlers.NewVideoHandler(store)
	collectionHandler := handlers.NewCollectionHandler(store)
	libraryHandler := handlers.NewLibraryHandler(store)
	sseHandler := handlers.NewSSEHandler(hub, store)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", reqmw.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(reqmw.RequestID())
	app.Use(reqmw.RequestLogger(nil))

	api := app.Group("/api/v1")

	api.Post("/classify", libraryHandler.Classify)

	api.Get("/videos", videoHandler.List)
	api.Post("/videos", videoHandler.Create)
	api.Get("/videos/:videoId", videoHandler.Get)
	api.Patch("/videos/:videoId", videoHandler.Update)
	api.Delete("/videos/:videoId", videoHandler.Delete)

	api.Get("/collections", collectionHandler.List)
	api.Post("/collections", collectionHandler.Create)
	api.Get("/collections/:collectionId", collectionHandler.Get)
	api.Patch("/collections/:collectionId", collectionHandler.Update)
	api.Delete("/collections/:collectionId", collectionHandler.Delete)
	api.Get("/collections/:collectionId/videos", collectionHandler.Videos)
	api.Get("/collections/:collectionId/share", collectionHandler.Share)

	api.Get("/stats", libraryHandler.Stats)
	api.Get("/palette", libraryHandler.Palette)
	api.Post("/maintenance/recount", libraryHandler.Recount)

	api.Get("/events", sseHandler.Connect)
	api.Post("/events/:clientId/collections/:collectionId", sseHandler.Subscribe)
	api.Delete("/events/:clientId/collections/:collectionId", sseHandler.Unsubscribe)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
