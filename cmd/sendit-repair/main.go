package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dimitrije/sendit/internal/config"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/internal/storage"
)

func main() {
	if len(os.Args) > 2 || (len(os.Args) == 2 && os.Args[1] != "check") {
		fmt.Println("Usage: sendit-repair [check]")
		os.Exit(1)
	}
	checkOnly := len(os.Args) == 2

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

	store := services.NewStore(kv, services.StoreConfig{Key: cfg.Storage.Key})

	data, status := store.Load(ctx)
	fmt.Printf("Library %s: %d videos, %d collections\n", status, len(data.Videos), len(data.Collections))

	if checkOnly {
		fmt.Printf("Would repair: %s\n", services.Diagnose(data, time.Now()))
		return
	}

	report, err := store.RecountAll(ctx)
	if err != nil {
		log.Fatalf("Failed to repair library: %v", err)
	}

	fmt.Printf("Repaired: %s\n", report)
}
