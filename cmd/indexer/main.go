package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sportmap-ro/backend/internal/adapters/database"
	"github.com/sportmap-ro/backend/internal/adapters/search"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/typesense"
	"github.com/sportmap-ro/backend/pkg/config"
)

const reindexBatchSize = 200

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatalf("Invalid interval %q: %v", intervalValue, err)
		}
		if interval <= 0 {
			log.Fatalf("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			log.Printf("Reindex failed: %v", err)
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Printf("Reindex complete. Next run in %s.", interval)

		select {
		case <-ctx.Done():
			log.Println("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	facilityRepo := database.NewFacilityAdapter(pgClient)

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	adapter := search.NewTypesenseAdapter(tsClient)

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Println("Reset requested, deleting facilities collection")
		if err := adapter.ResetSchema(ctx); err != nil {
			log.Printf("Warning: failed to delete collection: %v", err)
		}
	}

	if err := adapter.InitSchema(ctx); err != nil {
		return err
	}

	indexed := 0
	offset := 0
	for {
		facilities, err := facilityRepo.List(ctx, repositories.FacilityFilter{
			Status: entities.StatusApproved,
			Limit:  reindexBatchSize,
			Offset: offset,
		})
		if err != nil {
			return err
		}
		if len(facilities) == 0 {
			break
		}

		for _, f := range facilities {
			if f == nil {
				continue
			}
			if err := adapter.Index(ctx, f); err != nil {
				log.Printf("Failed to index facility %s: %v", f.ID, err)
				continue
			}
			indexed++
		}

		if len(facilities) < reindexBatchSize {
			break
		}
		offset += reindexBatchSize
	}

	log.Printf("Indexing complete. %d facilities indexed.", indexed)
	return nil
}
