package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"flashbot/backend/internal/config"
	"flashbot/backend/internal/model"
	"flashbot/backend/internal/seed"
	"flashbot/backend/internal/store"
	"flashbot/backend/pkg/logger"
	"flashbot/backend/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	flush := flag.Bool("flush", false, "delete all collections before reseeding")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	docStore := store.NewRedis(redisClient, cfg.Store.OpTimeout)
	defer docStore.Close()

	ctx := context.Background()

	if *flush {
		for _, collection := range model.Collections {
			if err := docStore.DeleteAll(ctx, collection); err != nil {
				log.Fatalf("Failed to flush %s: %v", collection, err)
			}
			fmt.Printf("Flushed %s\n", collection)
		}
	}

	logger.Init(cfg.Log.Level, "pretty")
	if err := seed.New(docStore, logger.GetLogger()).Run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	for _, collection := range model.Collections {
		count, err := docStore.Count(ctx, collection, nil)
		if err != nil {
			log.Fatalf("Failed to count %s: %v", collection, err)
		}
		fmt.Printf("%-15s %d documents\n", collection, count)
	}
}
