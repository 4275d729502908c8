package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"flashbot/backend/internal/config"
	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/pkg/redis"

	"github.com/joho/godotenv"
)

// Prints per-collection document counts and singleton presence for the
// configured Redis store.
func main() {
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

	for _, collection := range model.Collections {
		count, err := docStore.Count(ctx, collection, nil)
		if err != nil {
			log.Fatalf("Failed to count %s: %v", collection, err)
		}
		fmt.Printf("%-15s %d documents\n", collection, count)
	}

	for _, collection := range []string{model.CollectionSettings, model.CollectionBotStatus} {
		_, err := docStore.FindSingleton(ctx, collection)
		fmt.Printf("%-15s singleton present: %v\n", collection, err == nil)
	}
}
