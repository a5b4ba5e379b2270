package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts"
)

func main() {
	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	pattern := drafts.KeyPrefix + "*"
	if len(os.Args) > 1 {
		pattern = drafts.KeyPrefix + os.Args[1]
	}

	count := 0
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count++

		raw, getErr := client.Get(ctx, key).Bytes()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		var data drafts.Data
		if jsonErr := json.Unmarshal(raw, &data); jsonErr != nil {
			fmt.Printf("  %s: corrupt - %v\n", key, jsonErr)
			continue
		}

		ttl := client.TTL(ctx, key).Val()
		fmt.Printf("  user %s: step=%q allies=[%s] updated=%s ttl=%s\n",
			data.UserID, data.Step, strings.Join(data.Allies, " "),
			data.UpdatedAt.Format(time.RFC3339), ttl.Round(time.Second))
	}
	if err := iter.Err(); err != nil {
		log.Fatalf("Failed to scan drafts: %v", err)
	}

	fmt.Printf("Found %d drafts\n", count)
}
