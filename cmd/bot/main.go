package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/config"
	v2 "github.com/KirkDiggler/counterpick-bot/internal/discord/v2"
	"github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts"
	"github.com/KirkDiggler/counterpick-bot/internal/services"
)

const pruneInterval = 5 * time.Minute

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	cat, err := catalog.LoadFiles(cfg.Data.HeroesFile, cfg.Data.TanksFile)
	if err != nil {
		log.Fatalf("Failed to load character data: %v", err)
	}
	log.Printf("[Catalog] %d characters, %d tanks", cat.CharacterCount(), cat.TankCount())
	store := catalog.NewStore(cat)

	providerConfig := &services.ProviderConfig{
		Catalog:         store,
		RoamerTag:       cfg.Data.RoamerTag,
		DraftRepository: drafts.NewInMemoryRepository(&drafts.InMemoryConfig{TTL: cfg.Drafts.TTL}),
	}

	redisClient := connectRedis(cfg.Redis.URL)
	if redisClient != nil {
		providerConfig.DraftRepository = drafts.NewRedisRepository(&drafts.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Drafts.TTL,
		})
		log.Println("Using Redis for wizard drafts")
	}

	setup, err := v2.SetupV2Handlers(&v2.SetupConfig{
		Provider:           services.NewProvider(providerConfig),
		RoamerTag:          cfg.Data.RoamerTag,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
	})
	if err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.AddHandler(setup.Pipeline.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := v2.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		setup.RateLimits.PruneEvery(gctx, pruneInterval)
		return nil
	})
	if cfg.Data.Watch {
		watcher := catalog.NewWatcher(&catalog.WatcherConfig{
			Store:      store,
			RosterPath: cfg.Data.HeroesFile,
			TankPath:   cfg.Data.TanksFile,
		})
		g.Go(func() error {
			// The last good snapshot stays in place
			if err := watcher.Run(gctx); err != nil {
				log.Printf("[Catalog] Watcher stopped: %v", err)
			}
			return nil
		})
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	_ = g.Wait()

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when no URL is set or Redis is unreachable, in
// which case drafts stay in memory
func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory drafts")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory drafts")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory drafts")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
