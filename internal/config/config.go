package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	Data      DataConfig
	Drafts    DraftConfig
	RateLimit RateLimitConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps drafts
// in memory.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// DataConfig points at the character files
type DataConfig struct {
	HeroesFile string `env:"HEROES_FILE" envDefault:"data/heroes.txt"`
	TanksFile  string `env:"TANKS_FILE" envDefault:"data/tanks.txt"`
	RoamerTag  string `env:"ROAMER_TAG" envDefault:"roam"`
	Watch      bool   `env:"WATCH_DATA" envDefault:"false"`
}

// DraftConfig controls wizard state
type DraftConfig struct {
	TTL time.Duration `env:"DRAFT_TTL" envDefault:"30m"`
}

// RateLimitConfig controls per-user throttling
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith parses with explicit options, e.g. a fixed Environment in tests
func LoadWith(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	if c.Data.HeroesFile == "" && c.Data.TanksFile == "" {
		return fmt.Errorf("at least one of HEROES_FILE or TANKS_FILE is required")
	}
	if c.Drafts.TTL <= 0 {
		return fmt.Errorf("DRAFT_TTL must be positive")
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// LoadData reads only the data settings, for the offline CLI which needs no
// Discord credentials
func LoadData() (*DataConfig, error) {
	cfg := &DataConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
