// Package v2 assembles the interaction pipeline: global middleware, the
// counters router and the slash command definitions.
package v2

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/middleware"
	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/routers"
	"github.com/KirkDiggler/counterpick-bot/internal/services"
	"github.com/KirkDiggler/counterpick-bot/internal/uuid"
)

// DefaultRateLimitPerMinute caps interactions per user
const DefaultRateLimitPerMinute = 30

// SetupConfig holds what the pipeline needs
type SetupConfig struct {
	Provider           *services.Provider // Required
	RoamerTag          string
	RateLimitPerMinute int            // Optional, defaults to DefaultRateLimitPerMinute
	UUIDGenerator      uuid.Generator // Optional, request IDs
	Timeout            time.Duration  // Optional, defaults to core.DefaultTimeout
}

// Setup is a ready pipeline plus the rate limit store it owns. Callers run
// RateLimits.PruneEvery for the lifetime of the bot.
type Setup struct {
	Pipeline   *core.Pipeline
	RateLimits *middleware.LimiterStore
}

// SetupV2Handlers builds the pipeline with every router registered
func SetupV2Handlers(cfg *SetupConfig) (*Setup, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, fmt.Errorf("provider is required")
	}

	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = DefaultRateLimitPerMinute
	}
	limits := middleware.NewLimiterStore(perMinute, time.Minute, nil)

	pipeline := core.NewPipeline()
	if cfg.Timeout > 0 {
		pipeline.SetTimeout(cfg.Timeout)
	}

	// Order matters: the request ID must exist before anything logs, and
	// recovery sits inside logging so panics show up as errors
	pipeline.Use(
		middleware.RequestIDMiddleware(cfg.UUIDGenerator),
		middleware.ErrorMiddleware(nil),
		middleware.LoggingMiddleware(nil),
		middleware.RecoveryMiddleware(),
	)

	if _, err := routers.NewCountersRouter(&routers.CountersRouterConfig{
		Pipeline:  pipeline,
		Provider:  cfg.Provider,
		RoamerTag: cfg.RoamerTag,
		Middleware: []core.Middleware{
			middleware.RateLimitMiddleware(&middleware.RateLimitConfig{
				MaxRequests: perMinute,
				Window:      time.Minute,
				Store:       limits,
			}),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to create counters router: %w", err)
	}

	return &Setup{
		Pipeline:   pipeline,
		RateLimits: limits,
	}, nil
}

// CommandCreator is the part of a discordgo session used to register
// commands
type CommandCreator interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// RegisterCommands creates the slash commands. An empty guildID registers
// them globally.
func RegisterCommands(s CommandCreator, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("[Discord] Registered command: %s", cmd.Name)
	}
	return nil
}

// Commands describes the /counters slash command
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        routers.Domain,
			Description: "Counter picks and tank recommendations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "menu",
					Description: "Open the main menu",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hero",
					Description: "Show what a character counters and is countered by",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        handlers.InputName,
							Description: "Character name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recommend",
					Description: "Recommend a tank for a matchup",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        handlers.InputEnemies,
							Description: "Enemy characters separated by spaces",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        handlers.InputAllies,
							Description: "Allied characters separated by spaces",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show how many characters are loaded",
				},
			},
		},
	}
}
