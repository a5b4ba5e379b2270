package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/counterpick-bot/internal/uuid"
)

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming interactions
	LogRequests bool

	// LogDuration logs handler execution time
	LogDuration bool

	// LogErrors logs errors that reach this middleware
	LogErrors bool

	// Logf defaults to log.Printf
	Logf func(format string, args ...any)
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests: true,
		LogDuration: true,
		LogErrors:   true,
		Logf:        log.Printf,
	}
}

// LoggingMiddleware logs each interaction with its user, duration and error
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}
	logf := config.Logf
	if logf == nil {
		logf = log.Printf
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			prefix := "[Discord]"
			if id := ctx.RequestID(); id != "" {
				prefix = "[Discord " + id + "]"
			}

			if config.LogRequests {
				logf("%s %s, User: %s, Guild: %s", prefix, ctx.Describe(), ctx.UserID, ctx.GuildID)
			}

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			if err != nil && config.LogErrors {
				logf("%s Error in %s: %v", prefix, ctx.Describe(), err)
			}
			if config.LogDuration {
				logf("%s %s completed in %v", prefix, ctx.Describe(), duration)
			}

			return result, err
		})
	}
}

// RequestIDMiddleware tags each interaction with a short request ID
func RequestIDMiddleware(gen uuid.Generator) core.Middleware {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.WithValue(core.RequestIDKey, uuid.Short(gen))
			return next.Handle(ctx)
		})
	}
}
