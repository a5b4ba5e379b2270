package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// LogUserErrors also logs bad input and unknown heroes
	LogUserErrors bool
}

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors: true,
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies so nothing
// reaches the pipeline's fallback handler
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			if config.LogErrors && (config.LogUserErrors || handlerErr.Code >= core.ErrorCodeInternal) {
				logError(ctx, err)
			}

			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(handlerErr.UserMessage),
				Context: map[string]any{
					"error": err,
				},
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in %s: %v\n%s", ctx.Describe(), r, debug.Stack())
					err = core.NewInternalError(fmt.Errorf("panic: %v", r))
					result = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func logError(ctx *core.InteractionContext, err error) {
	log.Printf("[Discord] Handler error in %s (request %s, user %s, code %s): %v, meta: %v",
		ctx.Describe(),
		ctx.RequestID(),
		ctx.UserID,
		apperr.GetCode(err),
		err,
		apperr.GetMeta(err),
	)
}
