package middleware

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	"github.com/KirkDiggler/counterpick-bot/internal/uuid"
)

func failing(err error) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, err
	})
}

func ok(content string) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return core.Respond(core.NewResponse(content)), nil
	})
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "invalid argument shows its message",
			err:     apperr.InvalidArgument("hero name is required"),
			message: "hero name is required",
		},
		{
			name:    "wrong step",
			err:     apperr.FailedPreconditionf("expected step %q", "hero_info"),
			message: "That step has expired. Open the menu with /counters menu and start again.",
		},
		{
			name:    "handler error passes through",
			err:     core.NewValidationError("Enter at least one enemy."),
			message: "Enter at least one enemy.",
		},
		{
			name:    "unknown error is hidden",
			err:     errors.New("dial tcp: refused"),
			message: "An internal error occurred. Please try again later.",
		},
		{
			name:    "wrapped not found keeps its code",
			err:     apperr.Wrap(apperr.NotFoundf("draft not found"), "load"),
			message: "Not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ErrorMiddleware(nil)(failing(tt.err))

			result, err := handler.Handle(core.NewTestInteractionContext().AsCommand("counters").InteractionContext)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.message, result.Response.Content)
			assert.True(t, result.Response.Ephemeral)
			assert.Equal(t, tt.err, result.Context["error"])
		})
	}
}

func TestErrorMiddleware_PassesSuccess(t *testing.T) {
	handler := ErrorMiddleware(nil)(ok("fine"))

	result, err := handler.Handle(core.NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "fine", result.Response.Content)
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware()(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		panic("nil map")
	}))

	result, err := handler.Handle(core.NewTestInteractionContext().AsCommand("counters").InteractionContext)
	assert.Nil(t, result)

	var handlerErr *core.HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, core.ErrorCodeInternal, handlerErr.Code)
	assert.Contains(t, err.Error(), "nil map")
}

func TestRecoveryThenError(t *testing.T) {
	handler := core.MiddlewareChain(ErrorMiddleware(nil), RecoveryMiddleware())(core.HandlerFunc(
		func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			panic(fmt.Errorf("boom"))
		}))

	result, err := handler.Handle(core.NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "An internal error occurred. Please try again later.", result.Response.Content)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(uuid.NewSequenceGenerator("req"))(core.HandlerFunc(
		func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			seen = ctx.RequestID()
			return nil, nil
		}))

	_, err := handler.Handle(core.NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "req-1", seen)
}

func TestLoggingMiddleware(t *testing.T) {
	var lines []string
	cfg := DefaultLogConfig()
	cfg.Logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	ctx := core.NewTestInteractionContext().WithUserID("u1").AsCommand("counters", "menu")
	ctx.InteractionContext.WithValue(core.RequestIDKey, "abcd1234")

	_, err := LoggingMiddleware(cfg)(failing(errors.New("bad"))).Handle(ctx.InteractionContext)
	assert.Error(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, "[Discord abcd1234] counters/menu, User: u1, Guild: test-guild-123", lines[0])
	assert.Equal(t, "[Discord abcd1234] Error in counters/menu: bad", lines[1])
	assert.Contains(t, lines[2], "counters/menu completed in")
}

func TestLimiterStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewLimiterStore(2, time.Minute, func() time.Time { return now })

	assert.True(t, store.Allow("u1"))
	assert.True(t, store.Allow("u1"))
	assert.False(t, store.Allow("u1"))

	// Other keys have their own bucket
	assert.True(t, store.Allow("u2"))

	// One token back after half the window
	now = now.Add(30 * time.Second)
	assert.True(t, store.Allow("u1"))
	assert.False(t, store.Allow("u1"))

	store.Reset("u1")
	assert.True(t, store.Allow("u1"))
}

func TestLimiterStore_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewLimiterStore(2, time.Minute, func() time.Time { return now })

	store.Allow("u1")
	store.Allow("u2")
	require.Equal(t, 2, store.Len())

	assert.Zero(t, store.Prune())

	now = now.Add(time.Minute)
	assert.Equal(t, 2, store.Prune())
	assert.Zero(t, store.Len())
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mw := RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: 1,
		Window:      time.Minute,
		Store:       NewLimiterStore(1, time.Minute, func() time.Time { return now }),
	})
	handler := mw(ok("answer"))

	ctx := core.NewTestInteractionContext().WithUserID("u1").AsCommand("counters")

	result, err := handler.Handle(ctx.InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "answer", result.Response.Content)

	result, err = handler.Handle(ctx.InteractionContext)
	require.NoError(t, err)
	assert.Contains(t, result.Response.Content, "too fast")
	assert.True(t, result.Response.Ephemeral)

	// No key, no limit
	anon := core.NewTestInteractionContext().WithUserID("").AsCommand("counters")
	result, err = handler.Handle(anon.InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "answer", result.Response.Content)
}
