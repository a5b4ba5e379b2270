package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(calls *[]string) *Router {
	record := func(name string) HandlerFunc {
		return func(ctx *InteractionContext) (*HandlerResult, error) {
			*calls = append(*calls, name)
			return Respond(NewResponse(name)), nil
		}
	}

	return NewRouter("counters", nil).
		Subcommand("menu", record("menu")).
		Component("back", record("back")).
		Component("*", record("any-component")).
		Modal("allies", record("allies-modal"))
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name string
		ctx  *TestInteractionContext
		want string
	}{
		{"subcommand", NewTestInteractionContext().AsCommand("counters", "menu"), "menu"},
		{"component exact", NewTestInteractionContext().AsComponent("counters:back"), "back"},
		{"component wildcard", NewTestInteractionContext().AsComponent("counters:retry:hero"), "any-component"},
		{"modal", NewTestInteractionContext().AsModal("counters:allies", nil), "allies-modal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			handler := newTestRouter(&calls).Build()

			require.True(t, handler.CanHandle(tt.ctx.InteractionContext))
			result, err := handler.Handle(tt.ctx.InteractionContext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Response.Content)
			assert.Equal(t, []string{tt.want}, calls)
		})
	}
}

func TestRouter_IgnoresOtherDomains(t *testing.T) {
	var calls []string
	handler := newTestRouter(&calls).Build()

	for _, ctx := range []*TestInteractionContext{
		NewTestInteractionContext().AsCommand("other", "menu"),
		NewTestInteractionContext().AsCommand("counters", "unknown"),
		NewTestInteractionContext().AsComponent("other:back"),
		NewTestInteractionContext().AsComponent("garbage"),
		NewTestInteractionContext().AsModal("counters:enemies", nil),
	} {
		assert.False(t, handler.CanHandle(ctx.InteractionContext), ctx.Describe())
	}

	_, err := handler.Handle(NewTestInteractionContext().AsCommand("other").InteractionContext)
	var handlerErr *HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, ErrorCodeNotFound, handlerErr.Code)
}

func TestRouter_MiddlewareWrapsLaterRoutes(t *testing.T) {
	var seen []string
	mw := func(next Handler) Handler {
		return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
			seen = append(seen, ctx.Describe())
			return next.Handle(ctx)
		})
	}

	noop := func(ctx *InteractionContext) (*HandlerResult, error) { return nil, nil }
	router := NewRouter("counters", nil).
		Subcommand("before", noop).
		Use(mw).
		Subcommand("after", noop)
	handler := router.Build()

	_, _ = handler.Handle(NewTestInteractionContext().AsCommand("counters", "before").InteractionContext)
	_, _ = handler.Handle(NewTestInteractionContext().AsCommand("counters", "after").InteractionContext)

	assert.Equal(t, []string{"counters/after"}, seen)
}

func TestRouter_Register(t *testing.T) {
	pipeline := NewPipeline()
	NewRouter("counters", pipeline).Subcommand("menu", func(ctx *InteractionContext) (*HandlerResult, error) {
		return nil, nil
	}).Register()

	assert.Equal(t, 1, pipeline.HandlerCount())
}
