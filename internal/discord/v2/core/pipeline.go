package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DefaultTimeout bounds a single interaction. Discord drops the token for an
// initial response after three seconds, but follow-ups stay valid longer.
const DefaultTimeout = 10 * time.Second

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler
	timeout      time.Duration
	mu           sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that escape every middleware
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		timeout:      DefaultTimeout,
	}
}

// Register adds handlers to the pipeline. Middleware added with Use before
// this call wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetTimeout changes the per-interaction deadline
func (p *Pipeline) SetTimeout(timeout time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.timeout = timeout
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// HandleInteraction is a discordgo event handler:
// session.AddHandler(pipeline.HandleInteraction)
func (p *Pipeline) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p.mu.RLock()
	timeout := p.timeout
	p.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := p.Execute(ctx, s, i); err != nil {
		log.Printf("[Pipeline] Interaction %s failed: %v", i.ID, err)
	}
}

// Execute runs the pipeline for a Discord interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ic := NewInteractionContext(ctx, s, i)
	return p.Dispatch(ic, NewDiscordResponder(s, i.Interaction))
}

// Dispatch runs the first handler that accepts the interaction and sends
// its response through responder
func (p *Pipeline) Dispatch(ic *InteractionContext, responder InteractionResponder) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}

		if result != nil && result.Response != nil {
			if err := responder.Respond(result.Response); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		return nil
	}

	log.Printf("[Pipeline] No handler for %s", ic.Describe())
	if responder.HasResponded() {
		return nil
	}
	return responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
}

func defaultErrorHandler(_ *InteractionContext, err error) *HandlerResult {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.ShowToUser {
		return Respond(NewEphemeralResponse(handlerErr.UserMessage))
	}

	return Respond(NewEphemeralResponse("An error occurred while processing your request."))
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
