package core

import (
	"strings"
)

// Route pattern prefixes
const (
	patternCommand   = "cmd"
	patternComponent = "component"
	patternModal     = "modal"
	patternWildcard  = "*"
)

// Router groups the handlers of one domain. The domain doubles as the
// slash command name and the first segment of every custom ID it owns.
type Router struct {
	domain          string
	handlers        map[string]Handler
	middleware      []Middleware
	customIDBuilder *CustomIDBuilder
	pipeline        *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router. Only handlers registered afterwards
// are wrapped.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a pattern such as "cmd:counters:menu",
// "component:back" or "modal:*"
func (r *Router) Handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

// HandleFunc registers a handler function
func (r *Router) HandleFunc(pattern string, fn HandlerFunc) *Router {
	return r.Handle(pattern, fn)
}

// Subcommand registers a handler for /domain sub
func (r *Router) Subcommand(sub string, fn HandlerFunc) *Router {
	return r.Handle(join(patternCommand, r.domain, sub), fn)
}

// Component registers a button or select handler for an action
func (r *Router) Component(action string, fn HandlerFunc) *Router {
	return r.Handle(join(patternComponent, action), fn)
}

// Modal registers a modal submit handler for an action
func (r *Router) Modal(action string, fn HandlerFunc) *Router {
	return r.Handle(join(patternModal, action), fn)
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// CustomIDs returns the builder for this router's custom IDs
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.customIDBuilder
}

func join(parts ...string) string {
	return strings.Join(parts, CustomIDSeparator)
}

type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	_, ok := h.lookup(ctx)
	return ok
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.lookup(ctx)
	if !ok {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// lookup tries the exact pattern first, then wildcards from most to least
// specific
func (h *routerHandler) lookup(ctx *InteractionContext) (Handler, bool) {
	pattern := h.extractPattern(ctx)
	if pattern == "" {
		return nil, false
	}

	if handler, ok := h.handlers[pattern]; ok {
		return handler, true
	}

	parts := strings.Split(pattern, CustomIDSeparator)
	for i := len(parts) - 1; i > 0; i-- {
		wildcard := join(append(parts[:i:i], patternWildcard)...)
		if handler, ok := h.handlers[wildcard]; ok {
			return handler, true
		}
	}

	return nil, false
}

func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		if sub := ctx.GetSubcommand(); sub != "" {
			return join(patternCommand, h.domain, sub)
		}
		return join(patternCommand, h.domain)

	case ctx.IsComponent(), ctx.IsModal():
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return ""
		}
		prefix := patternComponent
		if ctx.IsModal() {
			prefix = patternModal
		}
		return join(prefix, customID.Action)
	}

	return ""
}
