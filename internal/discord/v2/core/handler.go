package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all interaction handlers
type Handler interface {
	// CanHandle determines if this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult contains the response and metadata from a handler
type HandlerResult struct {
	Response *Response

	// Whether to stop processing further handlers
	StopPropagation bool

	// Additional context to pass to middleware
	Context map[string]any
}

// Respond wraps a response in a result
func Respond(resp *Response) *HandlerResult {
	return &HandlerResult{Response: resp}
}

// Response represents a Discord-agnostic response
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Only visible to the user who triggered the interaction
	Ephemeral bool

	// Replace the message the component was attached to instead of posting a
	// new one. Ignored for slash commands.
	Update bool

	// Open a modal instead of sending a message. Everything else is ignored.
	Modal *Modal
}

// Modal is a popup form with text inputs
type Modal struct {
	CustomID string
	Title    string
	Inputs   []*discordgo.TextInput
}

// NewResponse creates a new response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embeds ...*discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: embeds,
	}
}

// NewModalResponse opens a modal
func NewModalResponse(modal *Modal) *Response {
	return &Response{Modal: modal}
}

// WithComponents adds components to the response
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// WithEmbeds adds embeds to the response
func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// AsUpdate sets the response to replace the originating message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}

// IsModal reports whether the response opens a modal
func (r *Response) IsModal() bool {
	return r.Modal != nil
}
