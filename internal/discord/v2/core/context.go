package core

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Well-known parameter keys
const (
	ParamSubcommand = "subcommand"
	ParamCustomID   = "custom_id"
	ParamModalID    = "modal_id"
)

type contextKey string

// RequestIDKey is where RequestIDMiddleware stores the request ID
const RequestIDKey contextKey = "request_id"

// InteractionContext wraps a Discord interaction with the fields handlers
// actually read
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	UserID    string
	GuildID   string
	ChannelID string

	Context context.Context

	// Slash command options, component custom ID and modal text inputs
	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]any),
	}

	// Guild interactions carry Member, DMs carry User
	if i.Member != nil && i.Member.User != nil {
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	ic.parseParams()
	return ic
}

func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.params[ParamCustomID] = ic.Interaction.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		ic.parseModalParams()
	}
}

func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
			opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			ic.params[ParamSubcommand] = opt.Name
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

func (ic *InteractionContext) parseModalParams() {
	data := ic.Interaction.ModalSubmitData()
	ic.params[ParamModalID] = data.CustomID

	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				ic.params[input.CustomID] = input.Value
			}
		}
	}
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name].(string); ok {
		return val
	}
	return ""
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.interactionType() == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.interactionType() == discordgo.InteractionMessageComponent
}

// IsModal checks if this is a modal submit interaction
func (ic *InteractionContext) IsModal() bool {
	return ic.interactionType() == discordgo.InteractionModalSubmit
}

func (ic *InteractionContext) interactionType() discordgo.InteractionType {
	if ic.Interaction == nil || ic.Interaction.Interaction == nil {
		return 0
	}
	return ic.Interaction.Type
}

// GetCustomID returns the custom ID for component and modal interactions
func (ic *InteractionContext) GetCustomID() string {
	if id := ic.GetStringParam(ParamCustomID); id != "" {
		return id
	}
	return ic.GetStringParam(ParamModalID)
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam(ParamSubcommand)
}

// Describe names the interaction for logs: "counters/menu",
// "component counters:hero_info_mode", "modal counters:allies"
func (ic *InteractionContext) Describe() string {
	switch {
	case ic.IsCommand():
		name := ic.GetCommandName()
		if sub := ic.GetSubcommand(); sub != "" {
			name += "/" + sub
		}
		return name
	case ic.IsComponent():
		return "component " + shortCustomID(ic.GetCustomID())
	case ic.IsModal():
		return "modal " + shortCustomID(ic.GetCustomID())
	default:
		return "unknown"
	}
}

func shortCustomID(id string) string {
	if parsed, err := ParseCustomID(id); err == nil {
		return parsed.Domain + CustomIDSeparator + parsed.Action
	}
	return strings.TrimSpace(id)
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}

// RequestID returns the ID set by RequestIDMiddleware, if any
func (ic *InteractionContext) RequestID() string {
	id, _ := ic.Value(RequestIDKey).(string)
	return id
}
