package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds an InteractionContext without a live session
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	return &TestInteractionContext{
		InteractionContext: &InteractionContext{
			Context: context.Background(),
			UserID:  "test-user-123",
			GuildID: "test-guild-123",
			params:  make(map[string]any),
		},
	}
}

// WithParam adds a parameter for testing
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// AsCommand simulates a slash command, optionally with a subcommand
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	if len(subcommand) > 0 {
		t.params[ParamSubcommand] = subcommand[0]
	}

	return t
}

// AsComponent simulates a button press
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	t.params[ParamCustomID] = customID
	return t
}

// AsModal simulates a modal submit with the given text input values
func (t *TestInteractionContext) AsModal(customID string, values map[string]string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionModalSubmit,
			Data: discordgo.ModalSubmitInteractionData{
				CustomID: customID,
			},
		},
	}
	t.params[ParamModalID] = customID
	for k, v := range values {
		t.params[k] = v
	}
	return t
}

// MockResponder records what a handler would have sent
type MockResponder struct {
	Responses    []*Response
	Edits        []*Response
	FollowUps    []*Response
	RespondError error
	EditError    error
	Responded    bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		Responses: make([]*Response, 0),
		Edits:     make([]*Response, 0),
		FollowUps: make([]*Response, 0),
	}
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-message-123"}, nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
