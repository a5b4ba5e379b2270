package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Respond sends the initial response: a message, a message update or a modal
	Respond(response *Response) error

	// Edit updates a previous response
	Edit(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	HasResponded() bool
}

// DiscordSession is the slice of *discordgo.Session the responder needs
type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	session     DiscordSession
	interaction *discordgo.Interaction
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s DiscordSession, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends the initial response. A second call edits instead.
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		if response.IsModal() {
			return fmt.Errorf("cannot open a modal after responding")
		}
		return r.Edit(response)
	}

	err := r.session.InteractionRespond(r.interaction, r.buildInteractionResponse(response))
	if err == nil {
		r.responded = true
	}
	return err
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return fmt.Errorf("cannot edit before responding")
	}

	webhook := &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &response.Embeds,
		Components: &response.Components,
	}

	_, err := r.session.InteractionResponseEdit(r.interaction, webhook)
	return err
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, fmt.Errorf("cannot follow up before responding")
	}

	params := &discordgo.WebhookParams{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.session.FollowupMessageCreate(r.interaction, true, params)
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

func (r *DiscordResponder) buildInteractionResponse(response *Response) *discordgo.InteractionResponse {
	if response.IsModal() {
		rows := make([]discordgo.MessageComponent, len(response.Modal.Inputs))
		for i, input := range response.Modal.Inputs {
			rows[i] = discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
		}
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID:   response.Modal.CustomID,
				Title:      response.Modal.Title,
				Components: rows,
			},
		}
	}

	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update && r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	return &discordgo.InteractionResponse{Type: responseType, Data: data}
}
