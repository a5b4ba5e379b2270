package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
)

// maxPerRow is Discord's limit of components in one action row
const maxPerRow = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
	customIDs  *core.CustomIDBuilder
}

// NewComponentBuilder creates a builder whose buttons carry IDs from customIDs
func NewComponentBuilder(customIDs *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:       make([]discordgo.MessageComponent, 0),
		currentRow: make([]discordgo.MessageComponent, 0, maxPerRow),
		customIDs:  customIDs,
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDs.Button(action, args...),
	})
	return b
}

// EmojiButton adds a button with emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, action string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDs.Button(action, args...),
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji,
		},
	})
	return b
}

// PrimaryButton adds a blurple button
func (b *ComponentBuilder) PrimaryButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, args...)
}

// SecondaryButton adds a grey button
func (b *ComponentBuilder) SecondaryButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, args...)
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxPerRow)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

// ModalBuilder builds a modal form
type ModalBuilder struct {
	modal *core.Modal
}

// NewModal starts a modal with the given custom ID and title
func NewModal(customID, title string) *ModalBuilder {
	return &ModalBuilder{
		modal: &core.Modal{
			CustomID: customID,
			Title:    title,
			Inputs:   make([]*discordgo.TextInput, 0),
		},
	}
}

// ShortInput adds a single-line text input
func (b *ModalBuilder) ShortInput(id, label, placeholder string, required bool) *ModalBuilder {
	return b.input(id, label, placeholder, discordgo.TextInputShort, required)
}

// ParagraphInput adds a multi-line text input
func (b *ModalBuilder) ParagraphInput(id, label, placeholder string, required bool) *ModalBuilder {
	return b.input(id, label, placeholder, discordgo.TextInputParagraph, required)
}

func (b *ModalBuilder) input(id, label, placeholder string, style discordgo.TextInputStyle, required bool) *ModalBuilder {
	b.modal.Inputs = append(b.modal.Inputs, &discordgo.TextInput{
		CustomID:    id,
		Label:       label,
		Placeholder: placeholder,
		Style:       style,
		Required:    required,
		MaxLength:   1000,
	})
	return b
}

// Build returns the modal
func (b *ModalBuilder) Build() *core.Modal {
	return b.modal
}
