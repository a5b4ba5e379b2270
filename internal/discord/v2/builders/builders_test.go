package builders

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
)

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := NewComponentBuilder(core.NewCustomIDBuilder("counters"))
	for i := 0; i < 6; i++ {
		b.PrimaryButton("b", "act")
	}
	b.NewRow().SecondaryButton("Back", "back")

	rows := b.Build()
	require.Len(t, rows, 3)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 1)

	back := rows[2].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, "counters:back", back.CustomID)
	assert.Equal(t, discordgo.SecondaryButton, back.Style)
}

func TestComponentBuilder_ButtonArgs(t *testing.T) {
	rows := NewComponentBuilder(core.NewCustomIDBuilder("counters")).
		EmojiButton("Retry", "🔁", discordgo.PrimaryButton, "retry", "hero", "2").
		Build()

	btn := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, "counters:retry:hero:2", btn.CustomID)
	assert.Equal(t, "🔁", btn.Emoji.Name)
}

func TestComponentBuilder_Empty(t *testing.T) {
	assert.Empty(t, NewComponentBuilder(core.NewCustomIDBuilder("counters")).Build())
}

func TestModalBuilder(t *testing.T) {
	modal := NewModal("counters:allies", "Your team").
		ShortInput("name", "Name", "", true).
		ParagraphInput("allies", "Allies", "names", false).
		Build()

	assert.Equal(t, "counters:allies", modal.CustomID)
	require.Len(t, modal.Inputs, 2)
	assert.Equal(t, discordgo.TextInputShort, modal.Inputs[0].Style)
	assert.True(t, modal.Inputs[0].Required)
	assert.Equal(t, discordgo.TextInputParagraph, modal.Inputs[1].Style)
}

func TestProfileEmbed_SkipsEmptyRelations(t *testing.T) {
	embed := ProfileEmbed(&engine.Profile{
		Name:        "layla",
		Counters:    hero.NameSet{},
		CounteredBy: hero.NewNameSet("saber", "franco"),
		Synergy:     hero.NameSet{},
	})

	assert.Equal(t, "Hero info: Layla", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Not specified", embed.Fields[0].Value)
	assert.Equal(t, "Countered by", embed.Fields[1].Name)
	assert.Equal(t, "Franco, Saber", embed.Fields[1].Value)
}

func TestReportEmbed_NoMatch(t *testing.T) {
	embed := ReportEmbed(nil, &engine.Recommendation{Status: engine.StatusNoMatch})

	assert.Equal(t, ColorError, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "No suitable characters to recommend.", embed.Fields[0].Value)
}

func TestReportEmbed_Ranked(t *testing.T) {
	rec := &engine.Recommendation{
		Status: engine.StatusRanked,
		Entries: []engine.Entry{
			{Name: "tigreal", Roles: []string{"tank"}, Counters: []string{"fanny"}, Priority: 1},
			{Name: "atlas", Synergy: []string{"layla"}, Priority: 0.5},
		},
	}

	embed := ReportEmbed(nil, rec)
	assert.Equal(t, ColorSuccess, embed.Color)
	assert.Empty(t, embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "1. Tigreal (Tank)", embed.Fields[0].Name)
	assert.Equal(t, "2. Atlas (Not specified)", embed.Fields[1].Name)
	assert.Equal(t, "+0.5 for synergy with: Layla\nTotal priority: 0.5", embed.Fields[1].Value)
}

func TestClip(t *testing.T) {
	long := strings.Repeat("é", maxFieldValue+10)
	clipped := clip(long)
	assert.Equal(t, maxFieldValue, len([]rune(clipped)))
	assert.True(t, strings.HasSuffix(clipped, "..."))
	assert.Equal(t, "short", clip("short"))
}
