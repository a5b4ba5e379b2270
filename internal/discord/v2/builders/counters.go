package builders

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	"github.com/KirkDiggler/counterpick-bot/internal/render"
)

// Discord rejects field values over 1024 characters
const maxFieldValue = 1024

// ProfileEmbed shows a character's roles and relations
func ProfileEmbed(p *engine.Profile) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title(render.ProfileTitle(p)).
		Color(ColorInfo).
		Field("Roles", render.Roles(p.Roles), false)

	if p.Counters.Len() > 0 {
		b.Field("Counters", clip(render.DisplaySet(p.Counters)), false)
	}
	if p.CounteredBy.Len() > 0 {
		b.Field("Countered by", clip(render.DisplaySet(p.CounteredBy)), false)
	}
	if p.Synergy.Len() > 0 {
		b.Field("Synergy with", clip(render.DisplaySet(p.Synergy)), false)
	}

	return b.Build()
}

// ReportEmbed shows warnings and ranked tanks for a matchup
func ReportEmbed(warnings []engine.Warning, rec *engine.Recommendation) *discordgo.MessageEmbed {
	b := NewEmbed().Title("Recommended characters")

	switch {
	case len(warnings) > 0:
		b.Color(ColorWarning).Description(render.Warnings(warnings))
	case rec == nil || !rec.HasEntries():
		b.Color(ColorError)
	default:
		b.Color(ColorSuccess)
	}

	if rec == nil || !rec.HasEntries() {
		b.Field("No match", render.NoMatchText, false)
		return b.Build()
	}

	for i := range rec.Entries {
		e := &rec.Entries[i]
		b.Field(fmt.Sprintf("%d. %s", i+1, render.EntryHeading(e)), clip(strings.Join(render.EntryLines(e), "\n")), false)
	}

	return b.Build()
}

// StatsEmbed summarizes the loaded catalog
func StatsEmbed(characters, tanks int, roamerTag string) *discordgo.MessageEmbed {
	return NewEmbed().
		Title("Catalog").
		Color(ColorPrimary).
		Field("Characters", fmt.Sprintf("%d", characters), true).
		Field("Tanks", fmt.Sprintf("%d", tanks), true).
		Field("Roamer tag", roamerTag, true).
		Build()
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxFieldValue {
		return s
	}
	return string(r[:maxFieldValue-3]) + "..."
}
