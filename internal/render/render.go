// Package render turns engine results into user-facing text. Discord embeds
// and the offline CLI both build on these helpers.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
)

const (
	NotSpecified  = "Not specified"
	NoMatchText   = "No suitable characters to recommend."
	sectionRule   = "==================================="
	warningPrefix = "⚠️"
)

// DisplayName capitalizes a canonical name for display
func DisplayName(name string) string {
	// Casers hold state and are not safe for concurrent use
	return cases.Title(language.English).String(name)
}

// DisplayList joins names for display, keeping their order
func DisplayList(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = DisplayName(n)
	}
	return strings.Join(out, ", ")
}

// DisplaySet joins a set in sorted order
func DisplaySet(set hero.NameSet) string {
	return DisplayList(set.Sorted())
}

// Roles formats a role list, or NotSpecified when empty
func Roles(roles []string) string {
	if len(roles) == 0 {
		return NotSpecified
	}
	return DisplayList(roles)
}

// Points formats a score without trailing zeros: 1.5, 2, 0.5
func Points(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ProfileTitle is the heading for a hero info answer
func ProfileTitle(p *engine.Profile) string {
	return fmt.Sprintf("Hero info: %s", DisplayName(p.Name))
}

// ProfileLines lists a profile's roles and relations. Empty relations are
// omitted.
func ProfileLines(p *engine.Profile) []string {
	lines := []string{"Roles: " + Roles(p.Roles)}
	if p.Counters.Len() > 0 {
		lines = append(lines, "Counters: "+DisplaySet(p.Counters))
	}
	if p.CounteredBy.Len() > 0 {
		lines = append(lines, "Countered by: "+DisplaySet(p.CounteredBy))
	}
	if p.Synergy.Len() > 0 {
		lines = append(lines, "Synergy with: "+DisplaySet(p.Synergy))
	}
	return lines
}

// Profile renders a full hero info block
func Profile(p *engine.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", ProfileTitle(p))
	for _, line := range ProfileLines(p) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(sectionRule)
	return b.String()
}

// NotFound is the retry prompt for an unknown hero
func NotFound(name string) string {
	return fmt.Sprintf("Hero '%s' not found. Try again:", DisplayName(hero.Canonical(name)))
}

// Warning renders one counter warning
func Warning(w engine.Warning) string {
	return fmt.Sprintf("%s Enemy %s counters your ally %s!", warningPrefix, DisplayName(w.Enemy), DisplayName(w.Ally))
}

// Warnings renders all warnings, one per line. Empty when there are none.
func Warnings(ws []engine.Warning) string {
	lines := make([]string, len(ws))
	for i, w := range ws {
		lines[i] = Warning(w)
	}
	return strings.Join(lines, "\n")
}

// EntryHeading is "Name (Role, Role)"
func EntryHeading(e *engine.Entry) string {
	return fmt.Sprintf("%s (%s)", DisplayName(e.Name), Roles(e.Roles))
}

// EntryLines breaks down an entry's score
func EntryLines(e *engine.Entry) []string {
	var lines []string
	if len(e.Counters) > 0 {
		lines = append(lines, fmt.Sprintf("+%s for counters: %s", Points(e.CounterPoints()), DisplayList(e.Counters)))
	}
	if len(e.Synergy) > 0 {
		lines = append(lines, fmt.Sprintf("+%s for synergy with: %s", Points(e.SynergyPoints()), DisplayList(e.Synergy)))
	}
	lines = append(lines, "Total priority: "+Points(e.Priority))
	return lines
}

// Recommendation renders the ranked list, or NoMatchText
func Recommendation(rec *engine.Recommendation) string {
	if rec == nil || !rec.HasEntries() {
		return NoMatchText
	}

	var b strings.Builder
	b.WriteString("=== Recommended characters ===\n")
	for i := range rec.Entries {
		e := &rec.Entries[i]
		fmt.Fprintf(&b, "\n%s:\n", EntryHeading(e))
		for _, line := range EntryLines(e) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	b.WriteString(sectionRule)
	return b.String()
}

// Report renders warnings followed by the recommendation
func Report(warnings []engine.Warning, rec *engine.Recommendation) string {
	body := Recommendation(rec)
	if len(warnings) == 0 {
		return body
	}
	return Warnings(warnings) + "\n\n" + body
}
