package catalog

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
)

// rosterFieldSep splits roster lines on a period followed by optional spaces.
var rosterFieldSep = regexp.MustCompile(`\.\s*`)

// tankFieldSep is stricter than rosterFieldSep: a period without a trailing
// space does not split a tank line. The two formats have always differed
// this way and existing data files depend on it.
const tankFieldSep = ". "

// ParseStats reports how many lines a parse accepted and skipped
type ParseStats struct {
	Accepted int
	Skipped  int
}

// ParseRosterLine parses "Name. role, role. counters. countered by. synergy".
// Only name and roles are required. Returns false for lines to skip.
func ParseRosterLine(line string) (*hero.Character, bool) {
	parts := rosterFieldSep.Split(strings.TrimSpace(line), -1)
	if len(parts) < 2 {
		return nil, false
	}

	ch := &hero.Character{
		Name:        hero.Canonical(parts[0]),
		Roles:       splitRoles(parts[1]),
		Counters:    hero.NameSet{},
		CounteredBy: hero.NameSet{},
		Synergy:     hero.NameSet{},
	}
	if len(parts) > 2 {
		ch.Counters = splitNameSet(parts[2])
	}
	if len(parts) > 3 {
		ch.CounteredBy = splitNameSet(parts[3])
	}
	if len(parts) > 4 {
		ch.Synergy = splitNameSet(parts[4])
	}

	return ch, true
}

// ParseTankLine parses "Name. counters. countered by. synergy". Exactly four
// fields are required; anything else is skipped.
func ParseTankLine(line string) (*hero.TankProfile, bool) {
	parts := strings.Split(strings.TrimSpace(line), tankFieldSep)
	if len(parts) != 4 {
		return nil, false
	}

	return &hero.TankProfile{
		Name:        hero.Canonical(parts[0]),
		Roles:       []string{},
		Counters:    splitNameSet(parts[1]),
		CounteredBy: splitNameSet(parts[2]),
		Synergy:     splitNameSet(parts[3]),
	}, true
}

// ParseRoster reads roster records from r into b
func ParseRoster(r io.Reader, b *Builder) (ParseStats, error) {
	return scanLines(r, func(line string) bool {
		ch, ok := ParseRosterLine(line)
		if ok {
			b.AddCharacter(ch)
		}
		return ok
	})
}

// ParseTanks reads tank records from r into b
func ParseTanks(r io.Reader, b *Builder) (ParseStats, error) {
	return scanLines(r, func(line string) bool {
		t, ok := ParseTankLine(line)
		if ok {
			b.AddTank(t)
		}
		return ok
	})
}

// scanLines has no line length limit, so an oversized record is parsed
// or skipped like any other line instead of aborting the read.
func scanLines(r io.Reader, accept func(string) bool) (ParseStats, error) {
	var stats ParseStats
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if accept(strings.TrimRight(line, "\r\n")) {
				stats.Accepted++
			} else {
				stats.Skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
	}
}

func splitRoles(field string) []string {
	roles := make([]string, 0)
	for _, tok := range strings.Split(field, ",") {
		if r := hero.Canonical(tok); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

func splitNameSet(field string) hero.NameSet {
	set := hero.NameSet{}
	for _, tok := range strings.Split(field, ",") {
		if n := hero.Canonical(tok); n != "" {
			set.Add(n)
		}
	}
	return set
}
