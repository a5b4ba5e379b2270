// Package engine computes hero profiles, counter warnings and tank
// recommendations from a catalog snapshot. Everything here is a pure
// function of its inputs: no I/O, no shared mutable state, no errors.
package engine

import (
	"slices"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
)

const (
	// DefaultRoamerTag is the role whose holders get tank data merged into
	// their profile
	DefaultRoamerTag = "roam"

	// MaxRecommendations caps the ranked list
	MaxRecommendations = 5

	CounterWeight = 1.0
	SynergyWeight = 0.5
)

// Config configures an Engine
type Config struct {
	RoamerTag string // Optional, defaults to DefaultRoamerTag
}

// Engine holds the few knobs the algorithms need
type Engine struct {
	roamerTag string
}

// New creates an engine. A nil config uses defaults.
func New(cfg *Config) *Engine {
	e := &Engine{roamerTag: DefaultRoamerTag}
	if cfg != nil && cfg.RoamerTag != "" {
		e.roamerTag = hero.Canonical(cfg.RoamerTag)
	}
	return e
}

// RoamerTag returns the canonical roamer role tag
func (e *Engine) RoamerTag() string {
	return e.roamerTag
}

// Profile is a character's merged role/counter/synergy data
type Profile struct {
	Name        string
	Roles       []string
	Counters    hero.NameSet
	CounteredBy hero.NameSet
	Synergy     hero.NameSet
}

// LookupProfile finds a roster character. Roamers that also appear in the
// tank dataset get the tank's counter data unioned in, since their data is
// split across the two sources. The second return is false when the name is
// not in the roster.
func (e *Engine) LookupProfile(cat *catalog.Catalog, name string) (*Profile, bool) {
	ch, ok := cat.Character(name)
	if !ok {
		return nil, false
	}

	p := &Profile{
		Name:        ch.Name,
		Roles:       slices.Clone(ch.Roles),
		Counters:    ch.Counters.Clone(),
		CounteredBy: ch.CounteredBy.Clone(),
		Synergy:     ch.Synergy.Clone(),
	}

	if ch.HasRole(e.roamerTag) {
		if tank, isTank := cat.Tank(ch.Name); isTank {
			p.Counters.Union(tank.Counters)
			p.CounteredBy.Union(tank.CounteredBy)
			p.Synergy.Union(tank.Synergy)
		}
	}

	return p, true
}

// Warning says an enemy is known to counter one of the allies
type Warning struct {
	Enemy string
	Ally  string
}

// DetectWarnings lists (enemy, ally) pairs where an enemy tank counters an
// ally. Output order follows enemies, then allies, as given. Enemies missing
// from the tank dataset are ignored. A name given twice is checked twice.
func (e *Engine) DetectWarnings(cat *catalog.Catalog, allies, enemies []string) []Warning {
	allies = hero.CanonicalNames(allies)
	enemies = hero.CanonicalNames(enemies)

	warnings := make([]Warning, 0)
	for _, enemy := range enemies {
		tank, ok := cat.Tank(enemy)
		if !ok {
			continue
		}
		for _, ally := range allies {
			if tank.Counters.Has(ally) {
				warnings = append(warnings, Warning{Enemy: enemy, Ally: ally})
			}
		}
	}
	return warnings
}

// Status distinguishes a ranked list from "nothing suitable"
type Status int

const (
	StatusNoMatch Status = iota
	StatusRanked
)

func (s Status) String() string {
	switch s {
	case StatusRanked:
		return "ranked"
	case StatusNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// Entry is one recommended tank
type Entry struct {
	Name     string
	Roles    []string
	Counters []string // matched enemies, in enemy input order
	Synergy  []string // matched allies, in ally input order
	Priority float64
}

// CounterPoints is the counter part of the priority
func (e *Entry) CounterPoints() float64 {
	return float64(len(e.Counters)) * CounterWeight
}

// SynergyPoints is the synergy part of the priority
func (e *Entry) SynergyPoints() float64 {
	return float64(len(e.Synergy)) * SynergyWeight
}

// Recommendation is the ranked result. Entries is empty exactly when Status
// is StatusNoMatch.
type Recommendation struct {
	Status  Status
	Entries []Entry
}

// HasEntries reports whether anything was recommended
func (r *Recommendation) HasEntries() bool {
	return r.Status == StatusRanked
}

// Recommend ranks tanks against the given allies and enemies.
//
// A tank countered by any present enemy is dropped before scoring. The rest
// score CounterWeight per enemy they counter plus SynergyWeight per ally they
// pair with; zero scores are dropped. Sorting is stable so equal priorities
// keep catalog order. At most MaxRecommendations entries are returned.
func (e *Engine) Recommend(cat *catalog.Catalog, allies, enemies []string) *Recommendation {
	allies = hero.CanonicalList(allies)
	enemies = hero.CanonicalList(enemies)

	entries := make([]Entry, 0)
	for _, tank := range cat.Tanks() {
		if countered(tank, enemies) {
			continue
		}

		entry := Entry{
			Name:     tank.Name,
			Roles:    slices.Clone(tank.Roles),
			Counters: matching(enemies, tank.Counters),
			Synergy:  matching(allies, tank.Synergy),
		}
		entry.Priority = entry.CounterPoints() + entry.SynergyPoints()
		if entry.Priority == 0 {
			continue
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Priority > b.Priority:
			return -1
		case a.Priority < b.Priority:
			return 1
		default:
			return 0
		}
	})

	if len(entries) > MaxRecommendations {
		entries = entries[:MaxRecommendations]
	}

	if len(entries) == 0 {
		return &Recommendation{Status: StatusNoMatch, Entries: []Entry{}}
	}
	return &Recommendation{Status: StatusRanked, Entries: entries}
}

func countered(tank *hero.TankProfile, enemies []string) bool {
	for _, enemy := range enemies {
		if tank.CounteredBy.Has(enemy) {
			return true
		}
	}
	return false
}

func matching(names []string, set hero.NameSet) []string {
	out := make([]string, 0)
	for _, n := range names {
		if set.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
